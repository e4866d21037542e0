package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored definitions by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer c.Detach()

			entries, err := c.List()
			if err != nil {
				return sysError(fmt.Errorf("list definitions: %w", err))
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No definitions")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%-24s %-8s %s\n", e.Name, e.Definition.Type, e.DefinitionID)
			}
			return nil
		},
	}
}
