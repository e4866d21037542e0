package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Display a stored definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer c.Detach()

			entry, err := c.Get(name)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return userError(fmt.Errorf("definition %q not found", name))
				}
				return sysError(fmt.Errorf("get definition: %w", err))
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", entry.Name)
			fmt.Fprintf(out, "ID:        %s\n", entry.DefinitionID)
			fmt.Fprintf(out, "Created:   %s\n", entry.CreatedAt.Local().Format(timeLayout))
			fmt.Fprintf(out, "Updated:   %s\n", entry.UpdatedAt.Local().Format(timeLayout))
			fmt.Fprintln(out)
			return writeYAML(out, entry.Definition)
		},
	}
}
