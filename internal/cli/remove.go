package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a stored definition",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer c.Detach()

			if err := c.Delete(name); err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return userError(fmt.Errorf("definition %q not found", name))
				}
				return sysError(fmt.Errorf("remove definition: %w", err))
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"removed": name})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
			return nil
		},
	}
}
