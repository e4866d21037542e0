package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hydrogen/pkg/hydrogen"
)

const modulePath = "github.com/mesh-intelligence/hydrogen"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hydrogen version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonMode {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"version": hydrogen.Version,
					"module":  modulePath,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hydrogen v%s\nmodule: %s\n", hydrogen.Version, modulePath)
			return nil
		},
	}
}
