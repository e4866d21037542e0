package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize hydrogen configuration and catalog storage",
		Long:  "Create the configuration and data directories, then initialize the definition catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Config dir and config.yaml already exist once setup has run.
			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			if err := c.Detach(); err != nil {
				return sysError(fmt.Errorf("finalize catalog: %w", err))
			}

			dataDir, err := a.resolveDataDir()
			if err != nil {
				return sysError(err)
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]string{
					"config_dir": a.resolvedConfigDir,
					"data_dir":   dataDir,
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Hydrogen initialized successfully")
			fmt.Fprintln(out, "  config:", a.resolvedConfigDir)
			fmt.Fprintln(out, "  data:  ", dataDir)
			return nil
		},
	}
}
