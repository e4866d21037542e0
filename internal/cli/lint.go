package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type lintResult struct {
	File  string `json:"file"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate a definition file without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			_, err := readDefinition(file)
			var ee *exitError
			if err != nil && (!errors.As(err, &ee) || ee.code != exitUserError) {
				return err
			}

			res := lintResult{File: file, Valid: err == nil}
			if err != nil {
				res.Error = err.Error()
			}
			if a.jsonOutput() {
				if werr := writeJSON(cmd.OutOrStdout(), res); werr != nil {
					return werr
				}
				if !res.Valid {
					return &exitError{code: exitUserError}
				}
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", file)
			return nil
		},
	}
}
