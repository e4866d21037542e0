package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/hydrogen/pkg/hydrogen"
	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

type checkResult struct {
	OK      bool     `json:"ok"`
	Path    []string `json:"path,omitempty"`
	Reason  string   `json:"reason,omitempty"`
	Message string   `json:"message,omitempty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		defName string
		defFile string
		watch   bool
	)

	cmd := &cobra.Command{
		Use:   "check <value-file>",
		Short: "Check a document against a definition",
		Long: `Check decodes a JSON, CBOR or YAML document and reports whether it
structurally satisfies a definition, either stored in the catalog (--name)
or read from a file (--def). Only the first mismatch is reported. A mismatch
exits with status 1.

With --watch, check runs again whenever the document or definition file
changes, until interrupted.

Example:
  hydrogen check movie.json --name movie
  hydrogen check config.yaml --def schema.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valueFile := args[0]

			if !watch {
				res, err := a.evaluate(valueFile, defName, defFile)
				if err != nil {
					return err
				}
				if err := a.report(cmd, res); err != nil {
					return err
				}
				if !res.OK {
					return &exitError{code: exitUserError}
				}
				return nil
			}

			rerun := func() {
				res, err := a.evaluate(valueFile, defName, defFile)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "hydrogen:", err)
					return
				}
				if err := a.report(cmd, res); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "hydrogen:", err)
				}
			}

			files := []string{valueFile}
			if defFile != "" {
				files = append(files, defFile)
			}
			w, err := newFileWatcher(files, watchDebounce, a.logger)
			if err != nil {
				return sysError(err)
			}
			rerun()
			return w.Run(cmd.Context(), rerun)
		},
	}

	cmd.Flags().StringVar(&defName, "name", "", "name of a stored definition")
	cmd.Flags().StringVar(&defFile, "def", "", "definition file (YAML or JSON)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check when the files change")
	cmd.MarkFlagsMutuallyExclusive("name", "def")
	cmd.MarkFlagsOneRequired("name", "def")
	return cmd
}

// evaluate loads the document and definition and runs the structural check.
func (a *app) evaluate(valueFile, defName, defFile string) (checkResult, error) {
	value, err := readValue(valueFile)
	if err != nil {
		return checkResult{}, err
	}
	def, err := a.lookupDefinition(defName, defFile)
	if err != nil {
		return checkResult{}, err
	}

	m := hydrogen.Check(value, def)
	a.logger.Debug("check finished", "file", valueFile, "ok", m == nil)

	res := checkResult{OK: m == nil}
	if m != nil {
		res.Path = m.Path
		res.Reason = m.Reason
		res.Message = m.Error()
	}
	return res, nil
}

// report prints a check result: "ok" or the diagnostic, or the result
// object in JSON mode.
func (a *app) report(cmd *cobra.Command, res checkResult) error {
	if a.jsonOutput() {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	if res.OK {
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	return nil
}

// lookupDefinition returns the definition named in the catalog or read
// from file. Exactly one of name and file is set.
func (a *app) lookupDefinition(name, file string) (*types.Definition, error) {
	if file != "" {
		return readDefinition(file)
	}

	c, err := a.openCatalog()
	if err != nil {
		return nil, err
	}
	defer c.Detach()

	entry, err := c.Get(name)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, userError(fmt.Errorf("definition %q not found", name))
		}
		return nil, sysError(fmt.Errorf("get definition: %w", err))
	}
	return entry.Definition, nil
}
