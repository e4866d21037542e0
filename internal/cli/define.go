package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/jsonc"

	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

func newDefineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "define <name> <file>",
		Short: "Store an interface definition under a name",
		Long: `Define reads an interface definition from a YAML or JSON file, validates
it, and stores it in the catalog. An existing definition with the same name
is replaced and keeps its ID.

Example:
  hydrogen define movie movie.yaml`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, file := args[0], args[1]

			def, err := readDefinition(file)
			if err != nil {
				return err
			}

			c, err := a.openCatalog()
			if err != nil {
				return err
			}
			defer c.Detach()

			entry, err := c.Put(name, def)
			if err != nil {
				if errors.Is(err, types.ErrInvalidName) {
					return userError(fmt.Errorf("invalid name %q", name))
				}
				return sysError(fmt.Errorf("store definition: %w", err))
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Defined %s (%s)\n", entry.Name, entry.DefinitionID)
			return nil
		},
	}
}

// readDefinition loads and validates a definition file. JSON files may
// carry comments and trailing commas. Unreadable files are system errors;
// malformed definitions are user errors.
func readDefinition(file string) (*types.Definition, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, userError(fmt.Errorf("definition file %s not found", file))
		}
		return nil, sysError(fmt.Errorf("read %s: %w", file, err))
	}
	switch formatOf(file) {
	case formatJSON:
		data = jsonc.ToJSON(data)
	case formatCBOR:
		return nil, userError(fmt.Errorf("%s: definitions must be YAML or JSON", file))
	}
	def, err := types.ParseDefinition(data)
	if err != nil {
		return nil, userError(fmt.Errorf("%s: %w", file, err))
	}
	return def, nil
}
