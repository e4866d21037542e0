// Package cli implements the hydrogen command-line interface: a definition
// catalog plus structural checks of JSON, CBOR and YAML documents.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/hydrogen/internal/catalog"
	"github.com/mesh-intelligence/hydrogen/internal/paths"
	"github.com/mesh-intelligence/hydrogen/pkg/hydrogen"
	"github.com/mesh-intelligence/hydrogen/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and the state loaded by PersistentPreRunE.
// Each root command owns its own app so tests can run commands in parallel.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	verbose   bool

	resolvedConfigDir string
	config            *viper.Viper
	logger            *slog.Logger
}

// NewRootCmd creates the top-level "hydrogen" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:     "hydrogen",
		Short:   "Structural interface checks for documents and values",
		Long:    "Hydrogen stores named interface definitions and checks JSON or YAML\ndocuments against them.",
		Version: hydrogen.Version,
		// Errors are reported by run with the matching exit code.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.hydrogen-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newVersionCmd(a),
		newInitCmd(a),
		newDefineCmd(a),
		newShowCmd(a),
		newListCmd(a),
		newRemoveCmd(a),
		newLintCmd(a),
		newCheckCmd(a),
	)
	return root
}

// Execute runs the root command against os.Args and returns the process
// exit code. SIGINT and SIGTERM cancel the command context.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, NewRootCmd(), os.Args[1:])
}

func run(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(root.ErrOrStderr(), "hydrogen:", ee.err)
		}
		return ee.code
	}
	// Flag and argument errors raised by cobra itself.
	fmt.Fprintln(root.ErrOrStderr(), "hydrogen:", err)
	return exitUserError
}

// setup loads config.yaml and installs the logger. The version command
// needs neither.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	a.resolvedConfigDir = configDir
	a.config = v

	cfg := a.baseConfig()
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("config in %s: %w", configDir, err))
	}
	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug("config loaded", "config_dir", configDir, "backend", cfg.Backend)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// baseConfig builds a types.Config from the loaded viper settings without a
// resolved data directory.
func (a *app) baseConfig() types.Config {
	return types.Config{
		Backend:  a.config.GetString(cfgKeyBackend),
		DataDir:  a.config.GetString(cfgKeyDataDir),
		LogLevel: a.config.GetString(cfgKeyLogLevel),
		Output:   a.config.GetString(cfgKeyOutput),
	}
}

// jsonOutput reports whether results should be printed as JSON, either by
// --json or by output: json in config.yaml.
func (a *app) jsonOutput() bool {
	return a.jsonMode || (a.config != nil && a.config.GetString(cfgKeyOutput) == types.OutputJSON)
}

// resolveDataDir returns the data directory following the precedence
// --data-dir flag > config.yaml data_dir > HYDROGEN_DATA_DIR env > default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.dataDir, a.config.GetString(cfgKeyDataDir))
}

// openCatalog resolves the data directory and attaches a catalog to it. The
// caller must defer Detach.
func (a *app) openCatalog() (*catalog.Catalog, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	cfg := a.baseConfig()
	cfg.DataDir = dataDir

	c := catalog.NewCatalog(catalog.WithLogger(a.logger))
	if err := c.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach catalog: %w", err))
	}
	return c, nil
}
