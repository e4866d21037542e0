package types

import (
	"errors"
	"log/slog"
)

// Config holds backend selection and parameters for Catalog.Attach, plus
// the logging and output settings shared by the command-line tool.
type Config struct {
	Backend  string `json:"backend" yaml:"backend"`
	DataDir  string `json:"data_dir" yaml:"data_dir"`
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// Log levels accepted in Config.LogLevel. Empty means LogLevelWarn.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Output modes accepted in Config.Output. Empty means OutputText.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLogLevelUnknown = errors.New("unknown log level")
	ErrOutputUnknown   = errors.New("unknown output mode")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

var knownLogLevels = map[string]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	LogLevelError: slog.LevelError,
}

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.LogLevel != "" {
		if _, ok := knownLogLevels[c.LogLevel]; !ok {
			return ErrLogLevelUnknown
		}
	}
	if c.Output != "" && !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	return nil
}

// Level returns the slog level named by LogLevel, defaulting to warn.
func (c Config) Level() slog.Level {
	if lvl, ok := knownLogLevels[c.LogLevel]; ok {
		return lvl
	}
	return slog.LevelWarn
}
