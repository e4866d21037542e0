// Package paths resolves the configuration and data directories used by the
// hydrogen command-line tool.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under platform config and data roots.
const appDirName = "hydrogen"

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".hydrogen"
	DefaultDataDirName   = ".hydrogen-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "HYDROGEN_CONFIG_DIR"
	EnvDataDir   = "HYDROGEN_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/hydrogen (fallback ~/.config/hydrogen)
// macOS:   ~/Library/Application Support/hydrogen
// Windows: %APPDATA%/hydrogen
func DefaultConfigDir() (string, error) {
	return platformPath("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/hydrogen (fallback ~/.local/share/hydrogen)
// macOS:   ~/Library/Application Support/hydrogen
// Windows: %APPDATA%/hydrogen
func DefaultDataDir() (string, error) {
	return platformPath("XDG_DATA_HOME", ".local", "share")
}

// platformPath resolves appDirName beneath the XDG root named by xdgVar on
// Linux (falling back to home/linuxFallback...) and beneath the user config
// directory elsewhere.
func platformPath(xdgVar string, linuxFallback ...string) (string, error) {
	if runtime.GOOS != "linux" {
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	parts := append([]string{home}, linuxFallback...)
	return filepath.Join(append(parts, appDirName)...), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > HYDROGEN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > HYDROGEN_DATA_DIR env > $(CWD)/.hydrogen-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
