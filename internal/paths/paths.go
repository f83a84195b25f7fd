// Package paths resolves configuration and data directory locations for
// the grove CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names.
const (
	DefaultConfigDirName = ".grove"
	DefaultDataDirName   = ".grove-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "GROVE_CONFIG_DIR"
	EnvDataDir   = "GROVE_DATA_DIR"
)

// DefaultConfigDir returns the platform-specific default configuration
// directory.
//
// Linux:   $XDG_CONFIG_HOME/arbor (fallback ~/.config/arbor)
// macOS:   ~/Library/Application Support/arbor
// Windows: %APPDATA%/arbor
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arbor"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "arbor"), nil
	default:
		// macOS and Windows use os.UserConfigDir, which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "arbor"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/arbor (fallback ~/.local/share/arbor)
// macOS:   ~/Library/Application Support/arbor
// Windows: %APPDATA%/arbor
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "arbor"), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "arbor"), nil
	default:
		// macOS and Windows: same as config dir.
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "arbor"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > GROVE_CONFIG_DIR env > existing $(CWD)/.grove >
// DefaultConfigDir(). The CWD step only applies when the directory already
// exists, so a project-local setup wins without shadowing the platform
// default everywhere else.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	if st, err := os.Stat(DefaultConfigDirName); err == nil && st.IsDir() {
		return filepath.Abs(DefaultConfigDirName)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config file value > GROVE_DATA_DIR env > CWD default.
//
// The CWD-relative default ($(CWD)/.grove-db) keeps a store next to the
// tree it describes when no override is active.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
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
