// Package paths resolves configuration, data, and upload directory
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".nextis"
	DefaultDataDirName   = ".nextis-db"
	UploadDirName        = "uploads"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "NEXTIS_CONFIG_DIR"
	EnvDataDir   = "NEXTIS_DATA_DIR"
	EnvUploadDir = "NEXTIS_UPLOAD_DIR"
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
// Linux:   $XDG_CONFIG_HOME/nextis (fallback ~/.config/nextis)
// macOS:   ~/Library/Application Support/nextis
// Windows: %APPDATA%/nextis
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "nextis"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "nextis"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "nextis"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > NEXTIS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the directory holding the database following
// the precedence chain: flag > config value > NEXTIS_DATA_DIR env >
// $(CWD)/.nextis-db.
//
// The CWD-relative default keeps a checkout self-contained: running the
// server in a project directory creates its database next to it.
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

// ResolveUploadDir returns the directory holding stored spreadsheet
// uploads: flag > config value > NEXTIS_UPLOAD_DIR env > an uploads
// subdirectory of the data directory.
func ResolveUploadDir(flag, configValue, dataDir string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvUploadDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Join(dataDir, UploadDirName), nil
}
