// Package fs loads and stores theme files on the local file system.
package fs

import (
	"os"
	"path/filepath"
)

// appName is the directory name used under the XDG base directories.
const appName = "theme"

// DefaultConfigDir returns the configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise falls back to ~/.config/theme,
// or the system temp directory if home is unavailable.
func DefaultConfigDir() string {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultThemeDir returns the directory theme family files are loaded from.
func DefaultThemeDir() string {
	return filepath.Join(DefaultConfigDir(), "themes")
}

// DefaultCacheDir returns the cache directory for generated themes.
// Uses XDG_CACHE_HOME if set, otherwise falls back to ~/.cache/theme.
func DefaultCacheDir() string {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

func xdgDir(env, fallback string) string {
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, fallback, appName)
}
