// Package config provides the optional dirlist defaults file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigFileName is the base name of the defaults file.
const ConfigFileName = "dirlist.conf"

// DefaultConfigPath returns the default path for the dirlist.conf file.
//   - Windows: %APPDATA%\dirlist\dirlist.conf
//   - Unix: ~/.config/dirlist/dirlist.conf
func DefaultConfigPath() (string, error) {
	var configDir string

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", errors.New("neither APPDATA nor USERPROFILE environment variable set")
			}
			appData = filepath.Join(userProfile, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "dirlist")
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config", "dirlist")
	}

	return filepath.Join(configDir, ConfigFileName), nil
}
