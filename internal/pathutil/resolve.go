// Package pathutil resolves the starting path of a listing.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveStartPath converts a user-supplied path to an absolute one.
// An empty path means the process's current directory; a leading ~ is
// expanded to the home directory. The path is not required to exist.
func ResolveStartPath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}

	return filepath.Abs(path)
}
