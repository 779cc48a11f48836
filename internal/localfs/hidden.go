// Package localfs lists local directories for dirlist.
// It owns entry classification, the hidden-entry rule, per-kind sorting and
// the depth-first listing walk.
package localfs

import "strings"

// HiddenPrefix marks a hidden file or directory name.
const HiddenPrefix = "."

// IsHiddenName returns true if the given filename (not path) represents a hidden file.
// Special entries "." and ".." are not considered hidden.
func IsHiddenName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, HiddenPrefix)
}
