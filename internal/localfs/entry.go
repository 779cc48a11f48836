package localfs

import (
	"io/fs"
	"time"
)

// Kind classifies a directory entry.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
	KindOther // symlinks, sockets, devices, pipes
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "other"
	}
}

// Epoch is the modification time reported when the filesystem gives none.
var Epoch = time.Unix(0, 0).UTC()

// Entry represents one item of a directory listing.
type Entry struct {
	Name    string    // Base name of the entry
	Path    string    // Full path to the entry
	Size    uint64    // Size in bytes as reported by the filesystem
	ModTime time.Time // Last modification time (Epoch when unknown)
	Kind    Kind
}

// kindOf maps file mode type bits to a Kind.
func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Bucket returns the entries of one kind, keeping their order.
func Bucket(entries []Entry, kind Kind) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
