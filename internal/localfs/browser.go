package localfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// EntryError records an entry that was dropped from a listing because its
// metadata could not be read.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// ReadEntries returns the non-hidden contents of one directory level in
// filesystem enumeration order.
//
// An error is returned only when the directory itself cannot be read.
// Entries whose metadata cannot be read are left out and reported in skipped.
func ReadEntries(ctx context.Context, path string, opts Options) (entries []Entry, skipped []*EntryError, err error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}

	entries = make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		name := d.Name()
		if IsHiddenName(name) {
			continue
		}

		entryPath := filepath.Join(path, name)
		info, err := statEntry(d, entryPath, opts.FollowSymlinks)
		if err != nil {
			skipped = append(skipped, &EntryError{Path: entryPath, Err: err})
			continue
		}

		entries = append(entries, newEntry(name, entryPath, info))
	}

	return entries, skipped, nil
}

// statEntry is swapped out in tests to simulate unreadable metadata.
var statEntry = entryInfo

// entryInfo returns the metadata used to classify d. Symlinks are resolved
// only when follow is set; a dangling link falls back to the link itself.
func entryInfo(d fs.DirEntry, path string, follow bool) (fs.FileInfo, error) {
	if follow && d.Type()&fs.ModeSymlink != 0 {
		if target, err := os.Stat(path); err == nil {
			return target, nil
		}
	}
	return d.Info()
}

func newEntry(name, path string, info fs.FileInfo) Entry {
	modTime := info.ModTime()
	if modTime.IsZero() {
		modTime = Epoch
	}
	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}
	return Entry{
		Name:    name,
		Path:    path,
		Size:    size,
		ModTime: modTime,
		Kind:    kindOf(info.Mode()),
	}
}

// SortEntries orders entries in place by key, ascending. The sort is stable
// and compares only entries of the same kind, so each bucket is sorted
// independently and ties keep enumeration order.
func SortEntries(entries []Entry, key SortKey) {
	if key == SortNone || len(entries) < 2 {
		return
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]

		// Keep buckets apart
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}

		switch key {
		case SortBySize:
			return a.Size < b.Size
		case SortByDate:
			return a.ModTime.Before(b.ModTime)
		default: // SortByName
			return a.Name < b.Name
		}
	})
}
