package localfs

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/rescale/dirlist/internal/logging"
)

// Printer receives the listing as it is produced.
type Printer interface {
	Entry(e Entry, indent int) error
	SubdirectoryHeader(name string, indent int) error
}

// Stats counts what a listing visited.
type Stats struct {
	Directories int // directory entries seen, printed or not
	Files       int
	Others      int
	Skipped     int // entries dropped because their metadata was unreadable
	FailedDirs  int // subdirectories that could not be read
	Cycles      int // symlinked directories not re-entered
}

// Lister walks a directory tree depth-first and hands each visit to a Printer.
type Lister struct {
	opts    Options
	printer Printer
	logger  *logging.Logger
	stats   Stats
}

// NewLister creates a Lister. A nil logger discards diagnostics.
func NewLister(opts Options, printer Printer, logger *logging.Logger) *Lister {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Lister{
		opts:    opts,
		printer: printer,
		logger:  logger,
	}
}

// Stats returns the counters accumulated by List.
func (l *Lister) Stats() Stats {
	return l.stats
}

// List prints the directory at root and, when Recursive is set, every
// directory below it.
//
// Only a failure to read root is returned; unreadable subdirectories are
// logged and skipped. Cancelling ctx stops the walk between entries.
func (l *Lister) List(ctx context.Context, root string) error {
	var ancestors []fs.FileInfo
	if l.opts.FollowSymlinks {
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", root, err)
		}
		ancestors = append(ancestors, info)
	}
	return l.visit(ctx, root, 0, ancestors)
}

func (l *Lister) visit(ctx context.Context, path string, indent int, ancestors []fs.FileInfo) error {
	entries, skipped, err := ReadEntries(ctx, path, l.opts)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if indent == 0 {
			return fmt.Errorf("failed to read directory %s: %w", path, err)
		}
		l.stats.FailedDirs++
		l.logger.Error().Err(err).Str("path", path).Msg("Failed to read directory")
		return nil
	}

	for _, s := range skipped {
		l.stats.Skipped++
		l.logger.Warn().Err(s.Err).Str("path", s.Path).Msg("Skipping entry with unreadable metadata")
	}

	SortEntries(entries, l.opts.SortKey())
	l.count(entries)

	for _, kind := range l.opts.PrintOrder() {
		if !l.opts.Shows(kind) {
			continue
		}
		for _, e := range Bucket(entries, kind) {
			if err := l.printer.Entry(e, indent); err != nil {
				return err
			}
		}
	}

	if !l.opts.Recursive {
		return nil
	}

	for _, dir := range Bucket(entries, KindDirectory) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := l.printer.SubdirectoryHeader(dir.Name, indent); err != nil {
			return err
		}

		next := ancestors
		if l.opts.FollowSymlinks {
			info, err := os.Stat(dir.Path)
			if err != nil {
				l.stats.FailedDirs++
				l.logger.Error().Err(err).Str("path", dir.Path).Msg("Failed to read directory")
				continue
			}
			if revisits(ancestors, info) {
				l.stats.Cycles++
				l.logger.Warn().Str("path", dir.Path).Msg("Directory already on the current path, not descending")
				continue
			}
			next = append(ancestors[:len(ancestors):len(ancestors)], info)
		}

		if err := l.visit(ctx, dir.Path, indent+1, next); err != nil {
			return err
		}
	}

	return nil
}

func (l *Lister) count(entries []Entry) {
	for _, e := range entries {
		switch e.Kind {
		case KindDirectory:
			l.stats.Directories++
		case KindFile:
			l.stats.Files++
		default:
			l.stats.Others++
		}
	}
}

// revisits reports whether info names a directory already on the descent path.
func revisits(ancestors []fs.FileInfo, info fs.FileInfo) bool {
	for _, a := range ancestors {
		if os.SameFile(a, info) {
			return true
		}
	}
	return false
}
