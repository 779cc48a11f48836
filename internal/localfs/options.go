package localfs

// Options configures a listing. It is built once and never modified while a
// walk is running.
type Options struct {
	// GroupDirsFirst prints directories before files and other entries.
	// Default is false (directories are printed last).
	GroupDirsFirst bool

	// Recursive descends into every listed subdirectory.
	Recursive bool

	// Sort criteria. When more than one is set, name wins over size and
	// size wins over date.
	SortByName bool
	SortBySize bool
	SortByDate bool

	// FilterFiles suppresses directory lines (the listing shows files only).
	// Suppressed directories are still descended into when Recursive is set.
	FilterFiles bool

	// FilterDirs suppresses file lines (the listing shows directories only).
	FilterDirs bool

	// FollowSymlinks classifies symlinks by their target and descends into
	// linked directories. Default is false (symlinks are KindOther).
	FollowSymlinks bool
}

// SortKey selects the single ordering applied within each bucket.
type SortKey int

const (
	SortNone SortKey = iota
	SortByName
	SortBySize
	SortByDate
)

func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortBySize:
		return "size"
	case SortByDate:
		return "date"
	default:
		return "none"
	}
}

// SortKey returns the active sort criterion.
func (o Options) SortKey() SortKey {
	switch {
	case o.SortByName:
		return SortByName
	case o.SortBySize:
		return SortBySize
	case o.SortByDate:
		return SortByDate
	default:
		return SortNone
	}
}

// PrintOrder returns the order in which buckets are printed.
func (o Options) PrintOrder() []Kind {
	if o.GroupDirsFirst {
		return []Kind{KindDirectory, KindFile, KindOther}
	}
	return []Kind{KindFile, KindOther, KindDirectory}
}

// Shows reports whether entries of the given kind are printed.
// KindOther is never filtered.
func (o Options) Shows(kind Kind) bool {
	switch kind {
	case KindDirectory:
		return !o.FilterFiles
	case KindFile:
		return !o.FilterDirs
	default:
		return true
	}
}
