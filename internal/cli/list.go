package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rescale/dirlist/internal/config"
	"github.com/rescale/dirlist/internal/display"
	"github.com/rescale/dirlist/internal/localfs"
	"github.com/rescale/dirlist/internal/pathutil"
)

// listFlags holds the listing flags of the root command.
type listFlags struct {
	groupDirsFirst bool
	recursive      bool
	sortByName     bool
	sortBySize     bool
	sortByDate     bool
	filterFiles    bool
	filterDirs     bool
	followSymlinks bool
	color          string
}

func (f *listFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.BoolVar(&f.groupDirsFirst, "dir", false, "List directories before files")
	fl.BoolVar(&f.recursive, "recursive", false, "Descend into subdirectories")
	fl.BoolVar(&f.sortByName, "sort-name", false, "Sort by name (takes precedence over --sort-size and --sort-date)")
	fl.BoolVar(&f.sortBySize, "sort-size", false, "Sort by size, smallest first (takes precedence over --sort-date)")
	fl.BoolVar(&f.sortByDate, "sort-date", false, "Sort by modification time, oldest first")
	fl.BoolVar(&f.filterFiles, "files", false, "Show files only (hide directory lines)")
	fl.BoolVar(&f.filterDirs, "dirs", false, "Show directories only (hide file lines)")
	fl.BoolVar(&f.followSymlinks, "follow-symlinks", false, "Treat symlinks as their targets and descend into linked directories")
	fl.StringVar(&f.color, "color", config.ColorAuto, "Colour output: auto, always or never")
}

// options merges the config defaults with the flags the user actually set.
func (f *listFlags) options(cmd *cobra.Command, cfg *config.Config) localfs.Options {
	opts := cfg.ListOptions()
	fl := cmd.Flags()

	override := func(name string, dst *bool, val bool) {
		if fl.Changed(name) {
			*dst = val
		}
	}

	override("dir", &opts.GroupDirsFirst, f.groupDirsFirst)
	override("recursive", &opts.Recursive, f.recursive)
	override("follow-symlinks", &opts.FollowSymlinks, f.followSymlinks)

	// Any sort flag replaces the configured criterion as a whole.
	if fl.Changed("sort-name") || fl.Changed("sort-size") || fl.Changed("sort-date") {
		opts.SortByName = f.sortByName
		opts.SortBySize = f.sortBySize
		opts.SortByDate = f.sortByDate
	}

	// The configured show setting is one value, so --files and --dirs
	// replace it together.
	if fl.Changed("files") || fl.Changed("dirs") {
		opts.FilterFiles = f.filterFiles
		opts.FilterDirs = f.filterDirs
	}

	return opts
}

// colorMode picks the --color flag when set, the configured mode otherwise.
func (f *listFlags) colorMode(cmd *cobra.Command, cfg *config.Config) (display.ColorMode, error) {
	value := cfg.Display.Color
	if cmd.Flags().Changed("color") {
		value = f.color
	}
	return display.ParseColorMode(value)
}

func runList(cmd *cobra.Command, args []string, flags *listFlags) error {
	logger := GetLogger()
	ctx := GetContext()

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	mode, err := flags.colorMode(cmd, cfg)
	if err != nil {
		return err
	}
	opts := flags.options(cmd, cfg)

	var target string
	if len(args) > 0 {
		target = args[0]
	}
	root, err := pathutil.ResolveStartPath(target)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	logger.Debug().
		Str("path", root).
		Str("sort", opts.SortKey().String()).
		Bool("recursive", opts.Recursive).
		Bool("follow_symlinks", opts.FollowSymlinks).
		Msg("Listing directory")

	printer := display.NewPrinter(cmd.OutOrStdout(), mode)
	lister := localfs.NewLister(opts, printer, logger)
	if err := lister.List(ctx, root); err != nil {
		return err
	}

	stats := lister.Stats()
	logger.Debug().
		Int("directories", stats.Directories).
		Int("files", stats.Files).
		Int("others", stats.Others).
		Int("skipped", stats.Skipped).
		Int("failed_dirs", stats.FailedDirs).
		Int("cycles", stats.Cycles).
		Msg("Listing complete")

	return nil
}
