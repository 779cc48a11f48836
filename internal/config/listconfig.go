package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/ini.v1"

	"github.com/rescale/dirlist/internal/localfs"
)

// Config represents the dirlist defaults file.
//
// INI format:
//
//	[listing]
//	group_dirs_first = false
//	recursive = false
//	sort = none
//	show = all
//	follow_symlinks = false
//
//	[display]
//	color = auto
type Config struct {
	Listing ListingConfig
	Display DisplayConfig
}

// ListingConfig holds the defaults for the listing flags.
type ListingConfig struct {
	// GroupDirsFirst is the default for --dir.
	GroupDirsFirst bool `ini:"group_dirs_first"`

	// Recursive is the default for --recursive.
	Recursive bool `ini:"recursive"`

	// Sort is one of none, name, size, date.
	// Default: none
	Sort string `ini:"sort"`

	// Show is one of all, files, dirs. "files" matches --files and
	// "dirs" matches --dirs.
	// Default: all
	Show string `ini:"show"`

	// FollowSymlinks is the default for --follow-symlinks.
	FollowSymlinks bool `ini:"follow_symlinks"`
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	// Color is one of auto, always, never.
	// Default: auto
	Color string `ini:"color"`
}

// Accepted values
const (
	SortNone = "none"
	SortName = "name"
	SortSize = "size"
	SortDate = "date"

	ShowAll   = "all"
	ShowFiles = "files"
	ShowDirs  = "dirs"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config validation errors
var (
	ErrInvalidSort      = errors.New("sort must be one of none, name, size, date")
	ErrInvalidShow      = errors.New("show must be one of all, files, dirs")
	ErrInvalidColorMode = errors.New("color must be one of auto, always, never")
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Listing: ListingConfig{
			GroupDirsFirst: false,
			Recursive:      false,
			Sort:           SortNone,
			Show:           ShowAll,
			FollowSymlinks: false,
		},
		Display: DisplayConfig{
			Color: ColorAuto,
		},
	}
}

// LoadConfig loads configuration from the dirlist.conf file.
// If path is empty, uses the default path.
// If the file doesn't exist, returns a config with default values and no error.
// If the file exists but is invalid, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return cfg, nil // Return defaults if we can't determine path
		}
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	listing := iniFile.Section("listing")
	cfg.Listing.GroupDirsFirst = listing.Key("group_dirs_first").MustBool(false)
	cfg.Listing.Recursive = listing.Key("recursive").MustBool(false)
	cfg.Listing.Sort = listing.Key("sort").MustString(SortNone)
	cfg.Listing.Show = listing.Key("show").MustString(ShowAll)
	cfg.Listing.FollowSymlinks = listing.Key("follow_symlinks").MustBool(false)

	display := iniFile.Section("display")
	cfg.Display.Color = display.Key("color").MustString(ColorAuto)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to the dirlist.conf file.
// If path is empty, uses the default path.
// Creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to determine config path: %w", err)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()

	listing, err := iniFile.NewSection("listing")
	if err != nil {
		return fmt.Errorf("failed to create listing section: %w", err)
	}
	listing.Key("group_dirs_first").SetValue(fmt.Sprintf("%t", cfg.Listing.GroupDirsFirst))
	listing.Key("recursive").SetValue(fmt.Sprintf("%t", cfg.Listing.Recursive))
	listing.Key("sort").SetValue(cfg.Listing.Sort)
	listing.Key("show").SetValue(cfg.Listing.Show)
	listing.Key("follow_symlinks").SetValue(fmt.Sprintf("%t", cfg.Listing.FollowSymlinks))

	display, err := iniFile.NewSection("display")
	if err != nil {
		return fmt.Errorf("failed to create display section: %w", err)
	}
	display.Key("color").SetValue(cfg.Display.Color)

	// Use temporary file + rename for atomicity
	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set config permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Validate checks that every enumerated setting holds an accepted value.
func (cfg *Config) Validate() error {
	switch cfg.Listing.Sort {
	case SortNone, SortName, SortSize, SortDate:
	default:
		return ErrInvalidSort
	}

	switch cfg.Listing.Show {
	case ShowAll, ShowFiles, ShowDirs:
	default:
		return ErrInvalidShow
	}

	switch cfg.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return ErrInvalidColorMode
	}

	return nil
}

// ListOptions converts the listing defaults to walker options.
func (cfg *Config) ListOptions() localfs.Options {
	return localfs.Options{
		GroupDirsFirst: cfg.Listing.GroupDirsFirst,
		Recursive:      cfg.Listing.Recursive,
		SortByName:     cfg.Listing.Sort == SortName,
		SortBySize:     cfg.Listing.Sort == SortSize,
		SortByDate:     cfg.Listing.Sort == SortDate,
		FilterFiles:    cfg.Listing.Show == ShowFiles,
		FilterDirs:     cfg.Listing.Show == ShowDirs,
		FollowSymlinks: cfg.Listing.FollowSymlinks,
	}
}
