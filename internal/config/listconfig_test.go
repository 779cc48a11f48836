package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Listing.Sort != SortNone {
		t.Errorf("Expected Sort=none, got %s", cfg.Listing.Sort)
	}
	if cfg.Listing.Show != ShowAll {
		t.Errorf("Expected Show=all, got %s", cfg.Listing.Show)
	}
	if cfg.Display.Color != ColorAuto {
		t.Errorf("Expected Color=auto, got %s", cfg.Display.Color)
	}
	if cfg.Listing.GroupDirsFirst || cfg.Listing.Recursive || cfg.Listing.FollowSymlinks {
		t.Errorf("Expected boolean defaults to be false, got %+v", cfg.Listing)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestConfigLoadSave(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	cfg := NewConfig()
	cfg.Listing.GroupDirsFirst = true
	cfg.Listing.Recursive = true
	cfg.Listing.Sort = SortSize
	cfg.Listing.Show = ShowDirs
	cfg.Listing.FollowSymlinks = true
	cfg.Display.Color = ColorNever

	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}
	if _, err := os.Stat(configPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file was left behind")
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded config %+v, want %+v", *loaded, *cfg)
	}
}

func TestConfigLoadNonExistent(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/dirlist.conf")
	if err != nil {
		t.Errorf("Expected no error for non-existent file, got: %v", err)
	}
	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}
	if *cfg != *NewConfig() {
		t.Errorf("Expected defaults, got %+v", *cfg)
	}
}

func TestConfigLoadPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ConfigFileName)
	content := "[listing]\nsort = date\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Listing.Sort != SortDate {
		t.Errorf("Sort = %s, want date", cfg.Listing.Sort)
	}
	if cfg.Listing.Show != ShowAll || cfg.Display.Color != ColorAuto {
		t.Errorf("missing keys should keep defaults, got %+v", *cfg)
	}
}

func TestConfigLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"bad sort", "[listing]\nsort = random\n", ErrInvalidSort},
		{"bad show", "[listing]\nshow = some\n", ErrInvalidShow},
		{"bad color", "[display]\ncolor = rainbow\n", ErrInvalidColorMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := LoadConfig(configPath)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), configPath) {
				t.Errorf("error %q should name the file", err)
			}
		})
	}
}

func TestConfigListOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		check  func(t *testing.T, cfg *Config)
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
			check: func(t *testing.T, cfg *Config) {
				opts := cfg.ListOptions()
				if opts.SortByName || opts.SortBySize || opts.SortByDate || opts.FilterFiles || opts.FilterDirs {
					t.Errorf("unexpected options %+v", opts)
				}
			},
		},
		{
			name:   "show files hides directories",
			modify: func(cfg *Config) { cfg.Listing.Show = ShowFiles },
			check: func(t *testing.T, cfg *Config) {
				if opts := cfg.ListOptions(); !opts.FilterFiles || opts.FilterDirs {
					t.Errorf("unexpected options %+v", opts)
				}
			},
		},
		{
			name:   "sort by date",
			modify: func(cfg *Config) { cfg.Listing.Sort = SortDate },
			check: func(t *testing.T, cfg *Config) {
				if opts := cfg.ListOptions(); !opts.SortByDate || opts.SortByName || opts.SortBySize {
					t.Errorf("unexpected options %+v", opts)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			tt.check(t, cfg)
		})
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("DefaultConfigPath() = %s, want base %s", path, ConfigFileName)
	}
	if filepath.Base(filepath.Dir(path)) != "dirlist" {
		t.Errorf("DefaultConfigPath() = %s, want parent dirlist", path)
	}
}
