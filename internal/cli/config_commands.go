package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rescale/dirlist/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage dirlist defaults",
		Long: `Configuration management commands for dirlist.

Commands:
  init  - Write a defaults file
  show  - Display effective defaults
  path  - Show configuration file path`,
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

// resolveConfigPath returns the --config value or the default location.
func resolveConfigPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultConfigPath()
}

// newConfigInitCmd creates the 'config init' command.
func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a defaults file",
		Long: `Write a dirlist.conf holding the built-in defaults.

The file is written to ~/.config/dirlist/dirlist.conf unless --config is given.
Use --force to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !force {
				if _, err := os.Stat(configPath); err == nil {
					fmt.Fprintf(out, "Configuration already exists at: %s\n", configPath)
					fmt.Fprintln(out, "Use --force to overwrite or run 'dirlist config show' to view it.")
					return nil
				}
			}

			if err := config.SaveConfig(config.NewConfig(), configPath); err != nil {
				return err
			}

			GetLogger().Debug().Str("path", configPath).Msg("Wrote configuration")
			fmt.Fprintf(out, "Configuration written to: %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long: `Display the defaults dirlist applies when a flag is not given.

Priority: flags > configuration file > built-in defaults`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Current Configuration")
			fmt.Fprintln(out, "=====================")
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Listing:")
			fmt.Fprintf(out, "  Group Dirs First: %t\n", cfg.Listing.GroupDirsFirst)
			fmt.Fprintf(out, "  Recursive:        %t\n", cfg.Listing.Recursive)
			fmt.Fprintf(out, "  Sort:             %s\n", cfg.Listing.Sort)
			fmt.Fprintf(out, "  Show:             %s\n", cfg.Listing.Show)
			fmt.Fprintf(out, "  Follow Symlinks:  %t\n", cfg.Listing.FollowSymlinks)
			fmt.Fprintln(out)

			fmt.Fprintln(out, "Display:")
			fmt.Fprintf(out, "  Color: %s\n", cfg.Display.Color)
			fmt.Fprintln(out)

			fmt.Fprintf(out, "Configuration file: %s\n", configPath)
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "  (file does not exist - using defaults)")
			}

			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Long:  `Display the path to the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := resolveConfigPath()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", configPath)

			if _, err := os.Stat(configPath); err != nil {
				fmt.Fprintln(out, "Status: File does not exist")
				fmt.Fprintln(out, "Create a configuration file with: dirlist config init")
			} else {
				fmt.Fprintln(out, "Status: File exists")
			}

			return nil
		},
	}
}
