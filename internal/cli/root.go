// Package cli provides the command-line interface for dirlist.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rescale/dirlist/internal/logging"
	"github.com/rescale/dirlist/internal/version"
)

var (
	// Global flags
	cfgFile string
	verbose bool
	debug   bool

	// Global logger
	logger *logging.Logger

	// Global context for signal handling
	rootContext context.Context
	cancelFunc  context.CancelFunc
)

// NewRootCmd creates the root command. The root command itself lists a
// directory; config and completion are subcommands.
func NewRootCmd() *cobra.Command {
	flags := &listFlags{}

	rootCmd := &cobra.Command{
		Use:   "dirlist [path]",
		Short: "List directory contents with icons and colours",
		Long: `dirlist ` + version.Version + `
List the entries of a directory (the current directory by default) with a
type icon, a kind colour and the size in bytes.

Hidden entries (names starting with ".") are never listed.

Examples:
  dirlist                        # current directory, enumeration order
  dirlist --dir --sort-name      # directories first, sorted by name
  dirlist --recursive --files    # whole tree, file lines only
  dirlist ~/src --sort-size      # another directory, smallest first`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(cmd.ErrOrStderr())
			logging.SetVerbose(verbose || debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, flags)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default ~/.config/dirlist/dirlist.conf)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output (same as --verbose)")

	flags.register(rootCmd)

	rootCmd.Version = version.String()

	rootCmd.AddCommand(newCompletionCmd())

	// Disable default completion command (we're adding our own above)
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	return rootCmd
}

// newCompletionCmd creates the 'completion' command group.
func newCompletionCmd() *cobra.Command {
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Enable tab-completion for dirlist flags",
		Long: `Generate shell completion scripts for dirlist.

QUICK TEST (temporary, current session only):
  source <(dirlist completion bash)
  source <(dirlist completion zsh)
  dirlist completion fish | source`,
	}

	completionCmd.AddCommand(&cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate the autocompletion script for bash.

Linux:
  dirlist completion bash | sudo tee /etc/bash_completion.d/dirlist

macOS:
  dirlist completion bash > $(brew --prefix)/etc/bash_completion.d/dirlist`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "zsh",
		Short: "Generate zsh completion script",
		Long: `Generate the autocompletion script for zsh.

  mkdir -p ~/.zsh/completions
  dirlist completion zsh > ~/.zsh/completions/_dirlist
  # Then add to ~/.zshrc: fpath=(~/.zsh/completions $fpath)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate the autocompletion script for fish.

  dirlist completion fish > ~/.config/fish/completions/dirlist.fish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})

	completionCmd.AddCommand(&cobra.Command{
		Use:   "powershell",
		Short: "Generate PowerShell completion script",
		Long: `Generate the autocompletion script for PowerShell.

  dirlist completion powershell >> $PROFILE`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Root().GenPowerShellCompletion(cmd.OutOrStdout())
		},
	})

	return completionCmd
}

// Execute runs the CLI.
func Execute() error {
	// Create a context that can be cancelled by signals
	rootContext, cancelFunc = context.WithCancel(context.Background())
	defer cancelFunc()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		for sig := range sigChan {
			// sig is nil once the channel is closed
			if sig != nil {
				fmt.Fprintf(os.Stderr, "\nReceived signal %v, stopping listing...\n", sig)
				cancelFunc()
			}
		}
	}()

	rootCmd := NewRootCmd()
	AddCommands(rootCmd)
	err := rootCmd.Execute()

	// Clean up signal handler
	signal.Stop(sigChan)
	close(sigChan)

	return err
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(newConfigCmd())
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}

// GetContext returns the global CLI context with signal handling.
// This context will be cancelled when the user presses Ctrl+C.
func GetContext() context.Context {
	if rootContext == nil {
		// Fallback to background context if called before Execute()
		return context.Background()
	}
	return rootContext
}
