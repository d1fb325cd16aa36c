package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dheater/viewyard/internal/env"
	"github.com/dheater/viewyard/internal/git"
	"github.com/dheater/viewyard/internal/log"
	"github.com/dheater/viewyard/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	envv    env.Environment
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupCore      = "core"
	GroupWorkspace = "workspace"
	GroupConfig    = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "viewyard",
	Short: "Multi-repo view manager",
	Long: `viewyard manages task-scoped views over groups of git repositories.

A viewset names the repositories you work with; a view is a disposable
directory where those repositories are checked out together on a branch
named after the task.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	var err error
	envv, err = env.Detect()
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewyard: %v\n", err)
		os.Exit(1)
	}

	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "viewyard: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logger on stderr for diagnostics, printer on stdout for data
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'viewyard -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "View Commands:"},
		&cobra.Group{ID: GroupWorkspace, Title: "Workspace Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Setup Commands:"},
	)

	// View commands
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newAddRepoCmd())
	rootCmd.AddCommand(newSwitchCmd())

	// Workspace commands
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newRebaseCmd())
	rootCmd.AddCommand(newCommitAllCmd())
	rootCmd.AddCommand(newPushAllCmd())

	// Setup commands
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newValidateComprehensiveCmd())
	rootCmd.AddCommand(newSetupJustfilesCmd())
}
