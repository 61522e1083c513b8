package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/hookmaster/internal/log"
	"github.com/raphi011/hookmaster/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	logPath string

	// logFile is the rotating log sink opened by PersistentPreRunE.
	logFile io.Closer
)

// Command group IDs for organizing help output
const (
	GroupHooks = "hooks"
	GroupSetup = "setup"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hookmaster",
	Short: "Git hook manager",
	Long: `hookmaster installs delegating git hooks and runs the commands configured
in each repository's githooks.toml.

For prepare-commit-msg it also fills an empty commit message from the branch
name: "feature/JIRA-123-add-login" becomes "JIRA-123: Add Login".`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, verbose, quiet)

		path := logPath
		if path == "" {
			path = os.Getenv(log.EnvLogFile)
		}
		if path != "" {
			w, err := log.OpenFile(path)
			if err != nil {
				return err
			}
			logFile = w
			logger = logger.WithFile(w)
		}

		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hookmaster: failed to get working directory: %v\n", err)
		os.Exit(exitFailure)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ctx = withWorkDir(ctx, workDir)
	ctx = output.WithPrinter(ctx, output.NewStyled(os.Stdout, os.Environ()))
	rootCmd.SetContext(ctx)

	err = rootCmd.Execute()
	cancel()
	if logFile != nil {
		logFile.Close()
	}

	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// reportError prints err for the user. Usage errors get a pointer to help.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "hookmaster: %v\n", err)
	var usage *usageError
	if errors.As(err, &usage) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'hookmaster -h' for help")
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output and external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-file", "", "Also write debug logs to this file (env "+log.EnvLogFile+")")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	rootCmd.MarkPersistentFlagFilename("log-file")

	// Flag errors are usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands (called by installed hooks):"},
	)

	// Setup commands
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newDoctorCmd())

	// Hook commands
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newPrepareCommitMsgCmd())
}
