// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/packageexpress/shipcalc/internal/issue"
	"github.com/packageexpress/shipcalc/internal/tui"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the shipcalc command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	styles := tui.NewStyles(app.stdout)

	rootCmd := &cobra.Command{
		Use:   "shipcalc",
		Short: "Estimate Package Express shipping costs",
		Long: styles.Title.Render("shipcalc") + styles.Muted.Render(" - Package Express shipping-rate estimator") + `

Run without arguments to start an interactive estimate. shipcalc asks for
the package weight, then its width, height and length, one answer per line,
and prints the estimated cost.

Packages heavier than 50 or whose width + height + length exceeds 50 are
rejected. Both limits and the pricing are configurable.

` + styles.Muted.Render("Examples:") + `
  shipcalc                                   Start an interactive estimate
  printf '10\n2\n2\n2\n' | shipcalc          Answer the questions from a pipe
  shipcalc --on-reject abort                 Stop on the first rejection
  shipcalc quote --weight 10 --width 2 --height 2 --length 2
  shipcalc config show                       Show the active configuration`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstimate(cmd.Context(), app)
		},
	}

	rootCmd.SetIn(app.stdin)
	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&app.flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/shipcalc/config.cue)")
	pf.StringVar(&app.flags.envFile, "env-file", "", "dotenv file with SHIPCALC_* settings (default is ./.env when present)")
	pf.BoolVarP(&app.flags.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	pf.StringVar(&app.flags.onReject, "on-reject", "", "what to do after a rejected package: retry or abort")

	rootCmd.AddCommand(newQuoteCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute builds the command tree and runs it. This is called by main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// handleError renders errors that were not reported by a command handler.
// An *ExitError has already been shown to the user and is not repeated.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
