// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/packageexpress/shipcalc/internal/config"
	"github.com/packageexpress/shipcalc/internal/estimator"
	"github.com/packageexpress/shipcalc/internal/issue"
	"github.com/packageexpress/shipcalc/internal/logctx"
	"github.com/packageexpress/shipcalc/internal/tui"
)

// runEstimate runs one interactive session. It is the failure boundary: every
// error that escapes the session is reported here and becomes an *ExitError.
func runEstimate(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		ctx = logctx.WithLogger(ctx, logctx.New(app.stderr, app.flags.verbose))
		return app.reportConfigError(ctx, err)
	}

	ctx = logctx.WithLogger(ctx, logctx.New(app.stderr, cfg.UI.Verbose))

	console := tui.NewConsole(app.stdin, app.stdout)
	console.Banner(estimator.Banner)

	session := estimator.NewSession(console, sessionOptions(cfg))
	if err := session.Run(ctx); err != nil {
		return app.reportFailure(ctx, cfg, err)
	}

	return nil
}

// reportFailure logs err, shows it to the user and maps it to an exit status.
// A rejection under the abort policy was already explained by the session, so
// only the catalog entry is added.
func (a *App) reportFailure(ctx context.Context, cfg *config.Config, err error) error {
	logger := logctx.FromContext(ctx)

	if errors.Is(err, estimator.ErrRejected) {
		logger.Info("estimate aborted", "err", err)
		a.renderIssue(issue.PackageRejectedId, cfg.UI.ColorScheme)
		return &ExitError{Code: 1, Err: err}
	}

	logger.Error("estimate failed", "err", err)

	styles := tui.NewStyles(a.stdout)
	fmt.Fprintln(a.stdout, styles.Error.Render("An error occurred:")+" "+formatErrorForDisplay(err, cfg.UI.Verbose))

	a.renderIssue(issueFor(err), cfg.UI.ColorScheme)
	return &ExitError{Code: 1, Err: err}
}

// reportConfigError handles a configuration that could not be loaded. It runs
// before any prompt, so it writes to stderr only.
func (a *App) reportConfigError(ctx context.Context, err error) error {
	logctx.FromContext(ctx).Error("configuration rejected", "err", err)

	styles := tui.NewStyles(a.stderr)
	fmt.Fprintln(a.stderr, styles.Error.Render("An error occurred:")+" "+formatErrorForDisplay(err, a.flags.verbose))

	a.renderIssue(issue.ConfigLoadFailedId, config.ColorSchemeAuto)
	return &ExitError{Code: 1, Err: err}
}

// renderIssue prints the help text of a catalog entry to stderr. Rendering
// problems are ignored; the error itself has already been printed.
func (a *App) renderIssue(id issue.Id, scheme config.ColorScheme) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	out, err := entry.Render(tui.MarkdownStyle(a.stderr, string(scheme)))
	if err != nil {
		return
	}
	fmt.Fprint(a.stderr, out)
}

func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, tui.ErrInputClosed):
		return issue.InputClosedId
	default:
		return issue.UnexpectedFailureId
	}
}
