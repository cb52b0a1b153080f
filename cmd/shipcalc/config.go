// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packageexpress/shipcalc/internal/config"
	"github.com/packageexpress/shipcalc/internal/issue"
	"github.com/packageexpress/shipcalc/internal/tui"

	"github.com/spf13/cobra"
)

const (
	dumpFormatCUE  = "cue"
	dumpFormatTOML = "toml"
)

var errConfigExists = errors.New("config file already exists")

// newConfigCommand creates the `shipcalc config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shipcalc configuration",
		Long: `Manage shipcalc configuration.

Configuration is stored in:
  - Linux: ~/.config/shipcalc/config.cue
  - macOS: ~/Library/Application Support/shipcalc/config.cue
  - Windows: %APPDATA%\shipcalc\config.cue

A config.cue in the working directory is used when the user file is absent.
Every key can be overridden with a SHIPCALC_* environment variable, for
example SHIPCALC_LIMITS_MAX_WEIGHT=70.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd.Context(), app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	var dumpFormat string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Output the resolved configuration as CUE or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumpConfig(cmd.Context(), app, dumpFormat)
		},
	}
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "o", dumpFormatCUE, "output format: cue or toml")
	cfgCmd.AddCommand(dumpCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	path, found, err := config.ResolvePath(app.loadOptions())
	if err != nil {
		return err
	}

	styles := tui.NewStyles(app.stdout)
	row := func(key string, value any) {
		fmt.Fprintf(app.stdout, "  %s %v\n", styles.Key.Render(key+":"), value)
	}

	fmt.Fprintln(app.stdout, styles.Title.Render("Configuration"))
	if found {
		row("file", path)
	} else {
		row("file", styles.Muted.Render("(none, using defaults)"))
	}
	fmt.Fprintln(app.stdout)

	fmt.Fprintln(app.stdout, styles.Title.Render("Limits"))
	row("max_weight", cfg.Limits.MaxWeight)
	row("max_total_size", cfg.Limits.MaxTotalSize)
	fmt.Fprintln(app.stdout)

	fmt.Fprintln(app.stdout, styles.Title.Render("Pricing"))
	row("rate_divisor", cfg.Pricing.RateDivisor)
	row("currency", cfg.Pricing.Currency)
	fmt.Fprintln(app.stdout)

	fmt.Fprintln(app.stdout, styles.Title.Render("Session"))
	row("on_reject", cfg.Session.OnReject)
	fmt.Fprintln(app.stdout)

	fmt.Fprintln(app.stdout, styles.Title.Render("UI"))
	row("color_scheme", cfg.UI.ColorScheme)
	row("verbose", cfg.UI.Verbose)

	return nil
}

func showConfigPath(app *App) error {
	path, found, err := config.ResolvePath(app.loadOptions())
	if err != nil {
		return err
	}

	if found {
		fmt.Fprintln(app.stdout, path)
		return nil
	}

	styles := tui.NewStyles(app.stdout)
	fmt.Fprintln(app.stdout, path+" "+styles.Muted.Render("(not found, using defaults)"))
	return nil
}

func initConfig(app *App) error {
	path, found, err := config.ResolvePath(app.loadOptions())
	if err != nil {
		return err
	}
	if found {
		return issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(path).
			WithSuggestion("Edit the existing file, or remove it and run 'shipcalc config init' again").
			Wrap(errConfigExists).
			BuildError()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GenerateCUE(config.DefaultConfig())), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	styles := tui.NewStyles(app.stdout)
	fmt.Fprintln(app.stdout, styles.Title.Render("Created")+" "+path)
	return nil
}

func dumpConfig(ctx context.Context, app *App, format string) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	switch format {
	case dumpFormatCUE:
		fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
		return nil
	case dumpFormatTOML:
		out, err := config.GenerateTOML(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(app.stdout, out)
		return nil
	default:
		return fmt.Errorf("%w %q (valid: %s, %s)", errUnsupportedFormat, format, dumpFormatCUE, dumpFormatTOML)
	}
}
