// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/packageexpress/shipcalc/internal/config"
	"github.com/packageexpress/shipcalc/internal/estimator"
	"github.com/packageexpress/shipcalc/internal/issue"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer; every command handler receives an App reference.
	App struct {
		Config ConfigProvider
		stdin  io.Reader
		stdout io.Writer
		stderr io.Writer
		flags  globalFlags
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdin  io.Reader
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// globalFlags holds the persistent flags shared by every command.
	globalFlags struct {
		configPath string
		envFile    string
		verbose    bool
		onReject   string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdin == nil {
		deps.Stdin = os.Stdin
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}

	return &App{
		Config: deps.Config,
		stdin:  deps.Stdin,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		EnvFile:        a.flags.envFile,
	}
}

// loadConfig loads configuration and applies command-line overrides, which
// take precedence over every other source.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		return nil, err
	}

	if a.flags.verbose {
		cfg.UI.Verbose = true
	}
	if a.flags.onReject != "" {
		cfg.Session.OnReject = config.RejectPolicy(a.flags.onReject)
		if err := cfg.Validate(); err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("apply command-line flags").
				WithResource("--on-reject").
				WithSuggestion("Use --on-reject=retry or --on-reject=abort").
				Wrap(err).
				BuildError()
		}
	}

	return cfg, nil
}

// sessionOptions converts configuration into estimator options.
func sessionOptions(cfg *config.Config) estimator.Options {
	return estimator.Options{
		Limits:   cfg.ShipmentLimits(),
		Pricing:  cfg.ShipmentPricing(),
		OnReject: estimator.RejectPolicy(cfg.Session.OnReject),
	}
}

