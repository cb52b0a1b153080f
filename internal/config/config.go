// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/packageexpress/shipcalc/internal/cueutil"
	"github.com/packageexpress/shipcalc/internal/issue"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "shipcalc"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment variable shipcalc reads.
	EnvPrefix = "SHIPCALC"
	// DefaultEnvFile is loaded from the working directory when present.
	DefaultEnvFile = ".env"

	// maxConfigFileSize bounds how much of a config file is read.
	maxConfigFileSize = 1 << 20
)

//go:embed config_schema.cue
var configSchema string

// settingKeys lists every configuration key. Viper only resolves environment
// variables for keys it knows about, so each one gets a default.
var settingKeys = []string{
	"limits.max_weight",
	"limits.max_total_size",
	"pricing.rate_divisor",
	"pricing.currency",
	"session.on_reject",
	"ui.color_scheme",
	"ui.verbose",
}

// ConfigDir returns the shipcalc configuration directory. When override is set
// it is returned unchanged; otherwise the platform user config directory is used
// ($XDG_CONFIG_HOME or ~/.config on Linux, ~/Library/Application Support on
// macOS, %AppData% on Windows).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// EnvName returns the environment variable read for a configuration key,
// e.g. "limits.max_weight" -> "SHIPCALC_LIMITS_MAX_WEIGHT".
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// ResolvePath returns the config file Load would read. found is false when no
// file exists, in which case path is where `shipcalc config init` writes one.
func ResolvePath(opts LoadOptions) (path string, found bool, err error) {
	if opts.ConfigFilePath != "" {
		return opts.ConfigFilePath, fileExists(opts.ConfigFilePath), nil
	}

	cfgDir, err := ConfigDir(opts.ConfigDirPath)
	if err != nil {
		return "", false, err
	}
	dirPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(dirPath) {
		return dirPath, true, nil
	}

	localPath := ConfigFileName + "." + ConfigFileExt
	if fileExists(localPath) {
		return localPath, true, nil
	}

	return dirPath, false, nil
}

// loadWithOptions performs option-driven config loading and returns the decoded
// configuration together with the config file that was read ("" for none).
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("limits.max_weight", defaults.Limits.MaxWeight)
	v.SetDefault("limits.max_total_size", defaults.Limits.MaxTotalSize)
	v.SetDefault("pricing.rate_divisor", defaults.Pricing.RateDivisor)
	v.SetDefault("pricing.currency", defaults.Pricing.Currency)
	v.SetDefault("session.on_reject", defaults.Session.OnReject)
	v.SetDefault("ui.color_scheme", defaults.UI.ColorScheme)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, found, err := ResolvePath(opts)
	if err != nil {
		return nil, "", err
	}

	resolvedPath := ""
	switch {
	case found:
		if err := loadCUEIntoViper(v, path); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithSuggestion("Run 'shipcalc config dump' to see a valid configuration").
				Wrap(err).
				BuildError()
		}
		resolvedPath = path
	case opts.ConfigFilePath != "":
		return nil, "", issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(opts.ConfigFilePath).
			WithSuggestion("Verify the file path is correct").
			WithSuggestion("Run 'shipcalc config init' to create a default configuration").
			Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
			BuildError()
	}

	if err := loadEnvFileIntoViper(v, opts.EnvFile); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("load environment file").
			WithResource(envFileOrDefault(opts.EnvFile)).
			WithSuggestion("Use KEY=VALUE lines, e.g. " + EnvName("limits.max_weight") + "=50").
			Wrap(err).
			BuildError()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", issue.WrapWithOperation(err, "decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithSuggestion("Limits and the rate divisor must be positive numbers").
			WithSuggestion("session.on_reject accepts \"retry\" or \"abort\"").
			Wrap(err).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// loadCUEIntoViper validates a CUE file against the embedded schema and merges
// its values into v.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := cueutil.ParseAndDecodeString[map[string]any](
		configSchema,
		data,
		"#Config",
		cueutil.WithFilename(path),
		cueutil.WithMaxFileSize(maxConfigFileSize),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigSyntax, err)
	}

	// Merge into Viper (preserves defaults, allows env overrides)
	if err := v.MergeConfigMap(result.Value); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}
	return nil
}

// loadEnvFileIntoViper merges SHIPCALC_* entries of a dotenv file into v. The
// file sits between the config file and the real environment: it overrides
// config.cue but never a variable that is actually set. An explicit path must
// exist; the default .env is optional. The process environment is not modified.
func loadEnvFileIntoViper(v *viper.Viper, path string) error {
	explicit := path != ""
	path = envFileOrDefault(path)
	if !fileExists(path) {
		if explicit {
			return fmt.Errorf("env file not found: %s", path)
		}
		return nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read env file: %w", err)
	}

	layer := viper.New()
	for _, key := range settingKeys {
		if val, ok := values[EnvName(key)]; ok {
			layer.Set(key, val)
		}
	}
	if len(layer.AllKeys()) == 0 {
		return nil
	}
	if err := v.MergeConfigMap(layer.AllSettings()); err != nil {
		return fmt.Errorf("failed to merge env file: %w", err)
	}
	return nil
}

func envFileOrDefault(path string) string {
	if path == "" {
		return DefaultEnvFile
	}
	return path
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}
