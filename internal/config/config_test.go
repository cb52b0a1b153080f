// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/packageexpress/shipcalc/internal/issue"
	"github.com/packageexpress/shipcalc/internal/testutil"
)

// writeFile creates path with content, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// isolatedOptions points every lookup at a fresh temporary directory.
func isolatedOptions(t *testing.T) (LoadOptions, string) {
	t.Helper()
	dir := testutil.IsolateConfig(t)
	return LoadOptions{
		ConfigDirPath: dir,
		EnvFile:       "",
	}, dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	opts, _ := isolatedOptions(t)

	cfg, path, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "" {
		t.Errorf("expected no resolved path, got %q", path)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("expected defaults, got %+v", *cfg)
	}
}

func TestLoad_CUEFileFromConfigDir(t *testing.T) {
	opts, dir := isolatedOptions(t)
	cfgPath := filepath.Join(dir, "config.cue")
	writeFile(t, cfgPath, `
limits: max_weight: 70
pricing: {
	rate_divisor: 50.5
	currency:     "EUR "
}
session: on_reject: "abort"
`)

	cfg, path, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != cfgPath {
		t.Errorf("resolved path = %q, want %q", path, cfgPath)
	}
	if cfg.Limits.MaxWeight != 70 {
		t.Errorf("max_weight = %v, want 70", cfg.Limits.MaxWeight)
	}
	if cfg.Limits.MaxTotalSize != 50 {
		t.Errorf("max_total_size = %v, want default 50", cfg.Limits.MaxTotalSize)
	}
	if cfg.Pricing.RateDivisor != 50.5 || cfg.Pricing.Currency != "EUR " {
		t.Errorf("pricing = %+v", cfg.Pricing)
	}
	if cfg.Session.OnReject != RejectAbort {
		t.Errorf("on_reject = %q, want abort", cfg.Session.OnReject)
	}
}

func TestLoad_WorkingDirectoryFiles(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), "limits: max_weight: 65\n")
	testutil.MustWriteFile(t, filepath.Join(dir, ".env"), EnvName("session.on_reject")+"=abort\n")

	cfg, path, err := loadWithOptions(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != "config.cue" {
		t.Errorf("resolved path = %q, want config.cue", path)
	}
	if cfg.Limits.MaxWeight != 65 {
		t.Errorf("max_weight = %v, want 65", cfg.Limits.MaxWeight)
	}
	if cfg.Session.OnReject != RejectAbort {
		t.Errorf("on_reject = %q, want abort from .env", cfg.Session.OnReject)
	}
}

func TestLoad_UserConfigDirWinsOverWorkingDirectory(t *testing.T) {
	dir := testutil.IsolateConfig(t)
	userDir, err := ConfigDir("")
	if err != nil {
		t.Fatalf("ConfigDir() failed: %v", err)
	}
	testutil.MustWriteFile(t, filepath.Join(userDir, "config.cue"), "limits: max_weight: 40\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "config.cue"), "limits: max_weight: 65\n")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limits.MaxWeight != 40 {
		t.Errorf("max_weight = %v, want 40 from the user config dir", cfg.Limits.MaxWeight)
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	opts, dir := isolatedOptions(t)
	opts.ConfigFilePath = filepath.Join(dir, "nope.cue")

	_, _, err := loadWithOptions(context.Background(), opts)
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %T: %v", err, err)
	}
	if ae.Resource != opts.ConfigFilePath {
		t.Errorf("resource = %q, want %q", ae.Resource, opts.ConfigFilePath)
	}
	if !ae.HasSuggestions() {
		t.Error("expected suggestions on missing config file")
	}
	if !strings.Contains(err.Error(), "config file not found") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantText string
	}{
		{"negative limit", "limits: max_weight: -1\n", "max_weight"},
		{"unknown field", "limits: max_height: 3\n", "max_height"},
		{"bad policy", "session: on_reject: \"sometimes\"\n", "on_reject"},
		{"syntax error", "limits: {\n", "config.cue"},
		{"wrong type", "ui: verbose: \"yes\"\n", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, dir := isolatedOptions(t)
			writeFile(t, filepath.Join(dir, "config.cue"), tt.content)

			_, _, err := loadWithOptions(context.Background(), opts)
			if !errors.Is(err, ErrConfigSyntax) {
				t.Fatalf("expected ErrConfigSyntax, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("error %q should mention %q", err, tt.wantText)
			}
		})
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	opts, dir := isolatedOptions(t)
	writeFile(t, filepath.Join(dir, "config.cue"), "limits: max_weight: 70\n")
	t.Setenv(EnvName("limits.max_weight"), "75")
	t.Setenv(EnvName("ui.verbose"), "true")

	cfg, _, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limits.MaxWeight != 75 {
		t.Errorf("max_weight = %v, want 75 from environment", cfg.Limits.MaxWeight)
	}
	if !cfg.UI.Verbose {
		t.Error("verbose should be enabled from environment")
	}
}

func TestLoad_EnvFileLayer(t *testing.T) {
	opts, dir := isolatedOptions(t)
	writeFile(t, filepath.Join(dir, "config.cue"), "limits: {max_weight: 70, max_total_size: 60}\n")
	envPath := filepath.Join(dir, "shipcalc.env")
	writeFile(t, envPath, strings.Join([]string{
		"# comment",
		EnvName("limits.max_weight") + "=80",
		EnvName("limits.max_total_size") + "=90",
		EnvName("pricing.currency") + `="GBP "`,
		"UNRELATED=1",
	}, "\n"))
	opts.EnvFile = envPath
	t.Setenv(EnvName("limits.max_total_size"), "95")

	cfg, _, err := loadWithOptions(context.Background(), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Limits.MaxWeight != 80 {
		t.Errorf("max_weight = %v, want 80 from env file", cfg.Limits.MaxWeight)
	}
	if cfg.Limits.MaxTotalSize != 95 {
		t.Errorf("max_total_size = %v, want 95 from environment", cfg.Limits.MaxTotalSize)
	}
	if cfg.Pricing.Currency != "GBP " {
		t.Errorf("currency = %q, want %q", cfg.Pricing.Currency, "GBP ")
	}
	if _, ok := os.LookupEnv(EnvName("limits.max_weight")); ok {
		t.Error("env file must not modify the process environment")
	}
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	opts, dir := isolatedOptions(t)
	opts.EnvFile = filepath.Join(dir, "missing.env")

	_, _, err := loadWithOptions(context.Background(), opts)
	if err == nil || !strings.Contains(err.Error(), "env file not found") {
		t.Fatalf("expected env file not found error, got %v", err)
	}
}

func TestLoad_InvalidEnvironmentValue(t *testing.T) {
	opts, _ := isolatedOptions(t)
	t.Setenv(EnvName("session.on_reject"), "never")

	_, _, err := loadWithOptions(context.Background(), opts)
	if !errors.Is(err, ErrInvalidRejectPolicy) {
		t.Fatalf("expected ErrInvalidRejectPolicy, got %v", err)
	}
	var ae *issue.ActionableError
	if !errors.As(err, &ae) || ae.Operation != "validate configuration" {
		t.Errorf("expected validate configuration ActionableError, got %v", err)
	}
}

func TestLoad_UndecodableEnvironmentValue(t *testing.T) {
	opts, _ := isolatedOptions(t)
	t.Setenv(EnvName("limits.max_weight"), "heavy")

	_, _, err := loadWithOptions(context.Background(), opts)
	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("expected ActionableError, got %v", err)
	}
	if ae.Operation != "decode configuration" {
		t.Errorf("Operation = %q, want %q", ae.Operation, "decode configuration")
	}
	if !strings.HasPrefix(err.Error(), "failed to decode configuration: ") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestLoad_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider().Load(ctx, LoadOptions{ConfigDirPath: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateCUE_LoadsBack(t *testing.T) {
	opts, dir := isolatedOptions(t)

	want := DefaultConfig()
	want.Limits.MaxWeight = 42.5
	want.Pricing.Currency = "CHF "
	want.Session.OnReject = RejectAbort
	want.UI.ColorScheme = ColorSchemeLight
	writeFile(t, filepath.Join(dir, "config.cue"), GenerateCUE(want))

	got, err := NewProvider().Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("generated config failed to load: %v", err)
	}
	if *got != *want {
		t.Errorf("loaded %+v, want %+v", *got, *want)
	}
}

func TestGenerateTOML(t *testing.T) {
	t.Parallel()

	out, err := GenerateTOML(DefaultConfig())
	if err != nil {
		t.Fatalf("GenerateTOML() error: %v", err)
	}
	for _, want := range []string{"[limits]", "max_weight = 50", "[pricing]", "currency = '$'", "on_reject = 'retry'"} {
		if !strings.Contains(out, want) {
			t.Errorf("TOML output missing %q:\n%s", want, out)
		}
	}
}

func TestResolvePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, found, err := ResolvePath(LoadOptions{ConfigDirPath: dir})
	if err != nil {
		t.Fatalf("ResolvePath() error: %v", err)
	}
	if found {
		t.Error("expected no config file to be found")
	}
	if want := filepath.Join(dir, "config.cue"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	explicit := filepath.Join(dir, "custom.cue")
	writeFile(t, explicit, "")
	path, found, err = ResolvePath(LoadOptions{ConfigFilePath: explicit})
	if err != nil || !found || path != explicit {
		t.Errorf("ResolvePath(explicit) = %q, %v, %v", path, found, err)
	}
}

func TestEnvName(t *testing.T) {
	t.Parallel()

	if got := EnvName("limits.max_total_size"); got != "SHIPCALC_LIMITS_MAX_TOTAL_SIZE" {
		t.Errorf("EnvName() = %q", got)
	}
}
