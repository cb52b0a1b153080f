// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// EnvPrefix matches config.EnvPrefix. It is repeated here so config tests can
// import this package.
const EnvPrefix = "SHIPCALC_"

// IsolateConfig points every configuration source at a fresh directory and
// returns it: the user config directory resolves below dir, the working
// directory becomes dir, and SHIPCALC_* variables from the caller's
// environment are hidden. Everything is restored when the test ends.
//
// Tests using it must not call t.Parallel.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	SetHomeDir(t, dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	t.Setenv("APPDATA", filepath.Join(dir, ".config"))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) {
			MustUnsetenv(t, key)
		}
	}

	t.Chdir(dir)
	return dir
}

// SetHomeDir sets the home directory variable of the current platform
// (USERPROFILE on Windows, HOME elsewhere) for the duration of the test.
func SetHomeDir(t *testing.T, dir string) {
	t.Helper()

	switch runtime.GOOS {
	case "windows":
		t.Setenv("USERPROFILE", dir)
	default:
		t.Setenv("HOME", dir)
	}
}

// MustUnsetenv unsets key and restores its original value when the test ends.
func MustUnsetenv(t *testing.T, key string) {
	t.Helper()

	// t.Setenv registers the restore and rejects parallel tests.
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
}

// MustWriteFile writes content to path, creating parent directories.
func MustWriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
