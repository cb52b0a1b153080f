// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsolateConfig(t *testing.T) {
	t.Setenv("SHIPCALC_LIMITS_MAX_WEIGHT", "70")

	dir := IsolateConfig(t)

	if _, ok := os.LookupEnv("SHIPCALC_LIMITS_MAX_WEIGHT"); ok {
		t.Error("SHIPCALC_LIMITS_MAX_WEIGHT should be unset")
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	wantWd, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	gotWd, err := filepath.EvalSymlinks(wd)
	if err != nil {
		t.Fatal(err)
	}
	if gotWd != wantWd {
		t.Errorf("working directory = %q, want %q", gotWd, wantWd)
	}

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir() failed: %v", err)
	}
	if !strings.HasPrefix(cfgDir, dir) {
		t.Errorf("user config dir %q is not below %q", cfgDir, dir)
	}
}

func TestMustWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "config.cue")
	MustWriteFile(t, path, "limits: max_weight: 60\n")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if string(data) != "limits: max_weight: 60\n" {
		t.Errorf("content = %q", data)
	}
}
