// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/packageexpress/shipcalc/internal/config"
)

type stubConfigProvider struct {
	cfg *config.Config
	err error
}

func (p *stubConfigProvider) Load(_ context.Context, _ config.LoadOptions) (*config.Config, error) {
	if p.err != nil {
		return nil, p.err
	}
	cfg := config.DefaultConfig()
	if p.cfg != nil {
		copied := *p.cfg
		cfg = &copied
	}
	return cfg, nil
}

type runResult struct {
	stdout string
	stderr string
	err    error
}

// execute runs the root command with input on stdin and captures both streams.
func execute(t *testing.T, provider ConfigProvider, input string, args ...string) runResult {
	t.Helper()

	if provider == nil {
		provider = &stubConfigProvider{}
	}
	// cobra falls back to os.Args when the argument slice is nil.
	if args == nil {
		args = []string{}
	}

	var stdout, stderr bytes.Buffer
	app, err := NewApp(Dependencies{
		Config: provider,
		Stdin:  strings.NewReader(input),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())

	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}
