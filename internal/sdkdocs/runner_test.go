// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sdkdocs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// mockExecutor records invocations and returns a configured error.
type mockExecutor struct {
	ran    []string
	err    error
	output string
}

func (m *mockExecutor) Run(script string, stdout, stderr io.Writer) error {
	m.ran = append(m.ran, script)
	if m.output != "" {
		fmt.Fprint(stdout, m.output)
	}
	return m.err
}

func TestScriptRunnerGenerate(t *testing.T) {
	const script = "scripts/generate_sdk_docs.sh"

	tests := []struct {
		name         string
		scriptExists bool
		execErr      error
		wantRun      bool
		wantErr      bool
		wantDiag     string
	}{
		{
			name:         "missing script warns and continues",
			scriptExists: false,
			wantRun:      false,
			wantDiag:     "Warning: SDK doc generation script not found, skipping: " + script,
		},
		{
			name:         "script succeeds",
			scriptExists: true,
			wantRun:      true,
			wantDiag:     "Generating SDK reference docs: " + script,
		},
		{
			name:         "script failure is fatal",
			scriptExists: true,
			execErr:      errors.New("exit status 2"),
			wantRun:      true,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			if tt.scriptExists {
				if err := afero.WriteFile(fsys, script, []byte("#!/bin/sh\n"), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			exec := &mockExecutor{err: tt.execErr}
			r := &ScriptRunner{fsys: fsys, script: script, exec: exec}

			var diag bytes.Buffer
			err := r.Generate(&diag)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), script) {
					t.Errorf("error should name the script, got: %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := len(exec.ran) > 0; got != tt.wantRun {
				t.Errorf("script run = %v, want %v", got, tt.wantRun)
			}
			if tt.wantDiag != "" && !strings.Contains(diag.String(), tt.wantDiag) {
				t.Errorf("diagnostics missing %q, got: %q", tt.wantDiag, diag.String())
			}
		})
	}
}

func TestScriptRunnerForwardsOutputToDiagnostics(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "gen.sh", []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	exec := &mockExecutor{output: "building text docs...\n"}
	r := &ScriptRunner{fsys: fsys, script: "gen.sh", exec: exec}

	var diag bytes.Buffer
	if err := r.Generate(&diag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(diag.String(), "building text docs...") {
		t.Errorf("script output should reach the diagnostic stream, got: %q", diag.String())
	}
}

func TestNopRunner(t *testing.T) {
	var diag bytes.Buffer
	if err := (NopRunner{}).Generate(&diag); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag.Len() != 0 {
		t.Errorf("NopRunner should be silent, got: %q", diag.String())
	}
}
