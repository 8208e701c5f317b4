// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sdkdocs runs the external SDK-reference generation step. The
// step is an opaque script: docbundle only cares whether it exists and
// whether it exits zero. A missing script is tolerated; a failing one
// aborts the whole bundle run.
package sdkdocs

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/afero"
)

// Runner executes the SDK-reference generation step.
type Runner interface {
	// Generate runs the step, writing its progress to diag. A missing
	// step is reported on diag and returns nil; a step that runs and
	// fails returns an error.
	Generate(diag io.Writer) error
}

// executor abstracts process execution for testing.
type executor interface {
	Run(script string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) Run(script string, stdout, stderr io.Writer) error {
	cmd := exec.Command(script)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

var defaultExec executor = osExecutor{}

// ScriptRunner runs a generation script from the filesystem.
type ScriptRunner struct {
	fsys   afero.Fs
	script string
	exec   executor
}

// NewScriptRunner returns a Runner for the script at the given path.
func NewScriptRunner(fsys afero.Fs, script string) *ScriptRunner {
	return &ScriptRunner{fsys: fsys, script: script, exec: defaultExec}
}

// Generate runs the configured script. The script's own output is folded
// into the diagnostic stream, never into the artifact.
func (r *ScriptRunner) Generate(diag io.Writer) error {
	exists, err := afero.Exists(r.fsys, r.script)
	if err != nil || !exists {
		fmt.Fprintf(diag, "Warning: SDK doc generation script not found, skipping: %s\n", r.script)
		return nil
	}

	fmt.Fprintf(diag, "Generating SDK reference docs: %s\n", r.script)
	if err := r.exec.Run(r.script, diag, diag); err != nil {
		return fmt.Errorf("SDK doc generation script %s: %w", r.script, err)
	}
	return nil
}

// NopRunner skips SDK doc generation entirely. Used by --skip-sdk and by
// subcommands that only inspect the tree.
type NopRunner struct{}

func (NopRunner) Generate(io.Writer) error { return nil }
