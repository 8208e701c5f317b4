// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bundle assembles the consolidated documentation artifact: a
// fixed header, an optional project summary, a file index, and the
// verbatim content of every collected file wrapped in a file tag. The
// document is built append-only in memory and flushed once by the
// caller, so a failed run never leaves a half-written artifact behind.
package bundle

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/pdiddy/docbundle/internal/collect"
	"github.com/pdiddy/docbundle/pkg/types"
)

const headerFormat = `# %s - Full Documentation

This document consolidates every documentation page, the generated SDK
reference, and the protocol specification into one file for consumption
by language models and other tooling.

`

// Builder assembles bundle documents from a filesystem. The filesystem
// and diagnostic writer are injected so assembly is testable against an
// in-memory tree with a captured diagnostic stream.
type Builder struct {
	fsys afero.Fs
	cfg  types.BundleConfig
	diag io.Writer
}

// Stats summarizes a build: how many content blocks were written and how
// many indexed entries were skipped because their file had vanished.
type Stats struct {
	Appended int
	Skipped  int
}

// New returns a Builder over the given filesystem and configuration.
// Diagnostic lines are written to diag, never into the artifact.
func New(fsys afero.Fs, cfg types.BundleConfig, diag io.Writer) *Builder {
	return &Builder{fsys: fsys, cfg: cfg, diag: diag}
}

// Build assembles the complete document for the given file list and
// returns its bytes. Files that vanished since collection are skipped
// with a warning; their index line remains, their content block does
// not. That discrepancy is accepted, not corrected.
func (b *Builder) Build(entries []collect.FileEntry) ([]byte, Stats) {
	var buf bytes.Buffer
	var stats Stats

	b.writeHeader(&buf)
	b.appendSummary(&buf)
	b.writeIndex(&buf, entries)

	for _, e := range entries {
		if b.appendFile(&buf, e) {
			stats.Appended++
		} else {
			stats.Skipped++
		}
	}

	return buf.Bytes(), stats
}

// writeHeader writes the fixed introductory header.
func (b *Builder) writeHeader(buf *bytes.Buffer) {
	fmt.Fprintf(b.diag, "Writing header for %s\n", b.cfg.ProjectName)
	fmt.Fprintf(buf, headerFormat, b.cfg.ProjectName)
}

// appendSummary writes the project summary section when the summary file
// exists. An absent summary file omits the section entirely.
func (b *Builder) appendSummary(buf *bytes.Buffer) {
	data, err := afero.ReadFile(b.fsys, b.cfg.SummaryFile)
	if err != nil {
		fmt.Fprintf(b.diag, "Warning: File not found, skipping: %s\n", b.cfg.SummaryFile)
		return
	}
	fmt.Fprintf(b.diag, "Adding project summary from %s\n", b.cfg.SummaryFile)
	buf.WriteString("## Project Summary\n\n")
	buf.Write(data)
	buf.WriteString("\n---\n\n")
}

// writeIndex writes one bullet line per entry, in list order. Pure
// formatting: no filtering happens here.
func (b *Builder) writeIndex(buf *bytes.Buffer, entries []collect.FileEntry) {
	fmt.Fprintf(b.diag, "Writing file index (%d entries)\n", len(entries))
	buf.WriteString("## File Index\n\n")
	for _, e := range entries {
		fmt.Fprintf(buf, "- %s\n", e.Display)
	}
	buf.WriteString("\n---\n\n")
}

// appendFile writes one file's content wrapped in a file tag, reporting
// whether a block was written. Content goes in raw: a file that itself
// contains the closing tag sequence will corrupt the document, an
// accepted limitation of the format.
func (b *Builder) appendFile(buf *bytes.Buffer, e collect.FileEntry) bool {
	data, err := afero.ReadFile(b.fsys, e.Path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(b.diag, "Warning: File not found, skipping: %s\n", e.Path)
		} else {
			fmt.Fprintf(b.diag, "Warning: could not read %s, skipping: %v\n", e.Path, err)
		}
		return false
	}

	fmt.Fprintf(b.diag, "Appended: %s\n", e.Display)
	fmt.Fprintf(buf, "<file path=%q>\n", e.Display)
	buf.Write(data)
	buf.WriteString("</file>\n\n")
	return true
}
