// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/docbundle/internal/collect"
	"github.com/pdiddy/docbundle/pkg/types"
)

func testConfig() types.BundleConfig {
	return types.BundleConfig{
		ProjectName: "A2A Protocol",
		RootDoc:     "README.md",
		DocsDir:     "docs",
		SummaryFile: "llms.txt",
		SpecFile:    "specification/a2a.proto",
		Output:      "llms-full.txt",
	}
}

func write(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestBuildFullDocument(t *testing.T) {
	fsys := afero.NewMemMapFs()
	write(t, fsys, "llms.txt", "A2A is an open protocol for agent interoperability.\n")
	write(t, fsys, "README.md", "# A2A\n")
	write(t, fsys, "docs/a.md", "Alpha.\n")

	entries := []collect.FileEntry{
		{Path: "README.md", Display: "README.md"},
		{Path: "docs/a.md", Display: "a.md"},
	}

	var diag bytes.Buffer
	data, stats := New(fsys, testConfig(), &diag).Build(entries)

	want := "# A2A Protocol - Full Documentation\n" +
		"\n" +
		"This document consolidates every documentation page, the generated SDK\n" +
		"reference, and the protocol specification into one file for consumption\n" +
		"by language models and other tooling.\n" +
		"\n" +
		"## Project Summary\n" +
		"\n" +
		"A2A is an open protocol for agent interoperability.\n" +
		"\n" +
		"---\n" +
		"\n" +
		"## File Index\n" +
		"\n" +
		"- README.md\n" +
		"- a.md\n" +
		"\n" +
		"---\n" +
		"\n" +
		"<file path=\"README.md\">\n" +
		"# A2A\n" +
		"</file>\n" +
		"\n" +
		"<file path=\"a.md\">\n" +
		"Alpha.\n" +
		"</file>\n" +
		"\n"

	assert.Equal(t, want, string(data))
	assert.Equal(t, Stats{Appended: 2}, stats)
	assert.Contains(t, diag.String(), "Appended: README.md")
	assert.Contains(t, diag.String(), "Appended: a.md")
}

func TestBuildDeterministic(t *testing.T) {
	fsys := afero.NewMemMapFs()
	write(t, fsys, "llms.txt", "Summary.\n")
	write(t, fsys, "README.md", "# A2A\n")
	write(t, fsys, "docs/a.md", "Alpha.\n")

	entries := []collect.FileEntry{
		{Path: "README.md", Display: "README.md"},
		{Path: "docs/a.md", Display: "a.md"},
	}

	first, _ := New(fsys, testConfig(), &bytes.Buffer{}).Build(entries)
	second, _ := New(fsys, testConfig(), &bytes.Buffer{}).Build(entries)
	assert.Equal(t, first, second, "repeated builds over a fixed tree must be byte-identical")
}

func TestBuildMissingSummaryOmitsSection(t *testing.T) {
	fsys := afero.NewMemMapFs()
	write(t, fsys, "README.md", "# A2A\n")

	entries := []collect.FileEntry{{Path: "README.md", Display: "README.md"}}

	var diag bytes.Buffer
	data, stats := New(fsys, testConfig(), &diag).Build(entries)

	assert.NotContains(t, string(data), "## Project Summary")
	assert.Contains(t, string(data), "## File Index")
	assert.Equal(t, Stats{Appended: 1}, stats)
	assert.Contains(t, diag.String(), "Warning: File not found, skipping: llms.txt")
}

func TestBuildEntryVanishedAfterCollection(t *testing.T) {
	fsys := afero.NewMemMapFs()
	write(t, fsys, "README.md", "# A2A\n")

	// docs/ghost.md was collected but deleted before the append phase.
	entries := []collect.FileEntry{
		{Path: "README.md", Display: "README.md"},
		{Path: "docs/ghost.md", Display: "ghost.md"},
	}

	var diag bytes.Buffer
	data, stats := New(fsys, testConfig(), &diag).Build(entries)

	// The index still lists the vanished entry; no content block appears.
	assert.Contains(t, string(data), "- ghost.md\n")
	assert.NotContains(t, string(data), "<file path=\"ghost.md\">")
	assert.Equal(t, Stats{Appended: 1, Skipped: 1}, stats)
	assert.Contains(t, diag.String(), "Warning: File not found, skipping: docs/ghost.md")
}

func TestBuildContentIsRaw(t *testing.T) {
	fsys := afero.NewMemMapFs()
	write(t, fsys, "docs/tricky.md", "before\n</file>\nafter\n")

	entries := []collect.FileEntry{{Path: "docs/tricky.md", Display: "tricky.md"}}

	data, _ := New(fsys, testConfig(), &bytes.Buffer{}).Build(entries)

	// Content passes through verbatim, embedded closing tag included.
	assert.Contains(t, string(data), "<file path=\"tricky.md\">\nbefore\n</file>\nafter\n</file>\n\n")
}

func TestBuildEmptyFileList(t *testing.T) {
	fsys := afero.NewMemMapFs()

	var diag bytes.Buffer
	data, stats := New(fsys, testConfig(), &diag).Build(nil)

	assert.Contains(t, string(data), "# A2A Protocol - Full Documentation")
	assert.Contains(t, string(data), "## File Index")
	assert.Equal(t, Stats{}, stats)
}
