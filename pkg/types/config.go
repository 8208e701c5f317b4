// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared configuration structures for docbundle.
package types

// SDKConfig holds settings for the external SDK-reference generation step.
type SDKConfig struct {
	// Script is the path of the external generation script. A missing
	// script is a warning, not an error; a script that exits non-zero
	// aborts the run.
	Script string `json:"script" yaml:"script"`

	// BuildDir is the directory the script writes plain-text reference
	// pages into (e.g. the Sphinx text-builder output).
	BuildDir string `json:"build_dir" yaml:"build_dir"`

	// DisplayPrefix replaces BuildDir in display paths, so deeply nested
	// generated-doc locations read as a short logical name in the index.
	DisplayPrefix string `json:"display_prefix" yaml:"display_prefix"`
}

// BundleConfig holds all settings for assembling the consolidated
// documentation artifact.
type BundleConfig struct {
	// ProjectName appears in the artifact header.
	ProjectName string `json:"project_name" yaml:"project_name"`

	// RootDoc is the fixed top-level document placed first in the bundle.
	RootDoc string `json:"root_doc" yaml:"root_doc"`

	// DocsDir is the documentation tree to collect from.
	DocsDir string `json:"docs_dir" yaml:"docs_dir"`

	// SummaryFile is an optional project summary included verbatim after
	// the header. Absent file: the section is omitted.
	SummaryFile string `json:"summary_file" yaml:"summary_file"`

	// SpecFile is the protocol specification, appended last.
	SpecFile string `json:"spec_file" yaml:"spec_file"`

	// Output is the path of the consolidated artifact. It is always
	// excluded from collection, wherever it lives.
	Output string `json:"output" yaml:"output"`

	// Exclude lists docs-relative path prefixes to skip during
	// collection: the raw generated SDK source tree, duplicated pages.
	Exclude []string `json:"exclude" yaml:"exclude"`

	// SDK configures the external generation step and where its output
	// is picked up from.
	SDK SDKConfig `json:"sdk" yaml:"sdk"`

	// SiteConfig is the static-site configuration file audited by the
	// site subcommand.
	SiteConfig string `json:"site_config" yaml:"site_config"`
}

// DefaultBundleConfig returns the configuration used when no config file,
// environment, or flags override it. The defaults describe the layout of
// the A2A Protocol documentation repository.
func DefaultBundleConfig() BundleConfig {
	return BundleConfig{
		ProjectName: "A2A Protocol",
		RootDoc:     "README.md",
		DocsDir:     "docs",
		SummaryFile: "llms.txt",
		SpecFile:    "specification/a2a.proto",
		Output:      "llms-full.txt",
		Exclude: []string{
			"sdk/python/api",
			"README.md",
			"sdk/index.md",
		},
		SDK: SDKConfig{
			Script:        "scripts/generate_sdk_docs.sh",
			BuildDir:      "docs/sdk/python/_build/text",
			DisplayPrefix: "sdk/python",
		},
		SiteConfig: "site.yaml",
	}
}
