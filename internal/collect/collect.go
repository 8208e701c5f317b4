// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package collect assembles the ordered list of files that make up the
// consolidated documentation artifact. Order is significant: the fixed
// top-level document first, then the documentation tree sorted
// lexicographically, then generated SDK text pages, then the protocol
// specification last.
package collect

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/pdiddy/docbundle/pkg/types"
)

// FileEntry pairs a real filesystem path with the display path shown in
// the index and content tags. The two differ for generated SDK pages,
// whose deeply nested build location is rewritten to a short logical
// prefix. Entries are immutable once constructed.
type FileEntry struct {
	Path    string
	Display string
}

// docExtensions is the allow-list for documentation-tree files.
var docExtensions = map[string]bool{
	".md":  true,
	".rst": true,
}

// Collect returns the ordered file list for a bundle run. Every returned
// entry existed when Collect ran; callers must still tolerate entries
// vanishing before they are read. Missing optional inputs (root document,
// specification file, SDK build directory) produce a diagnostic line and
// are omitted rather than failing the run.
func Collect(fsys afero.Fs, cfg types.BundleConfig, diag io.Writer) ([]FileEntry, error) {
	var entries []FileEntry

	if fileExists(fsys, cfg.RootDoc) {
		entries = append(entries, FileEntry{Path: cfg.RootDoc, Display: cfg.RootDoc})
	} else {
		fmt.Fprintf(diag, "Warning: File not found, skipping: %s\n", cfg.RootDoc)
	}

	docs, err := collectDocs(fsys, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(diag, "Warning: documentation tree not found: %s\n", cfg.DocsDir)
		} else {
			return nil, fmt.Errorf("walking documentation tree %s: %w", cfg.DocsDir, err)
		}
	}
	entries = append(entries, docs...)

	if dirExists(fsys, cfg.SDK.BuildDir) {
		sdk, err := collectSDKText(fsys, cfg)
		if err != nil {
			return nil, fmt.Errorf("walking SDK text build directory %s: %w", cfg.SDK.BuildDir, err)
		}
		entries = append(entries, sdk...)
	} else {
		fmt.Fprintf(diag, "SDK text build directory not present, skipping generated reference: %s\n", cfg.SDK.BuildDir)
	}

	if fileExists(fsys, cfg.SpecFile) {
		entries = append(entries, FileEntry{Path: cfg.SpecFile, Display: cfg.SpecFile})
	} else {
		fmt.Fprintf(diag, "Warning: File not found, skipping: %s\n", cfg.SpecFile)
	}

	return entries, nil
}

// collectDocs gathers allowed files under the documentation tree, minus
// denied subpaths and the output artifact itself, sorted by display path.
func collectDocs(fsys afero.Fs, cfg types.BundleConfig) ([]FileEntry, error) {
	var found []FileEntry

	err := afero.Walk(fsys, cfg.DocsDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := relPath(cfg.DocsDir, p)
		if relErr != nil || rel == "." {
			return nil
		}
		if denied(rel, cfg.Exclude) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if !docExtensions[strings.ToLower(path.Ext(rel))] {
			return nil
		}
		if samePath(p, cfg.Output) {
			return nil
		}
		found = append(found, FileEntry{Path: p, Display: rel})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Display < found[j].Display })
	return found, nil
}

// collectSDKText gathers every regular file under the SDK build
// directory, rewriting display paths to the configured logical prefix,
// sorted by display path.
func collectSDKText(fsys afero.Fs, cfg types.BundleConfig) ([]FileEntry, error) {
	var found []FileEntry

	err := afero.Walk(fsys, cfg.SDK.BuildDir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if samePath(p, cfg.Output) {
			return nil
		}
		rel, relErr := relPath(cfg.SDK.BuildDir, p)
		if relErr != nil {
			return nil
		}
		found = append(found, FileEntry{Path: p, Display: path.Join(cfg.SDK.DisplayPrefix, rel)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Display < found[j].Display })
	return found, nil
}

// denied reports whether a docs-relative path falls under any exclude
// entry. A denied directory denies its whole subtree; a denied file
// denies exactly itself.
func denied(rel string, exclude []string) bool {
	rel = path.Clean(rel)
	for _, e := range exclude {
		e = path.Clean(filepath.ToSlash(e))
		if rel == e || strings.HasPrefix(rel, e+"/") {
			return true
		}
	}
	return false
}

// relPath returns p relative to root with forward slashes.
func relPath(root, p string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// samePath reports whether two paths name the same file after cleaning.
// Used to keep the aggregator from bundling its own output.
func samePath(a, b string) bool {
	return path.Clean(filepath.ToSlash(a)) == path.Clean(filepath.ToSlash(b))
}

func fileExists(fsys afero.Fs, p string) bool {
	info, err := fsys.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(fsys afero.Fs, p string) bool {
	info, err := fsys.Stat(p)
	return err == nil && info.IsDir()
}
