// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bundle

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

// Check compares freshly assembled bundle bytes against the artifact on
// disk. It returns true when the artifact is current, or false with a
// unified diff describing what a rebuild would change. A missing
// artifact counts as stale with an empty diff.
func Check(fsys afero.Fs, path string, fresh []byte) (bool, string, error) {
	existing, err := afero.ReadFile(fsys, path)
	if err != nil {
		if exists, _ := afero.Exists(fsys, path); !exists {
			return false, "", nil
		}
		return false, "", fmt.Errorf("reading existing artifact %s: %w", path, err)
	}

	if string(existing) == string(fresh) {
		return true, "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(existing)),
		B:        difflib.SplitLines(string(fresh)),
		FromFile: path,
		ToFile:   path + " (rebuilt)",
		Context:  3,
	})
	if err != nil {
		return false, "", fmt.Errorf("computing diff for %s: %w", path, err)
	}
	return false, diff, nil
}
