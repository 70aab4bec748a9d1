package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"cargowrap/internal/config"
)

// FindAncestor walks from start upward, testing start itself first, then
// each parent. The filesystem root is its own parent, which is the
// termination signal. Returns the first directory satisfying pred, or
// false when the root is passed without a match.
func FindAncestor(start string, pred func(dir string) bool) (string, bool) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	dir := filepath.Clean(abs)
	for {
		if pred(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// FindManifestRoot locates the nearest ancestor of start (inclusive)
// containing a Cargo.toml. This is where cargo will be invoked from.
func FindManifestRoot(start string) (string, error) {
	dir, ok := FindAncestor(start, func(dir string) bool {
		info, err := os.Stat(filepath.Join(dir, config.ManifestName))
		return err == nil && info.Mode().IsRegular()
	})
	if !ok {
		return "", fmt.Errorf("no %s found in %s or any parent directory", config.ManifestName, start)
	}
	return dir, nil
}

// FindVCSRoot locates the nearest ancestor of manifestDir (inclusive)
// containing a version-control marker. Searching starts from the manifest
// dir rather than the original cwd so that a nested crate still resolves
// to the outer source tree.
//
// A `.git` entry is accepted whether it is a directory or a file; git
// worktrees and submodules use a plain file.
func FindVCSRoot(manifestDir string) (string, error) {
	dir, ok := FindAncestor(manifestDir, func(dir string) bool {
		for _, marker := range config.VCSMarkers {
			if _, err := os.Lstat(filepath.Join(dir, marker)); err == nil {
				return true
			}
		}
		return false
	})
	if !ok {
		return "", fmt.Errorf("no VCS root (%v) found above %s", config.VCSMarkers, manifestDir)
	}
	return dir, nil
}
