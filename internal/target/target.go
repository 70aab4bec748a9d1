// Package target turns a manifest directory and a VCS root into the
// out-of-tree directory cargo should build into.
//
// Two strategies, tried in order:
//  1. symlink discovery: a `foo.bin` symlink in the manifest dir pointing
//     at an executable inside an existing target dir names that dir.
//  2. path arithmetic: <vcs-root><-relative-segments>-target.
package target

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cargowrap/internal/config"
	"cargowrap/internal/model"
	"cargowrap/internal/workspace"
)

// ResolveFrom runs the full chain from a working directory: manifest root,
// VCS root, then target resolution. The returned Resolution is non-nil even
// on error so callers can still render the steps taken so far.
func ResolveFrom(cwd string) (*model.Resolution, error) {
	res := &model.Resolution{}

	manifestDir, err := workspace.FindManifestRoot(cwd)
	if err != nil {
		res.Steps = append(res.Steps, model.Step{Kind: model.StepManifestProbe, Path: cwd, Detail: err.Error()})
		return res, err
	}
	res.ManifestDir = manifestDir
	res.Steps = append(res.Steps, model.Step{Kind: model.StepManifestProbe, Path: manifestDir, OK: true})

	vcsRoot, err := workspace.FindVCSRoot(manifestDir)
	if err != nil {
		res.Steps = append(res.Steps, model.Step{Kind: model.StepVCSProbe, Path: manifestDir, Detail: err.Error()})
		return res, err
	}
	res.VCSRoot = vcsRoot
	res.Steps = append(res.Steps, model.Step{Kind: model.StepVCSProbe, Path: vcsRoot, OK: true})

	if err := Resolve(res); err != nil {
		return res, err
	}
	return res, nil
}

// Resolve fills in TargetDir and Provenance on a Resolution that already
// has ManifestDir and VCSRoot. Strategy A first, arithmetic as fallback.
func Resolve(res *model.Resolution) error {
	if dir, ok := discoverSymlink(res); ok {
		res.TargetDir = dir
		res.Provenance = model.ProvenanceSymlink
		return nil
	}

	dir, err := computedPath(res)
	if err != nil {
		return err
	}
	res.TargetDir = dir
	res.Provenance = model.ProvenanceComputed
	res.Steps = append(res.Steps, model.Step{Kind: model.StepComputed, Path: dir, OK: true})
	return nil
}

// discoverSymlink scans the manifest dir for a symlink into an existing
// target dir. Two passes over the (already sorted) listing: `.bin`-suffixed
// names first, then everything else. First match wins.
func discoverSymlink(res *model.Resolution) (string, bool) {
	entries, err := os.ReadDir(res.ManifestDir)
	if err != nil {
		// Can't list the dir but we may still compute a path.
		res.Steps = append(res.Steps, model.Step{
			Kind: model.StepSymlinkRejected, Path: res.ManifestDir,
			Detail: fmt.Sprintf("cannot list directory: %v", err),
		})
		return "", false
	}

	var candidates []fs.DirEntry
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), config.SymlinkSuffix) {
			candidates = append(candidates, e)
		}
	}
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), config.SymlinkSuffix) {
			candidates = append(candidates, e)
		}
	}

	for _, e := range candidates {
		if e.Type()&fs.ModeSymlink == 0 {
			continue
		}
		link := filepath.Join(res.ManifestDir, e.Name())

		resolved, err := filepath.EvalSymlinks(link)
		if err != nil {
			res.Steps = append(res.Steps, model.Step{
				Kind: model.StepSymlinkRejected, Path: link, Detail: "broken symlink",
			})
			continue
		}

		info, err := os.Stat(resolved)
		if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0o111 == 0 {
			res.Steps = append(res.Steps, model.Step{
				Kind: model.StepSymlinkRejected, Path: link,
				Detail: fmt.Sprintf("%s is not an executable file", resolved),
			})
			continue
		}

		// Binaries live at <target>/<profile>/<name>, so the target dir
		// is two levels up from the executable.
		ancestor := filepath.Dir(filepath.Dir(resolved))
		if _, err := os.Stat(filepath.Join(ancestor, config.FingerprintDir)); err == nil {
			res.Steps = append(res.Steps, model.Step{
				Kind: model.StepSymlinkAccepted, Path: ancestor,
				Detail: fmt.Sprintf("%s -> %s", e.Name(), resolved), OK: true,
			})
			return ancestor, true
		}

		// Plausible but unmarked: never trust it, even as the sole
		// candidate. Warn and keep scanning.
		warning := fmt.Sprintf("symlink %s points at executable %s but %s contains no %s; ignoring",
			e.Name(), resolved, ancestor, config.FingerprintDir)
		res.Warnings = append(res.Warnings, warning)
		res.Steps = append(res.Steps, model.Step{
			Kind: model.StepSymlinkRejected, Path: link, Detail: warning,
		})
	}

	return "", false
}

// computedPath derives the target dir from the manifest dir's position
// below the VCS root:
//
//	/src/proj              -> /src/proj-target
//	/src/proj/crates/core  -> /src/proj-crates-core-target
func computedPath(res *model.Resolution) (string, error) {
	rel, err := filepath.Rel(res.VCSRoot, res.ManifestDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("manifest dir %s is not below VCS root %s", res.ManifestDir, res.VCSRoot))
		res.Steps = append(res.Steps, model.Step{
			Kind: model.StepComputed, Path: res.ManifestDir,
			Detail: fmt.Sprintf("not a descendant of %s", res.VCSRoot),
		})
		return "", fmt.Errorf("manifest dir %s is not below VCS root %s", res.ManifestDir, res.VCSRoot)
	}

	suffix := ""
	if rel != "." {
		suffix = "-" + strings.ReplaceAll(rel, string(filepath.Separator), "-")
	}

	root := strings.TrimRight(res.VCSRoot, string(filepath.Separator))
	return root + suffix + config.TargetLiteral, nil
}
