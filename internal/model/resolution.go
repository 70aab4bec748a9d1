package model

// Provenance says how a target path was obtained. It is reporting-only:
// nothing branches on it after resolution returns.
type Provenance string

const (
	ProvenanceSymlink  Provenance = "discovered-via-symlink"
	ProvenanceComputed Provenance = "computed"
)

// StepKind classifies one recorded decision during resolution.
type StepKind string

const (
	StepManifestProbe   StepKind = "manifest-probe"   // walked up looking for Cargo.toml
	StepVCSProbe        StepKind = "vcs-probe"        // walked up looking for a VCS marker
	StepSymlinkAccepted StepKind = "symlink-accepted" // candidate's grandparent had the fingerprint marker
	StepSymlinkRejected StepKind = "symlink-rejected" // candidate skipped or warned about
	StepComputed        StepKind = "computed-path"    // fell through to path arithmetic
)

// Step is one entry in the resolution trail. The wrapper only prints these
// in verbose mode; the doctor renders the whole trail.
type Step struct {
	Kind   StepKind `json:"kind"`
	Path   string   `json:"path"`
	Detail string   `json:"detail,omitempty"`
	OK     bool     `json:"ok"`
}

// Resolution is everything a single invocation worked out. Transient —
// recomputed from the filesystem on every run, never persisted.
type Resolution struct {
	ManifestDir string     `json:"manifest_dir"`
	VCSRoot     string     `json:"vcs_root"`
	TargetDir   string     `json:"target_dir"`
	Provenance  Provenance `json:"provenance"`
	Steps       []Step     `json:"steps,omitempty"`
	Warnings    []string   `json:"warnings,omitempty"`
}
