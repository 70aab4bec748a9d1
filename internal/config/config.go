package config

import (
	"path/filepath"
	"strings"
)

// Filesystem conventions. These are fixed — cargo's own names plus the
// symlink convention this tool recognises.
const (
	// ManifestName marks the root of a buildable crate.
	ManifestName = "Cargo.toml"

	// TargetEnvVar is the variable cargo reads for its output directory.
	TargetEnvVar = "CARGO_TARGET_DIR"

	// SymlinkSuffix marks a symlink as an intentional binary link.
	// A plain `run -> target/debug/run` symlink is ambiguous; `run.bin`
	// says "I know where my target dir is, follow me".
	SymlinkSuffix = ".bin"

	// FingerprintDir is the subdirectory cargo creates inside every
	// target dir. Its presence tells us a symlink really points into
	// build output and not some random executable.
	FingerprintDir = ".fingerprint"

	// TargetLiteral terminates every computed target path.
	TargetLiteral = "-target"

	// LockfileName is the file the relocation guard shuttles between the
	// target dir and the manifest dir.
	LockfileName = "Cargo.lock"

	// DefaultCargoBin is spawned when $CARGO is unset or would recurse
	// into this wrapper.
	DefaultCargoBin = "cargo"
)

// VCSMarkers are the directory names that delimit the source tree.
var VCSMarkers = []string{".git", ".svn", ".hg"}

// Env var names for the wrapper's own knobs.
const (
	EnvCargoBin     = "CARGO"
	EnvVerbose      = "CARGO_WRAP_VERBOSE"
	EnvMoveLockfile = "CARGO_WRAP_MOVE_LOCKFILE"
)

// Config is the wrapper's entire runtime configuration, built once from the
// process environment at startup. The resolution code takes values from
// here and never touches the environment itself.
type Config struct {
	CargoBin     string // binary to spawn as the child process
	Verbose      bool   // print resolved paths and provenance
	MoveLockfile bool   // enable the Cargo.lock relocation guard
}

// FromEnv builds a Config from an os.Environ()-shaped slice. selfName is
// the basename this wrapper was invoked as; if $CARGO points back at it we
// would fork-bomb, so fall back to the stock binary.
func FromEnv(environ []string, selfName string) Config {
	cfg := Config{CargoBin: DefaultCargoBin}

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch name {
		case EnvCargoBin:
			if value != "" {
				cfg.CargoBin = value
			}
		case EnvVerbose:
			cfg.Verbose = truthy(value)
		case EnvMoveLockfile:
			cfg.MoveLockfile = truthy(value)
		}
	}

	if filepath.Base(cfg.CargoBin) == filepath.Base(selfName) {
		cfg.CargoBin = DefaultCargoBin
	}

	return cfg
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
