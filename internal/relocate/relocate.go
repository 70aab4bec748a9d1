// Package relocate moves files aside for the duration of the child process
// and puts them back afterwards. Built for exactly one customer: letting
// Cargo.lock live in the target dir while cargo still finds it next to
// Cargo.toml during a build.
package relocate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Pair is one file to move on entry and move back on exit.
type Pair struct {
	Source string // where the file normally lives
	Dest   string // where it must sit while the child runs
}

// Guard is a scoped set of relocations. Usage:
//
//	g := relocate.New(pairs...)
//	if err := g.Enter(); err != nil { ... }
//	defer g.Restore()
//
// Restore is safe to call whether or not Enter moved anything; it checks
// the destination rather than remembering state, so an earlier run that
// died mid-build is healed by the next one.
type Guard struct {
	pairs []Pair
}

func New(pairs ...Pair) *Guard {
	return &Guard{pairs: pairs}
}

// Enter moves each pair's source to its destination. Sources that do not
// exist are skipped; the destination's parent is created as needed. A
// failed move aborts with the pairs moved so far left in place — the
// caller's deferred Restore puts them back.
func (g *Guard) Enter() error {
	for _, p := range g.pairs {
		if _, err := os.Stat(p.Source); err != nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p.Dest), 0o755); err != nil {
			return fmt.Errorf("relocating %s: %w", p.Source, err)
		}
		if err := os.Rename(p.Source, p.Dest); err != nil {
			return fmt.Errorf("relocating %s: %w", p.Source, err)
		}
	}
	return nil
}

// Restore moves each pair's destination back to its source. A missing
// destination is a no-op, not an error. Restore failures are reported on
// stderr but never returned: the process is about to exit with the child's
// status and a secondary filesystem error must not mask it.
func (g *Guard) Restore() {
	for _, p := range g.pairs {
		if _, err := os.Stat(p.Dest); err != nil {
			continue
		}
		if err := os.Rename(p.Dest, p.Source); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not move %s back to %s: %v\n", p.Dest, p.Source, err)
		}
	}
}
