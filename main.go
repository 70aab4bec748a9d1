// cargowrap wraps cargo and redirects its target directory outside the
// source tree, so recursive greps, backups and editor indexers never crawl
// build artifacts. Install it as `cargo` earlier on PATH or call it
// directly; every argument is forwarded to the real cargo verbatim.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cargowrap/internal/config"
	"cargowrap/internal/launch"
	"cargowrap/internal/relocate"
	"cargowrap/internal/target"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv(os.Environ(), os.Args[0])

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargowrap: cannot determine working directory: %v\n", err)
		return 1
	}

	res, err := target.ResolveFrom(cwd)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargowrap: %v\n", err)
		return 1
	}

	if cfg.Verbose {
		fmt.Printf("source: %s\n", res.ManifestDir)
		fmt.Printf("target: %s (%s)\n", res.TargetDir, res.Provenance)
	}

	// Cargo creates the target dir itself on first use; just say so once.
	if _, err := os.Stat(res.TargetDir); os.IsNotExist(err) {
		fmt.Printf("cargowrap: build output will go to %s\n", res.TargetDir)
	}

	if cfg.MoveLockfile {
		guard := relocate.New(relocate.Pair{
			Source: filepath.Join(res.TargetDir, config.LockfileName),
			Dest:   filepath.Join(res.ManifestDir, config.LockfileName),
		})
		if err := guard.Enter(); err != nil {
			fmt.Fprintf(os.Stderr, "cargowrap: %v\n", err)
			return 1
		}
		defer guard.Restore()
	}

	code, err := launch.Run(cfg.CargoBin, os.Args[1:], res.ManifestDir, launch.Env(os.Environ(), res.TargetDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargowrap: failed to run %s: %v\n", cfg.CargoBin, err)
		return 1
	}
	return code
}
