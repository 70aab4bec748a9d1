// Package launch spawns the real cargo with a doctored environment and
// hands its exit code back. Any inherited CARGO_TARGET_DIR is stripped
// first so the resolved one is the only value the child sees.
package launch

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"cargowrap/internal/config"
)

// Env returns a copy of environ with any existing CARGO_TARGET_DIR entries
// removed and the resolved one appended. Everything else is inherited
// unchanged.
func Env(environ []string, targetDir string) []string {
	prefix := config.TargetEnvVar + "="
	env := make([]string, 0, len(environ)+1)
	for _, kv := range environ {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		env = append(env, kv)
	}
	return append(env, prefix+targetDir)
}

// Run executes bin with args in dir, blocking until it exits, and returns
// its exit code. Stdio is inherited so cargo's output streams through
// untouched.
//
// SIGINT and SIGTERM are forwarded to the child instead of killing us:
// the caller has a deferred lockfile restore that must still run after an
// interrupted build, so we outlive the child by a few milliseconds.
func Run(bin string, args []string, dir string, env []string) (int, error) {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return -1, err
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				_ = cmd.Process.Signal(sig)
			case <-done:
				return
			}
		}
	}()

	err := cmd.Wait()
	close(done)

	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			// Shell convention for signal deaths.
			return 128 + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
