package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := FromEnv([]string{"HOME=/home/x", "TERM=xterm"}, "cargowrap")
		assert.Equal(t, DefaultCargoBin, cfg.CargoBin)
		assert.False(t, cfg.Verbose)
		assert.False(t, cfg.MoveLockfile)
	})

	t.Run("cargo override", func(t *testing.T) {
		cfg := FromEnv([]string{"CARGO=/opt/rust/bin/cargo-nightly"}, "cargowrap")
		assert.Equal(t, "/opt/rust/bin/cargo-nightly", cfg.CargoBin)
	})

	t.Run("self recursion falls back to default", func(t *testing.T) {
		// Installed as `cargo` and $CARGO pointing back at ourselves
		// would spawn us forever.
		cfg := FromEnv([]string{"CARGO=/usr/local/bin/cargowrap"}, "/somewhere/else/cargowrap")
		assert.Equal(t, DefaultCargoBin, cfg.CargoBin)
	})

	t.Run("truthy values", func(t *testing.T) {
		for _, v := range []string{"1", "true", "TRUE", "yes", "on", " On "} {
			cfg := FromEnv([]string{EnvVerbose + "=" + v}, "cargowrap")
			assert.True(t, cfg.Verbose, "value %q should enable verbose", v)
		}
		for _, v := range []string{"", "0", "false", "off", "nope"} {
			cfg := FromEnv([]string{EnvVerbose + "=" + v}, "cargowrap")
			assert.False(t, cfg.Verbose, "value %q should not enable verbose", v)
		}
	})

	t.Run("lockfile flag", func(t *testing.T) {
		cfg := FromEnv([]string{EnvMoveLockfile + "=1"}, "cargowrap")
		assert.True(t, cfg.MoveLockfile)
	})

	t.Run("malformed entries ignored", func(t *testing.T) {
		cfg := FromEnv([]string{"NOEQUALSSIGN", "CARGO="}, "cargowrap")
		assert.Equal(t, DefaultCargoBin, cfg.CargoBin)
	})
}
