package launch

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv(t *testing.T) {
	t.Run("appends target dir", func(t *testing.T) {
		env := Env([]string{"HOME=/home/x"}, "/src/proj-target")
		assert.Equal(t, []string{"HOME=/home/x", "CARGO_TARGET_DIR=/src/proj-target"}, env)
	})

	t.Run("replaces an inherited value", func(t *testing.T) {
		env := Env([]string{"CARGO_TARGET_DIR=/stale", "TERM=xterm"}, "/fresh")
		assert.NotContains(t, env, "CARGO_TARGET_DIR=/stale")
		assert.Contains(t, env, "CARGO_TARGET_DIR=/fresh")
		assert.Contains(t, env, "TERM=xterm")
	})

	t.Run("does not touch lookalike names", func(t *testing.T) {
		env := Env([]string{"MY_CARGO_TARGET_DIR_BACKUP=/keep"}, "/fresh")
		assert.Contains(t, env, "MY_CARGO_TARGET_DIR_BACKUP=/keep")
	})
}

func TestRun(t *testing.T) {
	t.Run("zero exit", func(t *testing.T) {
		code, err := Run("sh", []string{"-c", "exit 0"}, t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("propagates nonzero exit code", func(t *testing.T) {
		code, err := Run("sh", []string{"-c", "exit 7"}, t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, 7, code)
	})

	t.Run("runs in the given directory", func(t *testing.T) {
		dir, err := filepath.EvalSymlinks(t.TempDir())
		require.NoError(t, err)
		code, err := Run("sh", []string{"-c", "test \"$(pwd -P)\" = \"$EXPECTED\""}, dir,
			[]string{"EXPECTED=" + dir, "PATH=/usr/bin:/bin"})
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	})

	t.Run("missing binary is an error, not an exit code", func(t *testing.T) {
		_, err := Run("definitely-not-a-real-binary-xyz", nil, t.TempDir(), nil)
		assert.Error(t, err)
	})
}
