package relocate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard(t *testing.T) {
	t.Run("round trip restores identical contents", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "target", "Cargo.lock")
		dst := filepath.Join(dir, "proj", "Cargo.lock")
		require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))
		require.NoError(t, os.WriteFile(src, []byte("locked deps"), 0o644))

		g := New(Pair{Source: src, Dest: dst})
		require.NoError(t, g.Enter())

		// While "inside" the region the file sits at the destination.
		data, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "locked deps", string(data))
		_, err = os.Stat(src)
		assert.True(t, os.IsNotExist(err))

		g.Restore()

		data, err = os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "locked deps", string(data))
		_, err = os.Stat(dst)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing source is a no-op on enter", func(t *testing.T) {
		dir := t.TempDir()
		g := New(Pair{
			Source: filepath.Join(dir, "nope", "Cargo.lock"),
			Dest:   filepath.Join(dir, "proj", "Cargo.lock"),
		})
		require.NoError(t, g.Enter())
		_, err := os.Stat(filepath.Join(dir, "proj", "Cargo.lock"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing dest is a no-op on restore", func(t *testing.T) {
		dir := t.TempDir()
		g := New(Pair{
			Source: filepath.Join(dir, "a"),
			Dest:   filepath.Join(dir, "b"),
		})
		g.Restore() // must not panic or create anything
		_, err := os.Stat(filepath.Join(dir, "a"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("dest parent directory is created", func(t *testing.T) {
		dir := t.TempDir()
		src := filepath.Join(dir, "Cargo.lock")
		dst := filepath.Join(dir, "deep", "nested", "Cargo.lock")
		require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

		g := New(Pair{Source: src, Dest: dst})
		require.NoError(t, g.Enter())
		_, err := os.Stat(dst)
		assert.NoError(t, err)
	})

	t.Run("file created inside the region moves to the source", func(t *testing.T) {
		// Cargo writing a fresh Cargo.lock during the build: nothing was
		// moved on enter, but restore adopts it into the target dir.
		dir := t.TempDir()
		src := filepath.Join(dir, "target", "Cargo.lock")
		dst := filepath.Join(dir, "proj", "Cargo.lock")
		require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o755))

		g := New(Pair{Source: src, Dest: dst})
		require.NoError(t, g.Enter())

		require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
		require.NoError(t, os.WriteFile(dst, []byte("fresh"), 0o644))

		g.Restore()

		data, err := os.ReadFile(src)
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(data))
	})
}
