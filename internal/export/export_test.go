package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapegen/internal/logger"
	"shapegen/internal/solid"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	require.NoError(t, err)
	return log
}

func TestWriteSkipForce(t *testing.T) {
	log := testLogger(t)
	dir := t.TempDir()
	box, err := solid.Box(10, 10, 10)
	require.NoError(t, err)
	opts := Options{Dir: dir, Cells: 32}

	path, written, err := Write(log, "box", box, opts)
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, filepath.Join(dir, "box.stl"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Second run skips the existing file untouched.
	_, written, err = Write(log, "box", box, opts)
	require.NoError(t, err)
	assert.False(t, written)

	// Force rewrites it.
	opts.Force = true
	_, written, err = Write(log, "box", box, opts)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWriteRejectsEmptySolid(t *testing.T) {
	log := testLogger(t)
	_, _, err := Write(log, "empty", solid.Solid{}, Options{Dir: t.TempDir()})
	assert.Error(t, err)
}

func TestWriteRejectsUnknownRenderer(t *testing.T) {
	log := testLogger(t)
	box, err := solid.Box(5, 5, 5)
	require.NoError(t, err)
	_, _, err = Write(log, "box", box, Options{Dir: t.TempDir(), Renderer: "raytracer"})
	assert.Error(t, err)
}

func TestRendererNames(t *testing.T) {
	for _, name := range []string{"", "marching-cubes", "dual-contouring"} {
		r, err := Renderer(name, 32)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "box.stl", Filename("box"))
	assert.Equal(t, "box.stl", Filename("box.stl"))
}

func TestPromoteKeepsBytes(t *testing.T) {
	draft := t.TempDir()
	final := t.TempDir()
	content := []byte("solid test\nendsolid test\n")
	require.NoError(t, os.WriteFile(filepath.Join(draft, "part.stl"), content, 0644))

	dst, err := Promote(draft, final, "part")
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, content, got)
	_, err = os.Stat(filepath.Join(draft, "part.stl"))
	assert.True(t, os.IsNotExist(err))
}

func TestPromoteMissingDraft(t *testing.T) {
	_, err := Promote(t.TempDir(), t.TempDir(), "nothing")
	assert.Error(t, err)
}

func TestPromoteRefusesOverwrite(t *testing.T) {
	draft := t.TempDir()
	final := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(draft, "part.stl"), []byte("a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(final, "part.stl"), []byte("b"), 0644))
	_, err := Promote(draft, final, "part")
	assert.Error(t, err)
}
