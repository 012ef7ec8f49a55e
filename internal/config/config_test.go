package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Chdir(t.TempDir())
	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	want := Prefs{
		DraftDir:  "out/draft",
		FinalDir:  "out/final",
		MeshCells: 128,
		Renderer:  "dual-contouring",
	}
	require.NoError(t, Save(want))
	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFillsMissingFields(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, Save(Prefs{DraftDir: "custom"}))
	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "custom", p.DraftDir)
	assert.Equal(t, Default().FinalDir, p.FinalDir)
	assert.Equal(t, Default().MeshCells, p.MeshCells)
	assert.Equal(t, Default().Renderer, p.Renderer)
}
