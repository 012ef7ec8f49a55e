package diag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapegen/internal/export"
	"shapegen/internal/logger"
	"shapegen/internal/shapes"
)

func TestRagBasketStepsOrder(t *testing.T) {
	steps := RagBasketSteps(shapes.DefaultRagBasketOptions())
	require.Len(t, steps, 4)
	assert.Equal(t, "step1_base", steps[0].Name)
	assert.Equal(t, "step2_shell", steps[1].Name)
	assert.Equal(t, "step3_slot", steps[2].Name)
	assert.Equal(t, "step4_lattice", steps[3].Name)
}

func TestRagBasketStepsBuild(t *testing.T) {
	for _, step := range RagBasketSteps(shapes.DefaultRagBasketOptions()) {
		s, err := step.Build()
		require.NoError(t, err, "step %s", step.Name)
		assert.False(t, s.IsEmpty(), "step %s", step.Name)
	}
}

func TestRunExportsEveryStep(t *testing.T) {
	log, err := logger.New("dev")
	require.NoError(t, err)
	dir := t.TempDir()
	steps := RagBasketSteps(shapes.DefaultRagBasketOptions())
	require.NoError(t, Run(log, steps, export.Options{Dir: dir, Cells: 32}))
	for _, step := range steps {
		info, err := os.Stat(filepath.Join(dir, step.Name+".stl"))
		require.NoError(t, err, "step %s", step.Name)
		assert.Greater(t, info.Size(), int64(0))
	}
}
