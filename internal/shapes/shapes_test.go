package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryNames(t *testing.T) {
	assert.Equal(t, []string{"proto-board-case", "rag-basket", "sensor-case"}, Names())
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	sh, ok := Lookup("RAG-Basket")
	require.True(t, ok)
	assert.Equal(t, "rag-basket", sh.Name)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("teapot")
	assert.False(t, ok)
}

func TestAllShapesBuildWithDefaults(t *testing.T) {
	for _, sh := range All() {
		parts, err := sh.Build(nil)
		require.NoError(t, err, "shape %s", sh.Name)
		require.NotEmpty(t, parts, "shape %s", sh.Name)
		for _, p := range parts {
			assert.NotEmpty(t, p.Name)
			assert.False(t, p.Solid.IsEmpty(), "part %s of %s", p.Name, sh.Name)
		}
	}
}

func TestBuildRejectsBadParams(t *testing.T) {
	sh, ok := Lookup("rag-basket")
	require.True(t, ok)
	_, err := sh.Build([]byte("not: [valid\n"))
	assert.Error(t, err)
}

func TestRagBasketDimensions(t *testing.T) {
	b, err := BuildRagBasket(DefaultRagBasketOptions())
	require.NoError(t, err)
	x, y, z := b.Size()
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 120, y, 1e-9)
	assert.InDelta(t, 150, z, 1e-9)
}

func TestRagBasketMaterialProbes(t *testing.T) {
	o := DefaultRagBasketOptions()
	b, err := BuildRagBasket(o)
	require.NoError(t, err)

	// Front wall below the slot is solid; inside the slot is air.
	assert.Less(t, b.Evaluate(0, 59, -30), 0.0, "front wall below slot")
	assert.Greater(t, b.Evaluate(0, 59, 40), 0.0, "front slot")
	// Interior cavity is air, the bottom is solid.
	assert.Greater(t, b.Evaluate(0, 0, 10), 0.0, "cavity")
	assert.Less(t, b.Evaluate(0, 0, -74), 0.0, "bottom")
	// With default spacing the back-wall lattice leaves a gap at the face
	// center; the nearest diamond center is at (6, 8).
	assert.Less(t, b.Evaluate(0, -59, 0), 0.0, "back wall between diamonds")
	assert.Greater(t, b.Evaluate(6, -59, 8), 0.0, "back wall diamond")
	// Side wall diamond at the same grid position.
	assert.Greater(t, b.Evaluate(49, 6, 8), 0.0, "side wall diamond")
}

func TestRagBasketRejectsInvalidOptions(t *testing.T) {
	o := DefaultRagBasketOptions()
	o.Wall = 60
	_, err := BuildRagBasket(o)
	assert.Error(t, err)

	o = DefaultRagBasketOptions()
	o.SlotDepthRatio = 1.5
	_, err = BuildRagBasket(o)
	assert.Error(t, err)

	o = DefaultRagBasketOptions()
	o.SlotWidth = 200
	_, err = BuildRagBasket(o)
	assert.Error(t, err)
}

func TestRagBasketYAMLOverride(t *testing.T) {
	sh, ok := Lookup("rag-basket")
	require.True(t, ok)
	parts, err := sh.Build([]byte("width: 80.0\nheight: 100.0\n"))
	require.NoError(t, err)
	require.Len(t, parts, 1)
	x, _, z := parts[0].Solid.Size()
	assert.InDelta(t, 80, x, 1e-9)
	assert.InDelta(t, 100, z, 1e-9)
}

func TestLatticeOffsetsTooSmallFace(t *testing.T) {
	o := DefaultRagBasketOptions()
	assert.Nil(t, latticeOffsets(o, 20, 20))
}

func TestLatticeOffsetsGrid(t *testing.T) {
	o := DefaultRagBasketOptions()
	// Back wall of the default basket: 96 x 148 face, 6 x 8 diamonds.
	offsets := latticeOffsets(o, 96, 148)
	require.Len(t, offsets, 48)
	// Grid is centered: offsets are symmetric about the origin.
	first := offsets[0]
	last := offsets[len(offsets)-1]
	assert.InDelta(t, -last[0], first[0], 1e-9)
	assert.InDelta(t, -last[1], first[1], 1e-9)
}

func TestSensorCaseBuild(t *testing.T) {
	o := DefaultSensorCaseOptions()
	base, lid, err := BuildSensorCase(o)
	require.NoError(t, err)

	x, y, z := base.Size()
	assert.InDelta(t, 37, x, 1e-9)
	assert.InDelta(t, 29, y, 1e-9)
	assert.InDelta(t, 46, z, 1e-9)

	// Pin opening pierces the back wall near the floor; outside the opening
	// the wall is solid.
	assert.Greater(t, base.Evaluate(0, 13.5, -19), 0.0, "pin opening")
	assert.Less(t, base.Evaluate(10, 13.5, -19), 0.0, "back wall beside pin opening")
	// Fresnel opening removes the front wall at payload height.
	assert.Greater(t, base.Evaluate(0, -13.5, 0), 0.0, "fresnel opening")

	// Lid spans the case footprint; tabs and skirt hang below the plate.
	lx, ly, lz := lid.Size()
	assert.InDelta(t, 37, lx, 1e-9)
	assert.InDelta(t, 29, ly, 1e-9)
	assert.InDelta(t, o.LidThick+o.Wall, lz, 1e-9)
}

func TestSensorCaseRejectsWideOpening(t *testing.T) {
	o := DefaultSensorCaseOptions()
	o.PinOpenWidth = o.InnerX + 1
	_, _, err := BuildSensorCase(o)
	assert.Error(t, err)
}

func TestProtoBoardBuild(t *testing.T) {
	o := DefaultProtoBoardOptions()
	base, lid, err := BuildProtoBoard(o)
	require.NoError(t, err)

	x, y, z := base.Size()
	assert.InDelta(t, 29, x, 1e-9)
	assert.InDelta(t, 54, y, 1e-9)
	assert.InDelta(t, 14, z, 1e-9)

	// Connector slot pierces the short wall at its center height; beside
	// the slot the wall is solid.
	assert.Greater(t, base.Evaluate(0, -26, -0.5), 0.0, "connector slot")
	assert.Less(t, base.Evaluate(10, -26, -0.5), 0.0, "wall beside slot")
	// Slot opens through the rim.
	assert.Greater(t, base.Evaluate(0, -26, 6), 0.0, "slot at rim")

	lx, ly, _ := lid.Size()
	assert.InDelta(t, 29, lx, 1e-9)
	assert.InDelta(t, 54, ly, 1e-9)
}

func TestProtoBoardRejectsWideSlot(t *testing.T) {
	o := DefaultProtoBoardOptions()
	o.SlotWidth = o.InnerX
	_, _, err := BuildProtoBoard(o)
	assert.Error(t, err)
}
