package shapes

import (
	"fmt"
	"math"

	"shapegen/internal/solid"
)

// RagBasketOptions controls the rag basket geometry. Units are mm.
// The basket is an open-top box with a solid bottom. The front (+Y) wall
// has a vertical slot reaching halfway down from the rim by default; the
// back and side walls carry a diamond lattice for airflow.
type RagBasketOptions struct {
	Width  float64 `yaml:"width"`  // outer X dimension
	Depth  float64 `yaml:"depth"`  // outer Y dimension
	Height float64 `yaml:"height"` // outer Z dimension
	Wall   float64 `yaml:"wall"`

	SlotWidth      float64 `yaml:"slot_width"`
	SlotDepthRatio float64 `yaml:"slot_depth_ratio"` // fraction of height the slot reaches down from the rim

	LatticeMargin   float64 `yaml:"lattice_margin"` // margin from face edges to the lattice grid
	DiamondWidth    float64 `yaml:"diamond_width"`
	DiamondHeight   float64 `yaml:"diamond_height"`
	DiamondSpacingX float64 `yaml:"diamond_spacing_x"`
	DiamondSpacingY float64 `yaml:"diamond_spacing_y"`
}

// DefaultRagBasketOptions returns the parameters of the printed original:
// 100 x 120 x 150 outer, 2 mm walls, 30 mm slot halfway down, 8 x 12 mm
// diamonds with 4 mm gaps and a 10 mm edge margin.
func DefaultRagBasketOptions() RagBasketOptions {
	return RagBasketOptions{
		Width:           100.0,
		Depth:           120.0,
		Height:          150.0,
		Wall:            2.0,
		SlotWidth:       30.0,
		SlotDepthRatio:  0.5,
		LatticeMargin:   10.0,
		DiamondWidth:    8.0,
		DiamondHeight:   12.0,
		DiamondSpacingX: 4.0,
		DiamondSpacingY: 4.0,
	}
}

// cutMargin is the extra reach given to every cutter so boolean cuts clear
// the surface they pierce instead of leaving a zero-thickness skin.
const cutMargin = 5.0

func (o RagBasketOptions) validate() error {
	if o.Width <= 0 || o.Depth <= 0 || o.Height <= 0 {
		return fmt.Errorf("basket dimensions must be positive, got %g x %g x %g", o.Width, o.Depth, o.Height)
	}
	if o.Wall <= 0 || 2*o.Wall >= o.Width || 2*o.Wall >= o.Depth || o.Wall >= o.Height {
		return fmt.Errorf("wall %g does not fit a %g x %g x %g basket", o.Wall, o.Width, o.Depth, o.Height)
	}
	if o.SlotWidth <= 0 || o.SlotWidth >= o.Width {
		return fmt.Errorf("slot width %g must be positive and narrower than the basket", o.SlotWidth)
	}
	if o.SlotDepthRatio <= 0 || o.SlotDepthRatio > 1 {
		return fmt.Errorf("slot depth ratio %g must be in (0, 1]", o.SlotDepthRatio)
	}
	if o.DiamondWidth <= 0 || o.DiamondHeight <= 0 {
		return fmt.Errorf("diamond size %g x %g must be positive", o.DiamondWidth, o.DiamondHeight)
	}
	if o.DiamondSpacingX < 0 || o.DiamondSpacingY < 0 {
		return fmt.Errorf("diamond spacing must not be negative")
	}
	if o.LatticeMargin < 0 {
		return fmt.Errorf("lattice margin must not be negative")
	}
	return nil
}

// RagBasketSlotCutter returns the tool that opens the front slot. It spans
// from slightly above the rim down by Height*SlotDepthRatio and pierces only
// the front wall.
func RagBasketSlotCutter(o RagBasketOptions) (solid.Solid, error) {
	slotH := o.Height * o.SlotDepthRatio
	c, err := solid.Box(o.SlotWidth, o.Wall+2*cutMargin, slotH+cutMargin)
	if err != nil {
		return solid.Solid{}, err
	}
	// Top of the cutter sits cutMargin above the rim so the rim is broken
	// cleanly; bottom sits at Height/2 - slotH.
	centerZ := o.Height/2 - slotH/2 + cutMargin/2
	return c.Translate(0, o.Depth/2-o.Wall/2, centerZ), nil
}

// DiamondCutter returns a diamond-profile prism with its axis on Y, width
// along X and height along Z, centered at the origin. length is the
// extrusion depth along Y.
func DiamondCutter(width, height, length float64) (solid.Solid, error) {
	profile := []solid.Point2{
		{X: 0, Y: height / 2},
		{X: -width / 2, Y: 0},
		{X: 0, Y: -height / 2},
		{X: width / 2, Y: 0},
	}
	p, err := solid.Prism(profile, length)
	if err != nil {
		return solid.Solid{}, err
	}
	return p.RotateX(math.Pi / 2), nil
}

// latticeOffsets returns the (u, v) grid offsets for diamond centers on a
// wall of the given usable face size, centered on the face. Returns nil when
// the face is too small for even one diamond.
func latticeOffsets(o RagBasketOptions, faceW, faceH float64) [][2]float64 {
	usableW := faceW - 2*o.LatticeMargin
	usableH := faceH - 2*o.LatticeMargin
	nx := int(usableW / (o.DiamondWidth + o.DiamondSpacingX))
	ny := int(usableH / (o.DiamondHeight + o.DiamondSpacingY))
	if nx <= 0 || ny <= 0 {
		return nil
	}
	gridW := float64(nx)*o.DiamondWidth + float64(nx-1)*o.DiamondSpacingX
	gridH := float64(ny)*o.DiamondHeight + float64(ny-1)*o.DiamondSpacingY
	offsets := make([][2]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			u := -gridW/2 + o.DiamondWidth/2 + float64(i)*(o.DiamondWidth+o.DiamondSpacingX)
			v := -gridH/2 + o.DiamondHeight/2 + float64(j)*(o.DiamondHeight+o.DiamondSpacingY)
			offsets = append(offsets, [2]float64{u, v})
		}
	}
	return offsets
}

// BuildRagBasket composes the basket: open-top shell, front slot, then the
// diamond lattice on the back, left, and right walls. The front wall keeps
// only the slot so a hanging rag has an unbroken surface to rest on.
func BuildRagBasket(o RagBasketOptions) (solid.Solid, error) {
	if err := o.validate(); err != nil {
		return solid.Solid{}, err
	}

	basket, err := solid.OpenBox(o.Width, o.Depth, o.Height, o.Wall)
	if err != nil {
		return solid.Solid{}, err
	}

	slot, err := RagBasketSlotCutter(o)
	if err != nil {
		return solid.Solid{}, err
	}
	basket = basket.Cut(slot)

	// Cutter long enough to pierce one wall with margin on both sides.
	cutterLen := o.Wall * 3

	// Lattice face height: the top is open, so only one wall thickness (the
	// bottom) is subtracted from the outer height.
	faceH := o.Height - o.Wall

	// Back wall (-Y): diamonds lie in the XZ plane.
	if offsets := latticeOffsets(o, o.Width-2*o.Wall, faceH); offsets != nil {
		diamond, err := DiamondCutter(o.DiamondWidth, o.DiamondHeight, cutterLen)
		if err != nil {
			return solid.Solid{}, err
		}
		cutters := make([]solid.Solid, 0, len(offsets))
		for _, off := range offsets {
			cutters = append(cutters, diamond.Translate(off[0], -(o.Depth/2-o.Wall/2), off[1]))
		}
		basket = basket.Cut(cutters[0].Union(cutters[1:]...))
	}

	// Side walls (+X, -X): the same diamond rotated so its axis is on X and
	// its width runs along Y.
	if offsets := latticeOffsets(o, o.Depth-2*o.Wall, faceH); offsets != nil {
		diamond, err := DiamondCutter(o.DiamondWidth, o.DiamondHeight, cutterLen)
		if err != nil {
			return solid.Solid{}, err
		}
		diamond = diamond.RotateZ(math.Pi / 2)
		for _, sx := range []float64{1, -1} {
			cutters := make([]solid.Solid, 0, len(offsets))
			for _, off := range offsets {
				cutters = append(cutters, diamond.Translate(sx*(o.Width/2-o.Wall/2), off[0], off[1]))
			}
			basket = basket.Cut(cutters[0].Union(cutters[1:]...))
		}
	}

	if basket.IsEmpty() {
		return solid.Solid{}, fmt.Errorf("rag basket composition produced an empty solid")
	}
	return basket, nil
}

func init() {
	register(Shape{
		Name:        "rag-basket",
		Description: "Open-top basket with a front slot and diamond-lattice walls",
		Build: func(overrides []byte) ([]Part, error) {
			opts := DefaultRagBasketOptions()
			if err := decode(overrides, &opts); err != nil {
				return nil, err
			}
			s, err := BuildRagBasket(opts)
			if err != nil {
				return nil, err
			}
			return []Part{{Name: "rag-basket", Solid: s}}, nil
		},
	})
}
