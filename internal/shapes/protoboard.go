package shapes

import (
	"fmt"
	"math"

	"shapegen/internal/solid"
)

// ProtoBoardOptions controls the two-part case for a 25 x 50 mm prototyping
// board. Units are mm. One short (-Y) wall carries a rounded-bottom slot for
// the wiring connector.
type ProtoBoardOptions struct {
	InnerX   float64 `yaml:"inner_x"` // board length
	InnerY   float64 `yaml:"inner_y"` // board width
	InnerZ   float64 `yaml:"inner_z"` // board thickness plus clearance
	Wall     float64 `yaml:"wall"`
	LidThick float64 `yaml:"lid_thick"`

	SlotWidth       float64 `yaml:"slot_width"` // connector slot diameter
	SlotClearBottom float64 `yaml:"slot_clear_bottom"`

	LipHeight    float64 `yaml:"lip_height"`
	LipClearance float64 `yaml:"lip_clearance"`
}

// DefaultProtoBoardOptions returns the dimensions for the 25 x 50 mm board.
func DefaultProtoBoardOptions() ProtoBoardOptions {
	return ProtoBoardOptions{
		InnerX:          25.0,
		InnerY:          50.0,
		InnerZ:          12.0,
		Wall:            2.0,
		LidThick:        2.0,
		SlotWidth:       6.0,
		SlotClearBottom: 1.5,
		LipHeight:       1.2,
		LipClearance:    0.25,
	}
}

func (o ProtoBoardOptions) validate() error {
	if o.InnerX <= 0 || o.InnerY <= 0 || o.InnerZ <= 0 {
		return fmt.Errorf("board dimensions must be positive, got %g x %g x %g", o.InnerX, o.InnerY, o.InnerZ)
	}
	if o.Wall <= 0 || o.LidThick <= 0 {
		return fmt.Errorf("wall %g and lid thickness %g must be positive", o.Wall, o.LidThick)
	}
	if o.SlotWidth <= 0 || o.SlotWidth >= o.InnerX {
		return fmt.Errorf("slot width %g must fit the %g wall", o.SlotWidth, o.InnerX)
	}
	if o.LipHeight <= 0 {
		return fmt.Errorf("lip height must be positive")
	}
	return nil
}

// buildProtoBoardBase builds the open-top base with the connector slot: a
// vertical-sided slot whose bottom is a half circle, open to the rim so the
// connector drops in from above.
func buildProtoBoardBase(o ProtoBoardOptions) (solid.Solid, error) {
	outerX := o.InnerX + 2*o.Wall
	outerY := o.InnerY + 2*o.Wall
	outerZ := o.InnerZ + o.Wall

	base, err := solid.OpenBox(outerX, outerY, outerZ, o.Wall)
	if err != nil {
		return solid.Solid{}, err
	}

	// Slot cutter: rectangle from the circle center up past the rim, plus a
	// disc for the rounded bottom. The circle is tangent to the rectangle
	// sides so the slot walls stay vertical.
	r := o.SlotWidth / 2
	centerZ := -outerZ/2 + o.Wall + o.SlotClearBottom + r
	topZ := outerZ/2 + cutMargin
	thickness := o.Wall + 2*cutMargin

	rectProfile := []solid.Point2{
		{X: -r, Y: centerZ},
		{X: r, Y: centerZ},
		{X: r, Y: topZ},
		{X: -r, Y: topZ},
	}
	rect, err := solid.Prism(rectProfile, thickness)
	if err != nil {
		return solid.Solid{}, err
	}
	disc, err := solid.Disc(r, thickness)
	if err != nil {
		return solid.Solid{}, err
	}
	cutter := rect.Union(disc.Translate(0, centerZ, 0)).RotateX(math.Pi / 2)
	base = base.Cut(cutter.Translate(0, -(outerY/2 - o.Wall/2), 0))

	return base, nil
}

// buildProtoBoardLid builds the flat lid with an inset friction-fit lip.
func buildProtoBoardLid(o ProtoBoardOptions) (solid.Solid, error) {
	outerX := o.InnerX + 2*o.Wall
	outerY := o.InnerY + 2*o.Wall

	lid, err := solid.Box(outerX, outerY, o.LidThick)
	if err != nil {
		return solid.Solid{}, err
	}
	lip, err := solid.Box(o.InnerX-2*o.LipClearance, o.InnerY-2*o.LipClearance, o.LipHeight)
	if err != nil {
		return solid.Solid{}, err
	}
	return lid.Union(lip.Translate(0, 0, -o.LidThick/2-o.LipHeight/2)), nil
}

// BuildProtoBoard builds both case pieces.
func BuildProtoBoard(o ProtoBoardOptions) (base, lid solid.Solid, err error) {
	if err := o.validate(); err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	base, err = buildProtoBoardBase(o)
	if err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	lid, err = buildProtoBoardLid(o)
	if err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	if base.IsEmpty() || lid.IsEmpty() {
		return solid.Solid{}, solid.Solid{}, fmt.Errorf("proto board case composition produced an empty solid")
	}
	return base, lid, nil
}

func init() {
	register(Shape{
		Name:        "proto-board-case",
		Description: "Two-part case for a 25x50 mm prototyping board",
		Build: func(overrides []byte) ([]Part, error) {
			opts := DefaultProtoBoardOptions()
			if err := decode(overrides, &opts); err != nil {
				return nil, err
			}
			base, lid, err := BuildProtoBoard(opts)
			if err != nil {
				return nil, err
			}
			return []Part{
				{Name: "proto-board-base", Solid: base},
				{Name: "proto-board-lid", Solid: lid},
			}, nil
		},
	})
}
