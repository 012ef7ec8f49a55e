package shapes

import (
	"fmt"
	"math"

	"shapegen/internal/solid"
)

// SensorCaseOptions controls the two-part HC-SR501 PIR sensor case. Units
// are mm. Inner dimensions are the payload envelope; walls are added around
// it. The base has an open top closed by a tabbed lid with an inset lip.
type SensorCaseOptions struct {
	InnerX   float64 `yaml:"inner_x"` // payload length
	InnerY   float64 `yaml:"inner_y"` // payload depth
	InnerZ   float64 `yaml:"inner_z"` // payload height
	Wall     float64 `yaml:"wall"`
	LidThick float64 `yaml:"lid_thick"`

	// Pin opening on the back (+Y) wall: a rectangle with a tapered top so
	// the jumper wires exit without a bridge over the opening.
	PinOpenWidth       float64 `yaml:"pin_open_width"`
	PinOpenHeight      float64 `yaml:"pin_open_height"`     // rectangular portion height
	PinOpenSideAngle   float64 `yaml:"pin_open_side_angle"` // taper angle from horizontal, degrees
	PinOpenClearBottom float64 `yaml:"pin_open_clear_bottom"`

	// Lid fit.
	TabWidth     float64 `yaml:"tab_width"`
	TabHeight    float64 `yaml:"tab_height"`
	LipHeight    float64 `yaml:"lip_height"`
	LipClearance float64 `yaml:"lip_clearance"` // per side, press fit
	RimClearance float64 `yaml:"rim_clearance"` // per cutout, tab seating
}

// DefaultSensorCaseOptions returns the dimensions fitted to an HC-SR501
// module: 33 x 25 x 44 payload, 2 mm walls, 40 degree pin-opening taper.
func DefaultSensorCaseOptions() SensorCaseOptions {
	return SensorCaseOptions{
		InnerX:             33.0,
		InnerY:             25.0,
		InnerZ:             44.0,
		Wall:               2.0,
		LidThick:           2.0,
		PinOpenWidth:       10.0,
		PinOpenHeight:      4.0,
		PinOpenSideAngle:   40.0,
		PinOpenClearBottom: 0.8,
		TabWidth:           6.0,
		TabHeight:          1.2,
		LipHeight:          1.2,
		LipClearance:       0.25,
		RimClearance:       0.3,
	}
}

func (o SensorCaseOptions) validate() error {
	if o.InnerX <= 0 || o.InnerY <= 0 || o.InnerZ <= 0 {
		return fmt.Errorf("payload dimensions must be positive, got %g x %g x %g", o.InnerX, o.InnerY, o.InnerZ)
	}
	if o.Wall <= 0 || o.LidThick <= 0 {
		return fmt.Errorf("wall %g and lid thickness %g must be positive", o.Wall, o.LidThick)
	}
	if o.PinOpenWidth <= 0 || o.PinOpenWidth >= o.InnerX {
		return fmt.Errorf("pin opening width %g must fit the %g payload", o.PinOpenWidth, o.InnerX)
	}
	if o.PinOpenSideAngle <= 0 || o.PinOpenSideAngle >= 90 {
		return fmt.Errorf("pin opening taper %g deg must be in (0, 90)", o.PinOpenSideAngle)
	}
	if o.TabWidth <= 0 || o.TabHeight <= 0 || o.LipHeight <= 0 {
		return fmt.Errorf("tab and lip dimensions must be positive")
	}
	return nil
}

// tabCenters returns the two symmetric tab center offsets along a wall of
// the given inner length, inset 4 mm from the corner.
func tabCenters(inner, tabW float64) []float64 {
	off := inner/2 - tabW/2 - 4.0
	return []float64{-off, off}
}

// buildSensorCaseBase builds the open-top base: shell, pin opening on the
// back wall, full front opening for the Fresnel lens, and rim cutouts that
// seat the lid tabs.
func buildSensorCaseBase(o SensorCaseOptions) (solid.Solid, error) {
	outerX := o.InnerX + 2*o.Wall
	outerY := o.InnerY + 2*o.Wall
	outerZ := o.InnerZ + o.Wall // the lid supplies the top

	base, err := solid.OpenBox(outerX, outerY, outerZ, o.Wall)
	if err != nil {
		return solid.Solid{}, err
	}

	// Pin opening: rectangle with a triangular taper to an apex, drawn in
	// the XZ plane and pushed through the back (+Y) wall only.
	halfW := o.PinOpenWidth / 2
	triH := halfW * math.Tan(o.PinOpenSideAngle*math.Pi/180)
	zBottom := -outerZ/2 + o.Wall + o.PinOpenClearBottom
	zRectTop := zBottom + o.PinOpenHeight
	zApex := zRectTop + triH
	pinProfile := []solid.Point2{
		{X: -halfW, Y: zBottom},
		{X: halfW, Y: zBottom},
		{X: halfW, Y: zRectTop},
		{X: 0, Y: zApex},
		{X: -halfW, Y: zRectTop},
	}
	pinCutter, err := solid.Prism(pinProfile, o.Wall+2*cutMargin)
	if err != nil {
		return solid.Solid{}, err
	}
	// RotateX maps the profile plane onto XZ, so the profile Y coordinates
	// above become world Z directly; only the Y position needs setting.
	base = base.Cut(pinCutter.RotateX(math.Pi/2).Translate(0, outerY/2-o.Wall/2, 0))

	// Fresnel opening: the front (-Y) wall is removed across the payload
	// width from one wall above the floor up through the rim, so the sensor
	// slides in lens first.
	fresnelH := o.InnerZ - o.Wall
	fresnel, err := solid.Box(o.InnerX, o.Wall+2*cutMargin, fresnelH+cutMargin)
	if err != nil {
		return solid.Solid{}, err
	}
	// Bottom of the opening sits at floor + Wall; top clears the rim.
	fresnelZ := (-outerZ/2 + 2*o.Wall) + (fresnelH+cutMargin)/2
	base = base.Cut(fresnel.Translate(0, -(outerY/2 - o.Wall/2), fresnelZ))

	// Rim cutouts for the lid tabs. Front wall only: the back wall rim is
	// removed entirely below so the pins clear the lid.
	rimZ := outerZ/2 - o.Wall/2
	for _, x := range tabCenters(o.InnerX, o.TabWidth) {
		c, err := solid.Box(o.TabWidth+o.RimClearance, o.Wall+o.RimClearance, o.Wall)
		if err != nil {
			return solid.Solid{}, err
		}
		base = base.Cut(c.Translate(x, -(outerY/2 - o.Wall/2), rimZ))
	}

	// Drop the entire back-wall rim by one wall so the lid seats flush over
	// the pin wires. Oversized on X so no slivers remain in the corners.
	backRim, err := solid.Box(outerX+2*o.Wall, o.Wall+o.RimClearance, o.Wall)
	if err != nil {
		return solid.Solid{}, err
	}
	base = base.Cut(backRim.Translate(0, outerY/2-(o.Wall+o.RimClearance)/2, rimZ))

	// Side wall cutouts.
	for _, sx := range []float64{1, -1} {
		for _, y := range tabCenters(o.InnerY, o.TabWidth) {
			c, err := solid.Box(o.Wall+o.RimClearance, o.TabWidth+o.RimClearance, o.Wall)
			if err != nil {
				return solid.Solid{}, err
			}
			base = base.Cut(c.Translate(sx*(outerX/2-o.Wall/2), y, rimZ))
		}
	}

	return base, nil
}

// buildSensorCaseLid builds the flat lid: plate, inset press-fit lip, a
// front-edge skirt that closes the gap over the Fresnel opening, and
// perimeter tabs that drop into the base rim cutouts.
func buildSensorCaseLid(o SensorCaseOptions) (solid.Solid, error) {
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
	lid = lid.Union(lip.Translate(0, 0, -o.LidThick/2-o.LipHeight/2))

	skirt, err := solid.Box(outerX, o.Wall, o.Wall)
	if err != nil {
		return solid.Solid{}, err
	}
	// Skirt outer face coplanar with the lid front face.
	lid = lid.Union(skirt.Translate(0, -outerY/2+o.Wall/2, -o.LidThick/2-o.Wall/2))

	tabZ := -o.LidThick/2 - o.TabHeight/2
	for _, sy := range []float64{1, -1} {
		for _, x := range tabCenters(o.InnerX, o.TabWidth) {
			tab, err := solid.Box(o.TabWidth, o.Wall, o.TabHeight)
			if err != nil {
				return solid.Solid{}, err
			}
			lid = lid.Union(tab.Translate(x, sy*(outerY/2-o.Wall/2), tabZ))
		}
	}
	for _, sx := range []float64{1, -1} {
		for _, y := range tabCenters(o.InnerY, o.TabWidth) {
			tab, err := solid.Box(o.Wall, o.TabWidth, o.TabHeight)
			if err != nil {
				return solid.Solid{}, err
			}
			lid = lid.Union(tab.Translate(sx*(outerX/2-o.Wall/2), y, tabZ))
		}
	}

	return lid, nil
}

// BuildSensorCase builds both case pieces.
func BuildSensorCase(o SensorCaseOptions) (base, lid solid.Solid, err error) {
	if err := o.validate(); err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	base, err = buildSensorCaseBase(o)
	if err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	lid, err = buildSensorCaseLid(o)
	if err != nil {
		return solid.Solid{}, solid.Solid{}, err
	}
	if base.IsEmpty() || lid.IsEmpty() {
		return solid.Solid{}, solid.Solid{}, fmt.Errorf("sensor case composition produced an empty solid")
	}
	return base, lid, nil
}

func init() {
	register(Shape{
		Name:        "sensor-case",
		Description: "Two-part HC-SR501 PIR sensor case (base + tabbed lid)",
		Build: func(overrides []byte) ([]Part, error) {
			opts := DefaultSensorCaseOptions()
			if err := decode(overrides, &opts); err != nil {
				return nil, err
			}
			base, lid, err := BuildSensorCase(opts)
			if err != nil {
				return nil, err
			}
			return []Part{
				{Name: "sensor-case-base", Solid: base},
				{Name: "sensor-case-lid", Solid: lid},
			}, nil
		},
	})
}
