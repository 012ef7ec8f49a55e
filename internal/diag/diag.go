// Package diag rebuilds a shape one boolean operation at a time and exports
// the intermediate solids, so a failing composition can be bisected by
// opening the step files in a slicer.
package diag

import (
	"fmt"

	"shapegen/internal/export"
	"shapegen/internal/logger"
	"shapegen/internal/shapes"
	"shapegen/internal/solid"
)

// Step is one intermediate state of a shape build.
type Step struct {
	Name  string
	Build func() (solid.Solid, error)
}

// RagBasketSteps returns the rag basket build split into its stages: base
// box, open-top shell, front slot, and a single centered lattice diamond on
// the back wall as a boolean sanity check.
func RagBasketSteps(o shapes.RagBasketOptions) []Step {
	shell := func() (solid.Solid, error) {
		return solid.OpenBox(o.Width, o.Depth, o.Height, o.Wall)
	}
	slotted := func() (solid.Solid, error) {
		s, err := shell()
		if err != nil {
			return solid.Solid{}, err
		}
		cutter, err := shapes.RagBasketSlotCutter(o)
		if err != nil {
			return solid.Solid{}, err
		}
		return s.Cut(cutter), nil
	}
	return []Step{
		{Name: "step1_base", Build: func() (solid.Solid, error) {
			return solid.Box(o.Width, o.Depth, o.Height)
		}},
		{Name: "step2_shell", Build: shell},
		{Name: "step3_slot", Build: slotted},
		{Name: "step4_lattice", Build: func() (solid.Solid, error) {
			s, err := slotted()
			if err != nil {
				return solid.Solid{}, err
			}
			diamond, err := shapes.DiamondCutter(o.DiamondWidth, o.DiamondHeight, o.Wall*3)
			if err != nil {
				return solid.Solid{}, err
			}
			return s.Cut(diamond.Translate(0, -(o.Depth/2 - o.Wall/2), 0)), nil
		}},
	}
}

// Run builds and exports every step in order, logging each step's bounding
// box. It stops at the first failing step so the last exported file is the
// last good state.
func Run(log *logger.Logger, steps []Step, opts export.Options) error {
	for i, step := range steps {
		s, err := step.Build()
		if err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}
		x, y, z := s.Size()
		log.Info("built step", "step", step.Name, "bbox_x", x, "bbox_y", y, "bbox_z", z)
		if _, _, err := export.Write(log, step.Name, s, opts); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}
	}
	return nil
}
