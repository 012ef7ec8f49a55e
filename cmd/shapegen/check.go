package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shapegen/internal/inspect"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.stl>...",
	Short: "Measure STL files and verify they are printable",
	Long: `Parse each STL file (binary or ASCII) and report triangle count,
bounding box, surface area, and enclosed volume. The command fails when any
mesh is empty, has zero extent, or is not watertight.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed bool
		for _, path := range args {
			r, err := inspect.File(path)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", r.Path)
			fmt.Printf("  triangles:  %d\n", r.Triangles)
			fmt.Printf("  bounds:     %.2f x %.2f x %.2f mm\n",
				r.Max[0]-r.Min[0], r.Max[1]-r.Min[1], r.Max[2]-r.Min[2])
			fmt.Printf("  area:       %.1f mm2\n", r.SurfaceArea)
			fmt.Printf("  volume:     %.1f mm3\n", r.Volume)
			fmt.Printf("  watertight: %v\n", r.Watertight)
			if err := inspect.Validate(r); err != nil {
				log.Error("mesh failed validation", "path", path, "reason", err.Error())
				failed = true
			}
		}
		if failed {
			return fmt.Errorf("one or more meshes failed validation")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
