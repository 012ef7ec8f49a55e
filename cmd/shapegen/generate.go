package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shapegen/internal/export"
	"shapegen/internal/shapes"
)

var (
	generateAll      bool
	generateFinal    bool
	generateForce    bool
	generateOutDir   string
	generateParams   string
	generateCells    int
	generateRenderer string
)

var generateCmd = &cobra.Command{
	Use:   "generate [shape]",
	Short: "Build a shape and export its STL meshes to the draft directory",
	Long: `Build the named shape with its default parameters and export one STL
file per part into the draft directory. Existing files are kept untouched
unless --force is given, so repeated runs are idempotent. With --final the
meshes are written straight into the final directory instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "generate every registered shape")
	generateCmd.Flags().BoolVar(&generateFinal, "final", false, "write into the final directory instead of the draft directory")
	generateCmd.Flags().BoolVar(&generateForce, "force", false, "overwrite existing output files")
	generateCmd.Flags().StringVar(&generateOutDir, "out-dir", "", "output directory (overrides draft/final)")
	generateCmd.Flags().StringVar(&generateParams, "params", "", "YAML file with parameter overrides")
	generateCmd.Flags().IntVar(&generateCells, "cells", 0, "meshing resolution (cells along the longest axis)")
	generateCmd.Flags().StringVar(&generateRenderer, "renderer", "", "meshing renderer: marching-cubes or dual-contouring")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	var targets []shapes.Shape
	switch {
	case generateAll && len(args) > 0:
		return fmt.Errorf("--all and a shape name are mutually exclusive")
	case generateAll:
		targets = shapes.All()
	case len(args) == 1:
		sh, ok := shapes.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown shape %q (known: %v)", args[0], shapes.Names())
		}
		targets = []shapes.Shape{sh}
	default:
		return fmt.Errorf("name a shape or pass --all (known: %v)", shapes.Names())
	}

	var overrides []byte
	if generateParams != "" {
		var err error
		overrides, err = os.ReadFile(generateParams)
		if err != nil {
			return fmt.Errorf("read params file: %w", err)
		}
	}

	opts := export.Options{
		Dir:      prefs.DraftDir,
		Cells:    prefs.MeshCells,
		Renderer: prefs.Renderer,
		Force:    generateForce,
	}
	if generateFinal {
		opts.Dir = prefs.FinalDir
	}
	if generateOutDir != "" {
		opts.Dir = generateOutDir
	}
	if generateCells > 0 {
		opts.Cells = generateCells
	}
	if generateRenderer != "" {
		opts.Renderer = generateRenderer
	}

	for _, sh := range targets {
		log.Info("building shape", "shape", sh.Name)
		parts, err := sh.Build(overrides)
		if err != nil {
			return fmt.Errorf("build %s: %w", sh.Name, err)
		}
		for _, part := range parts {
			if _, _, err := export.Write(log, part.Name, part.Solid, opts); err != nil {
				return fmt.Errorf("export %s: %w", part.Name, err)
			}
		}
	}
	return nil
}
