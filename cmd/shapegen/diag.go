package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shapegen/internal/diag"
	"shapegen/internal/export"
	"shapegen/internal/shapes"
)

var diagForce bool

var diagCmd = &cobra.Command{
	Use:   "diag <shape>",
	Short: "Export a shape's intermediate build steps for debugging",
	Long: `Rebuild a shape one boolean operation at a time and export each
intermediate solid as stepN_*.stl into the draft directory. Existing step
files are skipped unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var steps []diag.Step
		switch args[0] {
		case "rag-basket":
			steps = diag.RagBasketSteps(shapes.DefaultRagBasketOptions())
		default:
			return fmt.Errorf("no diagnostic steps for shape %q (have: rag-basket)", args[0])
		}
		opts := export.Options{
			Dir:      prefs.DraftDir,
			Cells:    prefs.MeshCells,
			Renderer: prefs.Renderer,
			Force:    diagForce,
		}
		return diag.Run(log, steps, opts)
	},
}

func init() {
	diagCmd.Flags().BoolVar(&diagForce, "force", false, "overwrite existing step files")
	rootCmd.AddCommand(diagCmd)
}
