package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"shapegen/internal/export"
	"shapegen/internal/inspect"
)

var promoteSkipCheck bool

var promoteCmd = &cobra.Command{
	Use:   "promote <name>...",
	Short: "Move validated draft meshes into the final directory",
	Long: `Move each named mesh from the draft directory into the final
directory. The draft mesh is validated first (parseable, non-empty,
watertight); the move is a rename, so promotion never alters file bytes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			src := filepath.Join(prefs.DraftDir, export.Filename(name))
			if !promoteSkipCheck {
				r, err := inspect.File(src)
				if err != nil {
					return err
				}
				if err := inspect.Validate(r); err != nil {
					return fmt.Errorf("refusing to promote: %w", err)
				}
			}
			dst, err := export.Promote(prefs.DraftDir, prefs.FinalDir, name)
			if err != nil {
				return err
			}
			log.Info("promoted", "from", src, "to", dst)
		}
		return nil
	},
}

func init() {
	promoteCmd.Flags().BoolVar(&promoteSkipCheck, "skip-check", false, "promote without validating the mesh first")
	rootCmd.AddCommand(promoteCmd)
}
