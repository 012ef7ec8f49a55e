package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shapegen/internal/config"
	"shapegen/internal/logger"
)

var (
	log   *logger.Logger
	prefs config.Prefs
)

var rootCmd = &cobra.Command{
	Use:   "shapegen",
	Short: "Generate 3D-printable STL models",
	Long: `shapegen builds a small collection of parametric 3D-print models and
exports them as STL meshes into a draft directory. Validated meshes are
promoted to a final directory that is tracked in version control.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = logger.New("dev")
		if err != nil {
			return err
		}
		prefs, _ = config.Load()
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if log != nil {
			log.Sync()
		}
		os.Exit(1)
	}
	if log != nil {
		log.Sync()
	}
}
