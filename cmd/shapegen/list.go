package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"shapegen/internal/shapes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered shapes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, sh := range shapes.All() {
			fmt.Fprintf(w, "%s\t%s\n", sh.Name, sh.Description)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
