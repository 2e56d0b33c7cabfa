package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-master/internal/levels"
)

var flagPreview bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the built-in levels",
	Long:  `Shows every level with its size, star quota and, with --preview, its layout.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagPreview, "preview", true, "Draw each level")
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Println("Levels:")
	fmt.Println()

	for i := 0; i < levels.Count(); i++ {
		def := levels.Get(i)
		fmt.Printf("  %d. %-10s  %2dx%-2d  %2d stars  %3d open cells\n",
			i+1, def.Name, def.Dim, def.Dim, def.StarQuota, def.OpenCells())
		if flagPreview {
			fmt.Println()
			fmt.Println(def.Preview())
		}
	}

	fmt.Println("Legend: # wall  S start  E exit  . floor")
}
