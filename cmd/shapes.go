package cmd

import (
	"fmt"

	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/shape"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(shapesCmd)
}

var shapesCmd = &cobra.Command{
	Use:   "shapes <root> <quality>",
	Short: "Prints every chord-shape voicing for a root and quality",
	Long:  `Prints every chord-shape voicing for a root and quality`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		printShapes(model.NoteId(args[0]), model.ChordQuality(args[1]))
	},
}

func printShapes(root model.NoteId, quality model.ChordQuality) {
	shapes := shape.BuildShapes(tuning.Standard(), root, quality)
	if len(shapes) == 0 {
		fmt.Printf("No shapes for %v %v\n", root, quality)
		return
	}
	for _, s := range shapes {
		fmt.Printf("%v (%v family) frets %d-%d\n", s.TemplateId, s.Family, s.FretWindowStart, s.FretWindowEnd)
		for _, st := range s.Strings {
			switch st.Action {
			case model.StringMuted:
				fmt.Printf("  string %d: x\n", st.String)
			case model.StringOpen:
				fmt.Printf("  string %d: 0 (%v)\n", st.String, st.Interval)
			default:
				fmt.Printf("  string %d: %d (%v)\n", st.String, st.Fret, st.Interval)
			}
		}
	}
}
