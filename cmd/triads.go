package cmd

import (
	"fmt"

	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/triad"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(triadsCmd)
}

var triadsCmd = &cobra.Command{
	Use:   "triads <root> <quality>",
	Short: "Enumerates playable triad voicings",
	Long:  `Enumerates playable triad voicings`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		printTriads(model.NoteId(args[0]), model.ChordQuality(args[1]))
	},
}

func printTriads(root model.NoteId, quality model.ChordQuality) {
	positions := triad.Enumerate(tuning.Standard(), root, quality)
	if len(positions) == 0 {
		fmt.Printf("No triad positions for %v %v\n", root, quality)
		return
	}
	for _, p := range positions {
		fmt.Printf("strings %v:", p.Strings)
		for _, n := range p.Notes {
			fmt.Printf(" %d/%d(%v)", n.String, n.Fret, n.Interval)
		}
		fmt.Printf(" span %d\n", p.Span)
	}
	fmt.Printf("%v positions\n", len(positions))
}
