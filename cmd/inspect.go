package cmd

import (
	"fmt"

	"github.com/jsphweid/fretforge/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Parses a midi file and prints its note events",
	Long:  `Parses a midi file and prints its note events`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not inspect: " + err.Error())
	}
	for _, evt := range midi.NoteOns(parsed) {
		fmt.Printf("track %d tick %d ch %d note %d vel %d\n",
			evt.Track, evt.AbsTicks, evt.Channel, evt.Note, evt.Velocity)
	}
}
