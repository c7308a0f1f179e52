package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretforge",
	Short: "Guitar chord voicing and riff engine",
	Long:  `Computes playable chord voicings, generates riffs over progressions and exports tab and MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
