package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/fretforge/midi"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/progression"
	"github.com/jsphweid/fretforge/riff"
	"github.com/jsphweid/fretforge/tab"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/jsphweid/fretforge/util"
	"github.com/spf13/cobra"
)

var (
	riffStyle   string
	riffBpm     int
	riffSeed    int64
	riffOut     string
	riffBacking bool
)

func init() {
	riffCmd.Flags().StringVar(&riffStyle, "style", "melodic", "riff style: melodic, arpeggiated, bass, complex")
	riffCmd.Flags().IntVar(&riffBpm, "bpm", 120, "tempo")
	riffCmd.Flags().Int64Var(&riffSeed, "seed", 0, "random seed (0 = time-based)")
	riffCmd.Flags().StringVar(&riffOut, "out", "", "midi output path (default <uuid>.mid)")
	riffCmd.Flags().BoolVar(&riffBacking, "backing", false, "add a strummed backing track (format-1 export)")
	rootCmd.AddCommand(riffCmd)
}

var riffCmd = &cobra.Command{
	Use:   "riff <progression> <root>",
	Short: "Generates a riff, prints its tab and writes a midi file",
	Long:  `Generates a riff, prints its tab and writes a midi file`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		generateRiff(args[0], model.NoteId(args[1]))
	},
}

func generateRiff(progName string, root model.NoteId) {
	prog, ok := progression.Catalog[progName]
	if !ok {
		fmt.Printf("Unknown progression %v, available: %v\n", progName, util.SortedKeys(progression.Catalog))
		return
	}

	seed := riffSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	t := tuning.Standard()
	chords := progression.Transpose(prog, root)
	gen := riff.NewGenerator(t, rnd)
	r := gen.Generate(chords, model.RiffStyle(riffStyle), riffBpm)

	fmt.Print(tab.RenderAscii(tab.Build(r, 0)))

	var data []byte
	if riffBacking {
		tracks := []midi.Track{
			{Riff: r, Channel: 0, Volume: 1.0},
			{Riff: riff.BackingTrack(t, chords, riffBpm), Channel: 1, Volume: 0.6},
		}
		data = midi.ExportTracks(t, tracks, riffBpm)
	} else {
		data = midi.ExportRiff(t, r)
	}

	out := riffOut
	if out == "" {
		out = uuid.New().String() + ".mid"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v (%v bytes, seed %v)\n", out, len(data), seed)
}
