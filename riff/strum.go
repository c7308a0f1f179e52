package riff

import (
	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/shape"
	"github.com/jsphweid/fretforge/tuning"
)

// BackingTrack strums the first available shape of each progression chord
// for a whole measure. Chords with no shape for their quality produce a
// silent measure. Deterministic; meant to sit under a generated riff as a
// second MIDI track.
func BackingTrack(t tuning.Tuning, chords []model.TransposedChord, bpm int) model.ProgressionRiff {
	res := model.ProgressionRiff{Bpm: bpm, Style: model.StyleArpeggiated}
	for _, chord := range chords {
		measure := model.ChordRiff{Chord: chord}
		shapes := shape.BuildShapes(t, chord.Note, chord.Quality)
		if len(shapes) > 0 {
			for _, an := range shapes[0].AudioNotes {
				pitch := t.PitchAt(an.String, an.Fret)
				measure.Notes = append(measure.Notes, model.RiffNote{
					String:    an.String,
					Fret:      an.Fret,
					StartBeat: 0,
					Duration:  constants.BeatsPerMeasure,
					Note:      pitch,
					Technique: model.TechniqueNormal,
				})
			}
		}
		res.Riffs = append(res.Riffs, measure)
	}
	return res
}
