package tab

import (
	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
)

// Build quantizes a riff into a fixed-subdivision grid. Deterministic: each
// note's start beat maps to floor(startBeat * subdivisions / beats); notes
// landing outside the grid are dropped silently. Pass subdivisions <= 0 for
// the default of 8.
func Build(r model.ProgressionRiff, subdivisions int) model.TabSheet {
	if subdivisions <= 0 {
		subdivisions = constants.DefaultSubdivisions
	}
	sheet := model.TabSheet{Subdivisions: subdivisions}
	for _, measure := range r.Riffs {
		tm := model.TabMeasure{ChordName: chordName(measure.Chord)}
		for s := 1; s <= constants.NumStrings; s++ {
			tm.Cells[s] = make([]int, subdivisions)
			for i := range tm.Cells[s] {
				tm.Cells[s][i] = model.EmptyCell
			}
		}
		for _, note := range measure.Notes {
			idx := int(note.StartBeat * float64(subdivisions) / constants.BeatsPerMeasure)
			if idx < 0 || idx >= subdivisions {
				continue
			}
			if note.String < 1 || note.String > constants.NumStrings {
				continue
			}
			tm.Cells[note.String][idx] = note.Fret
		}
		sheet.Measures = append(sheet.Measures, tm)
	}
	return sheet
}

// NoteAt reads the fret at a grid coordinate. Returns false for empty cells
// and for any out-of-range index rather than failing.
func NoteAt(sheet model.TabSheet, measure, str, slot int) (int, bool) {
	if measure < 0 || measure >= len(sheet.Measures) {
		return 0, false
	}
	if str < 1 || str > constants.NumStrings {
		return 0, false
	}
	if slot < 0 || slot >= sheet.Subdivisions {
		return 0, false
	}
	fret := sheet.Measures[measure].Cells[str][slot]
	if fret == model.EmptyCell {
		return 0, false
	}
	return fret, true
}

// qualitySuffix maps qualities to their display suffix for chord-name
// headers.
var qualitySuffix = map[model.ChordQuality]string{
	model.QualityMajor:      "",
	model.QualityMinor:      "m",
	model.QualityDiminished: "dim",
	model.QualityAugmented:  "aug",
	model.QualitySus2:       "sus2",
	model.QualitySus4:       "sus4",
	model.QualityMajor7:     "maj7",
	model.QualityDominant7:  "7",
	model.QualityMinor7:     "m7",
	model.QualityPower:      "5",
	model.QualityAdd9:       "add9",
}

func chordName(chord model.TransposedChord) string {
	return string(chord.Note) + qualitySuffix[chord.Quality]
}
