package tuning

import (
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
)

// Tuning is the per-string open-pitch reference table. Strings are numbered
// 6 (lowest pitch) down to 1 (highest); index 0 of both arrays is unused.
type Tuning struct {
	Open     [7]model.NoteId
	MidiBase [7]int
}

// Standard returns EADGBE with the usual base octaves (low E = E2 = 40).
func Standard() Tuning {
	return Tuning{
		Open:     [7]model.NoteId{"", model.E, model.B, model.G, model.D, model.A, model.E},
		MidiBase: [7]int{0, 64, 59, 55, 50, 45, 40},
	}
}

// PitchAt is the pitch class sounding at a fret on a string.
func (t Tuning) PitchAt(str, fret int) model.NoteId {
	return theory.Transpose(t.Open[str], fret)
}

// MidiAt is the absolute MIDI note number at a fret on a string.
func (t Tuning) MidiAt(str, fret int) int {
	return t.MidiBase[str] + fret
}

// FretsOf lists every fret in [0, maxFret] on a string that sounds the
// target pitch class, lowest first.
func (t Tuning) FretsOf(str int, target model.NoteId, maxFret int) []int {
	first := theory.Distance(t.Open[str], target)
	var frets []int
	for f := first; f <= maxFret; f += 12 {
		frets = append(frets, f)
	}
	return frets
}

// FirstFretOf is the lowest fret on a string sounding the target pitch
// class, ignoring any ceiling.
func (t Tuning) FirstFretOf(str int, target model.NoteId) int {
	return theory.Distance(t.Open[str], target)
}
