package theory

import (
	"github.com/jsphweid/fretforge/model"
)

// Notes lists the 12 pitch classes in index order, C=0 .. B=11. All
// transposition arithmetic runs mod 12 over this table.
var Notes = [12]model.NoteId{
	model.C, model.CSharp, model.D, model.DSharp,
	model.E, model.F, model.FSharp, model.G,
	model.GSharp, model.A, model.ASharp, model.B,
}

var noteIndex = func() map[model.NoteId]int {
	m := make(map[model.NoteId]int, len(Notes))
	for i, n := range Notes {
		m[n] = i
	}
	return m
}()

// intervalSemitones is the closed interval label set. (#4,b5) and (#5,b6)
// share values on purpose.
var intervalSemitones = map[model.Interval]int{
	model.IntervalRoot:       0,
	model.IntervalFlatSecond: 1,
	model.IntervalSecond:     2,
	model.IntervalFlatThird:  3,
	model.IntervalThird:      4,
	model.IntervalFourth:     5,
	model.IntervalSharpFour:  6,
	model.IntervalFlatFifth:  6,
	model.IntervalFifth:      7,
	model.IntervalSharpFifth: 8,
	model.IntervalFlatSixth:  8,
	model.IntervalSixth:      9,
	model.IntervalFlatSeven:  10,
	model.IntervalSeventh:    11,
	model.IntervalNinth:      14,
}

// canonicalSpelling picks one label per semitone class for labels derived
// from sounding pitch. The enharmonic collisions resolve to b5 and #5.
var canonicalSpelling = [12]model.Interval{
	model.IntervalRoot,
	model.IntervalFlatSecond,
	model.IntervalSecond,
	model.IntervalFlatThird,
	model.IntervalThird,
	model.IntervalFourth,
	model.IntervalFlatFifth,
	model.IntervalFifth,
	model.IntervalSharpFifth,
	model.IntervalSixth,
	model.IntervalFlatSeven,
	model.IntervalSeventh,
}

// NoteIndex returns the 0..11 index of a pitch class. Panics on an unknown
// note, which can only mean a programmer error upstream.
func NoteIndex(note model.NoteId) int {
	i, ok := noteIndex[note]
	if !ok {
		panic("unknown note: " + string(note))
	}
	return i
}

// Transpose moves a pitch class by a (possibly negative) semitone count,
// wrapping into [0, 12).
func Transpose(note model.NoteId, semitones int) model.NoteId {
	i := (NoteIndex(note) + semitones) % 12
	if i < 0 {
		i += 12
	}
	return Notes[i]
}

// Distance is the upward semitone distance from one pitch class to another,
// in [0, 12).
func Distance(from, to model.NoteId) int {
	d := (NoteIndex(to) - NoteIndex(from)) % 12
	if d < 0 {
		d += 12
	}
	return d
}

// IntervalToSemitones maps an interval label to its semitone count. Panics
// on a label outside the closed set.
func IntervalToSemitones(interval model.Interval) int {
	s, ok := intervalSemitones[interval]
	if !ok {
		panic("unknown interval: " + string(interval))
	}
	return s
}

// IntervalFromSemitones maps a semitone distance back to the canonical
// label for its pitch class.
func IntervalFromSemitones(semitones int) model.Interval {
	i := semitones % 12
	if i < 0 {
		i += 12
	}
	return canonicalSpelling[i]
}

// IntervalBetween labels the sounding pitch class relative to a root.
func IntervalBetween(root, note model.NoteId) model.Interval {
	return IntervalFromSemitones(Distance(root, note))
}
