package riff

import (
	"sort"

	"github.com/jsphweid/fretforge/model"
)

// The edit operations are value-semantics: each returns a new riff and
// never touches the input, keeping riffs pure values end to end. Indices
// out of range return the input unchanged rather than failing.

// AddNote inserts a note into one measure, keeping the measure ordered by
// start beat.
func AddNote(r model.ProgressionRiff, measure int, note model.RiffNote) model.ProgressionRiff {
	if measure < 0 || measure >= len(r.Riffs) {
		return r
	}
	res := cloneRiff(r)
	notes := append(res.Riffs[measure].Notes, note)
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].StartBeat < notes[j].StartBeat
	})
	res.Riffs[measure].Notes = notes
	return res
}

// RemoveNote drops the note at an index within one measure.
func RemoveNote(r model.ProgressionRiff, measure, index int) model.ProgressionRiff {
	if measure < 0 || measure >= len(r.Riffs) {
		return r
	}
	if index < 0 || index >= len(r.Riffs[measure].Notes) {
		return r
	}
	res := cloneRiff(r)
	notes := res.Riffs[measure].Notes
	res.Riffs[measure].Notes = append(notes[:index], notes[index+1:]...)
	return res
}

// UpdateNote replaces the note at an index within one measure.
func UpdateNote(r model.ProgressionRiff, measure, index int, note model.RiffNote) model.ProgressionRiff {
	if measure < 0 || measure >= len(r.Riffs) {
		return r
	}
	if index < 0 || index >= len(r.Riffs[measure].Notes) {
		return r
	}
	res := cloneRiff(r)
	res.Riffs[measure].Notes[index] = note
	return res
}

func cloneRiff(r model.ProgressionRiff) model.ProgressionRiff {
	res := r
	res.Riffs = make([]model.ChordRiff, len(r.Riffs))
	for i, m := range r.Riffs {
		res.Riffs[i] = m
		res.Riffs[i].Notes = make([]model.RiffNote, len(m.Notes))
		copy(res.Riffs[i].Notes, m.Notes)
	}
	return res
}
