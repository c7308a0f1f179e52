package progression

import (
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
)

// Catalog is the static Roman-numeral progression template table, keyed by
// name.
var Catalog = map[string]model.ChordProgression{
	"I-IV-V": {
		Name: "I-IV-V",
		Chords: []model.ProgressionChord{
			{Degree: "I", Offset: 0, Quality: model.QualityMajor},
			{Degree: "IV", Offset: 5, Quality: model.QualityMajor},
			{Degree: "V", Offset: 7, Quality: model.QualityMajor},
		},
	},
	"I-V-vi-IV": {
		Name: "I-V-vi-IV",
		Chords: []model.ProgressionChord{
			{Degree: "I", Offset: 0, Quality: model.QualityMajor},
			{Degree: "V", Offset: 7, Quality: model.QualityMajor},
			{Degree: "vi", Offset: 9, Quality: model.QualityMinor},
			{Degree: "IV", Offset: 5, Quality: model.QualityMajor},
		},
	},
	"ii-V-I": {
		Name: "ii-V-I",
		Chords: []model.ProgressionChord{
			{Degree: "ii", Offset: 2, Quality: model.QualityMinor7},
			{Degree: "V", Offset: 7, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityMajor7},
		},
	},
	"vi-IV-I-V": {
		Name: "vi-IV-I-V",
		Chords: []model.ProgressionChord{
			{Degree: "vi", Offset: 9, Quality: model.QualityMinor},
			{Degree: "IV", Offset: 5, Quality: model.QualityMajor},
			{Degree: "I", Offset: 0, Quality: model.QualityMajor},
			{Degree: "V", Offset: 7, Quality: model.QualityMajor},
		},
	},
	"12-bar-blues": {
		Name: "12-bar-blues",
		Chords: []model.ProgressionChord{
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "IV", Offset: 5, Quality: model.QualityDominant7},
			{Degree: "IV", Offset: 5, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "V", Offset: 7, Quality: model.QualityDominant7},
			{Degree: "IV", Offset: 5, Quality: model.QualityDominant7},
			{Degree: "I", Offset: 0, Quality: model.QualityDominant7},
			{Degree: "V", Offset: 7, Quality: model.QualityDominant7},
		},
	},
	"i-bVI-bIII-bVII": {
		Name: "i-bVI-bIII-bVII",
		Chords: []model.ProgressionChord{
			{Degree: "i", Offset: 0, Quality: model.QualityMinor},
			{Degree: "bVI", Offset: 8, Quality: model.QualityMajor},
			{Degree: "bIII", Offset: 3, Quality: model.QualityMajor},
			{Degree: "bVII", Offset: 10, Quality: model.QualityMajor},
		},
	},
}

// Transpose maps a progression template onto a concrete root. Pure mapping,
// no failure modes.
func Transpose(prog model.ChordProgression, root model.NoteId) []model.TransposedChord {
	res := make([]model.TransposedChord, len(prog.Chords))
	for i, c := range prog.Chords {
		res[i] = model.TransposedChord{
			Note:    theory.Transpose(root, c.Offset),
			Quality: c.Quality,
			Degree:  c.Degree,
		}
	}
	return res
}
