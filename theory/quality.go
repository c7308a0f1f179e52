package theory

import (
	"github.com/jsphweid/fretforge/model"
)

// QualityIntervals is the static chord-quality -> interval-list table. The
// first three entries of each list define the quality's triad; qualities
// with fewer than three entries (power chords) have no triad at all.
var QualityIntervals = map[model.ChordQuality][]model.Interval{
	model.QualityMajor:      {model.IntervalRoot, model.IntervalThird, model.IntervalFifth},
	model.QualityMinor:      {model.IntervalRoot, model.IntervalFlatThird, model.IntervalFifth},
	model.QualityDiminished: {model.IntervalRoot, model.IntervalFlatThird, model.IntervalFlatFifth},
	model.QualityAugmented:  {model.IntervalRoot, model.IntervalThird, model.IntervalSharpFifth},
	model.QualitySus2:       {model.IntervalRoot, model.IntervalSecond, model.IntervalFifth},
	model.QualitySus4:       {model.IntervalRoot, model.IntervalFourth, model.IntervalFifth},
	model.QualityMajor7:     {model.IntervalRoot, model.IntervalThird, model.IntervalFifth, model.IntervalSeventh},
	model.QualityDominant7:  {model.IntervalRoot, model.IntervalThird, model.IntervalFifth, model.IntervalFlatSeven},
	model.QualityMinor7:     {model.IntervalRoot, model.IntervalFlatThird, model.IntervalFifth, model.IntervalFlatSeven},
	model.QualityPower:      {model.IntervalRoot, model.IntervalFifth},
	model.QualityAdd9:       {model.IntervalRoot, model.IntervalThird, model.IntervalFifth, model.IntervalNinth},
}

// ChordTones resolves a chord's interval list to concrete pitch classes.
// Unknown qualities yield nil, matching the empty-result policy everywhere
// else in the core.
func ChordTones(root model.NoteId, quality model.ChordQuality) []model.NoteId {
	intervals, ok := QualityIntervals[quality]
	if !ok {
		return nil
	}
	tones := make([]model.NoteId, len(intervals))
	for i, iv := range intervals {
		tones[i] = Transpose(root, IntervalToSemitones(iv))
	}
	return tones
}

// TriadIntervals returns the first three intervals of a quality, or nil if
// the quality defines fewer than three.
func TriadIntervals(quality model.ChordQuality) []model.Interval {
	intervals := QualityIntervals[quality]
	if len(intervals) < 3 {
		return nil
	}
	return intervals[:3]
}
