package theory

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fretforge/model"
	"github.com/stretchr/testify/assert"
)

func TestTransposeWrapsForward(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.C, Transpose(model.A, 3))
	assert.Equal(model.C, Transpose(model.C, 12))
	assert.Equal(model.CSharp, Transpose(model.B, 2))
}

func TestTransposeWrapsNegative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.B, Transpose(model.C, -1))
	assert.Equal(model.A, Transpose(model.C, -15))
	assert.Equal(model.C, Transpose(model.C, -24))
}

func TestTransposeNeverProducesFlats(t *testing.T) {
	for _, n := range Notes {
		for s := -24; s <= 24; s++ {
			res := Transpose(n, s)
			if _, ok := map[model.NoteId]bool{
				model.C: true, model.CSharp: true, model.D: true, model.DSharp: true,
				model.E: true, model.F: true, model.FSharp: true, model.G: true,
				model.GSharp: true, model.A: true, model.ASharp: true, model.B: true,
			}[res]; !ok {
				t.Fatalf("non-canonical spelling %v from Transpose(%v, %v)", res, n, s)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		from, to model.NoteId
		expected int
	}{
		{model.C, model.C, 0},
		{model.C, model.G, 7},
		{model.G, model.C, 5},
		{model.B, model.C, 1},
		{model.F, model.E, 11},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v->%v", c.from, c.to), func(t *testing.T) {
			assert.Equal(t, c.expected, Distance(c.from, c.to))
		})
	}
}

func TestIntervalToSemitones(t *testing.T) {
	cases := []struct {
		interval model.Interval
		expected int
	}{
		{model.IntervalRoot, 0},
		{model.IntervalFlatThird, 3},
		{model.IntervalThird, 4},
		{model.IntervalFifth, 7},
		{model.IntervalFlatSeven, 10},
		{model.IntervalNinth, 14},
	}
	for _, c := range cases {
		t.Run(string(c.interval), func(t *testing.T) {
			assert.Equal(t, c.expected, IntervalToSemitones(c.interval))
		})
	}
}

func TestEnharmonicCollisionsShareSemitones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(IntervalToSemitones(model.IntervalSharpFour), IntervalToSemitones(model.IntervalFlatFifth))
	assert.Equal(IntervalToSemitones(model.IntervalSharpFifth), IntervalToSemitones(model.IntervalFlatSixth))
}

func TestIntervalFromSemitonesUsesCanonicalSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.IntervalFlatFifth, IntervalFromSemitones(6))
	assert.Equal(model.IntervalSharpFifth, IntervalFromSemitones(8))
	assert.Equal(model.IntervalRoot, IntervalFromSemitones(12))
	assert.Equal(model.IntervalSecond, IntervalFromSemitones(14))
	assert.Equal(model.IntervalSeventh, IntervalFromSemitones(-1))
}

func TestIntervalRoundTrip(t *testing.T) {
	// every canonical label survives semitones -> label
	for s := 0; s < 12; s++ {
		label := IntervalFromSemitones(s)
		assert.Equal(t, s, IntervalToSemitones(label)%12)
	}
}

func TestChordTones(t *testing.T) {
	cases := []struct {
		root     model.NoteId
		quality  model.ChordQuality
		expected []model.NoteId
	}{
		{model.C, model.QualityMajor, []model.NoteId{model.C, model.E, model.G}},
		{model.A, model.QualityMinor, []model.NoteId{model.A, model.C, model.E}},
		{model.G, model.QualityDominant7, []model.NoteId{model.G, model.B, model.D, model.F}},
		{model.E, model.QualityPower, []model.NoteId{model.E, model.B}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%v%v", c.root, c.quality), func(t *testing.T) {
			assert.Equal(t, c.expected, ChordTones(c.root, c.quality))
		})
	}
}

func TestTriadIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.Interval{model.IntervalRoot, model.IntervalThird, model.IntervalFifth},
		TriadIntervals(model.QualityMajor))
	// power chords have no triad
	assert.Nil(TriadIntervals(model.QualityPower))
	assert.Nil(TriadIntervals("bogus"))
}

func TestScaleTones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]model.NoteId{model.C, model.D, model.E, model.F, model.G, model.A, model.B},
		ScaleTones(model.C, "major"))
	assert.Equal([]model.NoteId{model.A, model.B, model.C, model.D, model.E, model.F, model.G},
		ScaleTones(model.A, "minor"))
	assert.Nil(ScaleTones(model.C, "bogus"))
}

func TestScaleForQuality(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("major", ScaleForQuality(model.QualityMajor))
	assert.Equal("major", ScaleForQuality(model.QualityDominant7))
	assert.Equal("minor", ScaleForQuality(model.QualityMinor))
	assert.Equal("minor", ScaleForQuality(model.QualityMinor7))
}
