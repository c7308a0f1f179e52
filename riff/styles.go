package riff

import (
	"github.com/jsphweid/fretforge/model"
)

// styleParams bundles the per-style knobs: which strings the style lives
// on, how far up the neck it reaches and its rhythm-pattern catalog
// (beat onsets within a 4-beat measure).
type styleParams struct {
	MinString int
	MaxString int
	MaxFret   int
	Patterns  [][]float64
}

var styles = map[model.RiffStyle]styleParams{
	model.StyleMelodic: {
		MinString: 1,
		MaxString: 4,
		MaxFret:   12,
		Patterns: [][]float64{
			{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
			{0, 1, 1.5, 2, 3, 3.5},
			{0, 0.5, 1, 2, 2.5, 3},
		},
	},
	model.StyleArpeggiated: {
		MinString: 1,
		MaxString: 5,
		MaxFret:   9,
		Patterns: [][]float64{
			{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
			{0, 1, 2, 3},
			{0, 0.5, 1, 1.5, 2, 3, 3.5},
		},
	},
	model.StyleBass: {
		MinString: 4,
		MaxString: 6,
		MaxFret:   5,
		Patterns: [][]float64{
			{0, 1, 2, 3},
			{0, 0.5, 2, 2.5},
			{0, 1, 2, 2.5, 3},
		},
	},
	model.StyleComplex: {
		MinString: 1,
		MaxString: 6,
		MaxFret:   15,
		Patterns: [][]float64{
			{0, 0.5, 0.75, 1, 1.5, 2, 2.5, 2.75, 3, 3.5},
			{0, 0.25, 0.5, 1, 1.5, 1.75, 2, 3, 3.25, 3.5},
			{0, 0.5, 1, 1.5, 2, 2.5, 3, 3.5},
		},
	},
}

// techniqueWeight is the fixed articulation distribution for the complex
// style, in percent.
type techniqueWeight struct {
	Technique model.Technique
	Weight    int
}

var techniqueWeights = []techniqueWeight{
	{model.TechniqueNormal, 35},
	{model.TechniqueHammerOn, 15},
	{model.TechniquePullOff, 15},
	{model.TechniqueSlideUp, 10},
	{model.TechniqueSlideDown, 8},
	{model.TechniqueBend, 7},
	{model.TechniqueHarmonic, 5},
	{model.TechniqueMuted, 5},
}

// harmonicFrets are the natural-harmonic frets a harmonic articulation
// snaps to.
var harmonicFrets = []int{5, 7, 12}
