package shape

import (
	"github.com/jsphweid/fretforge/model"
)

// Catalog is the static chord-shape template table, ordered so BuildShapes
// output is deterministic. Movable templates are rooted at the fret-1 barre
// position of their family; open shapes carry absolute frets.
var Catalog = []model.ChordShapeTemplate{
	// Movable E-form barres, rooted at F.
	{
		Id:        "e-form-major",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.F,
		RootString: 6, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 4, Fret: 3, Finger: 4, Interval: model.IntervalRoot},
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalThird},
		},
		Barre:     &model.TemplateBarre{FromString: 6, ToString: 1, Fret: 1, Finger: 1},
		IsMovable: true,
	},
	{
		Id:        "e-form-minor",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityMinor},
		BaseRoot:  model.F,
		RootString: 6, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 4, Fret: 3, Finger: 4, Interval: model.IntervalRoot},
		},
		Barre:     &model.TemplateBarre{FromString: 6, ToString: 1, Fret: 1, Finger: 1},
		IsMovable: true,
	},
	{
		Id:        "e-form-dom7",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.F,
		RootString: 6, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalThird},
		},
		Barre:     &model.TemplateBarre{FromString: 6, ToString: 1, Fret: 1, Finger: 1},
		IsMovable: true,
	},
	{
		Id:        "e-form-min7",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityMinor7},
		BaseRoot:  model.F,
		RootString: 6, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
		},
		Barre:     &model.TemplateBarre{FromString: 6, ToString: 1, Fret: 1, Finger: 1},
		IsMovable: true,
	},

	// Movable A-form barres, rooted at A#.
	{
		Id:        "a-form-major",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.ASharp,
		RootString: 5, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 3, Finger: 2, Interval: model.IntervalFifth},
			{String: 3, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 2, Fret: 3, Finger: 4, Interval: model.IntervalThird},
		},
		MutedStrings: []int{6},
		Barre:        &model.TemplateBarre{FromString: 5, ToString: 1, Fret: 1, Finger: 1},
		IsMovable:    true,
	},
	{
		Id:        "a-form-minor",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityMinor},
		BaseRoot:  model.ASharp,
		RootString: 5, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 3, Fret: 3, Finger: 4, Interval: model.IntervalRoot},
			{String: 2, Fret: 2, Finger: 2, Interval: model.IntervalFlatThird},
		},
		MutedStrings: []int{6},
		Barre:        &model.TemplateBarre{FromString: 5, ToString: 1, Fret: 1, Finger: 1},
		IsMovable:    true,
	},
	{
		Id:        "a-form-dom7",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.ASharp,
		RootString: 5, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 2, Fret: 3, Finger: 4, Interval: model.IntervalThird},
		},
		MutedStrings: []int{6},
		Barre:        &model.TemplateBarre{FromString: 5, ToString: 1, Fret: 1, Finger: 1},
		IsMovable:    true,
	},
	{
		Id:        "a-form-maj7",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityMajor7},
		BaseRoot:  model.ASharp,
		RootString: 5, RootFret: 1,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 3, Finger: 3, Interval: model.IntervalFifth},
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalSeventh},
			{String: 2, Fret: 3, Finger: 4, Interval: model.IntervalThird},
		},
		MutedStrings: []int{6},
		Barre:        &model.TemplateBarre{FromString: 5, ToString: 1, Fret: 1, Finger: 1},
		IsMovable:    true,
	},

	// Open-position shapes, absolute frets.
	{
		Id:        "open-c-major",
		Family:    "C",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.C,
		RootString: 5, RootFret: 3,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 4, Fret: 2, Finger: 2, Interval: model.IntervalThird},
			{String: 2, Fret: 1, Finger: 1, Interval: model.IntervalRoot},
		},
		OpenStrings:  []int{3, 1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-c-dom7",
		Family:    "C",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.C,
		RootString: 5, RootFret: 3,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 4, Fret: 2, Finger: 2, Interval: model.IntervalThird},
			{String: 3, Fret: 3, Finger: 4, Interval: model.IntervalFlatSeven},
			{String: 2, Fret: 1, Finger: 1, Interval: model.IntervalRoot},
		},
		OpenStrings:  []int{1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-c-maj7",
		Family:    "C",
		Qualities: []model.ChordQuality{model.QualityMajor7},
		BaseRoot:  model.C,
		RootString: 5, RootFret: 3,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 4, Fret: 2, Finger: 2, Interval: model.IntervalThird},
		},
		OpenStrings:  []int{3, 2, 1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-a-major",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.A,
		RootString: 5, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 2, Finger: 1, Interval: model.IntervalFifth},
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalRoot},
			{String: 2, Fret: 2, Finger: 3, Interval: model.IntervalThird},
		},
		OpenStrings:  []int{5, 1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-a-minor",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityMinor},
		BaseRoot:  model.A,
		RootString: 5, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 3, Fret: 2, Finger: 3, Interval: model.IntervalRoot},
			{String: 2, Fret: 1, Finger: 1, Interval: model.IntervalFlatThird},
		},
		OpenStrings:  []int{5, 1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-a-dom7",
		Family:    "A",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.A,
		RootString: 5, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 4, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 2, Fret: 2, Finger: 3, Interval: model.IntervalThird},
		},
		OpenStrings:  []int{5, 3, 1},
		MutedStrings: []int{6},
	},
	{
		Id:        "open-g-major",
		Family:    "G",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.G,
		RootString: 6, RootFret: 3,
		Fingers: []model.TemplateFinger{
			{String: 6, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 5, Fret: 2, Finger: 2, Interval: model.IntervalThird},
			{String: 1, Fret: 3, Finger: 4, Interval: model.IntervalRoot},
		},
		OpenStrings: []int{4, 3, 2},
	},
	{
		Id:        "open-g-dom7",
		Family:    "G",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.G,
		RootString: 6, RootFret: 3,
		Fingers: []model.TemplateFinger{
			{String: 6, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 5, Fret: 2, Finger: 2, Interval: model.IntervalThird},
			{String: 1, Fret: 1, Finger: 1, Interval: model.IntervalFlatSeven},
		},
		OpenStrings: []int{4, 3, 2},
	},
	{
		Id:        "open-e-major",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.E,
		RootString: 6, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 4, Fret: 2, Finger: 3, Interval: model.IntervalRoot},
			{String: 3, Fret: 1, Finger: 1, Interval: model.IntervalThird},
		},
		OpenStrings: []int{6, 2, 1},
	},
	{
		Id:        "open-e-minor",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityMinor},
		BaseRoot:  model.E,
		RootString: 6, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 4, Fret: 2, Finger: 3, Interval: model.IntervalRoot},
		},
		OpenStrings: []int{6, 3, 2, 1},
	},
	{
		Id:        "open-e-dom7",
		Family:    "E",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.E,
		RootString: 6, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 5, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 3, Fret: 1, Finger: 1, Interval: model.IntervalThird},
		},
		OpenStrings: []int{6, 4, 2, 1},
	},
	{
		Id:        "open-d-major",
		Family:    "D",
		Qualities: []model.ChordQuality{model.QualityMajor},
		BaseRoot:  model.D,
		RootString: 4, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 3, Fret: 2, Finger: 1, Interval: model.IntervalFifth},
			{String: 2, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 1, Fret: 2, Finger: 2, Interval: model.IntervalThird},
		},
		OpenStrings:  []int{4},
		MutedStrings: []int{6, 5},
	},
	{
		Id:        "open-d-minor",
		Family:    "D",
		Qualities: []model.ChordQuality{model.QualityMinor},
		BaseRoot:  model.D,
		RootString: 4, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 2, Fret: 3, Finger: 3, Interval: model.IntervalRoot},
			{String: 1, Fret: 1, Finger: 1, Interval: model.IntervalFlatThird},
		},
		OpenStrings:  []int{4},
		MutedStrings: []int{6, 5},
	},
	{
		Id:        "open-d-dom7",
		Family:    "D",
		Qualities: []model.ChordQuality{model.QualityDominant7},
		BaseRoot:  model.D,
		RootString: 4, RootFret: 0,
		Fingers: []model.TemplateFinger{
			{String: 3, Fret: 2, Finger: 2, Interval: model.IntervalFifth},
			{String: 2, Fret: 1, Finger: 1, Interval: model.IntervalFlatSeven},
			{String: 1, Fret: 2, Finger: 3, Interval: model.IntervalThird},
		},
		OpenStrings:  []int{4},
		MutedStrings: []int{6, 5},
	},
}
