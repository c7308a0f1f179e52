package shape

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/stretchr/testify/assert"
)

func TestBuildShapesEmptyForUnmatchedQuality(t *testing.T) {
	shapes := BuildShapes(tuning.Standard(), model.C, model.QualityPower)
	assert.Empty(t, shapes)
	assert.NotNil(t, shapes)
}

func TestMovableShapeTransposition(t *testing.T) {
	assert := assert.New(t)
	std := tuning.Standard()

	// E-form major at G sits a whole step above its F base
	shapes := BuildShapes(std, model.G, model.QualityMajor)
	var eForm *model.RuntimeChordShape
	for i := range shapes {
		if shapes[i].TemplateId == "e-form-major" {
			eForm = &shapes[i]
		}
	}
	if eForm == nil {
		t.Fatal("e-form-major missing for G major")
	}
	assert.Equal(3, eForm.Barre.Fret)
	assert.Equal(3, eForm.FretWindowStart)
	assert.Equal(5, eForm.FretWindowEnd)
	for _, f := range eForm.Fingers {
		if f.String == 4 {
			assert.Equal(5, f.Fret)
			assert.True(f.IsRoot)
		}
	}
}

func TestTranspositionRoundTrip(t *testing.T) {
	// moving a root up 12 semitones lands on the same root and must
	// reproduce identical fret numbers
	std := tuning.Standard()
	for _, root := range theory.Notes {
		wrapped := theory.Transpose(root, 12)
		assert.Equal(t, BuildShapes(std, root, model.QualityMajor), BuildShapes(std, wrapped, model.QualityMajor))
	}
}

func TestIntervalConsistencyAcrossCatalog(t *testing.T) {
	std := tuning.Standard()
	qualities := []model.ChordQuality{
		model.QualityMajor, model.QualityMinor,
		model.QualityDominant7, model.QualityMinor7, model.QualityMajor7,
	}
	for _, root := range theory.Notes {
		for _, q := range qualities {
			for _, s := range BuildShapes(std, root, q) {
				name := fmt.Sprintf("%v-%v-%v", root, q, s.TemplateId)
				t.Run(name, func(t *testing.T) {
					for _, f := range s.Fingers {
						expected := std.PitchAt(f.String, f.Fret)
						actual := theory.Transpose(root, theory.IntervalToSemitones(f.Interval))
						assert.Equal(t, expected, actual)
					}
					for _, st := range s.Strings {
						if st.Action == model.StringMuted {
							continue
						}
						expected := std.PitchAt(st.String, st.Fret)
						actual := theory.Transpose(root, theory.IntervalToSemitones(st.Interval))
						assert.Equal(t, expected, actual)
					}
				})
			}
		}
	}
}

func TestOpenShapeKeepsAbsoluteFrets(t *testing.T) {
	assert := assert.New(t)
	std := tuning.Standard()

	shapes := BuildShapes(std, model.C, model.QualityMajor)
	var openC *model.RuntimeChordShape
	for i := range shapes {
		if shapes[i].TemplateId == "open-c-major" {
			openC = &shapes[i]
		}
	}
	if openC == nil {
		t.Fatal("open-c-major missing for C major")
	}

	// x32010 reading from string 6 down
	expected := map[int]struct {
		action model.StringAction
		fret   int
	}{
		6: {model.StringMuted, 0},
		5: {model.StringFretted, 3},
		4: {model.StringFretted, 2},
		3: {model.StringOpen, 0},
		2: {model.StringFretted, 1},
		1: {model.StringOpen, 0},
	}
	for _, st := range openC.Strings {
		assert.Equal(expected[st.String].action, st.Action, "string %d", st.String)
		assert.Equal(expected[st.String].fret, st.Fret, "string %d", st.String)
	}
	assert.Equal(1, openC.FretWindowStart)
	assert.Equal(3, openC.FretWindowEnd)
	assert.Len(openC.AudioNotes, 5)
}

func TestAllOpenShapeWindowDefaultsToZero(t *testing.T) {
	std := tuning.Standard()
	tpl := model.ChordShapeTemplate{
		Id:          "test-all-open",
		Family:      "E",
		Qualities:   []model.ChordQuality{model.QualityMinor},
		BaseRoot:    model.E,
		RootString:  6,
		OpenStrings: []int{6, 5, 4, 3, 2, 1},
	}
	s := Resolve(std, tpl, model.E, model.QualityMinor)
	assert.Equal(t, 0, s.FretWindowStart)
	assert.Equal(t, 0, s.FretWindowEnd)
	assert.Len(t, s.AudioNotes, 6)
}

func TestBarreActsAsFloorUnderFingers(t *testing.T) {
	std := tuning.Standard()
	shapes := BuildShapes(std, model.F, model.QualityMinor)
	for _, s := range shapes {
		if s.TemplateId != "e-form-minor" {
			continue
		}
		// strings without a dedicated finger sound at the barre fret
		for _, st := range s.Strings {
			if st.String == 3 || st.String == 2 || st.String == 1 {
				assert.Equal(t, model.StringFretted, st.Action)
				assert.Equal(t, 1, st.Fret)
			}
		}
	}
}
