package progression

import (
	"testing"

	"github.com/jsphweid/fretforge/model"
	"github.com/stretchr/testify/assert"
)

func TestTransposeMapsDegreesOntoRoot(t *testing.T) {
	prog := model.ChordProgression{
		Name: "test",
		Chords: []model.ProgressionChord{
			{Degree: "I", Offset: 0, Quality: model.QualityMajor},
			{Degree: "V", Offset: 7, Quality: model.QualityMajor},
		},
	}
	res := Transpose(prog, model.D)
	assert.Equal(t, []model.TransposedChord{
		{Note: model.D, Quality: model.QualityMajor, Degree: "I"},
		{Note: model.A, Quality: model.QualityMajor, Degree: "V"},
	}, res)
}

func TestTransposeCatalogProgression(t *testing.T) {
	assert := assert.New(t)
	res := Transpose(Catalog["I-V-vi-IV"], model.G)
	assert.Len(res, 4)
	assert.Equal(model.G, res[0].Note)
	assert.Equal(model.D, res[1].Note)
	assert.Equal(model.E, res[2].Note)
	assert.Equal(model.QualityMinor, res[2].Quality)
	assert.Equal(model.C, res[3].Note)
}

func TestTwelveBarBluesShape(t *testing.T) {
	assert := assert.New(t)
	prog := Catalog["12-bar-blues"]
	assert.Len(prog.Chords, 12)
	res := Transpose(prog, model.A)
	assert.Equal(model.A, res[0].Note)
	assert.Equal(model.D, res[4].Note)
	assert.Equal(model.E, res[8].Note)
	for _, c := range res {
		assert.Equal(model.QualityDominant7, c.Quality)
	}
}
