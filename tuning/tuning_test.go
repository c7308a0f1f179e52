package tuning

import (
	"testing"

	"github.com/jsphweid/fretforge/model"
	"github.com/stretchr/testify/assert"
)

func TestStandardOpenPitches(t *testing.T) {
	assert := assert.New(t)
	std := Standard()
	assert.Equal(model.E, std.Open[6])
	assert.Equal(model.A, std.Open[5])
	assert.Equal(model.D, std.Open[4])
	assert.Equal(model.G, std.Open[3])
	assert.Equal(model.B, std.Open[2])
	assert.Equal(model.E, std.Open[1])
}

func TestPitchAt(t *testing.T) {
	assert := assert.New(t)
	std := Standard()
	assert.Equal(model.G, std.PitchAt(6, 3))
	assert.Equal(model.C, std.PitchAt(5, 3))
	assert.Equal(model.E, std.PitchAt(1, 0))
	assert.Equal(model.E, std.PitchAt(1, 12))
}

func TestMidiAt(t *testing.T) {
	assert := assert.New(t)
	std := Standard()
	assert.Equal(40, std.MidiAt(6, 0))
	assert.Equal(43, std.MidiAt(6, 3))
	assert.Equal(64, std.MidiAt(1, 0))
	assert.Equal(60, std.MidiAt(2, 1)) // middle C on the B string
}

func TestFretsOf(t *testing.T) {
	assert := assert.New(t)
	std := Standard()
	assert.Equal([]int{3, 15}, std.FretsOf(6, model.G, 15))
	assert.Equal([]int{0, 12}, std.FretsOf(6, model.E, 15))
	assert.Equal([]int{8}, std.FretsOf(1, model.C, 15))
	assert.Equal([]int(nil), std.FretsOf(1, model.C, 5))
}

func TestFirstFretOf(t *testing.T) {
	assert := assert.New(t)
	std := Standard()
	assert.Equal(1, std.FirstFretOf(2, model.C))
	assert.Equal(0, std.FirstFretOf(4, model.D))
}
