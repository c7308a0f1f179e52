package theory

import (
	"github.com/jsphweid/fretforge/model"
)

// scaleSemitones holds the static scale catalog as semitone offsets from
// the tonic.
var scaleSemitones = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"minor":            {0, 2, 3, 5, 7, 8, 10},
	"major-pentatonic": {0, 2, 4, 7, 9},
	"minor-pentatonic": {0, 3, 5, 7, 10},
}

// minorishQualities use the minor scale for scale-tone selection.
var minorishQualities = map[model.ChordQuality]bool{
	model.QualityMinor:      true,
	model.QualityMinor7:     true,
	model.QualityDiminished: true,
}

// ScaleTones resolves a named scale to pitch classes over a tonic. Unknown
// scale names yield nil.
func ScaleTones(tonic model.NoteId, scale string) []model.NoteId {
	offsets, ok := scaleSemitones[scale]
	if !ok {
		return nil
	}
	tones := make([]model.NoteId, len(offsets))
	for i, o := range offsets {
		tones[i] = Transpose(tonic, o)
	}
	return tones
}

// ScaleForQuality picks the scale used when a riff policy asks for a scale
// tone over a chord.
func ScaleForQuality(quality model.ChordQuality) string {
	if minorishQualities[quality] {
		return "minor"
	}
	return "major"
}
