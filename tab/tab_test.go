package tab

import (
	"strings"
	"testing"

	"github.com/jsphweid/fretforge/model"
	"github.com/stretchr/testify/assert"
)

func sampleRiff() model.ProgressionRiff {
	return model.ProgressionRiff{
		Bpm:   120,
		Style: model.StyleMelodic,
		Riffs: []model.ChordRiff{
			{
				Chord: model.TransposedChord{Note: model.C, Quality: model.QualityMajor, Degree: "I"},
				Notes: []model.RiffNote{
					{String: 2, Fret: 1, StartBeat: 0, Duration: 0.5, Note: model.C},
					{String: 3, Fret: 0, StartBeat: 1, Duration: 0.5, Note: model.G},
					{String: 1, Fret: 3, StartBeat: 3.5, Duration: 0.5, Note: model.G},
				},
			},
			{
				Chord: model.TransposedChord{Note: model.A, Quality: model.QualityMinor, Degree: "vi"},
				Notes: []model.RiffNote{
					{String: 5, Fret: 0, StartBeat: 0, Duration: 1, Note: model.A},
				},
			},
		},
	}
}

func TestBuildQuantizesOntoGrid(t *testing.T) {
	assert := assert.New(t)
	sheet := Build(sampleRiff(), 8)
	assert.Len(sheet.Measures, 2)
	assert.Equal(8, sheet.Subdivisions)

	// startBeat * subdivisions / beats
	assert.Equal(1, sheet.Measures[0].Cells[2][0])
	assert.Equal(0, sheet.Measures[0].Cells[3][2])
	assert.Equal(3, sheet.Measures[0].Cells[1][7])
	assert.Equal(0, sheet.Measures[1].Cells[5][0])
}

func TestBuildDefaultsSubdivisions(t *testing.T) {
	sheet := Build(sampleRiff(), 0)
	assert.Equal(t, 8, sheet.Subdivisions)
}

func TestQuantizationIdempotence(t *testing.T) {
	// every note on a subdivision boundary must read back at its slot
	r := sampleRiff()
	sheet := Build(r, 8)
	for mi, measure := range r.Riffs {
		for _, note := range measure.Notes {
			slot := int(note.StartBeat * 8 / 4)
			fret, ok := NoteAt(sheet, mi, note.String, slot)
			assert.True(t, ok)
			assert.Equal(t, note.Fret, fret)
		}
	}
}

func TestBuildDropsOutOfRangeNotes(t *testing.T) {
	r := model.ProgressionRiff{
		Riffs: []model.ChordRiff{
			{
				Chord: model.TransposedChord{Note: model.C, Quality: model.QualityMajor},
				Notes: []model.RiffNote{
					{String: 1, Fret: 2, StartBeat: 5.0, Duration: 0.5},
					{String: 9, Fret: 2, StartBeat: 0, Duration: 0.5},
				},
			},
		},
	}
	sheet := Build(r, 8)
	for s := 1; s <= 6; s++ {
		for _, cell := range sheet.Measures[0].Cells[s] {
			assert.Equal(t, model.EmptyCell, cell)
		}
	}
}

func TestNoteAtOutOfRange(t *testing.T) {
	assert := assert.New(t)
	sheet := Build(sampleRiff(), 8)
	_, ok := NoteAt(sheet, 99, 1, 0)
	assert.False(ok)
	_, ok = NoteAt(sheet, 0, 7, 0)
	assert.False(ok)
	_, ok = NoteAt(sheet, 0, 1, 99)
	assert.False(ok)
	_, ok = NoteAt(sheet, 0, 1, 1)
	assert.False(ok) // empty cell
}

func TestRenderAscii(t *testing.T) {
	assert := assert.New(t)
	out := RenderAscii(Build(sampleRiff(), 8))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// header + 6 strings
	assert.Len(lines, 7)
	assert.Contains(lines[0], "C")
	assert.Contains(lines[0], "Am")
	assert.True(strings.HasPrefix(lines[1], "e|"))
	assert.True(strings.HasPrefix(lines[6], "E|"))
	// string 2 fret 1 lands at the start of measure one
	assert.True(strings.HasPrefix(lines[2], "B|1--"))
	// every string line has 2 measures of 8 cells
	for _, line := range lines[1:] {
		assert.Equal(2+2*(8*3+1), len(line))
	}
}

func TestRenderAsciiEmptySheet(t *testing.T) {
	assert.Equal(t, "", RenderAscii(model.TabSheet{Subdivisions: 8}))
}
