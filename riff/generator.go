package riff

import (
	"math/rand"

	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/jsphweid/fretforge/util"
)

// Generator produces note-level riffs for a transposed progression. The
// random source is injected so tests can fix the seed; everything else is
// pure. The only invariant the generator enforces is structural validity
// (frets within the style's range, techniques consistent with context),
// not musical reproducibility.
type Generator struct {
	tuning tuning.Tuning
	rnd    *rand.Rand
}

func NewGenerator(t tuning.Tuning, rnd *rand.Rand) *Generator {
	return &Generator{tuning: t, rnd: rnd}
}

// Generate builds one 4-beat measure per progression chord under the given
// style policy.
func (g *Generator) Generate(chords []model.TransposedChord, style model.RiffStyle, bpm int) model.ProgressionRiff {
	if _, ok := styles[style]; !ok {
		style = model.StyleMelodic
	}
	res := model.ProgressionRiff{Bpm: bpm, Style: style}
	for i, chord := range chords {
		var next *model.TransposedChord
		if i+1 < len(chords) {
			next = &chords[i+1]
		}
		res.Riffs = append(res.Riffs, g.generateMeasure(chord, next, style))
	}
	return res
}

func (g *Generator) generateMeasure(chord model.TransposedChord, next *model.TransposedChord, style model.RiffStyle) model.ChordRiff {
	params := styles[style]
	onsets := params.Patterns[g.rnd.Intn(len(params.Patterns))]
	tones := theory.ChordTones(chord.Note, chord.Quality)
	scale := theory.ScaleTones(chord.Note, theory.ScaleForQuality(chord.Quality))

	measure := model.ChordRiff{Chord: chord}
	if len(tones) == 0 {
		return measure
	}
	var prev *model.RiffNote
	for i, onset := range onsets {
		target := g.chooseTone(style, tones, scale, next, i, len(onsets), onset)
		str, fret, ok := g.resolvePosition(params, target, prev)
		if !ok {
			continue
		}

		note := model.RiffNote{
			String:    str,
			Fret:      fret,
			StartBeat: onset,
			Duration:  noteDuration(onsets, i),
			Technique: model.TechniqueNormal,
		}
		if style == model.StyleComplex {
			g.applyTechnique(&note, prev)
		}
		note.Note = g.tuning.PitchAt(note.String, note.Fret)
		note.Interval = theory.IntervalBetween(chord.Note, note.Note)

		measure.Notes = append(measure.Notes, note)
		prev = &measure.Notes[len(measure.Notes)-1]
	}
	return measure
}

// chooseTone picks the target pitch class for one onset under the style
// policy.
func (g *Generator) chooseTone(style model.RiffStyle, tones, scale []model.NoteId, next *model.TransposedChord, i, total int, onset float64) model.NoteId {
	strong := onset == 0 || onset == 2
	switch style {
	case model.StyleArpeggiated:
		return tones[i%len(tones)]
	case model.StyleBass:
		if strong {
			return tones[0]
		}
		return tones[util.Min(2, len(tones)-1)]
	case model.StyleComplex:
		if strong || g.rnd.Float64() < 0.40 {
			return tones[g.rnd.Intn(len(tones))]
		}
		if i >= total-2 && next != nil {
			return g.approachTone(next.Note)
		}
		if g.rnd.Float64() < 0.15 {
			return theory.Notes[g.rnd.Intn(12)]
		}
		return scale[g.rnd.Intn(len(scale))]
	default: // melodic
		if i == total-1 && next != nil {
			return g.approachTone(next.Note)
		}
		if strong {
			return tones[g.rnd.Intn(len(tones))]
		}
		return scale[g.rnd.Intn(len(scale))]
	}
}

// approachTone is a chromatic neighbor of the next chord's root.
func (g *Generator) approachTone(nextRoot model.NoteId) model.NoteId {
	if g.rnd.Float64() < 0.5 {
		return theory.Transpose(nextRoot, -1)
	}
	return theory.Transpose(nextRoot, 1)
}

// resolvePosition maps a pitch class to a concrete (string, fret) within
// the style's preferred strings and fret ceiling. A different string than
// the previous note is preferred 70% of the time; otherwise the closest
// fret wins, ties broken uniformly among the top two candidates.
func (g *Generator) resolvePosition(params styleParams, target model.NoteId, prev *model.RiffNote) (int, int, bool) {
	type candidate struct {
		str  int
		fret int
	}
	var candidates []candidate
	for s := params.MinString; s <= params.MaxString; s++ {
		for _, f := range g.tuning.FretsOf(s, target, params.MaxFret) {
			candidates = append(candidates, candidate{s, f})
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	if prev == nil {
		c := candidates[g.rnd.Intn(len(candidates))]
		return c.str, c.fret, true
	}

	if g.rnd.Float64() < 0.70 {
		var other []candidate
		for _, c := range candidates {
			if c.str != prev.String {
				other = append(other, c)
			}
		}
		if len(other) > 0 {
			candidates = other
		}
	}

	// insertion sort by distance to the previous fret; the pool is tiny
	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0; j-- {
			if util.Abs(candidates[j].fret-prev.Fret) < util.Abs(candidates[j-1].fret-prev.Fret) {
				candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
			} else {
				break
			}
		}
	}
	top := util.Min(2, len(candidates))
	c := candidates[g.rnd.Intn(top)]
	return c.str, c.fret, true
}

// applyTechnique draws an articulation from the fixed weighted
// distribution and keeps it only when physically consistent with context;
// otherwise the note stays normal.
func (g *Generator) applyTechnique(note *model.RiffNote, prev *model.RiffNote) {
	drawn := g.drawTechnique()
	switch drawn {
	case model.TechniqueHammerOn:
		if prev == nil || prev.String != note.String || note.Fret <= prev.Fret {
			return
		}
	case model.TechniquePullOff:
		if prev == nil || prev.String != note.String || note.Fret >= prev.Fret {
			return
		}
	case model.TechniqueHarmonic:
		note.Fret = nearestHarmonicFret(note.Fret)
	case model.TechniqueSlideUp:
		target := note.Fret + 2 + g.rnd.Intn(2)
		if target > constants.MaxFret {
			return
		}
		note.TargetFret = &target
	case model.TechniqueSlideDown:
		target := note.Fret - 2 - g.rnd.Intn(2)
		if target < 0 {
			return
		}
		note.TargetFret = &target
	case model.TechniqueBend:
		if note.String > 4 || note.Fret < 5 {
			return
		}
	}
	note.Technique = drawn
}

func (g *Generator) drawTechnique() model.Technique {
	roll := g.rnd.Intn(100)
	for _, tw := range techniqueWeights {
		if roll < tw.Weight {
			return tw.Technique
		}
		roll -= tw.Weight
	}
	return model.TechniqueNormal
}

func nearestHarmonicFret(fret int) int {
	best := harmonicFrets[0]
	for _, hf := range harmonicFrets[1:] {
		if util.Abs(fret-hf) < util.Abs(fret-best) {
			best = hf
		}
	}
	return best
}

// noteDuration runs to the next onset, capped at one beat.
func noteDuration(onsets []float64, i int) float64 {
	var d float64
	if i+1 < len(onsets) {
		d = onsets[i+1] - onsets[i]
	} else {
		d = constants.BeatsPerMeasure - onsets[i]
	}
	if d > 1 {
		d = 1
	}
	return d
}
