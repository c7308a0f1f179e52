package shape

import (
	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/jsphweid/fretforge/util"
)

// BuildShapes resolves every catalog template matching the quality against
// the requested root. The result is empty (not an error) when no template
// matches.
func BuildShapes(t tuning.Tuning, root model.NoteId, quality model.ChordQuality) []model.RuntimeChordShape {
	res := make([]model.RuntimeChordShape, 0)
	for _, tpl := range Catalog {
		if !hasQuality(tpl, quality) {
			continue
		}
		res = append(res, Resolve(t, tpl, root, quality))
	}
	return res
}

func hasQuality(tpl model.ChordShapeTemplate, quality model.ChordQuality) bool {
	for _, q := range tpl.Qualities {
		if q == quality {
			return true
		}
	}
	return false
}

// Resolve derives the runtime voicing of one template for a concrete root.
// Movable templates shift every fret-bearing field by the root distance;
// open shapes keep absolute frets and only get their interval labels
// recomputed against the new root. Pure function of its inputs.
func Resolve(t tuning.Tuning, tpl model.ChordShapeTemplate, root model.NoteId, quality model.ChordQuality) model.RuntimeChordShape {
	offset := 0
	if tpl.IsMovable {
		offset = theory.Distance(tpl.BaseRoot, root)
	}

	shape := model.RuntimeChordShape{
		TemplateId: tpl.Id,
		Family:     tpl.Family,
		Root:       root,
		Quality:    quality,
	}

	if tpl.Barre != nil {
		shape.Barre = &model.BarrePlacement{
			FromString: tpl.Barre.FromString,
			ToString:   tpl.Barre.ToString,
			Fret:       tpl.Barre.Fret + offset,
			Finger:     tpl.Barre.Finger,
		}
	}

	for _, f := range tpl.Fingers {
		fret := f.Fret + offset
		pitch := t.PitchAt(f.String, fret)
		shape.Fingers = append(shape.Fingers, model.FingerPlacement{
			String:   f.String,
			Fret:     fret,
			Finger:   f.Finger,
			Interval: theory.IntervalBetween(root, pitch),
			IsRoot:   pitch == root,
		})
	}

	for s := constants.NumStrings; s >= 1; s-- {
		shape.Strings = append(shape.Strings, resolveString(t, tpl, shape, root, s))
	}

	haveWindow := false
	for _, st := range shape.Strings {
		if st.Action != model.StringFretted || st.Fret == 0 {
			continue
		}
		if !haveWindow {
			shape.FretWindowStart, shape.FretWindowEnd = st.Fret, st.Fret
			haveWindow = true
			continue
		}
		shape.FretWindowStart = util.Min(shape.FretWindowStart, st.Fret)
		shape.FretWindowEnd = util.Max(shape.FretWindowEnd, st.Fret)
	}

	for _, st := range shape.Strings {
		if st.Action == model.StringMuted {
			continue
		}
		shape.AudioNotes = append(shape.AudioNotes, model.AudioNote{String: st.String, Fret: st.Fret})
	}

	return shape
}

// resolveString computes the per-string state: the barre acts as a floor
// under any finger on the covered strings, open strings sound their open
// pitch and anything unaccounted for is muted.
func resolveString(t tuning.Tuning, tpl model.ChordShapeTemplate, shape model.RuntimeChordShape, root model.NoteId, s int) model.StringState {
	for _, m := range tpl.MutedStrings {
		if m == s {
			return model.StringState{String: s, Action: model.StringMuted}
		}
	}

	fret := -1
	for _, f := range shape.Fingers {
		if f.String == s {
			fret = util.Max(fret, f.Fret)
		}
	}
	if shape.Barre != nil && s <= shape.Barre.FromString && s >= shape.Barre.ToString {
		fret = util.Max(fret, shape.Barre.Fret)
	}
	if fret >= 0 {
		pitch := t.PitchAt(s, fret)
		return model.StringState{
			String:   s,
			Action:   model.StringFretted,
			Fret:     fret,
			Interval: theory.IntervalBetween(root, pitch),
		}
	}

	for _, o := range tpl.OpenStrings {
		if o == s {
			return model.StringState{
				String:   s,
				Action:   model.StringOpen,
				Interval: theory.IntervalBetween(root, t.Open[s]),
			}
		}
	}

	return model.StringState{String: s, Action: model.StringMuted}
}
