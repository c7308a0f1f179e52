package triad

import (
	"fmt"
	"sort"

	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
	"github.com/jsphweid/fretforge/theory"
	"github.com/jsphweid/fretforge/tuning"
	"github.com/jsphweid/fretforge/util"
)

// stringSubsets lists all C(6,3)=20 3-string subsets, each ordered from the
// lowest-pitched string (6) down, subsets themselves in the fixed order the
// sort tie-break depends on.
var stringSubsets = func() [][3]int {
	var subsets [][3]int
	for a := constants.NumStrings; a >= 3; a-- {
		for b := a - 1; b >= 2; b-- {
			for c := b - 1; c >= 1; c-- {
				subsets = append(subsets, [3]int{a, b, c})
			}
		}
	}
	return subsets
}()

// tonePermutations indexes into the 3 triad tones; every assignment of the
// tones to the subset strings is tried so inversions on any string group
// are found.
var tonePermutations = [6][3]int{
	{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
}

// Enumerate returns every mechanically playable voicing of the quality's
// triad: all string subsets, all tone assignments, all fret occurrences up
// to fret 15, filtered to a hand span of 5 frets or less, deduplicated and
// sorted by minimum fret (ties: higher starting string number first).
// Qualities with fewer than 3 defined intervals yield an empty result.
func Enumerate(t tuning.Tuning, root model.NoteId, quality model.ChordQuality) []model.TriadPosition {
	intervals := theory.TriadIntervals(quality)
	if intervals == nil {
		return []model.TriadPosition{}
	}

	tones := make([]model.NoteId, 3)
	for i, iv := range intervals {
		tones[i] = theory.Transpose(root, theory.IntervalToSemitones(iv))
	}

	res := make([]model.TriadPosition, 0)
	seen := make(map[string]bool)
	for _, strings := range stringSubsets {
		for _, perm := range tonePermutations {
			var options [3][]int
			for i := 0; i < 3; i++ {
				options[i] = t.FretsOf(strings[i], tones[perm[i]], constants.MaxFret)
			}
			for _, f0 := range options[0] {
				for _, f1 := range options[1] {
					for _, f2 := range options[2] {
						pos := buildPosition(strings, perm, intervals, [3]int{f0, f1, f2})
						if pos.Span > constants.MaxTriadSpan || pos.MaxFret > constants.MaxFret {
							continue
						}
						key := positionKey(pos)
						if seen[key] {
							continue
						}
						seen[key] = true
						res = append(res, pos)
					}
				}
			}
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].MinFret != res[j].MinFret {
			return res[i].MinFret < res[j].MinFret
		}
		return res[i].Strings[0] > res[j].Strings[0]
	})
	return res
}

func buildPosition(strings [3]int, perm [3]int, intervals []model.Interval, frets [3]int) model.TriadPosition {
	pos := model.TriadPosition{Strings: strings}
	pos.MinFret = frets[0]
	pos.MaxFret = frets[0]
	for i := 0; i < 3; i++ {
		pos.Notes[i] = model.TriadNote{
			String:   strings[i],
			Fret:     frets[i],
			Interval: intervals[perm[i]],
		}
		pos.MinFret = util.Min(pos.MinFret, frets[i])
		pos.MaxFret = util.Max(pos.MaxFret, frets[i])
	}
	pos.Span = pos.MaxFret - pos.MinFret
	return pos
}

func positionKey(pos model.TriadPosition) string {
	return fmt.Sprintf("%v-%d-%d-%d", pos.Strings, pos.Notes[0].Fret, pos.Notes[1].Fret, pos.Notes[2].Fret)
}
