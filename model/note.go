package model

// NoteId is one of the 12 canonical sharp-spelled pitch classes. Flats are
// never used internally; enharmonic inputs must be normalized before they
// reach this layer.
type NoteId string

const (
	C      NoteId = "C"
	CSharp NoteId = "C#"
	D      NoteId = "D"
	DSharp NoteId = "D#"
	E      NoteId = "E"
	F      NoteId = "F"
	FSharp NoteId = "F#"
	G      NoteId = "G"
	GSharp NoteId = "G#"
	A      NoteId = "A"
	ASharp NoteId = "A#"
	B      NoteId = "B"
)

// Interval is a labeled pitch-class distance from a chord or scale root.
// The set is closed; (#4,b5) and (#5,b6) intentionally share semitone
// values.
type Interval string

const (
	IntervalRoot       Interval = "R"
	IntervalFlatSecond Interval = "b2"
	IntervalSecond     Interval = "2"
	IntervalFlatThird  Interval = "b3"
	IntervalThird      Interval = "3"
	IntervalFourth     Interval = "4"
	IntervalSharpFour  Interval = "#4"
	IntervalFlatFifth  Interval = "b5"
	IntervalFifth      Interval = "5"
	IntervalSharpFifth Interval = "#5"
	IntervalFlatSixth  Interval = "b6"
	IntervalSixth      Interval = "6"
	IntervalFlatSeven  Interval = "b7"
	IntervalSeventh    Interval = "7"
	IntervalNinth      Interval = "9"
)

// ChordQuality keys the static quality -> interval-list table.
type ChordQuality string

const (
	QualityMajor      ChordQuality = "major"
	QualityMinor      ChordQuality = "minor"
	QualityDiminished ChordQuality = "dim"
	QualityAugmented  ChordQuality = "aug"
	QualitySus2       ChordQuality = "sus2"
	QualitySus4       ChordQuality = "sus4"
	QualityMajor7     ChordQuality = "maj7"
	QualityDominant7  ChordQuality = "7"
	QualityMinor7     ChordQuality = "m7"
	QualityPower      ChordQuality = "5"
	QualityAdd9       ChordQuality = "add9"
)
