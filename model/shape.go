package model

// TemplateFinger is one finger position inside a ChordShapeTemplate. Fret is
// relative to the template anchor when the template is movable, absolute
// otherwise.
type TemplateFinger struct {
	String int
	Fret   int
	Finger int
	// Interval is the designed interval of the position; runtime shapes
	// recompute labels from the sounding pitch so this is documentation
	// more than contract.
	Interval Interval
}

// TemplateBarre describes a barre within a template, same fret semantics as
// TemplateFinger.
type TemplateBarre struct {
	FromString int
	ToString   int
	Fret       int
	Finger     int
}

// ChordShapeTemplate is an immutable, root-relative description of one
// CAGED-family voicing.
type ChordShapeTemplate struct {
	Id        string
	Family    string
	Qualities []ChordQuality
	BaseRoot  NoteId
	// RootString anchors the shape: the string whose fretted (or open)
	// note is the root when the template sits at BaseRoot.
	RootString   int
	RootFret     int
	Fingers      []TemplateFinger
	OpenStrings  []int
	MutedStrings []int
	Barre        *TemplateBarre
	IsMovable    bool
}

// StringAction says what a single string does in a resolved voicing.
type StringAction int

const (
	StringMuted StringAction = iota
	StringOpen
	StringFretted
)

// StringState is the per-string slice of a RuntimeChordShape. Fret is 0 for
// open and muted strings.
type StringState struct {
	String   int
	Action   StringAction
	Fret     int
	Interval Interval
}

// FingerPlacement is one resolved finger position with absolute fret.
type FingerPlacement struct {
	String   int
	Fret     int
	Finger   int
	Interval Interval
	IsRoot   bool
}

// BarrePlacement is a resolved barre with absolute fret.
type BarrePlacement struct {
	FromString int
	ToString   int
	Fret       int
	Finger     int
}

// AudioNote is one (string, fret) pair to trigger when strumming the shape.
type AudioNote struct {
	String int
	Fret   int
}

// RuntimeChordShape is the fully resolved voicing for a concrete root.
// Created fresh per query, never mutated.
type RuntimeChordShape struct {
	TemplateId string
	Family     string
	Root       NoteId
	Quality    ChordQuality
	Strings    []StringState
	Fingers    []FingerPlacement
	Barre      *BarrePlacement
	// FretWindow is the inclusive [start, end] covering every fretted
	// note, [0, 0] when the shape is entirely open.
	FretWindowStart int
	FretWindowEnd   int
	AudioNotes      []AudioNote
}
