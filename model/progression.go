package model

// ProgressionChord is one slot of a progression template: a scale-degree
// offset in semitones from the tonic plus the quality and roman-numeral
// label of the degree.
type ProgressionChord struct {
	Degree  string
	Offset  int
	Quality ChordQuality
}

// ChordProgression is an immutable progression template.
type ChordProgression struct {
	Name   string
	Chords []ProgressionChord
}

// TransposedChord is one concrete chord of a progression mapped onto a root.
type TransposedChord struct {
	Note    NoteId
	Quality ChordQuality
	Degree  string
}
