package model

// RiffStyle selects the note-choice policy of the riff generator.
type RiffStyle string

const (
	StyleMelodic     RiffStyle = "melodic"
	StyleArpeggiated RiffStyle = "arpeggiated"
	StyleBass        RiffStyle = "bass"
	StyleComplex     RiffStyle = "complex"
)

// Technique is a guitar articulation attached to a RiffNote.
type Technique string

const (
	TechniqueNormal    Technique = "normal"
	TechniqueHammerOn  Technique = "hammer-on"
	TechniquePullOff   Technique = "pull-off"
	TechniqueSlideUp   Technique = "slide-up"
	TechniqueSlideDown Technique = "slide-down"
	TechniqueBend      Technique = "bend"
	TechniqueHarmonic  Technique = "harmonic"
	TechniqueMuted     Technique = "muted"
)

// RiffNote is one scheduled event within a 4-beat measure. StartBeat and
// Duration are in beats.
type RiffNote struct {
	String    int
	Fret      int
	StartBeat float64
	Duration  float64
	Note      NoteId
	Interval  Interval
	Technique Technique
	// TargetFret is set for slide techniques only.
	TargetFret *int
}

// ChordRiff is one measure worth of notes over a single chord.
type ChordRiff struct {
	Chord TransposedChord
	Notes []RiffNote
}

// ProgressionRiff is the unit handed to serialization: ordered measures
// plus tempo and the style that generated them.
type ProgressionRiff struct {
	Riffs []ChordRiff
	Bpm   int
	Style RiffStyle
}
