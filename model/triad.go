package model

// TriadNote is one of the three notes of a TriadPosition.
type TriadNote struct {
	String   int
	Fret     int
	Interval Interval
}

// TriadPosition is one candidate 3-note voicing. Strings are ordered from
// the lowest-pitched string (highest string number) down.
type TriadPosition struct {
	Strings [3]int
	Notes   [3]TriadNote
	MinFret int
	MaxFret int
	Span    int
}
