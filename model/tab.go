package model

// EmptyCell marks a tab grid slot with no note.
const EmptyCell = -1

// TabMeasure is one measure of the fixed-subdivision tab grid. Cells is
// indexed by string number 1..6 (index 0 unused); each row has one fret
// value (or EmptyCell) per subdivision.
type TabMeasure struct {
	ChordName string
	Cells     [7][]int
}

// TabSheet is the deterministic grid form of a ProgressionRiff.
type TabSheet struct {
	Subdivisions int
	Measures     []TabMeasure
}
