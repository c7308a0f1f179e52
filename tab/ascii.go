package tab

import (
	"strconv"
	"strings"

	"github.com/jsphweid/fretforge/constants"
	"github.com/jsphweid/fretforge/model"
)

// cellWidth is the rendered width of one subdivision slot.
const cellWidth = 3

// stringLabels indexes display labels by string number (standard-tuning
// convention, high e lowercase).
var stringLabels = [7]string{"", "e", "B", "G", "D", "A", "E"}

// RenderAscii formats a tab sheet as plain text: a chord-name header line,
// then one dashed line per string, measures separated by bars. Purely a
// formatting pass over the grid.
func RenderAscii(sheet model.TabSheet) string {
	if len(sheet.Measures) == 0 {
		return ""
	}

	var sb strings.Builder
	measureWidth := sheet.Subdivisions * cellWidth

	// header
	sb.WriteString("  ")
	for _, m := range sheet.Measures {
		name := m.ChordName
		if len(name) > measureWidth {
			name = name[:measureWidth]
		}
		sb.WriteString(name)
		sb.WriteString(strings.Repeat(" ", measureWidth-len(name)+1))
	}
	sb.WriteString("\n")

	for s := 1; s <= constants.NumStrings; s++ {
		sb.WriteString(stringLabels[s])
		sb.WriteString("|")
		for _, m := range sheet.Measures {
			for _, fret := range m.Cells[s] {
				sb.WriteString(renderCell(fret))
			}
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(fret int) string {
	if fret == model.EmptyCell {
		return strings.Repeat("-", cellWidth)
	}
	digits := strconv.Itoa(fret)
	return digits + strings.Repeat("-", cellWidth-len(digits))
}
