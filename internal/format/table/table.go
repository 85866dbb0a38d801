package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column configures one column. Max caps the column's display width; cells
// wider than Max are truncated with an ellipsis. Zero means no cap.
type Column struct {
	Align Alignment
	Max   int
}

const (
	gap      = "  "
	ellipsis = "…"
)

// Format pads rows so every column lines up at the width of its widest cell.
// Widths are measured in terminal cells, so wide runes and ANSI sequences are
// accounted for.
func Format(rows [][]string, columns []Column) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	cells := make([][]string, len(rows))
	widths := make([]int, colCount)
	for r, row := range rows {
		cells[r] = make([]string, colCount)
		for c := 0; c < colCount; c++ {
			var cell string
			if c < len(row) {
				cell = row[c]
			}
			if c < len(columns) && columns[c].Max > 0 && ansi.StringWidth(cell) > columns[c].Max {
				cell = ansi.Truncate(cell, columns[c].Max, ellipsis)
			}
			cells[r][c] = cell
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	out := make([]string, len(rows))
	for r, row := range cells {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gap)
			}
			pad := widths[c] - ansi.StringWidth(cell)
			if pad < 0 {
				pad = 0
			}
			if c < len(columns) && columns[c].Align == AlignRight {
				b.WriteString(strings.Repeat(" ", pad))
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				if c < len(row)-1 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
		}
		out[r] = b.String()
	}
	return out
}
