package textinput

import (
	"github.com/mattn/go-runewidth"
)

// Soft-wrap math over a char-indexed value. Wrapping here is pure
// column-count wrapping (an editor surface wraps mid-word); word-aware
// wrapping belongs to rich-text layout. Widths are Unicode display widths,
// so a double-width glyph consumes two columns.

// VisualRows returns the number of wrapped rows the value occupies at the
// given wrap width
func VisualRows(value string, wrapWidth int) int {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	rows := 1
	col := 0
	for _, ch := range value {
		if ch == '\n' {
			rows++
			col = 0
			continue
		}
		w := runewidth.RuneWidth(ch)
		if col > 0 && col+w > wrapWidth {
			rows++
			col = 0
		}
		col += w
	}
	return rows
}

// VisualRowCol locates a char-index cursor on the wrapped grid, returning
// its row, column and the total row count
func VisualRowCol(value string, cursor, wrapWidth int) (row, col, totalRows int) {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	totalRows = VisualRows(value, wrapWidth)

	i := 0
	for _, ch := range value {
		if ch != '\n' {
			w := runewidth.RuneWidth(ch)
			if col > 0 && col+w > wrapWidth {
				row++
				col = 0
			}
		}

		if i == cursor {
			return row, col, totalRows
		}

		if ch == '\n' {
			row++
			col = 0
		} else {
			col += runewidth.RuneWidth(ch)
		}
		i++
	}
	return row, col, totalRows
}

// CursorForVisualRowCol maps a wrapped-grid position back to a char index.
// When the target column overshoots the row, the row's last position wins;
// an out-of-range row resolves to the nearest populated one.
func CursorForVisualRowCol(value string, wrapWidth, targetRow, targetCol int) int {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	chars := []rune(value)
	row, col := 0, 0
	best, first, last := -1, -1, -1

	for i, ch := range chars {
		if ch != '\n' {
			w := runewidth.RuneWidth(ch)
			if col > 0 && col+w > wrapWidth {
				row++
				col = 0
			}
		}

		if row == targetRow {
			if first < 0 {
				first = i
			}
			last = i
			if col <= targetCol {
				best = i
			}
		} else if row > targetRow {
			break
		}

		if ch == '\n' {
			row++
			col = 0
		} else {
			col += runewidth.RuneWidth(ch)
		}
	}

	end := len(chars)
	if row == targetRow {
		if first < 0 {
			first = end
		}
		last = end
		if col <= targetCol {
			best = end
		}
	}

	switch {
	case best >= 0:
		return best
	case last >= 0:
		return last
	case first >= 0:
		return first
	}
	return end
}

// WrapLines splits the value into its wrapped visual rows. A row created by
// wrapping carries no trailing newline marker; logicalStart marks rows that
// begin a logical line (for gutter numbering).
type WrappedLine struct {
	Text         string
	LogicalStart bool
	LogicalLine  int // 1-based, valid when LogicalStart
}

func WrapLines(value string, wrapWidth int) []WrappedLine {
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	lines := []WrappedLine{{LogicalStart: true, LogicalLine: 1}}
	logical := 1
	col := 0
	cur := &lines[len(lines)-1]

	for _, ch := range value {
		if ch == '\n' {
			logical++
			lines = append(lines, WrappedLine{LogicalStart: true, LogicalLine: logical})
			cur = &lines[len(lines)-1]
			col = 0
			continue
		}
		w := runewidth.RuneWidth(ch)
		if col > 0 && col+w > wrapWidth {
			lines = append(lines, WrappedLine{})
			cur = &lines[len(lines)-1]
			col = 0
		}
		cur.Text += string(ch)
		col += w
	}
	return lines
}
