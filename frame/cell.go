package frame

import (
	"github.com/glintui/glint/style"
)

// CellStyle is the resolved style of one grid cell. All fields are value
// types so cells compare with == during diffing.
type CellStyle struct {
	Attrs style.Attr

	Fg    style.RGB
	FgSet bool
	Bg    style.RGB
	BgSet bool

	CursorAnchor bool
	CursorAfter  bool
}

// StyleFromText resolves a rich-text run style into a cell style
func StyleFromText(ts style.TextStyle) CellStyle {
	return CellStyle{
		Attrs:        ts.Attrs,
		Fg:           ts.Fg,
		FgSet:        ts.FgSet,
		Bg:           ts.Bg,
		BgSet:        ts.BgSet,
		CursorAnchor: ts.CursorAnchor,
		CursorAfter:  ts.CursorAfter,
	}
}

// Cell is a single grid position: a glyph rune or the tail placeholder of a
// double-width glyph, plus its style.
//
// Invariant: a Tail cell never exists without its head one column to the
// left; PutChar maintains this.
type Cell struct {
	Rune  rune // glyph; ignored when Tail is set
	Tail  bool // second column of a double-width glyph
	Style CellStyle
}

func blankCell() Cell {
	return Cell{Rune: ' '}
}
