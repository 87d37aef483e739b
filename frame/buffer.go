package frame

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/style"
)

// CellBuffer is a fixed-size grid of styled glyphs representing one rendered
// frame. Out-of-bounds writes are dropped at this boundary; off-screen
// content is an expected occurrence under scrolling, not an error.
type CellBuffer struct {
	width  int
	height int
	cells  []Cell

	cursorX   int
	cursorY   int
	hasCursor bool
}

// NewCellBuffer creates a blank buffer of the given dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell()
	}
	return &CellBuffer{width: width, height: height, cells: cells}
}

func (b *CellBuffer) Width() int  { return b.width }
func (b *CellBuffer) Height() int { return b.height }

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *CellBuffer) idx(x, y int) int {
	return y*b.width + x
}

// Get returns the cell at (x, y), or a blank cell when out of bounds
func (b *CellBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return blankCell()
	}
	return b.cells[b.idx(x, y)]
}

// Set overwrites the cell at (x, y); out-of-bounds writes are dropped
func (b *CellBuffer) Set(x, y int, cell Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[b.idx(x, y)] = cell
}

// SetBg overwrites only the background of the cell at (x, y)
func (b *CellBuffer) SetBg(x, y int, bg style.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[b.idx(x, y)]
	c.Style.Bg = bg
	c.Style.BgSet = true
}

// PutChar places a glyph at (x, y). A double-width glyph also claims the next
// column with a tail cell carrying a copy of the style, so the pair always
// changes together under diffing. Zero-width runes are dropped. When the run
// style carries no background, the existing cell background shows through.
func (b *CellBuffer) PutChar(x, y int, r rune, st CellStyle) {
	if !b.inBounds(x, y) {
		return
	}

	glyphWidth := runewidth.RuneWidth(r)
	if glyphWidth == 0 {
		return
	}

	head := st
	if !head.BgSet {
		cur := b.Get(x, y).Style
		head.Bg, head.BgSet = cur.Bg, cur.BgSet
	}
	b.Set(x, y, Cell{Rune: r, Style: head})

	if st.CursorAnchor {
		advance := 0
		if st.CursorAfter {
			advance = glyphWidth
		}
		b.setCursor(x+advance, y)
	}

	if glyphWidth > 1 {
		tailX := x + 1
		if tailX < b.width {
			tail := st
			if !tail.BgSet {
				cur := b.Get(tailX, y).Style
				tail.Bg, tail.BgSet = cur.Bg, cur.BgSet
			}
			b.Set(tailX, y, Cell{Tail: true, Style: tail})
		}
	}
}

// Cursor returns this frame's visual cursor position, if any cell anchored one
func (b *CellBuffer) Cursor() (x, y int, ok bool) {
	if !b.hasCursor {
		return 0, 0, false
	}
	return b.cursorX, b.cursorY, true
}

// setCursor clamps to buffer bounds so an end-of-line anchor on the last
// column stays on screen. At most one cursor per frame; last anchor wins.
func (b *CellBuffer) setCursor(x, y int) {
	if x > b.width-1 {
		x = b.width - 1
	}
	if x < 0 {
		x = 0
	}
	if y > b.height-1 {
		y = b.height - 1
	}
	if y < 0 {
		y = 0
	}
	b.cursorX, b.cursorY = x, y
	b.hasCursor = true
}

// CellRun is one diff write: a maximal horizontal span of changed cells
// sharing a single style.
type CellRun struct {
	X, Y  int
	Text  string
	Style CellStyle
}

// DiffRuns computes the minimal ordered updates from prev to b. When the
// dimensions differ the whole buffer is emitted as if drawn over a blank
// screen; the caller is expected to clear first.
//
// Tail cells never start a run of their own: a tail that changed marks its
// head changed instead, and the printed wide rune covers the tail column.
// A run therefore never breaks strictly inside a head/tail pair.
func (b *CellBuffer) DiffRuns(prev *CellBuffer) []CellRun {
	if prev == nil || prev.width != b.width || prev.height != b.height {
		prev = NewCellBuffer(b.width, b.height)
	}

	var runs []CellRun
	changed := make([]bool, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			changed[x] = prev.Get(x, y) != b.Get(x, y)
		}
		for x := 1; x < b.width; x++ {
			if b.Get(x, y).Tail && changed[x] {
				changed[x-1] = true
			}
		}

		x := 0
		for x < b.width {
			cur := b.Get(x, y)
			if cur.Tail || !changed[x] {
				x++
				continue
			}

			runX := x
			runStyle := cur.Style
			var text strings.Builder
			for x < b.width {
				c := b.Get(x, y)
				if c.Tail {
					// Covered by the head just written; step over it
					x++
					continue
				}
				if !changed[x] || c.Style != runStyle {
					break
				}
				text.WriteRune(c.Rune)
				x++
			}
			if text.Len() > 0 {
				runs = append(runs, CellRun{X: runX, Y: y, Text: text.String(), Style: runStyle})
			}
		}
	}
	return runs
}
