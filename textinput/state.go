// Package textinput implements the editing state of a multi-line text
// field: a char-indexed cursor over a string value, word-boundary motion,
// and soft-wrap-aware vertical movement. Rendering is not handled here; the
// layout engine consumes the value, cursor offset and wrap outputs.
package textinput

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/glintui/glint/input"
)

// State is a text field's editing state. Cursor positions are char offsets
// (not bytes, not columns). The zero value is an empty field.
type State struct {
	value  string
	cursor int

	// Preferred column survives consecutive vertical moves through short rows
	preferredCol    int
	hasPreferredCol bool

	softWrapWidth int // 0 = no soft wrap, vertical moves use logical lines
}

// New creates editing state with the cursor at the end of value
func New(value string) *State {
	return &State{value: value, cursor: len([]rune(value))}
}

func (s *State) Value() string {
	return s.value
}

func (s *State) Cursor() int {
	return s.cursor
}

// SetValue replaces the content, clamping the cursor
func (s *State) SetValue(value string) {
	s.value = value
	if n := charLen(value); s.cursor > n {
		s.cursor = n
	}
	s.hasPreferredCol = false
}

// SetCursor moves the cursor to a char offset, clamped to the value
func (s *State) SetCursor(cursor int) {
	n := charLen(s.value)
	if cursor > n {
		cursor = n
	}
	if cursor < 0 {
		cursor = 0
	}
	s.cursor = cursor
	s.hasPreferredCol = false
}

// SetSoftWrapWidth sets the wrap column for visual vertical movement;
// 0 disables soft wrap
func (s *State) SetSoftWrapWidth(width int) {
	if width < 0 {
		width = 0
	}
	s.softWrapWidth = width
}

// HandleInput applies one editing event. Returns false for events that do
// not concern the editor so the caller can route them elsewhere.
func (s *State) HandleInput(ev input.Event) bool {
	if ev.Kind != input.EventKey {
		return false
	}

	switch ev.Key {
	case input.KeyLeft:
		if s.cursor > 0 {
			s.cursor--
		}
		s.hasPreferredCol = false
		return true

	case input.KeyRight:
		if s.cursor < charLen(s.value) {
			s.cursor++
		}
		s.hasPreferredCol = false
		return true

	case input.KeyWordLeft:
		s.cursor = prevWordBoundary(s.value, s.cursor)
		return true

	case input.KeyWordRight:
		s.cursor = nextWordBoundary(s.value, s.cursor)
		return true

	case input.KeyHome:
		s.cursor = 0
		s.hasPreferredCol = false
		return true

	case input.KeyEnd:
		s.cursor = charLen(s.value)
		s.hasPreferredCol = false
		return true

	case input.KeyUp:
		s.moveVertical(-1)
		return true

	case input.KeyDown:
		s.moveVertical(1)
		return true

	case input.KeyBackspaceWord:
		if s.cursor == 0 {
			return false
		}
		start := prevWordBoundary(s.value, s.cursor)
		s.deleteCharRange(start, s.cursor)
		s.cursor = start
		s.hasPreferredCol = false
		return true

	case input.KeyBackspace:
		if s.cursor == 0 {
			return false
		}
		s.deleteCharRange(s.cursor-1, s.cursor)
		s.cursor--
		s.hasPreferredCol = false
		return true

	case input.KeyDelete:
		if s.cursor >= charLen(s.value) {
			return false
		}
		s.deleteCharRange(s.cursor, s.cursor+1)
		s.hasPreferredCol = false
		return true

	case input.KeyEnter:
		s.insertRune('\n')
		return true

	case input.KeyRune:
		s.insertRune(ev.Rune)
		return true
	}

	return false
}

func (s *State) insertRune(r rune) {
	idx := charToByteIndex(s.value, s.cursor)
	s.value = s.value[:idx] + string(r) + s.value[idx:]
	s.cursor++
	s.hasPreferredCol = false
}

func (s *State) deleteCharRange(startChar, endChar int) {
	start := charToByteIndex(s.value, startChar)
	end := charToByteIndex(s.value, endChar)
	s.value = s.value[:start] + s.value[end:]
}

// moveVertical moves by rows: wrapped visual rows under soft wrap, logical
// lines otherwise. Moving past the first or last row snaps to the ends.
func (s *State) moveVertical(delta int) {
	if s.softWrapWidth > 0 {
		s.moveVisualVertical(delta, s.softWrapWidth)
		return
	}

	line, col := lineColForCursor(s.value, s.cursor)
	total := lineCount(s.value)
	if delta < 0 && line == 0 {
		s.cursor = 0
		s.hasPreferredCol = false
		return
	}
	if delta > 0 && line+1 >= total {
		s.cursor = charLen(s.value)
		s.hasPreferredCol = false
		return
	}

	target := line + delta
	if target < 0 {
		target = 0
	}
	if target > total-1 {
		target = total - 1
	}
	preferred := col
	if s.hasPreferredCol {
		preferred = s.preferredCol
	}
	s.cursor = cursorForLineCol(s.value, target, preferred)
	s.preferredCol = preferred
	s.hasPreferredCol = true
}

func (s *State) moveVisualVertical(delta, wrapWidth int) {
	row, col, totalRows := VisualRowCol(s.value, s.cursor, wrapWidth)
	if delta < 0 && row == 0 {
		s.cursor = 0
		s.hasPreferredCol = false
		return
	}
	if delta > 0 && row+1 >= totalRows {
		s.cursor = charLen(s.value)
		s.hasPreferredCol = false
		return
	}

	target := row + delta
	if target < 0 {
		target = 0
	}
	if target > totalRows-1 {
		target = totalRows - 1
	}
	preferred := col
	if s.hasPreferredCol {
		preferred = s.preferredCol
	}
	s.cursor = CursorForVisualRowCol(s.value, wrapWidth, target, preferred)
	s.preferredCol = preferred
	s.hasPreferredCol = true
}

func charLen(s string) int {
	return len([]rune(s))
}

func charToByteIndex(s string, charIndex int) int {
	if charIndex <= 0 {
		return 0
	}
	i := 0
	for idx := range s {
		if i == charIndex {
			return idx
		}
		i++
	}
	return len(s)
}

func lineCount(value string) int {
	return strings.Count(value, "\n") + 1
}

func lineColForCursor(value string, cursor int) (line, col int) {
	i := 0
	for _, ch := range value {
		if i == cursor {
			break
		}
		if ch == '\n' {
			line++
			col = 0
		} else {
			col++
		}
		i++
	}
	return line, col
}

func cursorForLineCol(value string, targetLine, targetCol int) int {
	line, col, idx := 0, 0, 0
	for _, ch := range value {
		if line == targetLine && col >= targetCol {
			break
		}
		if ch == '\n' {
			if line == targetLine {
				break
			}
			line++
			col = 0
			idx++
			continue
		}
		if line == targetLine {
			col++
		}
		idx++
	}
	return idx
}

// wordSpans returns the char-index ranges of non-whitespace word segments,
// using UAX#29 word boundaries
func wordSpans(value string) [][2]int {
	var spans [][2]int
	state := -1
	rest := value
	charPos := 0
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		segChars := charLen(seg)
		if strings.IndexFunc(seg, func(r rune) bool { return !unicode.IsSpace(r) }) >= 0 {
			spans = append(spans, [2]int{charPos, charPos + segChars})
		}
		charPos += segChars
	}
	return spans
}

func prevWordBoundary(value string, cursor int) int {
	boundary := 0
	for _, span := range wordSpans(value) {
		if span[0] >= cursor {
			break
		}
		boundary = span[0]
	}
	return boundary
}

func nextWordBoundary(value string, cursor int) int {
	for _, span := range wordSpans(value) {
		if span[1] > cursor {
			return span[1]
		}
	}
	return charLen(value)
}
