package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/glintui/glint/node"
	"github.com/glintui/glint/style"
)

// TextInput nodes are lowered into ordinary rich-text leaves once the
// solver knows the node's available width: an optional line-number gutter
// plus char-wrapped content with the cursor anchor attached to the glyph
// under the cursor.

var (
	inputGutterFg      = style.Hex(0x6e7681)
	inputPlaceholderFg = style.Hex(0x6e7681)
)

// TextInputContentWidth returns the wrap column of a text input's content
// area for a given total width. Hosts feed this into
// textinput.SetSoftWrapWidth so editing and rendering agree on row breaks.
func TextInputContentWidth(totalCols int, showGutter bool, value string) int {
	w := totalCols
	if showGutter {
		w -= gutterWidth(value)
	}
	if w < 1 {
		w = 1
	}
	return w
}

func gutterWidth(value string) int {
	digits := len(fmt.Sprintf("%d", strings.Count(value, "\n")+1))
	return digits + 3 // number, space, separator bar, space
}

func lowerTextInput(ti node.TextInput, totalCols int) node.Node {
	contentWidth := TextInputContentWidth(totalCols, ti.ShowGutter, ti.Value)
	content := node.RichText{Runs: contentRuns(ti, contentWidth)}

	if !ti.ShowGutter {
		return content
	}

	gutter := node.RichText{Runs: gutterRuns(ti.Value, contentWidth)}
	return node.Stack{
		Axis:     node.Row,
		Children: []node.Node{gutter, content},
	}
}

// gutterRuns renders one gutter cell per visual row: the logical line
// number where a line starts, blanks on wrapped continuation rows
func gutterRuns(value string, contentWidth int) []node.TextRun {
	digits := gutterWidth(value) - 3
	var sb strings.Builder
	wrapped := wrapValueLines(value, contentWidth)
	for i, line := range wrapped {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if line.logicalStart {
			fmt.Fprintf(&sb, "%*d │ ", digits, line.logicalLine)
		} else {
			sb.WriteString(strings.Repeat(" ", digits) + " │ ")
		}
	}
	return []node.TextRun{{
		Text:  sb.String(),
		Style: style.TextStyle{}.Color(inputGutterFg),
	}}
}

// contentRuns produces the wrapped editor content split around the cursor
// glyph. The cursor anchors on the glyph under it; at end of text it
// anchors after the last glyph; on an empty row a blank is synthesized to
// carry it.
func contentRuns(ti node.TextInput, contentWidth int) []node.TextRun {
	base := style.TextStyle{}

	if ti.Value == "" {
		if ti.Placeholder != "" {
			ph := style.TextStyle{}.Color(inputPlaceholderFg).Italic()
			runs := placeholderRuns(ti.Placeholder, ph, ti.Focused)
			return runs
		}
		if ti.Focused {
			anchor := base
			anchor.CursorAnchor = true
			return []node.TextRun{{Text: " ", Style: anchor}}
		}
		return []node.TextRun{{Text: ""}}
	}

	chars := []rune(ti.Value)
	cursor := ti.Cursor
	if cursor > len(chars) {
		cursor = len(chars)
	}

	// Choose the anchor glyph: the char under the cursor, or the previous
	// one with an "after" anchor at line/text end, or a synthesized blank
	// when the row is empty at the cursor.
	anchorIdx := -1
	anchorAfter := false
	insertBlank := false
	if ti.Focused {
		switch {
		case cursor < len(chars) && chars[cursor] != '\n':
			anchorIdx = cursor
		case cursor > 0 && chars[cursor-1] != '\n':
			anchorIdx = cursor - 1
			anchorAfter = true
		default:
			insertBlank = true
		}
	}

	var before, at, after strings.Builder
	dst := func(i int) *strings.Builder {
		switch {
		case anchorIdx < 0 || i < anchorIdx:
			return &before
		case i == anchorIdx:
			return &at
		default:
			return &after
		}
	}

	col := 0
	for i, ch := range chars {
		if insertBlank && i == cursor {
			at.WriteByte(' ')
			col++
			insertBlank = false
		}
		if ch == '\n' {
			dst(i).WriteByte('\n')
			col = 0
			continue
		}
		w := runewidth.RuneWidth(ch)
		if col > 0 && col+w > contentWidth {
			dst(i).WriteByte('\n')
			col = 0
		}
		dst(i).WriteRune(ch)
		col += w
	}
	if insertBlank {
		at.WriteByte(' ')
	}

	var runs []node.TextRun
	if before.Len() > 0 {
		runs = append(runs, node.TextRun{Text: before.String(), Style: base})
	}
	if at.Len() > 0 {
		anchor := base
		anchor.CursorAnchor = true
		anchor.CursorAfter = anchorAfter
		runs = append(runs, node.TextRun{Text: at.String(), Style: anchor})
	}
	if after.Len() > 0 {
		runs = append(runs, node.TextRun{Text: after.String(), Style: base})
	}
	if len(runs) == 0 {
		runs = []node.TextRun{{Text: ""}}
	}
	return runs
}

func placeholderRuns(placeholder string, ph style.TextStyle, focused bool) []node.TextRun {
	if !focused {
		return []node.TextRun{{Text: placeholder, Style: ph}}
	}
	chars := []rune(placeholder)
	anchor := ph
	anchor.CursorAnchor = true
	runs := []node.TextRun{{Text: string(chars[0]), Style: anchor}}
	if len(chars) > 1 {
		runs = append(runs, node.TextRun{Text: string(chars[1:]), Style: ph})
	}
	return runs
}

// wrapValueLines mirrors the char-wrap walk in contentRuns, tagging rows
// that start a logical line
type valueLine struct {
	logicalStart bool
	logicalLine  int
}

func wrapValueLines(value string, contentWidth int) []valueLine {
	lines := []valueLine{{logicalStart: true, logicalLine: 1}}
	logical := 1
	col := 0
	for _, ch := range value {
		if ch == '\n' {
			logical++
			lines = append(lines, valueLine{logicalStart: true, logicalLine: logical})
			col = 0
			continue
		}
		w := runewidth.RuneWidth(ch)
		if col > 0 && col+w > contentWidth {
			lines = append(lines, valueLine{})
			col = 0
		}
		col += w
	}
	return lines
}
