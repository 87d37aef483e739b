package layout

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/glintui/glint/frame"
	"github.com/glintui/glint/node"
	"github.com/glintui/glint/style"
)

// glyphCell is one placed grapheme cluster: the runes to emit, the columns
// it occupies, and its resolved cell style
type glyphCell struct {
	runes []rune
	width int
	style frame.CellStyle
}

type textLine struct {
	glyphs []glyphCell
	width  int
}

// wrappedText is a rich-text leaf after word wrapping at a column limit
type wrappedText struct {
	lines  []textLine
	width  int // widest line
	height int // line count
}

// wordToken is a wrap unit: either an unbreakable word, a whitespace span,
// or a hard line break
type wordToken struct {
	glyphs  []glyphCell
	width   int
	space   bool
	newline bool
}

// wrapRuns word-wraps styled runs at limit columns. Break opportunities
// follow UAX#29 word segments; widths are Unicode display widths, so a
// double-width glyph counts two columns. A word wider than the limit is
// hard-split on cluster boundaries. Whitespace directly after a soft break
// is dropped; explicit newlines always break.
func wrapRuns(runs []node.TextRun, limit int, inherited style.RGB, inheritedSet bool) wrappedText {
	if limit < 1 {
		limit = 1
	}

	var tokens []wordToken
	for _, run := range runs {
		st := resolveRunStyle(run.Style, inherited, inheritedSet)
		tokens = append(tokens, tokenizeRun(run.Text, st)...)
	}

	out := wrappedText{lines: []textLine{{}}}
	col := 0
	afterSoftBreak := false
	current := func() *textLine { return &out.lines[len(out.lines)-1] }

	newLine := func(soft bool) {
		out.lines = append(out.lines, textLine{})
		col = 0
		afterSoftBreak = soft
	}

	placeGlyph := func(g glyphCell) {
		if col > 0 && col+g.width > limit {
			newLine(true)
		}
		line := current()
		line.glyphs = append(line.glyphs, g)
		line.width += g.width
		col += g.width
	}

	for _, tok := range tokens {
		switch {
		case tok.newline:
			newLine(false)

		case tok.space:
			if afterSoftBreak && col == 0 {
				continue
			}
			for _, g := range tok.glyphs {
				placeGlyph(g)
			}
			afterSoftBreak = false

		default:
			if col > 0 && col+tok.width > limit && tok.width <= limit {
				newLine(true)
			}
			// A word wider than the whole limit falls through and
			// hard-splits inside placeGlyph
			for _, g := range tok.glyphs {
				placeGlyph(g)
			}
			afterSoftBreak = false
		}
	}

	for _, line := range out.lines {
		if line.width > out.width {
			out.width = line.width
		}
	}
	out.height = len(out.lines)
	return out
}

// tokenizeRun splits one styled run into wrap units
func tokenizeRun(text string, st frame.CellStyle) []wordToken {
	var tokens []wordToken
	state := -1
	rest := text
	for len(rest) > 0 {
		var seg string
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		tokens = append(tokens, segmentTokens(seg, st)...)
	}
	return tokens
}

// segmentTokens converts one UAX#29 segment into tokens, separating hard
// newlines from the rest
func segmentTokens(seg string, st frame.CellStyle) []wordToken {
	var tokens []wordToken
	var cur wordToken
	curSet := false

	flush := func() {
		if curSet && len(cur.glyphs) > 0 {
			tokens = append(tokens, cur)
		}
		cur = wordToken{}
		curSet = false
	}

	gstate := -1
	rest := seg
	for len(rest) > 0 {
		var cluster string
		var width int
		cluster, rest, width, gstate = uniseg.FirstGraphemeClusterInString(rest, gstate)
		runes := []rune(cluster)

		if len(runes) == 1 && runes[0] == '\n' {
			flush()
			tokens = append(tokens, wordToken{newline: true})
			continue
		}

		isSpace := unicode.IsSpace(runes[0])
		if curSet && cur.space != isSpace {
			flush()
		}
		if !curSet {
			cur = wordToken{space: isSpace}
			curSet = true
		}
		if width == 0 {
			// Combining sequence reported zero wide; attach to the
			// previous glyph so it stays in the same cell
			if n := len(cur.glyphs); n > 0 {
				cur.glyphs[n-1].runes = append(cur.glyphs[n-1].runes, runes...)
				continue
			}
			continue
		}
		cur.glyphs = append(cur.glyphs, glyphCell{runes: runes, width: width, style: st})
		cur.width += width
	}
	flush()
	return tokens
}

// resolveRunStyle applies inherited container text color to runs that do
// not set their own foreground
func resolveRunStyle(ts style.TextStyle, inherited style.RGB, inheritedSet bool) frame.CellStyle {
	st := frame.StyleFromText(ts)
	if !st.FgSet && inheritedSet {
		st.Fg = inherited
		st.FgSet = true
	}
	return st
}

// measureIcon returns the columns an icon glyph occupies
func measureIcon(glyph rune) int {
	w := runewidth.RuneWidth(glyph)
	if w < 1 {
		w = 1
	}
	return w
}
