package term

import (
	"bufio"

	"github.com/glintui/glint/frame"
	"github.com/glintui/glint/style"
)

// styleEmitter tracks the terminal's active style across one diff pass and
// emits a single combined SGR sequence only when the next run differs.
// Foreground, background and the attribute set are diffed independently;
// output is always true color.
type styleEmitter struct {
	last  frame.CellStyle
	valid bool
	dirty bool // a non-default style was emitted since the last reset
}

// Apply makes st the active terminal style, emitting nothing when it
// already is
func (e *styleEmitter) Apply(w *bufio.Writer, st frame.CellStyle) {
	fgChanged := !e.valid || st.FgSet != e.last.FgSet || st.Fg != e.last.Fg
	bgChanged := !e.valid || st.BgSet != e.last.BgSet || st.Bg != e.last.Bg
	attrChanged := !e.valid || st.Attrs != e.last.Attrs

	if !fgChanged && !bgChanged && !attrChanged {
		return
	}

	// Dropping an attribute needs a reset, which wipes colors, so the
	// whole style is re-emitted in one sequence
	resetFirst := attrChanged && (!e.valid || e.last.Attrs&^st.Attrs != 0)

	w.Write(csi)
	first := true
	sep := func() {
		if !first {
			w.WriteByte(';')
		}
		first = false
	}

	if resetFirst {
		sep()
		w.WriteByte('0')
		fgChanged = st.FgSet
		bgChanged = st.BgSet
	}

	attrs := st.Attrs
	if !resetFirst && e.valid {
		attrs &^= e.last.Attrs // only newly set attributes
	}
	if attrs&style.AttrBold != 0 {
		sep()
		w.WriteByte('1')
	}
	if attrs&style.AttrItalic != 0 {
		sep()
		w.WriteByte('3')
	}
	if attrs&style.AttrUnderline != 0 {
		sep()
		w.WriteByte('4')
	}
	if attrs&style.AttrStrikethrough != 0 {
		sep()
		w.WriteByte('9')
	}

	if fgChanged {
		sep()
		if st.FgSet {
			w.Write(csiFgRGB)
			writeRGB(w, st.Fg)
		} else {
			w.Write([]byte("39"))
		}
	}
	if bgChanged {
		sep()
		if st.BgSet {
			w.Write(csiBgRGB)
			writeRGB(w, st.Bg)
		} else {
			w.Write([]byte("49"))
		}
	}

	if first {
		// Nothing to emit after all (attr change was purely additive
		// zero); keep the sequence well formed
		w.WriteByte('0')
	}
	w.WriteByte('m')

	e.last = st
	e.valid = true
	e.dirty = st.Attrs != 0 || st.FgSet || st.BgSet
}

// Reset emits SGR0 once if any non-default style is active
func (e *styleEmitter) Reset(w *bufio.Writer) {
	if e.valid && e.dirty {
		w.Write(csiSGR0)
	}
	e.valid = false
	e.dirty = false
}

func writeRGB(w *bufio.Writer, c style.RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
}
