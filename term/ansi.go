package term

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiCursorPos  = []byte("\x1b[") // followed by row;colH

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// DECAWM off keeps the cursor at the right edge so writing the
	// bottom-right corner never scrolls
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")

	// Synchronized update: the terminal holds partial frames until the
	// closing sequence
	csiSyncStart = []byte("\x1b[?2026h")
	csiSyncEnd   = []byte("\x1b[?2026l")

	csiMouseOn  = []byte("\x1b[?1000h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1006l\x1b[?1000l")
	csiFocusOn  = []byte("\x1b[?1004h")
	csiFocusOff = []byte("\x1b[?1004l")

	// DECSCUSR blinking block plus an OSC cursor color for the session;
	// both carry explicit resets since RIS does not undo OSC 12 everywhere
	oscCursorColor      = []byte("\x1b]12;#a277ff\x07")
	oscCursorColorReset = []byte("\x1b]112\x07")
	csiCursorBlock      = []byte("\x1b[2 q")
	csiCursorStyleReset = []byte("\x1b[0 q")

	csiFgRGB = []byte("38;2;")
	csiBgRGB = []byte("48;2;")
)

// writeInt formats n digit by digit, skipping strconv. Row and column
// numbers dominate the call sites, so the one- to three-digit cases are
// unrolled.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [10]byte
	i := 9
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// EmergencyReset restores a usable terminal after a crash, bypassing the
// normal teardown path
func EmergencyReset(w io.Writer) {
	w.Write(csiRIS)
	w.Write(oscCursorColorReset)
	w.Write(csiCursorStyleReset)
	w.Write(csiAltScreenExit)
	w.Write(csiCursorShow)
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csiCursorPos)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}
