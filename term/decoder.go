package term

import (
	"unicode/utf8"

	"github.com/glintui/glint/input"
)

// Message is one decoded item from the raw byte stream: an abstract input
// event, or a terminal focus change used for cursor blink policy.
type Message struct {
	Event    input.Event
	HasEvent bool

	FocusGained bool
	FocusLost   bool
}

func eventMsg(ev input.Event) Message {
	return Message{Event: ev, HasEvent: true}
}

// Decoder assembles raw terminal bytes into abstract input events. Bytes
// may arrive split across reads; incomplete escape or UTF-8 sequences stay
// buffered until the next feed. A lone ESC is only emitted when the caller
// reports a read timeout, since ESC is also the prefix of every sequence.
type Decoder struct {
	buf []byte
}

func NewDecoder() *Decoder {
	return &Decoder{buf: make([]byte, 0, 256)}
}

// Feed appends raw bytes and returns every complete message
func (d *Decoder) Feed(data []byte) []Message {
	d.buf = append(d.buf, data...)

	var msgs []Message
	i := 0
	n := len(d.buf)
	for i < n {
		consumed, msg, ok := d.decodeOne(d.buf[i:])
		if consumed == 0 {
			break // incomplete, wait for more bytes
		}
		if ok {
			msgs = append(msgs, msg)
		}
		i += consumed
	}

	if i > 0 {
		copy(d.buf, d.buf[i:])
		d.buf = d.buf[:n-i]
	}
	return msgs
}

// FlushTimeout resolves a pending lone ESC after a read timeout
func (d *Decoder) FlushTimeout() []Message {
	if len(d.buf) == 1 && d.buf[0] == 0x1b {
		d.buf = d.buf[:0]
		return []Message{eventMsg(input.KeyEvent(input.KeyEsc))}
	}
	return nil
}

// decodeOne decodes the first message in data. consumed == 0 means the
// sequence is incomplete; ok == false with consumed > 0 swallows an
// unknown but well-formed sequence.
func (d *Decoder) decodeOne(data []byte) (consumed int, msg Message, ok bool) {
	b := data[0]

	// Printable ASCII
	if b >= 0x20 && b < 0x7f {
		return 1, eventMsg(input.RuneEvent(rune(b))), true
	}

	if b == 0x1b {
		return d.decodeEscape(data)
	}

	// Control characters
	if b < 0x20 {
		ev, known := controlEvent(b)
		return 1, eventMsg(ev), known
	}

	if b == 0x7f {
		return 1, eventMsg(input.KeyEvent(input.KeyBackspace)), true
	}

	// UTF-8 multibyte
	if !utf8.FullRune(data) {
		return 0, Message{}, false
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size == 1 {
		return 1, Message{}, false
	}
	return size, eventMsg(input.RuneEvent(r)), true
}

func controlEvent(b byte) (input.Event, bool) {
	switch b {
	case 0x03:
		return input.KeyEvent(input.KeyInterrupt), true
	case 0x08:
		return input.KeyEvent(input.KeyBackspace), true
	case 0x09:
		return input.KeyEvent(input.KeyTab), true
	case 0x0a:
		// Ctrl+J; terminals that cannot send Alt+Enter use it to submit
		return input.KeyEvent(input.KeySubmit), true
	case 0x0d:
		return input.KeyEvent(input.KeyEnter), true
	case 0x17:
		return input.KeyEvent(input.KeyBackspaceWord), true
	}
	return input.Event{}, false
}

func (d *Decoder) decodeEscape(data []byte) (int, Message, bool) {
	if len(data) < 2 {
		return 0, Message{}, false
	}

	switch data[1] {
	case '[':
		return d.decodeCSI(data)
	case 'O':
		return d.decodeSS3(data)
	case 0x0a, 0x0d:
		// Alt+Enter
		return 2, eventMsg(input.KeyEvent(input.KeySubmit)), true
	case 0x1b:
		return 2, eventMsg(input.KeyEvent(input.KeyEsc)), true
	}

	// Alt+printable and Alt+control both pass through as their base key
	if data[1] < 0x20 {
		ev, known := controlEvent(data[1])
		return 2, eventMsg(ev), known
	}
	if data[1] < 0x7f {
		return 2, eventMsg(input.RuneEvent(rune(data[1]))), true
	}
	// Alt+Backspace
	return 2, eventMsg(input.KeyEvent(input.KeyBackspaceWord)), true
}

func (d *Decoder) decodeCSI(data []byte) (int, Message, bool) {
	if len(data) < 3 {
		return 0, Message{}, false
	}

	if data[2] == '<' {
		return d.decodeSGRMouse(data)
	}

	// Scan to the final byte
	end := 2
	maxScan := len(data)
	if maxScan > 18 {
		maxScan = 18
	}
	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			goto terminated
		}
		if b < 0x20 || b > 0x7e {
			return end, Message{}, false // malformed, drop
		}
		end++
	}
	if end >= len(data) {
		return 0, Message{}, false // incomplete
	}
	return end, Message{}, false // overlong, drop

terminated:
	body := string(data[2:end])
	switch body {
	case "A":
		return end, eventMsg(input.KeyEvent(input.KeyUp)), true
	case "B":
		return end, eventMsg(input.KeyEvent(input.KeyDown)), true
	case "C":
		return end, eventMsg(input.KeyEvent(input.KeyRight)), true
	case "D":
		return end, eventMsg(input.KeyEvent(input.KeyLeft)), true
	case "H":
		return end, eventMsg(input.KeyEvent(input.KeyHome)), true
	case "F":
		return end, eventMsg(input.KeyEvent(input.KeyEnd)), true
	case "Z":
		return end, eventMsg(input.KeyEvent(input.KeyShiftTab)), true
	case "1;5C":
		return end, eventMsg(input.KeyEvent(input.KeyWordRight)), true
	case "1;5D":
		return end, eventMsg(input.KeyEvent(input.KeyWordLeft)), true
	case "3~":
		return end, eventMsg(input.KeyEvent(input.KeyDelete)), true
	case "5~":
		return end, eventMsg(input.KeyEvent(input.KeyPageUp)), true
	case "6~":
		return end, eventMsg(input.KeyEvent(input.KeyPageDown)), true
	case "1~", "7~":
		return end, eventMsg(input.KeyEvent(input.KeyHome)), true
	case "4~", "8~":
		return end, eventMsg(input.KeyEvent(input.KeyEnd)), true
	case "I":
		return end, Message{FocusGained: true}, true
	case "O":
		return end, Message{FocusLost: true}, true
	}
	return end, Message{}, false // unknown sequence, swallow
}

func (d *Decoder) decodeSS3(data []byte) (int, Message, bool) {
	if len(data) < 3 {
		return 0, Message{}, false
	}
	switch data[2] {
	case 'A':
		return 3, eventMsg(input.KeyEvent(input.KeyUp)), true
	case 'B':
		return 3, eventMsg(input.KeyEvent(input.KeyDown)), true
	case 'C':
		return 3, eventMsg(input.KeyEvent(input.KeyRight)), true
	case 'D':
		return 3, eventMsg(input.KeyEvent(input.KeyLeft)), true
	case 'H':
		return 3, eventMsg(input.KeyEvent(input.KeyHome)), true
	case 'F':
		return 3, eventMsg(input.KeyEvent(input.KeyEnd)), true
	}
	return 3, Message{}, false
}

// decodeSGRMouse parses ESC [ < Btn ; X ; Y M/m. Scroll wheel maps to
// line scrolls, left-button press to MouseDown; everything else is
// swallowed.
func (d *Decoder) decodeSGRMouse(data []byte) (int, Message, bool) {
	end := 3
	for end < len(data) && end < 32 {
		if data[end] == 'M' || data[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(data) {
		return 0, Message{}, false
	}
	if data[end] != 'M' && data[end] != 'm' {
		return end + 1, Message{}, false
	}

	btn, x, y, paramsOK := parseSGRParams(data[3:end])
	consumed := end + 1
	if !paramsOK {
		return consumed, Message{}, false
	}

	press := data[end] == 'M'
	switch {
	case btn&64 != 0: // scroll
		lines := 3
		if btn&0x03 == 0 {
			lines = -3
		}
		return consumed, eventMsg(input.ScrollEvent(lines)), true
	case press && btn&0x03 == 0 && btn&32 == 0: // left press, no motion
		return consumed, eventMsg(input.MouseDownEvent(x-1, y-1)), true
	}
	return consumed, Message{}, false
}

// parseSGRParams parses "Btn;X;Y" without allocation
func parseSGRParams(params []byte) (btn, x, y int, ok bool) {
	vals := [3]int{}
	vi := 0
	cur := 0
	seen := false
	for _, b := range params {
		if b == ';' {
			if !seen || vi >= 2 {
				return 0, 0, 0, false
			}
			vals[vi] = cur
			vi++
			cur = 0
			seen = false
			continue
		}
		if b < '0' || b > '9' {
			return 0, 0, 0, false
		}
		cur = cur*10 + int(b-'0')
		seen = true
	}
	if !seen || vi != 2 {
		return 0, 0, 0, false
	}
	vals[2] = cur
	return vals[0], vals[1], vals[2], true
}
