// Package input defines the abstract key and pointer vocabulary consumed by
// focus navigation and widgets. Decoding a platform's raw byte stream into
// these events is the host's responsibility.
package input

// Key identifies an abstract key press
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // printable character, see Event.Rune

	KeyTab
	KeyShiftTab
	KeyLeft
	KeyRight
	KeyWordLeft
	KeyWordRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyBackspaceWord
	KeyDelete
	KeyEnter
	KeySubmit // alt+enter / ctrl+j
	KeyEsc
	KeyInterrupt // ctrl+c
)

// EventKind distinguishes input event categories
type EventKind uint8

const (
	EventKey EventKind = iota
	EventScroll
	EventMouseDown
)

// Event is one abstract input event
type Event struct {
	Kind EventKind

	Key  Key
	Rune rune // valid when Key == KeyRune

	Lines int // EventScroll: positive scrolls down

	X, Y int // EventMouseDown
}

// KeyEvent builds a key event
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// RuneEvent builds a printable-character event
func RuneEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// ScrollEvent builds a wheel scroll event
func ScrollEvent(lines int) Event {
	return Event{Kind: EventScroll, Lines: lines}
}

// MouseDownEvent builds a left-click event
func MouseDownEvent(x, y int) Event {
	return Event{Kind: EventMouseDown, X: x, Y: y}
}
