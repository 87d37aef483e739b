package focus

import (
	"time"

	"github.com/glintui/glint/input"
)

// Outcome reports how a navigation call consumed an event
type Outcome uint8

const (
	// Ignored means the event was not consumed; the caller should forward
	// it to the focused widget or elsewhere.
	Ignored Outcome = iota
	// Handled means the event moved focus or armed quit; re-render.
	Handled
	// RequestQuit propagates shutdown to the host.
	RequestQuit
)

// quitConfirmWindow is how long a first interrupt stays armed. A second
// interrupt inside the window quits; anything else, or expiry, disarms.
const quitConfirmWindow = 2 * time.Second

// HandleNavigation is the per-event focus state machine. EnsureValid must
// have run against the same entry list this frame. Navigation never errors:
// stale or unmatched positions yield Ignored.
func (s *State) HandleNavigation(ev input.Event, entries []Entry) Outcome {
	if ev.Kind != input.EventKey {
		s.quitArmed = false
		return Ignored
	}

	var focusedKind Kind
	hasKind := false
	if e, ok := s.FocusedEntry(entries); ok {
		focusedKind = e.Kind
		hasKind = true
	}
	inTextInput := hasKind && focusedKind == KindTextInput

	out := Ignored
	switch ev.Key {
	case input.KeyEsc:
		if s.FocusParent(entries) {
			out = Handled
		}

	case input.KeyInterrupt:
		now := s.now()
		if s.quitArmed && now.Sub(s.quitArmedAt) <= quitConfirmWindow {
			s.quitArmed = false
			return RequestQuit
		}
		s.quitArmed = true
		s.quitArmedAt = now
		return Handled

	case input.KeyTab:
		s.FocusNext(entries)
		out = Handled

	case input.KeyShiftTab:
		s.FocusPrev(entries)
		out = Handled

	case input.KeyEnter:
		if !inTextInput && s.FocusFirstChild(entries) {
			out = Handled
		}

	case input.KeyLeft, input.KeyUp:
		if !inTextInput && (s.FocusPrevSibling(entries) || s.FocusPrevPeerBranch(entries)) {
			out = Handled
		}

	case input.KeyRight, input.KeyDown:
		if !inTextInput && (s.FocusNextSibling(entries) || s.FocusNextPeerBranch(entries)) {
			out = Handled
		}
	}

	// Any navigation key other than another interrupt disarms quit
	s.quitArmed = false
	return out
}
