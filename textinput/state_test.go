package textinput

import (
	"testing"

	"github.com/glintui/glint/input"
)

func TestInsertAndDelete(t *testing.T) {
	s := New("")
	s.HandleInput(input.RuneEvent('h'))
	s.HandleInput(input.RuneEvent('i'))
	if s.Value() != "hi" || s.Cursor() != 2 {
		t.Errorf("Expected value 'hi' cursor 2, got %q cursor %d", s.Value(), s.Cursor())
	}

	if !s.HandleInput(input.KeyEvent(input.KeyBackspace)) {
		t.Fatal("Expected backspace to be handled")
	}
	if s.Value() != "h" || s.Cursor() != 1 {
		t.Errorf("Expected value 'h' cursor 1, got %q cursor %d", s.Value(), s.Cursor())
	}

	// Delete at end of value has nothing to remove
	if s.HandleInput(input.KeyEvent(input.KeyDelete)) {
		t.Error("Expected delete at end to be ignored")
	}
	s.SetCursor(0)
	if !s.HandleInput(input.KeyEvent(input.KeyDelete)) {
		t.Fatal("Expected delete to be handled")
	}
	if s.Value() != "" || s.Cursor() != 0 {
		t.Errorf("Expected empty value, got %q cursor %d", s.Value(), s.Cursor())
	}
}

func TestBackspaceAtStartIgnored(t *testing.T) {
	s := New("x")
	s.SetCursor(0)
	if s.HandleInput(input.KeyEvent(input.KeyBackspace)) {
		t.Error("Expected backspace at start to be ignored")
	}
	if s.Value() != "x" {
		t.Errorf("Expected value unchanged, got %q", s.Value())
	}
}

func TestEnterInsertsNewline(t *testing.T) {
	s := New("ab")
	s.SetCursor(1)
	s.HandleInput(input.KeyEvent(input.KeyEnter))
	if s.Value() != "a\nb" || s.Cursor() != 2 {
		t.Errorf("Expected 'a\\nb' cursor 2, got %q cursor %d", s.Value(), s.Cursor())
	}
}

func TestWordMotion(t *testing.T) {
	s := New("hello world foo")

	s.HandleInput(input.KeyEvent(input.KeyWordLeft))
	if s.Cursor() != 12 {
		t.Errorf("Expected cursor at start of 'foo', got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyWordLeft))
	if s.Cursor() != 6 {
		t.Errorf("Expected cursor at start of 'world', got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyWordLeft))
	if s.Cursor() != 0 {
		t.Errorf("Expected cursor at start of value, got %d", s.Cursor())
	}

	s.HandleInput(input.KeyEvent(input.KeyWordRight))
	if s.Cursor() != 5 {
		t.Errorf("Expected cursor at end of 'hello', got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyWordRight))
	if s.Cursor() != 11 {
		t.Errorf("Expected cursor at end of 'world', got %d", s.Cursor())
	}
}

func TestBackspaceWordDeletesToBoundary(t *testing.T) {
	s := New("hello world")
	s.HandleInput(input.KeyEvent(input.KeyBackspaceWord))
	if s.Value() != "hello " || s.Cursor() != 6 {
		t.Errorf("Expected 'hello ' cursor 6, got %q cursor %d", s.Value(), s.Cursor())
	}
}

func TestHomeEnd(t *testing.T) {
	s := New("abc")
	s.HandleInput(input.KeyEvent(input.KeyHome))
	if s.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyEnd))
	if s.Cursor() != 3 {
		t.Errorf("Expected cursor 3, got %d", s.Cursor())
	}
}

// TestVerticalMovePreferredColumn verifies the target column survives a pass
// through a shorter line
func TestVerticalMovePreferredColumn(t *testing.T) {
	s := New("abcdef\nxy\nlonger")
	s.SetCursor(4) // line 0, col 4

	s.HandleInput(input.KeyEvent(input.KeyDown))
	if s.Cursor() != 9 {
		t.Errorf("Expected cursor clamped to end of 'xy' (9), got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyDown))
	if s.Cursor() != 14 {
		t.Errorf("Expected cursor back at col 4 on 'longer' (14), got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyUp))
	if s.Cursor() != 9 {
		t.Errorf("Expected cursor 9 after moving back up, got %d", s.Cursor())
	}
}

func TestVerticalMoveSnapsAtEnds(t *testing.T) {
	s := New("ab\ncd")
	s.SetCursor(1)
	s.HandleInput(input.KeyEvent(input.KeyUp))
	if s.Cursor() != 0 {
		t.Errorf("Expected Up on first line to snap to start, got %d", s.Cursor())
	}
	s.SetCursor(4)
	s.HandleInput(input.KeyEvent(input.KeyDown))
	if s.Cursor() != 5 {
		t.Errorf("Expected Down on last line to snap to end, got %d", s.Cursor())
	}
}

// TestVerticalMoveSoftWrap verifies vertical movement follows wrapped visual
// rows when a soft wrap width is set
func TestVerticalMoveSoftWrap(t *testing.T) {
	s := New("abcdefgh")
	s.SetSoftWrapWidth(3)
	s.SetCursor(1) // visual row 0, col 1

	s.HandleInput(input.KeyEvent(input.KeyDown))
	if s.Cursor() != 4 {
		t.Errorf("Expected cursor 4 on second wrapped row, got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyDown))
	if s.Cursor() != 7 {
		t.Errorf("Expected cursor 7 on third wrapped row, got %d", s.Cursor())
	}
	s.HandleInput(input.KeyEvent(input.KeyUp))
	if s.Cursor() != 4 {
		t.Errorf("Expected cursor 4 after moving back up, got %d", s.Cursor())
	}
}

func TestSetValueClampsCursor(t *testing.T) {
	s := New("abcdef")
	s.SetValue("ab")
	if s.Cursor() != 2 {
		t.Errorf("Expected cursor clamped to 2, got %d", s.Cursor())
	}
}

func TestNonEditingEventsPassThrough(t *testing.T) {
	s := New("abc")
	if s.HandleInput(input.ScrollEvent(1)) {
		t.Error("Expected scroll event to pass through")
	}
	if s.HandleInput(input.KeyEvent(input.KeyTab)) {
		t.Error("Expected tab to pass through")
	}
}
