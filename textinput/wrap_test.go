package textinput

import (
	"testing"
)

func TestVisualRowsCharWrap(t *testing.T) {
	cases := []struct {
		value string
		width int
		rows  int
	}{
		{"", 3, 1},
		{"abc", 3, 1},
		{"abcd", 3, 2},
		{"hello", 2, 3},
		{"ab\ncd", 10, 2},
		{"a\n\nb", 10, 3},
		{"世界世", 4, 2}, // double-width glyphs, two per row
	}
	for _, c := range cases {
		if rows := VisualRows(c.value, c.width); rows != c.rows {
			t.Errorf("Expected %d rows for %q at width %d, got %d", c.rows, c.value, c.width, rows)
		}
	}
}

// TestVisualRowColWrapBoundary verifies a cursor at a wrap point lands on the
// start of the next visual row
func TestVisualRowColWrapBoundary(t *testing.T) {
	row, col, total := VisualRowCol("abcdef", 3, 3)
	if row != 1 || col != 0 || total != 2 {
		t.Errorf("Expected (1, 0, 2), got (%d, %d, %d)", row, col, total)
	}

	// Cursor past the value sits after the last glyph
	row, col, total = VisualRowCol("abcd", 4, 3)
	if row != 1 || col != 1 || total != 2 {
		t.Errorf("Expected (1, 1, 2), got (%d, %d, %d)", row, col, total)
	}
}

func TestCursorForVisualRowColOvershoot(t *testing.T) {
	// Target column beyond the row resolves to the row's end
	if c := CursorForVisualRowCol("ab\ncd", 10, 0, 9); c != 2 {
		t.Errorf("Expected cursor 2 at end of first line, got %d", c)
	}
	// Target row beyond the content resolves to the last position
	if c := CursorForVisualRowCol("ab", 10, 5, 0); c != 2 {
		t.Errorf("Expected cursor 2 at end of value, got %d", c)
	}
}

func TestWrapLinesGutterNumbering(t *testing.T) {
	lines := WrapLines("abcd\nef", 2)
	expected := []WrappedLine{
		{Text: "ab", LogicalStart: true, LogicalLine: 1},
		{Text: "cd"},
		{Text: "ef", LogicalStart: true, LogicalLine: 2},
	}
	if len(lines) != len(expected) {
		t.Fatalf("Expected %d wrapped lines, got %d", len(expected), len(lines))
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("Expected line %d %+v, got %+v", i, want, lines[i])
		}
	}
}

func TestWrapLinesEmptyValue(t *testing.T) {
	lines := WrapLines("", 4)
	if len(lines) != 1 || !lines[0].LogicalStart || lines[0].Text != "" {
		t.Errorf("Expected one empty logical line, got %+v", lines)
	}
}
