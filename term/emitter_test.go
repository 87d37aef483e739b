package term

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/glintui/glint/frame"
	"github.com/glintui/glint/style"
)

func emitterOutput(t *testing.T, apply func(e *styleEmitter, w *bufio.Writer)) string {
	t.Helper()
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	var e styleEmitter
	apply(&e, w)
	w.Flush()
	return buf.String()
}

// TestEmitterCoalescesRepeatedStyle verifies an unchanged style emits
// nothing after the first application
func TestEmitterCoalescesRepeatedStyle(t *testing.T) {
	red := frame.CellStyle{Fg: style.Hex(0xff0000), FgSet: true}

	out := emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Apply(w, red)
		e.Apply(w, red)
		e.Apply(w, red)
	})

	if out != "\x1b[0;38;2;255;0;0m" {
		t.Errorf("Expected single color sequence, got %q", out)
	}
}

// TestEmitterAdditiveAttribute verifies adding an attribute does not
// re-emit unchanged colors
func TestEmitterAdditiveAttribute(t *testing.T) {
	red := frame.CellStyle{Fg: style.Hex(0xff0000), FgSet: true}
	boldRed := red
	boldRed.Attrs = style.AttrBold

	out := emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Apply(w, red)
		e.Apply(w, boldRed)
	})

	if out != "\x1b[0;38;2;255;0;0m\x1b[1m" {
		t.Errorf("Expected color then bare bold, got %q", out)
	}
}

// TestEmitterDroppedAttributeResets verifies removing an attribute resets
// and replays the surviving colors in one sequence
func TestEmitterDroppedAttributeResets(t *testing.T) {
	boldRed := frame.CellStyle{Attrs: style.AttrBold, Fg: style.Hex(0xff0000), FgSet: true}
	red := frame.CellStyle{Fg: style.Hex(0xff0000), FgSet: true}

	out := emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Apply(w, boldRed)
		e.Apply(w, red)
	})

	if out != "\x1b[0;1;38;2;255;0;0m\x1b[0;38;2;255;0;0m" {
		t.Errorf("Expected reset with replayed color, got %q", out)
	}
}

// TestEmitterResetOnlyWhenDirty verifies the final reset is emitted once
// and only after a non-default style was active
func TestEmitterResetOnlyWhenDirty(t *testing.T) {
	out := emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Reset(w)
	})
	if out != "" {
		t.Errorf("Expected no reset for clean emitter, got %q", out)
	}

	out = emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Apply(w, frame.CellStyle{Attrs: style.AttrItalic})
		e.Reset(w)
	})
	if out != "\x1b[0;3m\x1b[0m" {
		t.Errorf("Expected italic then reset, got %q", out)
	}
}

// TestEmitterStrikethrough verifies the strikethrough SGR parameter
func TestEmitterStrikethrough(t *testing.T) {
	out := emitterOutput(t, func(e *styleEmitter, w *bufio.Writer) {
		e.Apply(w, frame.CellStyle{Attrs: style.AttrStrikethrough})
	})
	if out != "\x1b[0;9m" {
		t.Errorf("Expected strikethrough sequence, got %q", out)
	}
}
