package term

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/input"
	"github.com/glintui/glint/node"
)

// scriptStep is one backend read: optional delays, an optional resize
// callback, then the bytes to deliver (nil bytes end the session)
type scriptStep struct {
	preDelay   time.Duration
	fireResize bool
	resizeTo   [2]int
	postDelay  time.Duration
	data       []byte
}

// scriptedBackend drives the window loop from a canned read script while
// capturing everything written to the terminal
type scriptedBackend struct {
	mu     sync.Mutex
	out    bytes.Buffer
	script []scriptStep
	step   int
	sizes  [][2]int
	resize func(width, height int)
}

func (b *scriptedBackend) Init() error { return nil }
func (b *scriptedBackend) Fini()       {}

func (b *scriptedBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.sizes[0]
	if len(b.sizes) > 1 {
		b.sizes = b.sizes[1:]
	}
	return s[0], s[1]
}

func (b *scriptedBackend) Write(p []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.out.Write(p)
	return nil
}

func (b *scriptedBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	b.mu.Lock()
	if b.step >= len(b.script) {
		b.mu.Unlock()
		return nil, nil
	}
	st := b.script[b.step]
	b.step++
	handler := b.resize
	b.mu.Unlock()

	if st.preDelay > 0 {
		time.Sleep(st.preDelay)
	}
	if st.fireResize && handler != nil {
		handler(st.resizeTo[0], st.resizeTo[1])
	}
	if st.postDelay > 0 {
		time.Sleep(st.postDelay)
	}
	return st.data, nil
}

func (b *scriptedBackend) SetResizeHandler(handler func(width, height int)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resize = handler
}

func (b *scriptedBackend) output() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out.String()
}

type scriptApp struct {
	state  *focus.State
	tree   func(width, height int) node.Node
	events []input.Event
}

func (a *scriptApp) Render(width, height int) node.Node { return a.tree(width, height) }
func (a *scriptApp) Focus() *focus.State                { return a.state }

func (a *scriptApp) OnInput(ev input.Event, _ []focus.Entry) bool {
	a.events = append(a.events, ev)
	return true
}

// TestWindowLoopLifecycleAndFrame runs a session delivering one key then
// EOF and checks the terminal transcript end to end: entry sequences before
// the frame, frame text inside a synchronized update, cursor shown at the
// anchor, full restore on exit
func TestWindowLoopLifecycleAndFrame(t *testing.T) {
	backend := &scriptedBackend{
		sizes: [][2]int{{10, 3}},
		script: []scriptStep{
			{data: []byte("x")},
			{data: nil},
		},
	}
	app := &scriptApp{
		state: focus.NewState(),
		tree: func(width, height int) node.Node {
			return node.Stack{
				Axis: node.Column,
				Children: []node.Node{
					node.Plain("hello"),
					node.TextInput{Focused: true, FocusID: 1, HasFocus: true},
				},
			}
		},
	}

	if err := NewWindow(backend, app, nil).Run(); err != nil {
		t.Fatalf("Expected clean shutdown, got %v", err)
	}
	out := backend.output()

	for _, seq := range []string{
		"\x1b[?1049h",        // alternate screen
		"\x1b]12;#a277ff\x07", // cursor color
		"\x1b[2 q",           // block cursor
		"\x1b[?2026h",        // sync update open
		"\x1b[?2026l",        // sync update close
		"hello",
		"\x1b]112\x07", // cursor color reset
		"\x1b[0 q",     // cursor style reset
		"\x1b[?1049l",  // alternate screen off
	} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected transcript to contain %q", seq)
		}
	}

	if strings.Index(out, "\x1b[?1049h") > strings.Index(out, "hello") {
		t.Error("Expected alternate screen before the first frame")
	}
	if strings.LastIndex(out, "\x1b[?1049l") < strings.LastIndex(out, "hello") {
		t.Error("Expected alternate screen exit after the last frame")
	}

	// Empty focused input anchors the cursor on row 1; the blink phase is
	// fresh so the cursor is shown there
	if !strings.Contains(out, "\x1b[2;1H\x1b[?25h") {
		t.Error("Expected cursor shown at the anchor cell")
	}

	if len(app.events) != 1 {
		t.Fatalf("Expected 1 forwarded event, got %d", len(app.events))
	}
	if ev := app.events[0]; ev.Key != input.KeyRune || ev.Rune != 'x' {
		t.Errorf("Expected rune 'x' forwarded, got %+v", ev)
	}
}

// TestWindowResizeClearsAndRedraws verifies a debounced resize re-queries
// the size, clears the screen and redraws the frame in full
func TestWindowResizeClearsAndRedraws(t *testing.T) {
	backend := &scriptedBackend{
		sizes: [][2]int{{10, 3}, {8, 2}},
		script: []scriptStep{
			{
				preDelay:   50 * time.Millisecond,
				fireResize: true,
				resizeTo:   [2]int{8, 2},
				postDelay:  350 * time.Millisecond,
				data:       nil,
			},
		},
	}
	app := &scriptApp{
		state: focus.NewState(),
		tree: func(width, height int) node.Node {
			return node.Plain("hi")
		},
	}

	if err := NewWindow(backend, app, nil).Run(); err != nil {
		t.Fatalf("Expected clean shutdown, got %v", err)
	}
	out := backend.output()

	// One clear for the first frame, one for the dimension change
	if got := strings.Count(out, "\x1b[2J\x1b[H"); got != 2 {
		t.Errorf("Expected 2 clear sequences, got %d", got)
	}
	if got := strings.Count(out, "hi"); got < 2 {
		t.Errorf("Expected a full redraw after resize, got %d frames", got)
	}
}
