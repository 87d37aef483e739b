package term

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/glintui/glint/focus"
	"github.com/glintui/glint/frame"
	"github.com/glintui/glint/input"
	"github.com/glintui/glint/layout"
	"github.com/glintui/glint/node"
)

// App is the host-side application driven by a Window: it owns the focus
// state and builds a fresh node tree every frame.
type App interface {
	// Render builds this frame's tree for the given terminal size
	Render(width, height int) node.Node

	// Focus returns the app's persistent focus state
	Focus() *focus.State

	// OnInput receives events focus navigation did not consume, together
	// with the current frame's focus entries. Returning false requests
	// shutdown.
	OnInput(ev input.Event, entries []focus.Entry) bool
}

const (
	cursorBlinkInterval = 570 * time.Millisecond
	resizeDebounce      = 120 * time.Millisecond
)

// Window runs the terminal session: raw mode, alternate screen, the input
// decode loop, per-frame layout and diff output. Everything is
// single-threaded from the app's point of view; reader and resize
// goroutines only forward into the loop's channels.
type Window struct {
	backend Backend
	app     App
	logger  *log.Logger

	out     *bufio.Writer
	dec     *Decoder
	emitter styleEmitter

	width   int
	height  int
	prev    *frame.CellBuffer
	entries []focus.Entry

	termFocused  bool
	lastActivity time.Time
}

type backendWriter struct{ b Backend }

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// NewWindow creates a window over a backend. A nil logger discards.
func NewWindow(backend Backend, app App, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		backend: backend,
		app:     app,
		logger:  logger,
		out:     bufio.NewWriterSize(backendWriter{backend}, 128*1024),
		dec:     NewDecoder(),
		// Until the first focus report arrives, assume focused so the
		// cursor is not suppressed on terminals without focus events
		termFocused:  true,
		lastActivity: time.Now(),
	}
}

type readResult struct {
	data []byte
	err  error
}

// Run enters raw mode and drives the event loop until the app requests
// quit or input closes
func (w *Window) Run() error {
	if err := w.backend.Init(); err != nil {
		return err
	}
	defer w.backend.Fini()

	w.out.Write(csiAltScreenEnter)
	w.out.Write(csiAutoWrapOff)
	w.out.Write(csiMouseOn)
	w.out.Write(csiFocusOn)
	w.out.Write(csiCursorHide)
	w.out.Write(oscCursorColor)
	w.out.Write(csiCursorBlock)
	w.out.Flush()
	defer func() {
		w.out.Write(csiSGR0)
		w.out.Write(csiCursorShow)
		w.out.Write(oscCursorColorReset)
		w.out.Write(csiCursorStyleReset)
		w.out.Write(csiFocusOff)
		w.out.Write(csiMouseOff)
		w.out.Write(csiAutoWrapOn)
		w.out.Write(csiAltScreenExit)
		w.out.Flush()
	}()

	resizeCh := make(chan struct{}, 1)
	w.backend.SetResizeHandler(func(_, _ int) {
		select {
		case resizeCh <- struct{}{}:
		default:
		}
	})

	stopCh := make(chan struct{})
	defer close(stopCh)
	readCh := make(chan readResult)
	go func() {
		for {
			data, err := w.backend.Read(stopCh)
			select {
			case readCh <- readResult{data, err}:
			case <-stopCh:
				return
			}
			if err != nil || data == nil {
				return
			}
		}
	}()

	w.width, w.height = w.backend.Size()
	w.render()

	blink := time.NewTicker(cursorBlinkInterval)
	defer blink.Stop()
	resizeTimer := time.NewTimer(0)
	if !resizeTimer.Stop() {
		<-resizeTimer.C
	}

	for {
		select {
		case r := <-readCh:
			if r.err != nil {
				return r.err
			}
			if r.data == nil {
				w.logger.Debug("input closed")
				return nil
			}
			var msgs []Message
			if len(r.data) == 0 {
				msgs = w.dec.FlushTimeout()
			} else {
				msgs = w.dec.Feed(r.data)
			}
			for _, msg := range msgs {
				quit := w.handleMessage(msg)
				if quit {
					return nil
				}
			}

		case <-resizeCh:
			// Coalesce the resize storm a drag produces
			if !resizeTimer.Stop() {
				select {
				case <-resizeTimer.C:
				default:
				}
			}
			resizeTimer.Reset(resizeDebounce)

		case <-resizeTimer.C:
			w.width, w.height = w.backend.Size()
			w.logger.Debug("resize", "width", w.width, "height", w.height)
			w.render()

		case <-blink.C:
			w.updateCursor()
			w.out.Flush()
		}
	}
}

// handleMessage routes one decoded message; reports whether to quit
func (w *Window) handleMessage(msg Message) bool {
	if msg.FocusGained || msg.FocusLost {
		w.termFocused = msg.FocusGained
		w.lastActivity = time.Now()
		w.updateCursor()
		w.out.Flush()
		return false
	}
	if !msg.HasEvent {
		return false
	}

	w.lastActivity = time.Now()
	state := w.app.Focus()
	state.EnsureValid(w.entries)

	switch state.HandleNavigation(msg.Event, w.entries) {
	case focus.RequestQuit:
		return true
	case focus.Handled:
		w.render()
		return false
	}

	if !w.app.OnInput(msg.Event, w.entries) {
		return true
	}
	w.render()
	return false
}

// render builds, lays out and draws one frame. A layout failure skips the
// frame; the previous screen content stays up.
func (w *Window) render() {
	tree := w.app.Render(w.width, w.height)
	w.entries = node.CollectFocusEntries(tree)
	w.app.Focus().EnsureValid(w.entries)

	buf, err := layout.Render(tree, w.width, w.height)
	if err != nil {
		w.logger.Error("frame dropped", "err", err)
		return
	}
	w.draw(buf)
}

// draw writes the diff between the new frame and the previous one inside a
// synchronized update
func (w *Window) draw(buf *frame.CellBuffer) {
	w.out.Write(csiSyncStart)

	if w.prev == nil || w.prev.Width() != buf.Width() || w.prev.Height() != buf.Height() {
		w.out.Write(csiSGR0)
		w.out.Write(csiClear)
		w.prev = nil
	}

	for _, run := range buf.DiffRuns(w.prev) {
		writeCursorPos(w.out, run.X, run.Y)
		w.emitter.Apply(w.out, run.Style)
		w.out.WriteString(run.Text)
	}
	w.emitter.Reset(w.out)

	w.prev = buf
	w.updateCursor()

	w.out.Write(csiSyncEnd)
	w.out.Flush()
}

// updateCursor shows the terminal cursor at this frame's anchor cell while
// the session is focused and the blink phase is on
func (w *Window) updateCursor() {
	visible := false
	var x, y int
	if w.prev != nil && w.termFocused {
		if cx, cy, ok := w.prev.Cursor(); ok {
			phase := time.Since(w.lastActivity) / cursorBlinkInterval
			if phase%2 == 0 {
				visible, x, y = true, cx, cy
			}
		}
	}
	if visible {
		writeCursorPos(w.out, x, y)
		w.out.Write(csiCursorShow)
	} else {
		w.out.Write(csiCursorHide)
	}
}
