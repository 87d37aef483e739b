package term

// Backend abstracts the platform terminal: raw mode lifecycle, size,
// blocking reads and resize callbacks. The window loop runs against this
// interface so tests can drive it with a scripted backend.
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Size returns the current terminal dimensions
	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed,
	// or an error occurs. An empty slice with nil error is a poll
	// timeout; the caller uses it to expire a pending lone ESC.
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}
