// Package preview draws an in-place row of running counts on a terminal
// while a file is being read.
package preview

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// DefaultInterval is the minimum time between two frames.
const DefaultInterval = 200 * time.Millisecond

// clearLine returns the cursor to column 0 and erases to end of line.
const clearLine = "\r\033[K"

// Preview writes throttled frames to an error stream. It is driven by the
// caller between reads; there is no background goroutine.
type Preview struct {
	writer   io.Writer
	interval time.Duration
	now      func() time.Time
	columns  int // terminal width, 0 when unknown

	active bool
	shown  bool // a frame is on screen
	last   time.Time
}

// Option configures a Preview.
type Option func(*Preview)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Preview) { p.now = now }
}

// WithColumns sets the terminal width frames are truncated to.
func WithColumns(n int) Option {
	return func(p *Preview) { p.columns = n }
}

// New creates a preview writing to writer. An inactive preview never
// writes anything. A non-positive interval selects DefaultInterval.
func New(writer io.Writer, active bool, interval time.Duration, opts ...Option) *Preview {
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Preview{
		writer:   writer,
		interval: interval,
		now:      time.Now,
		active:   active && writer != nil,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.last = p.now()
	return p
}

// Active reports whether frames will be drawn.
func (p *Preview) Active() bool {
	return p.active
}

// Start restarts the throttle; call it when a new file is opened.
func (p *Preview) Start() {
	p.last = p.now()
}

// Tick draws a frame if the interval has elapsed since the last one.
// render is only called when a frame is due.
func (p *Preview) Tick(render func() string) {
	if !p.active {
		return
	}

	now := p.now()
	if now.Sub(p.last) < p.interval {
		return
	}

	row := render()
	// a wrapped frame could not be erased with a carriage return
	if p.columns > 1 {
		row = runewidth.Truncate(row, p.columns-1, "")
	}
	fmt.Fprint(p.writer, "\r"+row)
	p.last = now
	p.shown = true
}

// Clear erases the frame on screen, if any.
func (p *Preview) Clear() {
	if !p.shown {
		return
	}
	fmt.Fprint(p.writer, clearLine)
	p.shown = false
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Columns returns the width of the terminal behind w, or 0.
func Columns(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}
