package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/dmoj-submit/dmoj-submit/internal/grading"
	"golang.org/x/term"
)

const spinnerTick = 120 * time.Millisecond

// clearLine returns the cursor to column 0 and erases the line.
const clearLine = "\r\x1b[2K"

// Progress prints the rows of a growing grading tree as they appear. Rows are
// append-only: once printed, a row is never revised, even if a later snapshot
// would render it differently.
//
// While active, a spinner is animated on the line below the last row. Printing
// a row and advancing the shown count happen under the same lock the spinner
// draws with, so rows are emitted exactly once and never torn by a repaint.
type Progress struct {
	mu       sync.Mutex
	out      io.Writer
	shown    int
	finished bool

	spinning bool
	frames   []string
	frame    int
	tick     time.Duration
	message  string
	drawn    bool
	stop     chan struct{}
	done     chan struct{}
}

type Option func(*Progress)

// WithSpinner forces the spinner on or off. By default it runs only when the
// output is a terminal.
func WithSpinner(enabled bool) Option {
	return func(p *Progress) { p.spinning = enabled }
}

func WithTick(d time.Duration) Option {
	return func(p *Progress) {
		if d > 0 {
			p.tick = d
		}
	}
}

func WithMessage(msg string) Option {
	return func(p *Progress) { p.message = msg }
}

// NewProgress starts a tracker writing to out. Finish must be called on every
// exit path to stop the spinner.
func NewProgress(out io.Writer, opts ...Option) *Progress {
	p := &Progress{
		out:      out,
		spinning: isTerminal(out),
		frames:   spinner.MiniDot.Frames,
		tick:     spinnerTick,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.spinning {
		p.stop = make(chan struct{})
		p.done = make(chan struct{})
		go p.spin()
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Extend prints the rows of tree that have not been printed yet. Snapshots
// that do not grow the flattened tree print nothing.
func (p *Progress) Extend(tree grading.Tree) {
	units := grading.Flatten(tree)

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.finished || len(units) <= p.shown {
		return
	}
	for _, u := range units[p.shown:] {
		p.println(RenderUnit(u))
	}
	p.shown = len(units)
}

// SetMessage changes the text shown next to the spinner.
func (p *Progress) SetMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.message = msg
	if p.spinning && !p.finished {
		p.draw()
	}
}

// Shown returns how many rows have been printed.
func (p *Progress) Shown() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shown
}

// Finish stops and clears the spinner. No output is written after it returns.
// Calling it more than once is harmless.
func (p *Progress) Finish() {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return
	}
	p.finished = true
	p.mu.Unlock()

	if p.spinning {
		close(p.stop)
		<-p.done
	}

	p.mu.Lock()
	p.clear()
	p.mu.Unlock()
}

func (p *Progress) spin() {
	defer close(p.done)

	ticker := time.NewTicker(p.tick)
	defer ticker.Stop()

	p.mu.Lock()
	p.draw()
	p.mu.Unlock()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if !p.finished {
				p.frame = (p.frame + 1) % len(p.frames)
				p.draw()
			}
			p.mu.Unlock()
		}
	}
}

// println, draw and clear expect p.mu to be held.

func (p *Progress) println(line string) {
	p.clear()
	fmt.Fprintln(p.out, line)
	if p.spinning && !p.finished {
		p.draw()
	}
}

func (p *Progress) draw() {
	frame := p.frames[p.frame]
	if p.message != "" {
		frame += " " + p.message
	}
	fmt.Fprint(p.out, clearLine+gray.Render(frame))
	p.drawn = true
}

func (p *Progress) clear() {
	if !p.drawn {
		return
	}
	fmt.Fprint(p.out, clearLine)
	p.drawn = false
}
