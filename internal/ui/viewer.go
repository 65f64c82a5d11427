package ui

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoViewer is returned by Wait when no viewer has been opened.
var ErrNoViewer = errors.New("no viewer is open")

// Viewer owns at most one running pager. Showing content while a pager is
// open updates that pager instead of opening a second one.
type Viewer struct {
	mu       sync.Mutex
	program  *tea.Program
	done     chan struct{}
	err      error
	theme    Theme
	maxWidth int
	opts     []tea.ProgramOption
}

// NewViewer returns a Viewer. opts are passed to every tea.Program it starts;
// with none the pager takes over the terminal's alternate screen.
func NewViewer(theme Theme, maxWidth int, opts ...tea.ProgramOption) *Viewer {
	if len(opts) == 0 {
		opts = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Viewer{theme: theme, maxWidth: maxWidth, opts: opts}
}

// ShowOrUpdate opens the pager with title and content, or, when one is
// already open, replaces what it shows. It reports whether a new pager was
// started.
func (v *Viewer) ShowOrUpdate(title, content string) bool {
	v.mu.Lock()
	if p := v.program; p != nil {
		v.mu.Unlock()
		p.Send(contentMsg{title: title, content: content})
		return false
	}

	p := tea.NewProgram(newPagerModel(title, content, v.maxWidth, v.theme), v.opts...)
	done := make(chan struct{})
	v.program = p
	v.done = done
	v.err = nil
	v.mu.Unlock()

	go func() {
		_, err := p.Run()
		v.mu.Lock()
		v.err = err
		if v.program == p {
			v.program = nil
		}
		v.mu.Unlock()
		close(done)
	}()
	return true
}

// Update replaces what the running pager shows. It never opens a pager and
// reports whether one was running.
func (v *Viewer) Update(title, content string) bool {
	v.mu.Lock()
	p := v.program
	v.mu.Unlock()
	if p == nil {
		return false
	}
	p.Send(contentMsg{title: title, content: content})
	return true
}

// Active reports whether a pager is running.
func (v *Viewer) Active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.program != nil
}

// Done returns a channel closed when the current pager exits, or nil when
// none was ever opened.
func (v *Viewer) Done() <-chan struct{} {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}

// Wait blocks until the current pager exits and returns its error.
func (v *Viewer) Wait() error {
	done := v.Done()
	if done == nil {
		return ErrNoViewer
	}
	<-done
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Close asks the running pager to quit and releases ownership.
func (v *Viewer) Close() {
	v.mu.Lock()
	p := v.program
	v.program = nil
	v.mu.Unlock()
	if p != nil {
		p.Quit()
	}
}
