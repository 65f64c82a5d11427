package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Notifier shows transient status messages. Each message is dismissed after
// the timeout; a newer message or Close cancels the pending dismissal.
type Notifier struct {
	mu        sync.Mutex
	w         io.Writer
	style     lipgloss.Style
	timeout   time.Duration
	timer     *time.Timer
	current   string
	onDismiss func(msg string)
}

// NewNotifier returns a Notifier writing to w.
func NewNotifier(w io.Writer, theme Theme, timeout time.Duration) *Notifier {
	return &Notifier{w: w, style: theme.AccentStyle(), timeout: timeout}
}

// OnDismiss registers a callback run when a message expires.
func (n *Notifier) OnDismiss(fn func(msg string)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onDismiss = fn
}

// Show writes msg and schedules its dismissal.
func (n *Notifier) Show(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = msg
	fmt.Fprintln(n.w, n.style.Render(msg))

	var timer *time.Timer
	timer = time.AfterFunc(n.timeout, func() {
		n.mu.Lock()
		if n.timer != timer {
			n.mu.Unlock()
			return
		}
		n.timer = nil
		n.current = ""
		cb := n.onDismiss
		n.mu.Unlock()
		if cb != nil {
			cb(msg)
		}
	})
	n.timer = timer
}

// Current returns the message still on display, or "".
func (n *Notifier) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close cancels any pending dismissal without running it.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = ""
}
