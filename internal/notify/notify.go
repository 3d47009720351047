// Package notify defines the one-way message channel used to report workflow
// outcomes to whichever front end is attached.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTimeout is how long a notification stays visible before it dismisses itself.
const DefaultTimeout = 3 * time.Second

// Severity drives presentation only.
type Severity int

const (
	Success Severity = iota
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Notification is a single message pushed to the user.
type Notification struct {
	Message  string
	Severity Severity
}

// Notifier receives notifications. Implementations own their display timing;
// Dismiss hides the current message early.
type Notifier interface {
	Notify(n Notification)
	Dismiss()
}

// Func adapts a function to a Notifier whose Dismiss is a no-op.
type Func func(Notification)

func (f Func) Notify(n Notification) { f(n) }

func (f Func) Dismiss() {}

// Discard drops every notification.
var Discard Notifier = Func(func(Notification) {})

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#50fa7b"}).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#d32f2f", Dark: "#ff5555"}).Bold(true)
)

// Writer prints each notification as a single styled line.
// Output is line-oriented so there is nothing to dismiss.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer that prints to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Notify(n Notification) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var line string
	switch n.Severity {
	case Error:
		line = errorStyle.Render("✗ " + n.Message)
	default:
		line = successStyle.Render("✓ " + n.Message)
	}
	_, _ = fmt.Fprintln(w.out, line)
}

func (w *Writer) Dismiss() {}
