package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/treeflip/treeflip/internal/notify"
	"github.com/treeflip/treeflip/internal/tui/colors"
)

// ToastExpiredMsg is delivered when a toast's display time runs out.
type ToastExpiredMsg struct {
	ID int
}

// Toast shows one notification at a time and hides itself after Timeout.
// A newer notification replaces the current one and restarts the timer.
type Toast struct {
	Timeout time.Duration

	current notify.Notification
	id      int
	visible bool
}

// NewToast creates a hidden toast with the given display time.
func NewToast(timeout time.Duration) Toast {
	if timeout <= 0 {
		timeout = notify.DefaultTimeout
	}
	return Toast{Timeout: timeout}
}

// Show displays n and returns the command that expires it.
func (t Toast) Show(n notify.Notification) (Toast, tea.Cmd) {
	t.id++
	t.current = n
	t.visible = true

	id := t.id
	return t, tea.Tick(t.Timeout, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Update hides the toast when its own expiry arrives. Expiries of replaced
// toasts are ignored.
func (t Toast) Update(msg tea.Msg) Toast {
	if m, ok := msg.(ToastExpiredMsg); ok && m.ID == t.id {
		t.visible = false
	}
	return t
}

// Dismiss hides the toast immediately.
func (t Toast) Dismiss() Toast {
	t.visible = false
	return t
}

func (t Toast) Visible() bool {
	return t.visible
}

func (t Toast) Current() notify.Notification {
	return t.current
}

// View renders the toast, or an empty string when hidden.
func (t Toast) View() string {
	if !t.visible {
		return ""
	}

	bg := colors.StateSuccess
	if t.current.Severity == notify.Error {
		bg = colors.StateError
	}

	return lipgloss.NewStyle().
		Foreground(colors.DarkGray).
		Background(bg).
		Bold(true).
		Padding(0, 2).
		Render(t.current.Message)
}
