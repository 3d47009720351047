package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeflip/treeflip/internal/notify"
	"github.com/treeflip/treeflip/internal/utils"
)

// NotifierBuffer is how many undelivered notifications are kept before new ones are dropped.
const NotifierBuffer = 16

// NotificationMsg carries a workflow notification into the program.
type NotificationMsg struct {
	notify.Notification
}

// DismissMsg hides the visible notification early.
type DismissMsg struct{}

// Notifier forwards workflow notifications to the TUI event loop.
type Notifier struct {
	ch chan tea.Msg
}

// NewNotifier creates a notifier with a buffered delivery channel.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan tea.Msg, NotifierBuffer)}
}

func (n *Notifier) Notify(msg notify.Notification) {
	n.send(NotificationMsg{msg})
}

func (n *Notifier) Dismiss() {
	n.send(DismissMsg{})
}

func (n *Notifier) send(msg tea.Msg) {
	// Non-blocking send so a stalled UI never holds up the workflow
	select {
	case n.ch <- msg:
	default:
		utils.Debug("Dropped notification %+v", msg)
	}
}

func listenForActivity(sub chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-sub
	}
}
