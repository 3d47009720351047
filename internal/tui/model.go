package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeflip/treeflip/internal/notify"
	"github.com/treeflip/treeflip/internal/tui/components"
	"github.com/treeflip/treeflip/internal/workflow"
)

const (
	InputWidth   = 72
	MaxPaneWidth = 100
)

type focusArea int

const (
	focusInput focusArea = iota
	focusHistory
)

// workflowDoneMsg is sent when a controller operation started from the UI returns.
type workflowDoneMsg struct{}

type RootModel struct {
	ctrl     *workflow.Controller
	notifier *Notifier
	version  string

	input textinput.Model
	toast components.Toast
	help  help.Model

	focus  focusArea
	cursor int
	busy   bool

	width  int
	height int
}

// InitialRootModel builds the UI around a controller whose notifications are
// delivered through notifier.
func InitialRootModel(version string, ctrl *workflow.Controller, notifier *Notifier) RootModel {
	urlInput := textinput.New()
	urlInput.Placeholder = "Enter or paste archive URL (e.g. https://.../archive/.../file.tar.gz)"
	urlInput.Focus()
	urlInput.Width = InputWidth
	urlInput.Prompt = "> "
	urlInput.SetValue(ctrl.Input())

	return RootModel{
		ctrl:     ctrl,
		notifier: notifier,
		version:  version,
		input:    urlInput,
		toast:    components.NewToast(notify.DefaultTimeout),
		help:     help.New(),
		focus:    focusInput,
	}
}

func (m RootModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenForActivity(m.notifier.ch))
}

// run executes a controller operation off the event loop.
func (m RootModel) run(op func(ctx context.Context)) tea.Cmd {
	return func() tea.Msg {
		op(context.Background())
		return workflowDoneMsg{}
	}
}
