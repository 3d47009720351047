package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeflip/treeflip/internal/tui/components"
)

// Update handles messages and updates the model
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case NotificationMsg:
		var cmd tea.Cmd
		m.toast, cmd = m.toast.Show(msg.Notification)
		return m, tea.Batch(cmd, listenForActivity(m.notifier.ch))

	case DismissMsg:
		m.toast = m.toast.Dismiss()
		return m, listenForActivity(m.notifier.ch)

	case components.ToastExpiredMsg:
		m.toast = m.toast.Update(msg)
		return m, nil

	case workflowDoneMsg:
		m.busy = false
		m.input.SetValue(m.ctrl.Input())
		m.input.CursorEnd()
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.focus == focusHistory {
			return m.updateHistory(msg)
		}
		return m.updateInput(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m RootModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := Keys.Input

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Process):
		text := m.input.Value()
		if text == "" {
			return m, nil
		}
		m.ctrl.SetInput(text)
		m.busy = true
		return m, m.run(func(ctx context.Context) {
			m.ctrl.ProcessText(ctx, text)
		})

	case key.Matches(msg, keys.Paste):
		m.busy = true
		return m, m.run(m.ctrl.PasteAndProcess)

	case key.Matches(msg, keys.Clear):
		if m.toast.Visible() {
			m.toast = m.toast.Dismiss()
		}
		m.busy = true
		return m, m.run(func(context.Context) {
			m.ctrl.Clear()
		})

	case key.Matches(msg, keys.Recopy):
		result := m.ctrl.Result()
		if result == "" {
			return m, nil
		}
		return m, m.run(func(ctx context.Context) {
			m.ctrl.Recopy(ctx, result)
		})

	case key.Matches(msg, keys.Focus):
		if len(m.ctrl.History()) == 0 {
			return m, nil
		}
		m.focus = focusHistory
		m.input.Blur()
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

func (m RootModel) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := Keys.History
	records := m.ctrl.History()

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(records)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Copy):
		if m.cursor < 0 || m.cursor >= len(records) {
			return m, nil
		}
		id := records[m.cursor].ID
		return m, m.run(func(ctx context.Context) {
			m.ctrl.RecopyRecord(ctx, id)
		})

	case key.Matches(msg, keys.Focus):
		m.focus = focusInput
		return m, m.input.Focus()
	}

	return m, nil
}

func (m *RootModel) clampCursor() {
	n := len(m.ctrl.History())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
