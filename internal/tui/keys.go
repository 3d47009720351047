package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the entire application
type KeyMap struct {
	Input   InputKeyMap
	History HistoryKeyMap
}

// InputKeyMap defines keybindings while the URL field has focus
type InputKeyMap struct {
	Process key.Binding
	Paste   key.Binding
	Clear   key.Binding
	Recopy  key.Binding
	Focus   key.Binding
	Quit    key.Binding
}

// HistoryKeyMap defines keybindings for the history list
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Copy  key.Binding
	Focus key.Binding
	Quit  key.Binding
}

// Keys contains all the keybindings for the application
var Keys = KeyMap{
	Input: InputKeyMap{
		Process: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "process"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste & process"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Recopy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy again"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	},
	History: HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("enter/y", "copy result"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "esc"),
			key.WithHelp("tab", "input"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q", "q"),
			key.WithHelp("q", "quit"),
		),
	},
}

// ShortHelp returns keybindings to show
func (k InputKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Process, k.Paste, k.Recopy, k.Clear, k.Focus, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k InputKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Focus, k.Quit}
}

func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
