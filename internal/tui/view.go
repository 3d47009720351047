package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m RootModel) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	paneWidth := min(width-2, MaxPaneWidth)
	inner := paneWidth - 4 // border + padding

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		LogoStyle.Render("TREEFLIP"),
		" ",
		VersionStyle.Render(m.version),
	)
	subtitle := VersionStyle.Render("/archive/ → /tree/, .tar.gz stripped, result copied to clipboard")

	sections := []string{header, subtitle, "", m.renderInputPane(paneWidth)}

	if result := m.ctrl.Result(); result != "" || m.busy {
		sections = append(sections, m.renderResultPane(paneWidth, inner))
	}
	if len(m.ctrl.History()) > 0 {
		sections = append(sections, m.renderHistoryPane(paneWidth, inner))
	}

	if toast := m.toast.View(); toast != "" {
		sections = append(sections, toast)
	}

	var helpView string
	if m.focus == focusHistory {
		helpView = m.help.View(Keys.History)
	} else {
		inputKeys := Keys.Input
		// clear and recopy only show up when there is something to act on
		inputKeys.Clear.SetEnabled(m.input.Value() != "")
		inputKeys.Recopy.SetEnabled(m.ctrl.Result() != "")
		helpView = m.help.View(inputKeys)
	}
	sections = append(sections, HelpStyle.Render(helpView))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m RootModel) renderInputPane(width int) string {
	style := PaneStyle
	if m.focus == focusInput {
		style = ActivePaneStyle
	}
	title := PaneTitleStyle.Render("URL")
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, m.input.View()))
}

func (m RootModel) renderResultPane(width, inner int) string {
	state := m.ctrl.State().String()
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		PaneTitleStyle.Render("Processed & Copied"),
		" ",
		stateStyle(state).Render("["+state+"]"),
	)

	body := ResultStyle.Render(truncate(m.ctrl.Result(), inner))
	if m.busy {
		body = PlaceholderStyle.Render("working...")
	}
	return PaneStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m RootModel) renderHistoryPane(width, inner int) string {
	style := PaneStyle
	if m.focus == focusHistory {
		style = ActivePaneStyle
	}

	records := m.ctrl.History()
	lines := []string{PaneTitleStyle.Render(fmt.Sprintf("Recent Transformations (%d)", len(records)))}

	for i, r := range records {
		marker := "  "
		processed := ProcessedStyle.Render(truncate(r.Processed, inner-2))
		if m.focus == focusHistory && i == m.cursor {
			marker = SelectedRowStyle.Render("▸ ")
			processed = SelectedRowStyle.Render(truncate(r.Processed, inner-2))
		}
		lines = append(lines,
			marker+TimestampStyle.Render(r.Timestamp.Local().Format("15:04:05")),
			"  "+OriginalStyle.Render(truncate(r.Original, inner-2)),
			marker+processed,
		)
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
