package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the preview.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := titleStyle.Render(fmt.Sprintf("chatrender • %s", m.path))

	var body string
	switch {
	case !m.loaded:
		body = fmt.Sprintf("%s rendering message…", m.spin.View())
	case m.err != nil:
		body = errorStyle.Render(m.err.Error())
	default:
		body = messageStyle.Render(m.painter.Paint(m.node))
	}

	help := helpStyle.Render("q to quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}
