package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mosaicmc/chatrender/internal/render"
)

var (
	linkStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#5555FF"))
	tooltipStyle = lipgloss.NewStyle().Faint(true)
)

// Painter converts an output node tree to ANSI-styled terminal text.
type Painter struct {
	// Scramble, when set, replaces the text content of obfuscated spans on
	// each paint. Leaving it nil paints obfuscated spans verbatim.
	Scramble func(string) string

	// ShowTooltips appends tooltip text after the span that carries it,
	// since a terminal has no hover affordance.
	ShowTooltips bool
}

// Paint renders the node tree to a string suitable for terminal output.
func (p Painter) Paint(n *render.Node) string {
	return p.paint(n, false)
}

func (p Painter) paint(n *render.Node, obfuscated bool) string {
	if n == nil {
		return ""
	}

	switch n.Kind {
	case render.KindText:
		if obfuscated && p.Scramble != nil {
			return p.Scramble(n.Text)
		}
		return n.Text

	case render.KindLink:
		return linkStyle.Render(n.Text)

	case render.KindSpan:
		style := lipgloss.NewStyle()
		styled := false
		for _, s := range n.Styles {
			switch s {
			case render.StyleBold:
				style = style.Bold(true)
				styled = true
			case render.StyleItalic:
				style = style.Italic(true)
				styled = true
			case render.StyleUnderlined:
				style = style.Underline(true)
				styled = true
			case render.StyleStrikethrough:
				style = style.Strikethrough(true)
				styled = true
			case render.StyleObfuscated:
				obfuscated = true
			}
		}
		if n.Color != nil {
			style = style.Foreground(lipgloss.Color(n.Color.Hex))
			styled = true
		}

		var b strings.Builder
		for _, child := range n.Children {
			b.WriteString(p.paint(child, obfuscated))
		}
		out := b.String()
		if styled {
			out = style.Render(out)
		}
		if p.ShowTooltips && n.Tooltip != "" {
			out += tooltipStyle.Render(" [" + n.Tooltip + "]")
		}
		return out
	}

	return ""
}
