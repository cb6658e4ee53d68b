package htmlout

import (
	"fmt"
	"html"
	"strings"

	"github.com/mosaicmc/chatrender/internal/color"
	"github.com/mosaicmc/chatrender/internal/render"
)

// Encode serializes an output node tree as HTML. Text content is escaped,
// named colors become mc-* classes, hex colors become inline style values,
// tooltips become title attributes, and links open in a new context without
// referrer or opener access.
func Encode(n *render.Node) string {
	var b strings.Builder
	encode(&b, n)
	return b.String()
}

func encode(b *strings.Builder, n *render.Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case render.KindText:
		b.WriteString(html.EscapeString(n.Text))

	case render.KindLink:
		fmt.Fprintf(b, `<a href="%s" target="_blank" rel="noreferrer noopener">%s</a>`,
			html.EscapeString(n.URL), html.EscapeString(n.Text))

	case render.KindSpan:
		b.WriteString("<span")

		classes := spanClasses(n)
		if len(classes) > 0 {
			fmt.Fprintf(b, ` class="%s"`, strings.Join(classes, " "))
		}
		if n.Color != nil && n.Color.Kind == color.Hex {
			fmt.Fprintf(b, ` style="color:%s"`, html.EscapeString(n.Color.Hex))
		}
		if n.Tooltip != "" {
			fmt.Fprintf(b, ` title="%s"`, html.EscapeString(n.Tooltip))
		}

		b.WriteString(">")
		for _, child := range n.Children {
			encode(b, child)
		}
		b.WriteString("</span>")
	}
}

func spanClasses(n *render.Node) []string {
	var classes []string
	for _, s := range n.Styles {
		classes = append(classes, "mc-"+string(s))
	}
	if n.Color != nil && n.Color.Kind == color.Named {
		classes = append(classes, n.Color.ClassName())
	}
	return classes
}
