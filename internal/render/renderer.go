package render

import (
	"github.com/mosaicmc/chatrender/internal/color"
	"github.com/mosaicmc/chatrender/internal/component"
	"github.com/mosaicmc/chatrender/internal/logger"
	"github.com/mosaicmc/chatrender/internal/translate"
	"github.com/mosaicmc/chatrender/internal/validate"
)

// Renderer converts typed components into output node trees. It holds no
// per-message state, so a single Renderer may serve concurrent renders.
type Renderer struct {
	tr  *translate.Translator
	log *logger.Logger
}

// New creates a Renderer using the given translator and warning sink. log
// may be nil to discard diagnostics.
func New(tr *translate.Translator, log *logger.Logger) *Renderer {
	return &Renderer{tr: tr, log: log}
}

// RenderRaw validates an untrusted decoded tree and renders it, making the
// validate-then-render order impossible to skip. Validation failures are
// returned to the caller; rendering itself never fails.
func (r *Renderer) RenderRaw(raw any) (*Node, error) {
	c, err := validate.Component(raw)
	if err != nil {
		return nil, err
	}
	return r.Render(c), nil
}

// Render builds the output node tree for a typed component. It never fails:
// internal errors are recovered and degrade to a plain-text fallback leaf
// built from the component's own text. The assembled text content of the
// returned node is capped at MaxTextLength runes.
func (r *Renderer) Render(c *component.Component) (node *Node) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.WithFields(map[string]any{"panic": rec}).Warn("render failed, falling back to plain text")
			node = fallbackNode(c)
		}
	}()

	node = r.renderComponent(c, 0)
	if textLength(node) > MaxTextLength {
		truncate(node, MaxTextLength)
		r.log.WithFields(map[string]any{"limit": MaxTextLength}).Warn("rendered text truncated")
	}
	return node
}

// renderComponent assembles one node: color, style flags, tooltip, content
// (text before translate, mutually exclusive), then extra children.
//
// Typed components normally arrive through validation, which already bounds
// nesting; the depth guard here keeps hand-built trees from recursing
// without bound.
func (r *Renderer) renderComponent(c *component.Component, depth int) *Node {
	if c == nil {
		return TextNode("")
	}
	if depth > component.MaxDepth {
		r.log.WithFields(map[string]any{"depth": depth}).Warn("render depth limit exceeded, flattening to text")
		return fallbackNode(c)
	}

	node := &Node{Kind: KindSpan}

	if c.Color != "" {
		if parsed, ok := color.Parse(c.Color); ok {
			node.Color = &parsed
		} else {
			r.log.WithFields(map[string]any{"color": c.Color}).Warn("ignoring invalid color")
		}
	}

	if c.Bold {
		node.Styles = append(node.Styles, StyleBold)
	}
	if c.Italic {
		node.Styles = append(node.Styles, StyleItalic)
	}
	if c.Underlined {
		node.Styles = append(node.Styles, StyleUnderlined)
	}
	if c.Strikethrough {
		node.Styles = append(node.Styles, StyleStrikethrough)
	}
	if c.Obfuscated {
		node.Styles = append(node.Styles, StyleObfuscated)
	}

	if c.Hover != nil {
		node.Tooltip = r.formatHover(c.Hover)
	}

	switch {
	case c.Text != nil:
		node.Children = append(node.Children, Linkify(*c.Text)...)
	case c.Translate != nil:
		for _, frag := range r.tr.Format(*c.Translate, c.With) {
			node.Children = append(node.Children, r.renderFragment(frag, depth))
		}
	}

	for _, entry := range c.Extra {
		node.Children = append(node.Children, r.renderFragment(entry, depth))
	}

	return node
}

func (r *Renderer) renderFragment(frag component.Arg, depth int) *Node {
	if frag.Comp != nil {
		return r.renderComponent(frag.Comp, depth+1)
	}
	if frag.Str != nil {
		return TextNode(*frag.Str)
	}
	return TextNode("")
}

// fallbackNode is the degraded result when rendering cannot proceed: the
// component's own text, truncated, with no styling.
func fallbackNode(c *component.Component) *Node {
	text := ""
	if c != nil && c.Text != nil {
		text = *c.Text
	}
	if runes := []rune(text); len(runes) > MaxTextLength {
		text = string(runes[:MaxTextLength])
	}
	return TextNode(text)
}
