package render

import (
	"fmt"
	"strings"

	"github.com/mosaicmc/chatrender/internal/component"
)

// unnamedEntity is the display fallback for show_entity hovers without a
// name field.
const unnamedEntity = "Unnamed Entity"

// formatHover converts a hover event into its plain tooltip text. Styling
// never applies inside tooltips. Legacy string-encoded item and entity
// payloads are deliberately not parsed; they surface as an empty tooltip
// with a warning.
func (r *Renderer) formatHover(h *component.HoverEvent) string {
	switch h.Action {
	case component.HoverShowText:
		if len(h.Text) == 0 {
			r.log.Warn("show_text hover without contents")
			return ""
		}
		var b strings.Builder
		for _, part := range h.Text {
			if part.Comp != nil {
				b.WriteString(r.plainText(part.Comp, 0))
				continue
			}
			if part.Str != nil {
				b.WriteString(*part.Str)
			}
		}
		return b.String()

	case component.HoverShowItem:
		if h.HasLegacy || h.Item == nil {
			r.log.Warn("legacy item hover payload is unsupported")
			return ""
		}
		if h.Item.Count != nil && *h.Item.Count != 0 {
			return fmt.Sprintf("%vx %s", *h.Item.Count, h.Item.ID)
		}
		return h.Item.ID

	case component.HoverShowEntity:
		if h.HasLegacy || h.Entity == nil {
			r.log.Warn("legacy entity hover payload is unsupported")
			return ""
		}
		if h.Entity.Name != nil {
			return *h.Entity.Name
		}
		return unnamedEntity
	}

	r.log.WithFields(map[string]any{"action": string(h.Action)}).Warn("unknown hover action")
	return ""
}

// plainText flattens a component subtree to unstyled text: literal text or
// recursively resolved translation output, followed by flattened extra
// entries. Used for tooltip bodies, never for the visible message.
func (r *Renderer) plainText(c *component.Component, depth int) string {
	if c == nil || depth > component.MaxDepth {
		return ""
	}

	var b strings.Builder
	switch {
	case c.Text != nil:
		b.WriteString(*c.Text)
	case c.Translate != nil:
		for _, frag := range r.tr.Format(*c.Translate, c.With) {
			if frag.Comp != nil {
				b.WriteString(r.plainText(frag.Comp, depth+1))
				continue
			}
			if frag.Str != nil {
				b.WriteString(*frag.Str)
			}
		}
	}

	for _, entry := range c.Extra {
		if entry.Comp != nil {
			b.WriteString(r.plainText(entry.Comp, depth+1))
			continue
		}
		if entry.Str != nil {
			b.WriteString(*entry.Str)
		}
	}

	return b.String()
}
