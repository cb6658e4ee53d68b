package render

import (
	"strings"

	"github.com/mosaicmc/chatrender/internal/color"
)

// MaxTextLength caps the assembled text content of a rendered tree, in
// runes. Truncation is applied once, after assembly, on the returned node.
const MaxTextLength = 4096

// Style is an ordered style marker on a container node. Markers are
// independent and cumulative.
type Style string

const (
	StyleBold          Style = "bold"
	StyleItalic        Style = "italic"
	StyleUnderlined    Style = "underlined"
	StyleStrikethrough Style = "strikethrough"
	StyleObfuscated    Style = "obfuscated"
)

// Kind discriminates output node shapes.
type Kind int

const (
	// KindText is a plain text leaf.
	KindText Kind = iota
	// KindSpan is a styled container with ordered children.
	KindSpan
	// KindLink is a hyperlink leaf; the URL doubles as its display text.
	KindLink
)

// Node is the externally visible rendering result. A Node tree is ephemeral:
// built once per inbound message and discarded after the consuming surface
// paints it.
type Node struct {
	Kind Kind

	// Text is the content of a text leaf, or the display text of a link.
	Text string
	// URL is the link destination. Surfaces emitting hyperlinks must not
	// leak referrer information or grant opener access to the target.
	URL string

	Styles   []Style
	Color    *color.Color
	Tooltip  string
	Children []*Node
}

// TextNode builds a plain text leaf.
func TextNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// LinkNode builds a hyperlink leaf for url, displayed as itself.
func LinkNode(url string) *Node {
	return &Node{Kind: KindLink, Text: url, URL: url}
}

// PlainText returns the assembled text content of the subtree.
func (n *Node) PlainText() string {
	var b strings.Builder
	n.writePlainText(&b)
	return b.String()
}

func (n *Node) writePlainText(b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindText, KindLink:
		b.WriteString(n.Text)
	case KindSpan:
		for _, child := range n.Children {
			child.writePlainText(b)
		}
	}
}

// textLength counts the assembled content in runes.
func textLength(n *Node) int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindText, KindLink:
		return len([]rune(n.Text))
	case KindSpan:
		total := 0
		for _, child := range n.Children {
			total += textLength(child)
		}
		return total
	}
	return 0
}

// truncate cuts the subtree's assembled text content to at most budget
// runes, in place. The leaf at the point of overflow is cut mid-text and
// everything after it is dropped. Returns the number of runes kept.
func truncate(n *Node, budget int) int {
	if n == nil || budget < 0 {
		return 0
	}
	switch n.Kind {
	case KindText, KindLink:
		runes := []rune(n.Text)
		if len(runes) <= budget {
			return len(runes)
		}
		n.Text = string(runes[:budget])
		return budget
	case KindSpan:
		used := 0
		kept := n.Children[:0]
		for _, child := range n.Children {
			if used >= budget {
				break
			}
			used += truncate(child, budget-used)
			kept = append(kept, child)
		}
		n.Children = kept
		return used
	}
	return 0
}
