package render

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Linkify splits text into plain-text and hyperlink fragments. Contiguous
// non-whitespace runs beginning with http:// or https:// become link
// fragments; everything else stays plain text. The fragments cover the
// whole input in order, with no gaps or overlaps.
func Linkify(text string) []*Node {
	var nodes []*Node
	var plain strings.Builder

	flushPlain := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, TextNode(plain.String()))
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			plain.WriteRune(r)
			i += size
			continue
		}

		// Consume the whole non-whitespace run.
		end := i
		for end < len(text) {
			r, size := utf8.DecodeRuneInString(text[end:])
			if unicode.IsSpace(r) {
				break
			}
			end += size
		}

		run := text[i:end]
		if strings.HasPrefix(run, "http://") || strings.HasPrefix(run, "https://") {
			flushPlain()
			nodes = append(nodes, LinkNode(run))
		} else {
			plain.WriteString(run)
		}
		i = end
	}

	flushPlain()
	return nodes
}
