package component

// MaxDepth bounds component tree nesting, measured as the field-path length
// from the tree root to a node. Trees deeper than this are rejected during
// validation, and rendering refuses to descend past it.
const MaxDepth = 8

// Component is a node in a chat message tree. Values of this type are only
// produced by validation (or constructed programmatically by trusted code);
// untrusted payloads travel as decoded `any` trees until they pass the
// validator.
type Component struct {
	Text      *string
	Translate *string
	With      []Arg
	Extra     []Arg

	// Color holds the raw color value as received. Validity is checked at
	// render time so that a bad color degrades instead of failing the tree.
	Color string

	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool

	Hover *HoverEvent
}

// Arg is the string-or-component union used by "with", "extra" and
// show_text hover contents. Exactly one of Str and Comp is set.
type Arg struct {
	Str  *string
	Comp *Component
}

// StringArg wraps a plain string entry.
func StringArg(s string) Arg {
	return Arg{Str: &s}
}

// ComponentArg wraps a nested component entry.
func ComponentArg(c *Component) Arg {
	return Arg{Comp: c}
}

// IsString reports whether the entry is a plain string.
func (a Arg) IsString() bool {
	return a.Str != nil
}

// Textual is a convenience constructor for a plain text component.
func Textual(text string) *Component {
	return &Component{Text: &text}
}

// Translated is a convenience constructor for a translation reference.
func Translated(key string, with ...Arg) *Component {
	return &Component{Translate: &key, With: with}
}
