package color

import (
	"regexp"
	"strings"
)

// Kind distinguishes the two accepted color representations. They are
// mutually exclusive: a Color is either a palette entry or a hex literal,
// never both.
type Kind int

const (
	Named Kind = iota
	Hex
)

// Color is a validated color specification. Named colors keep their palette
// name and carry the classic hex value so output surfaces can paint them
// without a second lookup; hex colors carry the literal value only.
type Color struct {
	Kind Kind
	Name string
	Hex  string
}

// palette is the fixed set of recognized color names and their classic
// values. 17 entries: the 16 legacy chat colors plus minecoin_gold.
var palette = map[string]string{
	"black":         "#000000",
	"dark_blue":     "#0000AA",
	"dark_green":    "#00AA00",
	"dark_aqua":     "#00AAAA",
	"dark_red":      "#AA0000",
	"dark_purple":   "#AA00AA",
	"gold":          "#FFAA00",
	"gray":          "#AAAAAA",
	"dark_gray":     "#555555",
	"blue":          "#5555FF",
	"green":         "#55FF55",
	"aqua":          "#55FFFF",
	"red":           "#FF5555",
	"light_purple":  "#FF55FF",
	"yellow":        "#FFFF55",
	"white":         "#FFFFFF",
	"minecoin_gold": "#DDD605",
}

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValid reports whether value is a recognized palette name
// (case-insensitive) or a six-digit hex literal. Empty input is invalid.
func IsValid(value string) bool {
	_, ok := Parse(value)
	return ok
}

// Parse validates value and returns its canonical form. Named colors are
// lowercased; hex literals keep their digits as given.
func Parse(value string) (Color, bool) {
	if value == "" {
		return Color{}, false
	}

	name := strings.ToLower(value)
	if hex, ok := palette[name]; ok {
		return Color{Kind: Named, Name: name, Hex: hex}, true
	}

	if hexPattern.MatchString(value) {
		return Color{Kind: Hex, Hex: value}, true
	}

	return Color{}, false
}

// ClassName returns the CSS class for a named color, mapping underscores to
// hyphens ("dark_red" → "mc-dark-red"). Hex colors have no class; they are
// emitted as literal style values instead.
func (c Color) ClassName() string {
	if c.Kind != Named {
		return ""
	}
	return "mc-" + strings.ReplaceAll(c.Name, "_", "-")
}
