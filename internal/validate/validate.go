package validate

import (
	"fmt"

	"github.com/mosaicmc/chatrender/internal/component"
	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

// Component validates an untrusted decoded tree and returns its typed form.
// Validation is pure, stops at the first violation, and reports the dotted
// field path to the offending node. The depth bound is checked before any
// type checks at that depth, so arbitrarily deep input fails fast.
//
// The returned *component.Component is the only bridge from untrusted input
// to the renderer: rendering accepts typed components, and typed components
// for untrusted payloads only come from here.
func Component(raw any) (*component.Component, error) {
	return validateComponent(raw, nil)
}

func validateComponent(raw any, path []string) (*component.Component, error) {
	if len(path) > component.MaxDepth {
		return nil, chaterrors.NewValidationError(path, fmt.Sprintf("nesting exceeds the depth limit of %d", component.MaxDepth), nil)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, chaterrors.NewValidationError(path, fmt.Sprintf("expected an object, got %s", typeName(raw)), nil)
	}

	_, hasText := obj["text"]
	_, hasTranslate := obj["translate"]
	_, hasExtra := obj["extra"]
	if !hasText && !hasTranslate && !hasExtra {
		return nil, chaterrors.NewValidationError(path, "component must have one of text, translate or extra", nil)
	}

	c := &component.Component{}

	if hasText {
		s, ok := obj["text"].(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "text"), fmt.Sprintf("must be a string, got %s", typeName(obj["text"])), nil)
		}
		c.Text = &s
	}

	if hasTranslate {
		s, ok := obj["translate"].(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "translate"), fmt.Sprintf("must be a string, got %s", typeName(obj["translate"])), nil)
		}
		c.Translate = &s
	}

	if raw, ok := obj["with"]; ok {
		args, err := validateArgList(raw, path, "with")
		if err != nil {
			return nil, err
		}
		c.With = args
	}

	if hasExtra {
		args, err := validateArgList(obj["extra"], path, "extra")
		if err != nil {
			return nil, err
		}
		c.Extra = args
	}

	if raw, ok := obj["color"]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "color"), fmt.Sprintf("must be a string, got %s", typeName(raw)), nil)
		}
		c.Color = s
	}

	for _, flag := range []struct {
		name string
		dst  *bool
	}{
		{"bold", &c.Bold},
		{"italic", &c.Italic},
		{"underlined", &c.Underlined},
		{"strikethrough", &c.Strikethrough},
		{"obfuscated", &c.Obfuscated},
	} {
		raw, ok := obj[flag.name]
		if !ok {
			continue
		}
		b, ok := raw.(bool)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, flag.name), fmt.Sprintf("must be a boolean, got %s", typeName(raw)), nil)
		}
		*flag.dst = b
	}

	if raw, ok := obj["hoverEvent"]; ok {
		hover, err := validateHover(raw, fieldPath(path, "hoverEvent"))
		if err != nil {
			return nil, err
		}
		c.Hover = hover
	}

	return c, nil
}

// validateArgList checks an ordered sequence of string-or-component entries
// ("with" and "extra" share this shape).
func validateArgList(raw any, path []string, field string) ([]component.Arg, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, field), fmt.Sprintf("must be an array, got %s", typeName(raw)), nil)
	}

	args := make([]component.Arg, 0, len(list))
	for i, entry := range list {
		if s, ok := entry.(string); ok {
			args = append(args, component.StringArg(s))
			continue
		}
		nested, err := validateComponent(entry, fieldPath(path, fmt.Sprintf("%s[%d]", field, i)))
		if err != nil {
			return nil, err
		}
		args = append(args, component.ComponentArg(nested))
	}
	return args, nil
}

// fieldPath extends a path with one more segment without sharing the
// backing array of the parent path.
func fieldPath(path []string, segment string) []string {
	extended := make([]string, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, segment)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
