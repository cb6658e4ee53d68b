package validate

import (
	"fmt"

	"github.com/mosaicmc/chatrender/internal/component"
	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

// validateHover dispatches to the per-action sub-validator. The action set
// is closed; anything else fails here so later switches stay exhaustive.
func validateHover(raw any, path []string) (*component.HoverEvent, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, chaterrors.NewValidationError(path, fmt.Sprintf("must be an object, got %s", typeName(raw)), nil)
	}

	actionRaw, ok := obj["action"]
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "action"), "is required", nil)
	}
	action, ok := actionRaw.(string)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "action"), fmt.Sprintf("must be a string, got %s", typeName(actionRaw)), nil)
	}

	switch component.HoverAction(action) {
	case component.HoverShowText:
		return validateShowText(obj, path)
	case component.HoverShowItem:
		return validateShowItem(obj, path)
	case component.HoverShowEntity:
		return validateShowEntity(obj, path)
	default:
		return nil, chaterrors.NewValidationError(fieldPath(path, "action"), fmt.Sprintf("unknown hover action %q", action), nil)
	}
}

// hoverPayload resolves the contents-vs-legacy-value field pair shared by
// all three actions. contents wins when both are present.
func hoverPayload(obj map[string]any) (payload any, field string, ok bool) {
	if contents, present := obj["contents"]; present {
		return contents, "contents", true
	}
	if value, present := obj["value"]; present {
		return value, "value", true
	}
	return nil, "", false
}

func validateShowText(obj map[string]any, path []string) (*component.HoverEvent, error) {
	payload, field, ok := hoverPayload(obj)
	if !ok {
		return nil, chaterrors.NewValidationError(path, "show_text hover requires contents or value", nil)
	}

	hover := &component.HoverEvent{Action: component.HoverShowText}

	switch v := payload.(type) {
	case string:
		hover.Text = []component.Arg{component.StringArg(v)}
	case []any:
		for i, entry := range v {
			if s, ok := entry.(string); ok {
				hover.Text = append(hover.Text, component.StringArg(s))
				continue
			}
			nested, err := validateComponent(entry, fieldPath(path, fmt.Sprintf("%s[%d]", field, i)))
			if err != nil {
				return nil, err
			}
			hover.Text = append(hover.Text, component.ComponentArg(nested))
		}
	default:
		nested, err := validateComponent(payload, fieldPath(path, field))
		if err != nil {
			return nil, err
		}
		hover.Text = []component.Arg{component.ComponentArg(nested)}
	}

	return hover, nil
}

func validateShowItem(obj map[string]any, path []string) (*component.HoverEvent, error) {
	hover := &component.HoverEvent{Action: component.HoverShowItem}

	if value, present := obj["value"]; present {
		s, ok := value.(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "value"), fmt.Sprintf("must be a string, got %s", typeName(value)), nil)
		}
		// Accepted opaque; never parsed.
		hover.Legacy = s
		hover.HasLegacy = true
		return hover, nil
	}

	contents, present := obj["contents"]
	if !present {
		return nil, chaterrors.NewValidationError(path, "show_item hover requires contents or value", nil)
	}
	m, ok := contents.(map[string]any)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents"), fmt.Sprintf("must be an object, got %s", typeName(contents)), nil)
	}

	item := &component.ItemInfo{}

	idRaw, present := m["id"]
	if !present {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents.id"), "is required", nil)
	}
	id, ok := idRaw.(string)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents.id"), fmt.Sprintf("must be a string, got %s", typeName(idRaw)), nil)
	}
	item.ID = id

	if countRaw, present := m["count"]; present {
		count, ok := countRaw.(float64)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "contents.count"), fmt.Sprintf("must be a number, got %s", typeName(countRaw)), nil)
		}
		item.Count = &count
	}

	if tagRaw, present := m["tag"]; present {
		tag, ok := tagRaw.(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "contents.tag"), fmt.Sprintf("must be a string, got %s", typeName(tagRaw)), nil)
		}
		item.Tag = tag
	}

	hover.Item = item
	return hover, nil
}

func validateShowEntity(obj map[string]any, path []string) (*component.HoverEvent, error) {
	hover := &component.HoverEvent{Action: component.HoverShowEntity}

	if value, present := obj["value"]; present {
		s, ok := value.(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "value"), fmt.Sprintf("must be a string, got %s", typeName(value)), nil)
		}
		hover.Legacy = s
		hover.HasLegacy = true
		return hover, nil
	}

	contents, present := obj["contents"]
	if !present {
		return nil, chaterrors.NewValidationError(path, "show_entity hover requires contents or value", nil)
	}
	m, ok := contents.(map[string]any)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents"), fmt.Sprintf("must be an object, got %s", typeName(contents)), nil)
	}

	entity := &component.EntityInfo{}

	typeRaw, present := m["type"]
	if !present {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents.type"), "is required", nil)
	}
	entityType, ok := typeRaw.(string)
	if !ok {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents.type"), fmt.Sprintf("must be a string, got %s", typeName(typeRaw)), nil)
	}
	entity.Type = entityType

	id, present := m["id"]
	if !present {
		return nil, chaterrors.NewValidationError(fieldPath(path, "contents.id"), "is required", nil)
	}
	entity.ID = id

	if nameRaw, present := m["name"]; present {
		name, ok := nameRaw.(string)
		if !ok {
			return nil, chaterrors.NewValidationError(fieldPath(path, "contents.name"), fmt.Sprintf("must be a string, got %s", typeName(nameRaw)), nil)
		}
		entity.Name = &name
	}

	hover.Entity = entity
	return hover, nil
}
