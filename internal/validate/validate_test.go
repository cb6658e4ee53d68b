package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mosaicmc/chatrender/internal/component"
	chaterrors "github.com/mosaicmc/chatrender/pkg/errors"
)

func decode(t *testing.T, payload string) any {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(payload), &raw))
	return raw
}

func TestComponentAcceptsValidTrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
	}{
		{"text only", `{"text": "hello"}`},
		{"translate only", `{"translate": "chat.type.text"}`},
		{"extra only", `{"extra": ["a", "b"]}`},
		{"styled text", `{"text": "hi", "color": "gold", "bold": true, "italic": true, "obfuscated": true}`},
		{"hex color", `{"text": "hi", "color": "#1a2b3c"}`},
		{"translate with mixed args", `{"translate": "chat.type.text", "with": ["Steve", {"text": "hi"}]}`},
		{"nested extra", `{"text": "a", "extra": [{"text": "b", "extra": ["c"]}]}`},
		{"show_text string", `{"text": "x", "hoverEvent": {"action": "show_text", "contents": "tip"}}`},
		{"show_text legacy value", `{"text": "x", "hoverEvent": {"action": "show_text", "value": "tip"}}`},
		{"show_text component", `{"text": "x", "hoverEvent": {"action": "show_text", "contents": {"text": "tip"}}}`},
		{"show_text sequence", `{"text": "x", "hoverEvent": {"action": "show_text", "contents": ["a", {"text": "b"}]}}`},
		{"show_item structured", `{"text": "x", "hoverEvent": {"action": "show_item", "contents": {"id": "minecraft:stone", "count": 3, "tag": "{}"}}}`},
		{"show_item legacy", `{"text": "x", "hoverEvent": {"action": "show_item", "value": "{id:stone}"}}`},
		{"show_entity structured", `{"text": "x", "hoverEvent": {"action": "show_entity", "contents": {"type": "minecraft:pig", "id": 7, "name": "Porky"}}}`},
		{"show_entity id any type", `{"text": "x", "hoverEvent": {"action": "show_entity", "contents": {"type": "minecraft:pig", "id": {"uuid": "ab"}}}}`},
		{"show_entity legacy", `{"text": "x", "hoverEvent": {"action": "show_entity", "value": "opaque"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := Component(decode(t, tt.payload))
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func TestComponentRejectsInvalidTrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		payload  string
		wantPath string
	}{
		{"not an object", `"just a string"`, "(root)"},
		{"array at root", `[{"text": "hi"}]`, "(root)"},
		{"empty object", `{}`, "(root)"},
		{"only styling", `{"bold": true, "color": "red"}`, "(root)"},
		{"text wrong type", `{"text": 42}`, "text"},
		{"translate wrong type", `{"translate": ["k"]}`, "translate"},
		{"color wrong type", `{"text": "x", "color": 5}`, "color"},
		{"bold wrong type", `{"text": "x", "bold": "yes"}`, "bold"},
		{"with not array", `{"translate": "k", "with": "nope"}`, "with"},
		{"with entry invalid", `{"translate": "k", "with": [5]}`, "with[0]"},
		{"extra entry invalid", `{"text": "x", "extra": [{"bold": true}]}`, "extra[0]"},
		{"nested extra entry invalid", `{"text": "x", "extra": [{"text": "y", "extra": [null]}]}`, "extra[0].extra[0]"},
		{"hover not object", `{"text": "x", "hoverEvent": "nope"}`, "hoverEvent"},
		{"hover missing action", `{"text": "x", "hoverEvent": {"contents": "tip"}}`, "hoverEvent.action"},
		{"hover unknown action", `{"text": "x", "hoverEvent": {"action": "show_achievement", "contents": "tip"}}`, "hoverEvent.action"},
		{"show_text missing payload", `{"text": "x", "hoverEvent": {"action": "show_text"}}`, "hoverEvent"},
		{"show_text bad entry", `{"text": "x", "hoverEvent": {"action": "show_text", "contents": [7]}}`, "hoverEvent.contents[0]"},
		{"show_item missing payload", `{"text": "x", "hoverEvent": {"action": "show_item"}}`, "hoverEvent"},
		{"show_item legacy wrong type", `{"text": "x", "hoverEvent": {"action": "show_item", "value": 9}}`, "hoverEvent.value"},
		{"show_item missing id", `{"text": "x", "hoverEvent": {"action": "show_item", "contents": {"count": 1}}}`, "hoverEvent.contents.id"},
		{"show_item bad count", `{"text": "x", "hoverEvent": {"action": "show_item", "contents": {"id": "x", "count": "many"}}}`, "hoverEvent.contents.count"},
		{"show_entity missing type", `{"text": "x", "hoverEvent": {"action": "show_entity", "contents": {"id": 1}}}`, "hoverEvent.contents.type"},
		{"show_entity missing id", `{"text": "x", "hoverEvent": {"action": "show_entity", "contents": {"type": "pig"}}}`, "hoverEvent.contents.id"},
		{"show_entity bad name", `{"text": "x", "hoverEvent": {"action": "show_entity", "contents": {"type": "pig", "id": 1, "name": 3}}}`, "hoverEvent.contents.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Component(decode(t, tt.payload))
			require.Error(t, err)

			var verr *chaterrors.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			require.Equal(t, tt.wantPath, verr.PathString())
		})
	}
}

// nestedExtras builds a linear chain of components, levels deep, linked
// through "extra". levels == 1 is a single root node.
func nestedExtras(levels int) map[string]any {
	node := map[string]any{"text": "leaf"}
	for i := 1; i < levels; i++ {
		node = map[string]any{"text": "n", "extra": []any{node}}
	}
	return node
}

func TestComponentDepthLimit(t *testing.T) {
	t.Parallel()

	// Path length from the root may not exceed 8: a chain of 9 nodes has
	// its deepest node at path length 8 and still passes.
	c, err := Component(nestedExtras(9))
	require.NoError(t, err)
	require.NotNil(t, c)

	_, err = Component(nestedExtras(10))
	require.Error(t, err)

	var verr *chaterrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Path, 9)
}

func TestComponentDepthBeatsTypeChecks(t *testing.T) {
	t.Parallel()

	// The node past the bound is not even an object; the depth violation
	// must be reported, not the type error.
	node := any("not even an object")
	for i := 0; i < 9; i++ {
		node = map[string]any{"text": "n", "extra": []any{node}}
	}

	_, err := Component(node)
	require.Error(t, err)

	var verr *chaterrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Path, 9)
	require.Contains(t, verr.Message, "depth")
}

func TestComponentDepthCountsHoverContents(t *testing.T) {
	t.Parallel()

	// hoverEvent and its contents extend the path, so hover-nested
	// components consume depth budget too.
	deep := nestedExtras(8)
	payload := map[string]any{
		"text": "x",
		"hoverEvent": map[string]any{
			"action":   "show_text",
			"contents": deep,
		},
	}

	_, err := Component(payload)
	require.Error(t, err)

	var verr *chaterrors.ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "hoverEvent", verr.Path[0])
}

func TestComponentBuildsTypedTree(t *testing.T) {
	t.Parallel()

	payload := `{
		"translate": "chat.type.text",
		"with": ["Steve", {"text": "hi", "color": "red"}],
		"extra": ["!", {"text": "tail"}],
		"color": "GOLD",
		"bold": true,
		"hoverEvent": {"action": "show_item", "contents": {"id": "minecraft:diamond", "count": 5}}
	}`

	c, err := Component(decode(t, payload))
	require.NoError(t, err)

	require.Nil(t, c.Text)
	require.NotNil(t, c.Translate)
	require.Equal(t, "chat.type.text", *c.Translate)
	require.Equal(t, "GOLD", c.Color)
	require.True(t, c.Bold)
	require.False(t, c.Italic)

	require.Len(t, c.With, 2)
	require.True(t, c.With[0].IsString())
	require.Equal(t, "Steve", *c.With[0].Str)
	require.NotNil(t, c.With[1].Comp)
	require.Equal(t, "red", c.With[1].Comp.Color)

	require.Len(t, c.Extra, 2)
	require.True(t, c.Extra[0].IsString())
	require.NotNil(t, c.Extra[1].Comp)

	require.NotNil(t, c.Hover)
	require.Equal(t, component.HoverShowItem, c.Hover.Action)
	require.NotNil(t, c.Hover.Item)
	require.Equal(t, "minecraft:diamond", c.Hover.Item.ID)
	require.NotNil(t, c.Hover.Item.Count)
	require.Equal(t, float64(5), *c.Hover.Item.Count)
}

func TestComponentLegacyHoverIsOpaque(t *testing.T) {
	t.Parallel()

	c, err := Component(decode(t, `{"text": "x", "hoverEvent": {"action": "show_item", "value": "{id:\"minecraft:stone\",Count:1b}"}}`))
	require.NoError(t, err)
	require.NotNil(t, c.Hover)
	require.True(t, c.Hover.HasLegacy)
	require.Nil(t, c.Hover.Item)
}

func TestComponentPrefersContentsOverLegacyForShowText(t *testing.T) {
	t.Parallel()

	c, err := Component(decode(t, `{"text": "x", "hoverEvent": {"action": "show_text", "contents": "new", "value": "old"}}`))
	require.NoError(t, err)
	require.Len(t, c.Hover.Text, 1)
	require.Equal(t, "new", *c.Hover.Text[0].Str)
}
