package component

// HoverAction identifies a tooltip variant. The set is closed: validation
// rejects anything outside the three known actions, so downstream switches
// can be exhaustive.
type HoverAction string

const (
	HoverShowText   HoverAction = "show_text"
	HoverShowItem   HoverAction = "show_item"
	HoverShowEntity HoverAction = "show_entity"
)

// HoverEvent is the tagged union over tooltip variants. Action selects
// which of the payload fields is populated:
//
//	show_text   → Text (ordered string-or-component parts)
//	show_item   → Item, or Legacy for the opaque pre-structured form
//	show_entity → Entity, or Legacy for the opaque pre-structured form
//
// Legacy payloads are never parsed; the tooltip formatter surfaces them as
// an unsupported condition.
type HoverEvent struct {
	Action HoverAction

	Text   []Arg
	Item   *ItemInfo
	Entity *EntityInfo

	Legacy    string
	HasLegacy bool
}

// ItemInfo is the structured show_item payload.
type ItemInfo struct {
	ID    string
	Count *float64
	Tag   string
}

// EntityInfo is the structured show_entity payload. ID is accepted with any
// type and carried through opaquely.
type EntityInfo struct {
	Type string
	ID   any
	Name *string
}
