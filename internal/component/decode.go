package component

import (
	"encoding/json"
	"fmt"
)

// Decode deserializes a message payload into an untrusted tree. The result
// is a plain `any` shape (maps, slices, strings, numbers, booleans) rather
// than a typed Component: typing is the validator's job, and decoding into
// structs here would silently coerce fields the validator is supposed to
// reject.
func Decode(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode message payload: %w", err)
	}
	return raw, nil
}
