package record

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Marshal encodes v as compact JSON without HTML escaping. It is the single
// place the sparse-record rule is applied: absent pointers and empty slices
// or maps are dropped through their omitempty tags.
//
// Postcondition: the result has no trailing newline.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("record: encoding: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
