package defs

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput marks unreadable directories, malformed XML, missing
	// required elements and text that cannot be coerced to its field type.
	ErrBadInput = errors.New("bad input")
	// ErrUnresolvedParent marks a ParentName with no abstract template of
	// the same definition kind.
	ErrUnresolvedParent = errors.New("unresolved parent")
)

// BadField wraps a coercion failure for the named field as ErrBadInput.
//
// Postcondition: errors.Is(result, ErrBadInput) is true.
func BadField(field string, err error) error {
	return fmt.Errorf("%w: field %s: %v", ErrBadInput, field, err)
}
