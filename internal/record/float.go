package record

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that always serializes with a decimal point, so 1 is
// written as 1.0 and consumers can tell float fields from integer ones.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("record: unsupported float value %v", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return []byte(s), nil
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
