package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// ErrSyntax reports text that does not match the expected value shape.
var ErrSyntax = errors.New("invalid syntax")

// Int parses a base-10 integer, ignoring surrounding whitespace.
func Int(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: integer %q", ErrSyntax, text)
	}
	return n, nil
}

// Float parses a decimal number, ignoring surrounding whitespace.
func Float(text string) (record.Float, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: number %q", ErrSyntax, text)
	}
	return record.Float(f), nil
}

// String returns text unchanged; it lets plain string fields share the
// optional-field helpers with typed ones.
func String(text string) (string, error) {
	return text, nil
}

func parenthesized(text string) ([]string, error) {
	t := strings.TrimSpace(text)
	if len(t) < 2 || t[0] != '(' || t[len(t)-1] != ')' {
		return nil, fmt.Errorf("%w: expected parenthesized list, got %q", ErrSyntax, text)
	}
	return strings.Split(t[1:len(t)-1], ","), nil
}

// FloatTuple parses a parenthesized comma list such as "(0.1, 0.2, 0.3)".
func FloatTuple(text string) ([]record.Float, error) {
	parts, err := parenthesized(text)
	if err != nil {
		return nil, err
	}
	out := make([]record.Float, len(parts))
	for i, p := range parts {
		f, err := Float(p)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// Color parses "(r, g, b)" or "(r, g, b, a)". Each channel containing a
// decimal point is read as a 0-1 float and scaled to 0-255 with truncation;
// any other channel is read as a 0-255 integer. The alpha channel, if
// present, is discarded and A is always 1.0.
func Color(text string) (record.Color, error) {
	parts, err := parenthesized(text)
	if err != nil {
		return record.Color{}, err
	}
	if len(parts) != 3 && len(parts) != 4 {
		return record.Color{}, fmt.Errorf("%w: color %q must have 3 or 4 channels", ErrSyntax, text)
	}
	var rgb [3]int
	for i := range rgb {
		v, err := channel(parts[i])
		if err != nil {
			return record.Color{}, fmt.Errorf("color %q: %w", text, err)
		}
		rgb[i] = v
	}
	return record.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 1}, nil
}

func channel(text string) (int, error) {
	if strings.Contains(text, ".") {
		f, err := Float(text)
		if err != nil {
			return 0, err
		}
		return int(float64(f) * 255), nil
	}
	return Int(text)
}

// CommaList splits "a, b, c" into trimmed non-empty items. The literal
// "None" yields no items.
func CommaList(text string) []string {
	if strings.TrimSpace(text) == "None" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(text, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
