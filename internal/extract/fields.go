// Package extract reads typed output records from resolved definitions.
package extract

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/normalize"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// optional parses the first element at path, returning nil when absent.
func optional[T any](n defs.Node, path string, parse func(string) (T, error)) (*T, error) {
	text, ok := n.Text(path)
	if !ok {
		return nil, nil
	}
	v, err := parse(text)
	if err != nil {
		return nil, defs.BadField(path, err)
	}
	return &v, nil
}

// orDefault parses the first element at path, returning dflt when absent.
func orDefault[T any](n defs.Node, path string, dflt T, parse func(string) (T, error)) (T, error) {
	v, err := optional(n, path, parse)
	if err != nil || v == nil {
		return dflt, err
	}
	return *v, nil
}

func defName(d *defs.Definition) (string, error) {
	name, ok := d.Text("defName")
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %s in %s has no defName", defs.ErrBadInput, d.Kind(), d.File)
	}
	return name, nil
}

func items(n defs.Node, path string) ([]string, error) {
	out, err := n.Items(path)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", path, err)
	}
	return out, nil
}

// workTags reads a work-tag container in either of its source forms: a list
// of <li> items or a comma-separated string ("None" meaning empty). List
// items come first.
func workTags(n defs.Node, container string) ([]string, error) {
	tags, err := items(n, "./"+container+"/li")
	if err != nil {
		return nil, err
	}
	if text, ok := n.Text(container); ok {
		tags = append(tags, normalize.CommaList(text)...)
	}
	return tags, nil
}

// floatMap reads a container whose children are tag->number pairs, e.g.
// <statOffsets><MoveSpeed>0.2</MoveSpeed></statOffsets>.
func floatMap(n defs.Node, container string) (map[string]record.Float, error) {
	out := make(map[string]record.Float)
	for _, child := range n.Find("./" + container + "/*") {
		f, err := normalize.Float(child.OwnText())
		if err != nil {
			return nil, defs.BadField(container+"/"+child.Tag(), err)
		}
		setFirst(out, child.Tag(), f)
	}
	return out, nil
}

// skillGains reads <skillGains> in either the keyed-list form
// (<li><key>Melee</key><value>3</value></li>) or the tag form
// (<Melee>3</Melee>). A list entry missing key or value is bad input.
func skillGains(n defs.Node) (map[string]int, error) {
	out := make(map[string]int)
	for _, child := range n.Find("./skillGains/*") {
		if child.Tag() != "li" {
			v, err := normalize.Int(child.OwnText())
			if err != nil {
				return nil, defs.BadField("skillGains/"+child.Tag(), err)
			}
			setFirst(out, child.Tag(), v)
			continue
		}
		key, okKey := child.Text("key")
		value, okValue := child.Text("value")
		if !okKey || !okValue {
			return nil, fmt.Errorf("%w: skillGains entry needs both key and value", defs.ErrBadInput)
		}
		v, err := normalize.Int(value)
		if err != nil {
			return nil, defs.BadField("skillGains/"+key, err)
		}
		setFirst(out, key, v)
	}
	return out, nil
}

// forcedTraits reads <forcedTraits> in either the tag form
// (<Nudist>0</Nudist>, empty meaning degree 0) or the list form
// (<li><def>Nudist</def><degree>0</degree></li>, degree defaulting to 0).
func forcedTraits(n defs.Node) (map[string]int, error) {
	out := make(map[string]int)
	for _, child := range n.Find("./forcedTraits/*") {
		name := child.Tag()
		text := child.OwnText()
		if name == "li" {
			var ok bool
			if name, ok = child.Text("def"); !ok || name == "" {
				return nil, fmt.Errorf("%w: forcedTraits entry has no def", defs.ErrBadInput)
			}
			text, _ = child.Text("degree")
		}
		degree := 0
		if !blank(text) {
			v, err := normalize.Int(text)
			if err != nil {
				return nil, defs.BadField("forcedTraits/"+name, err)
			}
			degree = v
		}
		setFirst(out, name, degree)
	}
	return out, nil
}

// setFirst stores v unless key is already set. Own elements precede
// inherited ones, so the definition's own entry wins over its template's.
func setFirst[K comparable, V any](m map[K]V, key K, v V) {
	if _, ok := m[key]; !ok {
		m[key] = v
	}
}

// tuple parses an optional parenthesized float list.
func tuple(n defs.Node, path string) ([]record.Float, error) {
	v, err := optional(n, path, normalize.FloatTuple)
	if err != nil || v == nil {
		return nil, err
	}
	return *v, nil
}

func blank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}

func cleaned(s *string, clean func(string) string) *string {
	if s == nil {
		return nil
	}
	return record.Ptr(clean(*s))
}
