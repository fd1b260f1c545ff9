package defs

import (
	"fmt"

	"github.com/beevik/etree"
)

// Templates indexes abstract definitions by kind and Name attribute.
// A Templates value belongs to a single run; it is not safe for concurrent use.
type Templates struct {
	byKind map[string]map[string]*etree.Element
}

// NewTemplates returns an empty template index.
func NewTemplates() *Templates {
	return &Templates{byKind: make(map[string]map[string]*etree.Element)}
}

// Register indexes d under its kind and Name attribute. Registering a name
// twice keeps the later definition.
//
// Precondition: d.Abstract() is true.
// Postcondition: returns an ErrBadInput error if d has no Name attribute.
func (t *Templates) Register(d *Definition) error {
	name := d.TemplateName()
	if name == "" {
		return fmt.Errorf("%w: abstract %s in %s has no Name attribute", ErrBadInput, d.Kind(), d.File)
	}
	kind := t.byKind[d.Kind()]
	if kind == nil {
		kind = make(map[string]*etree.Element)
		t.byKind[d.Kind()] = kind
	}
	kind[name] = d.el
	return nil
}

// Len returns the number of templates registered for kind.
func (t *Templates) Len(kind string) int {
	return len(t.byKind[kind])
}

// Resolve returns d with its parent template's child elements appended
// after its own. Inheritance is single-level: the parent's own ParentName is
// not followed. The source elements are not modified.
//
// Because the child's elements come first, single-value lookups see the
// child's value, while list lookups see the child's items followed by the
// parent's.
//
// Postcondition: returns d unchanged when it has no ParentName; returns an
// ErrUnresolvedParent error when the parent is not registered for d's kind.
func (t *Templates) Resolve(d *Definition) (*Definition, error) {
	parentName := d.ParentName()
	if parentName == "" {
		return d, nil
	}
	parent, ok := t.byKind[d.Kind()][parentName]
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s references ParentName %q", ErrUnresolvedParent, d, d.File, parentName)
	}
	merged := d.el.Copy()
	for _, child := range parent.ChildElements() {
		merged.AddChild(child.Copy())
	}
	return newDefinition(merged, d.File), nil
}

// Collect returns every concrete definition of kind across files, with
// inheritance resolved. Templates from all files are indexed before any
// definition is resolved, so a child may precede its parent on disk.
//
// Postcondition: abstract definitions are excluded; order follows files and
// then document order within each file.
func Collect(files []*File, kind string) ([]*Definition, error) {
	templates := NewTemplates()
	for _, f := range files {
		for _, d := range f.Definitions(kind) {
			if !d.Abstract() {
				continue
			}
			if err := templates.Register(d); err != nil {
				return nil, err
			}
		}
	}

	var out []*Definition
	for _, f := range files {
		for _, d := range f.Definitions(kind) {
			if d.Abstract() {
				continue
			}
			resolved, err := templates.Resolve(d)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
	}
	return out, nil
}
