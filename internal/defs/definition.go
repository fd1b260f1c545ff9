package defs

import (
	"strings"

	"github.com/beevik/etree"
)

// Definition is one top-level definition element, e.g. a <GeneDef>.
type Definition struct {
	Node
	// File is the path the definition was read from.
	File string
}

func newDefinition(el *etree.Element, file string) *Definition {
	return &Definition{Node: Node{el: el}, File: file}
}

// Kind returns the definition tag, e.g. "TraitDef".
func (d *Definition) Kind() string {
	return d.el.Tag
}

// DefName returns the text of the defName child, or "" when absent.
func (d *Definition) DefName() string {
	name, _ := d.Text("defName")
	return name
}

// Abstract reports whether the definition carries Abstract="True".
func (d *Definition) Abstract() bool {
	return strings.EqualFold(d.el.SelectAttrValue("Abstract", ""), "true")
}

// TemplateName returns the Name attribute abstract templates are indexed by.
func (d *Definition) TemplateName() string {
	return d.el.SelectAttrValue("Name", "")
}

// ParentName returns the ParentName attribute, or "" when the definition
// does not inherit.
func (d *Definition) ParentName() string {
	return d.el.SelectAttrValue("ParentName", "")
}

// String identifies the definition in error messages.
func (d *Definition) String() string {
	if name := d.DefName(); name != "" {
		return d.Kind() + " " + name
	}
	if name := d.TemplateName(); name != "" {
		return d.Kind() + " template " + name
	}
	return d.Kind() + " in " + d.File
}
