package defs

import (
	"fmt"

	"github.com/beevik/etree"
)

// Node is a read-only view of one XML element inside a definition.
//
// Path arguments use etree path syntax relative to the node, e.g. "label",
// "./skillGains/li" or "./statOffsets/*". Lookups that return a single value
// take the first match in document order.
type Node struct {
	el *etree.Element
}

// Tag returns the element's tag name without namespace prefix.
func (n Node) Tag() string {
	return n.el.Tag
}

// OwnText returns the character data preceding the node's first child element.
func (n Node) OwnText() string {
	return n.el.Text()
}

// Text returns the text of the first element matching path.
//
// Postcondition: ok is false iff no element matches; a matching empty
// element yields ("", true).
func (n Node) Text(path string) (text string, ok bool) {
	e := n.el.FindElement(path)
	if e == nil {
		return "", false
	}
	return e.Text(), true
}

// Has reports whether any element matches path.
func (n Node) Has(path string) bool {
	return n.el.FindElement(path) != nil
}

// Find returns every element matching path in document order.
func (n Node) Find(path string) []Node {
	found := n.el.FindElements(path)
	nodes := make([]Node, len(found))
	for i, e := range found {
		nodes[i] = Node{el: e}
	}
	return nodes
}

// Items returns the text of every element matching path, typically a
// "./container/li" list.
//
// Postcondition: returns an ErrBadInput error if a matching element has no text.
func (n Node) Items(path string) ([]string, error) {
	var items []string
	for _, e := range n.el.FindElements(path) {
		text := e.Text()
		if text == "" {
			return nil, fmt.Errorf("%w: empty element under %s", ErrBadInput, path)
		}
		items = append(items, text)
	}
	return items, nil
}
