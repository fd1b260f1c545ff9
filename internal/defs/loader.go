// Package defs loads XML definition files and resolves abstract-template
// inheritance between definitions of the same kind.
package defs

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/beevik/etree"
)

// File is one parsed definition file.
type File struct {
	Path string
	root *etree.Element
}

// FindFiles returns every file under root with an .xml extension (any case)
// whose base name is not in exclude, in lexical walk order.
//
// Precondition: root must be a readable directory.
// Postcondition: returns the matching paths, or an ErrBadInput error if root
// cannot be walked.
func FindFiles(root string, exclude []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}
		if slices.Contains(exclude, d.Name()) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: walking definition directory %s: %v", ErrBadInput, root, err)
	}
	return paths, nil
}

// LoadFile parses a single definition file.
//
// Postcondition: returns a File with a non-nil root element, or an
// ErrBadInput error.
func LoadFile(path string) (*File, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrBadInput, path, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("%w: parsing %s: no root element", ErrBadInput, path)
	}
	return &File{Path: path, root: root}, nil
}

// Load finds and parses every definition file under root. The first file
// that fails to parse aborts the load.
//
// Postcondition: returns all parsed files or the first error encountered.
func Load(root string, exclude []string) ([]*File, error) {
	paths, err := FindFiles(root, exclude)
	if err != nil {
		return nil, err
	}
	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, nil
}

// Definitions returns the root's direct children with the given tag, in
// document order.
func (f *File) Definitions(kind string) []*Definition {
	var out []*Definition
	for _, el := range f.root.SelectElements(kind) {
		out = append(out, newDefinition(el, f.Path))
	}
	return out
}
