package importer

import (
	"reflect"

	"github.com/cory-johannsen/pawnplanner/internal/atlas"
	"github.com/cory-johannsen/pawnplanner/internal/emit"
)

// ScriptDir selects which output directory receives a module's script file.
type ScriptDir int

const (
	// PageScripts writes the .js file to output.page_dir.
	PageScripts ScriptDir = iota
	// DocsScripts writes the .js file to output.docs_dir.
	DocsScripts
)

// SheetOutput is a packed icon atlas to be written to output.page_dir.
type SheetOutput struct {
	File  string
	Sheet *atlas.Sheet
}

// Output is everything one job produces. Nothing is written until the job
// has built all of it.
type Output struct {
	Modules []emit.Module
	Scripts ScriptDir
	Sheets  []SheetOutput
}

// Records returns the total number of records across all modules.
func (o *Output) Records() int {
	n := 0
	for _, m := range o.Modules {
		for _, ds := range m.Datasets {
			if v := reflect.ValueOf(ds.Records); v.Kind() == reflect.Slice {
				n += v.Len()
			}
		}
	}
	return n
}

// Job extracts one family of definitions from a definition directory.
//
// Precondition: defsDir must be a readable directory.
// Postcondition: returns a complete Output, or a non-nil error and no Output.
type Job interface {
	Name() string
	Build(defsDir string) (*Output, error)
}
