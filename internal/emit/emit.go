// Package emit renders record datasets as the data modules and script files
// the planner page loads.
package emit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// Dataset is one named array of records.
type Dataset struct {
	// Var is the variable the array is bound to, e.g. "traits".
	Var string
	// Type is the element type named in the script file's type annotation.
	Type string
	// Records is a slice of records.
	Records any
}

// Module is a set of datasets written together to <File>.ts and <File>.js.
type Module struct {
	File     string
	Datasets []Dataset
}

// Rendered holds the two encodings of a module.
type Rendered struct {
	TS []byte
	JS []byte
}

// Render encodes every dataset once and wraps the same JSON in both forms:
//
//	export var <var> = <json>;
//
// for the data module and
//
//	/** @type { <Type>[] } */
//	var <var> = <json>;
//
// for the script file.
//
// Precondition: each dataset has a non-empty Var and Type.
// Postcondition: the JSON in TS and JS is byte-identical per dataset.
func Render(m Module) (Rendered, error) {
	var ts, js bytes.Buffer
	for _, ds := range m.Datasets {
		if ds.Var == "" || ds.Type == "" {
			return Rendered{}, fmt.Errorf("module %s: dataset needs a variable name and type", m.File)
		}
		data, err := record.Marshal(orEmpty(ds.Records))
		if err != nil {
			return Rendered{}, fmt.Errorf("encoding %s: %w", ds.Var, err)
		}
		if !json.Valid(data) || data[0] != '[' {
			return Rendered{}, fmt.Errorf("encoding %s: records must encode as a JSON array", ds.Var)
		}
		fmt.Fprintf(&ts, "export var %s = %s;\n", ds.Var, data)
		fmt.Fprintf(&js, "/** @type { %s[] } */\nvar %s = %s;\n", ds.Type, ds.Var, data)
	}
	return Rendered{TS: ts.Bytes(), JS: js.Bytes()}, nil
}

// orEmpty keeps a nil slice from encoding as null.
func orEmpty(records any) any {
	if records == nil {
		return []struct{}{}
	}
	if v := reflect.ValueOf(records); v.Kind() == reflect.Slice && v.IsNil() {
		return []struct{}{}
	}
	return records
}

// Write renders m and writes <dataDir>/<File>.ts and <scriptDir>/<File>.js,
// creating both directories.
//
// Postcondition: returns the written paths in that order, or an error and no
// partial module when rendering fails.
func Write(m Module, dataDir, scriptDir string) ([]string, error) {
	out, err := Render(m)
	if err != nil {
		return nil, err
	}
	targets := []struct {
		dir, ext string
		data     []byte
	}{
		{dataDir, ".ts", out.TS},
		{scriptDir, ".js", out.JS},
	}
	paths := make([]string, 0, len(targets))
	for _, tgt := range targets {
		if err := os.MkdirAll(tgt.dir, 0755); err != nil {
			return paths, fmt.Errorf("creating output directory %s: %w", tgt.dir, err)
		}
		path := filepath.Join(tgt.dir, m.File+tgt.ext)
		if err := os.WriteFile(path, tgt.data, 0644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
