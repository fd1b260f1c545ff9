// Package xmldefs provides importer jobs for each family of XML definitions.
package xmldefs

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/atlas"
	"github.com/cory-johannsen/pawnplanner/internal/defs"
)

// Definition kinds read by the jobs.
const (
	KindBackstory = "BackstoryDef"
	KindTrait     = "TraitDef"
	KindGene      = "GeneDef"
	KindHeadType  = "HeadTypeDef"
	KindHair      = "HairDef"
	KindBeard     = "BeardDef"
)

// AtlasOptions configures icon packing for a job.
type AtlasOptions struct {
	// Dir is the graphics root searched for icons.
	Dir  string
	Tile atlas.TileSize
	// File is the sheet's file name inside the page directory.
	File string
}

func collect(files []*defs.File, kind string) ([]*defs.Definition, error) {
	found, err := defs.Collect(files, kind)
	if err != nil {
		return nil, fmt.Errorf("collecting %s: %w", kind, err)
	}
	return found, nil
}

func load(defsDir string, exclude []string, kind string) ([]*defs.Definition, error) {
	files, err := defs.Load(defsDir, exclude)
	if err != nil {
		return nil, err
	}
	return collect(files, kind)
}

// extractAll applies fn to each definition in order.
func extractAll[T any](found []*defs.Definition, fn func(*defs.Definition) (T, error)) ([]T, error) {
	out := make([]T, 0, len(found))
	for _, d := range found {
		r, err := fn(d)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
