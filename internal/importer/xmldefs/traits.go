package xmldefs

import (
	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/emit"
	"github.com/cory-johannsen/pawnplanner/internal/extract"
	"github.com/cory-johannsen/pawnplanner/internal/importer"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

var _ importer.Job = (*TraitJob)(nil)

// TraitJob writes traits with their degree tables.
type TraitJob struct {
	Exclude []string
	Options extract.TraitOptions
}

// Name implements importer.Job.
func (j *TraitJob) Name() string { return "traits" }

// Build implements importer.Job.
func (j *TraitJob) Build(defsDir string) (*importer.Output, error) {
	found, err := load(defsDir, j.Exclude, KindTrait)
	if err != nil {
		return nil, err
	}
	traits, err := extractAll(found, func(d *defs.Definition) (*record.Trait, error) {
		return extract.Trait(d, j.Options)
	})
	if err != nil {
		return nil, err
	}
	return &importer.Output{
		Modules: []emit.Module{
			{File: "traits", Datasets: []emit.Dataset{{Var: "traits", Type: "Trait", Records: traits}}},
		},
	}, nil
}
