package xmldefs

import (
	"github.com/cory-johannsen/pawnplanner/internal/emit"
	"github.com/cory-johannsen/pawnplanner/internal/extract"
	"github.com/cory-johannsen/pawnplanner/internal/importer"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

var _ importer.Job = (*BackstoryJob)(nil)

// BackstoryJob writes childhoods and adulthoods as two modules. Backstories
// with any other slot are dropped.
type BackstoryJob struct {
	Exclude []string
}

// Name implements importer.Job.
func (j *BackstoryJob) Name() string { return "backstories" }

// Build implements importer.Job.
func (j *BackstoryJob) Build(defsDir string) (*importer.Output, error) {
	found, err := load(defsDir, j.Exclude, KindBackstory)
	if err != nil {
		return nil, err
	}
	all, err := extractAll(found, extract.Backstory)
	if err != nil {
		return nil, err
	}

	childhoods := []*record.Backstory{}
	adulthoods := []*record.Backstory{}
	for _, b := range all {
		switch b.Slot {
		case extract.SlotChildhood:
			childhoods = append(childhoods, b)
		case extract.SlotAdulthood:
			adulthoods = append(adulthoods, b)
		}
	}

	return &importer.Output{
		Modules: []emit.Module{
			{File: "childhoods", Datasets: []emit.Dataset{{Var: "childhoods", Type: "Backstory", Records: childhoods}}},
			{File: "adulthoods", Datasets: []emit.Dataset{{Var: "adulthoods", Type: "Backstory", Records: adulthoods}}},
		},
	}, nil
}
