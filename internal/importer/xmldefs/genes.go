package xmldefs

import (
	"errors"

	"github.com/cory-johannsen/pawnplanner/internal/atlas"
	"github.com/cory-johannsen/pawnplanner/internal/emit"
	"github.com/cory-johannsen/pawnplanner/internal/extract"
	"github.com/cory-johannsen/pawnplanner/internal/importer"
	"github.com/cory-johannsen/pawnplanner/internal/synth"
)

var _ importer.Job = (*GeneJob)(nil)

// ErrNoGraphics reports a gene run without a graphics directory.
var ErrNoGraphics = errors.New("genes need a graphics directory")

// GeneJob writes declared genes followed by the synthetic aptitude and drug
// genes, and packs every gene icon into one atlas.
type GeneJob struct {
	Exclude []string
	Atlas   AtlasOptions
	Tables  *synth.Tables
}

// Name implements importer.Job.
func (j *GeneJob) Name() string { return "genes" }

// Build implements importer.Job. Each gene's iconPath is replaced with its
// atlas offset; a gene whose icon is not found has no iconPath.
func (j *GeneJob) Build(defsDir string) (*importer.Output, error) {
	if j.Atlas.Dir == "" {
		return nil, ErrNoGraphics
	}
	if j.Tables == nil {
		return nil, errors.New("no synthetic gene tables")
	}
	found, err := load(defsDir, j.Exclude, KindGene)
	if err != nil {
		return nil, err
	}
	genes, err := extractAll(found, extract.Gene)
	if err != nil {
		return nil, err
	}
	genes = append(genes, j.Tables.Genes()...)

	var req atlas.Requests
	for _, g := range genes {
		req.Add(g.IconPath)
	}
	sheet, err := atlas.Pack(j.Atlas.Dir, j.Atlas.Tile, req.Names())
	if err != nil {
		return nil, err
	}
	for _, g := range genes {
		if at, ok := sheet.Offsets[g.IconPath]; ok {
			g.Icon = &at
		}
	}

	return &importer.Output{
		Modules: []emit.Module{
			{File: "genes", Datasets: []emit.Dataset{{Var: "genes", Type: "Gene", Records: genes}}},
		},
		Sheets: []importer.SheetOutput{{File: j.Atlas.File, Sheet: sheet}},
	}, nil
}
