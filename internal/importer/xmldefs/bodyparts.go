package xmldefs

import (
	"github.com/cory-johannsen/pawnplanner/internal/atlas"
	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/emit"
	"github.com/cory-johannsen/pawnplanner/internal/extract"
	"github.com/cory-johannsen/pawnplanner/internal/importer"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

var _ importer.Job = (*BodyPartJob)(nil)

// BodyPartJob writes head, hair and beard types into one module. When
// Atlas.Dir is set their graphics are packed and each record gains a
// graphic offset; head graphics use the south-facing frame.
type BodyPartJob struct {
	Exclude []string
	Atlas   AtlasOptions
}

// Name implements importer.Job.
func (j *BodyPartJob) Name() string { return "bodyparts" }

// Build implements importer.Job.
func (j *BodyPartJob) Build(defsDir string) (*importer.Output, error) {
	files, err := defs.Load(defsDir, j.Exclude)
	if err != nil {
		return nil, err
	}
	heads, err := collectExtract(files, KindHeadType, extract.HeadType)
	if err != nil {
		return nil, err
	}
	hairs, err := collectExtract(files, KindHair, extract.HairType)
	if err != nil {
		return nil, err
	}
	beards, err := collectExtract(files, KindBeard, extract.HairType)
	if err != nil {
		return nil, err
	}

	out := &importer.Output{
		Modules: []emit.Module{{
			File: "bodyparts",
			Datasets: []emit.Dataset{
				{Var: "headTypes", Type: "HeadType", Records: heads},
				{Var: "hairTypes", Type: "HairBeardType", Records: hairs},
				{Var: "beardTypes", Type: "HairBeardType", Records: beards},
			},
		}},
		Scripts: importer.DocsScripts,
	}
	if j.Atlas.Dir == "" {
		return out, nil
	}

	styles := append(append([]*record.HairType{}, hairs...), beards...)
	var req atlas.Requests
	for _, h := range heads {
		if h.GraphicPath != nil {
			req.Add(extract.HeadGraphicKey(*h.GraphicPath))
		}
	}
	for _, h := range styles {
		if h.GraphicPath != nil {
			req.Add(*h.GraphicPath)
		}
	}
	sheet, err := atlas.Pack(j.Atlas.Dir, j.Atlas.Tile, req.Names())
	if err != nil {
		return nil, err
	}
	for _, h := range heads {
		if h.GraphicPath == nil {
			continue
		}
		if at, ok := sheet.Offsets[extract.HeadGraphicKey(*h.GraphicPath)]; ok {
			h.Graphic = &at
		}
	}
	for _, h := range styles {
		if h.GraphicPath == nil {
			continue
		}
		if at, ok := sheet.Offsets[*h.GraphicPath]; ok {
			h.Graphic = &at
		}
	}
	out.Sheets = []importer.SheetOutput{{File: j.Atlas.File, Sheet: sheet}}
	return out, nil
}

func collectExtract[T any](files []*defs.File, kind string, fn func(*defs.Definition) (T, error)) ([]T, error) {
	found, err := collect(files, kind)
	if err != nil {
		return nil, err
	}
	return extractAll(found, fn)
}
