package extract

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/normalize"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// HeadGraphicKey is the atlas name for a head graphic: the south-facing frame.
func HeadGraphicKey(graphicPath string) string {
	return graphicPath + "_south"
}

// HeadType extracts a <HeadTypeDef>.
func HeadType(d *defs.Definition) (*record.HeadType, error) {
	h, err := headType(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d, err)
	}
	return h, nil
}

func headType(d *defs.Definition) (*record.HeadType, error) {
	var (
		h   record.HeadType
		err error
		n   = d.Node
	)
	if h.Name, err = defName(d); err != nil {
		return nil, err
	}
	if h.GraphicPath, err = optional(n, "graphicPath", normalize.String); err != nil {
		return nil, err
	}
	if h.Gender, err = optional(n, "gender", normalize.String); err != nil {
		return nil, err
	}
	if h.RandomChosen, err = optional(n, "randomChosen", normalize.String); err != nil {
		return nil, err
	}
	if h.HairMeshSize, err = tuple(n, "hairMeshSize"); err != nil {
		return nil, err
	}
	if h.BeardMeshSize, err = tuple(n, "beardMeshSize"); err != nil {
		return nil, err
	}
	if h.BeardOffset, err = tuple(n, "beardOffset"); err != nil {
		return nil, err
	}
	if h.BeardOffsetXEast, err = optional(n, "beardOffsetXEast", normalize.Float); err != nil {
		return nil, err
	}
	if h.EyeOffsetEastWest, err = tuple(n, "eyeOffsetEastWest"); err != nil {
		return nil, err
	}
	if h.Narrow, err = optional(n, "narrow", normalize.String); err != nil {
		return nil, err
	}
	return &h, nil
}

// HairType extracts a <HairDef> or <BeardDef>; both share one shape.
func HairType(d *defs.Definition) (*record.HairType, error) {
	h, err := hairType(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d, err)
	}
	return h, nil
}

func hairType(d *defs.Definition) (*record.HairType, error) {
	var (
		h   record.HairType
		err error
		n   = d.Node
	)
	if h.Name, err = defName(d); err != nil {
		return nil, err
	}
	if h.Label, err = optional(n, "label", normalize.String); err != nil {
		return nil, err
	}
	if h.GraphicPath, err = optional(n, "texPath", normalize.String); err != nil {
		return nil, err
	}
	if h.Gender, err = optional(n, "gender", normalize.String); err != nil {
		return nil, err
	}
	if h.Category, err = optional(n, "category", normalize.String); err != nil {
		return nil, err
	}
	if h.StyleTags, err = items(n, "./styleTags/li"); err != nil {
		return nil, err
	}
	if h.OffsetNarrowEast, err = tuple(n, "offsetNarrowEast"); err != nil {
		return nil, err
	}
	if h.OffsetNarrowSouth, err = tuple(n, "offsetNarrowSouth"); err != nil {
		return nil, err
	}
	return &h, nil
}
