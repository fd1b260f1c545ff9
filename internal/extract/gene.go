package extract

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/normalize"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// Gene extracts a <GeneDef>. The icon path is left in IconPath for the
// atlas stage to replace.
func Gene(d *defs.Definition) (*record.Gene, error) {
	g, err := gene(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d, err)
	}
	return g, nil
}

func gene(d *defs.Definition) (*record.Gene, error) {
	var (
		g   record.Gene
		err error
		n   = d.Node
	)
	if g.Name, err = defName(d); err != nil {
		return nil, err
	}
	if g.Label, err = optional(n, "label", normalize.String); err != nil {
		return nil, err
	}
	if g.LabelShortAdj, err = optional(n, "labelShortAdj", normalize.String); err != nil {
		return nil, err
	}
	desc, err := optional(n, "description", normalize.String)
	if err != nil {
		return nil, err
	}
	g.Desc = cleaned(desc, normalize.GeneText)
	if g.IconPath, err = orDefault(n, "iconPath", "", normalize.String); err != nil {
		return nil, err
	}
	if g.IconColor, err = optional(n, "iconColor", normalize.Color); err != nil {
		return nil, err
	}
	if g.DisplayCategory, err = optional(n, "displayCategory", normalize.String); err != nil {
		return nil, err
	}
	if g.DisplayOrder, err = orDefault(n, "displayOrderInCategory", 0, normalize.Int); err != nil {
		return nil, err
	}
	if g.Metabolism, err = orDefault(n, "biostatMet", 0, normalize.Int); err != nil {
		return nil, err
	}
	if g.Complexity, err = orDefault(n, "biostatCpx", 1, normalize.Int); err != nil {
		return nil, err
	}
	if g.ExclusionTags, err = items(n, "./exclusionTags/li"); err != nil {
		return nil, err
	}
	if g.Abilities, err = items(n, "./abilities/li"); err != nil {
		return nil, err
	}
	if g.Traits, err = forcedTraits(n); err != nil {
		return nil, err
	}
	if g.StatOffsets, err = floatMap(n, "statOffsets"); err != nil {
		return nil, err
	}
	if g.StatFactors, err = floatMap(n, "statFactors"); err != nil {
		return nil, err
	}
	if g.DamageFactors, err = floatMap(n, "damageFactors"); err != nil {
		return nil, err
	}
	if g.DisabledWork, err = workTags(n, "disabledWorkTags"); err != nil {
		return nil, err
	}
	if g.EndogeneCategory, err = optional(n, "endogeneCategory", normalize.String); err != nil {
		return nil, err
	}
	if g.SkinColor, err = optional(n, "skinColorBase", normalize.Color); err != nil {
		return nil, err
	}
	if g.SkinColorOverride, err = optional(n, "skinColorOverride", normalize.Color); err != nil {
		return nil, err
	}
	if g.HairColor, err = optional(n, "hairColorOverride", normalize.Color); err != nil {
		return nil, err
	}
	if g.BodyType, err = optional(n, "bodyType", normalize.String); err != nil {
		return nil, err
	}
	if g.Melanin, err = optional(n, "minMelanin", normalize.Float); err != nil {
		return nil, err
	}
	return &g, nil
}
