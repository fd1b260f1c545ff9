package extract

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/normalize"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// TraitOptions selects output conventions for traits.
type TraitOptions struct {
	// KeepEmptyDegrees emits an empty degrees table instead of omitting it.
	KeepEmptyDegrees bool
	// MergeExclusionTags appends exclusion tags to conflictingTraits and
	// conflicting passions to forcedFlames, as the legacy data files did.
	MergeExclusionTags bool
}

// Trait extracts a <TraitDef> and its <degreeDatas>. When several degrees
// share a value the first listed wins, so a definition's own degree
// overrides one inherited from its template.
func Trait(d *defs.Definition, opts TraitOptions) (*record.Trait, error) {
	t, err := trait(d, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d, err)
	}
	return t, nil
}

func trait(d *defs.Definition, opts TraitOptions) (*record.Trait, error) {
	var (
		t   record.Trait
		err error
	)
	if t.Name, err = defName(d); err != nil {
		return nil, err
	}
	if t.Commonality, err = orDefault(d.Node, "commonality", 1.0, normalize.Float); err != nil {
		return nil, err
	}
	if t.ConflictingTraits, err = items(d.Node, "./conflictingTraits/li"); err != nil {
		return nil, err
	}
	if t.ExclusionTags, err = items(d.Node, "./exclusionTags/li"); err != nil {
		return nil, err
	}
	if t.ForcedFlames, err = items(d.Node, "./forcedPassions/li"); err != nil {
		return nil, err
	}
	if t.ConflictingFlames, err = items(d.Node, "./conflictingPassions/li"); err != nil {
		return nil, err
	}
	if opts.MergeExclusionTags {
		t.ConflictingTraits = append(t.ConflictingTraits, t.ExclusionTags...)
		t.ForcedFlames = append(t.ForcedFlames, t.ConflictingFlames...)
		t.ExclusionTags, t.ConflictingFlames = nil, nil
	}
	if t.DisabledWork, err = workTags(d.Node, "disabledWorkTags"); err != nil {
		return nil, err
	}
	if t.RequiredWork, err = workTags(d.Node, "requiredWorkTags"); err != nil {
		return nil, err
	}

	degrees := make(record.DegreeTable)
	for i, li := range d.Find("./degreeDatas/li") {
		deg, err := TraitDegree(li)
		if err != nil {
			return nil, fmt.Errorf("degreeDatas[%d]: %w", i, err)
		}
		setFirst(degrees, deg.Degree, deg)
	}
	if len(degrees) > 0 || opts.KeepEmptyDegrees {
		t.Degrees = &degrees
	}
	return &t, nil
}

// TraitDegree extracts one <degreeDatas><li> entry.
func TraitDegree(n defs.Node) (record.TraitDegree, error) {
	var (
		deg record.TraitDegree
		err error
	)
	if deg.Label, err = optional(n, "label", normalize.String); err != nil {
		return deg, err
	}
	desc, err := optional(n, "description", normalize.String)
	if err != nil {
		return deg, err
	}
	deg.Desc = cleaned(desc, normalize.DegreeText)
	if deg.Degree, err = orDefault(n, "degree", 0, normalize.Int); err != nil {
		return deg, err
	}
	if deg.Skills, err = skillGains(n); err != nil {
		return deg, err
	}
	if deg.StatOffsets, err = floatMap(n, "statOffsets"); err != nil {
		return deg, err
	}
	if deg.StatFactors, err = floatMap(n, "statFactors"); err != nil {
		return deg, err
	}
	if deg.MeditationTypes, err = items(n, "./allowedMeditationFocusTypes/li"); err != nil {
		return deg, err
	}
	if deg.HungerRateFactor, err = optional(n, "hungerRateFactor", normalize.Float); err != nil {
		return deg, err
	}
	return deg, nil
}
