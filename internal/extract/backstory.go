package extract

import (
	"fmt"

	"github.com/cory-johannsen/pawnplanner/internal/defs"
	"github.com/cory-johannsen/pawnplanner/internal/normalize"
	"github.com/cory-johannsen/pawnplanner/internal/record"
)

// Backstory slots.
const (
	SlotChildhood = "Childhood"
	SlotAdulthood = "Adulthood"
)

// Backstory extracts a <BackstoryDef>.
//
// Postcondition: returns a record with Name set, or an error wrapping
// defs.ErrBadInput.
func Backstory(d *defs.Definition) (*record.Backstory, error) {
	b, err := backstory(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d, err)
	}
	return b, nil
}

func backstory(d *defs.Definition) (*record.Backstory, error) {
	var (
		b   record.Backstory
		err error
	)
	if b.Name, err = defName(d); err != nil {
		return nil, err
	}
	if b.Title, err = optional(d.Node, "title", normalize.String); err != nil {
		return nil, err
	}
	if b.TitleShort, err = optional(d.Node, "titleShort", normalize.String); err != nil {
		return nil, err
	}
	desc, err := optional(d.Node, "baseDesc", normalize.String)
	if err != nil {
		return nil, err
	}
	b.Desc = cleaned(desc, normalize.BackstoryText)
	if b.Slot, err = orDefault(d.Node, "slot", "", normalize.String); err != nil {
		return nil, err
	}
	if b.Skills, err = skillGains(d.Node); err != nil {
		return nil, err
	}
	if b.DisabledWork, err = workTags(d.Node, "workDisables"); err != nil {
		return nil, err
	}
	if b.RequiredWork, err = workTags(d.Node, "requiredWorkTags"); err != nil {
		return nil, err
	}
	if b.Traits, err = forcedTraits(d.Node); err != nil {
		return nil, err
	}
	return &b, nil
}
