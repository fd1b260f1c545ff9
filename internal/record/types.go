// Package record defines the sparse output records emitted for each
// definition kind.
//
// Every optional field is a pointer, slice or map tagged omitempty: a key is
// present in the emitted JSON iff its value is non-nil, a non-empty slice or
// a non-empty map. Fields with a defined default (displayOrder, metabolism,
// complexity, commonality, degree) are plain values and always present.
package record

import "github.com/cory-johannsen/pawnplanner/internal/atlas"

// Color is an RGB color with 0-255 channels. Alpha is always 1.0.
type Color struct {
	R int   `json:"R"`
	G int   `json:"G"`
	B int   `json:"B"`
	A Float `json:"A"`
}

// Backstory is one childhood or adulthood.
type Backstory struct {
	Name         string         `json:"name"`
	Title        *string        `json:"title,omitempty"`
	TitleShort   *string        `json:"titleShort,omitempty"`
	Desc         *string        `json:"desc,omitempty"`
	Skills       map[string]int `json:"skills,omitempty"`
	DisabledWork []string       `json:"disabledWork,omitempty"`
	RequiredWork []string       `json:"requiredWork,omitempty"`
	Traits       map[string]int `json:"traits,omitempty"`

	// Slot selects the dataset ("Childhood" or "Adulthood"); not emitted.
	Slot string `json:"-"`
}

// Gene is a gene definition or a synthetic aptitude/drug gene.
type Gene struct {
	Name              string           `json:"name"`
	Label             *string          `json:"label,omitempty"`
	LabelShortAdj     *string          `json:"labelShortAdj,omitempty"`
	Desc              *string          `json:"desc,omitempty"`
	Icon              *atlas.Offset    `json:"iconPath,omitempty"`
	IconColor         *Color           `json:"iconColor,omitempty"`
	DisplayCategory   *string          `json:"displayCategory,omitempty"`
	DisplayOrder      int              `json:"displayOrder"`
	Metabolism        int              `json:"metabolism"`
	Complexity        int              `json:"complexity"`
	ExclusionTags     []string         `json:"exclusionTags,omitempty"`
	Skills            map[string]int   `json:"skills,omitempty"`
	Abilities         []string         `json:"abilities,omitempty"`
	Traits            map[string]int   `json:"traits,omitempty"`
	StatOffsets       map[string]Float `json:"statOffsets,omitempty"`
	StatFactors       map[string]Float `json:"statFactors,omitempty"`
	DamageFactors     map[string]Float `json:"damageFactors,omitempty"`
	DisabledWork      []string         `json:"disabledWork,omitempty"`
	EndogeneCategory  *string          `json:"endogeneCategory,omitempty"`
	SkinColor         *Color           `json:"skinColor,omitempty"`
	SkinColorOverride *Color           `json:"skinColorOverride,omitempty"`
	HairColor         *Color           `json:"hairColor,omitempty"`
	BodyType          *string          `json:"bodyType,omitempty"`
	Melanin           *Float           `json:"melanin,omitempty"`

	// IconPath is the logical icon name, replaced by Icon once packed.
	IconPath string `json:"-"`
}

// TraitDegree is one tier of a trait.
type TraitDegree struct {
	Label            *string          `json:"label,omitempty"`
	Desc             *string          `json:"desc,omitempty"`
	Degree           int              `json:"degree"`
	Skills           map[string]int   `json:"skills,omitempty"`
	StatOffsets      map[string]Float `json:"statOffsets,omitempty"`
	StatFactors      map[string]Float `json:"statFactors,omitempty"`
	MeditationTypes  []string         `json:"meditationTypes,omitempty"`
	HungerRateFactor *Float           `json:"hungerRateFactor,omitempty"`
}

// DegreeTable maps a degree value to its data.
type DegreeTable map[int]TraitDegree

// Trait is a trait definition with its degrees.
type Trait struct {
	Name              string   `json:"name"`
	Commonality       Float    `json:"commonality"`
	ConflictingTraits []string `json:"conflictingTraits,omitempty"`
	ExclusionTags     []string `json:"exclusionTags,omitempty"`
	ForcedFlames      []string `json:"forcedFlames,omitempty"`
	ConflictingFlames []string `json:"conflictingFlames,omitempty"`
	DisabledWork      []string `json:"disabledWork,omitempty"`
	RequiredWork      []string `json:"requiredWork,omitempty"`
	// Degrees is nil when the trait has no degree data and empty tables are
	// not kept; a non-nil empty table is emitted as {}.
	Degrees *DegreeTable `json:"degrees,omitempty"`
}

// HeadType is a head shape.
type HeadType struct {
	Name              string        `json:"name"`
	GraphicPath       *string       `json:"graphicPath,omitempty"`
	Graphic           *atlas.Offset `json:"graphic,omitempty"`
	Gender            *string       `json:"gender,omitempty"`
	RandomChosen      *string       `json:"randomChosen,omitempty"`
	HairMeshSize      []Float       `json:"hairMeshSize,omitempty"`
	BeardMeshSize     []Float       `json:"beardMeshSize,omitempty"`
	BeardOffset       []Float       `json:"beardOffset,omitempty"`
	BeardOffsetXEast  *Float        `json:"beardOffsetXEast,omitempty"`
	EyeOffsetEastWest []Float       `json:"eyeOffsetEastWest,omitempty"`
	Narrow            *string       `json:"narrow,omitempty"`
}

// HairType is a hair or beard style.
type HairType struct {
	Name              string        `json:"name"`
	Label             *string       `json:"label,omitempty"`
	GraphicPath       *string       `json:"graphicPath,omitempty"`
	Graphic           *atlas.Offset `json:"graphic,omitempty"`
	Gender            *string       `json:"gender,omitempty"`
	Category          *string       `json:"category,omitempty"`
	StyleTags         []string      `json:"styleTags,omitempty"`
	OffsetNarrowEast  []Float       `json:"offsetNarrowEast,omitempty"`
	OffsetNarrowSouth []Float       `json:"offsetNarrowSouth,omitempty"`
}
