// Package synth generates the aptitude and drug genes the game builds in
// code rather than declaring in definition files.
package synth

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/pawnplanner/internal/record"
)

//go:embed tables.yaml
var tablesYAML []byte

// Display categories of the generated genes.
const (
	CategoryAptitudes = "Aptitudes"
	CategoryDrugs     = "Drugs"
)

// AptitudeLevel is one tier of skill aptitude.
type AptitudeLevel struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Offset     int    `yaml:"offset"`
	Metabolism int    `yaml:"metabolism"`
	Complexity int    `yaml:"complexity"`
}

// Drug is a chemical with dependency and resistance genes.
type Drug struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	// Social drugs carry a smaller metabolism cost.
	Social bool `yaml:"social"`
}

// DrugLevel is one dependency or resistance tier.
type DrugLevel struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Complexity int    `yaml:"complexity"`
	Metabolism struct {
		Social int `yaml:"social"`
		Other  int `yaml:"other"`
	} `yaml:"metabolism"`
	// Description may reference {{drug}} and {{lower}} (the lowercased drug label).
	Description string `yaml:"description"`
}

// Tables holds the generator inputs.
type Tables struct {
	Skills         []string        `yaml:"skills"`
	AptitudeLevels []AptitudeLevel `yaml:"aptitude_levels"`
	Drugs          []Drug          `yaml:"drugs"`
	DrugLevels     []DrugLevel     `yaml:"drug_levels"`
}

// LoadTables parses the embedded generator tables.
//
// Postcondition: returns non-empty tables or a non-nil error.
func LoadTables() (*Tables, error) {
	return ParseTables(tablesYAML)
}

// ParseTables parses generator tables from YAML.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing gene tables: %w", err)
	}
	if len(t.Skills) == 0 || len(t.AptitudeLevels) == 0 || len(t.Drugs) == 0 || len(t.DrugLevels) == 0 {
		return nil, fmt.Errorf("gene tables: skills, aptitude_levels, drugs and drug_levels must all be non-empty")
	}
	return &t, nil
}

// Genes returns every synthetic gene: aptitudes, then drugs.
func (t *Tables) Genes() []*record.Gene {
	return append(t.Aptitudes(), t.DrugGenes()...)
}

// Aptitudes returns one gene per skill and aptitude level, skill-major.
//
// Postcondition: displayOrder runs 0..n-1 in emitted order.
func (t *Tables) Aptitudes() []*record.Gene {
	out := make([]*record.Gene, 0, len(t.Skills)*len(t.AptitudeLevels))
	for _, skill := range t.Skills {
		for _, lvl := range t.AptitudeLevels {
			out = append(out, &record.Gene{
				Name:            fmt.Sprintf("Aptitude%s_%s", lvl.ID, skill),
				Label:           record.Ptr(lvl.Label + " " + skill),
				Desc:            record.Ptr(aptitudeDesc(skill, lvl.Offset)),
				IconPath:        fmt.Sprintf("UI/Icons/Genes/Skills/%s/%s", skill, lvl.ID),
				DisplayCategory: record.Ptr(CategoryAptitudes),
				DisplayOrder:    len(out),
				Metabolism:      lvl.Metabolism,
				Complexity:      lvl.Complexity,
				ExclusionTags:   []string{"Aptitude" + skill},
				Skills:          map[string]int{skill: lvl.Offset},
			})
		}
	}
	return out
}

func aptitudeDesc(skill string, offset int) string {
	verb, amount := "increased", offset
	if offset < 0 {
		verb, amount = "reduced", -offset
	}
	desc := fmt.Sprintf("The carrier's aptitude in %s is %s by %d. Aptitude acts like an offset on skill level.", skill, verb, amount)
	if offset < 0 {
		desc += " Additionally, all passion is removed from " + skill + "."
	}
	return desc
}

// DrugGenes returns one gene per drug and drug level, drug-major.
//
// Postcondition: displayOrder runs 0..n-1 in emitted order.
func (t *Tables) DrugGenes() []*record.Gene {
	out := make([]*record.Gene, 0, len(t.Drugs)*len(t.DrugLevels))
	for _, drug := range t.Drugs {
		for _, lvl := range t.DrugLevels {
			met := lvl.Metabolism.Other
			if drug.Social {
				met = lvl.Metabolism.Social
			}
			out = append(out, &record.Gene{
				Name:            lvl.ID + "_" + drug.ID,
				Label:           record.Ptr(drug.Label + " " + lvl.Label),
				Desc:            record.Ptr(drugDesc(lvl.Description, drug.Label)),
				IconPath:        fmt.Sprintf("UI/Icons/Genes/Chemicals/%s/%s", drug.ID, lvl.ID),
				DisplayCategory: record.Ptr(CategoryDrugs),
				DisplayOrder:    len(out),
				Metabolism:      met,
				Complexity:      lvl.Complexity,
				ExclusionTags:   []string{"Drug" + drug.ID},
			})
		}
	}
	return out
}

func drugDesc(template, label string) string {
	return strings.NewReplacer(
		"{{drug}}", label,
		"{{lower}}", strings.ToLower(label),
	).Replace(template)
}
