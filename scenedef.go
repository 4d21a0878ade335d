package unitrates

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneDef describes one shopping scene: what is sold, at what unit rate,
// in how many bags of what size, and which question quantities to ask.
type SceneDef struct {
	Name     string  `yaml:"name"`
	Singular string  `yaml:"singular"`
	Plural   string  `yaml:"plural"`
	UnitRate float64 `yaml:"unitRate"`

	NumberOfBags   int     `yaml:"numberOfBags"`
	QuantityPerBag float64 `yaml:"quantityPerBag"`
	// OpenBags makes bags release individual items when put on the scale.
	OpenBags bool `yaml:"openBags"`

	NumeratorFormat     string  `yaml:"numeratorFormat"`
	DenominatorUnits    string  `yaml:"denominatorUnits"`
	DenominatorDecimals int     `yaml:"denominatorDecimals"`
	FixedAxisMax        float64 `yaml:"fixedAxisMax"`

	QuestionQuantities [][]float64 `yaml:"questionQuantities"`
}

// CategoryDef groups related scenes.
type CategoryDef struct {
	Name   string     `yaml:"name"`
	Scenes []SceneDef `yaml:"scenes"`
}

// Catalog is a parsed scene definition document.
type Catalog struct {
	Categories []CategoryDef `yaml:"categories"`
}

//go:embed scenes.yaml
var defaultScenesYAML []byte

// DefaultCatalog returns the built-in scenes.
func DefaultCatalog() *Catalog {
	c, err := LoadCatalog(defaultScenesYAML)
	if err != nil {
		panic("unitrates: built-in scenes: " + err.Error())
	}
	return c
}

// LoadCatalog parses a YAML (or JSON) scene document, fills defaults, and
// validates every scene.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse scenes: %w", err)
	}
	if len(c.Categories) == 0 {
		return nil, errors.New("parse scenes: no categories")
	}
	seen := make(map[string]bool)
	for ci := range c.Categories {
		for si := range c.Categories[ci].Scenes {
			def := &c.Categories[ci].Scenes[si]
			def.applyDefaults()
			if err := def.Validate(); err != nil {
				return nil, fmt.Errorf("scene %q: %w", def.Name, err)
			}
			if seen[def.Name] {
				return nil, fmt.Errorf("scene %q: duplicate name", def.Name)
			}
			seen[def.Name] = true
		}
	}
	return &c, nil
}

// Scene returns the scene with the given name (case-insensitive).
func (c *Catalog) Scene(name string) (SceneDef, bool) {
	for _, cat := range c.Categories {
		for _, def := range cat.Scenes {
			if strings.EqualFold(def.Name, name) {
				return def, true
			}
		}
	}
	return SceneDef{}, false
}

// SceneNames lists every scene name in document order.
func (c *Catalog) SceneNames() []string {
	var names []string
	for _, cat := range c.Categories {
		for _, def := range cat.Scenes {
			names = append(names, def.Name)
		}
	}
	return names
}

func (d *SceneDef) applyDefaults() {
	if d.Plural == "" {
		d.Plural = d.Name
	}
	if d.Singular == "" {
		d.Singular = d.Plural
	}
	if d.NumeratorFormat == "" {
		d.NumeratorFormat = "${{value}}"
	}
	if d.DenominatorUnits == "" {
		d.DenominatorUnits = d.Plural
	}
	if d.FixedAxisMax == 0 {
		d.FixedAxisMax = float64(d.NumberOfBags) * d.QuantityPerBag
	}
}

// Validate reports the first problem with d.
func (d SceneDef) Validate() error {
	switch {
	case d.Name == "":
		return errors.New("name is required")
	case d.UnitRate <= 0:
		return fmt.Errorf("unitRate %v must be positive", d.UnitRate)
	case d.NumberOfBags <= 0:
		return fmt.Errorf("numberOfBags %d must be positive", d.NumberOfBags)
	case d.QuantityPerBag <= 0:
		return fmt.Errorf("quantityPerBag %v must be positive", d.QuantityPerBag)
	case d.OpenBags && d.QuantityPerBag != float64(int(d.QuantityPerBag)):
		return fmt.Errorf("openBags requires a whole quantityPerBag, got %v", d.QuantityPerBag)
	case d.DenominatorDecimals < 0:
		return fmt.Errorf("denominatorDecimals %d must not be negative", d.DenominatorDecimals)
	}
	for i, set := range d.QuestionQuantities {
		if len(set) == 0 {
			return fmt.Errorf("questionQuantities[%d] is empty", i)
		}
	}
	return nil
}

// NumeratorAxis is the cost axis for d.
func (d SceneDef) NumeratorAxis() Axis {
	return Axis{
		UnitsLabel:  "Cost",
		MaxDigits:   4,
		MaxDecimals: 2,
		ValueFormat: d.NumeratorFormat,
	}
}

// DenominatorAxis is the quantity axis for d.
func (d SceneDef) DenominatorAxis() Axis {
	return Axis{
		UnitsLabel:  capitalize(d.DenominatorUnits),
		MaxDigits:   4,
		MaxDecimals: d.DenominatorDecimals,
		TrimZeros:   true,
		ValueFormat: valuePlaceholder,
	}
}

// ItemsPerBag is the number of individual items in an opened bag, or 0.
func (d SceneDef) ItemsPerBag() int {
	if !d.OpenBags {
		return 0
	}
	return int(d.QuantityPerBag)
}
