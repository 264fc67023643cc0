// Package catalogfile reads the pricing catalog from a YAML document.
package catalogfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount is a decimal written as a plain YAML number, e.g. 2500 or 1.15.
type Amount struct {
	decimal.Decimal
}

func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", n.Line)
	}
	d, err := decimal.NewFromString(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", n.Line, n.Value)
	}
	a.Decimal = d
	return nil
}

type projectTypeDoc struct {
	Code              string            `yaml:"code"`
	Name              string            `yaml:"name"`
	Description       string            `yaml:"description"`
	DefaultComplexity string            `yaml:"default_complexity"`
	BasePrices        map[string]Amount `yaml:"base_prices"`
	Active            *bool             `yaml:"active"`
}

type multiplierDoc struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Multiplier  Amount `yaml:"multiplier"`
	Active      *bool  `yaml:"active"`
}

type featureDoc struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	BasePrice   Amount `yaml:"base_price"`
	Active      *bool  `yaml:"active"`
}

type technologyDoc struct {
	Code        string `yaml:"code"`
	Name        string `yaml:"name"`
	PriceImpact Amount `yaml:"price_impact"`
	Active      *bool  `yaml:"active"`
}

// Document is the on-disk layout of configs/catalog.yaml.
type Document struct {
	ProjectTypes []projectTypeDoc `yaml:"project_types"`
	Categories   []multiplierDoc  `yaml:"categories"`
	Industries   []multiplierDoc  `yaml:"industries"`
	Features     []featureDoc     `yaml:"features"`
	Technologies []technologyDoc  `yaml:"technologies"`
	Timelines    []multiplierDoc  `yaml:"timelines"`
}

// Load reads and validates the catalog at path.
func Load(path string) (entities.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return entities.Catalog{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog document. Unknown keys are rejected and records
// without an explicit active flag are active.
func Decode(r io.Reader) (entities.Catalog, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return entities.Catalog{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return entities.Catalog{}, err
	}

	c := doc.toCatalog()
	if err := c.Validate(); err != nil {
		return entities.Catalog{}, err
	}
	return c, nil
}

func active(b *bool) bool {
	return b == nil || *b
}

func (d Document) toCatalog() entities.Catalog {
	var c entities.Catalog
	for _, t := range d.ProjectTypes {
		prices := make(map[entities.ComplexityLevel]decimal.Decimal, len(t.BasePrices))
		for level, p := range t.BasePrices {
			prices[entities.ComplexityLevel(level)] = p.Decimal
		}
		c.ProjectTypes = append(c.ProjectTypes, entities.ProjectTypeDef{
			Code:                  t.Code,
			Name:                  t.Name,
			Description:           t.Description,
			BasePriceByComplexity: prices,
			DefaultComplexity:     entities.ComplexityLevel(t.DefaultComplexity),
			Active:                active(t.Active),
		})
	}
	for _, x := range d.Categories {
		c.Categories = append(c.Categories, entities.ProjectCategoryDef{
			Code: x.Code, Name: x.Name, Description: x.Description, PriceMultiplier: x.Multiplier.Decimal, Active: active(x.Active),
		})
	}
	for _, x := range d.Industries {
		c.Industries = append(c.Industries, entities.IndustryDef{
			Code: x.Code, Name: x.Name, Description: x.Description, PriceMultiplier: x.Multiplier.Decimal, Active: active(x.Active),
		})
	}
	for _, x := range d.Features {
		c.Features = append(c.Features, entities.FeatureDef{
			Code: x.Code, Name: x.Name, Description: x.Description, BasePrice: x.BasePrice.Decimal, Active: active(x.Active),
		})
	}
	for _, x := range d.Technologies {
		c.Technologies = append(c.Technologies, entities.TechnologyDef{
			Code: x.Code, Name: x.Name, PriceImpact: x.PriceImpact.Decimal, Active: active(x.Active),
		})
	}
	for _, x := range d.Timelines {
		c.Timelines = append(c.Timelines, entities.TimelineDef{
			Code: x.Code, Name: x.Name, PriceMultiplier: x.Multiplier.Decimal, Active: active(x.Active),
		})
	}
	return c
}
