package entities

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ComplexityLevel is the closed set of tiers a project type is priced at.
type ComplexityLevel string

const (
	ComplexitySimple      ComplexityLevel = "simple"
	ComplexityModerate    ComplexityLevel = "moderate"
	ComplexityComplex     ComplexityLevel = "complex"
	ComplexityVeryComplex ComplexityLevel = "very_complex"
)

// ComplexityLevels lists every tier in ascending order.
var ComplexityLevels = []ComplexityLevel{
	ComplexitySimple,
	ComplexityModerate,
	ComplexityComplex,
	ComplexityVeryComplex,
}

var ErrUnknownComplexity = errors.New("unknown complexity level")

// ParseComplexityLevel accepts the canonical tier names, case-insensitively.
// An empty string is not a level; callers treat it as "not selected".
func ParseComplexityLevel(s string) (ComplexityLevel, error) {
	v := ComplexityLevel(strings.ToLower(strings.TrimSpace(s)))
	if v.Valid() {
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownComplexity, s)
}

func (c ComplexityLevel) Valid() bool {
	for _, l := range ComplexityLevels {
		if c == l {
			return true
		}
	}
	return false
}

// ProjectTypeDef is a priced project type (website, mobile app, ...).
//
// Invariant: an active type defines a base price for every ComplexityLevel.
type ProjectTypeDef struct {
	Code                  string
	Name                  string
	Description           string
	BasePriceByComplexity map[ComplexityLevel]decimal.Decimal
	DefaultComplexity     ComplexityLevel
	Active                bool
}

// BasePrice returns the price at level, or at the default tier when level is empty.
func (t ProjectTypeDef) BasePrice(level ComplexityLevel) (decimal.Decimal, bool) {
	if level == "" {
		level = t.DefaultComplexity
	}
	p, ok := t.BasePriceByComplexity[level]
	return p, ok
}

func (t ProjectTypeDef) Validate() error {
	var errs []error
	if strings.TrimSpace(t.Code) == "" {
		errs = append(errs, errors.New("project type: empty code"))
	}
	if !t.DefaultComplexity.Valid() {
		errs = append(errs, fmt.Errorf("project type %s: invalid default complexity %q", t.Code, t.DefaultComplexity))
	}
	for _, l := range ComplexityLevels {
		p, ok := t.BasePriceByComplexity[l]
		if !ok {
			errs = append(errs, fmt.Errorf("project type %s: missing base price for %s", t.Code, l))
			continue
		}
		if p.IsNegative() {
			errs = append(errs, fmt.Errorf("project type %s: negative base price for %s", t.Code, l))
		}
	}
	return errors.Join(errs...)
}

type ProjectCategoryDef struct {
	Code            string
	Name            string
	Description     string
	PriceMultiplier decimal.Decimal
	Active          bool
}

type IndustryDef struct {
	Code            string
	Name            string
	Description     string
	PriceMultiplier decimal.Decimal
	Active          bool
}

type FeatureDef struct {
	Code        string
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Active      bool
}

// TechnologyDef carries an additive price impact; it may be negative.
type TechnologyDef struct {
	Code        string
	Name        string
	PriceImpact decimal.Decimal
	Active      bool
}

type TimelineDef struct {
	Code            string
	Name            string
	PriceMultiplier decimal.Decimal
	Active          bool
}

// CatalogKind names one of the catalog record families.
type CatalogKind string

const (
	CatalogKindProjectType CatalogKind = "project_type"
	CatalogKindCategory    CatalogKind = "category"
	CatalogKindIndustry    CatalogKind = "industry"
	CatalogKindFeature     CatalogKind = "feature"
	CatalogKindTechnology  CatalogKind = "technology"
	CatalogKindTimeline    CatalogKind = "timeline"
)

// Catalog is a full snapshot of the pricing reference data.
type Catalog struct {
	ProjectTypes []ProjectTypeDef
	Categories   []ProjectCategoryDef
	Industries   []IndustryDef
	Features     []FeatureDef
	Technologies []TechnologyDef
	Timelines    []TimelineDef
}

// Validate checks codes are unique per kind, multipliers are positive,
// feature prices are not negative and active project types are fully priced.
func (c Catalog) Validate() error {
	var errs []error
	seen := map[CatalogKind]map[string]bool{}
	dup := func(kind CatalogKind, code string) {
		if seen[kind] == nil {
			seen[kind] = map[string]bool{}
		}
		if strings.TrimSpace(code) == "" {
			errs = append(errs, fmt.Errorf("%s: empty code", kind))
			return
		}
		if seen[kind][code] {
			errs = append(errs, fmt.Errorf("%s %s: duplicate code", kind, code))
		}
		seen[kind][code] = true
	}
	positive := func(kind CatalogKind, code string, m decimal.Decimal) {
		if !m.IsPositive() {
			errs = append(errs, fmt.Errorf("%s %s: multiplier must be positive", kind, code))
		}
	}

	for _, t := range c.ProjectTypes {
		dup(CatalogKindProjectType, t.Code)
		if t.Active {
			if err := t.Validate(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for _, x := range c.Categories {
		dup(CatalogKindCategory, x.Code)
		positive(CatalogKindCategory, x.Code, x.PriceMultiplier)
	}
	for _, x := range c.Industries {
		dup(CatalogKindIndustry, x.Code)
		positive(CatalogKindIndustry, x.Code, x.PriceMultiplier)
	}
	for _, x := range c.Features {
		dup(CatalogKindFeature, x.Code)
		if x.BasePrice.IsNegative() {
			errs = append(errs, fmt.Errorf("%s %s: negative base price", CatalogKindFeature, x.Code))
		}
	}
	for _, x := range c.Technologies {
		dup(CatalogKindTechnology, x.Code)
	}
	for _, x := range c.Timelines {
		dup(CatalogKindTimeline, x.Code)
		positive(CatalogKindTimeline, x.Code, x.PriceMultiplier)
	}
	return errors.Join(errs...)
}

// ActiveOnly drops every inactive record.
func (c Catalog) ActiveOnly() Catalog {
	out := Catalog{}
	for _, x := range c.ProjectTypes {
		if x.Active {
			out.ProjectTypes = append(out.ProjectTypes, x)
		}
	}
	for _, x := range c.Categories {
		if x.Active {
			out.Categories = append(out.Categories, x)
		}
	}
	for _, x := range c.Industries {
		if x.Active {
			out.Industries = append(out.Industries, x)
		}
	}
	for _, x := range c.Features {
		if x.Active {
			out.Features = append(out.Features, x)
		}
	}
	for _, x := range c.Technologies {
		if x.Active {
			out.Technologies = append(out.Technologies, x)
		}
	}
	for _, x := range c.Timelines {
		if x.Active {
			out.Timelines = append(out.Timelines, x)
		}
	}
	return out
}
