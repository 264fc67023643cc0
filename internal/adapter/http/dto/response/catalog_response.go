package response

import (
	"vaif_quotes/internal/domain/entities"
)

type ProjectTypeResponse struct {
	Code              string             `json:"code"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	DefaultComplexity string             `json:"defaultComplexity"`
	BasePrices        map[string]float64 `json:"basePrices"`
}

// MultiplierOptionResponse serves categories, industries and timelines.
type MultiplierOptionResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Multiplier  float64 `json:"multiplier"`
}

type FeatureResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice"`
}

type TechnologyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	PriceImpact float64 `json:"priceImpact"`
}

// CatalogResponse lists the options offered by the quote builder.
type CatalogResponse struct {
	ProjectTypes []ProjectTypeResponse      `json:"projectTypes"`
	Categories   []MultiplierOptionResponse `json:"categories"`
	Industries   []MultiplierOptionResponse `json:"industries"`
	Features     []FeatureResponse          `json:"features"`
	Technologies []TechnologyResponse       `json:"technologies"`
	Timelines    []MultiplierOptionResponse `json:"timelines"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	res := CatalogResponse{
		ProjectTypes: make([]ProjectTypeResponse, 0, len(c.ProjectTypes)),
		Categories:   make([]MultiplierOptionResponse, 0, len(c.Categories)),
		Industries:   make([]MultiplierOptionResponse, 0, len(c.Industries)),
		Features:     make([]FeatureResponse, 0, len(c.Features)),
		Technologies: make([]TechnologyResponse, 0, len(c.Technologies)),
		Timelines:    make([]MultiplierOptionResponse, 0, len(c.Timelines)),
	}
	for _, t := range c.ProjectTypes {
		prices := make(map[string]float64, len(t.BasePriceByComplexity))
		for level, p := range t.BasePriceByComplexity {
			prices[string(level)] = money(p)
		}
		res.ProjectTypes = append(res.ProjectTypes, ProjectTypeResponse{
			Code:              t.Code,
			Name:              t.Name,
			Description:       t.Description,
			DefaultComplexity: string(t.DefaultComplexity),
			BasePrices:        prices,
		})
	}
	for _, x := range c.Categories {
		res.Categories = append(res.Categories, MultiplierOptionResponse{Code: x.Code, Name: x.Name, Description: x.Description, Multiplier: x.PriceMultiplier.InexactFloat64()})
	}
	for _, x := range c.Industries {
		res.Industries = append(res.Industries, MultiplierOptionResponse{Code: x.Code, Name: x.Name, Description: x.Description, Multiplier: x.PriceMultiplier.InexactFloat64()})
	}
	for _, x := range c.Features {
		res.Features = append(res.Features, FeatureResponse{Code: x.Code, Name: x.Name, Description: x.Description, BasePrice: money(x.BasePrice)})
	}
	for _, x := range c.Technologies {
		res.Technologies = append(res.Technologies, TechnologyResponse{Code: x.Code, Name: x.Name, PriceImpact: money(x.PriceImpact)})
	}
	for _, x := range c.Timelines {
		res.Timelines = append(res.Timelines, MultiplierOptionResponse{Code: x.Code, Name: x.Name, Multiplier: x.PriceMultiplier.InexactFloat64()})
	}
	return res
}
