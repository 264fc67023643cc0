package repository

import (
	"context"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"
)

// CatalogMemoryRepository serves a catalog loaded at startup, typically from
// configs/catalog.yaml. It is read-only and safe for concurrent use.
type CatalogMemoryRepository struct {
	catalog      entities.Catalog
	types        map[string]entities.ProjectTypeDef
	categories   map[string]entities.ProjectCategoryDef
	industries   map[string]entities.IndustryDef
	features     map[string]entities.FeatureDef
	technologies map[string]entities.TechnologyDef
	timelines    map[string]entities.TimelineDef
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository(c entities.Catalog) *CatalogMemoryRepository {
	return &CatalogMemoryRepository{
		catalog:      c,
		types:        indexBy(c.ProjectTypes, func(v entities.ProjectTypeDef) string { return v.Code }),
		categories:   indexBy(c.Categories, func(v entities.ProjectCategoryDef) string { return v.Code }),
		industries:   indexBy(c.Industries, func(v entities.IndustryDef) string { return v.Code }),
		features:     indexBy(c.Features, func(v entities.FeatureDef) string { return v.Code }),
		technologies: indexBy(c.Technologies, func(v entities.TechnologyDef) string { return v.Code }),
		timelines:    indexBy(c.Timelines, func(v entities.TimelineDef) string { return v.Code }),
	}
}

func indexBy[T any](items []T, key func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, it := range items {
		m[key(it)] = it
	}
	return m
}

func pick[T any](m map[string]T, codes []string) []T {
	out := make([]T, 0, len(codes))
	for _, code := range codes {
		if v, ok := m[code]; ok {
			out = append(out, v)
		}
	}
	return out
}

func (r *CatalogMemoryRepository) GetProjectType(_ context.Context, code string) (entities.ProjectTypeDef, error) {
	return r.types[code], nil
}

func (r *CatalogMemoryRepository) GetCategory(_ context.Context, code string) (entities.ProjectCategoryDef, error) {
	return r.categories[code], nil
}

func (r *CatalogMemoryRepository) GetIndustry(_ context.Context, code string) (entities.IndustryDef, error) {
	return r.industries[code], nil
}

func (r *CatalogMemoryRepository) GetTimeline(_ context.Context, code string) (entities.TimelineDef, error) {
	return r.timelines[code], nil
}

func (r *CatalogMemoryRepository) ListFeatures(_ context.Context, codes []string) ([]entities.FeatureDef, error) {
	return pick(r.features, codes), nil
}

func (r *CatalogMemoryRepository) ListTechnologies(_ context.Context, codes []string) ([]entities.TechnologyDef, error) {
	return pick(r.technologies, codes), nil
}

func (r *CatalogMemoryRepository) ListAll(_ context.Context) (entities.Catalog, error) {
	return r.catalog, nil
}
