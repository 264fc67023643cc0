package repository

import (
	"context"
	"time"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const catalogAllKey = "all"

// CachedCatalogRepository keeps recently read catalog records in a bounded,
// expiring LRU. Misses and errors fall through to the wrapped repository;
// errors and unknown codes are never cached.
type CachedCatalogRepository struct {
	next  interfaces.ICatalogRepository
	cache *expirable.LRU[string, any]
}

var _ interfaces.ICatalogRepository = (*CachedCatalogRepository)(nil)

func NewCachedCatalogRepository(next interfaces.ICatalogRepository, size int, ttl time.Duration) *CachedCatalogRepository {
	return &CachedCatalogRepository{
		next:  next,
		cache: expirable.NewLRU[string, any](size, nil, ttl),
	}
}

func cacheKey(kind entities.CatalogKind, code string) string {
	return string(kind) + ":" + code
}

// cachedGet is shared by the single-record getters.
func cachedGet[T any](c *CachedCatalogRepository, kind entities.CatalogKind, code string, load func() (T, error), found func(T) bool) (T, error) {
	key := cacheKey(kind, code)
	if v, ok := c.cache.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	if found(v) {
		c.cache.Add(key, v)
	}
	return v, nil
}

// cachedList serves cached codes and loads the rest in one call, keeping the order of codes.
func cachedList[T any](c *CachedCatalogRepository, kind entities.CatalogKind, codes []string, load func([]string) ([]T, error), codeOf func(T) string) ([]T, error) {
	byCode := make(map[string]T, len(codes))
	var misses []string
	for _, code := range codes {
		if v, ok := c.cache.Get(cacheKey(kind, code)); ok {
			if t, ok := v.(T); ok {
				byCode[code] = t
				continue
			}
		}
		misses = append(misses, code)
	}
	if len(misses) > 0 {
		loaded, err := load(misses)
		if err != nil {
			return nil, err
		}
		for _, v := range loaded {
			code := codeOf(v)
			byCode[code] = v
			c.cache.Add(cacheKey(kind, code), v)
		}
	}

	out := make([]T, 0, len(byCode))
	for _, code := range codes {
		if v, ok := byCode[code]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (c *CachedCatalogRepository) GetProjectType(ctx context.Context, code string) (entities.ProjectTypeDef, error) {
	return cachedGet(c, entities.CatalogKindProjectType, code,
		func() (entities.ProjectTypeDef, error) { return c.next.GetProjectType(ctx, code) },
		func(v entities.ProjectTypeDef) bool { return v.Code != "" })
}

func (c *CachedCatalogRepository) GetCategory(ctx context.Context, code string) (entities.ProjectCategoryDef, error) {
	return cachedGet(c, entities.CatalogKindCategory, code,
		func() (entities.ProjectCategoryDef, error) { return c.next.GetCategory(ctx, code) },
		func(v entities.ProjectCategoryDef) bool { return v.Code != "" })
}

func (c *CachedCatalogRepository) GetIndustry(ctx context.Context, code string) (entities.IndustryDef, error) {
	return cachedGet(c, entities.CatalogKindIndustry, code,
		func() (entities.IndustryDef, error) { return c.next.GetIndustry(ctx, code) },
		func(v entities.IndustryDef) bool { return v.Code != "" })
}

func (c *CachedCatalogRepository) GetTimeline(ctx context.Context, code string) (entities.TimelineDef, error) {
	return cachedGet(c, entities.CatalogKindTimeline, code,
		func() (entities.TimelineDef, error) { return c.next.GetTimeline(ctx, code) },
		func(v entities.TimelineDef) bool { return v.Code != "" })
}

func (c *CachedCatalogRepository) ListFeatures(ctx context.Context, codes []string) ([]entities.FeatureDef, error) {
	return cachedList(c, entities.CatalogKindFeature, codes,
		func(missing []string) ([]entities.FeatureDef, error) { return c.next.ListFeatures(ctx, missing) },
		func(v entities.FeatureDef) string { return v.Code })
}

func (c *CachedCatalogRepository) ListTechnologies(ctx context.Context, codes []string) ([]entities.TechnologyDef, error) {
	return cachedList(c, entities.CatalogKindTechnology, codes,
		func(missing []string) ([]entities.TechnologyDef, error) { return c.next.ListTechnologies(ctx, missing) },
		func(v entities.TechnologyDef) string { return v.Code })
}

func (c *CachedCatalogRepository) ListAll(ctx context.Context) (entities.Catalog, error) {
	if v, ok := c.cache.Get(catalogAllKey); ok {
		if cat, ok := v.(entities.Catalog); ok {
			return cat, nil
		}
	}
	cat, err := c.next.ListAll(ctx)
	if err != nil {
		return entities.Catalog{}, err
	}
	c.cache.Add(catalogAllKey, cat)
	return cat, nil
}

// Purge drops every cached record.
func (c *CachedCatalogRepository) Purge() {
	c.cache.Purge()
}
