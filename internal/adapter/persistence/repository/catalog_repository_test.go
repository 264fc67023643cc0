package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func testCatalog() entities.Catalog {
	return entities.Catalog{
		ProjectTypes: []entities.ProjectTypeDef{{
			Code: "WEBSITE", Name: "Website", Active: true, DefaultComplexity: entities.ComplexitySimple,
			BasePriceByComplexity: map[entities.ComplexityLevel]decimal.Decimal{
				entities.ComplexitySimple:      decimal.NewFromInt(3000),
				entities.ComplexityModerate:    decimal.NewFromInt(5000),
				entities.ComplexityComplex:     decimal.NewFromInt(8000),
				entities.ComplexityVeryComplex: decimal.NewFromInt(12000),
			},
		}},
		Categories:   []entities.ProjectCategoryDef{{Code: "BLOG", Name: "Blog", PriceMultiplier: decimal.RequireFromString("0.9"), Active: true}},
		Industries:   []entities.IndustryDef{{Code: "GENERAL", Name: "General", PriceMultiplier: decimal.NewFromInt(1), Active: true}},
		Features:     []entities.FeatureDef{{Code: "USER_AUTH", Name: "User Authentication", BasePrice: decimal.NewFromInt(1500), Active: true}, {Code: "SEARCH", Name: "Search", BasePrice: decimal.NewFromInt(800), Active: true}},
		Technologies: []entities.TechnologyDef{{Code: "WORDPRESS", Name: "WordPress", PriceImpact: decimal.NewFromInt(-500), Active: true}},
		Timelines:    []entities.TimelineDef{{Code: "STANDARD", Name: "Standard", PriceMultiplier: decimal.NewFromInt(1), Active: true}},
	}
}

func TestCatalogItems_RoundTrip(t *testing.T) {
	items := catalogItems(testCatalog(), "2026-01-01T00:00:00Z")
	if len(items) != 7 {
		t.Fatalf("expected 7 items, got %d", len(items))
	}

	byKind := map[entities.CatalogKind][]catalogItem{}
	for _, it := range items {
		byKind[entities.CatalogKind(it.Kind)] = append(byKind[entities.CatalogKind(it.Kind)], it)
	}
	var got entities.Catalog
	for _, kind := range catalogKinds {
		if err := appendItems(&got, kind, byKind[kind]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := got.Validate(); err != nil {
		t.Fatalf("expected valid catalog, got %v", err)
	}
	p, ok := got.ProjectTypes[0].BasePrice(entities.ComplexityVeryComplex)
	if !ok || !p.Equal(decimal.NewFromInt(12000)) {
		t.Fatalf("unexpected base price %s", p)
	}
	if !got.Technologies[0].PriceImpact.Equal(decimal.NewFromInt(-500)) {
		t.Fatalf("expected negative impact to survive, got %s", got.Technologies[0].PriceImpact)
	}
	if !got.Categories[0].PriceMultiplier.Equal(decimal.RequireFromString("0.9")) {
		t.Fatalf("unexpected multiplier %s", got.Categories[0].PriceMultiplier)
	}
}

func TestCatalogItems_InvalidDecimal(t *testing.T) {
	if _, err := toFeature(catalogItem{Code: "X", BasePrice: "abc"}); err == nil {
		t.Fatalf("expected error for invalid price")
	}
}

func TestChunk(t *testing.T) {
	got := chunk([]int{1, 2, 3, 4, 5}, 2)
	if len(got) != 3 || len(got[2]) != 1 || got[2][0] != 5 {
		t.Fatalf("unexpected chunks: %v", got)
	}
	if chunk([]int{}, 2) != nil {
		t.Fatalf("expected no chunks")
	}
}

func TestCatalogMemoryRepository(t *testing.T) {
	repo := NewCatalogMemoryRepository(testCatalog())
	ctx := context.Background()

	pt, err := repo.GetProjectType(ctx, "WEBSITE")
	if err != nil || pt.Code != "WEBSITE" {
		t.Fatalf("unexpected project type: %+v %v", pt, err)
	}
	missing, _ := repo.GetIndustry(ctx, "SPACE")
	if missing.Code != "" {
		t.Fatalf("expected zero value for unknown code")
	}
	fs, _ := repo.ListFeatures(ctx, []string{"SEARCH", "NOPE", "USER_AUTH"})
	if len(fs) != 2 || fs[0].Code != "SEARCH" || fs[1].Code != "USER_AUTH" {
		t.Fatalf("expected requested order, got %+v", fs)
	}
}

type countingCatalog struct {
	*CatalogMemoryRepository
	gets     int
	features [][]string
	listAll  int
	failNext bool
}

func (c *countingCatalog) GetProjectType(ctx context.Context, code string) (entities.ProjectTypeDef, error) {
	c.gets++
	if c.failNext {
		c.failNext = false
		return entities.ProjectTypeDef{}, errors.New("throttled")
	}
	return c.CatalogMemoryRepository.GetProjectType(ctx, code)
}

func (c *countingCatalog) ListFeatures(ctx context.Context, codes []string) ([]entities.FeatureDef, error) {
	c.features = append(c.features, codes)
	return c.CatalogMemoryRepository.ListFeatures(ctx, codes)
}

func (c *countingCatalog) ListAll(ctx context.Context) (entities.Catalog, error) {
	c.listAll++
	return c.CatalogMemoryRepository.ListAll(ctx)
}

func TestCachedCatalogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("hits are served from cache and errors are not cached", func(t *testing.T) {
		inner := &countingCatalog{CatalogMemoryRepository: NewCatalogMemoryRepository(testCatalog()), failNext: true}
		repo := NewCachedCatalogRepository(inner, 16, time.Minute)

		if _, err := repo.GetProjectType(ctx, "WEBSITE"); err == nil {
			t.Fatalf("expected first call to fail")
		}
		for i := 0; i < 3; i++ {
			pt, err := repo.GetProjectType(ctx, "WEBSITE")
			if err != nil || pt.Code != "WEBSITE" {
				t.Fatalf("unexpected result: %+v %v", pt, err)
			}
		}
		if inner.gets != 2 {
			t.Fatalf("expected 2 inner calls, got %d", inner.gets)
		}

		_, _ = repo.GetProjectType(ctx, "UNKNOWN")
		_, _ = repo.GetProjectType(ctx, "UNKNOWN")
		if inner.gets != 4 {
			t.Fatalf("expected unknown codes not to be cached, got %d calls", inner.gets)
		}
	})

	t.Run("lists only load misses", func(t *testing.T) {
		inner := &countingCatalog{CatalogMemoryRepository: NewCatalogMemoryRepository(testCatalog())}
		repo := NewCachedCatalogRepository(inner, 16, time.Minute)

		if _, err := repo.ListFeatures(ctx, []string{"USER_AUTH"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		fs, err := repo.ListFeatures(ctx, []string{"SEARCH", "USER_AUTH"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fs) != 2 || fs[0].Code != "SEARCH" {
			t.Fatalf("unexpected features: %+v", fs)
		}
		if len(inner.features) != 2 || len(inner.features[1]) != 1 || inner.features[1][0] != "SEARCH" {
			t.Fatalf("expected only the miss to be loaded, got %v", inner.features)
		}
	})

	t.Run("list all is cached until purge", func(t *testing.T) {
		inner := &countingCatalog{CatalogMemoryRepository: NewCatalogMemoryRepository(testCatalog())}
		repo := NewCachedCatalogRepository(inner, 16, time.Minute)

		_, _ = repo.ListAll(ctx)
		_, _ = repo.ListAll(ctx)
		repo.Purge()
		_, _ = repo.ListAll(ctx)
		if inner.listAll != 2 {
			t.Fatalf("expected 2 inner calls, got %d", inner.listAll)
		}
	})
}
