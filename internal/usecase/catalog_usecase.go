package usecase

import (
	"context"
	"strings"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/infrastructure/metrics"
	"vaif_quotes/internal/usecase/interfaces"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ICatalogUseCase resolves quote builder selections against the pricing catalog.
//
// Resolve never fails: unknown, inactive or unreadable codes contribute nothing.

type ICatalogUseCase interface {
	Resolve(ctx context.Context, req entities.EstimateRequest) entities.ResolvedSelection
	ListActive(ctx context.Context) (entities.Catalog, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, log *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, log: log}
}

// Resolve issues the six lookups concurrently; they are independent reads.
func (u *CatalogUseCase) Resolve(ctx context.Context, req entities.EstimateRequest) entities.ResolvedSelection {
	sel := entities.ResolvedSelection{Complexity: req.Complexity}
	var g errgroup.Group

	if code := strings.TrimSpace(req.ProjectTypeCode); code != "" {
		g.Go(func() error {
			t, err := u.repo.GetProjectType(ctx, code)
			if u.failed(entities.CatalogKindProjectType, code, err) || t.Code == "" || !t.Active {
				return nil
			}
			sel.ProjectType = &t
			return nil
		})
	}
	if code := strings.TrimSpace(req.ProjectCategoryCode); code != "" {
		g.Go(func() error {
			c, err := u.repo.GetCategory(ctx, code)
			if u.failed(entities.CatalogKindCategory, code, err) || c.Code == "" || !c.Active {
				return nil
			}
			sel.Category = &c
			return nil
		})
	}
	if code := strings.TrimSpace(req.IndustryCode); code != "" {
		g.Go(func() error {
			i, err := u.repo.GetIndustry(ctx, code)
			if u.failed(entities.CatalogKindIndustry, code, err) || i.Code == "" || !i.Active {
				return nil
			}
			sel.Industry = &i
			return nil
		})
	}
	if code := strings.TrimSpace(req.TimelineCode); code != "" {
		g.Go(func() error {
			tl, err := u.repo.GetTimeline(ctx, code)
			if u.failed(entities.CatalogKindTimeline, code, err) || tl.Code == "" || !tl.Active {
				return nil
			}
			sel.Timeline = &tl
			return nil
		})
	}
	if codes := normalizeCodes(req.FeatureCodes); len(codes) > 0 {
		g.Go(func() error {
			fs, err := u.repo.ListFeatures(ctx, codes)
			if u.failed(entities.CatalogKindFeature, strings.Join(codes, ","), err) {
				return nil
			}
			for _, f := range fs {
				if f.Active {
					sel.Features = append(sel.Features, f)
				}
			}
			return nil
		})
	}
	if codes := normalizeCodes(req.TechnologyCodes); len(codes) > 0 {
		g.Go(func() error {
			ts, err := u.repo.ListTechnologies(ctx, codes)
			if u.failed(entities.CatalogKindTechnology, strings.Join(codes, ","), err) {
				return nil
			}
			for _, t := range ts {
				if t.Active {
					sel.Technologies = append(sel.Technologies, t)
				}
			}
			return nil
		})
	}

	_ = g.Wait()
	return sel
}

func (u *CatalogUseCase) ListActive(ctx context.Context) (entities.Catalog, error) {
	c, err := u.repo.ListAll(ctx)
	if err != nil {
		u.log.Error("[catalog][usecase] list failed", zap.Error(err))
		return entities.Catalog{}, err
	}
	return c.ActiveOnly(), nil
}

func (u *CatalogUseCase) failed(kind entities.CatalogKind, code string, err error) bool {
	if err == nil {
		return false
	}
	metrics.CatalogLookupFailures.WithLabelValues(string(kind)).Inc()
	u.log.Warn("[catalog][usecase] lookup failed; treating as absent",
		zap.String("kind", string(kind)), zap.String("code", code), zap.Error(err))
	return true
}

// normalizeCodes trims, drops blanks and removes duplicates, keeping order.
func normalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
