package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/domain/pricing"
	"vaif_quotes/internal/infrastructure/metrics"

	"go.uber.org/zap"
)

var ErrInvalidComplexity = errors.New("invalid complexity")

// Estimation stages, logged in order.
const (
	StageStart                  = "START"
	StageCatalogResolved        = "CATALOG_RESOLVED"
	StageDeterministicEstimated = "DETERMINISTIC_ESTIMATED"
	StageAIRefined              = "AI_REFINED"
	StageResponseAssembled      = "RESPONSE_ASSEMBLED"
)

// IEstimationUseCase prices a quote builder selection.
//
// The deterministic estimate is always produced. When the request carries a
// custom description the model refines it; a failed refinement keeps the
// deterministic figures. Nothing is persisted.

type IEstimationUseCase interface {
	Estimate(ctx context.Context, req entities.EstimateRequest) (entities.EstimateResult, error)
}

type EstimationUseCase struct {
	catalog    ICatalogUseCase
	refinement IRefinementUseCase
	log        *zap.Logger
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(catalog ICatalogUseCase, refinement IRefinementUseCase, log *zap.Logger) *EstimationUseCase {
	return &EstimationUseCase{catalog: catalog, refinement: refinement, log: log}
}

func (u *EstimationUseCase) Estimate(ctx context.Context, req entities.EstimateRequest) (entities.EstimateResult, error) {
	if req.Complexity != "" {
		level, err := entities.ParseComplexityLevel(string(req.Complexity))
		if err != nil {
			return entities.EstimateResult{}, fmt.Errorf("%w: %v", ErrInvalidComplexity, err)
		}
		req.Complexity = level
	}

	started := time.Now()
	description := strings.TrimSpace(req.CustomDescription)
	refined := description != ""
	defer func() {
		metrics.EstimateDuration.WithLabelValues(strconv.FormatBool(refined)).Observe(time.Since(started).Seconds())
	}()

	u.stage(StageStart, zap.String("project_type", req.ProjectTypeCode), zap.Bool("has_description", refined))

	sel := u.catalog.Resolve(ctx, req)
	u.stage(StageCatalogResolved,
		zap.Bool("project_type", sel.ProjectType != nil),
		zap.Bool("category", sel.Category != nil),
		zap.Bool("industry", sel.Industry != nil),
		zap.Int("features", len(sel.Features)),
		zap.Int("technologies", len(sel.Technologies)),
		zap.Bool("timeline", sel.Timeline != nil))

	calc := pricing.Calculate(sel)
	result := calc.Result()
	u.stage(StageDeterministicEstimated,
		zap.String("subtotal", calc.Subtotal.String()),
		zap.Int64("base", result.BaseEstimate))
	if sel.ProjectType == nil {
		// A missing project type is priced from the default base cost, not rejected.
		u.log.Info("[estimate][usecase] no project type resolved; using default base cost",
			zap.String("project_type", req.ProjectTypeCode),
			zap.String("default_base_cost", pricing.DefaultBaseCost.String()))
	}

	if refined {
		out := u.refinement.Refine(ctx, RefinementInput{
			Subtotal:    calc.Subtotal,
			Description: description,
			Selection:   sel,
		})
		applyRefinement(&result, out.Value)
		u.stage(StageAIRefined, zap.String("source", out.Source()), zap.Int64("base", result.BaseEstimate))
	}

	u.stage(StageResponseAssembled,
		zap.Int64("base", result.BaseEstimate),
		zap.Int64("min", result.MinEstimate),
		zap.Int64("max", result.MaxEstimate))
	return result, nil
}

// applyRefinement overwrites the range with the refined amounts.
func applyRefinement(result *entities.EstimateResult, r entities.Refinement) {
	factor := r.AIAdjustmentFactor
	result.BaseEstimate = pricing.Round(r.AdjustedEstimate)
	result.MinEstimate = pricing.Round(r.MinEstimate)
	result.MaxEstimate = pricing.Round(r.MaxEstimate)
	result.Breakdown.AIAdjustment = &factor
	result.Reasoning = r.Reasoning
	result.Confidence = r.Confidence
	result.RiskFactors = r.RiskFactors
	result.OpportunityFactors = r.OpportunityFactors
}

func (u *EstimationUseCase) stage(name string, fields ...zap.Field) {
	u.log.Debug("[estimate][usecase] stage "+name, fields...)
}
