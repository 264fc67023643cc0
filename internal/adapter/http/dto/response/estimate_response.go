package response

import (
	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type BreakdownResponse struct {
	BaseCost           float64  `json:"baseCost"`
	FeatureCost        float64  `json:"featureCost"`
	TechnologyImpact   float64  `json:"technologyImpact"`
	TimelineMultiplier float64  `json:"timelineMultiplier"`
	AIAdjustment       *float64 `json:"aiAdjustment,omitempty"`
}

// EstimateResponse omits every AI field when no refinement ran.
type EstimateResponse struct {
	BaseEstimate       int64             `json:"baseEstimate"`
	MinEstimate        int64             `json:"minEstimate"`
	MaxEstimate        int64             `json:"maxEstimate"`
	Breakdown          BreakdownResponse `json:"breakdown"`
	Reasoning          string            `json:"reasoning,omitempty"`
	Confidence         string            `json:"confidence,omitempty"`
	RiskFactors        []string          `json:"riskFactors,omitempty"`
	OpportunityFactors []string          `json:"opportunityFactors,omitempty"`
}

func FromEstimateResult(r entities.EstimateResult) EstimateResponse {
	res := EstimateResponse{
		BaseEstimate: r.BaseEstimate,
		MinEstimate:  r.MinEstimate,
		MaxEstimate:  r.MaxEstimate,
		Breakdown: BreakdownResponse{
			BaseCost:           money(r.Breakdown.BaseCost),
			FeatureCost:        money(r.Breakdown.FeatureCost),
			TechnologyImpact:   money(r.Breakdown.TechnologyImpact),
			TimelineMultiplier: r.Breakdown.TimelineMultiplier.InexactFloat64(),
		},
		Reasoning:          r.Reasoning,
		Confidence:         string(r.Confidence),
		RiskFactors:        r.RiskFactors,
		OpportunityFactors: r.OpportunityFactors,
	}
	if r.Breakdown.AIAdjustment != nil {
		f := r.Breakdown.AIAdjustment.InexactFloat64()
		res.Breakdown.AIAdjustment = &f
	}
	return res
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
