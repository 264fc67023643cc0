package request

import (
	"strings"

	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// EstimatePayload is the EstimateResult the client saw in the quote builder.
type EstimatePayload struct {
	BaseEstimate       int64            `json:"baseEstimate"`
	MinEstimate        int64            `json:"minEstimate"`
	MaxEstimate        int64            `json:"maxEstimate"`
	Breakdown          BreakdownPayload `json:"breakdown"`
	Reasoning          string           `json:"reasoning"`
	Confidence         string           `json:"confidence"`
	RiskFactors        []string         `json:"riskFactors"`
	OpportunityFactors []string         `json:"opportunityFactors"`
}

type BreakdownPayload struct {
	BaseCost           float64  `json:"baseCost"`
	FeatureCost        float64  `json:"featureCost"`
	TechnologyImpact   float64  `json:"technologyImpact"`
	TimelineMultiplier float64  `json:"timelineMultiplier"`
	AIAdjustment       *float64 `json:"aiAdjustment"`
}

// GenerateQuoteRequest persists a quote. Estimate is optional; the server
// prices the selection and keeps Estimate only when it falls inside that range.
type GenerateQuoteRequest struct {
	ClientName   string               `json:"clientName" binding:"required"`
	ClientEmail  string               `json:"clientEmail" binding:"required,email"`
	Company      string               `json:"company"`
	ClientBudget string               `json:"clientBudget"`
	Timeline     string               `json:"timeline"`
	Selection    EstimateQuoteRequest `json:"selection"`
	Estimate     *EstimatePayload     `json:"estimate"`
}

func (r GenerateQuoteRequest) EstimateEntity() *entities.EstimateResult {
	if r.Estimate == nil {
		return nil
	}
	e := r.Estimate
	out := &entities.EstimateResult{
		BaseEstimate: e.BaseEstimate,
		MinEstimate:  e.MinEstimate,
		MaxEstimate:  e.MaxEstimate,
		Breakdown: entities.EstimateBreakdown{
			BaseCost:           decimal.NewFromFloat(e.Breakdown.BaseCost),
			FeatureCost:        decimal.NewFromFloat(e.Breakdown.FeatureCost),
			TechnologyImpact:   decimal.NewFromFloat(e.Breakdown.TechnologyImpact),
			TimelineMultiplier: decimal.NewFromFloat(e.Breakdown.TimelineMultiplier),
		},
		Reasoning:          strings.TrimSpace(e.Reasoning),
		Confidence:         entities.Confidence(strings.ToLower(strings.TrimSpace(e.Confidence))),
		RiskFactors:        e.RiskFactors,
		OpportunityFactors: e.OpportunityFactors,
	}
	if e.Breakdown.AIAdjustment != nil {
		f := decimal.NewFromFloat(*e.Breakdown.AIAdjustment)
		out.Breakdown.AIAdjustment = &f
	}
	if out.Confidence != "" && !out.Confidence.Valid() {
		out.Confidence = ""
	}
	return out
}
