package entities

import "github.com/shopspring/decimal"

// EstimateRequest is the quote builder selection. Every code is optional.
type EstimateRequest struct {
	ProjectTypeCode     string
	ProjectCategoryCode string
	IndustryCode        string
	Complexity          ComplexityLevel
	FeatureCodes        []string
	TechnologyCodes     []string
	TimelineCode        string
	CustomDescription   string
}

// ResolvedSelection holds the active catalog records matched by an EstimateRequest.
// Nil pointers and empty slices mean "no contribution".
type ResolvedSelection struct {
	ProjectType  *ProjectTypeDef
	Complexity   ComplexityLevel
	Category     *ProjectCategoryDef
	Industry     *IndustryDef
	Features     []FeatureDef
	Technologies []TechnologyDef
	Timeline     *TimelineDef
}

type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

func (c Confidence) Valid() bool {
	return c == ConfidenceLow || c == ConfidenceMedium || c == ConfidenceHigh
}

// EstimateBreakdown exposes the intermediate values of the deterministic estimate.
// AIAdjustment is nil unless a refinement ran.
type EstimateBreakdown struct {
	BaseCost           decimal.Decimal
	FeatureCost        decimal.Decimal
	TechnologyImpact   decimal.Decimal
	TimelineMultiplier decimal.Decimal
	AIAdjustment       *decimal.Decimal
}

// EstimateResult amounts are whole currency units.
//
// Invariant: MinEstimate <= BaseEstimate <= MaxEstimate.
type EstimateResult struct {
	BaseEstimate       int64
	MinEstimate        int64
	MaxEstimate        int64
	Breakdown          EstimateBreakdown
	Reasoning          string
	Confidence         Confidence
	RiskFactors        []string
	OpportunityFactors []string
}

// WellFormed reports whether r satisfies the range invariant with a positive base.
func (r EstimateResult) WellFormed() bool {
	return r.BaseEstimate > 0 && r.MinEstimate <= r.BaseEstimate && r.BaseEstimate <= r.MaxEstimate
}

// Refinement is the model-adjusted estimate. Amounts are unrounded.
type Refinement struct {
	AdjustedEstimate   decimal.Decimal
	MinEstimate        decimal.Decimal
	MaxEstimate        decimal.Decimal
	AIAdjustmentFactor decimal.Decimal
	Reasoning          string
	Confidence         Confidence
	RiskFactors        []string
	OpportunityFactors []string
}
