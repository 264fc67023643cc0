// Package pricing holds the deterministic cost model of a quote.
package pricing

import (
	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	// DefaultBaseCost applies when no project type resolved.
	DefaultBaseCost = decimal.NewFromInt(5000)

	RangeLowFactor  = decimal.RequireFromString("0.85")
	RangeHighFactor = decimal.RequireFromString("1.15")

	one  = decimal.NewFromInt(1)
	half = decimal.RequireFromString("0.5")
)

// Calculation is the intermediate state of the deterministic estimate.
type Calculation struct {
	BaseCost           decimal.Decimal
	FeatureCost        decimal.Decimal
	TechnologyImpact   decimal.Decimal
	TimelineMultiplier decimal.Decimal
	Subtotal           decimal.Decimal
}

// Calculate applies the catalog selection in a fixed order: type base price,
// category and industry multipliers, feature and technology sums, then the
// timeline multiplier. Absent records contribute nothing.
//
// Subtotal never goes below zero.
func Calculate(sel entities.ResolvedSelection) Calculation {
	base := DefaultBaseCost
	if sel.ProjectType != nil {
		if p, ok := sel.ProjectType.BasePrice(sel.Complexity); ok {
			base = p
		} else if p, ok := sel.ProjectType.BasePrice(""); ok {
			base = p
		}
	}
	if sel.Category != nil {
		base = base.Mul(sel.Category.PriceMultiplier)
	}
	if sel.Industry != nil {
		base = base.Mul(sel.Industry.PriceMultiplier)
	}

	features := decimal.Zero
	for _, f := range sel.Features {
		features = features.Add(f.BasePrice)
	}

	tech := decimal.Zero
	for _, t := range sel.Technologies {
		tech = tech.Add(t.PriceImpact)
	}

	timeline := one
	if sel.Timeline != nil {
		timeline = sel.Timeline.PriceMultiplier
	}

	subtotal := base.Add(features).Add(tech).Mul(timeline)
	if subtotal.IsNegative() {
		subtotal = decimal.Zero
	}

	return Calculation{
		BaseCost:           base,
		FeatureCost:        features,
		TechnologyImpact:   tech,
		TimelineMultiplier: timeline,
		Subtotal:           subtotal,
	}
}

func (c Calculation) Breakdown() entities.EstimateBreakdown {
	return entities.EstimateBreakdown{
		BaseCost:           c.BaseCost,
		FeatureCost:        c.FeatureCost,
		TechnologyImpact:   c.TechnologyImpact,
		TimelineMultiplier: c.TimelineMultiplier,
	}
}

// Result is the deterministic estimate with a ±15% range.
func (c Calculation) Result() entities.EstimateResult {
	base, lo, hi := Range(c.Subtotal)
	return entities.EstimateResult{
		BaseEstimate: base,
		MinEstimate:  lo,
		MaxEstimate:  hi,
		Breakdown:    c.Breakdown(),
	}
}

// Range rounds subtotal and its ±15% bounds.
func Range(subtotal decimal.Decimal) (base, lo, hi int64) {
	return Round(subtotal), Round(subtotal.Mul(RangeLowFactor)), Round(subtotal.Mul(RangeHighFactor))
}

// Round is round-half-up to the whole currency unit.
func Round(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}
