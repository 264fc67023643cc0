package repository

import (
	"testing"
	"time"

	"vaif_quotes/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/shopspring/decimal"
)

func TestQuoteItem_AttributeValues(t *testing.T) {
	adj := decimal.RequireFromString("1.08")
	created := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	q := entities.Quote{
		ID:          "q-1",
		ClientName:  "Ana",
		ClientEmail: "ana@example.com",
		Selection: entities.EstimateRequest{
			ProjectTypeCode: "WEBSITE",
			Complexity:      entities.ComplexityModerate,
			FeatureCodes:    []string{"USER_AUTH"},
		},
		Estimate: entities.EstimateResult{
			BaseEstimate: 5400, MinEstimate: 4590, MaxEstimate: 6210,
			Breakdown: entities.EstimateBreakdown{
				BaseCost:           decimal.NewFromInt(5000),
				FeatureCost:        decimal.Zero,
				TechnologyImpact:   decimal.Zero,
				TimelineMultiplier: decimal.NewFromInt(1),
				AIAdjustment:       &adj,
			},
			Confidence: entities.ConfidenceHigh,
		},
		Status:    entities.QuoteStatusPending,
		CreatedAt: created,
		UpdatedAt: created,
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["company"]; ok {
		t.Fatalf("expected empty company to be omitted")
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := fromQuoteItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Estimate.Breakdown.AIAdjustment == nil || !got.Estimate.Breakdown.AIAdjustment.Equal(adj) {
		t.Fatalf("expected ai adjustment, got %v", got.Estimate.Breakdown.AIAdjustment)
	}
	if got.Selection.Complexity != entities.ComplexityModerate || got.Selection.FeatureCodes[0] != "USER_AUTH" {
		t.Fatalf("unexpected selection: %+v", got.Selection)
	}
	if !got.CreatedAt.Equal(created) || got.Estimate.MaxEstimate != 6210 {
		t.Fatalf("unexpected quote: %+v", got)
	}
}

func TestQuoteItem_NoAIAdjustment(t *testing.T) {
	it := toQuoteItem(entities.Quote{ID: "q-2"})
	got, err := fromQuoteItem(it)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Estimate.Breakdown.AIAdjustment != nil {
		t.Fatalf("expected nil ai adjustment")
	}
}

func TestSortPaymentsNewestFirst(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ps := []entities.QuotePayment{
		{ID: "old", Date: base},
		{ID: "new", Date: base.Add(2 * time.Hour)},
		{ID: "mid", Date: base.Add(time.Hour)},
	}
	sortPaymentsNewestFirst(ps)
	if ps[0].ID != "new" || ps[2].ID != "old" {
		t.Fatalf("unexpected order: %v %v %v", ps[0].ID, ps[1].ID, ps[2].ID)
	}
}

func TestQuotePaymentItem_Amount(t *testing.T) {
	it := toQuotePaymentItem(entities.QuotePayment{ID: "p", Amount: decimal.RequireFromString("6172.5")})
	if it.Amount != "6172.50" {
		t.Fatalf("expected cents precision, got %s", it.Amount)
	}
	p, err := fromQuotePaymentItem(it)
	if err != nil || !p.Amount.Equal(decimal.RequireFromString("6172.5")) {
		t.Fatalf("unexpected amount: %s %v", p.Amount, err)
	}
}
