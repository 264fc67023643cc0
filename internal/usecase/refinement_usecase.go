package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/domain/pricing"
	"vaif_quotes/internal/infrastructure/metrics"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// StandardEstimateReasoning is the reasoning of an identity refinement.
const StandardEstimateReasoning = "Using standard estimate due to AI service unavailability"

type RefinementInput struct {
	Subtotal    decimal.Decimal
	Description string
	Selection   entities.ResolvedSelection
}

// IRefinementUseCase asks the language model to adjust a deterministic subtotal.
// It never fails: any problem yields the identity refinement as a Degraded outcome.

type IRefinementUseCase interface {
	Refine(ctx context.Context, in RefinementInput) entities.Outcome[entities.Refinement]
}

type RefinementUseCase struct {
	model    interfaces.ILanguageModel
	settings LLMSettings
	log      *zap.Logger
}

var _ IRefinementUseCase = (*RefinementUseCase)(nil)

func NewRefinementUseCase(model interfaces.ILanguageModel, settings LLMSettings, log *zap.Logger) *RefinementUseCase {
	return &RefinementUseCase{model: model, settings: settings, log: log}
}

// IdentityRefinement keeps the subtotal with the standard ±15% range.
func IdentityRefinement(subtotal decimal.Decimal) entities.Refinement {
	return entities.Refinement{
		AdjustedEstimate:   subtotal,
		MinEstimate:        decimal.NewFromInt(pricing.Round(subtotal.Mul(pricing.RangeLowFactor))),
		MaxEstimate:        decimal.NewFromInt(pricing.Round(subtotal.Mul(pricing.RangeHighFactor))),
		AIAdjustmentFactor: decimal.NewFromInt(1),
		Reasoning:          StandardEstimateReasoning,
		Confidence:         entities.ConfidenceMedium,
		RiskFactors:        []string{},
		OpportunityFactors: []string{},
	}
}

func (u *RefinementUseCase) Refine(ctx context.Context, in RefinementInput) entities.Outcome[entities.Refinement] {
	if u.model == nil {
		return u.degrade(in.Subtotal, errLanguageModelNotConfigured)
	}

	r, err := u.refineWithModel(ctx, in)
	if err != nil {
		return u.degrade(in.Subtotal, err)
	}

	metrics.RefinementOutcomes.WithLabelValues(entities.OutcomeSourceModel, metrics.ReasonNone).Inc()
	u.log.Info("[estimate][usecase] model refinement succeeded",
		zap.String("subtotal", in.Subtotal.String()),
		zap.String("adjusted", r.AdjustedEstimate.String()),
		zap.String("factor", r.AIAdjustmentFactor.String()))
	return entities.Ok(r)
}

func (u *RefinementUseCase) degrade(subtotal decimal.Decimal, reason error) entities.Outcome[entities.Refinement] {
	label := reasonLabel(reason)
	metrics.RefinementOutcomes.WithLabelValues(entities.OutcomeSourceFallback, label).Inc()
	u.log.Warn("[estimate][usecase] using standard estimate", zap.String("reason", label), zap.Error(reason))
	return entities.Degrade(IdentityRefinement(subtotal), reason)
}

func (u *RefinementUseCase) refineWithModel(ctx context.Context, in RefinementInput) (entities.Refinement, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.settings.Timeout)
	defer cancel()

	text, err := u.model.Complete(callCtx, interfaces.CompletionRequest{
		SystemPrompt: refinementSystemPrompt,
		UserPrompt:   refinementUserPrompt(in),
		Temperature:  u.settings.Temperature,
		MaxTokens:    u.settings.MaxTokens,
		JSONMode:     true,
	})
	if err != nil {
		return entities.Refinement{}, upstreamError(callCtx, err)
	}

	doc, err := validateJSON(refinementSchema, text)
	if err != nil {
		return entities.Refinement{}, err
	}
	var w refinementWire
	if err := json.Unmarshal([]byte(doc), &w); err != nil {
		return entities.Refinement{}, fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}
	return w.toRefinement()
}

const refinementSystemPrompt = `You are a senior project estimator at VAIF TECH, a digital agency.
You receive a baseline estimate computed from the agency price catalog and the client's own description of the project.
Adjust the baseline only when the description reveals scope, risk or simplifications that the catalog selection does not capture.
Rules:
- Amounts are US dollars.
- minEstimate <= adjustedEstimate <= maxEstimate.
- aiAdjustmentFactor is adjustedEstimate divided by the baseline.
- confidence is one of "low", "medium", "high".
- List concrete risk factors and opportunity factors as short sentences.
Respond with a single JSON object and nothing else, shaped as:
{"adjustedEstimate":0,"minEstimate":0,"maxEstimate":0,"aiAdjustmentFactor":1.0,"reasoning":"","confidence":"medium","riskFactors":[],"opportunityFactors":[]}`

func refinementUserPrompt(in RefinementInput) string {
	sel := in.Selection
	var b strings.Builder
	fmt.Fprintf(&b, "Baseline estimate: $%s\n", in.Subtotal.StringFixed(2))

	projectType := notSpecified
	if sel.ProjectType != nil {
		projectType = sel.ProjectType.Name
	}
	complexity := string(sel.Complexity)
	if complexity == "" && sel.ProjectType != nil {
		complexity = string(sel.ProjectType.DefaultComplexity)
	}
	if complexity == "" {
		complexity = notSpecified
	}
	fmt.Fprintf(&b, "Project type: %s\n", projectType)
	fmt.Fprintf(&b, "Complexity: %s\n", complexity)

	category := notSpecified
	if sel.Category != nil {
		category = sel.Category.Name
	}
	industry := notSpecified
	if sel.Industry != nil {
		industry = sel.Industry.Name
	}
	timeline := notSpecified
	if sel.Timeline != nil {
		timeline = sel.Timeline.Name
	}
	fmt.Fprintf(&b, "Category: %s\n", category)
	fmt.Fprintf(&b, "Industry: %s\n", industry)
	fmt.Fprintf(&b, "Timeline: %s\n", timeline)

	features := make([]string, 0, len(sel.Features))
	for _, f := range sel.Features {
		features = append(features, f.Name)
	}
	technologies := make([]string, 0, len(sel.Technologies))
	for _, t := range sel.Technologies {
		technologies = append(technologies, t.Name)
	}
	fmt.Fprintf(&b, "Features: %s\n", joinOrNone(features))
	fmt.Fprintf(&b, "Technologies: %s\n", joinOrNone(technologies))

	b.WriteString("Client description:\n\"\"\"\n")
	b.WriteString(strings.TrimSpace(in.Description))
	b.WriteString("\n\"\"\"\n")
	return b.String()
}

const notSpecified = "Not specified"

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

var refinementSchema = mustSchema(`{
  "type": "object",
  "required": ["adjustedEstimate", "minEstimate", "maxEstimate", "aiAdjustmentFactor", "reasoning", "confidence"],
  "properties": {
    "adjustedEstimate": {"type": "number", "minimum": 0},
    "minEstimate": {"type": "number", "minimum": 0},
    "maxEstimate": {"type": "number", "minimum": 0},
    "aiAdjustmentFactor": {"type": "number", "minimum": 0},
    "reasoning": {"type": "string", "minLength": 1},
    "confidence": {"type": "string", "enum": ["low", "medium", "high"]},
    "riskFactors": {"type": "array", "items": {"type": "string"}},
    "opportunityFactors": {"type": "array", "items": {"type": "string"}}
  }
}`)

type refinementWire struct {
	AdjustedEstimate   decimal.Decimal `json:"adjustedEstimate"`
	MinEstimate        decimal.Decimal `json:"minEstimate"`
	MaxEstimate        decimal.Decimal `json:"maxEstimate"`
	AIAdjustmentFactor decimal.Decimal `json:"aiAdjustmentFactor"`
	Reasoning          string          `json:"reasoning"`
	Confidence         string          `json:"confidence"`
	RiskFactors        []string        `json:"riskFactors"`
	OpportunityFactors []string        `json:"opportunityFactors"`
}

func (w refinementWire) toRefinement() (entities.Refinement, error) {
	if w.MinEstimate.GreaterThan(w.AdjustedEstimate) || w.AdjustedEstimate.GreaterThan(w.MaxEstimate) {
		return entities.Refinement{}, fmt.Errorf("%w: range %s <= %s <= %s does not hold",
			ErrMalformedUpstreamResponse, w.MinEstimate, w.AdjustedEstimate, w.MaxEstimate)
	}
	return entities.Refinement{
		AdjustedEstimate:   w.AdjustedEstimate,
		MinEstimate:        w.MinEstimate,
		MaxEstimate:        w.MaxEstimate,
		AIAdjustmentFactor: w.AIAdjustmentFactor,
		Reasoning:          strings.TrimSpace(w.Reasoning),
		Confidence:         entities.Confidence(w.Confidence),
		RiskFactors:        nonBlank(w.RiskFactors),
		OpportunityFactors: nonBlank(w.OpportunityFactors),
	}, nil
}

func nonBlank(items []string) []string {
	out := make([]string, 0, len(items))
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
