package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaif_quotes/internal/domain/analysis"
	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/domain/pricing"
	"vaif_quotes/internal/infrastructure/metrics"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrInvalidDescription = errors.New("invalid description")

// LLMSettings bounds every model call made by a use case.
type LLMSettings struct {
	Timeout     time.Duration
	Temperature float32
	MaxTokens   int32
}

type AnalysisInput struct {
	Description string
	Hints       analysis.Hints
}

// IAnalyzerUseCase turns a free-text description into catalog recommendations.
//
// Only an empty description is an error. Any model failure yields a Degraded
// outcome computed by the keyword heuristic.

type IAnalyzerUseCase interface {
	Analyze(ctx context.Context, in AnalysisInput) (entities.Outcome[entities.AnalysisResult], error)
}

type AnalyzerUseCase struct {
	catalog  ICatalogUseCase
	model    interfaces.ILanguageModel
	settings LLMSettings
	log      *zap.Logger
}

var _ IAnalyzerUseCase = (*AnalyzerUseCase)(nil)

// NewAnalyzerUseCase accepts a nil model; every analysis then uses the heuristic.
func NewAnalyzerUseCase(catalog ICatalogUseCase, model interfaces.ILanguageModel, settings LLMSettings, log *zap.Logger) *AnalyzerUseCase {
	return &AnalyzerUseCase{catalog: catalog, model: model, settings: settings, log: log}
}

func (u *AnalyzerUseCase) Analyze(ctx context.Context, in AnalysisInput) (entities.Outcome[entities.AnalysisResult], error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return entities.Outcome[entities.AnalysisResult]{}, ErrInvalidDescription
	}

	cat, err := u.catalog.ListActive(ctx)
	if err != nil {
		return u.degrade(desc, in.Hints, entities.Catalog{}, fmt.Errorf("catalog unavailable: %w", err)), nil
	}
	if u.model == nil {
		return u.degrade(desc, in.Hints, cat, errLanguageModelNotConfigured), nil
	}

	res, err := u.analyzeWithModel(ctx, desc, in.Hints, cat)
	if err != nil {
		return u.degrade(desc, in.Hints, cat, err), nil
	}

	metrics.AnalysisOutcomes.WithLabelValues(entities.OutcomeSourceModel, metrics.ReasonNone).Inc()
	u.log.Info("[analysis][usecase] model analysis succeeded",
		zap.String("project_type", res.RecommendedProjectType.Code),
		zap.Int("features", len(res.RecommendedFeatures)),
		zap.String("complexity", string(res.EstimatedComplexity)))
	return entities.Ok(res), nil
}

func (u *AnalyzerUseCase) degrade(desc string, hints analysis.Hints, cat entities.Catalog, reason error) entities.Outcome[entities.AnalysisResult] {
	label := reasonLabel(reason)
	metrics.AnalysisOutcomes.WithLabelValues(entities.OutcomeSourceFallback, label).Inc()
	u.log.Warn("[analysis][usecase] using keyword fallback", zap.String("reason", label), zap.Error(reason))
	return entities.Degrade(analysis.Heuristic(desc, hints, cat), reason)
}

func (u *AnalyzerUseCase) analyzeWithModel(ctx context.Context, desc string, hints analysis.Hints, cat entities.Catalog) (entities.AnalysisResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, u.settings.Timeout)
	defer cancel()

	text, err := u.model.Complete(callCtx, interfaces.CompletionRequest{
		SystemPrompt: analysisSystemPrompt,
		UserPrompt:   analysisUserPrompt(desc, hints, cat),
		Temperature:  u.settings.Temperature,
		MaxTokens:    u.settings.MaxTokens,
		JSONMode:     true,
	})
	if err != nil {
		return entities.AnalysisResult{}, upstreamError(callCtx, err)
	}

	doc, err := validateJSON(analysisSchema, text)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	var w analysisWire
	if err := json.Unmarshal([]byte(doc), &w); err != nil {
		return entities.AnalysisResult{}, fmt.Errorf("%w: %v", ErrMalformedUpstreamResponse, err)
	}
	return w.toResult(cat)
}

const analysisSystemPrompt = `You are a senior solutions consultant at VAIF TECH, a digital agency that builds websites, web applications, e-commerce stores and mobile apps.
Read the client's project description and recommend the best matching options from the catalog you are given.
Rules:
- Only use codes that appear in the catalog lists. Never invent codes.
- Recommend exactly one project type, one category and one industry, and zero or more features.
- Explain every recommendation in one or two sentences.
- estimatedComplexity is one of "low", "medium", "high".
- estimatedBudgetRange is in US dollars.
Respond with a single JSON object and nothing else, shaped as:
{"recommendedProjectType":{"code":"","name":"","reasoning":""},"recommendedCategory":{"code":"","name":"","reasoning":""},"recommendedIndustry":{"code":"","name":"","reasoning":""},"recommendedFeatures":[{"code":"","name":"","reasoning":""}],"estimatedComplexity":"medium","estimatedTimelineInWeeks":4,"estimatedBudgetRange":{"min":0,"max":0},"additionalNotes":""}`

func analysisUserPrompt(desc string, hints analysis.Hints, cat entities.Catalog) string {
	var b strings.Builder
	b.WriteString("Project description:\n\"\"\"\n")
	b.WriteString(desc)
	b.WriteString("\n\"\"\"\n")
	if v := strings.TrimSpace(hints.ClientBudget); v != "" {
		fmt.Fprintf(&b, "Client budget: %s\n", v)
	}
	if v := strings.TrimSpace(hints.Timeline); v != "" {
		fmt.Fprintf(&b, "Desired timeline: %s\n", v)
	}
	if v := strings.TrimSpace(hints.Industry); v != "" {
		fmt.Fprintf(&b, "Client industry: %s\n", v)
	}

	b.WriteString("\nProject types:\n")
	for _, t := range cat.ProjectTypes {
		fmt.Fprintf(&b, "- %s: %s. %s\n", t.Code, t.Name, t.Description)
	}
	b.WriteString("\nCategories:\n")
	for _, c := range cat.Categories {
		fmt.Fprintf(&b, "- %s: %s. %s\n", c.Code, c.Name, c.Description)
	}
	b.WriteString("\nIndustries:\n")
	for _, i := range cat.Industries {
		fmt.Fprintf(&b, "- %s: %s. %s\n", i.Code, i.Name, i.Description)
	}
	b.WriteString("\nFeatures:\n")
	for _, f := range cat.Features {
		fmt.Fprintf(&b, "- %s: %s. %s\n", f.Code, f.Name, f.Description)
	}
	return b.String()
}

var analysisSchema = mustSchema(`{
  "type": "object",
  "definitions": {
    "recommendation": {
      "type": "object",
      "required": ["code"],
      "properties": {
        "code": {"type": "string", "minLength": 1},
        "name": {"type": "string"},
        "reasoning": {"type": "string"}
      }
    }
  },
  "required": [
    "recommendedProjectType",
    "recommendedCategory",
    "recommendedIndustry",
    "recommendedFeatures",
    "estimatedComplexity",
    "estimatedTimelineInWeeks",
    "estimatedBudgetRange"
  ],
  "properties": {
    "recommendedProjectType": {"$ref": "#/definitions/recommendation"},
    "recommendedCategory": {"$ref": "#/definitions/recommendation"},
    "recommendedIndustry": {"$ref": "#/definitions/recommendation"},
    "recommendedFeatures": {"type": "array", "items": {"$ref": "#/definitions/recommendation"}},
    "estimatedComplexity": {"type": "string", "enum": ["low", "medium", "high"]},
    "estimatedTimelineInWeeks": {"type": "integer", "minimum": 1},
    "estimatedBudgetRange": {
      "type": "object",
      "required": ["min", "max"],
      "properties": {
        "min": {"type": "number", "minimum": 0},
        "max": {"type": "number", "minimum": 0}
      }
    },
    "additionalNotes": {"type": "string"}
  }
}`)

type recommendationWire struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Reasoning string `json:"reasoning"`
}

type analysisWire struct {
	RecommendedProjectType   recommendationWire   `json:"recommendedProjectType"`
	RecommendedCategory      recommendationWire   `json:"recommendedCategory"`
	RecommendedIndustry      recommendationWire   `json:"recommendedIndustry"`
	RecommendedFeatures      []recommendationWire `json:"recommendedFeatures"`
	EstimatedComplexity      string               `json:"estimatedComplexity"`
	EstimatedTimelineInWeeks int                  `json:"estimatedTimelineInWeeks"`
	EstimatedBudgetRange     struct {
		Min decimal.Decimal `json:"min"`
		Max decimal.Decimal `json:"max"`
	} `json:"estimatedBudgetRange"`
	AdditionalNotes string `json:"additionalNotes"`
}

// toResult keeps only catalog codes. An unknown type, category or industry
// rejects the whole response; unknown features are dropped.
func (w analysisWire) toResult(cat entities.Catalog) (entities.AnalysisResult, error) {
	typeNames := map[string]string{}
	for _, t := range cat.ProjectTypes {
		typeNames[t.Code] = t.Name
	}
	categoryNames := map[string]string{}
	for _, c := range cat.Categories {
		categoryNames[c.Code] = c.Name
	}
	industryNames := map[string]string{}
	for _, i := range cat.Industries {
		industryNames[i.Code] = i.Name
	}
	featureNames := map[string]string{}
	for _, f := range cat.Features {
		featureNames[f.Code] = f.Name
	}

	pt, err := w.RecommendedProjectType.resolve("project type", typeNames)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	category, err := w.RecommendedCategory.resolve("category", categoryNames)
	if err != nil {
		return entities.AnalysisResult{}, err
	}
	industry, err := w.RecommendedIndustry.resolve("industry", industryNames)
	if err != nil {
		return entities.AnalysisResult{}, err
	}

	var features []entities.Recommendation
	seen := map[string]bool{}
	for _, f := range w.RecommendedFeatures {
		rec, err := f.resolve("feature", featureNames)
		if err != nil || seen[rec.Code] {
			continue
		}
		seen[rec.Code] = true
		features = append(features, rec)
	}

	if w.EstimatedBudgetRange.Min.GreaterThan(w.EstimatedBudgetRange.Max) {
		return entities.AnalysisResult{}, fmt.Errorf("%w: budget min %s exceeds max %s",
			ErrMalformedUpstreamResponse, w.EstimatedBudgetRange.Min, w.EstimatedBudgetRange.Max)
	}

	return entities.AnalysisResult{
		RecommendedProjectType:   pt,
		RecommendedCategory:      category,
		RecommendedIndustry:      industry,
		RecommendedFeatures:      features,
		EstimatedComplexity:      entities.AnalysisComplexity(w.EstimatedComplexity),
		EstimatedTimelineInWeeks: w.EstimatedTimelineInWeeks,
		EstimatedBudgetRange: entities.BudgetRange{
			Min: pricing.Round(w.EstimatedBudgetRange.Min),
			Max: pricing.Round(w.EstimatedBudgetRange.Max),
		},
		AdditionalNotes: strings.TrimSpace(w.AdditionalNotes),
	}, nil
}

func (r recommendationWire) resolve(kind string, names map[string]string) (entities.Recommendation, error) {
	code := strings.TrimSpace(r.Code)
	name, ok := names[code]
	if !ok {
		return entities.Recommendation{}, fmt.Errorf("%w: unknown %s code %q", ErrMalformedUpstreamResponse, kind, code)
	}
	return entities.Recommendation{Code: code, Name: name, Reasoning: strings.TrimSpace(r.Reasoning)}, nil
}
