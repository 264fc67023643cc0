package request

import (
	"strings"

	"vaif_quotes/internal/domain/analysis"
	"vaif_quotes/internal/domain/entities"
)

// AnalyzeQuoteRequest is the free-text step of the quote builder.
type AnalyzeQuoteRequest struct {
	Description  string `json:"description" binding:"required"`
	ClientBudget string `json:"clientBudget"`
	Timeline     string `json:"timeline"`
	Industry     string `json:"industry"`
}

func (r AnalyzeQuoteRequest) Hints() analysis.Hints {
	return analysis.Hints{
		ClientBudget: strings.TrimSpace(r.ClientBudget),
		Timeline:     strings.TrimSpace(r.Timeline),
		Industry:     strings.TrimSpace(r.Industry),
	}
}

// EstimateQuoteRequest is the catalog selection of the quote builder.
// Every code is optional; unknown codes are ignored by the estimator.
type EstimateQuoteRequest struct {
	ProjectTypeCode     string   `json:"projectTypeCode"`
	ProjectCategoryCode string   `json:"projectCategoryCode"`
	IndustryCode        string   `json:"industryCode"`
	Complexity          string   `json:"complexity"`
	FeatureCodes        []string `json:"featureCodes"`
	TechnologyCodes     []string `json:"technologyCodes"`
	TimelineCode        string   `json:"timelineCode"`
	CustomDescription   string   `json:"customDescription"`
}

func (r EstimateQuoteRequest) ToEntity() entities.EstimateRequest {
	return entities.EstimateRequest{
		ProjectTypeCode:     strings.TrimSpace(r.ProjectTypeCode),
		ProjectCategoryCode: strings.TrimSpace(r.ProjectCategoryCode),
		IndustryCode:        strings.TrimSpace(r.IndustryCode),
		Complexity:          entities.ComplexityLevel(strings.TrimSpace(r.Complexity)),
		FeatureCodes:        codes(r.FeatureCodes),
		TechnologyCodes:     codes(r.TechnologyCodes),
		TimelineCode:        strings.TrimSpace(r.TimelineCode),
		CustomDescription:   r.CustomDescription,
	}
}

func codes(in []string) []string {
	out := make([]string, 0, len(in))
	for _, c := range in {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
