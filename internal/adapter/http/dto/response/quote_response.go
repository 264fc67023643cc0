package response

import (
	"time"

	"vaif_quotes/internal/domain/entities"
)

type SelectionResponse struct {
	ProjectTypeCode     string   `json:"projectTypeCode,omitempty"`
	ProjectCategoryCode string   `json:"projectCategoryCode,omitempty"`
	IndustryCode        string   `json:"industryCode,omitempty"`
	Complexity          string   `json:"complexity,omitempty"`
	FeatureCodes        []string `json:"featureCodes"`
	TechnologyCodes     []string `json:"technologyCodes"`
	TimelineCode        string   `json:"timelineCode,omitempty"`
	CustomDescription   string   `json:"customDescription,omitempty"`
}

type QuoteResponse struct {
	ID           string            `json:"id"`
	ClientName   string            `json:"clientName"`
	ClientEmail  string            `json:"clientEmail"`
	Company      string            `json:"company,omitempty"`
	ClientBudget string            `json:"clientBudget,omitempty"`
	Timeline     string            `json:"timeline,omitempty"`
	Selection    SelectionResponse `json:"selection"`
	Estimate     EstimateResponse  `json:"estimate"`
	Status       string            `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	s := q.Selection
	return QuoteResponse{
		ID:           q.ID,
		ClientName:   q.ClientName,
		ClientEmail:  q.ClientEmail,
		Company:      q.Company,
		ClientBudget: q.ClientBudget,
		Timeline:     q.Timeline,
		Selection: SelectionResponse{
			ProjectTypeCode:     s.ProjectTypeCode,
			ProjectCategoryCode: s.ProjectCategoryCode,
			IndustryCode:        s.IndustryCode,
			Complexity:          string(s.Complexity),
			FeatureCodes:        nonNil(s.FeatureCodes),
			TechnologyCodes:     nonNil(s.TechnologyCodes),
			TimelineCode:        s.TimelineCode,
			CustomDescription:   s.CustomDescription,
		},
		Estimate:  FromEstimateResult(q.Estimate),
		Status:    string(q.Status),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
