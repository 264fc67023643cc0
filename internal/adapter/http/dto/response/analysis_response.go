package response

import "vaif_quotes/internal/domain/entities"

type RecommendationResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Reasoning string `json:"reasoning"`
}

type BudgetRangeResponse struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type AnalysisResponse struct {
	RecommendedProjectType   RecommendationResponse   `json:"recommendedProjectType"`
	RecommendedCategory      RecommendationResponse   `json:"recommendedCategory"`
	RecommendedIndustry      RecommendationResponse   `json:"recommendedIndustry"`
	RecommendedFeatures      []RecommendationResponse `json:"recommendedFeatures"`
	EstimatedComplexity      string                   `json:"estimatedComplexity"`
	EstimatedTimelineInWeeks int                      `json:"estimatedTimelineInWeeks"`
	EstimatedBudgetRange     BudgetRangeResponse      `json:"estimatedBudgetRange"`
	AdditionalNotes          string                   `json:"additionalNotes"`
}

func FromAnalysis(a entities.AnalysisResult) AnalysisResponse {
	features := make([]RecommendationResponse, 0, len(a.RecommendedFeatures))
	for _, f := range a.RecommendedFeatures {
		features = append(features, fromRecommendation(f))
	}
	return AnalysisResponse{
		RecommendedProjectType:   fromRecommendation(a.RecommendedProjectType),
		RecommendedCategory:      fromRecommendation(a.RecommendedCategory),
		RecommendedIndustry:      fromRecommendation(a.RecommendedIndustry),
		RecommendedFeatures:      features,
		EstimatedComplexity:      string(a.EstimatedComplexity),
		EstimatedTimelineInWeeks: a.EstimatedTimelineInWeeks,
		EstimatedBudgetRange:     BudgetRangeResponse{Min: a.EstimatedBudgetRange.Min, Max: a.EstimatedBudgetRange.Max},
		AdditionalNotes:          a.AdditionalNotes,
	}
}

func fromRecommendation(r entities.Recommendation) RecommendationResponse {
	return RecommendationResponse{Code: r.Code, Name: r.Name, Reasoning: r.Reasoning}
}
