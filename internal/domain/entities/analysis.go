package entities

// AnalysisComplexity is the coarse complexity guess of a narrative analysis.
type AnalysisComplexity string

const (
	AnalysisComplexityLow    AnalysisComplexity = "low"
	AnalysisComplexityMedium AnalysisComplexity = "medium"
	AnalysisComplexityHigh   AnalysisComplexity = "high"
)

func (c AnalysisComplexity) Valid() bool {
	return c == AnalysisComplexityLow || c == AnalysisComplexityMedium || c == AnalysisComplexityHigh
}

type Recommendation struct {
	Code      string
	Name      string
	Reasoning string
}

type BudgetRange struct {
	Min int64
	Max int64
}

// AnalysisResult is the structured reading of a free-text project description.
type AnalysisResult struct {
	RecommendedProjectType   Recommendation
	RecommendedCategory      Recommendation
	RecommendedIndustry      Recommendation
	RecommendedFeatures      []Recommendation
	EstimatedComplexity      AnalysisComplexity
	EstimatedTimelineInWeeks int
	EstimatedBudgetRange     BudgetRange
	AdditionalNotes          string
}
