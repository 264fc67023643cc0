package analysis

import (
	"strings"
	"testing"

	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() entities.Catalog {
	return entities.Catalog{
		ProjectTypes: []entities.ProjectTypeDef{{Code: TypeMobileApp, Name: "Mobile Application"}},
		Industries: []entities.IndustryDef{
			{Code: "HEALTHCARE", Name: "Healthcare", Description: "Clinics, hospitals and telemedicine", PriceMultiplier: decimal.NewFromInt(1)},
			{Code: "FINANCE", Name: "Finance", Description: "Banking & fintech (regulated)", PriceMultiplier: decimal.NewFromInt(1)},
		},
		Features: []entities.FeatureDef{
			{Code: "USER_AUTH", Name: "User Authentication"},
			{Code: "PAYMENT", Name: "Payment Processing"},
		},
	}
}

func codes(recs []entities.Recommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Code)
	}
	return out
}

func TestHeuristic_MobileAppWithLoginAndPayment(t *testing.T) {
	res := Heuristic("I need a mobile app with login and payment processing", Hints{}, testCatalog())

	assert.Equal(t, TypeMobileApp, res.RecommendedProjectType.Code)
	assert.Equal(t, "Mobile Application", res.RecommendedProjectType.Name)
	assert.ElementsMatch(t, []string{"USER_AUTH", "PAYMENT"}, codes(res.RecommendedFeatures))
	assert.Equal(t, entities.AnalysisComplexityMedium, res.EstimatedComplexity)
	assert.Equal(t, 4, res.EstimatedTimelineInWeeks)
	assert.Equal(t, entities.BudgetRange{Min: 8000, Max: 15000}, res.EstimatedBudgetRange)
	assert.Equal(t, FallbackNote, res.AdditionalNotes)
	assert.Equal(t, IndustryGeneral, res.RecommendedIndustry.Code)
}

func TestHeuristic_ProjectType(t *testing.T) {
	cases := map[string]string{
		"An online shop for shoes":         TypeEcommerce,
		"ecommerce storefront":             TypeEcommerce,
		"A simple site for my bakery":      TypeWebsite,
		"Native MOBILE experience":         TypeMobileApp,
		"Company intranet web application": TypeMobileApp, // "app" is checked first
		"":                                 TypeWebsite,
	}
	for in, want := range cases {
		assert.Equal(t, want, Heuristic(in, Hints{}, entities.Catalog{}).RecommendedProjectType.Code, in)
	}
}

func TestHeuristic_Category(t *testing.T) {
	cases := map[string]string{
		"sell things in my e-commerce site": CategoryEcommerce,
		"a cooking blog":                    CategoryBlog,
		"content hub for articles":          CategoryBlog,
		"showcase my photography":           CategoryPortfolio,
		"a page about our firm":             CategoryBrochure,
	}
	for in, want := range cases {
		assert.Equal(t, want, Heuristic(in, Hints{}, entities.Catalog{}).RecommendedCategory.Code, in)
	}
}

func TestHeuristic_Industry(t *testing.T) {
	cat := testCatalog()

	assert.Equal(t, "HEALTHCARE", Heuristic("x", Hints{Industry: "health"}, cat).RecommendedIndustry.Code)
	assert.Equal(t, "HEALTHCARE", Heuristic("x", Hints{Industry: "TELEMEDICINE"}, cat).RecommendedIndustry.Code)
	// regex metacharacters in the hint are matched literally
	assert.Equal(t, "FINANCE", Heuristic("x", Hints{Industry: "(regulated)"}, cat).RecommendedIndustry.Code)
	assert.Equal(t, IndustryGeneral, Heuristic("x", Hints{Industry: "mining"}, cat).RecommendedIndustry.Code)
	assert.Equal(t, IndustryGeneral, Heuristic("x", Hints{Industry: "health"}, entities.Catalog{}).RecommendedIndustry.Code)
	assert.Equal(t, "General", Heuristic("x", Hints{}, cat).RecommendedIndustry.Name)
}

func TestHeuristic_FeaturePerKeyword(t *testing.T) {
	res := Heuristic("Login and authentication, admin dashboard with analytics, search, messaging and notifications", Hints{}, entities.Catalog{})

	assert.Equal(t,
		[]string{"USER_AUTH", "USER_AUTH", "SEARCH", "ADMIN_PANEL", "DASHBOARD", "NOTIFICATIONS", "MESSAGING", "ANALYTICS"},
		codes(res.RecommendedFeatures))
	require.Len(t, res.RecommendedFeatures, 8)
	assert.Contains(t, res.RecommendedFeatures[0].Reasoning, `"login"`)
	assert.Contains(t, res.RecommendedFeatures[1].Reasoning, `"authentication"`)
	assert.Equal(t, "USER_AUTH", res.RecommendedFeatures[0].Name)
}

func TestHeuristic_SameCodeKeywordsCountTowardComplexity(t *testing.T) {
	res := Heuristic("Site with login and authentication", Hints{}, entities.Catalog{})

	require.Len(t, res.RecommendedFeatures, 2)
	assert.Equal(t, entities.AnalysisComplexityMedium, res.EstimatedComplexity)
	assert.Equal(t, 4, res.EstimatedTimelineInWeeks)
	assert.Equal(t, entities.BudgetRange{Min: 3000, Max: 6000}, res.EstimatedBudgetRange)
}

func TestHeuristic_LengthInUTF16Units(t *testing.T) {
	// 100 emoji are 100 runes but 200 UTF-16 units, so the description is not short.
	res := Heuristic(strings.Repeat("\U0001F680", 100), Hints{}, entities.Catalog{})
	assert.Equal(t, entities.AnalysisComplexityMedium, res.EstimatedComplexity)

	res = Heuristic(strings.Repeat("\U0001F680", 99), Hints{}, entities.Catalog{})
	assert.Equal(t, entities.AnalysisComplexityLow, res.EstimatedComplexity)
}

func TestHeuristic_Complexity(t *testing.T) {
	short := "A brochure site"
	assert.Equal(t, entities.AnalysisComplexityLow, Heuristic(short, Hints{}, entities.Catalog{}).EstimatedComplexity)

	long := strings.Repeat("x", 480) + " login payment search admin"
	res := Heuristic(long, Hints{}, entities.Catalog{})
	assert.Equal(t, entities.AnalysisComplexityHigh, res.EstimatedComplexity)
	assert.Equal(t, 8, res.EstimatedTimelineInWeeks)
	assert.Equal(t, entities.BudgetRange{Min: 4500, Max: 9000}, res.EstimatedBudgetRange)

	low := Heuristic("A small website", Hints{}, entities.Catalog{})
	assert.Equal(t, 2, low.EstimatedTimelineInWeeks)
	assert.Equal(t, entities.BudgetRange{Min: 2100, Max: 4200}, low.EstimatedBudgetRange)
}

func TestBudgetFor(t *testing.T) {
	assert.Equal(t, entities.BudgetRange{Min: 9000, Max: 18000}, BudgetFor(TypeWebApp, entities.AnalysisComplexityHigh))
	assert.Equal(t, entities.BudgetRange{Min: 3500, Max: 7000}, BudgetFor(TypeEcommerce, entities.AnalysisComplexityLow))
	assert.Equal(t, entities.BudgetRange{Min: 3000, Max: 6000}, BudgetFor("UNKNOWN", entities.AnalysisComplexityMedium))
}

func TestHeuristic_Deterministic(t *testing.T) {
	in := "I need a mobile app with login and payment processing"
	assert.Equal(t, Heuristic(in, Hints{Industry: "health"}, testCatalog()), Heuristic(in, Hints{Industry: "health"}, testCatalog()))
}
