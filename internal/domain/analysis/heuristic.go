// Package analysis reads a project description without a language model.
package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

const (
	TypeWebsite   = "WEBSITE"
	TypeMobileApp = "MOBILE_APP"
	TypeEcommerce = "ECOMMERCE"
	TypeWebApp    = "WEB_APP"

	CategoryEcommerce = "ECOMMERCE"
	CategoryBlog      = "BLOG"
	CategoryPortfolio = "PORTFOLIO"
	CategoryBrochure  = "BROCHURE"

	IndustryGeneral = "GENERAL"

	// FallbackNote is reported in AdditionalNotes whenever the heuristic produced the analysis.
	FallbackNote = "This analysis was generated with keyword matching because the AI analysis service was unavailable. Please review the recommendations before building your quote."
)

// Hints are the optional quote builder fields sent along with the description.
type Hints struct {
	ClientBudget string
	Timeline     string
	Industry     string
}

type keywordRule struct {
	keywords []string
	code     string
}

var typeRules = []keywordRule{
	{keywords: []string{"mobile", "app"}, code: TypeMobileApp},
	{keywords: []string{"e-commerce", "ecommerce", "shop"}, code: TypeEcommerce},
	{keywords: []string{"web app", "application"}, code: TypeWebApp},
}

var categoryRules = []keywordRule{
	{keywords: []string{"e-commerce", "shop"}, code: CategoryEcommerce},
	{keywords: []string{"blog", "content"}, code: CategoryBlog},
	{keywords: []string{"portfolio", "showcase"}, code: CategoryPortfolio},
}

type featureKeyword struct {
	keyword string
	code    string
}

var featureKeywords = []featureKeyword{
	{keyword: "login", code: "USER_AUTH"},
	{keyword: "authentication", code: "USER_AUTH"},
	{keyword: "payment", code: "PAYMENT"},
	{keyword: "search", code: "SEARCH"},
	{keyword: "admin", code: "ADMIN_PANEL"},
	{keyword: "dashboard", code: "DASHBOARD"},
	{keyword: "notification", code: "NOTIFICATIONS"},
	{keyword: "messaging", code: "MESSAGING"},
	{keyword: "analytics", code: "ANALYTICS"},
}

var budgetByType = map[string]entities.BudgetRange{
	TypeWebsite:   {Min: 3000, Max: 6000},
	TypeMobileApp: {Min: 8000, Max: 15000},
	TypeEcommerce: {Min: 5000, Max: 10000},
	TypeWebApp:    {Min: 6000, Max: 12000},
}

var (
	highBudgetScale = decimal.RequireFromString("1.5")
	lowBudgetScale  = decimal.RequireFromString("0.7")
)

var defaultNames = map[string]string{
	TypeWebsite:       "Website",
	TypeMobileApp:     "Mobile App",
	TypeEcommerce:     "E-commerce",
	TypeWebApp:        "Web Application",
	CategoryBlog:      "Blog",
	CategoryPortfolio: "Portfolio",
	CategoryBrochure:  "Brochure",
	IndustryGeneral:   "General",
}

// Heuristic is the network-free analysis used when the language model cannot
// answer. The result depends only on its arguments.
func Heuristic(description string, hints Hints, catalog entities.Catalog) entities.AnalysisResult {
	text := strings.ToLower(description)

	typeCode := matchRules(text, typeRules, TypeWebsite)
	categoryCode := matchRules(text, categoryRules, CategoryBrochure)
	industryCode := matchIndustry(hints.Industry, catalog.Industries)
	features := matchFeatures(text, catalog.Features)

	complexity := complexityFor(descriptionLength(description), len(features))

	return entities.AnalysisResult{
		RecommendedProjectType: entities.Recommendation{
			Code:      typeCode,
			Name:      typeName(typeCode, catalog),
			Reasoning: "Selected by matching keywords in the project description.",
		},
		RecommendedCategory: entities.Recommendation{
			Code:      categoryCode,
			Name:      categoryName(categoryCode, catalog),
			Reasoning: "Selected by matching keywords in the project description.",
		},
		RecommendedIndustry: entities.Recommendation{
			Code:      industryCode,
			Name:      industryName(industryCode, catalog),
			Reasoning: industryReasoning(hints.Industry, industryCode),
		},
		RecommendedFeatures:      features,
		EstimatedComplexity:      complexity,
		EstimatedTimelineInWeeks: weeksFor(complexity),
		EstimatedBudgetRange:     BudgetFor(typeCode, complexity),
		AdditionalNotes:          FallbackNote,
	}
}

func matchRules(text string, rules []keywordRule, def string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.code
			}
		}
	}
	return def
}

func matchIndustry(hint string, industries []entities.IndustryDef) string {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return IndustryGeneral
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(hint))
	if err != nil {
		return IndustryGeneral
	}
	for _, ind := range industries {
		if re.MatchString(ind.Name) || re.MatchString(ind.Description) {
			return ind.Code
		}
	}
	return IndustryGeneral
}

func industryReasoning(hint, code string) string {
	if strings.TrimSpace(hint) == "" {
		return "No industry was provided."
	}
	if code == IndustryGeneral {
		return fmt.Sprintf("No catalog industry matched %q.", hint)
	}
	return fmt.Sprintf("Matched the provided industry %q.", hint)
}

// descriptionLength counts UTF-16 code units, the unit browsers use for
// the quote builder's length limits.
func descriptionLength(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// matchFeatures returns one recommendation per matched keyword. Two keywords
// for the same feature code yield two recommendations.
func matchFeatures(text string, catalog []entities.FeatureDef) []entities.Recommendation {
	names := make(map[string]string, len(catalog))
	for _, f := range catalog {
		names[f.Code] = f.Name
	}

	var out []entities.Recommendation
	for _, fk := range featureKeywords {
		if !strings.Contains(text, fk.keyword) {
			continue
		}
		name := names[fk.code]
		if name == "" {
			name = fk.code
		}
		out = append(out, entities.Recommendation{
			Code:      fk.code,
			Name:      name,
			Reasoning: fmt.Sprintf("The description mentions %q.", fk.keyword),
		})
	}
	return out
}

func complexityFor(length, featureCount int) entities.AnalysisComplexity {
	switch {
	case length > 500 && featureCount > 3:
		return entities.AnalysisComplexityHigh
	case length < 200 && featureCount < 2:
		return entities.AnalysisComplexityLow
	default:
		return entities.AnalysisComplexityMedium
	}
}

func weeksFor(c entities.AnalysisComplexity) int {
	switch c {
	case entities.AnalysisComplexityHigh:
		return 8
	case entities.AnalysisComplexityLow:
		return 2
	default:
		return 4
	}
}

// BudgetFor returns the type's reference budget scaled by complexity.
// Unknown types use the website range.
func BudgetFor(typeCode string, c entities.AnalysisComplexity) entities.BudgetRange {
	r, ok := budgetByType[typeCode]
	if !ok {
		r = budgetByType[TypeWebsite]
	}
	var scale decimal.Decimal
	switch c {
	case entities.AnalysisComplexityHigh:
		scale = highBudgetScale
	case entities.AnalysisComplexityLow:
		scale = lowBudgetScale
	default:
		return r
	}
	return entities.BudgetRange{
		Min: pricing.Round(decimal.NewFromInt(r.Min).Mul(scale)),
		Max: pricing.Round(decimal.NewFromInt(r.Max).Mul(scale)),
	}
}

func typeName(code string, c entities.Catalog) string {
	for _, t := range c.ProjectTypes {
		if t.Code == code {
			return t.Name
		}
	}
	return fallbackName(code)
}

func categoryName(code string, c entities.Catalog) string {
	for _, x := range c.Categories {
		if x.Code == code {
			return x.Name
		}
	}
	return fallbackName(code)
}

func industryName(code string, c entities.Catalog) string {
	for _, x := range c.Industries {
		if x.Code == code {
			return x.Name
		}
	}
	return fallbackName(code)
}

func fallbackName(code string) string {
	if n, ok := defaultNames[code]; ok {
		return n
	}
	return code
}
