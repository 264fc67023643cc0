package usecase

import (
	"vaif_quotes/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func prices(simple, moderate, complex, veryComplex int64) map[entities.ComplexityLevel]decimal.Decimal {
	return map[entities.ComplexityLevel]decimal.Decimal{
		entities.ComplexitySimple:      decimal.NewFromInt(simple),
		entities.ComplexityModerate:    decimal.NewFromInt(moderate),
		entities.ComplexityComplex:     decimal.NewFromInt(complex),
		entities.ComplexityVeryComplex: decimal.NewFromInt(veryComplex),
	}
}

var (
	mobileApp = entities.ProjectTypeDef{
		Code: "MOBILE_APP", Name: "Mobile Application", Description: "Native or cross-platform app",
		BasePriceByComplexity: prices(8000, 12000, 18000, 25000), DefaultComplexity: entities.ComplexityModerate, Active: true,
	}
	website = entities.ProjectTypeDef{
		Code: "WEBSITE", Name: "Website", Description: "Marketing site",
		BasePriceByComplexity: prices(3000, 5000, 8000, 12000), DefaultComplexity: entities.ComplexitySimple, Active: true,
	}
	retiredType = entities.ProjectTypeDef{
		Code: "KIOSK", Name: "Kiosk", BasePriceByComplexity: prices(1, 2, 3, 4), DefaultComplexity: entities.ComplexitySimple,
	}
	ecommerceCategory = entities.ProjectCategoryDef{Code: "ECOMMERCE", Name: "E-commerce", PriceMultiplier: dec("1.2"), Active: true}
	blogCategory      = entities.ProjectCategoryDef{Code: "BLOG", Name: "Blog", PriceMultiplier: dec("0.9")}
	generalIndustry   = entities.IndustryDef{Code: "GENERAL", Name: "General", PriceMultiplier: dec("1"), Active: true}
	healthIndustry    = entities.IndustryDef{Code: "HEALTHCARE", Name: "Healthcare", Description: "Clinics and telemedicine", PriceMultiplier: dec("1.1"), Active: true}
	authFeature       = entities.FeatureDef{Code: "USER_AUTH", Name: "User Authentication", BasePrice: dec("1500"), Active: true}
	paymentFeature    = entities.FeatureDef{Code: "PAYMENT", Name: "Payment Processing", BasePrice: dec("2500"), Active: true}
	chatFeature       = entities.FeatureDef{Code: "MESSAGING", Name: "Messaging", BasePrice: dec("3000")}
	reactTech         = entities.TechnologyDef{Code: "REACT", Name: "React", PriceImpact: dec("500"), Active: true}
	rushTimeline      = entities.TimelineDef{Code: "RUSH", Name: "Rush", PriceMultiplier: dec("1.5"), Active: true}
)

func testCatalog() entities.Catalog {
	return entities.Catalog{
		ProjectTypes: []entities.ProjectTypeDef{mobileApp, website, retiredType},
		Categories:   []entities.ProjectCategoryDef{ecommerceCategory, blogCategory},
		Industries:   []entities.IndustryDef{generalIndustry, healthIndustry},
		Features:     []entities.FeatureDef{authFeature, paymentFeature, chatFeature},
		Technologies: []entities.TechnologyDef{reactTech},
		Timelines:    []entities.TimelineDef{rushTimeline},
	}
}
