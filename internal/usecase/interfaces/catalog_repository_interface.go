package interfaces

import (
	"context"
	"vaif_quotes/internal/domain/entities"
)

// ICatalogRepository reads pricing reference data.
//
// Single-record getters return a zero value (empty Code) when the code does not
// exist. List methods skip unknown codes. Records are returned regardless of
// their Active flag; filtering is the caller's job.

type ICatalogRepository interface {
	GetProjectType(ctx context.Context, code string) (entities.ProjectTypeDef, error)
	GetCategory(ctx context.Context, code string) (entities.ProjectCategoryDef, error)
	GetIndustry(ctx context.Context, code string) (entities.IndustryDef, error)
	GetTimeline(ctx context.Context, code string) (entities.TimelineDef, error)
	ListFeatures(ctx context.Context, codes []string) ([]entities.FeatureDef, error)
	ListTechnologies(ctx context.Context, codes []string) ([]entities.TechnologyDef, error)
	ListAll(ctx context.Context) (entities.Catalog, error)
}
