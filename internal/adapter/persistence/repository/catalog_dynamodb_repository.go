package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultCatalogTableName = "catalog"

	batchGetLimit   = 100
	batchWriteLimit = 25
	maxBatchRetries = 5
)

var ErrUnprocessedItems = errors.New("dynamodb left unprocessed items")

type catalogItem struct {
	Kind              string            `dynamodbav:"kind"`
	Code              string            `dynamodbav:"code"`
	Name              string            `dynamodbav:"name"`
	Description       string            `dynamodbav:"description,omitempty"`
	Active            bool              `dynamodbav:"active"`
	BasePrices        map[string]string `dynamodbav:"base_prices,omitempty"`
	DefaultComplexity string            `dynamodbav:"default_complexity,omitempty"`
	PriceMultiplier   string            `dynamodbav:"price_multiplier,omitempty"`
	BasePrice         string            `dynamodbav:"base_price,omitempty"`
	PriceImpact       string            `dynamodbav:"price_impact,omitempty"`
	UpdatedAt         string            `dynamodbav:"updated_at,omitempty"`
}

// CatalogDynamoRepository reads and seeds pricing reference data in DynamoDB.
//
// Table requirements:
//   - PK: kind (string) - project_type, category, industry, feature, technology, timeline
//   - SK: code (string)
//
// Prices and multipliers are stored as decimal strings.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) GetProjectType(ctx context.Context, code string) (entities.ProjectTypeDef, error) {
	it, err := r.get(ctx, entities.CatalogKindProjectType, code)
	if err != nil || it == nil {
		return entities.ProjectTypeDef{}, err
	}
	return toProjectType(*it)
}

func (r *CatalogDynamoRepository) GetCategory(ctx context.Context, code string) (entities.ProjectCategoryDef, error) {
	it, err := r.get(ctx, entities.CatalogKindCategory, code)
	if err != nil || it == nil {
		return entities.ProjectCategoryDef{}, err
	}
	return toCategory(*it)
}

func (r *CatalogDynamoRepository) GetIndustry(ctx context.Context, code string) (entities.IndustryDef, error) {
	it, err := r.get(ctx, entities.CatalogKindIndustry, code)
	if err != nil || it == nil {
		return entities.IndustryDef{}, err
	}
	return toIndustry(*it)
}

func (r *CatalogDynamoRepository) GetTimeline(ctx context.Context, code string) (entities.TimelineDef, error) {
	it, err := r.get(ctx, entities.CatalogKindTimeline, code)
	if err != nil || it == nil {
		return entities.TimelineDef{}, err
	}
	return toTimeline(*it)
}

func (r *CatalogDynamoRepository) ListFeatures(ctx context.Context, codes []string) ([]entities.FeatureDef, error) {
	items, err := r.batchGet(ctx, entities.CatalogKindFeature, codes)
	if err != nil {
		return nil, err
	}
	out := make([]entities.FeatureDef, 0, len(items))
	for _, it := range items {
		f, err := toFeature(it)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ListTechnologies(ctx context.Context, codes []string) ([]entities.TechnologyDef, error) {
	items, err := r.batchGet(ctx, entities.CatalogKindTechnology, codes)
	if err != nil {
		return nil, err
	}
	out := make([]entities.TechnologyDef, 0, len(items))
	for _, it := range items {
		t, err := toTechnology(it)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *CatalogDynamoRepository) ListAll(ctx context.Context) (entities.Catalog, error) {
	var c entities.Catalog
	for _, kind := range catalogKinds {
		items, err := r.queryKind(ctx, kind)
		if err != nil {
			return entities.Catalog{}, err
		}
		if err := appendItems(&c, kind, items); err != nil {
			return entities.Catalog{}, err
		}
	}
	return c, nil
}

// PutCatalog upserts every record of c.
func (r *CatalogDynamoRepository) PutCatalog(ctx context.Context, c entities.Catalog) (int, error) {
	items := catalogItems(c, nowString())
	requests := make([]types.WriteRequest, 0, len(items))
	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		if err != nil {
			return 0, err
		}
		requests = append(requests, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}

	for _, batch := range chunk(requests, batchWriteLimit) {
		pending := map[string][]types.WriteRequest{r.tableName: batch}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == maxBatchRetries {
				return 0, ErrUnprocessedItems
			}
			if attempt > 0 {
				if err := sleepCtx(ctx, backoff(attempt)); err != nil {
					return 0, err
				}
			}
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
			if err != nil {
				return 0, err
			}
			pending = out.UnprocessedItems
		}
	}
	return len(items), nil
}

var catalogKinds = []entities.CatalogKind{
	entities.CatalogKindProjectType,
	entities.CatalogKindCategory,
	entities.CatalogKindIndustry,
	entities.CatalogKindFeature,
	entities.CatalogKindTechnology,
	entities.CatalogKindTimeline,
}

func catalogKey(kind entities.CatalogKind, code string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"kind": &types.AttributeValueMemberS{Value: string(kind)},
		"code": &types.AttributeValueMemberS{Value: code},
	}
}

func (r *CatalogDynamoRepository) get(ctx context.Context, kind entities.CatalogKind, code string) (*catalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       catalogKey(kind, code),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// batchGet returns the found items in the order of codes.
func (r *CatalogDynamoRepository) batchGet(ctx context.Context, kind entities.CatalogKind, codes []string) ([]catalogItem, error) {
	found := make(map[string]catalogItem, len(codes))
	for _, batch := range chunk(codes, batchGetLimit) {
		keys := make([]map[string]types.AttributeValue, 0, len(batch))
		for _, code := range batch {
			keys = append(keys, catalogKey(kind, code))
		}
		pending := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == maxBatchRetries {
				return nil, ErrUnprocessedItems
			}
			if attempt > 0 {
				if err := sleepCtx(ctx, backoff(attempt)); err != nil {
					return nil, err
				}
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			for _, raw := range out.Responses[r.tableName] {
				var it catalogItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				found[it.Code] = it
			}
			pending = out.UnprocessedKeys
		}
	}

	items := make([]catalogItem, 0, len(found))
	for _, code := range codes {
		if it, ok := found[code]; ok {
			items = append(items, it)
		}
	}
	return items, nil
}

func (r *CatalogDynamoRepository) queryKind(ctx context.Context, kind entities.CatalogKind) ([]catalogItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
		},
	})

	var items []catalogItem
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it catalogItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
	}
	return items, nil
}

func backoff(attempt int) time.Duration {
	return time.Duration(50*(1<<attempt)) * time.Millisecond
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func appendItems(c *entities.Catalog, kind entities.CatalogKind, items []catalogItem) error {
	for _, it := range items {
		switch kind {
		case entities.CatalogKindProjectType:
			v, err := toProjectType(it)
			if err != nil {
				return err
			}
			c.ProjectTypes = append(c.ProjectTypes, v)
		case entities.CatalogKindCategory:
			v, err := toCategory(it)
			if err != nil {
				return err
			}
			c.Categories = append(c.Categories, v)
		case entities.CatalogKindIndustry:
			v, err := toIndustry(it)
			if err != nil {
				return err
			}
			c.Industries = append(c.Industries, v)
		case entities.CatalogKindFeature:
			v, err := toFeature(it)
			if err != nil {
				return err
			}
			c.Features = append(c.Features, v)
		case entities.CatalogKindTechnology:
			v, err := toTechnology(it)
			if err != nil {
				return err
			}
			c.Technologies = append(c.Technologies, v)
		case entities.CatalogKindTimeline:
			v, err := toTimeline(it)
			if err != nil {
				return err
			}
			c.Timelines = append(c.Timelines, v)
		default:
			return fmt.Errorf("unknown catalog kind %q", kind)
		}
	}
	return nil
}

func catalogItems(c entities.Catalog, updatedAt string) []catalogItem {
	var items []catalogItem
	for _, t := range c.ProjectTypes {
		prices := make(map[string]string, len(t.BasePriceByComplexity))
		for level, p := range t.BasePriceByComplexity {
			prices[string(level)] = decimalToString(p)
		}
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindProjectType), Code: t.Code, Name: t.Name, Description: t.Description,
			Active: t.Active, BasePrices: prices, DefaultComplexity: string(t.DefaultComplexity), UpdatedAt: updatedAt,
		})
	}
	for _, x := range c.Categories {
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindCategory), Code: x.Code, Name: x.Name, Description: x.Description,
			Active: x.Active, PriceMultiplier: decimalToString(x.PriceMultiplier), UpdatedAt: updatedAt,
		})
	}
	for _, x := range c.Industries {
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindIndustry), Code: x.Code, Name: x.Name, Description: x.Description,
			Active: x.Active, PriceMultiplier: decimalToString(x.PriceMultiplier), UpdatedAt: updatedAt,
		})
	}
	for _, x := range c.Features {
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindFeature), Code: x.Code, Name: x.Name, Description: x.Description,
			Active: x.Active, BasePrice: decimalToString(x.BasePrice), UpdatedAt: updatedAt,
		})
	}
	for _, x := range c.Technologies {
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindTechnology), Code: x.Code, Name: x.Name,
			Active: x.Active, PriceImpact: decimalToString(x.PriceImpact), UpdatedAt: updatedAt,
		})
	}
	for _, x := range c.Timelines {
		items = append(items, catalogItem{
			Kind: string(entities.CatalogKindTimeline), Code: x.Code, Name: x.Name,
			Active: x.Active, PriceMultiplier: decimalToString(x.PriceMultiplier), UpdatedAt: updatedAt,
		})
	}
	return items
}

func toProjectType(it catalogItem) (entities.ProjectTypeDef, error) {
	prices := make(map[entities.ComplexityLevel]decimal.Decimal, len(it.BasePrices))
	for level, raw := range it.BasePrices {
		p, err := parseDecimal("project type "+it.Code+" base price", raw)
		if err != nil {
			return entities.ProjectTypeDef{}, err
		}
		prices[entities.ComplexityLevel(level)] = p
	}
	return entities.ProjectTypeDef{
		Code:                  it.Code,
		Name:                  it.Name,
		Description:           it.Description,
		BasePriceByComplexity: prices,
		DefaultComplexity:     entities.ComplexityLevel(it.DefaultComplexity),
		Active:                it.Active,
	}, nil
}

func toCategory(it catalogItem) (entities.ProjectCategoryDef, error) {
	m, err := parseDecimal("category "+it.Code+" multiplier", it.PriceMultiplier)
	if err != nil {
		return entities.ProjectCategoryDef{}, err
	}
	return entities.ProjectCategoryDef{Code: it.Code, Name: it.Name, Description: it.Description, PriceMultiplier: m, Active: it.Active}, nil
}

func toIndustry(it catalogItem) (entities.IndustryDef, error) {
	m, err := parseDecimal("industry "+it.Code+" multiplier", it.PriceMultiplier)
	if err != nil {
		return entities.IndustryDef{}, err
	}
	return entities.IndustryDef{Code: it.Code, Name: it.Name, Description: it.Description, PriceMultiplier: m, Active: it.Active}, nil
}

func toFeature(it catalogItem) (entities.FeatureDef, error) {
	p, err := parseDecimal("feature "+it.Code+" base price", it.BasePrice)
	if err != nil {
		return entities.FeatureDef{}, err
	}
	return entities.FeatureDef{Code: it.Code, Name: it.Name, Description: it.Description, BasePrice: p, Active: it.Active}, nil
}

func toTechnology(it catalogItem) (entities.TechnologyDef, error) {
	p, err := parseDecimal("technology "+it.Code+" price impact", it.PriceImpact)
	if err != nil {
		return entities.TechnologyDef{}, err
	}
	return entities.TechnologyDef{Code: it.Code, Name: it.Name, PriceImpact: p, Active: it.Active}, nil
}

func toTimeline(it catalogItem) (entities.TimelineDef, error) {
	m, err := parseDecimal("timeline "+it.Code+" multiplier", it.PriceMultiplier)
	if err != nil {
		return entities.TimelineDef{}, err
	}
	return entities.TimelineDef{Code: it.Code, Name: it.Name, PriceMultiplier: m, Active: it.Active}, nil
}
