package repository

import (
	"context"
	"errors"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const defaultQuotesTableName = "quotes"

type quoteSelectionItem struct {
	ProjectType  string   `dynamodbav:"project_type,omitempty"`
	Category     string   `dynamodbav:"category,omitempty"`
	Industry     string   `dynamodbav:"industry,omitempty"`
	Complexity   string   `dynamodbav:"complexity,omitempty"`
	Features     []string `dynamodbav:"features,omitempty"`
	Technologies []string `dynamodbav:"technologies,omitempty"`
	Timeline     string   `dynamodbav:"timeline,omitempty"`
	Description  string   `dynamodbav:"description,omitempty"`
}

type quoteEstimateItem struct {
	Base               int64    `dynamodbav:"base"`
	Min                int64    `dynamodbav:"min"`
	Max                int64    `dynamodbav:"max"`
	BaseCost           string   `dynamodbav:"base_cost"`
	FeatureCost        string   `dynamodbav:"feature_cost"`
	TechnologyImpact   string   `dynamodbav:"technology_impact"`
	TimelineMultiplier string   `dynamodbav:"timeline_multiplier"`
	AIAdjustment       string   `dynamodbav:"ai_adjustment,omitempty"`
	Reasoning          string   `dynamodbav:"reasoning,omitempty"`
	Confidence         string   `dynamodbav:"confidence,omitempty"`
	RiskFactors        []string `dynamodbav:"risk_factors,omitempty"`
	OpportunityFactors []string `dynamodbav:"opportunity_factors,omitempty"`
}

type quoteItem struct {
	ID           string             `dynamodbav:"id"`
	ClientName   string             `dynamodbav:"client_name"`
	ClientEmail  string             `dynamodbav:"client_email"`
	Company      string             `dynamodbav:"company,omitempty"`
	Selection    quoteSelectionItem `dynamodbav:"selection"`
	ClientBudget string             `dynamodbav:"client_budget,omitempty"`
	Timeline     string             `dynamodbav:"timeline,omitempty"`
	Estimate     quoteEstimateItem  `dynamodbav:"estimate"`
	Status       string             `dynamodbav:"status"`
	CreatedAt    string             `dynamodbav:"created_at"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_email-index (PK: client_email)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

// UpdateStatus sets status only while the stored status is expected.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected":   &types.AttributeValueMemberS{Value: string(expected)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it)
}

func toQuoteItem(q entities.Quote) quoteItem {
	sel := q.Selection
	est := q.Estimate
	it := quoteItem{
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientEmail: q.ClientEmail,
		Company:     q.Company,
		Selection: quoteSelectionItem{
			ProjectType:  sel.ProjectTypeCode,
			Category:     sel.ProjectCategoryCode,
			Industry:     sel.IndustryCode,
			Complexity:   string(sel.Complexity),
			Features:     sel.FeatureCodes,
			Technologies: sel.TechnologyCodes,
			Timeline:     sel.TimelineCode,
			Description:  sel.CustomDescription,
		},
		ClientBudget: q.ClientBudget,
		Timeline:     q.Timeline,
		Estimate: quoteEstimateItem{
			Base:               est.BaseEstimate,
			Min:                est.MinEstimate,
			Max:                est.MaxEstimate,
			BaseCost:           decimalToString(est.Breakdown.BaseCost),
			FeatureCost:        decimalToString(est.Breakdown.FeatureCost),
			TechnologyImpact:   decimalToString(est.Breakdown.TechnologyImpact),
			TimelineMultiplier: decimalToString(est.Breakdown.TimelineMultiplier),
			Reasoning:          est.Reasoning,
			Confidence:         string(est.Confidence),
			RiskFactors:        est.RiskFactors,
			OpportunityFactors: est.OpportunityFactors,
		},
		Status:    string(q.Status),
		CreatedAt: formatTime(q.CreatedAt),
		UpdatedAt: formatTime(q.UpdatedAt),
	}
	if est.Breakdown.AIAdjustment != nil {
		it.Estimate.AIAdjustment = decimalToString(*est.Breakdown.AIAdjustment)
	}
	return it
}

func fromQuoteItem(it quoteItem) (entities.Quote, error) {
	e := it.Estimate
	breakdown := entities.EstimateBreakdown{}
	var err error
	if breakdown.BaseCost, err = parseDecimal("base_cost", e.BaseCost); err != nil {
		return entities.Quote{}, err
	}
	if breakdown.FeatureCost, err = parseDecimal("feature_cost", e.FeatureCost); err != nil {
		return entities.Quote{}, err
	}
	if breakdown.TechnologyImpact, err = parseDecimal("technology_impact", e.TechnologyImpact); err != nil {
		return entities.Quote{}, err
	}
	if breakdown.TimelineMultiplier, err = parseDecimal("timeline_multiplier", e.TimelineMultiplier); err != nil {
		return entities.Quote{}, err
	}
	if e.AIAdjustment != "" {
		var adj decimal.Decimal
		if adj, err = parseDecimal("ai_adjustment", e.AIAdjustment); err != nil {
			return entities.Quote{}, err
		}
		breakdown.AIAdjustment = &adj
	}

	return entities.Quote{
		ID:          it.ID,
		ClientName:  it.ClientName,
		ClientEmail: it.ClientEmail,
		Company:     it.Company,
		Selection: entities.EstimateRequest{
			ProjectTypeCode:     it.Selection.ProjectType,
			ProjectCategoryCode: it.Selection.Category,
			IndustryCode:        it.Selection.Industry,
			Complexity:          entities.ComplexityLevel(it.Selection.Complexity),
			FeatureCodes:        it.Selection.Features,
			TechnologyCodes:     it.Selection.Technologies,
			TimelineCode:        it.Selection.Timeline,
			CustomDescription:   it.Selection.Description,
		},
		ClientBudget: it.ClientBudget,
		Timeline:     it.Timeline,
		Estimate: entities.EstimateResult{
			BaseEstimate:       e.Base,
			MinEstimate:        e.Min,
			MaxEstimate:        e.Max,
			Breakdown:          breakdown,
			Reasoning:          e.Reasoning,
			Confidence:         entities.Confidence(e.Confidence),
			RiskFactors:        e.RiskFactors,
			OpportunityFactors: e.OpportunityFactors,
		},
		Status:    entities.QuoteStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, nil
}
