package repository

import (
	"context"
	"sort"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotePaymentsTableName = "quote_payments"
	quotePaymentsQuoteIDIndex     = "quote_id-index"
)

type quotePaymentItem struct {
	ID           string                 `dynamodbav:"id"`
	QuoteID      string                 `dynamodbav:"quote_id"`
	Amount       string                 `dynamodbav:"amount"`
	Date         string                 `dynamodbav:"date"`
	Status       string                 `dynamodbav:"status"`
	MPPayload    map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// QuotePaymentDynamoRepository persists QuotePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type QuotePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotePaymentRepository = (*QuotePaymentDynamoRepository)(nil)

func NewQuotePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *QuotePaymentDynamoRepository {
	return &QuotePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultQuotePaymentsTableName),
	}
}

func (r *QuotePaymentDynamoRepository) Create(ctx context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
	av, err := attributevalue.MarshalMap(toQuotePaymentItem(p))
	if err != nil {
		return entities.QuotePayment{}, err
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
		return entities.QuotePayment{}, err
	}
	return p, nil
}

func (r *QuotePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuotePayment{}, nil
	}

	var it quotePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuotePayment{}, err
	}
	return fromQuotePaymentItem(it)
}

// ListByQuoteID returns the quote's payments, newest first.
func (r *QuotePaymentDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotePaymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	var payments []entities.QuotePayment
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quotePaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			qp, err := fromQuotePaymentItem(it)
			if err != nil {
				return nil, err
			}
			payments = append(payments, qp)
		}
	}
	sortPaymentsNewestFirst(payments)
	return payments, nil
}

func sortPaymentsNewestFirst(payments []entities.QuotePayment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
}

func toQuotePaymentItem(p entities.QuotePayment) quotePaymentItem {
	return quotePaymentItem{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		Amount:       p.Amount.StringFixed(2),
		Date:         formatTime(p.Date),
		Status:       string(p.Status),
		MPPayload:    p.MPPayload,
		MPPayloadRaw: string(p.MPPayloadRaw),
	}
}

func fromQuotePaymentItem(it quotePaymentItem) (entities.QuotePayment, error) {
	amount, err := parseDecimal("amount", it.Amount)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	return entities.QuotePayment{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		Amount:       amount,
		Date:         parseTime(it.Date),
		Status:       entities.PaymentStatus(it.Status),
		MPPayload:    it.MPPayload,
		MPPayloadRaw: []byte(it.MPPayloadRaw),
	}, nil
}
