package interfaces

import (
	"context"
	"vaif_quotes/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// UpdateStatus only succeeds while the stored status equals expected; it returns
// a zero Quote when the quote is missing or the condition failed.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, expected, status entities.QuoteStatus) (entities.Quote, error)
}
