package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// A quote starts pending; the client accepts, rejects or cancels it exactly once.
// Deposits can only be charged against an accepted quote.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAccepted  QuoteStatus = "accepted"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Quote is the persisted outcome of the quote builder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_email-index): client_email
type Quote struct {
	ID           string
	ClientName   string
	ClientEmail  string
	Company      string
	Selection    EstimateRequest
	ClientBudget string
	Timeline     string
	Estimate     EstimateResult
	Status       QuoteStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
