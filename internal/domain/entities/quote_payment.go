package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// QuotePayment is a deposit charged against an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// MPPayloadRaw keeps the provider response body for audit; MPPayload is its
// parsed form, kept because provider schemas vary between integrations.
type QuotePayment struct {
	ID      string
	QuoteID string
	Amount  decimal.Decimal
	Date    time.Time
	Status  PaymentStatus

	MPPayloadRaw json.RawMessage
	MPPayload    map[string]interface{}
}
