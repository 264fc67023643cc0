package response

import (
	"time"

	"vaif_quotes/internal/domain/entities"
)

type QuotePaymentResponse struct {
	PaymentID string    `json:"payment_id"`
	QuoteID   string    `json:"quote_id"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromQuotePayment(p entities.QuotePayment) QuotePaymentResponse {
	return QuotePaymentResponse{
		PaymentID:    p.ID,
		QuoteID:      p.QuoteID,
		Amount:       money(p.Amount),
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}
