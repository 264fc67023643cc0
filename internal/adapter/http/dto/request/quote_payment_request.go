package request

import "encoding/json"

// QuotePaymentCreateRequest is the deposit payload.
//
// `mp_payload` is forwarded as raw JSON since Mercado Pago payment schemas vary
// per payment method. The amount is always taken from the quote.

type QuotePaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
