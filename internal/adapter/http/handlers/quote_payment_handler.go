package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	request "vaif_quotes/internal/adapter/http/dto/request"
	response "vaif_quotes/internal/adapter/http/dto/response"
	"vaif_quotes/internal/usecase"
	"vaif_quotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuotePaymentHandler handles deposits charged against accepted quotes.

type QuotePaymentHandler struct {
	usecase  usecase.IQuotePaymentUseCase
	mockMode bool
	log      *zap.Logger
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase, mockMode bool, log *zap.Logger) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc, mockMode: mockMode, log: log}
}

// CreateDeposit godoc
// @Summary      Pay the deposit of an accepted quote
// @Description  Charges the quote deposit through Mercado Pago. The body is the Mercado Pago payment payload, either bare or wrapped in mp_payload; the amount is always computed from the quote.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      string                             true  "Quote ID"
// @Param        body  body      request.QuotePaymentCreateRequest  false "Mercado Pago payload"
// @Success      201   {object}  response.QuotePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /quotes/{id}/payments [post]
func (h *QuotePaymentHandler) CreateDeposit(c *gin.Context) {
	quoteID := c.Param("id")
	h.log.Info("[payment][handler] create start", zap.String("quote_id", quoteID))

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			h.log.Warn("[payment][handler] invalid payload", zap.String("quote_id", quoteID), zap.Error(err))
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		h.log.Info("[payment][handler] payload invalid in mock mode; using empty payload", zap.String("quote_id", quoteID), zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateDeposit(c.Request.Context(), quoteID, mpPayload)
	if err != nil {
		h.log.Warn("[payment][handler] create failed", zap.String("quote_id", quoteID), zap.Error(err))
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("[payment][handler] create success",
		zap.String("quote_id", quoteID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)))

	c.JSON(http.StatusCreated, response.FromQuotePayment(created))
}

// GetLatestByQuoteID godoc
// @Summary      Latest deposit of a quote
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuotePaymentResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/payments [get]
func (h *QuotePaymentHandler) GetLatestByQuoteID(c *gin.Context) {
	quoteID := c.Param("id")

	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(latest))
}

// GetPayment godoc
// @Summary      Get a deposit by payment ID
// @Tags         payments
// @Produce      json
// @Param        payment_id  path      string  true  "Payment ID"
// @Success      200         {object}  response.QuotePaymentResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /payments/{payment_id} [get]
func (h *QuotePaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapQuotePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotePayment(p))
}

// readMPPayload accepts either a bare Mercado Pago payload or one wrapped in mp_payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if _, ok := envelope["mp_payload"]; ok {
			var wrapped request.QuotePaymentCreateRequest
			if err := json.Unmarshal(raw, &wrapped); err != nil {
				return nil, err
			}
			if v := strings.TrimSpace(string(wrapped.MPPayload)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapQuotePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payments are not available", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotAccepted):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ACCEPTED", "Quote not accepted", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
