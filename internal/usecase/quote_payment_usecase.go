package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuotePaymentNotFound           = errors.New("quote payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrQuoteNotAccepted               = errors.New("quote not accepted")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// DepositSettings configures deposit charging.
//
// In MockMode the payload checks that only matter to the real provider are
// skipped. SandboxPayerEmail fills a missing payer for TEST- access tokens.
type DepositSettings struct {
	Rate              decimal.Decimal
	MockMode          bool
	SandboxPayerEmail string
}

// IQuotePaymentUseCase charges the deposit of an accepted quote.
//
// The amount always comes from the stored quote: base estimate × deposit rate.

type IQuotePaymentUseCase interface {
	CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error)
	GetByID(ctx context.Context, id string) (entities.QuotePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error)
}

type QuotePaymentUseCase struct {
	repo      interfaces.IQuotePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	settings  DepositSettings
	log       *zap.Logger
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

func NewQuotePaymentUseCase(repo interfaces.IQuotePaymentRepository, quoteRepo interfaces.IQuoteRepository, gateway interfaces.IPaymentGateway, settings DepositSettings, log *zap.Logger) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, settings: settings, log: log}
}

// DepositAmount is base × rate rounded to cents.
func DepositAmount(base int64, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(base).Mul(rate).Round(2)
}

func (u *QuotePaymentUseCase) CreateDeposit(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuotePayment{}, ErrInvalidQuoteID
	}
	u.log.Info("[payment][usecase] create deposit start", zap.String("quote_id", quoteID), zap.Int("payload_len", len(mpPayload)))

	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.MockMode {
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.QuotePayment{}, ErrPaymentGatewayNotConfigured
	}

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		u.log.Error("[payment][usecase] failed loading quote", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	if q.ID == "" {
		return entities.QuotePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusAccepted {
		u.log.Warn("[payment][usecase] quote not accepted", zap.String("quote_id", quoteID), zap.String("status", string(q.Status)))
		return entities.QuotePayment{}, ErrQuoteNotAccepted
	}

	amount := DepositAmount(q.Estimate.BaseEstimate, u.settings.Rate)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.QuotePayment{}, ErrInvalidMPPayload
	}
	if !u.settings.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
		ensurePayerDefaults(reqMap, u.settings.SandboxPayerEmail)
		if !hasPayer(reqMap) {
			return entities.QuotePayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("VAIF TECH deposit for quote %s", quoteID)
	}
	reqMap["transaction_amount"] = amount.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.QuotePayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		u.log.Error("[payment][usecase] payment gateway failed", zap.String("quote_id", quoteID), zap.Error(err))
		return entities.QuotePayment{}, classifyGatewayError(err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("[payment][usecase] provider response unmarshal failed", zap.String("quote_id", quoteID), zap.Error(err))
	}

	p := entities.QuotePayment{
		ID:           providerID,
		QuoteID:      quoteID,
		Amount:       amount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		u.log.Error("[payment][usecase] repository create failed", zap.String("quote_id", quoteID), zap.String("payment_id", p.ID), zap.Error(err))
		return entities.QuotePayment{}, err
	}
	u.log.Info("[payment][usecase] create deposit success",
		zap.String("quote_id", quoteID),
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
		zap.String("amount", created.Amount.StringFixed(2)))
	return created, nil
}

func (u *QuotePaymentUseCase) GetByID(ctx context.Context, id string) (entities.QuotePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.QuotePayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.QuotePayment{}, err
	}
	if p.ID == "" {
		return entities.QuotePayment{}, ErrQuotePaymentNotFound
	}
	return p, nil
}

func (u *QuotePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.QuotePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	default:
		return entities.PaymentStatusPending
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults sets payer.type and, when neither id nor email is set,
// the sandbox payer email.
func ensurePayerDefaults(m map[string]any, sandboxEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && sandboxEmail != "" {
		payer["email"] = sandboxEmail
	}
}

// classifyGatewayError maps Mercado Pago error bodies to sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
