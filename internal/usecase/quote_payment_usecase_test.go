package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"vaif_quotes/internal/domain/entities"
	mock_interfaces "vaif_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type paymentMocks struct {
	repo    *mock_interfaces.MockIQuotePaymentRepository
	quotes  *mock_interfaces.MockIQuoteRepository
	gateway *mock_interfaces.MockIPaymentGateway
}

func newPaymentUseCase(t *testing.T, settings DepositSettings) (*QuotePaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:    mock_interfaces.NewMockIQuotePaymentRepository(ctrl),
		quotes:  mock_interfaces.NewMockIQuoteRepository(ctrl),
		gateway: mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	return NewQuotePaymentUseCase(m.repo, m.quotes, m.gateway, settings, zap.NewNop()), m
}

var acceptedQuote = entities.Quote{
	ID:       "q-1",
	Status:   entities.QuoteStatusAccepted,
	Estimate: entities.EstimateResult{BaseEstimate: 12345, MinEstimate: 10493, MaxEstimate: 14197},
}

func TestDepositAmount(t *testing.T) {
	if got := DepositAmount(12345, dec("0.5")); !got.Equal(dec("6172.5")) {
		t.Fatalf("expected 6172.50, got %s", got)
	}
	if got := DepositAmount(1001, dec("0.333")); !got.Equal(dec("333.33")) {
		t.Fatalf("expected 333.33, got %s", got)
	}
}

func TestQuotePaymentUseCase_CreateDeposit(t *testing.T) {
	settings := DepositSettings{Rate: dec("0.5"), SandboxPayerEmail: "test_user@testuser.com"}
	payload := json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`)

	t.Run("invalid quote id", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, settings)
		if _, err := uc.CreateDeposit(context.Background(), "  ", payload); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, settings)
		if _, err := uc.CreateDeposit(context.Background(), "q-1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, settings)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, nil)
		if _, err := uc.CreateDeposit(context.Background(), "q-1", payload); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("quote not accepted", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, settings)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
		if _, err := uc.CreateDeposit(context.Background(), "q-1", payload); !errors.Is(err, ErrQuoteNotAccepted) {
			t.Fatalf("expected ErrQuoteNotAccepted, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, settings)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		if _, err := uc.CreateDeposit(context.Background(), "q-1", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("success enriches the payload", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, settings)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, body json.RawMessage) (string, string, json.RawMessage, error) {
				var sent map[string]any
				if err := json.Unmarshal(body, &sent); err != nil {
					t.Fatalf("unexpected payload: %v", err)
				}
				if sent["transaction_amount"] != 6172.5 {
					t.Fatalf("expected amount from the quote, got %v", sent["transaction_amount"])
				}
				if sent["external_reference"] != "q-1" || sent["description"] == nil {
					t.Fatalf("expected linkage fields, got %v", sent)
				}
				payer, _ := sent["payer"].(map[string]any)
				if payer["email"] != "test_user@testuser.com" || payer["type"] != "customer" {
					t.Fatalf("expected payer defaults, got %v", payer)
				}
				return "987", "approved", json.RawMessage(`{"id":987,"status":"approved"}`), nil
			})
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				return p, nil
			})

		p, err := uc.CreateDeposit(context.Background(), "q-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "987" || p.QuoteID != "q-1" || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected payment: %+v", p)
		}
		if !p.Amount.Equal(dec("6172.5")) {
			t.Fatalf("unexpected amount: %s", p.Amount)
		}
		if p.MPPayload["status"] != "approved" {
			t.Fatalf("expected parsed provider payload, got %v", p.MPPayload)
		}
	})

	t.Run("mock mode accepts an empty payload", func(t *testing.T) {
		mock := settings
		mock.MockMode = true
		uc, m := newPaymentUseCase(t, mock)
		m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
		m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "in_process", json.RawMessage(`{}`), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.QuotePayment) (entities.QuotePayment, error) {
				return p, nil
			})

		p, err := uc.CreateDeposit(context.Background(), "q-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", p.Status)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		cases := map[string]error{
			`{"message":"customer not found","error":"not_found","status":404,"cause":[{"code":2002}]}`: ErrPaymentGatewayCustomerNotFound,
			`{"message":"Invalid users involved","cause":[{"code":2034}]}`:                          ErrPaymentGatewayInvalidUsers,
			`{"error":"unauthorized","status":401}`:                                                  ErrPaymentGatewayUnauthorized,
			`{"error":"bad_request","status":400}`:                                                   ErrPaymentGatewayBadRequest,
		}
		for body, want := range cases {
			uc, m := newPaymentUseCase(t, settings)
			m.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(acceptedQuote, nil)
			m.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(body))

			if _, err := uc.CreateDeposit(context.Background(), "q-1", payload); !errors.Is(err, want) {
				t.Fatalf("expected %v for %s, got %v", want, body, err)
			}
		}
	})
}

func TestQuotePaymentUseCase_Queries(t *testing.T) {
	t.Run("get by id not found", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, DepositSettings{})
		m.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.QuotePayment{}, nil)
		if _, err := uc.GetByID(context.Background(), "p-1"); !errors.Is(err, ErrQuotePaymentNotFound) {
			t.Fatalf("expected ErrQuotePaymentNotFound, got %v", err)
		}
	})

	t.Run("get by id invalid", func(t *testing.T) {
		uc, _ := newPaymentUseCase(t, DepositSettings{})
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("list by quote", func(t *testing.T) {
		uc, m := newPaymentUseCase(t, DepositSettings{})
		m.repo.EXPECT().ListByQuoteID(gomock.Any(), "q-1").Return([]entities.QuotePayment{{ID: "p-1"}}, nil)
		got, err := uc.ListByQuoteID(context.Background(), " q-1 ")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}
