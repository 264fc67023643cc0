package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidQuoteID  = errors.New("invalid quote id")
	ErrInvalidClient   = errors.New("invalid client name or email")
	ErrQuoteNotPending = errors.New("quote is not pending")
)

// GenerateQuoteInput is a quote request from the public quote builder.
// Estimate is the figure the client saw. It is kept only when it is well formed
// and inside the range recomputed from Selection.
type GenerateQuoteInput struct {
	ClientName   string
	ClientEmail  string
	Company      string
	Selection    entities.EstimateRequest
	ClientBudget string
	Timeline     string
	Estimate     *entities.EstimateResult
}

// IQuoteUseCase manages persisted quotes.
//
// Status transitions:
//   - pending => accepted | rejected | cancelled
//   - any other transition => ErrQuoteNotPending

type IQuoteUseCase interface {
	Generate(ctx context.Context, in GenerateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	Reject(ctx context.Context, id string) (entities.Quote, error)
	Cancel(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	estimation IEstimationUseCase
	log        *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, estimation IEstimationUseCase, log *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, estimation: estimation, log: log}
}

func (u *QuoteUseCase) Generate(ctx context.Context, in GenerateQuoteInput) (entities.Quote, error) {
	name := strings.TrimSpace(in.ClientName)
	email := strings.ToLower(strings.TrimSpace(in.ClientEmail))
	if name == "" || email == "" {
		return entities.Quote{}, ErrInvalidClient
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return entities.Quote{}, ErrInvalidClient
	}

	// The model is not called again; a refined figure from the client is
	// checked against the deterministic range instead.
	sel := in.Selection
	sel.CustomDescription = ""
	estimate, err := u.estimation.Estimate(ctx, sel)
	if err != nil {
		return entities.Quote{}, err
	}
	if in.Estimate != nil {
		if withinRange(*in.Estimate, estimate) {
			estimate = *in.Estimate
		} else {
			u.log.Warn("[quote][usecase] supplied estimate outside recomputed range; replacing",
				zap.String("client_email", email),
				zap.Int64("supplied_base", in.Estimate.BaseEstimate),
				zap.Int64("base", estimate.BaseEstimate))
		}
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:           uuid.NewString(),
		ClientName:   name,
		ClientEmail:  email,
		Company:      strings.TrimSpace(in.Company),
		Selection:    in.Selection,
		ClientBudget: strings.TrimSpace(in.ClientBudget),
		Timeline:     strings.TrimSpace(in.Timeline),
		Estimate:     estimate,
		Status:       entities.QuoteStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.log.Error("[quote][usecase] create failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] quote generated",
		zap.String("quote_id", created.ID),
		zap.Int64("base", created.Estimate.BaseEstimate))
	return created, nil
}

// withinRange reports whether a supplied estimate is well formed and every
// amount lies in the recomputed [min, max] band.
func withinRange(supplied, computed entities.EstimateResult) bool {
	if !supplied.WellFormed() {
		return false
	}
	in := func(v int64) bool { return v >= computed.MinEstimate && v <= computed.MaxEstimate }
	return in(supplied.BaseEstimate) && in(supplied.MinEstimate) && in(supplied.MaxEstimate)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusAccepted)
}

func (u *QuoteUseCase) Reject(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusRejected)
}

func (u *QuoteUseCase) Cancel(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, id, entities.QuoteStatusCancelled)
}

func (u *QuoteUseCase) transition(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if current.Status != entities.QuoteStatusPending {
		return entities.Quote{}, ErrQuoteNotPending
	}

	updated, err := u.repo.UpdateStatus(ctx, current.ID, entities.QuoteStatusPending, status)
	if err != nil {
		return entities.Quote{}, err
	}
	// Another request moved it first.
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotPending
	}
	u.log.Info("[quote][usecase] status updated", zap.String("quote_id", updated.ID), zap.String("status", string(status)))
	return updated, nil
}
