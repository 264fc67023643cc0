package handlers

import (
	"context"
	"errors"
	"net/http"

	request "vaif_quotes/internal/adapter/http/dto/request"
	response "vaif_quotes/internal/adapter/http/dto/response"
	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase"
	"vaif_quotes/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HeaderAnalysisSource tells the caller whether the model or the keyword fallback answered.
const HeaderAnalysisSource = "X-Analysis-Source"

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler serves the quote builder: analysis, estimates and persisted quotes.

type QuoteHandler struct {
	analyzer   usecase.IAnalyzerUseCase
	estimation usecase.IEstimationUseCase
	quotes     usecase.IQuoteUseCase
	log        *zap.Logger
}

func NewQuoteHandler(analyzer usecase.IAnalyzerUseCase, estimation usecase.IEstimationUseCase, quotes usecase.IQuoteUseCase, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{analyzer: analyzer, estimation: estimation, quotes: quotes, log: log}
}

// Analyze godoc
// @Summary      Analyze a project description
// @Description  Recommends project type, category, industry and features for a free-text description. Falls back to a keyword heuristic when the language model is unavailable.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.AnalyzeQuoteRequest  true  "Project description"
// @Success      200   {object}  response.AnalysisResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/analyze [post]
func (h *QuoteHandler) Analyze(c *gin.Context) {
	var payload request.AnalyzeQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	out, err := h.analyzer.Analyze(c.Request.Context(), usecase.AnalysisInput{
		Description: payload.Description,
		Hints:       payload.Hints(),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if out.Degraded {
		h.log.Info("[analysis][handler] served fallback analysis", zap.NamedError("reason", out.Reason))
	}

	c.Header(HeaderAnalysisSource, out.Source())
	c.JSON(http.StatusOK, response.FromAnalysis(out.Value))
}

// Estimate godoc
// @Summary      Estimate project cost
// @Description  Deterministic estimate from the pricing catalog, refined by the language model when customDescription is present.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.EstimateQuoteRequest  true  "Catalog selection"
// @Success      200   {object}  response.EstimateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /quotes/estimate [post]
func (h *QuoteHandler) Estimate(c *gin.Context) {
	var payload request.EstimateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	result, err := h.estimation.Estimate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

// Generate godoc
// @Summary      Generate a quote
// @Description  Persists a pending quote for the client with the selection and its estimate.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.GenerateQuoteRequest  true  "Client and selection"
// @Success      201   {object}  response.QuoteResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /quotes/generate [post]
func (h *QuoteHandler) Generate(c *gin.Context) {
	var payload request.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.quotes.Generate(c.Request.Context(), usecase.GenerateQuoteInput{
		ClientName:   payload.ClientName,
		ClientEmail:  payload.ClientEmail,
		Company:      payload.Company,
		Selection:    payload.Selection.ToEntity(),
		ClientBudget: payload.ClientBudget,
		Timeline:     payload.Timeline,
		Estimate:     payload.EstimateEntity(),
	})
	if err != nil {
		h.log.Warn("[quote][handler] generate failed", zap.Error(err))
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(q))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AcceptQuote godoc
// @Summary      Accept a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/accept [patch]
func (h *QuoteHandler) AcceptQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.Accept)
}

// RejectQuote godoc
// @Summary      Reject a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/reject [patch]
func (h *QuoteHandler) RejectQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.Reject)
}

// CancelQuote godoc
// @Summary      Cancel a pending quote
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "Quote ID"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /quotes/{id}/cancel [patch]
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.quotes.Cancel)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Quote, error),
) {
	id := c.Param("id")
	q, err := updater(c.Request.Context(), id)
	if err != nil {
		h.log.Warn("[quote][handler] status change failed", zap.String("quote_id", id), zap.Error(err))
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDescription):
		return pkg.NewDomainErrorSimple("INVALID_DESCRIPTION", "Description is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidComplexity):
		return pkg.NewDomainErrorSimple("INVALID_COMPLEXITY", "Complexity must be one of simple, moderate, complex, very_complex", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClient):
		return pkg.NewDomainErrorSimple("INVALID_CLIENT", "Client name and a valid e-mail are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotPending):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_PENDING", "Quote is no longer pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
