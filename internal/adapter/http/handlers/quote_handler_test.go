package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vaif_quotes/internal/adapter/http/handlers/mocks"
	"vaif_quotes/internal/adapter/persistence/repository"
	"vaif_quotes/internal/domain/entities"
	"vaif_quotes/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newQuoteRouter(h *QuoteHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/quotes/analyze", h.Analyze)
	r.POST("/v1/quotes/estimate", h.Estimate)
	r.POST("/v1/quotes/generate", h.Generate)
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.PATCH("/v1/quotes/:id/accept", h.AcceptQuote)
	r.PATCH("/v1/quotes/:id/reject", h.RejectQuote)
	r.PATCH("/v1/quotes/:id/cancel", h.CancelQuote)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_Analyze(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing description", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/analyze", `{"clientBudget":"10k"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank description from usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analyzer := mocks.NewMockIAnalyzerUseCase(ctrl)
		h := NewQuoteHandler(analyzer, mocks.NewMockIEstimationUseCase(ctrl), mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(entities.Outcome[entities.AnalysisResult]{}, usecase.ErrInvalidDescription)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/analyze", `{"description":"   "}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "INVALID_DESCRIPTION" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("fallback analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		analyzer := mocks.NewMockIAnalyzerUseCase(ctrl)
		h := NewQuoteHandler(analyzer, mocks.NewMockIEstimationUseCase(ctrl), mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		analyzer.EXPECT().Analyze(gomock.Any(), usecase.AnalysisInput{
			Description: "I need a mobile app with login and payment processing",
		}).DoAndReturn(func(_ any, in usecase.AnalysisInput) (entities.Outcome[entities.AnalysisResult], error) {
			return entities.Degrade(entities.AnalysisResult{
				RecommendedProjectType: entities.Recommendation{Code: "MOBILE_APP"},
				EstimatedComplexity:    entities.AnalysisComplexityMedium,
				EstimatedBudgetRange:   entities.BudgetRange{Min: 8000, Max: 15000},
			}, usecase.ErrUpstreamUnavailable), nil
		})

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/analyze", `{"description":"I need a mobile app with login and payment processing"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get(HeaderAnalysisSource); got != entities.OutcomeSourceFallback {
			t.Fatalf("expected fallback source header, got %q", got)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		budget := body["estimatedBudgetRange"].(map[string]any)
		if budget["min"] != 8000.0 || budget["max"] != 15000.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Estimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid complexity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimation := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), estimation, mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		estimation.EXPECT().Estimate(gomock.Any(), gomock.Any()).Return(entities.EstimateResult{}, usecase.ErrInvalidComplexity)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/estimate", `{"complexity":"huge"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("forwards selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		estimation := mocks.NewMockIEstimationUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), estimation, mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		want := entities.EstimateRequest{
			ProjectTypeCode: "WEBSITE",
			FeatureCodes:    []string{"SEARCH"},
			TechnologyCodes: []string{},
		}
		estimation.EXPECT().Estimate(gomock.Any(), want).Return(entities.EstimateResult{BaseEstimate: 100, MinEstimate: 85, MaxEstimate: 115}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/estimate", `{"projectTypeCode":"WEBSITE","featureCodes":["SEARCH"]}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

// End to end over the real estimation stack with no language model configured.
func TestQuoteHandler_Estimate_WithoutModel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	catalog := usecase.NewCatalogUseCase(repository.NewCatalogMemoryRepository(entities.Catalog{}), log)
	refinement := usecase.NewRefinementUseCase(nil, usecase.LLMSettings{Timeout: time.Second}, log)
	estimation := usecase.NewEstimationUseCase(catalog, refinement, log)
	h := NewQuoteHandler(nil, estimation, nil, log)
	r := newQuoteRouter(h)

	w := doJSON(r, http.MethodPost, "/v1/quotes/estimate", `{"featureCodes":["UNKNOWN"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["baseEstimate"] != 5000.0 || body["minEstimate"] != 4250.0 || body["maxEstimate"] != 5750.0 {
		t.Fatalf("unexpected default estimate: %s", w.Body.String())
	}
	if _, ok := body["breakdown"].(map[string]any)["aiAdjustment"]; ok {
		t.Fatalf("aiAdjustment must be absent without customDescription: %s", w.Body.String())
	}

	w = doJSON(r, http.MethodPost, "/v1/quotes/estimate", `{"customDescription":"a small landing page"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body = map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["reasoning"] != usecase.StandardEstimateReasoning {
		t.Fatalf("unexpected reasoning: %s", w.Body.String())
	}
	if body["breakdown"].(map[string]any)["aiAdjustment"] != 1.0 {
		t.Fatalf("expected aiAdjustment 1: %s", w.Body.String())
	}
}

func TestQuoteHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), mocks.NewMockIQuoteUseCase(ctrl), zap.NewNop())

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/generate", `{"clientName":"Ana","clientEmail":"not-an-email"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		quotes.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("dynamo down"))

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/generate", `{"clientName":"Ana","clientEmail":"ana@example.com"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("created with supplied estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		now := time.Now().UTC()
		quotes.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.GenerateQuoteInput) (entities.Quote, error) {
			if in.Estimate == nil || in.Estimate.BaseEstimate != 42390 {
				t.Fatalf("expected supplied estimate, got %+v", in.Estimate)
			}
			if in.Selection.ProjectTypeCode != "MOBILE_APP" {
				t.Fatalf("unexpected selection: %+v", in.Selection)
			}
			return entities.Quote{
				ID:          "q-1",
				ClientName:  in.ClientName,
				ClientEmail: in.ClientEmail,
				Selection:   in.Selection,
				Estimate:    *in.Estimate,
				Status:      entities.QuoteStatusPending,
				CreatedAt:   now,
				UpdatedAt:   now,
			}, nil
		})

		w := doJSON(newQuoteRouter(h), http.MethodPost, "/v1/quotes/generate", `{
			"clientName":"Ana","clientEmail":"ana@example.com",
			"selection":{"projectTypeCode":"MOBILE_APP"},
			"estimate":{"baseEstimate":42390,"minEstimate":36032,"maxEstimate":48749,"breakdown":{"baseCost":23760,"timelineMultiplier":1.5}}
		}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		quotes.EXPECT().Accept(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusAccepted}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodPatch, "/v1/quotes/q-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		quotes.EXPECT().Reject(gomock.Any(), "q-1").Return(entities.Quote{}, usecase.ErrQuoteNotPending)

		w := doJSON(newQuoteRouter(h), http.MethodPatch, "/v1/quotes/q-1/reject", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		quotes.EXPECT().Cancel(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		w := doJSON(newQuoteRouter(h), http.MethodPatch, "/v1/quotes/q-404/cancel", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		quotes := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(mocks.NewMockIAnalyzerUseCase(ctrl), mocks.NewMockIEstimationUseCase(ctrl), quotes, zap.NewNop())

		quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{
			ID:       "q-1",
			Status:   entities.QuoteStatusPending,
			Estimate: entities.EstimateResult{Breakdown: entities.EstimateBreakdown{TimelineMultiplier: decimal.NewFromInt(1)}},
		}, nil)

		w := doJSON(newQuoteRouter(h), http.MethodGet, "/v1/quotes/q-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
