package usecase

import (
	"context"
	"errors"
	"testing"

	"vaif_quotes/internal/domain/entities"
	mock_interfaces "vaif_quotes/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var fullRequest = entities.EstimateRequest{
	ProjectTypeCode:     "MOBILE_APP",
	ProjectCategoryCode: "ECOMMERCE",
	IndustryCode:        "HEALTHCARE",
	Complexity:          entities.ComplexityComplex,
	FeatureCodes:        []string{"USER_AUTH", "PAYMENT"},
	TechnologyCodes:     []string{"REACT"},
	TimelineCode:        "RUSH",
}

func expectFullSelection(repo *mock_interfaces.MockICatalogRepository) {
	repo.EXPECT().GetProjectType(gomock.Any(), "MOBILE_APP").Return(mobileApp, nil)
	repo.EXPECT().GetCategory(gomock.Any(), "ECOMMERCE").Return(ecommerceCategory, nil)
	repo.EXPECT().GetIndustry(gomock.Any(), "HEALTHCARE").Return(healthIndustry, nil)
	repo.EXPECT().GetTimeline(gomock.Any(), "RUSH").Return(rushTimeline, nil)
	repo.EXPECT().ListFeatures(gomock.Any(), []string{"USER_AUTH", "PAYMENT"}).Return([]entities.FeatureDef{authFeature, paymentFeature}, nil)
	repo.EXPECT().ListTechnologies(gomock.Any(), []string{"REACT"}).Return([]entities.TechnologyDef{reactTech}, nil)
}

func newEstimation(t *testing.T) (*EstimationUseCase, *mock_interfaces.MockICatalogRepository, *mock_interfaces.MockILanguageModel) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICatalogRepository(ctrl)
	lm := mock_interfaces.NewMockILanguageModel(ctrl)
	uc := NewEstimationUseCase(
		NewCatalogUseCase(repo, zap.NewNop()),
		NewRefinementUseCase(lm, testSettings, zap.NewNop()),
		zap.NewNop(),
	)
	return uc, repo, lm
}

func TestEstimationUseCase_Estimate(t *testing.T) {
	t.Run("invalid complexity", func(t *testing.T) {
		uc, _, _ := newEstimation(t)
		_, err := uc.Estimate(context.Background(), entities.EstimateRequest{Complexity: "epic"})
		if !errors.Is(err, ErrInvalidComplexity) {
			t.Fatalf("expected ErrInvalidComplexity, got %v", err)
		}
	})

	t.Run("empty selection uses the default base cost", func(t *testing.T) {
		uc, _, _ := newEstimation(t)
		res, err := uc.Estimate(context.Background(), entities.EstimateRequest{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BaseEstimate != 5000 || res.MinEstimate != 4250 || res.MaxEstimate != 5750 {
			t.Fatalf("unexpected estimate: %d/%d/%d", res.BaseEstimate, res.MinEstimate, res.MaxEstimate)
		}
		if res.Breakdown.AIAdjustment != nil {
			t.Fatalf("expected no ai adjustment")
		}
	})

	t.Run("deterministic estimate without description", func(t *testing.T) {
		uc, repo, _ := newEstimation(t)
		expectFullSelection(repo)

		res, err := uc.Estimate(context.Background(), fullRequest)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BaseEstimate != 42390 || res.MinEstimate != 36032 || res.MaxEstimate != 48749 {
			t.Fatalf("unexpected estimate: %d/%d/%d", res.BaseEstimate, res.MinEstimate, res.MaxEstimate)
		}
		if !res.Breakdown.BaseCost.Equal(dec("23760")) || !res.Breakdown.FeatureCost.Equal(dec("4000")) {
			t.Fatalf("unexpected breakdown: %+v", res.Breakdown)
		}
		if res.Breakdown.AIAdjustment != nil || res.Reasoning != "" {
			t.Fatalf("expected no refinement fields, got %+v", res)
		}
	})

	t.Run("refined estimate", func(t *testing.T) {
		uc, repo, lm := newEstimation(t)
		expectFullSelection(repo)
		lm.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(modelRefinement, nil)

		req := fullRequest
		req.CustomDescription = "Telemedicine app with video consultations"
		res, err := uc.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BaseEstimate != 45001 || res.MinEstimate != 40000 || res.MaxEstimate != 52000 {
			t.Fatalf("unexpected estimate: %d/%d/%d", res.BaseEstimate, res.MinEstimate, res.MaxEstimate)
		}
		if res.Breakdown.AIAdjustment == nil || !res.Breakdown.AIAdjustment.Equal(dec("1.06")) {
			t.Fatalf("expected ai adjustment 1.06, got %v", res.Breakdown.AIAdjustment)
		}
		if res.Confidence != entities.ConfidenceHigh || len(res.RiskFactors) != 1 {
			t.Fatalf("unexpected refinement fields: %+v", res)
		}
	})

	t.Run("failed refinement keeps deterministic figures", func(t *testing.T) {
		uc, repo, lm := newEstimation(t)
		expectFullSelection(repo)
		lm.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		req := fullRequest
		req.CustomDescription = "Telemedicine app"
		res, err := uc.Estimate(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BaseEstimate != 42390 || res.MinEstimate != 36032 || res.MaxEstimate != 48749 {
			t.Fatalf("unexpected estimate: %d/%d/%d", res.BaseEstimate, res.MinEstimate, res.MaxEstimate)
		}
		if res.Breakdown.AIAdjustment == nil || !res.Breakdown.AIAdjustment.Equal(dec("1")) {
			t.Fatalf("expected ai adjustment 1, got %v", res.Breakdown.AIAdjustment)
		}
		if res.Reasoning != StandardEstimateReasoning || res.Confidence != entities.ConfidenceMedium {
			t.Fatalf("unexpected reasoning: %+v", res)
		}
	})
}
