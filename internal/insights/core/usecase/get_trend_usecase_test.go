package usecase_test

import (
	"context"
	"testing"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/usecase"
)

func TestGetTrend_LastPredictionError(t *testing.T) {
	reader := &fakeDatasetReader{trend: []domain.TrendPoint{
		{Date: day("2021-06-01"), Smoothed: 1000, Predicted: 900},
		{Date: day("2021-06-02"), Smoothed: 1200, Predicted: 1250},
	}}
	uc := usecase.NewGetTrendUseCase(reader)

	view, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(view.Points))
	}
	if view.LastPredictionError == nil {
		t.Fatalf("expected a last prediction error")
	}
	if *view.LastPredictionError != -50 {
		t.Fatalf("expected last prediction error -50, got %v", *view.LastPredictionError)
	}
}

func TestGetTrend_EmptySeries(t *testing.T) {
	reader := &fakeDatasetReader{}
	uc := usecase.NewGetTrendUseCase(reader)

	view, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(view.Points) != 0 {
		t.Fatalf("expected no points, got %d", len(view.Points))
	}
	if view.LastPredictionError != nil {
		t.Fatalf("expected no prediction error for an empty series")
	}
}
