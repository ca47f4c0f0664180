package usecase

import (
	"context"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

// GetTrendUseCase produces the dual-line time-series view: the full global
// series plus the prediction error on the last available date, which the
// dashboard shows as a model-status callout.
type GetTrendUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetTrendUseCase(reader ports.DatasetReaderPort) *GetTrendUseCase {
	return &GetTrendUseCase{reader: reader}
}

func (uc *GetTrendUseCase) Execute(ctx context.Context) (*domain.TrendView, error) {
	points, err := uc.reader.TrendPoints(ctx)
	if err != nil {
		return nil, err
	}

	view := &domain.TrendView{Points: points}

	if len(points) > 0 {
		last := points[len(points)-1]
		lastErr := last.Smoothed - last.Predicted
		view.LastPredictionError = &lastErr
	}

	return view, nil
}
