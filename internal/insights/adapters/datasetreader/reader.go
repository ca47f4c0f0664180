package datasetreader

import (
	"context"

	datasetUsecase "covid-dashboard-service/internal/dataset/core/usecase"
	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

// Reader feeds the insights usecases from the memoized dataset loader,
// mapping loader records into insights types. The loader caches, so every
// call sees the same rows in the same order.
type Reader struct {
	loader *datasetUsecase.LoadDatasetUseCase
}

func NewReader(loader *datasetUsecase.LoadDatasetUseCase) *Reader {
	return &Reader{loader: loader}
}

var _ ports.DatasetReaderPort = (*Reader)(nil)

func (r *Reader) Countries(ctx context.Context) ([]domain.Country, error) {
	dataset, err := r.loader.Execute(ctx)
	if err != nil {
		return nil, err
	}

	countries := make([]domain.Country, 0, len(dataset.Countries))
	for _, rec := range dataset.Countries {
		countries = append(countries, domain.Country{
			ISOCode:         rec.ISOCode,
			Location:        rec.Location,
			Continent:       rec.Continent,
			TotalCases:      rec.TotalCases,
			TotalDeaths:     rec.TotalDeaths,
			VaccinationRate: rec.VaccinationRate,
			MortalityRate:   rec.MortalityRate,
			Population:      rec.Population,
		})
	}

	return countries, nil
}

func (r *Reader) TrendPoints(ctx context.Context) ([]domain.TrendPoint, error) {
	dataset, err := r.loader.Execute(ctx)
	if err != nil {
		return nil, err
	}

	points := make([]domain.TrendPoint, 0, len(dataset.Trend))
	for _, rec := range dataset.Trend {
		points = append(points, domain.TrendPoint{
			Date:      rec.Date,
			Smoothed:  rec.SmoothedNewCases,
			Predicted: rec.PredictedNewCases,
		})
	}

	return points, nil
}
