package datasetreader_test

import (
	"context"
	"testing"
	"time"

	datasetDomain "covid-dashboard-service/internal/dataset/core/domain"
	datasetUsecase "covid-dashboard-service/internal/dataset/core/usecase"
	"covid-dashboard-service/internal/insights/adapters/datasetreader"
)

type fixtureSource struct {
	loads int
}

func (s *fixtureSource) LoadTrend(ctx context.Context) ([]datasetDomain.TrendRecord, error) {
	s.loads++
	return []datasetDomain.TrendRecord{
		{
			Date:              time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
			SmoothedNewCases:  1000,
			PredictedNewCases: 900,
		},
	}, nil
}

func (s *fixtureSource) LoadCountries(ctx context.Context) ([]datasetDomain.CountryRecord, error) {
	s.loads++
	return []datasetDomain.CountryRecord{
		{
			ISOCode:         "FRA",
			Location:        "France",
			Continent:       "Europe",
			TotalCases:      100,
			TotalDeaths:     5,
			VaccinationRate: 70,
			MortalityRate:   5,
			Population:      67_000_000,
		},
	}, nil
}

func TestReader_MapsLoaderRecords(t *testing.T) {
	source := &fixtureSource{}
	reader := datasetreader.NewReader(datasetUsecase.NewLoadDatasetUseCase(source))

	countries, err := reader.Countries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(countries) != 1 {
		t.Fatalf("expected 1 country, got %d", len(countries))
	}
	c := countries[0]
	if c.ISOCode != "FRA" || c.Continent != "Europe" || c.TotalCases != 100 || c.Population != 67_000_000 {
		t.Fatalf("unexpected mapped country: %+v", c)
	}

	points, err := reader.TrendPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 {
		t.Fatalf("expected 1 trend point, got %d", len(points))
	}
	if points[0].Smoothed != 1000 || points[0].Predicted != 900 {
		t.Fatalf("unexpected mapped trend point: %+v", points[0])
	}
}

func TestReader_UsesCachedDataset(t *testing.T) {
	source := &fixtureSource{}
	reader := datasetreader.NewReader(datasetUsecase.NewLoadDatasetUseCase(source))

	for i := 0; i < 3; i++ {
		if _, err := reader.Countries(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// One trend load plus one countries load, regardless of reader calls.
	if source.loads != 2 {
		t.Fatalf("expected 2 source loads total, got %d", source.loads)
	}
}
