package usecase_test

import (
	"context"
	"time"

	"covid-dashboard-service/internal/insights/core/domain"
)

// fakeDatasetReader fakes DatasetReaderPort for tests.
type fakeDatasetReader struct {
	countries []domain.Country
	trend     []domain.TrendPoint
	err       error

	countryCalls int
	trendCalls   int
}

func (f *fakeDatasetReader) Countries(ctx context.Context) ([]domain.Country, error) {
	f.countryCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.countries, nil
}

func (f *fakeDatasetReader) TrendPoints(ctx context.Context) ([]domain.TrendPoint, error) {
	f.trendCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trend, nil
}

// Three countries on two continents: Europe holds 100+50 cases, Asia 200.
func sampleCountries() []domain.Country {
	return []domain.Country{
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
		{
			ISOCode:         "DEU",
			Location:        "Germany",
			Continent:       "Europe",
			TotalCases:      50,
			TotalDeaths:     1,
			VaccinationRate: 60,
			MortalityRate:   2,
			Population:      83_000_000,
		},
		{
			ISOCode:         "IND",
			Location:        "India",
			Continent:       "Asia",
			TotalCases:      200,
			TotalDeaths:     10,
			VaccinationRate: 40,
			MortalityRate:   5,
			Population:      1_400_000_000,
		},
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
