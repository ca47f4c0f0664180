package usecase

import (
	"context"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

type GetSummaryInput struct {
	Continents []string // empty = all
}

// GetSummaryUseCase computes the four KPI tiles over the filtered set.
// Empty sets degrade to sentinels rather than errors so the dashboard stays
// renderable whatever the filter.
type GetSummaryUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetSummaryUseCase(reader ports.DatasetReaderPort) *GetSummaryUseCase {
	return &GetSummaryUseCase{reader: reader}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) (*domain.Summary, error) {
	countries, err := uc.reader.Countries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByContinents(countries, in.Continents)

	summary := &domain.Summary{
		TopCountry: domain.TopCountrySentinel,
		Count:      len(filtered),
	}

	if len(filtered) == 0 {
		return summary, nil
	}

	var vaxSum float64
	top := filtered[0]
	for _, c := range filtered {
		summary.TotalCases += c.TotalCases
		summary.TotalDeaths += c.TotalDeaths
		vaxSum += c.VaccinationRate
		if c.TotalCases > top.TotalCases {
			top = c
		}
	}

	summary.AvgVaccinationRate = vaxSum / float64(len(filtered))
	summary.TopCountry = top.Location

	return summary, nil
}
