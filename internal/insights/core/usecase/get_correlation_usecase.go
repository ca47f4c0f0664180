package usecase

import (
	"context"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

type GetCorrelationInput struct {
	Continents []string // empty = all
}

// GetCorrelationUseCase produces the vaccination-vs-mortality bubble chart:
// one point per filtered country plus the two mean reference lines. An empty
// filtered set yields no points and no lines.
type GetCorrelationUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetCorrelationUseCase(reader ports.DatasetReaderPort) *GetCorrelationUseCase {
	return &GetCorrelationUseCase{reader: reader}
}

func (uc *GetCorrelationUseCase) Execute(ctx context.Context, in GetCorrelationInput) (*domain.CorrelationView, error) {
	countries, err := uc.reader.Countries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByContinents(countries, in.Continents)

	view := &domain.CorrelationView{
		Points: make([]domain.BubblePoint, 0, len(filtered)),
	}

	var vaxSum, mortalitySum float64
	for _, c := range filtered {
		view.Points = append(view.Points, domain.BubblePoint{
			Location:        c.Location,
			Continent:       c.Continent,
			VaccinationRate: c.VaccinationRate,
			MortalityRate:   c.MortalityRate,
			Population:      c.Population,
		})
		vaxSum += c.VaccinationRate
		mortalitySum += c.MortalityRate
	}

	if len(filtered) > 0 {
		view.ReferenceLines = &domain.ReferenceLines{
			AvgVaccinationRate: vaxSum / float64(len(filtered)),
			AvgMortalityRate:   mortalitySum / float64(len(filtered)),
		}
	}

	return view, nil
}
