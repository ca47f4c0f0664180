package usecase

import (
	"context"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

type GetMapInput struct {
	Continents []string // empty = all
	Metric     string
}

// GetMapUseCase produces the choropleth data: every filtered country keyed
// by iso_code with the chosen metric as its color value.
type GetMapUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetMapUseCase(reader ports.DatasetReaderPort) *GetMapUseCase {
	return &GetMapUseCase{reader: reader}
}

func (uc *GetMapUseCase) Execute(ctx context.Context, in GetMapInput) ([]domain.MapPoint, error) {
	if err := validateMetric(in.Metric); err != nil {
		return nil, err
	}

	countries, err := uc.reader.Countries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByContinents(countries, in.Continents)

	points := make([]domain.MapPoint, 0, len(filtered))
	for _, c := range filtered {
		points = append(points, domain.MapPoint{
			ISOCode:  c.ISOCode,
			Location: c.Location,
			Value:    metricValue(c, in.Metric),
		})
	}

	return points, nil
}
