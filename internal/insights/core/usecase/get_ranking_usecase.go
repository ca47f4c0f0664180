package usecase

import (
	"context"
	"sort"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/ports"
)

const rankingSize = 10

type GetRankingInput struct {
	Continents []string // empty = all
	Metric     string
}

// GetRankingUseCase produces the top-10 bar chart: the filtered set sorted
// descending by the chosen metric. The sort is stable so ties keep dataset
// order and repeated calls are byte-identical.
type GetRankingUseCase struct {
	reader ports.DatasetReaderPort
}

func NewGetRankingUseCase(reader ports.DatasetReaderPort) *GetRankingUseCase {
	return &GetRankingUseCase{reader: reader}
}

func (uc *GetRankingUseCase) Execute(ctx context.Context, in GetRankingInput) ([]domain.RankedCountry, error) {
	if err := validateMetric(in.Metric); err != nil {
		return nil, err
	}

	countries, err := uc.reader.Countries(ctx)
	if err != nil {
		return nil, err
	}

	filtered := filterByContinents(countries, in.Continents)

	// Sort a copy; the cached dataset must keep its input order.
	sorted := make([]domain.Country, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metricValue(sorted[i], in.Metric) > metricValue(sorted[j], in.Metric)
	})

	n := rankingSize
	if len(sorted) < n {
		n = len(sorted)
	}

	ranking := make([]domain.RankedCountry, 0, n)
	for i := 0; i < n; i++ {
		ranking = append(ranking, domain.RankedCountry{
			Rank:     i + 1,
			ISOCode:  sorted[i].ISOCode,
			Location: sorted[i].Location,
			Value:    metricValue(sorted[i], in.Metric),
		})
	}

	return ranking, nil
}
