package usecase

import (
	"context"
	"sort"

	"covid-dashboard-service/internal/insights/core/ports"
)

// ListContinentsUseCase backs the multi-select control: the distinct
// continents present in the dataset, sorted ascending.
type ListContinentsUseCase struct {
	reader ports.DatasetReaderPort
}

func NewListContinentsUseCase(reader ports.DatasetReaderPort) *ListContinentsUseCase {
	return &ListContinentsUseCase{reader: reader}
}

func (uc *ListContinentsUseCase) Execute(ctx context.Context) ([]string, error) {
	countries, err := uc.reader.Countries(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	continents := make([]string, 0)
	for _, c := range countries {
		if _, ok := seen[c.Continent]; ok {
			continue
		}
		seen[c.Continent] = struct{}{}
		continents = append(continents, c.Continent)
	}

	sort.Strings(continents)

	return continents, nil
}
