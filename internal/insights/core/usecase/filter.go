package usecase

import "covid-dashboard-service/internal/insights/core/domain"

// filterByContinents selects the countries whose continent is in the chosen
// subset. An empty subset means "no filter": the full set participates. The
// source slice is never mutated; an empty selection returns it as-is.
func filterByContinents(countries []domain.Country, continents []string) []domain.Country {
	if len(continents) == 0 {
		return countries
	}

	selected := make(map[string]struct{}, len(continents))
	for _, c := range continents {
		selected[c] = struct{}{}
	}

	filtered := make([]domain.Country, 0, len(countries))
	for _, c := range countries {
		if _, ok := selected[c.Continent]; ok {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
