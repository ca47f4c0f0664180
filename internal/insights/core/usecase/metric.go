package usecase

import (
	"errors"

	"covid-dashboard-service/internal/insights/core/domain"
)

// ErrInvalidMetric means the metric name is outside the closed selector set.
// The UI only offers valid names, so hitting this is a caller bug, not a
// recoverable runtime case.
var ErrInvalidMetric = errors.New("invalid metric")

const (
	MetricTotalCases      = "total_cases"
	MetricTotalDeaths     = "total_deaths"
	MetricVaccinationRate = "vaccination_rate"
)

func validateMetric(metric string) error {
	switch metric {
	case MetricTotalCases, MetricTotalDeaths, MetricVaccinationRate:
		return nil
	default:
		return ErrInvalidMetric
	}
}

// metricValue assumes the metric was validated already.
func metricValue(c domain.Country, metric string) float64 {
	switch metric {
	case MetricTotalCases:
		return c.TotalCases
	case MetricTotalDeaths:
		return c.TotalDeaths
	default:
		return c.VaccinationRate
	}
}
