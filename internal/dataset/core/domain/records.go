package domain

import (
	"errors"
	"time"
)

// ErrResourceNotFound is returned by source adapters when one of the two
// input tables does not exist. The caller must halt before serving.
var ErrResourceNotFound = errors.New("dataset resource not found")

// TrendRecord is one day of the global time series produced by the upstream
// batch job: the smoothed actual case count and the model prediction.
type TrendRecord struct {
	Date              time.Time
	SmoothedNewCases  float64
	PredictedNewCases float64
}

// CountryRecord is one row of the per-country summary table.
type CountryRecord struct {
	ISOCode         string
	Location        string
	Continent       string
	TotalCases      float64
	TotalDeaths     float64
	VaccinationRate float64 // percent, 0..100
	MortalityRate   float64 // percent, 0..100
	Population      int64
}

// Dataset is the read-only handle over both tables. It is populated once at
// startup and never mutated afterwards.
type Dataset struct {
	Trend     []TrendRecord
	Countries []CountryRecord
}
