package domain

import "time"

// Country is the insights-side view of one per-country row. The dataset
// adapter maps loader records into this type; usecases never see the loader's
// own types.
type Country struct {
	ISOCode         string
	Location        string
	Continent       string
	TotalCases      float64
	TotalDeaths     float64
	VaccinationRate float64
	MortalityRate   float64
	Population      int64
}

// TrendPoint is one day of the global series with its model prediction.
type TrendPoint struct {
	Date      time.Time
	Smoothed  float64
	Predicted float64
}

// TopCountrySentinel is shown in the "#1 Most Impacted" tile when the
// filtered set is empty.
const TopCountrySentinel = "-"

// Summary backs the four KPI tiles. Count is the number of records that
// participated; when it is zero the sums are 0, AvgVaccinationRate is
// undefined and TopCountry holds the sentinel.
type Summary struct {
	TotalCases         float64
	TotalDeaths        float64
	AvgVaccinationRate float64
	TopCountry         string
	Count              int
}

// RankedCountry is one bar of the top-10 chart.
type RankedCountry struct {
	Rank     int
	ISOCode  string
	Location string
	Value    float64
}

// MapPoint is one country of the choropleth, colored by the chosen metric.
type MapPoint struct {
	ISOCode  string
	Location string
	Value    float64
}

// BubblePoint is one country of the vaccination-vs-mortality scatter.
type BubblePoint struct {
	Location        string
	Continent       string
	VaccinationRate float64
	MortalityRate   float64
	Population      int64
}

// ReferenceLines are the two dotted mean lines of the scatter.
type ReferenceLines struct {
	AvgVaccinationRate float64
	AvgMortalityRate   float64
}

// CorrelationView drives the bubble chart. ReferenceLines is nil when the
// filtered set is empty: no lines are drawn over an empty chart.
type CorrelationView struct {
	Points         []BubblePoint
	ReferenceLines *ReferenceLines
}

// TrendView drives the dual-line time-series chart. LastPredictionError is
// actual minus predicted on the final day, nil when the series is empty.
type TrendView struct {
	Points              []TrendPoint
	LastPredictionError *float64
}
