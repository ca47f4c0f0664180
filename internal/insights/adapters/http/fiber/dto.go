package fiber

type ContinentsResponse struct {
	Continents []string `json:"continents"`
}

type SummaryResponse struct {
	TotalCases  float64 `json:"total_cases"`
	TotalDeaths float64 `json:"total_deaths"`
	// Null when no record matched the filter; clients render "-".
	AvgVaccinationRate *float64 `json:"avg_vaccination_rate"`
	TopCountry         string   `json:"top_country" example:"United States"`
	Countries          int      `json:"countries"`
}

type RankedCountryResponse struct {
	Rank     int     `json:"rank"`
	ISOCode  string  `json:"iso_code" example:"USA"`
	Location string  `json:"location"`
	Value    float64 `json:"value"`
}

type TopCountriesResponse struct {
	Metric    string                  `json:"metric" example:"total_cases"`
	Countries []RankedCountryResponse `json:"countries"`
}

type MapPointResponse struct {
	ISOCode  string  `json:"iso_code" example:"USA"`
	Location string  `json:"location"`
	Value    float64 `json:"value"`
}

type MapResponse struct {
	Metric string             `json:"metric" example:"total_cases"`
	Points []MapPointResponse `json:"points"`
}

type BubblePointResponse struct {
	Location        string  `json:"location"`
	Continent       string  `json:"continent" example:"Europe"`
	VaccinationRate float64 `json:"vaccination_rate"`
	MortalityRate   float64 `json:"mortality_rate"`
	Population      int64   `json:"population"`
}

type ReferenceLinesResponse struct {
	AvgVaccinationRate float64 `json:"avg_vaccination_rate"`
	AvgMortalityRate   float64 `json:"avg_mortality_rate"`
}

type CorrelationResponse struct {
	Points []BubblePointResponse `json:"points"`
	// Omitted when the filtered set is empty.
	ReferenceLines *ReferenceLinesResponse `json:"reference_lines,omitempty"`
}

type TrendPointResponse struct {
	Date      string  `json:"date" example:"2021-06-01"`
	Smoothed  float64 `json:"smoothed"`
	Predicted float64 `json:"predicted"`
}

type TrendResponse struct {
	Points []TrendPointResponse `json:"points"`
	// Actual minus predicted on the last date; omitted for an empty series.
	LastPredictionError *float64 `json:"last_prediction_error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_selection"`
	Message string `json:"message" example:"invalid metric"`
}
