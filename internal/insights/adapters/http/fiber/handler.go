package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"covid-dashboard-service/internal/insights/core/domain"
	"covid-dashboard-service/internal/insights/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListContinentsUseCase interface {
	Execute(ctx context.Context) ([]string, error)
}

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) (*domain.Summary, error)
}

type GetRankingUseCase interface {
	Execute(ctx context.Context, in usecase.GetRankingInput) ([]domain.RankedCountry, error)
}

type GetMapUseCase interface {
	Execute(ctx context.Context, in usecase.GetMapInput) ([]domain.MapPoint, error)
}

type GetCorrelationUseCase interface {
	Execute(ctx context.Context, in usecase.GetCorrelationInput) (*domain.CorrelationView, error)
}

type GetTrendUseCase interface {
	Execute(ctx context.Context) (*domain.TrendView, error)
}

type DashboardHandler struct {
	continents  ListContinentsUseCase
	summary     GetSummaryUseCase
	ranking     GetRankingUseCase
	mapView     GetMapUseCase
	correlation GetCorrelationUseCase
	trend       GetTrendUseCase
}

func NewDashboardHandler(
	continents ListContinentsUseCase,
	summary GetSummaryUseCase,
	ranking GetRankingUseCase,
	mapView GetMapUseCase,
	correlation GetCorrelationUseCase,
	trend GetTrendUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		continents:  continents,
		summary:     summary,
		ranking:     ranking,
		mapView:     mapView,
		correlation: correlation,
		trend:       trend,
	}
}

const dateLayout = "2006-01-02"

// continentsParam parses the comma-separated continents query parameter.
// Absent or blank means "all continents".
func continentsParam(c *fiber.Ctx) []string {
	raw := c.Query("continents", "")
	if raw == "" {
		return nil
	}

	var continents []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			continents = append(continents, part)
		}
	}
	return continents
}

// ListContinents godoc
// @Summary List continents
// @Description Distinct continents present in the dataset, sorted ascending
// @Tags Dashboard
// @Produce json
// @Success 200 {object} ContinentsResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/continents [get]
func (h *DashboardHandler) ListContinents(c *fiber.Ctx) error {
	continents, err := h.continents.Execute(c.Context())
	if err != nil {
		return internalError(c)
	}

	return c.Status(http.StatusOK).JSON(ContinentsResponse{Continents: continents})
}

// GetSummary godoc
// @Summary KPI summary
// @Description Totals, average vaccination rate and most impacted country over the filtered set
// @Tags Dashboard
// @Produce json
// @Param continents query string false "Comma-separated continents; empty selects all"
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	in := usecase.GetSummaryInput{Continents: continentsParam(c)}

	res, err := h.summary.Execute(c.Context(), in)
	if err != nil {
		return internalError(c)
	}

	resp := SummaryResponse{
		TotalCases:  res.TotalCases,
		TotalDeaths: res.TotalDeaths,
		TopCountry:  res.TopCountry,
		Countries:   res.Count,
	}
	if res.Count > 0 {
		avg := res.AvgVaccinationRate
		resp.AvgVaccinationRate = &avg
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTopCountries godoc
// @Summary Top countries by metric
// @Description Up to 10 countries of the filtered set, sorted descending by the chosen metric
// @Tags Dashboard
// @Produce json
// @Param continents query string false "Comma-separated continents; empty selects all"
// @Param metric query string false "total_cases | total_deaths | vaccination_rate" default(total_cases)
// @Success 200 {object} TopCountriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/top-countries [get]
func (h *DashboardHandler) GetTopCountries(c *fiber.Ctx) error {
	in := usecase.GetRankingInput{
		Continents: continentsParam(c),
		Metric:     c.Query("metric", usecase.MetricTotalCases),
	}

	ranking, err := h.ranking.Execute(c.Context(), in)
	if err != nil {
		return mapUseCaseError(c, err)
	}

	resp := TopCountriesResponse{
		Metric:    in.Metric,
		Countries: make([]RankedCountryResponse, 0, len(ranking)),
	}
	for _, r := range ranking {
		resp.Countries = append(resp.Countries, RankedCountryResponse{
			Rank:     r.Rank,
			ISOCode:  r.ISOCode,
			Location: r.Location,
			Value:    r.Value,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetMap godoc
// @Summary Choropleth data
// @Description Filtered countries keyed by iso_code with the chosen metric as value
// @Tags Dashboard
// @Produce json
// @Param continents query string false "Comma-separated continents; empty selects all"
// @Param metric query string false "total_cases | total_deaths | vaccination_rate" default(total_cases)
// @Success 200 {object} MapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/map [get]
func (h *DashboardHandler) GetMap(c *fiber.Ctx) error {
	in := usecase.GetMapInput{
		Continents: continentsParam(c),
		Metric:     c.Query("metric", usecase.MetricTotalCases),
	}

	points, err := h.mapView.Execute(c.Context(), in)
	if err != nil {
		return mapUseCaseError(c, err)
	}

	resp := MapResponse{
		Metric: in.Metric,
		Points: make([]MapPointResponse, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, MapPointResponse{
			ISOCode:  p.ISOCode,
			Location: p.Location,
			Value:    p.Value,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetCorrelation godoc
// @Summary Vaccination vs mortality
// @Description Bubble chart points with mean reference lines over the filtered set
// @Tags Dashboard
// @Produce json
// @Param continents query string false "Comma-separated continents; empty selects all"
// @Success 200 {object} CorrelationResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/correlation [get]
func (h *DashboardHandler) GetCorrelation(c *fiber.Ctx) error {
	in := usecase.GetCorrelationInput{Continents: continentsParam(c)}

	view, err := h.correlation.Execute(c.Context(), in)
	if err != nil {
		return internalError(c)
	}

	resp := CorrelationResponse{
		Points: make([]BubblePointResponse, 0, len(view.Points)),
	}
	for _, p := range view.Points {
		resp.Points = append(resp.Points, BubblePointResponse{
			Location:        p.Location,
			Continent:       p.Continent,
			VaccinationRate: p.VaccinationRate,
			MortalityRate:   p.MortalityRate,
			Population:      p.Population,
		})
	}
	if view.ReferenceLines != nil {
		resp.ReferenceLines = &ReferenceLinesResponse{
			AvgVaccinationRate: view.ReferenceLines.AvgVaccinationRate,
			AvgMortalityRate:   view.ReferenceLines.AvgMortalityRate,
		}
	}

	return c.Status(http.StatusOK).JSON(resp)
}

// GetTrend godoc
// @Summary Global trend with prediction
// @Description Smoothed daily cases and model prediction, plus the last-day prediction error
// @Tags Dashboard
// @Produce json
// @Success 200 {object} TrendResponse
// @Failure 500 {object} ErrorResponse
// @Router /dashboard/trend [get]
func (h *DashboardHandler) GetTrend(c *fiber.Ctx) error {
	view, err := h.trend.Execute(c.Context())
	if err != nil {
		return internalError(c)
	}

	resp := TrendResponse{
		Points:              make([]TrendPointResponse, 0, len(view.Points)),
		LastPredictionError: view.LastPredictionError,
	}
	for _, p := range view.Points {
		resp.Points = append(resp.Points, TrendPointResponse{
			Date:      p.Date.Format(dateLayout),
			Smoothed:  p.Smoothed,
			Predicted: p.Predicted,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func mapUseCaseError(c *fiber.Ctx, err error) error {
	if errors.Is(err, usecase.ErrInvalidMetric) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_selection",
			Message: err.Error(),
		})
	}
	return internalError(c)
}

func internalError(c *fiber.Ctx) error {
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Error: "internal_server_error",
	})
}
