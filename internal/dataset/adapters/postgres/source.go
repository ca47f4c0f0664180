package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Source reads the two tables the upstream batch job materializes in
// Postgres. SELECT only; this service never writes.
type Source struct {
	db DB
}

func NewSource(db DB) *Source {
	return &Source{db: db}
}

var _ ports.DatasetSourcePort = (*Source)(nil)

const selectTrendSQL = `
SELECT
    date,
    new_cases_smoothed,
    prediction
FROM global_trend
ORDER BY date`

const selectCountriesSQL = `
SELECT
    iso_code,
    location,
    continent,
    total_cases,
    total_deaths,
    vaccination_rate,
    mortality_rate,
    population
FROM country_insights
ORDER BY location`

func (s *Source) LoadTrend(ctx context.Context) ([]domain.TrendRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectTrendSQL)
	if err != nil {
		return nil, mapTableError("global_trend", err)
	}
	defer rows.Close()

	var records []domain.TrendRecord
	for rows.Next() {
		var rec domain.TrendRecord
		if err := rows.Scan(&rec.Date, &rec.SmoothedNewCases, &rec.PredictedNewCases); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (s *Source) LoadCountries(ctx context.Context) ([]domain.CountryRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectCountriesSQL)
	if err != nil {
		return nil, mapTableError("country_insights", err)
	}
	defer rows.Close()

	var records []domain.CountryRecord
	for rows.Next() {
		var rec domain.CountryRecord
		if err := rows.Scan(
			&rec.ISOCode,
			&rec.Location,
			&rec.Continent,
			&rec.TotalCases,
			&rec.TotalDeaths,
			&rec.VaccinationRate,
			&rec.MortalityRate,
			&rec.Population,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// mapTableError translates "relation does not exist" (42P01) into the same
// ResourceNotFound condition a missing CSV file produces.
func mapTableError(table string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" {
		return fmt.Errorf("%w: table %s", domain.ErrResourceNotFound, table)
	}
	return err
}
