package ports

import (
	"context"

	"covid-dashboard-service/internal/dataset/core/domain"
)

// DatasetSourcePort loads the two precomputed tables from wherever the
// upstream batch job materialized them (CSV files or Postgres).
//
// LoadTrend / LoadCountries:
//   err wraps domain.ErrResourceNotFound -> the table is absent
//   any other err                        -> the table exists but is unreadable
type DatasetSourcePort interface {
	LoadTrend(ctx context.Context) ([]domain.TrendRecord, error)
	LoadCountries(ctx context.Context) ([]domain.CountryRecord, error)
}
