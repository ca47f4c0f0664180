package ports

import (
	"context"

	"covid-dashboard-service/internal/insights/core/domain"
)

// DatasetReaderPort exposes the cached, read-only dataset to the view-model
// usecases. Implementations must return the same data on every call within a
// process; callers never mutate the returned slices.
type DatasetReaderPort interface {
	Countries(ctx context.Context) ([]domain.Country, error)
	TrendPoints(ctx context.Context) ([]domain.TrendPoint, error)
}
