package usecase

import (
	"context"
	"sync"

	"covid-dashboard-service/internal/dataset/core/domain"
	"covid-dashboard-service/internal/dataset/core/ports"
)

// LoadDatasetUseCase reads both tables through the source port exactly once
// per process and hands out the same read-only dataset afterwards. A load
// failure is memoized too: a dashboard that failed to load its inputs must
// not half-render on a retry.
type LoadDatasetUseCase struct {
	source ports.DatasetSourcePort

	once    sync.Once
	dataset *domain.Dataset
	err     error
}

func NewLoadDatasetUseCase(source ports.DatasetSourcePort) *LoadDatasetUseCase {
	return &LoadDatasetUseCase{source: source}
}

func (uc *LoadDatasetUseCase) Execute(ctx context.Context) (*domain.Dataset, error) {
	uc.once.Do(func() {
		trend, err := uc.source.LoadTrend(ctx)
		if err != nil {
			uc.err = err
			return
		}

		countries, err := uc.source.LoadCountries(ctx)
		if err != nil {
			uc.err = err
			return
		}

		uc.dataset = &domain.Dataset{
			Trend:     trend,
			Countries: countries,
		}
	})

	return uc.dataset, uc.err
}
