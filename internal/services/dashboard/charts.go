package dashboard

import (
	"context"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/models"
)

func (s *Service) FetchFilteredCharts(ctx context.Context, query string, page int) ([]models.Chart, error) {
	page = normalizePage(page)
	key := cache.VersionedKey(ctx, s.cache, cache.PathCharts, "rows", query, page)
	return cached(ctx, s, key, func() ([]models.Chart, error) {
		charts, err := s.charts.SearchCharts(ctx, query, page, s.itemsPerPage)
		if err != nil {
			return nil, err
		}
		if charts == nil {
			charts = []models.Chart{}
		}
		return charts, nil
	})
}

func (s *Service) FetchChartsPages(ctx context.Context, query string) (int, error) {
	key := cache.VersionedKey(ctx, s.cache, cache.PathCharts, "pages", query)
	return cached(ctx, s, key, func() (int, error) {
		count, err := s.charts.CountCharts(ctx, query)
		if err != nil {
			return 0, err
		}
		return totalPages(count, s.itemsPerPage), nil
	})
}

// FetchChartByID loads the chart keyed by cid for the edit form.
func (s *Service) FetchChartByID(ctx context.Context, cid string) (*models.Chart, error) {
	return s.charts.GetByCID(ctx, cid)
}
