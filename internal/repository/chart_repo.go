package repository

import (
	"context"

	"charty-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type ChartRepository struct {
	db *gorm.DB
}

func NewChartRepository(db *gorm.DB) *ChartRepository {
	return &ChartRepository{db: db}
}

func (r *ChartRepository) Create(ctx context.Context, chart *models.Chart) error {
	return wrapErr(r.db.WithContext(ctx).Create(chart).Error, "create chart")
}

// UpdateByCID overwrites the numeric id, title and image of the chart keyed by cid.
func (r *ChartRepository) UpdateByCID(ctx context.Context, cid string, number int, title, image string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Chart{}).
		Where("cid = ?", cid).
		Updates(map[string]interface{}{
			"id":    number,
			"title": title,
			"image": image,
		}).Error
	return wrapErr(err, "update chart")
}

func (r *ChartRepository) DeleteByCID(ctx context.Context, cid string) error {
	err := r.db.WithContext(ctx).
		Where("cid = ?", cid).
		Delete(&models.Chart{}).Error
	return wrapErr(err, "delete chart")
}

func (r *ChartRepository) GetByCID(ctx context.Context, cid string) (*models.Chart, error) {
	var chart models.Chart
	err := r.db.WithContext(ctx).First(&chart, "cid = ?", cid).Error
	if err != nil {
		return nil, wrapErr(err, "get chart")
	}
	return &chart, nil
}

func chartSearch(db *gorm.DB, query string) *gorm.DB {
	if query == "" {
		return db
	}
	like := likePattern(query)
	return db.Where("(LOWER(title) LIKE ? OR LOWER(image) LIKE ? OR CAST(id AS TEXT) LIKE ?)", like, like, like)
}

// SearchCharts returns one page of charts ordered by their numeric id.
func (r *ChartRepository) SearchCharts(ctx context.Context, query string, page, perPage int) ([]models.Chart, error) {
	var charts []models.Chart
	err := chartSearch(r.db.WithContext(ctx).Model(&models.Chart{}), query).
		Order("id ASC").
		Order("cid ASC").
		Limit(perPage).
		Offset(offsetFor(page, perPage)).
		Find(&charts).Error
	if err != nil {
		return nil, wrapErr(err, "search charts")
	}
	return charts, nil
}

func (r *ChartRepository) CountCharts(ctx context.Context, query string) (int64, error) {
	var count int64
	err := chartSearch(r.db.WithContext(ctx).Model(&models.Chart{}), query).Count(&count).Error
	return count, wrapErr(err, "count charts")
}
