package actions

import (
	"context"

	"charty-dashboard-backend/internal/cache"
	"charty-dashboard-backend/internal/models"
	"charty-dashboard-backend/internal/validation"
)

// CreateChart inserts one chart. The cid is generated on insert.
func (s *Service) CreateChart(ctx context.Context, _ ActionState, form validation.Form) (ActionState, error) {
	in, errs := validation.ParseChart(form)
	if !errs.Empty() {
		s.log.Warnw("validation failed", "operation", opCreate, "entity", entityChart, "errors", errs.String())
		return validationFailed(errs, opCreate, entityChart), nil
	}

	chart := &models.Chart{Number: in.Number(), Title: in.Title, Image: in.Image}
	err := s.charts.Create(ctx, chart)
	return s.persisted(ctx, err, opCreate, entityChart, cache.PathCharts, true)
}

// UpdateChart overwrites id, title and image of the chart keyed by cid.
func (s *Service) UpdateChart(ctx context.Context, cid string, _ ActionState, form validation.Form) (ActionState, error) {
	in, errs := validation.ParseChart(form)
	if !errs.Empty() {
		s.log.Warnw("validation failed", "operation", opUpdate, "entity", entityChart, "cid", cid, "errors", errs.String())
		return validationFailed(errs, opUpdate, entityChart), nil
	}

	err := s.charts.UpdateByCID(ctx, cid, in.Number(), in.Title, in.Image)
	return s.persisted(ctx, err, opUpdate, entityChart, cache.PathCharts, true)
}

func (s *Service) DeleteChart(ctx context.Context, cid string) (ActionState, error) {
	err := s.charts.DeleteByCID(ctx, cid)
	return s.persisted(ctx, err, opDelete, entityChart, cache.PathCharts, false)
}
