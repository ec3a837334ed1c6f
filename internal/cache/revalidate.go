package cache

import (
	"context"

	"charty-dashboard-backend/internal/logger"
)

// Revalidator is the invalidation signal sent after a successful mutation.
type Revalidator interface {
	Revalidate(ctx context.Context, path string)
}

// PathRevalidator advances the generation of path and drops every cached
// listing stored under it.
type PathRevalidator struct {
	cache Cache
	log   *logger.Logger
}

func NewPathRevalidator(c Cache, log *logger.Logger) *PathRevalidator {
	return &PathRevalidator{cache: c, log: log.Named("revalidate")}
}

func (r *PathRevalidator) Revalidate(ctx context.Context, path string) {
	paths := []string{path}
	// dashboard cards summarize invoices
	if path == PathInvoices {
		paths = append(paths, PathDashboard)
	}
	for _, p := range paths {
		r.cache.BumpGeneration(ctx, p)
		r.cache.DeleteByPrefix(ctx, p+keySeparator)
	}
	r.log.Debugw("revalidated listing", "path", path)
}
