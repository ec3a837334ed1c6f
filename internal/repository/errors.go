package repository

import (
	"errors"
	"strings"

	ierr "charty-dashboard-backend/internal/errors"

	"gorm.io/gorm"
)

// wrapErr marks gorm failures so callers can tell a missing row from a store failure.
func wrapErr(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ierr.WithError(err).
			WithHintf("%s: record not found", op).
			Mark(ierr.ErrNotFound)
	}
	return ierr.WithError(err).
		WithMessage(op).
		WithHint("database error").
		Mark(ierr.ErrDatabase)
}

func likePattern(q string) string {
	return "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
}

func offsetFor(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}
