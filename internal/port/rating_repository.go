package port

import (
	"context"

	"github.com/google/uuid"

	"nuamx/internal/domain"
)

// RatingRepository is the persistence contract for committed ratings.
type RatingRepository interface {
	Create(ctx context.Context, r *domain.Rating) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	List(ctx context.Context, filters domain.RatingFilters, offset, limit int) ([]domain.Rating, int, error)

	// LatestDisplayName returns the display name of the most recently
	// committed rating for the RUT that carries a non-blank name.
	// Returns domain.ErrRatingNotFound when no such rating exists.
	LatestDisplayName(ctx context.Context, rut string) (string, error)

	// ListForNameResolution returns up to limit resolution candidates,
	// newest first, narrowed by filters. When includeNamed is false only
	// ratings with a blank display name qualify; when true, named
	// ratings are candidates too so an overwrite run can replace them.
	ListForNameResolution(ctx context.Context, filters domain.RatingFilters, includeNamed bool, limit int) ([]domain.Rating, error)

	UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) error

	CurrencyTotals(ctx context.Context, filters domain.RatingFilters) ([]domain.CurrencyTotal, error)
	PeriodCounts(ctx context.Context, filters domain.RatingFilters) ([]domain.PeriodCount, error)
}
