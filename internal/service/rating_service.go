package service

import (
	"context"

	"github.com/google/uuid"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// RatingService is the read side of committed ratings.
type RatingService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error)
	List(ctx context.Context, filters domain.RatingFilters, offset, limit int) ([]domain.Rating, int, error)
}

type ratingService struct {
	ratings port.RatingRepository
}

// NewRatingService creates a new RatingService.
func NewRatingService(ratings port.RatingRepository) RatingService {
	return &ratingService{ratings: ratings}
}

func (s *ratingService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	return s.ratings.GetByID(ctx, id)
}

func (s *ratingService) List(ctx context.Context, filters domain.RatingFilters, offset, limit int) ([]domain.Rating, int, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.ratings.List(ctx, filters, offset, limit)
}
