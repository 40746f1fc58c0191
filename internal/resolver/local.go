package resolver

import (
	"context"
	"errors"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// LocalCacheSource resolves display names from previously committed
// ratings: the most recent record sharing the RUT with a non-blank name.
type LocalCacheSource struct {
	ratings port.RatingRepository
}

// NewLocalCacheSource creates the cascade's first-priority source.
func NewLocalCacheSource(ratings port.RatingRepository) *LocalCacheSource {
	return &LocalCacheSource{ratings: ratings}
}

func (s *LocalCacheSource) Tag() string { return "local-cache" }

func (s *LocalCacheSource) Lookup(ctx context.Context, rut string) (string, error) {
	name, err := s.ratings.LatestDisplayName(ctx, rut)
	if err != nil {
		if errors.Is(err, domain.ErrRatingNotFound) {
			return "", port.ErrNoMatch
		}
		return "", err
	}
	return name, nil
}
