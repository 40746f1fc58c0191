package resolver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/port"
	"nuamx/internal/resolver"
	"nuamx/mocks"
)

func TestLocalCacheSource_Hit(t *testing.T) {
	repo := new(mocks.MockRatingRepo)
	repo.On("LatestDisplayName", mock.Anything, "76.543.210-K").Return("Acme Corp", nil)

	s := resolver.NewLocalCacheSource(repo)
	name, err := s.Lookup(context.Background(), "76.543.210-K")

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", name)
	assert.Equal(t, "local-cache", s.Tag())
}

func TestLocalCacheSource_Miss(t *testing.T) {
	repo := new(mocks.MockRatingRepo)
	repo.On("LatestDisplayName", mock.Anything, "1-9").Return("", domain.ErrRatingNotFound)

	s := resolver.NewLocalCacheSource(repo)
	_, err := s.Lookup(context.Background(), "1-9")

	assert.ErrorIs(t, err, port.ErrNoMatch)
}

func TestLocalCacheSource_RepoFailure(t *testing.T) {
	repo := new(mocks.MockRatingRepo)
	repo.On("LatestDisplayName", mock.Anything, "1-9").Return("", errors.New("db down"))

	s := resolver.NewLocalCacheSource(repo)
	_, err := s.Lookup(context.Background(), "1-9")

	require.Error(t, err)
	assert.NotErrorIs(t, err, port.ErrNoMatch)
}
