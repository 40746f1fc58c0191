package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/service"
	"nuamx/mocks"
)

func TestRatingService_GetByID_NotFound(t *testing.T) {
	ratings := new(mocks.MockRatingRepo)
	id := uuid.New()
	ratings.On("GetByID", mock.Anything, id).Return(nil, domain.ErrRatingNotFound)

	svc := service.NewRatingService(ratings)
	_, err := svc.GetByID(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrRatingNotFound)
}

func TestRatingService_List_ClampsPagination(t *testing.T) {
	ratings := new(mocks.MockRatingRepo)
	ratings.On("List", mock.Anything, mock.Anything, 0, 50).Return([]domain.Rating{}, 0, nil)

	svc := service.NewRatingService(ratings)
	_, _, err := svc.List(context.Background(), domain.RatingFilters{}, -5, 10000)

	require.NoError(t, err)
	ratings.AssertExpectations(t)
}
