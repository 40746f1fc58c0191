package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/service"
	"nuamx/mocks"
)

func TestReportService_Summary(t *testing.T) {
	ratings := new(mocks.MockRatingRepo)
	ratings.On("CurrencyTotals", mock.Anything, mock.Anything).Return([]domain.CurrencyTotal{
		{CurrencyCode: domain.CurrencyCLP, Rows: 3, TotalCLP: 4500},
		{CurrencyCode: domain.CurrencyUSD, Rows: 1, TotalCLP: 11875},
	}, nil)
	ratings.On("PeriodCounts", mock.Anything, mock.Anything).Return([]domain.PeriodCount{
		{Period: "2024-03", Rows: 4},
	}, nil)

	svc := service.NewReportService(ratings)
	report, err := svc.Summary(context.Background(), domain.RatingFilters{})
	require.NoError(t, err)

	assert.Len(t, report.Currencies, 2)
	assert.Equal(t, int64(4500), report.Currencies[0].TotalCLP)
	assert.Len(t, report.Periods, 1)
}

func TestReportService_SummaryEmpty(t *testing.T) {
	ratings := new(mocks.MockRatingRepo)
	ratings.On("CurrencyTotals", mock.Anything, mock.Anything).Return(nil, nil)
	ratings.On("PeriodCounts", mock.Anything, mock.Anything).Return(nil, nil)

	svc := service.NewReportService(ratings)
	report, err := svc.Summary(context.Background(), domain.RatingFilters{})
	require.NoError(t, err)

	assert.NotNil(t, report.Currencies)
	assert.NotNil(t, report.Periods)
	assert.Empty(t, report.Currencies)
}
