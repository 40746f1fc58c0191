package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/fx"
	"nuamx/internal/service"
	"nuamx/mocks"
)

func setupBatchService() (service.BatchService, *mocks.MockRatingRepo, *mocks.MockFxRateRepo, *mocks.MockEventPublisher) {
	ratings := new(mocks.MockRatingRepo)
	rates := new(mocks.MockFxRateRepo)
	publisher := new(mocks.MockEventPublisher)
	svc := service.NewBatchService(ratings, fx.NewConverter(rates), publisher, nil, "")
	return svc, ratings, rates, publisher
}

func record(overrides map[string]string) map[string]string {
	rec := map[string]string{
		"RUT":      "76.543.210-K",
		"Name":     "Acme Corp",
		"Period":   "2024-03",
		"Type":     "Invoice",
		"Folio":    "F-1001",
		"Amount":   "1500",
		"Currency": "CLP",
		"Status":   "Valid",
		"Notes":    "",
	}
	for k, v := range overrides {
		rec[k] = v
	}
	return rec
}

func TestBatchService_Preview(t *testing.T) {
	svc, _, rates, _ := setupBatchService()
	rates.On("GetByCode", mock.Anything, domain.CurrencyUSD).Return(&domain.FxRate{
		Code:       domain.CurrencyUSD,
		CLPPerUnit: decimal.NewFromInt(950),
	}, nil)

	preview, err := svc.Preview(context.Background(), &service.BatchInput{
		Records: []map[string]string{
			record(nil),
			record(map[string]string{"Folio": "F-1002", "Amount": "12,50", "Currency": "USD"}),
			record(map[string]string{"RUT": "", "Folio": ""}),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, preview.Total)
	assert.Equal(t, 2, preview.Committable)
	assert.Equal(t, 1, preview.Rejected)
	assert.Equal(t, "mixed", preview.Currency)

	assert.Equal(t, int64(1500), preview.Rows[0].AmountCLP)
	assert.Equal(t, int64(11875), preview.Rows[1].AmountCLP)
	assert.False(t, preview.Rows[1].Degraded)
}

func TestBatchService_Preview_SingleCurrency(t *testing.T) {
	svc, _, _, _ := setupBatchService()

	preview, err := svc.Preview(context.Background(), &service.BatchInput{
		Records: []map[string]string{record(nil), record(map[string]string{"Folio": "F-2"})},
	})
	require.NoError(t, err)
	assert.Equal(t, "CLP", preview.Currency)
}

func TestBatchService_Preview_DegradedConversionFlagged(t *testing.T) {
	svc, _, rates, _ := setupBatchService()
	rates.On("GetByCode", mock.Anything, domain.CurrencyCOP).Return(nil, domain.ErrFxRateNotFound)

	preview, err := svc.Preview(context.Background(), &service.BatchInput{
		Records: []map[string]string{record(map[string]string{"Amount": "2500000", "Currency": "COP"})},
	})
	require.NoError(t, err)

	require.Len(t, preview.Rows, 1)
	assert.True(t, preview.Rows[0].Degraded)
	assert.Equal(t, int64(2500000), preview.Rows[0].AmountCLP)
	assert.True(t, preview.Rows[0].Committable())
}

func TestBatchService_Preview_DefaultCurrency(t *testing.T) {
	svc, _, _, _ := setupBatchService()

	preview, err := svc.Preview(context.Background(), &service.BatchInput{
		Records:         []map[string]string{record(map[string]string{"Currency": ""})},
		DefaultCurrency: "CLP",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyCLP, preview.Rows[0].CurrencyCode)
	assert.True(t, preview.Rows[0].Committable())
}

func TestBatchService_Preview_EmptyBatch(t *testing.T) {
	svc, _, _, _ := setupBatchService()

	_, err := svc.Preview(context.Background(), &service.BatchInput{})
	assert.ErrorIs(t, err, domain.ErrEmptyBatch)
}

func TestBatchService_Commit(t *testing.T) {
	svc, ratings, _, publisher := setupBatchService()

	ratings.On("Create", mock.Anything, mock.AnythingOfType("*domain.Rating")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Rating).ID = uuid.New()
		}).Return(nil)
	publisher.On("Publish", mock.Anything, mock.AnythingOfType("domain.RatingEvent")).Return(nil)

	result, err := svc.Commit(context.Background(), &service.BatchInput{
		Records: []map[string]string{
			record(nil),
			record(map[string]string{"Folio": "F-1002"}),
			record(map[string]string{"RUT": ""}), // rejected, never persisted
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Len(t, result.IDs, 2)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Errors, "rut is required")

	ratings.AssertNumberOfCalls(t, "Create", 2)
	publisher.AssertNumberOfCalls(t, "Publish", 2)
}

func TestBatchService_Commit_RowIndependent(t *testing.T) {
	svc, ratings, _, publisher := setupBatchService()

	ratings.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.Folio == "F-1001"
	})).Return(errors.New("unique constraint"))
	ratings.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Rating) bool {
		return r.Folio == "F-1002"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Rating).ID = uuid.New()
	}).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.Commit(context.Background(), &service.BatchInput{
		Records: []map[string]string{
			record(nil),
			record(map[string]string{"Folio": "F-1002"}),
		},
	})
	require.NoError(t, err)

	// The first row's storage failure does not touch the second row.
	assert.Equal(t, 1, result.Created)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Errors[0], "storage failure")
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestBatchService_Commit_PublishFailureIsNonFatal(t *testing.T) {
	svc, ratings, _, publisher := setupBatchService()

	ratings.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Rating).ID = uuid.New()
	}).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	result, err := svc.Commit(context.Background(), &service.BatchInput{
		Records: []map[string]string{record(nil)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Empty(t, result.Failures)
}

func TestBatchService_Commit_NoCommittableRows(t *testing.T) {
	svc, ratings, _, _ := setupBatchService()

	result, err := svc.Commit(context.Background(), &service.BatchInput{
		Records: []map[string]string{record(map[string]string{"RUT": "", "Folio": ""})},
	})

	assert.ErrorIs(t, err, domain.ErrNoCommittableRows)
	require.NotNil(t, result)
	assert.Equal(t, 0, result.Created)
	assert.Len(t, result.Failures, 1)
	ratings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
