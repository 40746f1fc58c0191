package port

import (
	"context"

	"nuamx/internal/domain"
)

// FxRateRepository reads exchange-rate reference data. The pipeline never
// writes rates; they are maintained administratively.
type FxRateRepository interface {
	// GetByCode returns the rate for a currency, or domain.ErrFxRateNotFound.
	GetByCode(ctx context.Context, code domain.CurrencyCode) (*domain.FxRate, error)
	List(ctx context.Context) ([]domain.FxRate, error)
}
