package fx

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// Result is the outcome of normalizing one amount into CLP.
type Result struct {
	AmountCLP int64

	// Degraded is true when no exchange rate was on file and the raw
	// amount was passed through as if it were already CLP. This silently
	// changes magnitude semantics, so callers surface it per-row.
	Degraded bool
}

// Converter normalizes amounts into the canonical currency using
// exchange-rate reference data.
type Converter struct {
	rates port.FxRateRepository
}

// NewConverter creates a Converter backed by the given rate source.
func NewConverter(rates port.FxRateRepository) *Converter {
	return &Converter{rates: rates}
}

// Convert maps an amount in any supported currency to CLP, rounded to the
// nearest unit. CLP converts as identity. A missing rate does not fail the
// row: the amount passes through unconverted and the result is marked
// degraded.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, code domain.CurrencyCode) Result {
	if code == domain.CanonicalCurrency {
		return Result{AmountCLP: amount.Round(0).IntPart()}
	}

	rate, err := c.rates.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrFxRateNotFound) {
			log.Printf("fx.Converter: rate lookup for %s failed: %v", code, err)
		}
		// TODO: replace this pass-through with a hard per-row error once
		// the rates table is guaranteed seeded for all supported codes.
		log.Printf("fx.Converter: DEGRADED conversion: no CLP rate for %s, amount passed through unconverted", code)
		return Result{AmountCLP: amount.Round(0).IntPart(), Degraded: true}
	}

	return Result{AmountCLP: amount.Mul(rate.CLPPerUnit).Round(0).IntPart()}
}
