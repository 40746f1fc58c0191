package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

type fxRateRepo struct {
	db *sqlx.DB
}

// NewFxRateRepo creates a new PostgreSQL-backed FxRateRepository.
func NewFxRateRepo(db *sqlx.DB) port.FxRateRepository {
	return &fxRateRepo{db: db}
}

func (r *fxRateRepo) GetByCode(ctx context.Context, code domain.CurrencyCode) (*domain.FxRate, error) {
	var rate domain.FxRate
	err := r.db.GetContext(ctx, &rate,
		"SELECT * FROM fx_rates WHERE code = $1", code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFxRateNotFound
		}
		return nil, fmt.Errorf("fxRateRepo.GetByCode: %w", err)
	}
	return &rate, nil
}

func (r *fxRateRepo) List(ctx context.Context) ([]domain.FxRate, error) {
	var rates []domain.FxRate
	err := r.db.SelectContext(ctx, &rates,
		"SELECT * FROM fx_rates ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("fxRateRepo.List: %w", err)
	}
	return rates, nil
}
