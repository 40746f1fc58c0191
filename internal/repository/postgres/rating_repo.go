package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

type ratingRepo struct {
	db *sqlx.DB
}

// NewRatingRepo creates a new PostgreSQL-backed RatingRepository.
func NewRatingRepo(db *sqlx.DB) port.RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Create(ctx context.Context, rating *domain.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	rating.CreatedAt = time.Now().UTC()

	query := `INSERT INTO ratings (
		id, rut, display_name, period, document_type,
		folio, amount_clp, currency_code, status, notes, created_at
	) VALUES (
		$1, $2, $3, $4, $5,
		$6, $7, $8, $9, $10, $11
	)`

	_, err := r.db.ExecContext(ctx, query,
		rating.ID, rating.RUT, rating.DisplayName, rating.Period, rating.DocumentType,
		rating.Folio, rating.AmountCLP, rating.CurrencyCode, rating.Status,
		rating.Notes, rating.CreatedAt)
	if err != nil {
		return fmt.Errorf("ratingRepo.Create: %w", err)
	}
	return nil
}

func (r *ratingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	var rating domain.Rating
	err := r.db.GetContext(ctx, &rating,
		"SELECT * FROM ratings WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, fmt.Errorf("ratingRepo.GetByID: %w", err)
	}
	return &rating, nil
}

// filterClause builds a WHERE fragment and its arguments from filters,
// numbering placeholders from startArg.
func filterClause(filters domain.RatingFilters, startArg int) (string, []interface{}) {
	clause := ""
	args := []interface{}{}
	n := startArg

	add := func(column, value string) {
		if value == "" {
			return
		}
		if clause == "" {
			clause = " WHERE "
		} else {
			clause += " AND "
		}
		clause += fmt.Sprintf("%s = $%d", column, n)
		args = append(args, value)
		n++
	}

	add("rut", filters.RUT)
	add("period", filters.Period)
	add("document_type", filters.DocumentType)
	add("status", filters.Status)
	return clause, args
}

func (r *ratingRepo) List(ctx context.Context, filters domain.RatingFilters, offset, limit int) ([]domain.Rating, int, error) {
	clause, args := filterClause(filters, 1)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM ratings"+clause, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ratingRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM ratings%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		clause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var ratings []domain.Rating
	err = r.db.SelectContext(ctx, &ratings, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ratingRepo.List: %w", err)
	}
	return ratings, total, nil
}

func (r *ratingRepo) LatestDisplayName(ctx context.Context, rut string) (string, error) {
	var name string
	err := r.db.GetContext(ctx, &name,
		`SELECT display_name FROM ratings
		 WHERE rut = $1 AND display_name <> ''
		 ORDER BY created_at DESC LIMIT 1`, rut)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrRatingNotFound
		}
		return "", fmt.Errorf("ratingRepo.LatestDisplayName: %w", err)
	}
	return name, nil
}

func (r *ratingRepo) ListForNameResolution(ctx context.Context, filters domain.RatingFilters, includeNamed bool, limit int) ([]domain.Rating, error) {
	clause, args := filterClause(filters, 1)
	if !includeNamed {
		if clause == "" {
			clause = " WHERE display_name = ''"
		} else {
			clause += " AND display_name = ''"
		}
	}

	query := fmt.Sprintf("SELECT * FROM ratings%s ORDER BY created_at DESC LIMIT $%d",
		clause, len(args)+1)
	args = append(args, limit)

	var ratings []domain.Rating
	err := r.db.SelectContext(ctx, &ratings, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ratingRepo.ListForNameResolution: %w", err)
	}
	return ratings, nil
}

func (r *ratingRepo) UpdateDisplayName(ctx context.Context, id uuid.UUID, name string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE ratings SET display_name = $1 WHERE id = $2", name, id)
	if err != nil {
		return fmt.Errorf("ratingRepo.UpdateDisplayName: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ratingRepo.UpdateDisplayName rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRatingNotFound
	}
	return nil
}

func (r *ratingRepo) CurrencyTotals(ctx context.Context, filters domain.RatingFilters) ([]domain.CurrencyTotal, error) {
	clause, args := filterClause(filters, 1)

	query := fmt.Sprintf(`SELECT currency_code, COUNT(*) AS rows, COALESCE(SUM(amount_clp), 0) AS total_clp
		FROM ratings%s GROUP BY currency_code ORDER BY currency_code`, clause)

	var totals []domain.CurrencyTotal
	err := r.db.SelectContext(ctx, &totals, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ratingRepo.CurrencyTotals: %w", err)
	}
	return totals, nil
}

func (r *ratingRepo) PeriodCounts(ctx context.Context, filters domain.RatingFilters) ([]domain.PeriodCount, error) {
	clause, args := filterClause(filters, 1)

	query := fmt.Sprintf(`SELECT period, COUNT(*) AS rows
		FROM ratings%s GROUP BY period ORDER BY period`, clause)

	var counts []domain.PeriodCount
	err := r.db.SelectContext(ctx, &counts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ratingRepo.PeriodCounts: %w", err)
	}
	return counts, nil
}
