package service

import (
	"context"

	"nuamx/internal/domain"
	"nuamx/internal/port"
)

// SummaryReport aggregates committed ratings for presentation.
type SummaryReport struct {
	Currencies []domain.CurrencyTotal `json:"currencies"`
	Periods    []domain.PeriodCount   `json:"periods"`
}

// ReportService computes aggregations over committed ratings. It consumes
// already-converted amounts; it never re-derives them.
type ReportService interface {
	Summary(ctx context.Context, filters domain.RatingFilters) (*SummaryReport, error)
}

type reportService struct {
	ratings port.RatingRepository
}

// NewReportService creates a new ReportService.
func NewReportService(ratings port.RatingRepository) ReportService {
	return &reportService{ratings: ratings}
}

func (s *reportService) Summary(ctx context.Context, filters domain.RatingFilters) (*SummaryReport, error) {
	currencies, err := s.ratings.CurrencyTotals(ctx, filters)
	if err != nil {
		return nil, err
	}
	periods, err := s.ratings.PeriodCounts(ctx, filters)
	if err != nil {
		return nil, err
	}
	if currencies == nil {
		currencies = []domain.CurrencyTotal{}
	}
	if periods == nil {
		periods = []domain.PeriodCount{}
	}
	return &SummaryReport{Currencies: currencies, Periods: periods}, nil
}
