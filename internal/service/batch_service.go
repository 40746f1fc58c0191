package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"nuamx/internal/domain"
	"nuamx/internal/fx"
	"nuamx/internal/ingest"
	"nuamx/internal/port"
)

// BatchInput is the DTO for one upload batch: either already-structured
// records or raw xlsx workbook bytes, never both. DefaultCurrency, when set,
// fills rows whose currency cell is blank.
type BatchInput struct {
	Records         []map[string]string
	Workbook        []byte
	Filename        string
	DefaultCurrency string
}

// BatchPreview is the row-by-row outcome of running the pipeline without
// persisting anything.
type BatchPreview struct {
	Rows        []domain.ParsedRow `json:"rows"`
	Total       int                `json:"total"`
	Committable int                `json:"committable"`
	Rejected    int                `json:"rejected"`

	// Currency is the batch's single currency code, or "mixed".
	Currency string `json:"currency"`
}

// RowFailure reports why one row was not committed.
type RowFailure struct {
	Line   int      `json:"line"`
	Errors []string `json:"errors"`
}

// CommitResult reports what a commit created. Failures carry both
// validation rejections and per-row storage errors; sibling rows stand.
type CommitResult struct {
	Created  int          `json:"created"`
	IDs      []uuid.UUID  `json:"ids"`
	Failures []RowFailure `json:"failures"`
}

// BatchService runs the import pipeline: extract, parse, validate, convert,
// and (on commit) persist row-independently with one event per created row.
type BatchService interface {
	Preview(ctx context.Context, input *BatchInput) (*BatchPreview, error)
	Commit(ctx context.Context, input *BatchInput) (*CommitResult, error)
}

type batchService struct {
	ratings   port.RatingRepository
	converter *fx.Converter
	publisher port.EventPublisher
	archive   port.ObjectStorage // nil when archival is disabled
	bucket    string
}

// NewBatchService creates a new BatchService. archive may be nil.
func NewBatchService(
	ratings port.RatingRepository,
	converter *fx.Converter,
	publisher port.EventPublisher,
	archive port.ObjectStorage,
	bucket string,
) BatchService {
	return &batchService{
		ratings:   ratings,
		converter: converter,
		publisher: publisher,
		archive:   archive,
		bucket:    bucket,
	}
}

func (s *batchService) Preview(ctx context.Context, input *BatchInput) (*BatchPreview, error) {
	rows, err := s.process(ctx, input)
	if err != nil {
		return nil, err
	}

	s.archiveWorkbook(ctx, input)

	preview := &BatchPreview{Rows: rows, Total: len(rows)}
	currencies := map[domain.CurrencyCode]bool{}
	for i := range rows {
		if rows[i].Committable() {
			preview.Committable++
		} else {
			preview.Rejected++
		}
		if domain.SupportedCurrencies[rows[i].CurrencyCode] {
			currencies[rows[i].CurrencyCode] = true
		}
	}
	switch len(currencies) {
	case 0:
	case 1:
		for code := range currencies {
			preview.Currency = string(code)
		}
	default:
		preview.Currency = "mixed"
	}
	return preview, nil
}

func (s *batchService) Commit(ctx context.Context, input *BatchInput) (*CommitResult, error) {
	rows, err := s.process(ctx, input)
	if err != nil {
		return nil, err
	}

	s.archiveWorkbook(ctx, input)

	result := &CommitResult{IDs: []uuid.UUID{}, Failures: []RowFailure{}}
	committable := 0
	for i := range rows {
		row := &rows[i]
		if !row.Committable() {
			result.Failures = append(result.Failures, RowFailure{Line: row.Line, Errors: row.Errors})
			continue
		}
		committable++

		rating := &domain.Rating{
			RUT:          row.RUT,
			DisplayName:  row.DisplayName,
			Period:       row.Period,
			DocumentType: row.DocumentType,
			Folio:        row.Folio,
			AmountCLP:    row.AmountCLP,
			CurrencyCode: row.CurrencyCode,
			Status:       row.Status,
			Notes:        row.Notes,
		}
		if err := s.ratings.Create(ctx, rating); err != nil {
			log.Printf("batchService.Commit: line %d: %v", row.Line, err)
			result.Failures = append(result.Failures, RowFailure{
				Line:   row.Line,
				Errors: []string{fmt.Sprintf("storage failure: %v", err)},
			})
			continue
		}
		result.Created++
		result.IDs = append(result.IDs, rating.ID)

		// Best-effort, outside any transaction. A failed publish never
		// rolls back the row.
		event := domain.EventFromRating(domain.EventActionCreate, rating)
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.Printf("batchService.Commit: publishing event for rating %s: %v", rating.ID, err)
		}
	}

	if committable == 0 {
		return result, domain.ErrNoCommittableRows
	}
	return result, nil
}

// process runs extract, parse, validate, convert. Structural failures
// (missing headers, empty batch, unreadable workbook) abort; everything
// after that is reported per-row.
func (s *batchService) process(ctx context.Context, input *BatchInput) ([]domain.ParsedRow, error) {
	var raw []domain.RawRow
	var err error
	switch {
	case len(input.Workbook) > 0:
		raw, err = ingest.FromWorkbook(bytes.NewReader(input.Workbook))
	case len(input.Records) > 0:
		raw, err = ingest.FromRecords(input.Records)
	default:
		return nil, domain.ErrEmptyBatch
	}
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ParsedRow, 0, len(raw))
	for _, rr := range raw {
		if rr.Currency == "" && input.DefaultCurrency != "" {
			rr.Currency = input.DefaultCurrency
		}
		row := ingest.ParseRow(rr)
		ingest.ValidateRow(&row)

		if domain.SupportedCurrencies[row.CurrencyCode] {
			res := s.converter.Convert(ctx, row.AmountValue, row.CurrencyCode)
			row.AmountCLP = res.AmountCLP
			row.Degraded = res.Degraded
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// archiveWorkbook stores the raw upload for audit. Failures are logged only.
func (s *batchService) archiveWorkbook(ctx context.Context, input *BatchInput) {
	if s.archive == nil || len(input.Workbook) == 0 {
		return
	}
	key := fmt.Sprintf("uploads/%s/%s.xlsx", time.Now().UTC().Format("2006-01-02"), uuid.New())
	_, err := s.archive.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Workbook),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		log.Printf("batchService.archiveWorkbook: %v", err)
		return
	}
	log.Printf("batchService.archiveWorkbook: stored %s (%s)", key, input.Filename)
}
