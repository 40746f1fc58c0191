package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawRow is the uniform pre-parse representation of one input row: the raw
// string for each canonical field, regardless of whether the row came from
// structured records or a workbook. Discarded after parsing.
type RawRow struct {
	RUT          string
	DisplayName  string
	Period       string
	DocumentType string
	Folio        string
	Amount       string
	Currency     string
	Status       string
	Notes        string

	// Line is the 1-based source row number, for error reporting.
	Line int
}

// ParsedRow is the typed form of one input row plus its validation outcome.
// A ParsedRow is always produced, even when parsing failed; field-level
// problems are reported through Errors.
type ParsedRow struct {
	RUT          string          `json:"rut"`
	DisplayName  string          `json:"display_name"`
	Period       string          `json:"period"`
	DocumentType DocumentType    `json:"document_type"`
	Folio        string          `json:"folio"`
	CurrencyCode CurrencyCode    `json:"currency_code"`
	AmountRaw    string          `json:"amount_raw"`
	AmountValue  decimal.Decimal `json:"amount_value"`
	AmountCLP    int64           `json:"amount_clp"`
	Degraded     bool            `json:"degraded_conversion,omitempty"`
	Status       RatingStatus    `json:"status"`
	Notes        string          `json:"notes"`
	Errors       []string        `json:"errors"`
	Line         int             `json:"line"`
}

// Committable reports whether the row passed every business rule.
func (r *ParsedRow) Committable() bool {
	return len(r.Errors) == 0
}

// Rating is the persisted form of an accepted row. Created once on commit;
// the ingestion pipeline never mutates it afterwards (the resolver's
// display-name backfill is the single administrative exception).
type Rating struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	RUT          string       `db:"rut" json:"rut"`
	DisplayName  string       `db:"display_name" json:"display_name"`
	Period       string       `db:"period" json:"period"`
	DocumentType DocumentType `db:"document_type" json:"document_type"`
	Folio        string       `db:"folio" json:"folio"`
	AmountCLP    int64        `db:"amount_clp" json:"amount_clp"`
	CurrencyCode CurrencyCode `db:"currency_code" json:"currency_code"`
	Status       RatingStatus `db:"status" json:"status"`
	Notes        string       `db:"notes" json:"notes"`
	CreatedAt    time.Time    `db:"created_at" json:"created_at"`
}

// FxRate is read-only reference data: how many CLP one unit of the currency
// is worth.
type FxRate struct {
	Code       CurrencyCode    `db:"code" json:"code"`
	Name       string          `db:"name" json:"name"`
	CLPPerUnit decimal.Decimal `db:"clp_per_unit" json:"clp_per_unit"`
}

// RatingEvent is the payload published for every created or updated rating.
// Delivery is best-effort, at-least-once.
type RatingEvent struct {
	Action       EventAction  `json:"action"`
	RUT          string       `json:"rut"`
	DisplayName  string       `json:"display_name"`
	Period       string       `json:"period"`
	DocumentType DocumentType `json:"document_type"`
	Folio        string       `json:"document_folio"`
	AmountCLP    int64        `json:"amount_clp"`
	CurrencyCode CurrencyCode `json:"currency_code"`
	Status       RatingStatus `json:"status"`
	Timestamp    time.Time    `json:"timestamp"`
}

// EventFromRating builds the event payload for a rating snapshot.
func EventFromRating(action EventAction, r *Rating) RatingEvent {
	return RatingEvent{
		Action:       action,
		RUT:          r.RUT,
		DisplayName:  r.DisplayName,
		Period:       r.Period,
		DocumentType: r.DocumentType,
		Folio:        r.Folio,
		AmountCLP:    r.AmountCLP,
		CurrencyCode: r.CurrencyCode,
		Status:       r.Status,
		Timestamp:    time.Now().UTC(),
	}
}

// ResolutionResult records one cascade outcome for auditability. It is never
// persisted directly; resolved names are applied to ratings separately.
type ResolutionResult struct {
	RUT          string `json:"rut"`
	ResolvedName string `json:"resolved_name"`
	SourceTag    string `json:"source_tag"`
	Error        string `json:"error,omitempty"`
}

// RatingFilters narrows listing and resolution queries.
type RatingFilters struct {
	RUT          string
	Period       string
	DocumentType string
	Status       string
}

// CurrencyTotal is one line of the per-currency report aggregation.
type CurrencyTotal struct {
	CurrencyCode CurrencyCode `db:"currency_code" json:"currency_code"`
	Rows         int          `db:"rows" json:"rows"`
	TotalCLP     int64        `db:"total_clp" json:"total_clp"`
}

// PeriodCount is one time bucket of the report aggregation.
type PeriodCount struct {
	Period string `db:"period" json:"period"`
	Rows   int    `db:"rows" json:"rows"`
}
