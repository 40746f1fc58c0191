package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"nuamx/internal/domain"
)

// decimalCommaPattern is the amount convention for decimal-comma currencies
// (USD, PEN): digits, optionally a comma and one or two decimals.
var decimalCommaPattern = regexp.MustCompile(`^\d+(,\d{1,2})?$`)

var nonDigits = regexp.MustCompile(`\D`)

// ParseRow converts a RawRow into its typed form. It is pure and always
// produces a ParsedRow: fields that cannot be typed get zero values and the
// problem is folded into the row's error list alongside the validator's
// findings. The one check owned here rather than by the validator is the
// document-type alias table, since the validator only sees the typed value.
func ParseRow(raw domain.RawRow) domain.ParsedRow {
	row := domain.ParsedRow{
		RUT:         strings.TrimSpace(raw.RUT),
		DisplayName: strings.TrimSpace(raw.DisplayName),
		Period:      strings.TrimSpace(raw.Period),
		Folio:       strings.TrimSpace(raw.Folio),
		AmountRaw:   strings.TrimSpace(raw.Amount),
		Notes:       strings.TrimSpace(raw.Notes),
		Status:      domain.ParseRatingStatus(raw.Status),
		Line:        raw.Line,
		Errors:      []string{},
	}

	dt, ok := domain.ParseDocumentType(raw.DocumentType)
	if !ok {
		row.Errors = append(row.Errors,
			fmt.Sprintf("document type %q is not recognized", strings.TrimSpace(raw.DocumentType)))
		dt = domain.DocumentTypeOther
	}
	row.DocumentType = dt

	// The currency code is carried even when unsupported so the validator
	// can report it as a rule violation rather than a parser fault.
	code, supported := domain.ParseCurrencyCode(raw.Currency)
	row.CurrencyCode = code

	if supported {
		if v, ok := ParseAmount(row.AmountRaw, code); ok {
			row.AmountValue = v
		}
	}

	return row
}

// ParseAmount parses a raw amount string per the currency's numeric
// convention. Decimal-comma currencies must match digits[,digits{1,2}];
// integer-only currencies have every non-digit stripped ("1.234" → 1234).
// ok is false when nothing parseable remains.
func ParseAmount(raw string, code domain.CurrencyCode) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if code.UsesDecimalComma() {
		if !decimalCommaPattern.MatchString(raw) {
			return decimal.Zero, false
		}
		v, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
		if err != nil {
			return decimal.Zero, false
		}
		return v, true
	}

	digits := nonDigits.ReplaceAllString(raw, "")
	if digits == "" {
		return decimal.Zero, false
	}
	v, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, false
	}
	return v, true
}
