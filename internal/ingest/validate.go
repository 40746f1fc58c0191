package ingest

import (
	"fmt"

	"nuamx/internal/domain"
)

// rule is one independent business check on a parsed row. It returns an
// empty string when the row passes.
type rule func(*domain.ParsedRow) string

// rules run in fixed order and are never short-circuited, so a row can
// carry every violation at once.
var rules = []rule{
	func(r *domain.ParsedRow) string {
		if r.RUT == "" {
			return "rut is required"
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if !periodPattern.MatchString(r.Period) {
			return fmt.Sprintf("period %q must match YYYY-MM", r.Period)
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if r.DocumentType == "" {
			return "document type is required"
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if r.Folio == "" {
			return "folio is required"
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if !domain.SupportedCurrencies[r.CurrencyCode] {
			return fmt.Sprintf("currency %q is not supported", string(r.CurrencyCode))
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if !domain.SupportedCurrencies[r.CurrencyCode] {
			// Rule 5 already rejects the row; the amount convention is
			// undefined for an unsupported currency.
			return ""
		}
		if _, ok := ParseAmount(r.AmountRaw, r.CurrencyCode); !ok {
			return fmt.Sprintf("amount %q is not valid for %s", r.AmountRaw, r.CurrencyCode)
		}
		return ""
	},
	func(r *domain.ParsedRow) string {
		if !domain.ValidStatuses[r.Status] {
			return fmt.Sprintf("status %q is not one of Valid, Warning, Rejected", string(r.Status))
		}
		return ""
	},
}

// ValidateRow appends every rule violation to the row's error list. The
// row itself is never mutated beyond the annotation.
func ValidateRow(row *domain.ParsedRow) {
	for _, check := range rules {
		if msg := check(row); msg != "" {
			row.Errors = append(row.Errors, msg)
		}
	}
}
