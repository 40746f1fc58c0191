package domain

import "strings"

// CurrencyCode identifies a supported currency. CLP is the canonical
// currency all amounts are normalized into.
type CurrencyCode string

const (
	CurrencyCLP CurrencyCode = "CLP"
	CurrencyUSD CurrencyCode = "USD"
	CurrencyCOP CurrencyCode = "COP"
	CurrencyPEN CurrencyCode = "PEN"
)

// CanonicalCurrency is the reference currency for storage and aggregation.
const CanonicalCurrency = CurrencyCLP

// SupportedCurrencies is the closed set of currency codes the pipeline accepts.
var SupportedCurrencies = map[CurrencyCode]bool{
	CurrencyCLP: true,
	CurrencyUSD: true,
	CurrencyCOP: true,
	CurrencyPEN: true,
}

// UsesDecimalComma reports whether amounts in this currency are written
// with a comma decimal separator ("12,50"). CLP and COP amounts are
// integer-only.
func (c CurrencyCode) UsesDecimalComma() bool {
	return c == CurrencyUSD || c == CurrencyPEN
}

// ParseCurrencyCode normalizes a raw currency string. ok is false when the
// value is not in the supported set.
func ParseCurrencyCode(s string) (CurrencyCode, bool) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
	return code, SupportedCurrencies[code]
}

// DocumentType classifies the source document of a rating row.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "Invoice"
	DocumentTypeReceipt    DocumentType = "Receipt"
	DocumentTypeCreditNote DocumentType = "CreditNote"
	DocumentTypeOther      DocumentType = "Other"
)

// documentTypeAliases maps accepted input spellings (including the legacy
// Spanish template values) to canonical document types.
var documentTypeAliases = map[string]DocumentType{
	"invoice":         DocumentTypeInvoice,
	"factura":         DocumentTypeInvoice,
	"receipt":         DocumentTypeReceipt,
	"boleta":          DocumentTypeReceipt,
	"creditnote":      DocumentTypeCreditNote,
	"credit note":     DocumentTypeCreditNote,
	"nota de credito": DocumentTypeCreditNote,
	"nota de crédito": DocumentTypeCreditNote,
	"other":           DocumentTypeOther,
	"otro":            DocumentTypeOther,
}

// ParseDocumentType normalizes a raw document type string. ok is false when
// the value is non-blank and not a recognized spelling.
func ParseDocumentType(s string) (DocumentType, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", true
	}
	dt, ok := documentTypeAliases[key]
	return dt, ok
}

// RatingStatus is the declared validation state carried on a rating row.
type RatingStatus string

const (
	StatusValid    RatingStatus = "Valid"
	StatusWarning  RatingStatus = "Warning"
	StatusRejected RatingStatus = "Rejected"
)

// ValidStatuses is the closed set of rating statuses.
var ValidStatuses = map[RatingStatus]bool{
	StatusValid:    true,
	StatusWarning:  true,
	StatusRejected: true,
}

var statusAliases = map[string]RatingStatus{
	"valid":            StatusValid,
	"válida":           StatusValid,
	"valida":           StatusValid,
	"warning":          StatusWarning,
	"con advertencias": StatusWarning,
	"rejected":         StatusRejected,
	"rechazada":        StatusRejected,
}

// ParseRatingStatus normalizes a raw status string. Unrecognized values are
// passed through verbatim so the validator reports them.
func ParseRatingStatus(s string) RatingStatus {
	key := strings.ToLower(strings.TrimSpace(s))
	if st, ok := statusAliases[key]; ok {
		return st
	}
	return RatingStatus(strings.TrimSpace(s))
}

// EventAction distinguishes create from update domain events.
type EventAction string

const (
	EventActionCreate EventAction = "create"
	EventActionUpdate EventAction = "update"
)
