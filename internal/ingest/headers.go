package ingest

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical field keys used throughout the pipeline.
const (
	FieldRUT          = "rut"
	FieldDisplayName  = "display_name"
	FieldPeriod       = "period"
	FieldDocumentType = "document_type"
	FieldFolio        = "folio"
	FieldAmount       = "amount"
	FieldCurrency     = "currency_code"
	FieldStatus       = "status"
	FieldNotes        = "notes"
)

// RequiredFields must all be locatable in the input headers before any row
// is parsed. Notes is the only optional column.
var RequiredFields = []string{
	FieldRUT, FieldDisplayName, FieldPeriod, FieldDocumentType,
	FieldFolio, FieldAmount, FieldCurrency, FieldStatus,
}

// headerAliases maps normalized human-authored headers to canonical field
// keys. The bulk-upload template historically shipped with Spanish headers,
// so both languages are accepted.
var headerAliases = map[string]string{
	"rut":              FieldRUT,
	"identity code":    FieldRUT,
	"razon social":     FieldDisplayName,
	"display name":     FieldDisplayName,
	"name":             FieldDisplayName,
	"nombre":           FieldDisplayName,
	"periodo":          FieldPeriod,
	"period":           FieldPeriod,
	"tipo":             FieldDocumentType,
	"type":             FieldDocumentType,
	"document type":    FieldDocumentType,
	"document kind":    FieldDocumentType,
	"tipo instrumento": FieldDocumentType,
	"folio":            FieldFolio,
	"document folio":   FieldFolio,
	"monto":            FieldAmount,
	"amount":           FieldAmount,
	"moneda":           FieldCurrency,
	"currency":         FieldCurrency,
	"currency code":    FieldCurrency,
	"estado":           FieldStatus,
	"status":           FieldStatus,
	"observaciones":    FieldNotes,
	"notes":            FieldNotes,
}

// diacritics folds the accented characters that appear in Spanish headers.
var diacritics = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// NormalizeHeader lowercases, trims, folds diacritics, and collapses
// internal whitespace in a raw header string.
func NormalizeHeader(s string) string {
	s = diacritics.Replace(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(s), " ")
}

// CanonicalField maps a raw header to its canonical field key. ok is false
// for headers the pipeline does not recognize (they are ignored, not errors).
func CanonicalField(header string) (string, bool) {
	key, ok := headerAliases[NormalizeHeader(header)]
	return key, ok
}

// MissingHeadersError is the structural error that aborts a whole batch
// before any row is parsed.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("missing headers: %s", strings.Join(e.Missing, ", "))
}

// MapHeaders resolves a header row to a canonical-field → column-index map.
// Unmapped headers are skipped. When any required field cannot be located
// the whole batch fails with a MissingHeadersError.
func MapHeaders(headers []string) (map[string]int, error) {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key, ok := CanonicalField(h)
		if !ok {
			continue
		}
		if _, dup := index[key]; dup {
			continue // first occurrence wins
		}
		index[key] = i
	}

	var missing []string
	for _, f := range RequiredFields {
		if _, ok := index[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MissingHeadersError{Missing: missing}
	}
	return index, nil
}
