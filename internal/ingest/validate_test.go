package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/ingest"
)

func parseAndValidate(raw domain.RawRow) domain.ParsedRow {
	row := ingest.ParseRow(raw)
	ingest.ValidateRow(&row)
	return row
}

func TestValidateRow_CleanRowIsCommittable(t *testing.T) {
	row := parseAndValidate(domain.RawRow{
		RUT:          "76.543.210-K",
		Period:       "2024-03",
		DocumentType: "Invoice",
		Folio:        "F-1001",
		Amount:       "1500",
		Currency:     "CLP",
		Status:       "Valid",
	})

	assert.Empty(t, row.Errors)
	assert.True(t, row.Committable())
}

func TestValidateRow_CollectsEveryViolation(t *testing.T) {
	row := parseAndValidate(domain.RawRow{
		RUT:      "",
		Period:   "03/2024",
		Folio:    "",
		Amount:   "12.50",
		Currency: "USD",
		Status:   "Pendiente",
	})

	require.False(t, row.Committable())
	assert.Contains(t, row.Errors, "rut is required")
	assert.Contains(t, row.Errors, `period "03/2024" must match YYYY-MM`)
	assert.Contains(t, row.Errors, "document type is required")
	assert.Contains(t, row.Errors, "folio is required")
	assert.Contains(t, row.Errors, `amount "12.50" is not valid for USD`)
	assert.Contains(t, row.Errors, `status "Pendiente" is not one of Valid, Warning, Rejected`)
}

func TestValidateRow_UnsupportedCurrencyReportedOnce(t *testing.T) {
	row := parseAndValidate(domain.RawRow{
		RUT:          "76.543.210-K",
		Period:       "2024-03",
		DocumentType: "Invoice",
		Folio:        "F-1",
		Amount:       "100",
		Currency:     "ARS",
		Status:       "Valid",
	})

	require.Len(t, row.Errors, 1)
	assert.Equal(t, `currency "ARS" is not supported`, row.Errors[0])
}
