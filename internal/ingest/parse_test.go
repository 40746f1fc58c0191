package ingest_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nuamx/internal/domain"
	"nuamx/internal/ingest"
)

func TestParseAmount_DecimalComma(t *testing.T) {
	v, ok := ingest.ParseAmount("12,50", domain.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.RequireFromString("12.5")))

	v, ok = ingest.ParseAmount("100", domain.CurrencyPEN)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(100)))

	// Decimal point is not the convention for these currencies.
	_, ok = ingest.ParseAmount("12.50", domain.CurrencyUSD)
	assert.False(t, ok)
	_, ok = ingest.ParseAmount("12,505", domain.CurrencyUSD)
	assert.False(t, ok)
	_, ok = ingest.ParseAmount("", domain.CurrencyUSD)
	assert.False(t, ok)
}

func TestParseAmount_IntegerOnly(t *testing.T) {
	v, ok := ingest.ParseAmount("1.234", domain.CurrencyCLP)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(1234)))

	v, ok = ingest.ParseAmount("$ 2.500.000", domain.CurrencyCOP)
	require.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(2500000)))

	_, ok = ingest.ParseAmount("n/a", domain.CurrencyCLP)
	assert.False(t, ok)
}

func TestParseRow(t *testing.T) {
	row := ingest.ParseRow(domain.RawRow{
		RUT:          " 76.543.210-K ",
		DisplayName:  "Acme Corp",
		Period:       "2024-03",
		DocumentType: "Factura",
		Folio:        "F-1001",
		Amount:       "12,50",
		Currency:     "usd",
		Status:       "Válida",
		Line:         2,
	})

	assert.Empty(t, row.Errors)
	assert.Equal(t, "76.543.210-K", row.RUT)
	assert.Equal(t, domain.DocumentTypeInvoice, row.DocumentType)
	assert.Equal(t, domain.CurrencyUSD, row.CurrencyCode)
	assert.True(t, row.AmountValue.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, domain.StatusValid, row.Status)
	assert.Equal(t, 2, row.Line)
}

func TestParseRow_UnknownDocumentType(t *testing.T) {
	row := ingest.ParseRow(domain.RawRow{DocumentType: "Contrato"})

	require.Len(t, row.Errors, 1)
	assert.Contains(t, row.Errors[0], `document type "Contrato" is not recognized`)
	assert.Equal(t, domain.DocumentTypeOther, row.DocumentType)
}

func TestParseRow_UnsupportedCurrencyCarried(t *testing.T) {
	row := ingest.ParseRow(domain.RawRow{Currency: "ARS", Amount: "100"})

	// The parser carries the code; the validator owns the rejection.
	assert.Equal(t, domain.CurrencyCode("ARS"), row.CurrencyCode)
	assert.True(t, row.AmountValue.IsZero())
}

func TestParseRow_UnknownStatusPassedThrough(t *testing.T) {
	row := ingest.ParseRow(domain.RawRow{Status: "Pendiente"})
	assert.Equal(t, domain.RatingStatus("Pendiente"), row.Status)
}
