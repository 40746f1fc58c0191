package xlsxtpl_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"nuamx/internal/ingest"
	"nuamx/internal/xlsxtpl"
)

func TestBuild(t *testing.T) {
	body, err := xlsxtpl.Build()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	require.Equal(t, []string{"CargaMasiva"}, sheets)

	rows, err := f.GetRows("CargaMasiva")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, xlsxtpl.Headers, rows[0])

	dvs, err := f.GetDataValidations("CargaMasiva")
	require.NoError(t, err)
	assert.Len(t, dvs, 3)
}

// The template's headers must round-trip through the header normalizer, or
// uploads of the template would fail the structural check.
func TestBuild_HeadersAreIngestable(t *testing.T) {
	_, err := ingest.MapHeaders(xlsxtpl.Headers)
	assert.NoError(t, err)
}
