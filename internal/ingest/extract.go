package ingest

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"nuamx/internal/domain"
)

// periodPattern is the canonical year-month form.
var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// dmyPattern matches D/M/YYYY and DD/MM/YYYY period cells.
var dmyPattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// dateLayouts are the renderings excelize produces for native date cells.
var dateLayouts = []string{
	"01-02-06",
	"2006-01-02",
	"2006-01-02 15:04:05",
	"1/2/06 15:04",
}

// NormalizePeriodCell reduces a workbook period cell to YYYY-MM. Cells
// already in canonical form pass through; D/M/YYYY cells are read as
// calendar dates (day first); native date cells are reformatted. Anything
// else is returned verbatim for the validator to reject.
func NormalizePeriodCell(s string) string {
	s = strings.TrimSpace(s)
	if periodPattern.MatchString(s) {
		return s
	}
	if m := dmyPattern.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return fmt.Sprintf("%s-%02d", m[3], month)
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01")
		}
	}
	return s
}

// FromRecords converts already-structured key/value records into RawRows.
// Record keys are arbitrary human-authored headers; the canonical fields
// must be locatable in the first record or the batch fails structurally.
func FromRecords(records []map[string]string) ([]domain.RawRow, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}

	headers := make([]string, 0, len(records[0]))
	for k := range records[0] {
		headers = append(headers, k)
	}
	if _, err := MapHeaders(headers); err != nil {
		return nil, err
	}

	rows := make([]domain.RawRow, 0, len(records))
	for i, rec := range records {
		fields := make(map[string]string, len(rec))
		for k, v := range rec {
			key, ok := CanonicalField(k)
			if !ok {
				continue
			}
			fields[key] = strings.TrimSpace(v)
		}
		row := rawRowFromFields(fields, i+1)
		if rowIsBlank(&row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	return rows, nil
}

// FromWorkbook reads the first sheet of an xlsx workbook: one header row
// followed by data rows. Entirely blank rows are skipped silently.
func FromWorkbook(r io.Reader) ([]domain.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedUpload, err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	grid, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(grid) < 2 {
		return nil, domain.ErrEmptyBatch
	}

	index, err := MapHeaders(grid[0])
	if err != nil {
		return nil, err
	}

	cell := func(cells []string, field string) string {
		col, ok := index[field]
		if !ok || col >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[col])
	}

	rows := make([]domain.RawRow, 0, len(grid)-1)
	for i, cells := range grid[1:] {
		fields := map[string]string{
			FieldRUT:          cell(cells, FieldRUT),
			FieldDisplayName:  cell(cells, FieldDisplayName),
			FieldPeriod:       NormalizePeriodCell(cell(cells, FieldPeriod)),
			FieldDocumentType: cell(cells, FieldDocumentType),
			FieldFolio:        cell(cells, FieldFolio),
			FieldAmount:       cell(cells, FieldAmount),
			FieldCurrency:     cell(cells, FieldCurrency),
			FieldStatus:       cell(cells, FieldStatus),
			FieldNotes:        cell(cells, FieldNotes),
		}
		row := rawRowFromFields(fields, i+2) // +2: 1-based, after header row
		if rowIsBlank(&row) {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	return rows, nil
}

func rawRowFromFields(fields map[string]string, line int) domain.RawRow {
	return domain.RawRow{
		RUT:          fields[FieldRUT],
		DisplayName:  fields[FieldDisplayName],
		Period:       fields[FieldPeriod],
		DocumentType: fields[FieldDocumentType],
		Folio:        fields[FieldFolio],
		Amount:       fields[FieldAmount],
		Currency:     fields[FieldCurrency],
		Status:       fields[FieldStatus],
		Notes:        fields[FieldNotes],
		Line:         line,
	}
}

func rowIsBlank(r *domain.RawRow) bool {
	return r.RUT == "" && r.DisplayName == "" && r.Period == "" &&
		r.DocumentType == "" && r.Folio == "" && r.Amount == "" &&
		r.Currency == "" && r.Status == "" && r.Notes == ""
}
