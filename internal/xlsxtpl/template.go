package xlsxtpl

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// FileName is the suggested download name for the bulk-upload template.
const FileName = "plantilla_carga_masiva.xlsx"

const sheetName = "CargaMasiva"

// templateRows is the number of pre-formatted data rows below the header.
const templateRows = 10

// Headers are the template's column titles, in order. The header normalizer
// accepts these alongside their English equivalents.
var Headers = []string{
	"RUT",
	"Razón social",
	"Período",
	"Tipo",
	"Folio",
	"Monto",
	"Moneda",
	"Estado",
	"Observaciones",
}

var colWidths = []float64{15, 24, 12, 16, 12, 14, 12, 18, 28}

var (
	typeList     = []string{"Factura", "Boleta", "Nota de crédito", "Otro"}
	currencyList = []string{"CLP", "USD", "COP", "PEN"}
	statusList   = []string{"Válida", "Con advertencias", "Rechazada"}
)

// Build generates the bulk-upload workbook: one sheet with the canonical
// headers, ten blank rows, dropdown validations for type, currency, and
// status, an autofilter, and a frozen header row.
func Build() ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E8F5E9"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: header style: %w", err)
	}

	for i, title := range Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("xlsxtpl.Build: column %d: %w", i+1, err)
		}
		if err := f.SetCellValue(sheetName, col+"1", title); err != nil {
			return nil, fmt.Errorf("xlsxtpl.Build: writing header %q: %w", title, err)
		}
		if err := f.SetColWidth(sheetName, col, col, colWidths[i]); err != nil {
			return nil, fmt.Errorf("xlsxtpl.Build: width of %s: %w", col, err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(Headers))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: styling header: %w", err)
	}

	dropdowns := []struct {
		column string
		values []string
	}{
		{"D", typeList},
		{"G", currencyList},
		{"H", statusList},
	}
	for _, d := range dropdowns {
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", d.column, d.column, templateRows+1)
		if err := dv.SetDropList(d.values); err != nil {
			return nil, fmt.Errorf("xlsxtpl.Build: dropdown for %s: %w", d.column, err)
		}
		if err := f.AddDataValidation(sheetName, dv); err != nil {
			return nil, fmt.Errorf("xlsxtpl.Build: adding validation for %s: %w", d.column, err)
		}
	}

	ref := fmt.Sprintf("A1:%s%d", lastCol, templateRows+1)
	if err := f.AutoFilter(sheetName, ref, nil); err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: autofilter: %w", err)
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: freezing header: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsxtpl.Build: serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
