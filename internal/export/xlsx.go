package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// XLSX renders records as a single-sheet workbook with the same columns as
// the CSV output. Numbers and dates are stored as native cell values.
func XLSX[T any](records []T, sheet string) ([]byte, error) {
	l, err := layoutOf[T]()
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return nil, err
		}
	}

	header := make([]any, len(l.columns))
	for i, name := range l.header() {
		header[i] = name
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}
	dateStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr("yyyy-mm-dd hh:mm:ss")})
	if err != nil {
		return nil, err
	}
	for r, rec := range records {
		row := r + 2
		cells := l.fields(rec)
		values := make([]any, len(cells))
		for i, v := range cells {
			values[i] = cellValue(v)
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return nil, err
		}
		for i, v := range values {
			if _, ok := v.(time.Time); !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellStyle(sheet, cell, cell, dateStyle); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellValue(v any) any {
	switch x := v.(type) {
	case nil:
		return ""
	case time.Time:
		return x.UTC()
	case decimal.Decimal:
		return x.InexactFloat64()
	case string, bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return x
	}
	return formatValue(v)
}

func strPtr(s string) *string { return &s }
