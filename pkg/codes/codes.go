// Package codes extracts the key column of an order file together
// with its trimmed form.
package codes

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
	"github.com/pyhub-apps/ordercheck-golang/pkg/invoice"
	"github.com/pyhub-apps/ordercheck-golang/pkg/tabular"
)

// Header pairs the raw article number with its trimmed form.
var Header = []string{"alkatr_szam", "alkatr_szam_bal"}

// Rows builds the output rows: one per order data row, holding the raw
// key column value and the value truncated at the first underscore at
// or after trimOffset. Returns nil for an empty input.
func Rows(orderRows [][]string, keyColumn, trimOffset int) [][]string {
	if len(orderRows) == 0 {
		return nil
	}
	out := [][]string{Header}
	for _, row := range orderRows[1:] {
		raw := tabular.Column(row, keyColumn)
		out = append(out, []string{raw, invoice.TrimCodeSuffix(raw, trimOffset)})
	}
	return out
}

// WriteFile writes rows into a fresh workbook at path, creating parent
// directories as needed.
func WriteFile(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Write("create output directory", path, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return errs.Write("write workbook", path, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errs.Write("write workbook", path, err)
			}
		}
	}
	if err := f.SaveAs(path); err != nil {
		return errs.Write("save workbook", path, err)
	}
	return nil
}
