// Package report renders a comparison result as a styled workbook.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pyhub-apps/ordercheck-golang/pkg/compare"
	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// SheetName is the single sheet every report carries.
const SheetName = "Order_vs_Invoice"

// Excel's standard conditional fill/font pairs.
const (
	matchFill    = "C6EFCE"
	matchFont    = "006100"
	mismatchFill = "FFC7CE"
	mismatchFont = "9C0006"
	missingFill  = "FFEB9C"
	missingFont  = "9C6500"
)

// Header returns the report's header row for the given compared fields:
// the key column, an order/invoice pair per field, then status and
// mismatch details.
func Header(fields []string) []string {
	header := []string{"kod"}
	for _, name := range fields {
		header = append(header, "order_"+name, "invoice_"+name)
	}
	return append(header, "status", "mismatch_details")
}

// Write renders result into a new workbook at path. The workbook is
// assembled in memory and saved once, so a failure never leaves a
// partial file behind.
func Write(path string, result *compare.Result) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Write("create output directory", path, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return errs.Write("create worksheet", path, err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return errs.Write("register styles", path, err)
	}

	if err := writeRow(f, 1, Header(result.Fields), nil); err != nil {
		return errs.Write("write header", path, err)
	}
	for i, row := range result.Rows {
		values, cellStyles := renderRow(row, styles)
		if err := writeRow(f, i+2, values, cellStyles); err != nil {
			return errs.Write(fmt.Sprintf("write row %d", i+2), path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errs.Write("save workbook", path, err)
	}
	return nil
}

type styleSet struct {
	match    int
	mismatch int
	missing  int
}

func newStyles(f *excelize.File) (styleSet, error) {
	var s styleSet
	var err error
	if s.match, err = fillStyle(f, matchFill, matchFont); err != nil {
		return s, err
	}
	if s.mismatch, err = fillStyle(f, mismatchFill, mismatchFont); err != nil {
		return s, err
	}
	s.missing, err = fillStyle(f, missingFill, missingFont)
	return s, err
}

func fillStyle(f *excelize.File, fill, font string) (int, error) {
	return f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
		Font: &excelize.Font{Color: font},
	})
}

// renderRow flattens one result row into cell values and matching style
// IDs. Missing rows are highlighted across the whole row; rows present
// on both sides get per-pair styling, with the key and status cells
// following the row's overall status.
func renderRow(row compare.Row, styles styleSet) ([]string, []int) {
	var values []string
	var ids []int

	if row.Status == compare.StatusMissingInvoice || row.Status == compare.StatusMissingOrder {
		values = append(values, row.Key)
		for _, fr := range row.Fields {
			values = append(values, fr.Order, fr.Invoice)
		}
		values = append(values, string(row.Status), strings.Join(row.Details, ", "))
		ids = make([]int, len(values))
		for i := range ids {
			ids[i] = styles.missing
		}
		return values, ids
	}

	rowStyle := styles.match
	if row.Status == compare.StatusMismatch {
		rowStyle = styles.mismatch
	}

	values = append(values, row.Key)
	ids = append(ids, rowStyle)
	for _, fr := range row.Fields {
		pairStyle := styles.match
		if !fr.Match {
			pairStyle = styles.mismatch
		}
		values = append(values, fr.Order, fr.Invoice)
		ids = append(ids, pairStyle, pairStyle)
	}
	values = append(values, string(row.Status), strings.Join(row.Details, ", "))
	ids = append(ids, rowStyle, rowStyle)
	return values, ids
}

func writeRow(f *excelize.File, rowNum int, values []string, styles []int) error {
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
		if styles == nil || styles[i] == 0 {
			continue
		}
		if err := f.SetCellStyle(SheetName, cell, cell, styles[i]); err != nil {
			return err
		}
	}
	return nil
}
