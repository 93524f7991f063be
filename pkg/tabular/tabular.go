// Package tabular loads order rows from spreadsheet or delimited text
// files. The producing tools are inconsistent: orders arrive as XLSX,
// as XLSX misnamed .csv, or as CSV with varying separators and byte
// order marks, so the reader sniffs instead of trusting the extension.
package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

var zipMagic = []byte("PK\x03\x04")

// IsExcelFile reports whether path holds a spreadsheet, either by
// extension or, for misnamed files, by the zip container signature.
func IsExcelFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, len(zipMagic))
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return bytes.Equal(magic, zipMagic)
}

// ReadRows loads every row of the file as strings. Spreadsheets are
// read from their first sheet; anything else is treated as delimited
// text with the separator sniffed from the content.
func ReadRows(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errs.Access("open order file", path, err)
	}

	if IsExcelFile(path) {
		return readSheetRows(path)
	}
	return readDelimitedRows(path)
}

func readSheetRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errs.Parse("open workbook", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, errs.Parse("read worksheet", path, err)
	}
	return rows, nil
}

func readDelimitedRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Access("open order file", path, err)
	}
	defer f.Close()

	// Exports arrive as UTF-8 with or without BOM, or as UTF-16.
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return nil, errs.Parse("decode order file", path, err)
	}

	text := string(data)
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = sniffDelimiter(text)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errs.Parse("parse order file", path, err)
	}
	return rows, nil
}

// sniffDelimiter picks the candidate separator occurring most often in
// the leading sample, falling back to a comma.
func sniffDelimiter(text string) rune {
	sample := text
	if len(sample) > 4096 {
		sample = sample[:4096]
	}

	best := ','
	bestCount := 0
	for _, candidate := range []rune{';', ',', '\t'} {
		if count := strings.Count(sample, string(candidate)); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

// Column returns the 1-based column of row, or the empty string when
// the row is too short.
func Column(row []string, index int) string {
	if index < 1 || index > len(row) {
		return ""
	}
	return row[index-1]
}
