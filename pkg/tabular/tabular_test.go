package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	return path
}

func TestReadRowsCommaCSV(t *testing.T) {
	path := writeFile(t, "order.csv", []byte("kod,db\nA-1,2\nB-2,3\n"))

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[1][0] != "A-1" || rows[1][1] != "2" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestReadRowsSemicolonCSV(t *testing.T) {
	path := writeFile(t, "order.csv", []byte("kod;db;ar\nA-1;2;10,50\n"))

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows[0]) != 3 {
		t.Fatalf("Expected 3 columns, got %d: %v", len(rows[0]), rows[0])
	}
	if rows[1][2] != "10,50" {
		t.Errorf("Expected decimal comma preserved, got %q", rows[1][2])
	}
}

func TestReadRowsTabCSV(t *testing.T) {
	path := writeFile(t, "order.txt", []byte("kod\tdb\nA-1\t2\n"))

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows[1]) != 2 || rows[1][0] != "A-1" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestReadRowsStripsUTF8BOM(t *testing.T) {
	path := writeFile(t, "order.csv", []byte("\xef\xbb\xbfkod,db\nA-1,2\n"))

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if rows[0][0] != "kod" {
		t.Errorf("Expected BOM stripped from first cell, got %q", rows[0][0])
	}
}

func TestReadRowsUTF16(t *testing.T) {
	// "kod;db\nA;2\n" as UTF-16 little endian with BOM.
	text := "kod;db\nA;2\n"
	data := []byte{0xff, 0xfe}
	for _, r := range text {
		data = append(data, byte(r), 0x00)
	}
	path := writeFile(t, "order.csv", data)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows) != 2 || rows[1][0] != "A" || rows[1][1] != "2" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestReadRowsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.xlsx")

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "kod")
	f.SetCellValue("Sheet1", "B1", "db")
	f.SetCellValue("Sheet1", "A2", "A-1")
	f.SetCellValue("Sheet1", "B2", 2)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	f.Close()

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "A-1" || rows[1][1] != "2" {
		t.Errorf("Unexpected row: %v", rows[1])
	}
}

func TestReadRowsMisnamedXLSX(t *testing.T) {
	// An XLSX stored under a .csv name must still be detected via the
	// container signature. SaveAs refuses a .csv target, so the
	// workbook bytes go through an io.Writer instead.
	path := filepath.Join(t.TempDir(), "order.csv")

	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A1", "kod")
	f.SetCellValue("Sheet1", "A2", "A-1")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := f.Write(out); err != nil {
		t.Fatalf("Failed to write workbook: %v", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Failed to close file: %v", err)
	}
	f.Close()

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("Failed to read rows: %v", err)
	}

	if len(rows) != 2 || rows[1][0] != "A-1" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errs.IsKind(err, errs.KindFileAccess) {
		t.Errorf("Expected file access error, got: %v", err)
	}
}

func TestColumn(t *testing.T) {
	row := []string{"a", "b", "c"}

	tests := []struct {
		index int
		want  string
	}{
		{1, "a"},
		{3, "c"},
		{0, ""},
		{4, ""},
		{-1, ""},
	}

	for _, tt := range tests {
		if got := Column(row, tt.index); got != tt.want {
			t.Errorf("Column(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestSniffDelimiter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want rune
	}{
		{"semicolons win", "a;b;c\nd;e;f\n", ';'},
		{"commas win", "a,b,c\n", ','},
		{"tabs win", "a\tb\tc\n", '\t'},
		{"no delimiter falls back to comma", "single\ncolumn\n", ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sniffDelimiter(tt.text); got != tt.want {
				t.Errorf("sniffDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}
