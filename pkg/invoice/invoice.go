// Package invoice parses the product lines an invoice PDF prints and
// reads or writes the semicolon-delimited CSV built from them.
package invoice

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// Delimiter separates invoice CSV fields.
const Delimiter = ';'

// FieldNames is the invoice CSV header, in column order.
var FieldNames = []string{"kod", "megnevezes", "db", "egyseg_ar", "netto_ar"}

// Record is one product line from an invoice.
type Record struct {
	Kod        string
	Megnevezes string
	Db         string
	EgysegAr   string
	NettoAr    string
}

// Field returns the value for a CSV field name.
func (r Record) Field(name string) string {
	switch name {
	case "kod":
		return r.Kod
	case "megnevezes":
		return r.Megnevezes
	case "db":
		return r.Db
	case "egyseg_ar":
		return r.EgysegAr
	case "netto_ar":
		return r.NettoAr
	}
	return ""
}

func (r *Record) setField(name, value string) {
	switch name {
	case "kod":
		r.Kod = value
	case "megnevezes":
		r.Megnevezes = value
	case "db":
		r.Db = value
	case "egyseg_ar":
		r.EgysegAr = value
	case "netto_ar":
		r.NettoAr = value
	}
}

func (r Record) values() []string {
	return []string{r.Kod, r.Megnevezes, r.Db, r.EgysegAr, r.NettoAr}
}

// A product line carries a code, a free-form name and three trailing
// numbers: quantity, unit price and net price. Prices group thousands
// with spaces and use a decimal comma.
const amount = `(?:\d{1,3}(?: \d{3})+|\d+)(?:,\d+)?`

var productLine = regexp.MustCompile(
	`^(\S+) +(.+?) +(\d+(?:,\d+)?) +(` + amount + `) +(` + amount + `)$`)

// ParseText scans extracted invoice text and collects the product
// lines. Lines that do not fit the code/name/numbers shape, such as
// addresses, column headers or totals, are skipped.
func ParseText(text string) []Record {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, " ", " "))
		if line == "" {
			continue
		}
		m := productLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		records = append(records, Record{
			Kod:        m[1],
			Megnevezes: m[2],
			Db:         m[3],
			EgysegAr:   m[4],
			NettoAr:    m[5],
		})
	}
	return records
}

// Load reads an invoice CSV produced by Write or by an external
// invoicing tool. The header is returned alongside the records so
// callers can check it for the columns they need.
func Load(path string) ([]Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errs.Access("open invoice file", path, err)
	}
	defer f.Close()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	reader := csv.NewReader(transform.NewReader(f, decoder))
	reader.Comma = Delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errs.Parse("parse invoice file", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	header := rows[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		var rec Record
		for i, name := range header {
			if i >= len(row) {
				break
			}
			rec.setField(name, row[i])
		}
		records = append(records, rec)
	}
	return records, header, nil
}

// Write emits records as semicolon-delimited CSV with the standard
// header.
func Write(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	writer.Comma = Delimiter

	if err := writer.Write(FieldNames); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(rec.values()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile writes records to path, creating parent directories as
// needed.
func WriteFile(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Write("create output directory", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errs.Write("create invoice file", path, err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		return errs.Write("write invoice file", path, err)
	}
	if err := f.Close(); err != nil {
		return errs.Write("close invoice file", path, err)
	}
	return nil
}
