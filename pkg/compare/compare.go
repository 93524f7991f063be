// Package compare aligns order rows with invoice records by their key
// and grades every configured field pair.
package compare

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
	"github.com/pyhub-apps/ordercheck-golang/pkg/invoice"
	"github.com/pyhub-apps/ordercheck-golang/pkg/logging"
	"github.com/pyhub-apps/ordercheck-golang/pkg/tabular"
)

// FieldMapping ties an invoice field to the order file column holding
// the same value.
type FieldMapping struct {
	Name        string // invoice field name
	OrderColumn int    // 1-based order file column
}

// Options configure the alignment.
type Options struct {
	KeyOrderColumn      int    // 1-based order column holding the key
	KeyInvoiceField     string // invoice field holding the key
	TrimUnderscoreAfter int    // offset for trimming order code suffixes
	Fields              []FieldMapping
	Tolerance           decimal.Decimal // numeric difference still treated as equal
}

// DefaultOptions mirror the order exports this tool was built around:
// the key sits in column 4; quantity, unit price and net price in
// columns 6, 9 and 10.
func DefaultOptions() Options {
	return Options{
		KeyOrderColumn:      4,
		KeyInvoiceField:     "kod",
		TrimUnderscoreAfter: 15,
		Fields: []FieldMapping{
			{Name: "db", OrderColumn: 6},
			{Name: "egyseg_ar", OrderColumn: 9},
			{Name: "netto_ar", OrderColumn: 10},
		},
	}
}

// Status grades one aligned key.
type Status string

const (
	StatusOK             Status = "OK"
	StatusMismatch       Status = "Mismatch"
	StatusMissingInvoice Status = "Missing in invoice"
	StatusMissingOrder   Status = "Missing in order"
)

// FieldResult carries both sides of one compared field.
type FieldResult struct {
	Name    string
	Order   string
	Invoice string
	Match   bool
}

// Row is the aligned result for one key.
type Row struct {
	Key     string
	Fields  []FieldResult
	Status  Status
	Details []string // mismatch tokens, e.g. "db" or "missing_invoice_row"
}

// Result is a full comparison: one row per key from either input,
// order-file keys first, invoice-only keys appended.
type Result struct {
	Fields         []string // compared field names, in column order
	Rows           []Row
	Matched        int
	Mismatched     int
	MissingInvoice int
	MissingOrder   int
}

// Compare aligns orderRows (header row first) against invoiceRecords.
// invoiceHeader is the invoice file's header, used to verify that the
// key and every compared field are present; pass invoice.FieldNames
// for records built in memory.
func Compare(orderRows [][]string, invoiceRecords []invoice.Record, invoiceHeader []string, opts Options) (*Result, error) {
	if opts.KeyOrderColumn < 1 || opts.KeyInvoiceField == "" || len(opts.Fields) == 0 {
		return nil, errs.Schema("validate comparison options", "",
			errors.New("key column, key field and at least one field mapping are required"))
	}
	if opts.Tolerance.IsNegative() {
		opts.Tolerance = decimal.Zero
	}
	if err := checkInvoiceHeader(invoiceHeader, opts); err != nil {
		return nil, err
	}
	if len(orderRows) == 0 {
		return nil, errs.Schema("read order rows", "", errors.New("no rows found"))
	}

	orderIndex := make(map[string][]string)
	var orderKeys []string
	for i, row := range orderRows[1:] {
		raw := tabular.Column(row, opts.KeyOrderColumn)
		key := invoice.TrimCodeSuffix(raw, opts.TrimUnderscoreAfter)
		if key == "" {
			logging.Log.Warnf("Skipping order row %d: empty key", i+2)
			continue
		}
		if _, ok := orderIndex[key]; ok {
			return nil, errs.Schemaf("align order rows", "", "duplicate key %q in order file", key)
		}
		orderIndex[key] = row
		orderKeys = append(orderKeys, key)
	}

	invoiceIndex := make(map[string]invoice.Record)
	var invoiceKeys []string
	for i, rec := range invoiceRecords {
		key := invoice.NormalizeText(rec.Field(opts.KeyInvoiceField))
		if key == "" {
			logging.Log.Warnf("Skipping invoice row %d: empty key", i+2)
			continue
		}
		if _, ok := invoiceIndex[key]; ok {
			return nil, errs.Schemaf("align invoice rows", "", "duplicate key %q in invoice file", key)
		}
		invoiceIndex[key] = rec
		invoiceKeys = append(invoiceKeys, key)
	}

	result := &Result{Fields: fieldNames(opts.Fields)}

	for _, key := range orderKeys {
		orderRow := orderIndex[key]
		rec, found := invoiceIndex[key]
		if !found {
			row := Row{
				Key:     key,
				Status:  StatusMissingInvoice,
				Details: []string{"missing_invoice_row"},
			}
			for _, m := range opts.Fields {
				row.Fields = append(row.Fields, FieldResult{
					Name:  m.Name,
					Order: tabular.Column(orderRow, m.OrderColumn),
				})
			}
			result.Rows = append(result.Rows, row)
			result.MissingInvoice++
			continue
		}

		row := Row{Key: key}
		for _, m := range opts.Fields {
			fr := FieldResult{
				Name:    m.Name,
				Order:   tabular.Column(orderRow, m.OrderColumn),
				Invoice: rec.Field(m.Name),
			}
			fr.Match = valuesEqual(fr.Order, fr.Invoice, opts.Tolerance)
			if !fr.Match {
				row.Details = append(row.Details, m.Name)
			}
			row.Fields = append(row.Fields, fr)
		}
		if len(row.Details) == 0 {
			row.Status = StatusOK
			result.Matched++
		} else {
			row.Status = StatusMismatch
			result.Mismatched++
		}
		result.Rows = append(result.Rows, row)
	}

	for _, key := range invoiceKeys {
		if _, ok := orderIndex[key]; ok {
			continue
		}
		rec := invoiceIndex[key]
		row := Row{
			Key:     key,
			Status:  StatusMissingOrder,
			Details: []string{"missing_order_row"},
		}
		for _, m := range opts.Fields {
			row.Fields = append(row.Fields, FieldResult{
				Name:    m.Name,
				Invoice: rec.Field(m.Name),
			})
		}
		result.Rows = append(result.Rows, row)
		result.MissingOrder++
	}

	return result, nil
}

func fieldNames(fields []FieldMapping) []string {
	names := make([]string, len(fields))
	for i, m := range fields {
		names[i] = m.Name
	}
	return names
}

func checkInvoiceHeader(header []string, opts Options) error {
	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[invoice.NormalizeText(name)] = true
	}

	if !present[opts.KeyInvoiceField] {
		return errs.Schemaf("read invoice header", "", "missing key column %q", opts.KeyInvoiceField)
	}
	for _, m := range opts.Fields {
		if !present[m.Name] {
			return errs.Schemaf("read invoice header", "", "missing column %q", m.Name)
		}
	}
	return nil
}

// valuesEqual compares two cells numerically when both parse, within
// the tolerance, and as trimmed text otherwise.
func valuesEqual(orderVal, invoiceVal string, tolerance decimal.Decimal) bool {
	left, lok := invoice.ParseNumber(orderVal)
	right, rok := invoice.ParseNumber(invoiceVal)
	if lok && rok {
		return left.Sub(right).Abs().Cmp(tolerance) <= 0
	}
	if !lok && !rok {
		return invoice.NormalizeText(orderVal) == invoice.NormalizeText(invoiceVal)
	}
	return false
}
