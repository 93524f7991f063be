// Package ordercheck checks supplier invoices against order exports.
// It extracts invoice text from PDF files page by page and compares
// order and invoice tables into a styled report workbook.
package ordercheck

import (
	"github.com/pyhub-apps/ordercheck-golang/pkg/compare"
	"github.com/pyhub-apps/ordercheck-golang/pkg/invoice"
	"github.com/pyhub-apps/ordercheck-golang/pkg/pdftext"
	"github.com/pyhub-apps/ordercheck-golang/pkg/report"
	"github.com/pyhub-apps/ordercheck-golang/pkg/tabular"
)

// Re-export types from the underlying packages for public API
type (
	Document     = pdftext.Document
	Option       = pdftext.Option
	Record       = invoice.Record
	Translations = invoice.Translations
	Options      = compare.Options
	FieldMapping = compare.FieldMapping
	Result       = compare.Result
	Row          = compare.Row
	FieldResult  = compare.FieldResult
	Status       = compare.Status
)

// Re-export option functions and helpers
var (
	WithXTolerance   = pdftext.WithXTolerance
	WithYTolerance   = pdftext.WithYTolerance
	DefaultOptions   = compare.DefaultOptions
	LoadTranslations = invoice.LoadTranslations
)

const (
	StatusOK             = compare.StatusOK
	StatusMismatch       = compare.StatusMismatch
	StatusMissingInvoice = compare.StatusMissingInvoice
	StatusMissingOrder   = compare.StatusMissingOrder
)

// Open opens a PDF document for page-by-page text extraction.
func Open(path string, opts ...Option) (Document, error) {
	return pdftext.Open(path, opts...)
}

// ExtractPages returns the trimmed text of every page of the PDF.
func ExtractPages(path string, opts ...Option) ([]string, error) {
	return pdftext.ExtractPages(path, opts...)
}

// ExtractText returns the document's whole text, pages joined with
// newlines.
func ExtractText(path string, opts ...Option) (string, error) {
	return pdftext.ExtractText(path, opts...)
}

// ParseInvoicePDF extracts the invoice line items from a PDF: text
// extraction, line-item scanning, optional name translations, then
// currency formatting on the price fields. A nil translations table
// leaves the item names untouched.
func ParseInvoicePDF(path string, translations Translations) ([]Record, error) {
	text, err := ExtractText(path)
	if err != nil {
		return nil, err
	}
	records := invoice.ParseText(text)
	records = translations.Apply(records)
	return invoice.FormatPrices(records), nil
}

// CompareFiles runs a full comparison: read the order file, read the
// invoice file, align them and write the report workbook to outputPath.
func CompareFiles(orderPath, invoicePath, outputPath string, opts Options) (*Result, error) {
	orderRows, err := tabular.ReadRows(orderPath)
	if err != nil {
		return nil, err
	}
	records, header, err := invoice.Load(invoicePath)
	if err != nil {
		return nil, err
	}
	result, err := compare.Compare(orderRows, records, header, opts)
	if err != nil {
		return nil, err
	}
	if err := report.Write(outputPath, result); err != nil {
		return nil, err
	}
	return result, nil
}
