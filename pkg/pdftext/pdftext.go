// Package pdftext extracts plain text from PDF files page by page.
//
// Two backends are tried in order: ledongthuc/pdf first for its
// positioned text runs, then dslipak/pdf for files the first cannot
// open. When both fail, pdfcpu inspects the file so callers can tell
// a damaged document from an unreadable path.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/pyhub-apps/ordercheck-golang/pkg/errs"
)

// Document is an open PDF exposing per-page text.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageText returns the text of the given page (1-based) with
	// lines in reading order, top to bottom.
	PageText(pageNumber int) (string, error)

	// Close releases the underlying file handle.
	Close() error
}

// Open opens the PDF at path, trying each backend in turn.
func Open(path string, opts ...Option) (Document, error) {
	doc, lerr := openLedongthuc(path, opts...)
	if lerr == nil {
		return doc, nil
	}

	doc, derr := openDslipak(path, opts...)
	if derr == nil {
		return doc, nil
	}

	return nil, classifyOpenFailure(path, lerr)
}

// ExtractPages returns the trimmed text of every page in order. Pages
// without extractable text contribute an empty string.
func ExtractPages(path string, opts ...Option) ([]string, error) {
	doc, err := Open(path, opts...)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	pages := make([]string, 0, doc.PageCount())
	for i := 1; i <= doc.PageCount(); i++ {
		text, err := doc.PageText(i)
		if err != nil {
			return nil, errs.Parse(fmt.Sprintf("extract page %d", i), path, err)
		}
		pages = append(pages, strings.TrimSpace(text))
	}
	return pages, nil
}

// ExtractText returns the document text with pages joined by a single
// newline.
func ExtractText(path string, opts ...Option) (string, error) {
	pages, err := ExtractPages(path, opts...)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}
