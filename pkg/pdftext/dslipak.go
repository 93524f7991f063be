package pdftext

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
)

// dslipakDocument is the fallback backend for files ledongthuc/pdf
// cannot open. It exposes the same positioned text model but tolerates
// a different set of malformed files.
type dslipakDocument struct {
	reader *dpdf.Reader
	opts   []Option
}

func openDslipak(path string, opts ...Option) (doc Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("open with dslipak: %v", r)
		}
	}()

	r, err := dpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open with dslipak: %w", err)
	}

	return &dslipakDocument{reader: r, opts: opts}, nil
}

func (d *dslipakDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *dslipakDocument) PageText(pageNumber int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()

	if pageNumber < 1 || pageNumber > d.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range [1, %d]", pageNumber, d.reader.NumPage())
	}

	p := d.reader.Page(pageNumber)
	if p.V.IsNull() {
		return "", nil
	}

	content := p.Content()
	frags := make([]fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" {
			continue
		}
		frags = append(frags, fragment{text: t.S, x: t.X, y: t.Y, w: t.W})
	}
	return assembleLines(frags, d.opts...), nil
}

// Close drops the page cache. The library keeps no open handle of its
// own.
func (d *dslipakDocument) Close() error {
	d.reader = nil
	return nil
}
