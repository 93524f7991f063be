package pdftext

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// ledongthucDocument reads pages through the ledongthuc/pdf library,
// which reports positioned text runs usable for line reconstruction.
type ledongthucDocument struct {
	file   io.Closer
	reader *lpdf.Reader
	fonts  map[string]*lpdf.Font
	opts   []Option
}

func openLedongthuc(path string, opts ...Option) (doc Document, err error) {
	// The underlying parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("open with ledongthuc: %v", r)
		}
	}()

	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open with ledongthuc: %w", err)
	}

	return &ledongthucDocument{
		file:   f,
		reader: r,
		fonts:  make(map[string]*lpdf.Font),
		opts:   opts,
	}, nil
}

func (d *ledongthucDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *ledongthucDocument) PageText(pageNumber int) (text string, err error) {
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
	if len(frags) > 0 {
		return assembleLines(frags, d.opts...), nil
	}

	// Some generators emit text the positioning pass cannot see. The
	// font-aware plain text path still decodes those.
	return d.plainText(p)
}

// plainText decodes page text through the shared font cache. Fonts
// repeat across pages, so decoded tables are reused.
func (d *ledongthucDocument) plainText(p lpdf.Page) (string, error) {
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; !ok {
			font := p.Font(name)
			d.fonts[name] = &font
		}
	}
	return p.GetPlainText(d.fonts)
}

func (d *ledongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}
