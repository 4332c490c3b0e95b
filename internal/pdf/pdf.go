// Package pdf wraps PDF access behind a narrow interface: open a file,
// count pages, extract per-page text, optionally render a page. The catalog
// core only ever talks to Document and Opener; rendering backends are a
// presentation concern and plug in behind the same interface.
package pdf

import (
	"errors"
	"fmt"
	"image"
	"os"

	lpdf "github.com/ledongthuc/pdf"
)

// ErrRenderUnavailable is returned by backends that only extract text.
var ErrRenderUnavailable = errors.New("pdf: page rendering requires a rasterizer backend")

// Document is an open PDF file. Pages are 1-based.
type Document interface {
	PageCount() int
	ExtractText(page int) (string, error)
	RenderPage(page int, zoom float64) (image.Image, error)
	Close() error
}

// Opener opens PDF files.
type Opener interface {
	Open(path string) (Document, error)
}

// Extractor is the bundled text-only backend.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Open(path string) (Document, error) {
	f, reader, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &document{file: f, reader: reader}, nil
}

type document struct {
	file   *os.File
	reader *lpdf.Reader
}

func (d *document) PageCount() int {
	return d.reader.NumPage()
}

func (d *document) ExtractText(page int) (string, error) {
	if page < 1 || page > d.reader.NumPage() {
		return "", fmt.Errorf("page %d out of range (1..%d)", page, d.reader.NumPage())
	}

	p := d.reader.Page(page)
	if p.V.IsNull() {
		return "", nil
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("extract text from page %d: %w", page, err)
	}
	return text, nil
}

func (d *document) RenderPage(page int, zoom float64) (image.Image, error) {
	return nil, ErrRenderUnavailable
}

func (d *document) Close() error {
	return d.file.Close()
}
