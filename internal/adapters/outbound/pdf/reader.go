// Package pdf extracts plain text from PDF files, one entry per page, so
// page numbers survive into chunk metadata and citations.
package pdf

import (
	"context"
	"fmt"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	ledongthuc "github.com/ledongthuc/pdf"

	"github.com/Mathew005/ai-learning-repo/internal/domain"
)

// Reader implements domain.PDFReader.
type Reader struct {
	logger *log.Logger
}

// NewReader creates a new reader
func NewReader(logger *log.Logger) *Reader {
	return &Reader{logger: logger}
}

// ExtractPages implements domain.PDFReader.ExtractPages. A page that fails
// text extraction is skipped with a warning; one damaged page should not
// block ingesting the rest of the document.
func (r *Reader) ExtractPages(path string) ([]domain.PageText, error) {
	file, reader, err := ledongthuc.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	var pages []domain.PageText
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			r.logger.Printf("WARN: skipping page %d of %s: %v", i, path, err)
			continue
		}
		pages = append(pages, domain.PageText{Number: i, Text: text})
	}
	return pages, nil
}

// InitPDFReader initializes the PDF reader dependency.
type InitPDFReader struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the reader
func (i InitPDFReader) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PDFReader](NewReader(i.Logger))
	return ctx, nil
}
