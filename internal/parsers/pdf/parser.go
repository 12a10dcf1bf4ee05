// Package pdf extracts plain text from PDF files.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FileParser = (*Parser)(nil)

// Parser handles PDF files.
type Parser struct{}

// New creates a new PDF parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".pdf"}
}

// Parse reads the file and returns its blocks. Single mode extracts the
// whole document as one "Document" block; elements mode emits one
// "NarrativeText" block per page, with "PageBreak" markers between pages
// when requested.
func (p *Parser) Parse(_ context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	if opts.Mode == driven.ModeElements {
		return pageBlocks(reader, path, opts.IncludePageBreaks)
	}

	r, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("extract pdf text: %w", err)
	}

	return []domain.FileBlock{{
		Text:     strings.TrimSpace(buf.String()),
		Category: "Document",
		Path:     path,
	}}, nil
}

// pageBlocks extracts text page by page.
func pageBlocks(reader *pdf.Reader, path string, pageBreaks bool) ([]domain.FileBlock, error) {
	var blocks []domain.FileBlock

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf page %d: %w", i, err)
		}

		content = strings.TrimSpace(content)
		if content != "" {
			blocks = append(blocks, domain.FileBlock{
				Text:     content,
				Category: "NarrativeText",
				Path:     path,
			})
		}

		if pageBreaks && i < reader.NumPage() {
			blocks = append(blocks, domain.FileBlock{
				Category: "PageBreak",
				Path:     path,
			})
		}
	}

	return blocks, nil
}
