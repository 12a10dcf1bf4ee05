// Package docx extracts text from Word documents. A DOCX file is a ZIP
// archive; the text lives in word/document.xml as paragraphs of runs.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FileParser = (*Parser)(nil)

// Parser handles DOCX files.
type Parser struct{}

// New creates a new DOCX parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".docx"}
}

// Parse reads the file and returns its blocks. Single mode joins all
// paragraphs into one "Document" block; elements mode emits one
// "NarrativeText" block per non-empty paragraph.
func (p *Parser) Parse(_ context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer reader.Close()

	paragraphs, err := extractParagraphs(&reader.Reader)
	if err != nil {
		return nil, err
	}

	if opts.Mode == driven.ModeElements {
		blocks := make([]domain.FileBlock, 0, len(paragraphs))
		for _, para := range paragraphs {
			blocks = append(blocks, domain.FileBlock{
				Text:     para,
				Category: "NarrativeText",
				Path:     path,
			})
		}
		return blocks, nil
	}

	return []domain.FileBlock{{
		Text:     strings.Join(paragraphs, "\n"),
		Category: "Document",
		Path:     path,
	}}, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// extractParagraphs pulls non-empty paragraph texts from word/document.xml.
func extractParagraphs(reader *zip.Reader) ([]string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}

		var doc documentXML
		if err := xml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse document.xml: %w", err)
		}

		var paragraphs []string
		for _, para := range doc.Body.Paragraphs {
			var b strings.Builder
			for _, r := range para.Runs {
				for _, t := range r.Text {
					b.WriteString(t.Content)
				}
			}
			if text := strings.TrimSpace(b.String()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		}
		return paragraphs, nil
	}

	return nil, fmt.Errorf("%w: missing word/document.xml", domain.ErrInvalidInput)
}
