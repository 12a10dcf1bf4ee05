// Package pptx extracts text from PowerPoint presentations. A PPTX file is
// a ZIP archive with one XML part per slide under ppt/slides/.
package pptx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FileParser = (*Parser)(nil)

// Parser handles PPTX files.
type Parser struct{}

// New creates a new PPTX parser.
func New() *Parser {
	return &Parser{}
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".pptx"}
}

// Parse reads the file and returns its blocks. Single mode joins all
// slides into one "Document" block; elements mode emits one
// "NarrativeText" block per slide, with "PageBreak" markers between
// slides when requested.
func (p *Parser) Parse(_ context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}
	defer reader.Close()

	slides, err := extractSlides(&reader.Reader)
	if err != nil {
		return nil, err
	}

	if opts.Mode == driven.ModeElements {
		var blocks []domain.FileBlock
		for i, slide := range slides {
			blocks = append(blocks, domain.FileBlock{
				Text:     slide,
				Category: "NarrativeText",
				Path:     path,
			})
			if opts.IncludePageBreaks && i < len(slides)-1 {
				blocks = append(blocks, domain.FileBlock{
					Category: "PageBreak",
					Path:     path,
				})
			}
		}
		return blocks, nil
	}

	return []domain.FileBlock{{
		Text:     strings.Join(slides, "\n\n"),
		Category: "Document",
		Path:     path,
	}}, nil
}

// slideXML captures every a:t text element in a slide part.
type slideXML struct {
	Texts []string `xml:"cSld>spTree>sp>txBody>p>r>t"`
}

// extractSlides pulls the text of each slide in slide order.
func extractSlides(reader *zip.Reader) ([]string, error) {
	var names []string
	for _, file := range reader.File {
		if strings.HasPrefix(file.Name, "ppt/slides/slide") && path.Ext(file.Name) == ".xml" {
			names = append(names, file.Name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no slides found", domain.ErrInvalidInput)
	}

	// slide2.xml sorts after slide10.xml lexicographically; order numerically.
	sort.Slice(names, func(i, j int) bool {
		return slideNumber(names[i]) < slideNumber(names[j])
	})

	byName := make(map[string]*zip.File, len(reader.File))
	for _, file := range reader.File {
		byName[file.Name] = file
	}

	var slides []string
	for _, name := range names {
		text, err := slideText(byName[name])
		if err != nil {
			return nil, err
		}
		if text != "" {
			slides = append(slides, text)
		}
	}
	return slides, nil
}

// slideNumber extracts N from ppt/slides/slideN.xml. Unparseable names
// sort last.
func slideNumber(name string) int {
	base := strings.TrimSuffix(path.Base(name), ".xml")
	digits := strings.TrimPrefix(base, "slide")
	n := 0
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 1 << 30
		}
		n = n*10 + int(r-'0')
	}
	return n
}

func slideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", file.Name, err)
	}

	content, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return "", fmt.Errorf("read %s: %w", file.Name, err)
	}

	var slide slideXML
	if err := xml.Unmarshal(content, &slide); err != nil {
		return "", fmt.Errorf("parse %s: %w", file.Name, err)
	}

	return strings.TrimSpace(strings.Join(slide.Texts, "\n")), nil
}
