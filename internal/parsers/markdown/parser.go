// Package markdown parses Markdown files into text blocks using the
// goldmark AST.
package markdown

import (
	"context"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FileParser = (*Parser)(nil)

// Parser handles Markdown files.
type Parser struct {
	md goldmark.Markdown
}

// New creates a new Markdown parser.
func New() *Parser {
	return &Parser{md: goldmark.New()}
}

// Extensions returns the file extensions this parser handles.
func (p *Parser) Extensions() []string {
	return []string{".md"}
}

// Parse reads the file and returns its blocks. In single mode the whole
// file collapses to one "Document" block; in elements mode each top-level
// AST block becomes its own FileBlock with a structural category.
func (p *Parser) Parse(_ context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	root := p.md.Parser().Parse(text.NewReader(source))

	var blocks []domain.FileBlock
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		content := blockText(n, source)
		if content == "" {
			continue
		}
		blocks = append(blocks, domain.FileBlock{
			Text:     content,
			Category: categoryOf(n),
			Path:     path,
		})
	}

	if opts.Mode == driven.ModeElements {
		return blocks, nil
	}

	// Single mode: join the extracted blocks into one document block.
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Text)
	}
	return []domain.FileBlock{{
		Text:     strings.Join(parts, "\n\n"),
		Category: "Document",
		Path:     path,
	}}, nil
}

// categoryOf maps a goldmark node to a structural class.
func categoryOf(n ast.Node) string {
	switch n.(type) {
	case *ast.Heading:
		return "Title"
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return "CodeSnippet"
	case *ast.List:
		return "ListItem"
	default:
		return "NarrativeText"
	}
}

// blockText extracts the raw source text covered by a block node,
// descending into children for container nodes (lists, quotes).
func blockText(n ast.Node, source []byte) string {
	var b strings.Builder
	collectText(n, source, &b)
	return strings.TrimSpace(b.String())
}

func collectText(n ast.Node, source []byte, b *strings.Builder) {
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			b.Write(seg.Value(source))
		}
		b.WriteString("\n")
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectText(c, source, b)
	}
}
