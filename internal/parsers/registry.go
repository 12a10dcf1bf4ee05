package parsers

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
	"github.com/harvestly/harvest-cli/internal/parsers/docx"
	"github.com/harvestly/harvest-cli/internal/parsers/markdown"
	"github.com/harvestly/harvest-cli/internal/parsers/pdf"
	"github.com/harvestly/harvest-cli/internal/parsers/pptx"
)

// Registry maps file extensions to parsers.
type Registry struct {
	byExt map[string]driven.FileParser
}

// New returns a registry with the default per-format parsers registered.
func New() *Registry {
	r := &Registry{byExt: make(map[string]driven.FileParser)}
	r.Register(markdown.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(pptx.New())
	return r
}

// NewEmpty returns a registry with no parsers. Used by tests to install
// doubles.
func NewEmpty() *Registry {
	return &Registry{byExt: make(map[string]driven.FileParser)}
}

// Register adds a parser for each extension it reports. A later
// registration for the same extension wins.
func (r *Registry) Register(p driven.FileParser) {
	for _, ext := range p.Extensions() {
		r.byExt[strings.ToLower(ext)] = p
	}
}

// ForPath returns the parser for the path's extension, or
// domain.ErrUnsupportedFormat naming the extension.
func (r *Registry) ForPath(path string) (driven.FileParser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	p, ok := r.byExt[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, ext)
	}
	return p, nil
}

// Parse selects the parser for the path and invokes it with the options
// unchanged. Implements driven.FileParser so the registry can stand in
// wherever a single parser is expected.
func (r *Registry) Parse(ctx context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	p, err := r.ForPath(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(ctx, path, opts)
}

// Extensions returns the union of registered extensions.
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	return exts
}

// Ensure Registry implements the interface.
var _ driven.FileParser = (*Registry)(nil)
