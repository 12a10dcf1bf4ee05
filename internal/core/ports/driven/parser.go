package driven

import (
	"context"

	"github.com/harvestly/harvest-cli/internal/core/domain"
)

// ParseMode selects how a file collapses into blocks.
type ParseMode string

const (
	// ModeSingle returns the whole file as one block.
	ModeSingle ParseMode = "single"

	// ModeElements splits the file into structural blocks
	// (titles, paragraphs, pages, slides).
	ModeElements ParseMode = "elements"
)

// ParseOptions are threaded through to the per-format parser unchanged.
type ParseOptions struct {
	// Mode selects single-block or per-element parsing.
	Mode ParseMode

	// IncludePageBreaks emits page-break markers between pages or slides.
	IncludePageBreaks bool

	// Languages are hints for text extraction, in priority order.
	Languages []string
}

// DefaultParseOptions returns the options used when the caller supplies none.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		Mode:      ModeSingle,
		Languages: []string{"rus", "eng"},
	}
}

// FileParser parses a file at a path into text blocks.
// Implementations are keyed by file extension.
type FileParser interface {
	// Extensions returns the lower-case file extensions this parser
	// handles, including the leading dot.
	Extensions() []string

	// Parse reads the file and returns its blocks.
	Parse(ctx context.Context, path string, opts ParseOptions) ([]domain.FileBlock, error)
}
