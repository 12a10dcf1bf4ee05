package parsers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

// spyParser records the invocation it receives.
type spyParser struct {
	exts    []string
	gotPath string
	gotOpts driven.ParseOptions
	blocks  []domain.FileBlock
	err     error
	invoked int
}

func (s *spyParser) Extensions() []string { return s.exts }

func (s *spyParser) Parse(_ context.Context, path string, opts driven.ParseOptions) ([]domain.FileBlock, error) {
	s.invoked++
	s.gotPath = path
	s.gotOpts = opts
	return s.blocks, s.err
}

func TestNew_RegistersSupportedExtensions(t *testing.T) {
	r := New()

	for _, ext := range []string{".pdf", ".docx", ".md", ".pptx"} {
		p, err := r.ForPath("/tmp/file" + ext)
		require.NoError(t, err, ext)
		assert.NotNil(t, p, ext)
	}
	assert.ElementsMatch(t, []string{".pdf", ".docx", ".md", ".pptx"}, r.Extensions())
}

func TestForPath_UnsupportedExtension(t *testing.T) {
	r := New()

	_, err := r.ForPath("/tmp/archive.tar.gz")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".gz", "error must name the offending extension")
}

func TestForPath_CaseInsensitive(t *testing.T) {
	r := New()

	_, err := r.ForPath("/tmp/REPORT.PDF")

	assert.NoError(t, err)
}

func TestParse_ThreadsOptionsUnchanged(t *testing.T) {
	spy := &spyParser{
		exts:   []string{".md"},
		blocks: []domain.FileBlock{{Text: "ok", Category: "Document", Path: "/tmp/x.md"}},
	}
	r := NewEmpty()
	r.Register(spy)

	opts := driven.ParseOptions{
		Mode:              driven.ModeElements,
		IncludePageBreaks: true,
		Languages:         []string{"rus", "eng"},
	}

	blocks, err := r.Parse(context.Background(), "/tmp/x.md", opts)

	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 1, spy.invoked)
	assert.Equal(t, "/tmp/x.md", spy.gotPath)
	assert.Equal(t, opts, spy.gotOpts, "options must reach the parser unchanged")
}

func TestParse_UnsupportedExtensionNoInvocation(t *testing.T) {
	spy := &spyParser{exts: []string{".md"}}
	r := NewEmpty()
	r.Register(spy)

	_, err := r.Parse(context.Background(), "/tmp/x.docx", driven.DefaultParseOptions())

	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), ".docx")
	assert.Zero(t, spy.invoked)
}

func TestDefaultParseOptions(t *testing.T) {
	opts := driven.DefaultParseOptions()

	assert.Equal(t, driven.ModeSingle, opts.Mode)
	assert.False(t, opts.IncludePageBreaks)
	assert.Equal(t, []string{"rus", "eng"}, opts.Languages)
}
