package docx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harvestly/harvest-cli/internal/core/domain"
	"github.com/harvestly/harvest-cli/internal/core/ports/driven"
)

const documentXMLFixture = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

// writeDOCX builds a minimal DOCX archive on disk.
func writeDOCX(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range parts {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return path
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{".docx"}, New().Extensions())
}

func TestParse_SingleMode(t *testing.T) {
	path := writeDOCX(t, map[string]string{"word/document.xml": documentXMLFixture})

	blocks, err := New().Parse(context.Background(), path, driven.DefaultParseOptions())

	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Document", blocks[0].Category)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", blocks[0].Text)
	assert.Equal(t, path, blocks[0].Path)
}

func TestParse_ElementsMode(t *testing.T) {
	path := writeDOCX(t, map[string]string{"word/document.xml": documentXMLFixture})

	opts := driven.DefaultParseOptions()
	opts.Mode = driven.ModeElements

	blocks, err := New().Parse(context.Background(), path, opts)

	require.NoError(t, err)
	require.Len(t, blocks, 2, "empty paragraphs contribute no blocks")
	assert.Equal(t, "First paragraph.", blocks[0].Text)
	assert.Equal(t, "NarrativeText", blocks[0].Category)
	assert.Equal(t, "Second paragraph.", blocks[1].Text)
}

func TestParse_MissingDocumentXML(t *testing.T) {
	path := writeDOCX(t, map[string]string{"word/styles.xml": "<x/>"})

	_, err := New().Parse(context.Background(), path, driven.DefaultParseOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParse_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0600))

	_, err := New().Parse(context.Background(), path, driven.DefaultParseOptions())

	assert.Error(t, err)
}
