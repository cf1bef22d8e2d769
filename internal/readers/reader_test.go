package readers

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead_PlainTextPassthrough(t *testing.T) {
	content := "Key Contacts\nMichael\nStevens, VP Sales\n"
	path := writeTemp(t, "research.txt", content)

	got, err := New().Read(domain.FileRef{ID: "r1", Filename: "research.txt", Path: path})

	require.NoError(t, err)
	assert.Equal(t, content, got, "line breaks must survive untouched")
}

func TestRead_MarkdownPassthrough(t *testing.T) {
	content := "# Research\n\nAbhushan<br>Sahu leads procurement.\n"
	path := writeTemp(t, "research.md", content)

	got, err := New().Read(domain.FileRef{ID: "r1", Filename: "research.md", Path: path})

	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRead_CSVPassthrough(t *testing.T) {
	content := "industry,customer_info\nStartup,Tiny\n"
	path := writeTemp(t, "challenges.csv", content)

	got, err := New().Read(domain.FileRef{ID: "c1", Filename: "challenges.csv", Path: path})

	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := New().Read(domain.FileRef{ID: "x", Filename: "gone.txt", Path: "/nonexistent/gone.txt"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRead_EmptyPath(t *testing.T) {
	_, err := New().Read(domain.FileRef{ID: "x", Filename: "gone.txt"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRead_PDFRejected(t *testing.T) {
	path := writeTemp(t, "report.pdf", "%PDF-1.4")

	_, err := New().Read(domain.FileRef{ID: "p1", Filename: "report.pdf", Path: path})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRead_Docx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "playbook.docx")
	writeDocx(t, path, `<?xml version="1.0"?>
<document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body>
    <p><r><t>Key Contacts</t></r></p>
    <p><r><t>Michael </t><t>Stevens</t></r></p>
  </body>
</document>`)

	got, err := New().Read(domain.FileRef{ID: "d1", Filename: "playbook.docx", Path: path})

	require.NoError(t, err)
	assert.Equal(t, "Key Contacts\nMichael Stevens", got)
}

func TestRead_DocxInvalidArchive(t *testing.T) {
	path := writeTemp(t, "broken.docx", "not a zip file")

	_, err := New().Read(domain.FileRef{ID: "d1", Filename: "broken.docx", Path: path})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func writeDocx(t *testing.T, path, documentXML string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	entry, err := w.Create("word/document.xml")
	require.NoError(t, err)
	_, err = entry.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
