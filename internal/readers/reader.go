// Package readers converts caller-supplied source files into plain
// text for the brief pipeline. Text formats pass through untouched;
// line breaks are the only structural signal downstream recovery can
// rely on, so nothing here reflows or prettifies content.
package readers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// Reader loads documents from the local filesystem.
type Reader struct{}

// New creates a filesystem document reader.
func New() *Reader {
	return &Reader{}
}

// Read converts the referenced file into plain text.
//
// .txt, .md, .csv and .tsv are read verbatim. .docx is unpacked and
// its paragraph text extracted. .pdf is rejected: callers must convert
// PDFs to text upstream, the pipeline treats that conversion as a
// black box. Unknown extensions fall back to a plain text read.
func (r *Reader) Read(ref domain.FileRef) (string, error) {
	if ref.Path == "" {
		return "", fmt.Errorf("file ref %q has no path: %w", ref.ID, domain.ErrInvalidInput)
	}

	ext := strings.ToLower(filepath.Ext(ref.Path))

	switch ext {
	case ".txt", ".md", ".csv", ".tsv":
		return readPlainText(ref.Path)
	case ".docx":
		return readDocx(ref.Path)
	case ".pdf":
		return "", fmt.Errorf("read %s: convert PDF to text first: %w", ref.Filename, domain.ErrUnsupportedFormat)
	default:
		return readPlainText(ref.Path)
	}
}

func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("read %s: %w", path, domain.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
