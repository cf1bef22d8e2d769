package readers

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/briefly-cli/internal/core/domain"
)

// documentXML mirrors the subset of word/document.xml we care about:
// paragraphs of runs of text elements.
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

// readDocx extracts paragraph text from a DOCX archive, one paragraph
// per line, matching how the other text formats present line breaks.
func readDocx(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("read %s: %w", path, domain.ErrNotFound)
		}
		return "", fmt.Errorf("read %s: not a valid DOCX archive: %w", path, domain.ErrInvalidInput)
	}
	defer archive.Close()

	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, domain.ErrInvalidInput)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, domain.ErrInvalidInput)
		}

		return parseDocumentXML(content), nil
	}

	return "", nil
}

// parseDocumentXML flattens the paragraph structure into text lines.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result []byte
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result = append(result, '\n')
		}
		for _, r := range para.Runs {
			for _, t := range r.Text {
				result = append(result, t.Content...)
			}
		}
	}
	return string(result)
}
