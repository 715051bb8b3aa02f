package extract

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// FromFile extracts plain text from a document on disk, dispatching on the
// file extension. The result is normalized. Legacy .doc files are rejected
// with an UnsupportedTypeError.
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	case ".txt":
		return fromText(path)
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}
}

func fromPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}

	text := Normalize(buf.String())
	if text == "" {
		return "", &EmptyDocumentError{Path: path}
	}
	return text, nil
}

func fromDocx(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	defer r.Close()

	// GetContent returns raw document XML. Paragraph boundaries become
	// newlines before the remaining tags are stripped.
	content := r.Editable().GetContent()
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")

	text := Normalize(content)
	if text == "" {
		return "", &EmptyDocumentError{Path: path}
	}
	return text, nil
}

func fromText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Err: err}
	}
	text := Normalize(string(data))
	if text == "" {
		return "", &EmptyDocumentError{Path: path}
	}
	return text, nil
}
