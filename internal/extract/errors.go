package extract

import "fmt"

// UnsupportedTypeError indicates a file type the extractor cannot handle,
// such as legacy .doc files.
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q: supported types are .pdf, .docx, .txt", e.Extension)
}

// ExtractionError wraps a failure while reading or decoding a document.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// EmptyDocumentError indicates a document that yielded no text at all.
type EmptyDocumentError struct {
	Path string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("document %s contains no extractable text", e.Path)
}
