package reader

import "bytes"

// PlainTextExtractor treats the source content as the extracted text itself.
// It serves pasted blobs and .txt exports; PDF sources arrive here already
// run through an external document-text extractor.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates a PlainTextExtractor.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

func (e *PlainTextExtractor) Text(_ string, content []byte) (string, error) {
	return string(bytes.TrimPrefix(content, utf8BOM)), nil
}
