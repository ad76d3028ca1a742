package port

// RowReader yields the ordered rows of a tabular source unit. Each row is a
// fixed-size array of string fields, with empty strings for missing cells.
type RowReader interface {
	Rows(name string, content []byte) ([][]string, error)
}

// TextExtractor yields the plain text of a document source unit in page
// order. Callers only ever see the concatenated text, never document
// structure.
type TextExtractor interface {
	Text(name string, content []byte) (string, error)
}
