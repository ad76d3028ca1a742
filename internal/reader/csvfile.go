package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM is stripped from CSV exports produced by Excel on Windows.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader reads comma-separated content as ordered rows. Rows may be
// ragged; quoting is handled leniently because the exports this ingests
// rarely quote consistently.
type CSVReader struct{}

// NewCSVReader creates a CSVReader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

func (r *CSVReader) Rows(name string, content []byte) ([][]string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(content))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv %s: %w", name, err)
		}
		rows = append(rows, record)
	}
	return rows, nil
}
