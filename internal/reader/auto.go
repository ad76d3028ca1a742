package reader

import (
	"path/filepath"
	"strings"

	"faena/internal/port"
)

// AutoRowReader dispatches to the XLSX or CSV reader by file extension, so
// one adapter instance can serve both spreadsheet and CSV source units.
type AutoRowReader struct {
	xlsx port.RowReader
	csv  port.RowReader
}

// NewAutoRowReader creates an AutoRowReader over fresh XLSX and CSV readers.
func NewAutoRowReader() *AutoRowReader {
	return &AutoRowReader{xlsx: NewXLSXReader(), csv: NewCSVReader()}
}

func (r *AutoRowReader) Rows(name string, content []byte) ([][]string, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(name), ".")) {
	case "xlsx", "xls":
		return r.xlsx.Rows(name, content)
	default:
		return r.csv.Rows(name, content)
	}
}
