package extract

import (
	"fmt"
	"strings"

	"faena/internal/domain"
	"faena/internal/port"
)

// headerNameTokens are the column labels that identify a header row.
var headerNameTokens = []string{"nombre", "name", "razon social", "razón social", "proveedor"}

// headerColumns is the positional layout of a generic provider CSV.
var headerColumns = []Field{
	FieldFullName,
	FieldPhone,
	FieldEmail,
	FieldAddress,
	FieldWebsite,
	"", // categories, handled separately
	FieldDescription,
}

const categoriesColumn = 5

// HeaderCSVAdapter extracts drafts from a generic CSV with a header row.
// Each data row maps positionally to one record; no accumulation state
// machine is needed.
type HeaderCSVAdapter struct {
	rows port.RowReader
}

// NewHeaderCSVAdapter creates a HeaderCSVAdapter reading rows through r.
func NewHeaderCSVAdapter(r port.RowReader) *HeaderCSVAdapter {
	return &HeaderCSVAdapter{rows: r}
}

func (a *HeaderCSVAdapter) Extract(unit domain.SourceUnit) ([]*Draft, error) {
	rows, err := a.rows.Rows(unit.Name, unit.Content)
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", unit.Name, err)
	}

	var drafts []*Draft
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		f := padRow(row, len(headerColumns))
		if strings.TrimSpace(strings.Join(f, "")) == "" {
			continue
		}

		d := &Draft{}
		for col, field := range headerColumns {
			if field == "" {
				continue
			}
			d.SetIfAbsent(field, f[col])
		}
		for _, cat := range strings.Split(f[categoriesColumn], ";") {
			if cat = strings.TrimSpace(cat); cat != "" {
				d.Categories = append(d.Categories, cat)
			}
		}
		d.Keep(strings.Join(f, "\t"))
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// isHeaderRow reports whether the first row carries a recognizable "name"
// column token.
func isHeaderRow(row []string) bool {
	for _, cell := range row {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, tok := range headerNameTokens {
			if cell == tok {
				return true
			}
		}
	}
	return false
}
