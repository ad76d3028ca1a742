package extract

import (
	"fmt"
	"strings"

	"faena/internal/classify"
	"faena/internal/domain"
	"faena/internal/port"
)

// fixedColumnWidth is the positional field count of the legacy provider
// export: sequence/tax-id, then up to three loosely-placed values.
const fixedColumnWidth = 4

// FixedColumnAdapter extracts drafts from positional tabular rows with no
// reliable header. Row interpretation is driven by what the first field
// classifies as.
type FixedColumnAdapter struct {
	rows port.RowReader
}

// NewFixedColumnAdapter creates a FixedColumnAdapter reading rows through r.
func NewFixedColumnAdapter(r port.RowReader) *FixedColumnAdapter {
	return &FixedColumnAdapter{rows: r}
}

func (a *FixedColumnAdapter) Extract(unit domain.SourceUnit) ([]*Draft, error) {
	rows, err := a.rows.Rows(unit.Name, unit.Content)
	if err != nil {
		return nil, fmt.Errorf("reading rows from %s: %w", unit.Name, err)
	}

	acc := NewAccumulator()
	for _, row := range rows {
		f := padRow(row, fixedColumnWidth)
		c0 := classify.Classify(f[0])

		switch {
		case c0 == classify.NumericID:
			// A numeric sequence identifier starts a new record.
			acc.Start(&Draft{})
			if classify.Classify(f[1]) == classify.PersonOrEntityName &&
				classify.Classify(f[2]) == classify.PersonOrEntityName {
				acc.Field(FieldFirstName, f[1])
				acc.Field(FieldLastName, f[2])
				if classify.Classify(f[3]) == classify.PersonOrEntityName {
					acc.Field(FieldSecondLastName, f[3])
				}
			}

		case c0 == classify.TaxID:
			// A tax ID attaches to the record in progress; the two fields
			// after it carry profession and registration date verbatim.
			acc.Field(FieldTaxID, f[0])
			acc.Field(FieldProfession, f[1])
			acc.Field(FieldRegistrationDate, f[2])

		case c0 == classify.PersonOrEntityName &&
			classify.Classify(f[1]) == classify.PersonOrEntityName:
			// Name correction/continuation line for a record still unnamed.
			if cur := acc.Current(); cur != nil && !cur.HasName() {
				acc.Field(FieldFirstName, f[0])
				acc.Field(FieldLastName, f[1])
				if classify.Classify(f[2]) == classify.PersonOrEntityName {
					acc.Field(FieldSecondLastName, f[2])
				}
			}
		}

		acc.Keep(strings.Join(f, "\t"))
	}
	acc.Flush()
	return acc.Drafts(), nil
}

// padRow returns row extended with empty strings to at least width fields.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row[:width]
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}
