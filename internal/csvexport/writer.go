package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"faena/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (15 columns).
var columns = []string{
	"Full Name",
	"Tax ID",
	"First Name",
	"Last Name",
	"Second Last Name",
	"Profession",
	"Registration Date",
	"Phone",
	"Email",
	"Address",
	"Website",
	"Contact Person",
	"Categories",
	"Description",
	"Imported At",
}

// Writer wraps csv.Writer for exporting provider records as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 15-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteProviders converts a batch of provider records to CSV rows and writes them.
func (w *Writer) WriteProviders(records []domain.ProviderRecord) error {
	for i := range records {
		row := providerToRow(&records[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// providerToRow converts a single provider record to a 15-element string slice.
func providerToRow(p *domain.ProviderRecord) []string {
	row := make([]string, len(columns))
	row[0] = p.FullName
	row[1] = p.TaxID
	row[2] = p.FirstName
	row[3] = p.LastName
	row[4] = p.SecondLastName
	row[5] = p.Profession
	row[6] = p.RegistrationDate
	row[7] = p.Phone
	row[8] = p.Email
	row[9] = p.Address
	row[10] = p.Website
	row[11] = p.ContactPerson
	row[12] = strings.Join(p.Categories, "; ")
	row[13] = p.Description
	row[14] = p.ImportedAt.Format(time.RFC3339)
	return row
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_name}_{YYYY-MM-DD}.csv
func BuildFilename(name string) string {
	sanitized := SanitizeFilename(name)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
