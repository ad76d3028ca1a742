package domain

// SourceFormat identifies the shape of a source unit's raw content.
type SourceFormat string

const (
	// FormatFixedColumn is a positional tabular export with up to four fields per row and no reliable header.
	FormatFixedColumn SourceFormat = "fixed_column"
	// FormatFreeText is line-oriented text, typically copied out of a PDF.
	FormatFreeText SourceFormat = "free_text"
	// FormatHeaderCSV is a generic CSV with a header row.
	FormatHeaderCSV SourceFormat = "header_csv"
	// FormatStructured is a JSON array of loosely-keyed objects.
	FormatStructured SourceFormat = "structured"
)

// FormatForExtension maps a lower-case file extension (without dot) to the
// format inferred when the caller does not declare one.
var FormatForExtension = map[string]SourceFormat{
	"xlsx": FormatFixedColumn,
	"xls":  FormatFixedColumn,
	"csv":  FormatHeaderCSV,
	"json": FormatStructured,
	"txt":  FormatFreeText,
}

// AllowedUploadExtensions lists the extensions accepted by the import upload endpoint.
var AllowedUploadExtensions = map[string]bool{
	"xlsx": true,
	"xls":  true,
	"csv":  true,
	"json": true,
	"txt":  true,
}
