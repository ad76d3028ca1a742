package domain

import (
	"strings"
	"time"
)

// NoNamePlaceholder is used when a record reaches normalization with no name parts.
const NoNamePlaceholder = "Proveedor sin nombre"

// DefaultCategory is assigned when no category keyword matches the provider name.
const DefaultCategory = "General"

// ProviderRecord is the canonical provider entity produced by an import run.
type ProviderRecord struct {
	ID               string    `db:"id" json:"id"`
	TaxID            string    `db:"tax_id" json:"tax_id"`
	FirstName        string    `db:"first_name" json:"first_name"`
	LastName         string    `db:"last_name" json:"last_name"`
	SecondLastName   string    `db:"second_last_name" json:"second_last_name"`
	FullName         string    `db:"full_name" json:"full_name"`
	Profession       string    `db:"profession" json:"profession"`
	RegistrationDate string    `db:"registration_date" json:"registration_date"`
	Phone            string    `db:"phone" json:"phone"`
	Email            string    `db:"email" json:"email"`
	Address          string    `db:"address" json:"address"`
	Website          string    `db:"website" json:"website"`
	ContactPerson    string    `db:"contact_person" json:"contact_person"`
	Categories       []string  `db:"-" json:"categories"`
	Description      string    `db:"description" json:"description"`
	RawSource        []string  `db:"-" json:"raw_source,omitempty"`
	SourceFile       string    `db:"source_file" json:"source_file"`
	SourceFormat     string    `db:"source_format" json:"source_format"`
	ImportedAt       time.Time `db:"imported_at" json:"imported_at"`
}

// HasName reports whether the record carries a real name rather than the placeholder.
func (p *ProviderRecord) HasName() bool {
	return p.FullName != "" && p.FullName != NoNamePlaceholder
}

// HasContact reports whether at least one contact field is populated.
func (p *ProviderRecord) HasContact() bool {
	return p.Phone != "" || p.Email != "" || p.Address != "" || p.Website != ""
}

// DedupKey returns the identity key used by the deduplicator: the tax ID when
// present and well-formed, otherwise the lower-cased trimmed full name.
// The key is always computed, never stored.
func (p *ProviderRecord) DedupKey(taxIDValid func(string) bool) string {
	if p.TaxID != "" && taxIDValid(p.TaxID) {
		return p.TaxID
	}
	return strings.ToLower(strings.TrimSpace(p.FullName))
}

// SourceUnit is one file, pasted blob, or structured payload submitted for import.
type SourceUnit struct {
	Name    string       `json:"name"`
	Format  SourceFormat `json:"format"`
	Content []byte       `json:"-"`
}

// ImportMetadata summarizes one import run across all source units.
type ImportMetadata struct {
	TotalSources            int `json:"total_sources"`
	ProcessedSources        int `json:"processed_sources"`
	TotalRecordsBeforeDedup int `json:"total_records_before_dedup"`
	UniqueRecords           int `json:"unique_records"`
	DuplicatesRemoved       int `json:"duplicates_removed"`
}

// ImportResult is the caller-visible outcome of an import run. Success means
// the operation itself ran; it can be true even when zero usable records came out.
type ImportResult struct {
	Success  bool             `json:"success"`
	Data     []ProviderRecord `json:"data"`
	Metadata ImportMetadata   `json:"metadata"`
	Errors   []string         `json:"errors"`
	Warnings []string         `json:"warnings"`
}

// SearchResult holds a filtered page of provider records.
type SearchResult struct {
	Providers []ProviderRecord `json:"providers"`
	Total     int              `json:"total"`
}
