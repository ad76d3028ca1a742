// Package dedupe resolves provider identity across source units.
package dedupe

import (
	"faena/internal/classify"
	"faena/internal/domain"
)

// Dedupe drops records whose identity key was already seen, preserving input
// order. The key is the tax ID when present and well-formed, otherwise the
// lower-cased trimmed full name. First occurrence wins: when the same
// provider appears in two files, whichever was processed first survives.
// Ties are never merged field-by-field. Returns the kept records and the
// number of duplicates removed.
func Dedupe(records []domain.ProviderRecord) ([]domain.ProviderRecord, int) {
	seen := make(map[string]bool, len(records))
	kept := make([]domain.ProviderRecord, 0, len(records))
	removed := 0

	for i := range records {
		key := records[i].DedupKey(classify.IsTaxID)
		if seen[key] {
			removed++
			continue
		}
		seen[key] = true
		kept = append(kept, records[i])
	}
	return kept, removed
}
