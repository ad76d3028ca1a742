// Package importer orchestrates provider imports: it walks source units,
// dispatches each to its format adapter, normalizes the resulting drafts,
// and resolves duplicates across the whole batch.
package importer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"faena/internal/classify"
	"faena/internal/dedupe"
	"faena/internal/domain"
	"faena/internal/extract"
	"faena/internal/normalize"
)

// Engine runs provider imports. Source units are processed sequentially:
// deduplication is order-dependent (first file wins), which out-of-order
// concurrent completion would undermine.
type Engine struct{}

// NewEngine creates an import Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Import processes the source units in order and returns the merged record
// set plus import statistics. Per-unit failures are recorded by name and do
// not abort the remaining units. A cancelled context stops further unit
// reads but still reports results for completed units.
func (e *Engine) Import(ctx context.Context, units []domain.SourceUnit) *domain.ImportResult {
	result := &domain.ImportResult{
		Success: true,
		Data:    []domain.ProviderRecord{},
	}
	result.Metadata.TotalSources = len(units)

	now := time.Now().UTC()
	var all []domain.ProviderRecord

	for i := range units {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, fmt.Sprintf(
				"import cancelled after %d of %d source units", result.Metadata.ProcessedSources, len(units)))
			break
		}

		records, err := e.processUnit(units[i], now)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("unit %s: %v", units[i].Name, err))
			continue
		}
		result.Metadata.ProcessedSources++
		all = append(all, records...)
	}

	result.Warnings = append(result.Warnings, recordWarnings(all)...)
	result.Warnings = append(result.Warnings, conflictWarnings(all)...)

	kept, removed := dedupe.Dedupe(all)
	result.Data = kept
	result.Metadata.TotalRecordsBeforeDedup = len(all)
	result.Metadata.UniqueRecords = len(kept)
	result.Metadata.DuplicatesRemoved = removed
	return result
}

// processUnit runs one source unit through its adapter and the normalizer.
func (e *Engine) processUnit(unit domain.SourceUnit, now time.Time) ([]domain.ProviderRecord, error) {
	if len(unit.Content) == 0 {
		return nil, domain.ErrEmptySource
	}
	adapter, err := extract.ForFormat(unit.Format)
	if err != nil {
		return nil, err
	}
	drafts, err := adapter.Extract(unit)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ProviderRecord, 0, len(drafts))
	for _, d := range drafts {
		records = append(records, normalize.Normalize(d, unit.Name, unit.Format, now))
	}
	return records, nil
}

// recordWarnings flags records that lack a name or any contact field. Such
// records are still emitted; a human reviewer decides what to do with them.
func recordWarnings(records []domain.ProviderRecord) []string {
	var warnings []string
	for i := range records {
		r := &records[i]
		if !r.HasName() {
			warnings = append(warnings, fmt.Sprintf("record %s from %s has no name", r.ID, r.SourceFile))
		}
		if !r.HasContact() {
			warnings = append(warnings, fmt.Sprintf("record %q from %s has no contact information", r.FullName, r.SourceFile))
		}
	}
	return warnings
}

// conflictWarnings flags a tax ID that appears under two different names.
// The first occurrence still wins; the warning lets a reviewer reconcile.
func conflictWarnings(records []domain.ProviderRecord) []string {
	firstName := make(map[string]string)
	var warnings []string
	for i := range records {
		r := &records[i]
		if r.TaxID == "" || !classify.IsTaxID(r.TaxID) {
			continue
		}
		prev, ok := firstName[r.TaxID]
		if !ok {
			firstName[r.TaxID] = r.FullName
			continue
		}
		if !strings.EqualFold(prev, r.FullName) {
			warnings = append(warnings, fmt.Sprintf(
				"tax ID %s appears as %q and %q; keeping the first occurrence", r.TaxID, prev, r.FullName))
		}
	}
	return warnings
}

// Search filters records by case-insensitive substring match across full
// name, tax ID, and profession, returning at most limit results and the
// total match count.
func Search(records []domain.ProviderRecord, query string, limit int) domain.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	result := domain.SearchResult{Providers: []domain.ProviderRecord{}}
	if q == "" {
		return result
	}

	for i := range records {
		r := &records[i]
		if strings.Contains(strings.ToLower(r.FullName), q) ||
			strings.Contains(strings.ToLower(r.TaxID), q) ||
			strings.Contains(strings.ToLower(r.Profession), q) {
			result.Total++
			if limit <= 0 || len(result.Providers) < limit {
				result.Providers = append(result.Providers, *r)
			}
		}
	}
	return result
}
