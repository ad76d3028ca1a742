package noop

import (
	"context"
	"log"

	"faena/internal/domain"
	"faena/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs import summaries to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendImportSummary(_ context.Context, toEmail string, meta domain.ImportMetadata, errs []string) error {
	log.Printf("[NOOP EMAIL] Import summary for %s: %d/%d sources processed, %d unique records, %d duplicates removed, %d errors",
		toEmail, meta.ProcessedSources, meta.TotalSources, meta.UniqueRecords, meta.DuplicatesRemoved, len(errs))
	return nil
}
