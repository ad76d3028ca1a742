package port

import (
	"context"

	"faena/internal/domain"
)

// EmailSender notifies a reviewer that an import batch finished.
type EmailSender interface {
	SendImportSummary(ctx context.Context, toEmail string, meta domain.ImportMetadata, errs []string) error
}
