package port

import (
	"context"

	"faena/internal/domain"
)

// ProviderRepository persists validated provider records and answers
// substring queries over them. The engine does not depend on its storage
// format.
type ProviderRepository interface {
	SaveBatch(ctx context.Context, records []domain.ProviderRecord) error
	Search(ctx context.Context, query string, limit int) ([]domain.ProviderRecord, int, error)
	List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error)
}
