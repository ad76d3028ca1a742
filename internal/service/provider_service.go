package service

import (
	"context"

	"faena/internal/domain"
	"faena/internal/port"
)

// exportPageSize bounds how many providers an export pulls in one query.
const exportPageSize = 500

// ProviderService answers queries over persisted provider records.
type ProviderService interface {
	Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error)
	List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error)
	ExportAll(ctx context.Context) ([]domain.ProviderRecord, error)
}

type providerService struct {
	repo port.ProviderRepository
}

// NewProviderService creates a new ProviderService implementation.
func NewProviderService(repo port.ProviderRepository) ProviderService {
	return &providerService{repo: repo}
}

func (s *providerService) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	records, total, err := s.repo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return &domain.SearchResult{Providers: records, Total: total}, nil
}

func (s *providerService) List(ctx context.Context, offset, limit int) ([]domain.ProviderRecord, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *providerService) ExportAll(ctx context.Context) ([]domain.ProviderRecord, error) {
	var all []domain.ProviderRecord
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.repo.List(ctx, offset, exportPageSize)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(all) >= total || len(page) == 0 {
			break
		}
	}
	return all, nil
}
