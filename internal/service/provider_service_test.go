package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faena/internal/domain"
	"faena/mocks"
)

func TestProviderServiceSearch(t *testing.T) {
	records := []domain.ProviderRecord{{FullName: "Constructora Andes"}}
	repo := new(mocks.MockProviderRepo)
	repo.On("Search", mock.Anything, "andes", 10).Return(records, 1, nil)

	svc := NewProviderService(repo)
	result, err := svc.Search(context.Background(), "andes", 10)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Providers, 1)
	assert.Equal(t, "Constructora Andes", result.Providers[0].FullName)
	repo.AssertExpectations(t)
}

func TestProviderServiceSearchRepoError(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("Search", mock.Anything, "x", 10).Return(nil, 0, assert.AnError)

	svc := NewProviderService(repo)
	_, err := svc.Search(context.Background(), "x", 10)

	assert.ErrorIs(t, err, assert.AnError)
}

func TestProviderServiceList(t *testing.T) {
	records := []domain.ProviderRecord{{FullName: "Acme"}, {FullName: "Otra"}}
	repo := new(mocks.MockProviderRepo)
	repo.On("List", mock.Anything, 0, 50).Return(records, 2, nil)

	svc := NewProviderService(repo)
	got, total, err := svc.List(context.Background(), 0, 50)

	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, got, 2)
}

func TestProviderServiceExportAllPaginates(t *testing.T) {
	pageOne := make([]domain.ProviderRecord, exportPageSize)
	for i := range pageOne {
		pageOne[i] = domain.ProviderRecord{FullName: "Empresa"}
	}
	pageTwo := []domain.ProviderRecord{{FullName: "Última"}}
	total := exportPageSize + 1

	repo := new(mocks.MockProviderRepo)
	repo.On("List", mock.Anything, 0, exportPageSize).Return(pageOne, total, nil)
	repo.On("List", mock.Anything, exportPageSize, exportPageSize).Return(pageTwo, total, nil)

	svc := NewProviderService(repo)
	got, err := svc.ExportAll(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, total)
	repo.AssertExpectations(t)
}

func TestProviderServiceExportAllEmpty(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("List", mock.Anything, 0, exportPageSize).Return([]domain.ProviderRecord{}, 0, nil)

	svc := NewProviderService(repo)
	got, err := svc.ExportAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}
