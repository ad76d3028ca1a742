package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"faena/internal/config"
	"faena/internal/domain"
	"faena/internal/extract"
	"faena/internal/importer"
	"faena/internal/port"
	"faena/mocks"
)

func testImportConfig() config.ImportConfig {
	return config.ImportConfig{
		MaxFileSizeMB: 1,
		MaxSources:    10,
	}
}

func testS3Config() config.S3Config {
	return config.S3Config{Region: "us-east-1", Bucket: "test-bucket"}
}

func setupImportService(repo port.ProviderRepository, storage port.ObjectStorage,
	email port.EmailSender, cfg config.ImportConfig) ImportService {
	extract.RegisterAdapter(domain.FormatStructured, extract.NewStructuredAdapter())
	s3cfg := testS3Config()
	return NewImportService(importer.NewEngine(), repo, storage, email, &cfg, &s3cfg)
}

func structuredUnit(name, payload string) domain.SourceUnit {
	return domain.SourceUnit{Name: name, Format: domain.FormatStructured, Content: []byte(payload)}
}

func TestImportSourcesPersistsRecords(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.AnythingOfType("[]domain.ProviderRecord")).Return(nil)

	svc := setupImportService(repo, nil, nil, testImportConfig())
	result, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Constructora Andes", "rut": "12.345.678-5"}]`),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Metadata.UniqueRecords)
	repo.AssertExpectations(t)
}

func TestImportSourcesEmptyInput(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	svc := setupImportService(repo, nil, nil, testImportConfig())

	_, err := svc.ImportSources(context.Background(), nil)

	assert.ErrorIs(t, err, domain.ErrEmptySource)
	repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
}

func TestImportSourcesOversizedUnit(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	svc := setupImportService(repo, nil, nil, testImportConfig())

	big := make([]byte, 2*1024*1024)
	_, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		{Name: "enorme.json", Format: domain.FormatStructured, Content: big},
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	assert.Contains(t, err.Error(), "enorme.json")
	repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
}

func TestImportSourcesRepoFailure(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(assert.AnError)

	svc := setupImportService(repo, nil, nil, testImportConfig())
	_, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Acme"}]`),
	})

	assert.ErrorIs(t, err, assert.AnError)
}

func TestImportSourcesSkipsPersistenceWhenNothingExtracted(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	svc := setupImportService(repo, nil, nil, testImportConfig())

	result, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("vacio.json", `[]`),
	})

	require.NoError(t, err)
	assert.Empty(t, result.Data)
	repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything)
}

func TestImportSourcesArchivesWhenEnabled(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" && strings.HasPrefix(in.Key, "imports/")
	})).Return(&port.UploadOutput{Location: "s3://test-bucket/key"}, nil)

	cfg := testImportConfig()
	cfg.ArchiveSources = true
	svc := setupImportService(repo, storage, nil, cfg)

	_, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Acme"}]`),
	})

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestImportSourcesArchiveFailureDoesNotFailImport(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	cfg := testImportConfig()
	cfg.ArchiveSources = true
	svc := setupImportService(repo, storage, nil, cfg)

	result, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Acme"}]`),
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestImportSourcesSendsSummaryEmail(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	email := new(mocks.MockEmailSender)
	email.On("SendImportSummary", mock.Anything, "ops@faena.cl",
		mock.AnythingOfType("domain.ImportMetadata"), mock.Anything).Return(nil)

	cfg := testImportConfig()
	cfg.NotifyEmail = "ops@faena.cl"
	svc := setupImportService(repo, nil, email, cfg)

	_, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Acme"}]`),
	})

	require.NoError(t, err)
	email.AssertExpectations(t)
}

func TestImportSourcesEmailFailureDoesNotFailImport(t *testing.T) {
	repo := new(mocks.MockProviderRepo)
	repo.On("SaveBatch", mock.Anything, mock.Anything).Return(nil)
	email := new(mocks.MockEmailSender)
	email.On("SendImportSummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	cfg := testImportConfig()
	cfg.NotifyEmail = "ops@faena.cl"
	svc := setupImportService(repo, nil, email, cfg)

	_, err := svc.ImportSources(context.Background(), []domain.SourceUnit{
		structuredUnit("a.json", `[{"nombre": "Acme"}]`),
	})

	require.NoError(t, err)
}
