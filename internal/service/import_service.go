package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"faena/internal/config"
	"faena/internal/domain"
	"faena/internal/importer"
	"faena/internal/port"
)

// ImportService runs provider imports and persists the merged record set.
type ImportService interface {
	ImportSources(ctx context.Context, units []domain.SourceUnit) (*domain.ImportResult, error)
}

type importService struct {
	engine  *importer.Engine
	repo    port.ProviderRepository
	storage port.ObjectStorage
	email   port.EmailSender
	cfg     *config.ImportConfig
	s3cfg   *config.S3Config
}

// NewImportService creates a new ImportService implementation. storage may
// be nil when source archiving is disabled.
func NewImportService(
	engine *importer.Engine,
	repo port.ProviderRepository,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg *config.ImportConfig,
	s3cfg *config.S3Config,
) ImportService {
	return &importService{
		engine:  engine,
		repo:    repo,
		storage: storage,
		email:   email,
		cfg:     cfg,
		s3cfg:   s3cfg,
	}
}

func (s *importService) ImportSources(ctx context.Context, units []domain.SourceUnit) (*domain.ImportResult, error) {
	if len(units) == 0 {
		return nil, domain.ErrEmptySource
	}
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	for i := range units {
		if int64(len(units[i].Content)) > maxBytes {
			return nil, fmt.Errorf("%w: %s", domain.ErrFileTooLarge, units[i].Name)
		}
	}

	result := s.engine.Import(ctx, units)

	if len(result.Data) > 0 {
		if err := s.repo.SaveBatch(ctx, result.Data); err != nil {
			return nil, fmt.Errorf("persisting imported providers: %w", err)
		}
	}

	// Archiving and notification are best-effort: the import already
	// succeeded and its outcome is not held hostage to either.
	if s.cfg.ArchiveSources && s.storage != nil {
		s.archiveSources(ctx, units)
	}
	if s.cfg.NotifyEmail != "" && s.email != nil {
		if err := s.email.SendImportSummary(ctx, s.cfg.NotifyEmail, result.Metadata, result.Errors); err != nil {
			log.Printf("service.ImportSources: summary email failed: %v", err)
		}
	}

	return result, nil
}

// archiveSources uploads the original source files for provenance.
func (s *importService) archiveSources(ctx context.Context, units []domain.SourceUnit) {
	stamp := time.Now().UTC().Format("2006-01-02T15-04-05")
	for i := range units {
		u := &units[i]
		key := fmt.Sprintf("imports/%s/%s", stamp, u.Name)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.s3cfg.Bucket,
			Key:         key,
			Body:        bytes.NewReader(u.Content),
			ContentType: "application/octet-stream",
			Size:        int64(len(u.Content)),
		})
		if err != nil {
			log.Printf("service.ImportSources: archiving %s failed: %v", u.Name, err)
		}
	}
}
