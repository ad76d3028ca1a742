package main

import (
	"fmt"
	"log"

	"faena/internal/config"
	"faena/internal/domain"
	emailnoop "faena/internal/email/noop"
	emailses "faena/internal/email/ses"
	"faena/internal/extract"
	"faena/internal/handler"
	"faena/internal/importer"
	"faena/internal/port"
	"faena/internal/reader"
	"faena/internal/repository/postgres"
	"faena/internal/router"
	"faena/internal/service"
	s3storage "faena/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	providerRepo := postgres.NewProviderRepo(db)

	// Initialize storage (only needed when source archiving is enabled)
	var storage port.ObjectStorage
	if cfg.Import.ArchiveSources {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = emailses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = emailnoop.NewNoopSender()
	}

	// Register extraction adapters
	registerAdapters()

	// Initialize services
	engine := importer.NewEngine()
	importSvc := service.NewImportService(engine, providerRepo, storage, emailSender, &cfg.Import, &cfg.S3)
	providerSvc := service.NewProviderService(providerRepo)

	// Initialize handlers
	importH := handler.NewImportHandler(importSvc, cfg.Import.MaxSources)
	providerH := handler.NewProviderHandler(providerSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(importH, providerH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func registerAdapters() {
	rows := reader.NewAutoRowReader()
	text := reader.NewPlainTextExtractor()

	extract.RegisterAdapter(domain.FormatFixedColumn, extract.NewFixedColumnAdapter(rows))
	extract.RegisterAdapter(domain.FormatHeaderCSV, extract.NewHeaderCSVAdapter(rows))
	extract.RegisterAdapter(domain.FormatFreeText, extract.NewFreeTextAdapter(text))
	extract.RegisterAdapter(domain.FormatStructured, extract.NewStructuredAdapter())
}
