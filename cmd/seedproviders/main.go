// Command seedproviders converts provider source files into a SQL seed file.
// It runs every supported file in the input directory through the extraction
// engine and writes batched INSERTs for the deduplicated records.
// Usage: go run ./cmd/seedproviders [sourceDir]
// Output: db/seeds/providers.sql
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"faena/internal/domain"
	"faena/internal/extract"
	"faena/internal/importer"
	"faena/internal/reader"
)

const batchSize = 500

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	sourceDir := "data/providers"
	if len(os.Args) > 1 {
		sourceDir = os.Args[1]
	}
	outPath := "db/seeds/providers.sql"

	registerAdapters()

	units, err := collectUnits(sourceDir)
	if err != nil {
		return fmt.Errorf("collect source files: %w", err)
	}
	if len(units) == 0 {
		return fmt.Errorf("no supported source files found in %s", sourceDir)
	}

	engine := importer.NewEngine()
	result := engine.Import(context.Background(), units)
	for _, e := range result.Errors {
		log.Printf("error: %s", e)
	}
	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
	log.Printf("extracted %d unique records from %d/%d sources (%d duplicates removed)",
		result.Metadata.UniqueRecords, result.Metadata.ProcessedSources,
		result.Metadata.TotalSources, result.Metadata.DuplicatesRemoved)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Provider seed data generated from source files.",
		fmt.Sprintf("-- %d records in batches of %d.", len(result.Data), batchSize),
		"-- Run: make seed-providers",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	records := result.Data
	for i := 0; i < len(records); i += batchSize {
		end := i + batchSize
		if end > len(records) {
			end = len(records)
		}
		if err := writeBatch(out, records[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d records (%d batches) in %s",
		len(records), (len(records)+batchSize-1)/batchSize, outPath)
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

// collectUnits reads every file in dir whose extension maps to a known
// source format. Format is inferred from the extension.
func collectUnits(dir string) ([]domain.SourceUnit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var units []domain.SourceUnit
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(entry.Name())), ".")
		format, ok := domain.FormatForExtension[ext]
		if !ok {
			log.Printf("skipping %s: unsupported extension %q", entry.Name(), ext)
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		units = append(units, domain.SourceUnit{
			Name:    entry.Name(),
			Format:  format,
			Content: content,
		})
	}
	return units, nil
}

func writeBatch(out *os.File, batch []domain.ProviderRecord) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO providers (id, tax_id, first_name, last_name, second_last_name, full_name, profession, registration_date, phone, email, address, website, contact_person, categories, description, source_file, source_format, imported_at) VALUES\n")

	for i := range batch {
		r := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s', '%s')",
			escapeSQL(r.ID), escapeSQL(r.TaxID), escapeSQL(r.FirstName),
			escapeSQL(r.LastName), escapeSQL(r.SecondLastName), escapeSQL(r.FullName),
			escapeSQL(r.Profession), escapeSQL(r.RegistrationDate), escapeSQL(r.Phone),
			escapeSQL(r.Email), escapeSQL(r.Address), escapeSQL(r.Website),
			escapeSQL(r.ContactPerson), escapeSQL(strings.Join(r.Categories, ";")),
			escapeSQL(r.Description), escapeSQL(r.SourceFile), escapeSQL(r.SourceFormat),
			r.ImportedAt.UTC().Format("2006-01-02 15:04:05"))
	}

	b.WriteString("\nON CONFLICT (id) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
