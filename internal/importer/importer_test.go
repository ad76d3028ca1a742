package importer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faena/internal/domain"
	"faena/internal/extract"
	"faena/internal/reader"
)

func registerStructured() {
	extract.RegisterAdapter(domain.FormatStructured, extract.NewStructuredAdapter())
}

func hasWarningContaining(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func jsonUnit(name, payload string) domain.SourceUnit {
	return domain.SourceUnit{
		Name:    name,
		Format:  domain.FormatStructured,
		Content: []byte(payload),
	}
}

func TestImportMergesAndDeduplicatesAcrossUnits(t *testing.T) {
	registerStructured()
	units := []domain.SourceUnit{
		jsonUnit("a.json", `[{"rut": "12.345.678-5", "nombre": "Acme Uno", "telefono": "22345678"}]`),
		jsonUnit("b.json", `[{"rut": "12.345.678-5", "nombre": "Acme Uno"}, {"nombre": "Otra Empresa"}]`),
	}

	result := NewEngine().Import(context.Background(), units)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Metadata.TotalSources)
	assert.Equal(t, 2, result.Metadata.ProcessedSources)
	assert.Equal(t, 3, result.Metadata.TotalRecordsBeforeDedup)
	assert.Equal(t, 2, result.Metadata.UniqueRecords)
	assert.Equal(t, 1, result.Metadata.DuplicatesRemoved)
	require.Len(t, result.Data, 2)
	assert.Equal(t, "Acme Uno", result.Data[0].FullName)
	assert.Equal(t, "22345678", result.Data[0].Phone, "first occurrence survives intact")
}

func TestImportPartialBatchResilience(t *testing.T) {
	registerStructured()
	units := []domain.SourceUnit{
		jsonUnit("a.json", `[{"nombre": "Empresa Uno"}]`),
		jsonUnit("roto.json", `not valid json`),
		jsonUnit("c.json", `[{"nombre": "Empresa Tres"}]`),
	}

	result := NewEngine().Import(context.Background(), units)

	assert.Equal(t, 3, result.Metadata.TotalSources)
	assert.Equal(t, 2, result.Metadata.ProcessedSources)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "roto.json")
	assert.Len(t, result.Data, 2)
}

func TestImportEmptyUnitIsAnError(t *testing.T) {
	registerStructured()
	units := []domain.SourceUnit{
		jsonUnit("vacio.json", ``),
		jsonUnit("a.json", `[{"nombre": "Empresa Uno"}]`),
	}

	result := NewEngine().Import(context.Background(), units)

	assert.Equal(t, 1, result.Metadata.ProcessedSources)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "vacio.json")
}

func TestImportUnsupportedFormat(t *testing.T) {
	units := []domain.SourceUnit{
		{Name: "x.bin", Format: domain.SourceFormat("binary"), Content: []byte("data")},
	}

	result := NewEngine().Import(context.Background(), units)

	assert.Equal(t, 0, result.Metadata.ProcessedSources)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "x.bin")
}

func TestImportCancelledContext(t *testing.T) {
	registerStructured()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	units := []domain.SourceUnit{
		jsonUnit("a.json", `[{"nombre": "Empresa Uno"}]`),
	}

	result := NewEngine().Import(ctx, units)

	assert.Equal(t, 0, result.Metadata.ProcessedSources)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cancelled")
}

func TestImportWarnsOnMissingNameAndContact(t *testing.T) {
	registerStructured()
	units := []domain.SourceUnit{
		jsonUnit("a.json", `[{"telefono": "22345678"}, {"nombre": "Sin Contacto"}]`),
	}

	result := NewEngine().Import(context.Background(), units)

	require.Len(t, result.Data, 2)
	assert.True(t, hasWarningContaining(result.Warnings, "has no name"))
	assert.True(t, hasWarningContaining(result.Warnings, "has no contact information"))
}

func TestImportWarnsOnTaxIDNameConflict(t *testing.T) {
	registerStructured()
	units := []domain.SourceUnit{
		jsonUnit("a.json", `[{"rut": "12.345.678-5", "nombre": "Acme Uno"}]`),
		jsonUnit("b.json", `[{"rut": "12.345.678-5", "nombre": "Acme Renombrada"}]`),
	}

	result := NewEngine().Import(context.Background(), units)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "Acme Uno", result.Data[0].FullName)
	assert.True(t, hasWarningContaining(result.Warnings, "12.345.678-5"))
	assert.True(t, hasWarningContaining(result.Warnings, "keeping the first occurrence"))
}

func TestImportFreeTextDirectoryEntry(t *testing.T) {
	extract.RegisterAdapter(domain.FormatFreeText,
		extract.NewFreeTextAdapter(reader.NewPlainTextExtractor()))

	text := "ACME CONSTRUCTORA LTDA\n12.345.678-5\nFono: 22345678\ncontacto@acme.cl\nAv. Siempre Viva 742"
	units := []domain.SourceUnit{
		{Name: "directorio.txt", Format: domain.FormatFreeText, Content: []byte(text)},
	}

	result := NewEngine().Import(context.Background(), units)

	require.Len(t, result.Data, 1)
	r := result.Data[0]
	assert.Contains(t, r.FullName, "ACME CONSTRUCTORA LTDA")
	assert.Equal(t, "12.345.678-5", r.TaxID)
	assert.Equal(t, "22345678", r.Phone)
	assert.Equal(t, "contacto@acme.cl", r.Email)
	assert.Contains(t, r.Address, "Av. Siempre Viva 742")
	assert.Equal(t, []string{"Construcción"}, r.Categories)
	assert.Equal(t, "directorio.txt", r.SourceFile)
	assert.Equal(t, string(domain.FormatFreeText), r.SourceFormat)
}

func TestSearch(t *testing.T) {
	records := []domain.ProviderRecord{
		{FullName: "Constructora Andes", TaxID: "12.345.678-5", Profession: "CONSTRUCCION"},
		{FullName: "Ferretería El Martillo", TaxID: "9.876.543-K"},
		{FullName: "Transportes del Norte", Profession: "TRANSPORTE"},
	}

	t.Run("matches full name case-insensitively", func(t *testing.T) {
		got := Search(records, "andes", 10)
		assert.Equal(t, 1, got.Total)
		require.Len(t, got.Providers, 1)
		assert.Equal(t, "Constructora Andes", got.Providers[0].FullName)
	})

	t.Run("matches tax ID", func(t *testing.T) {
		got := Search(records, "9.876.543", 10)
		assert.Equal(t, 1, got.Total)
	})

	t.Run("matches profession", func(t *testing.T) {
		got := Search(records, "transporte", 10)
		assert.Equal(t, 1, got.Total)
	})

	t.Run("limit caps results but not total", func(t *testing.T) {
		got := Search(records, "r", 1)
		assert.Equal(t, 3, got.Total)
		assert.Len(t, got.Providers, 1)
	})

	t.Run("blank query matches nothing", func(t *testing.T) {
		got := Search(records, "   ", 10)
		assert.Equal(t, 0, got.Total)
		assert.Empty(t, got.Providers)
	})
}
