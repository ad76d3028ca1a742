package normalize

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faena/internal/domain"
	"faena/internal/extract"
)

var testNow = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func TestNormalizeJoinsNameParts(t *testing.T) {
	d := &extract.Draft{FirstName: "JUAN", LastName: "PEREZ", SecondLastName: "GOMEZ"}

	rec := Normalize(d, "maestro.xlsx", domain.FormatFixedColumn, testNow)

	assert.Equal(t, "JUAN PEREZ GOMEZ", rec.FullName)
	assert.Equal(t, "maestro.xlsx", rec.SourceFile)
	assert.Equal(t, string(domain.FormatFixedColumn), rec.SourceFormat)
	assert.Equal(t, testNow, rec.ImportedAt)
}

func TestNormalizeJoinSkipsMissingParts(t *testing.T) {
	d := &extract.Draft{FirstName: "ANA", SecondLastName: "DIAZ"}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, "ANA DIAZ", rec.FullName, "no double spaces from absent middle parts")
}

func TestNormalizeFullNameFallback(t *testing.T) {
	d := &extract.Draft{FullName: "Constructora Andes Ltda"}

	rec := Normalize(d, "dir.txt", domain.FormatFreeText, testNow)

	assert.Equal(t, "Constructora Andes Ltda", rec.FullName)
}

func TestNormalizeNamePartsTakePrecedenceOverFullName(t *testing.T) {
	d := &extract.Draft{FirstName: "JUAN", LastName: "PEREZ", FullName: "otro nombre"}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, "JUAN PEREZ", rec.FullName)
}

func TestNormalizePlaceholderForNamelessRecord(t *testing.T) {
	d := &extract.Draft{Phone: "22345678"}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, domain.NoNamePlaceholder, rec.FullName)
	assert.False(t, rec.HasName())
}

func TestNormalizeGeneratesUUIDWhenAbsent(t *testing.T) {
	d := &extract.Draft{FullName: "Acme"}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
}

func TestNormalizeKeepsProvidedID(t *testing.T) {
	d := &extract.Draft{ID: "prov-7", FullName: "Acme"}

	rec := Normalize(d, "f.json", domain.FormatStructured, testNow)

	assert.Equal(t, "prov-7", rec.ID)
}

func TestNormalizeCategoryInference(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"CONSTRUCTORA DEL SUR", "Construcción"},
		{"Ingeniería y Obras SpA", "Construcción"},
		{"Áridos y Cementos Unidos", "Materiales"},
		{"Arriendo de Maquinaria Pesada", "Herramientas"},
		{"Servicios de Aseo Industrial", "Servicios"},
		{"Transportes y Fletes del Norte", "Transporte"},
		{"Instalaciones Eléctricas Soto", "Electricidad"},
		{"Gasfitería Express", "Gasfitería"},
		{"Pinturas y Terminaciones", "Terminaciones"},
		{"Juan Pérez", domain.DefaultCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Normalize(&extract.Draft{FullName: tt.name}, "f.txt", domain.FormatFreeText, testNow)
			assert.Equal(t, []string{tt.want}, rec.Categories)
		})
	}
}

func TestNormalizeExplicitCategoriesSuppressInference(t *testing.T) {
	d := &extract.Draft{FullName: "CONSTRUCTORA DEL SUR", Categories: []string{"Transporte"}}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, []string{"Transporte"}, rec.Categories)
}

func TestNormalizeTrimsFields(t *testing.T) {
	d := &extract.Draft{
		FullName: "  Acme  ",
		TaxID:    " 12.345.678-5 ",
		Email:    " contacto@acme.cl ",
	}

	rec := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, "Acme", rec.FullName)
	assert.Equal(t, "12.345.678-5", rec.TaxID)
	assert.Equal(t, "contacto@acme.cl", rec.Email)
}

// Normalizing an already-normalized record, read back as a draft, changes
// nothing but the import timestamp.
func TestNormalizeIdempotent(t *testing.T) {
	first := Normalize(&extract.Draft{
		FirstName: "JUAN", LastName: "PEREZ", TaxID: "12.345.678-5",
	}, "f.csv", domain.FormatHeaderCSV, testNow)

	later := testNow.Add(time.Hour)
	second := Normalize(&extract.Draft{
		ID:               first.ID,
		TaxID:            first.TaxID,
		FirstName:        first.FirstName,
		LastName:         first.LastName,
		SecondLastName:   first.SecondLastName,
		FullName:         first.FullName,
		Profession:       first.Profession,
		RegistrationDate: first.RegistrationDate,
		Phone:            first.Phone,
		Email:            first.Email,
		Address:          first.Address,
		Website:          first.Website,
		ContactPerson:    first.ContactPerson,
		Description:      first.Description,
		Categories:       first.Categories,
		Raw:              first.RawSource,
	}, first.SourceFile, domain.FormatHeaderCSV, later)

	assert.Equal(t, later, second.ImportedAt)
	second.ImportedAt = first.ImportedAt
	assert.Equal(t, first, second)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	d := &extract.Draft{ID: "prov-1", FullName: "Acme", Phone: "22345678"}

	first := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)
	second := Normalize(d, "f.csv", domain.FormatHeaderCSV, testNow)

	assert.Equal(t, first, second)
}
