// Package normalize turns draft records into canonical ProviderRecords:
// derived fields are computed, every optional field is made total (empty
// string, never absent), and the category list is guaranteed non-empty.
package normalize

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"faena/internal/domain"
	"faena/internal/extract"
)

// categoryFamily maps an inferred category tag to the name keywords that
// imply it. Families are matched in order; the first hit wins.
type categoryFamily struct {
	tag      string
	keywords []string
}

var categoryFamilies = []categoryFamily{
	{"Construcción", []string{"construc", "edificac", "obra", "ingenier", "arquitect"}},
	{"Materiales", []string{"material", "árido", "arido", "cemento", "hormigón", "hormigon", "fierro", "madera"}},
	{"Herramientas", []string{"herramienta", "maquinaria", "equipo", "arriendo"}},
	{"Servicios", []string{"servicio", "asesor", "consultor", "aseo"}},
	{"Transporte", []string{"transporte", "flete", "camion", "camión", "logística", "logistica"}},
	{"Electricidad", []string{"eléctric", "electric"}},
	{"Gasfitería", []string{"gasfiter", "sanitari", "plomer"}},
	{"Terminaciones", []string{"pintura", "terminacion", "terminación", "cerámica", "ceramica", "pavimento", "yeso"}},
}

// Normalize converts a draft into a canonical ProviderRecord. It is
// deterministic and side-effect-free given its inputs, and it never fails:
// missing data degrades to placeholders and defaults.
func Normalize(d *extract.Draft, sourceFile string, format domain.SourceFormat, now time.Time) domain.ProviderRecord {
	fullName := joinName(d.FirstName, d.LastName, d.SecondLastName)
	if fullName == "" {
		fullName = strings.TrimSpace(d.FullName)
	}
	if fullName == "" {
		fullName = domain.NoNamePlaceholder
	}

	id := d.ID
	if id == "" {
		id = uuid.New().String()
	}

	categories := d.Categories
	if len(categories) == 0 {
		categories = inferCategories(fullName)
	}

	return domain.ProviderRecord{
		ID:               id,
		TaxID:            strings.TrimSpace(d.TaxID),
		FirstName:        strings.TrimSpace(d.FirstName),
		LastName:         strings.TrimSpace(d.LastName),
		SecondLastName:   strings.TrimSpace(d.SecondLastName),
		FullName:         fullName,
		Profession:       strings.TrimSpace(d.Profession),
		RegistrationDate: strings.TrimSpace(d.RegistrationDate),
		Phone:            strings.TrimSpace(d.Phone),
		Email:            strings.TrimSpace(d.Email),
		Address:          strings.TrimSpace(d.Address),
		Website:          strings.TrimSpace(d.Website),
		ContactPerson:    strings.TrimSpace(d.ContactPerson),
		Categories:       categories,
		Description:      strings.TrimSpace(d.Description),
		RawSource:        d.Raw,
		SourceFile:       sourceFile,
		SourceFormat:     string(format),
		ImportedAt:       now,
	}
}

// joinName joins the name parts with single spaces, omitting absent parts.
func joinName(parts ...string) string {
	var present []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " ")
}

// inferCategories scans the name for domain keyword families and returns the
// first family that matches, defaulting to the general tag.
func inferCategories(name string) []string {
	lower := strings.ToLower(name)
	for _, fam := range categoryFamilies {
		for _, kw := range fam.keywords {
			if strings.Contains(lower, kw) {
				return []string{fam.tag}
			}
		}
	}
	return []string{domain.DefaultCategory}
}
