package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"faena/internal/domain"
)

// keyAliases maps a draft field to its accepted key spellings. Structured
// payloads come from several frontends, so each field tolerates both the
// Spanish and the snake_case English spelling.
var keyAliases = map[Field][]string{
	FieldTaxID:            {"rut", "tax_id"},
	FieldFullName:         {"nombre", "name"},
	FieldFirstName:        {"nombres", "first_name"},
	FieldLastName:         {"apellido", "last_name"},
	FieldSecondLastName:   {"segundo_apellido", "second_last_name"},
	FieldProfession:       {"profesion", "profession"},
	FieldRegistrationDate: {"fecha_registro", "registration_date"},
	FieldPhone:            {"telefono", "phone"},
	FieldEmail:            {"correo", "email"},
	FieldAddress:          {"direccion", "address"},
	FieldWebsite:          {"sitio_web", "website"},
	FieldContactPerson:    {"contacto", "contact_person"},
	FieldDescription:      {"descripcion", "description"},
}

var categoryAliases = []string{"categorias", "categories"}
var idAliases = []string{"id", "_id"}

// StructuredAdapter extracts drafts from a JSON array of loosely-keyed
// objects. Each element is already one record, so no accumulator is needed.
type StructuredAdapter struct{}

// NewStructuredAdapter creates a StructuredAdapter.
func NewStructuredAdapter() *StructuredAdapter {
	return &StructuredAdapter{}
}

func (a *StructuredAdapter) Extract(unit domain.SourceUnit) ([]*Draft, error) {
	var objects []map[string]json.RawMessage
	if err := json.Unmarshal(unit.Content, &objects); err != nil {
		// Not an array of objects: nothing to salvage.
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	drafts := make([]*Draft, 0, len(objects))
	for _, obj := range objects {
		d := &Draft{}
		d.ID = stringKey(obj, idAliases)
		for field, aliases := range keyAliases {
			d.SetIfAbsent(field, stringKey(obj, aliases))
		}
		d.Categories = categoriesKey(obj)

		raw, _ := json.Marshal(obj)
		d.Keep(string(raw))
		drafts = append(drafts, d)
	}
	return drafts, nil
}

// stringKey returns the first alias present in obj that holds a string value.
func stringKey(obj map[string]json.RawMessage, aliases []string) string {
	for _, key := range aliases {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// categoriesKey reads categories either as a JSON array of strings or as a
// single semicolon-separated string.
func categoriesKey(obj map[string]json.RawMessage) []string {
	for _, key := range categoryAliases {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var list []string
		if err := json.Unmarshal(raw, &list); err == nil {
			return trimAll(list)
		}
		var joined string
		if err := json.Unmarshal(raw, &joined); err == nil {
			return trimAll(strings.Split(joined, ";"))
		}
	}
	return nil
}

func trimAll(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
