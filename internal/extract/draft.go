// Package extract turns raw source units into draft provider records.
// Each source shape has its own adapter; all adapters converge on the same
// Draft type, the same field-precedence rule, and (for the schemaless
// formats) the same record-boundary state machine.
package extract

import "strings"

// Field names a settable draft field for the shared precedence helper.
type Field string

const (
	FieldFirstName        Field = "first_name"
	FieldLastName         Field = "last_name"
	FieldSecondLastName   Field = "second_last_name"
	FieldFullName         Field = "full_name"
	FieldTaxID            Field = "tax_id"
	FieldProfession       Field = "profession"
	FieldRegistrationDate Field = "registration_date"
	FieldPhone            Field = "phone"
	FieldEmail            Field = "email"
	FieldAddress          Field = "address"
	FieldWebsite          Field = "website"
	FieldContactPerson    Field = "contact_person"
	FieldDescription      Field = "description"
)

// Draft is a partially-populated, mutable provider record still under
// construction. It is owned exclusively by one adapter run for one source
// unit and becomes immutable once it leaves the normalizer.
type Draft struct {
	ID               string
	TaxID            string
	FirstName        string
	LastName         string
	SecondLastName   string
	FullName         string
	Profession       string
	RegistrationDate string
	Phone            string
	Email            string
	Address          string
	Website          string
	ContactPerson    string
	Description      string
	Categories       []string

	// Raw retains every source row/line verbatim, regardless of how (or
	// whether) it was interpreted.
	Raw []string
}

// HasName reports whether the draft satisfies the minimal-validity check.
func (d *Draft) HasName() bool {
	return d.FirstName != "" || d.LastName != "" || d.FullName != ""
}

// field returns a pointer to the draft field named f, or nil for unknown names.
func (d *Draft) field(f Field) *string {
	switch f {
	case FieldFirstName:
		return &d.FirstName
	case FieldLastName:
		return &d.LastName
	case FieldSecondLastName:
		return &d.SecondLastName
	case FieldFullName:
		return &d.FullName
	case FieldTaxID:
		return &d.TaxID
	case FieldProfession:
		return &d.Profession
	case FieldRegistrationDate:
		return &d.RegistrationDate
	case FieldPhone:
		return &d.Phone
	case FieldEmail:
		return &d.Email
	case FieldAddress:
		return &d.Address
	case FieldWebsite:
		return &d.Website
	case FieldContactPerson:
		return &d.ContactPerson
	case FieldDescription:
		return &d.Description
	}
	return nil
}

// SetIfAbsent applies the "first match wins" rule: the value is stored only
// when the field is still empty and the value is non-blank. Every adapter
// populates drafts through this single helper so field precedence is defined
// once. It reports whether the value was stored.
func (d *Draft) SetIfAbsent(f Field, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	p := d.field(f)
	if p == nil || *p != "" {
		return false
	}
	*p = value
	return true
}

// Keep appends a verbatim source row or line to the draft's provenance trail.
func (d *Draft) Keep(raw string) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	d.Raw = append(d.Raw, raw)
}
