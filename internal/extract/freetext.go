package extract

import (
	"fmt"
	"regexp"
	"strings"

	"faena/internal/classify"
	"faena/internal/domain"
	"faena/internal/port"
)

// Legal-entity suffixes that mark a heading line ("Constructora Acme Ltda").
var legalSuffixRe = regexp.MustCompile(`(?i)\b(ltda\.?|limitada|s\.?\s?a\.?|spa|e\.?i\.?r\.?l\.?|y\s+c[ií]a\.?)$`)

// Leading index number ("12." / "12)" / "12 -") followed by the rest of the line.
var indexHeadingRe = regexp.MustCompile(`^(\d{1,3})\s*[.)\-]?\s+(.+)$`)

// Short "Firstname Lastname [Middlename]" shape used for contact people.
var contactPersonRe = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+(\s+[A-ZÁÉÍÓÚÑÜ][a-záéíóúñü]+){1,2}$`)

// Capitalized run: uppercase letters, spaces, and light punctuation only.
var upperRunRe = regexp.MustCompile(`^[A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜ\s.&'\-]+$`)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 200
)

// FreeTextAdapter extracts drafts from line-oriented text, typically the
// output of a document-text extractor run over a scanned or selectable PDF.
type FreeTextAdapter struct {
	text port.TextExtractor
}

// NewFreeTextAdapter creates a FreeTextAdapter reading text through t.
func NewFreeTextAdapter(t port.TextExtractor) *FreeTextAdapter {
	return &FreeTextAdapter{text: t}
}

func (a *FreeTextAdapter) Extract(unit domain.SourceUnit) ([]*Draft, error) {
	text, err := a.text.Text(unit.Name, unit.Content)
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", unit.Name, err)
	}

	acc := NewAccumulator()
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name, taxID, ok := heading(line); ok {
			d := &Draft{FullName: name, TaxID: taxID}
			acc.Start(d)
			d.Keep(line)
			continue
		}

		acc.Keep(line)
		if acc.Current() != nil {
			scanLine(acc, line)
		}
	}
	acc.Flush()
	return acc.Drafts(), nil
}

// heading reports whether line starts a new provider record and, if so, the
// entity name (and tax ID, when the heading carries one).
func heading(line string) (name, taxID string, ok bool) {
	// Entity name ending in a legal suffix.
	if len(line) >= 10 && legalSuffixRe.MatchString(line) && startsUpper(line) {
		return line, "", true
	}

	// Leading tax ID followed by a name-like run.
	if tid := classify.FindTaxID(line); tid != "" && strings.HasPrefix(line, tid) {
		rest := strings.TrimLeft(strings.TrimPrefix(line, tid), " \t-–:")
		if classify.Classify(rest) == classify.PersonOrEntityName {
			return rest, tid, true
		}
		return "", "", false
	}

	// Leading index number followed by a name-like run.
	if m := indexHeadingRe.FindStringSubmatch(line); m != nil {
		if classify.Classify(m[2]) == classify.PersonOrEntityName {
			return m[2], "", true
		}
		return "", "", false
	}

	// Long capitalized run with no digits.
	if len(line) >= 12 && strings.Contains(line, " ") && upperRunRe.MatchString(line) {
		return line, "", true
	}

	return "", "", false
}

// scanLine scans one body line for field candidates in fixed order, claiming
// matched text so later scans never reinterpret it. Whatever survives the
// scans, if of plausible length, becomes the description.
func scanLine(acc *Accumulator, line string) {
	work := line

	if tid := classify.FindTaxID(work); tid != "" {
		acc.Field(FieldTaxID, tid)
		work = claim(work, tid)
	}
	if email := classify.FindEmail(work); email != "" {
		acc.Field(FieldEmail, email)
		work = claim(work, email)
	}
	if phone := classify.FindPhone(work); phone != "" {
		acc.Field(FieldPhone, phone)
		work = claim(work, phone)
	}

	rest := strings.TrimSpace(work)
	if rest == "" {
		return
	}

	if classify.LooksLikeAddressLine(rest) {
		acc.Field(FieldAddress, rest)
		return
	}
	if site := classify.FindWebsite(rest); site != "" {
		acc.Field(FieldWebsite, site)
		return
	}
	if contactPersonRe.MatchString(rest) && !isOwnName(acc.Current(), rest) {
		acc.Field(FieldContactPerson, rest)
		return
	}
	if len(rest) >= minDescriptionLen && len(rest) <= maxDescriptionLen {
		acc.Field(FieldDescription, rest)
	}
}

// claim removes matched text from the working copy of a line.
func claim(work, matched string) string {
	return strings.Replace(work, matched, " ", 1)
}

func isOwnName(d *Draft, candidate string) bool {
	return d != nil && strings.EqualFold(strings.TrimSpace(d.FullName), candidate)
}

func startsUpper(s string) bool {
	for _, r := range s {
		return r >= 'A' && r <= 'Z' || strings.ContainsRune("ÁÉÍÓÚÑÜ", r)
	}
	return false
}
