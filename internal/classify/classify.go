// Package classify decides which semantic category a raw field or line value
// most likely represents. Classification is an ordered policy table evaluated
// first-match-wins: the ordering is load-bearing because several shapes
// overlap (a tax ID and a plain numeric ID are both digit-heavy).
package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Class is the semantic category assigned to a raw value.
type Class string

const (
	Empty              Class = "empty"
	NumericID          Class = "numeric_id"
	TaxID              Class = "tax_id"
	PersonOrEntityName Class = "name"
	Phone              Class = "phone"
	Email              Class = "email"
	Address            Class = "address"
	Website            Class = "website"
	Unclassified       Class = "unclassified"
)

// Chilean RUT: 1-2 leading digits, two dot-separated thousands groups,
// a hyphen, and a check digit or K.
var taxIDRe = regexp.MustCompile(`^\d{1,2}\.\d{3}\.\d{3}-[\dkK]$`)

var numericRe = regexp.MustCompile(`^\d+$`)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Chilean mobile/landline, optional +56 country code, separators allowed.
var phoneRe = regexp.MustCompile(`^\+?(56)?[\s.\-]?\(?\d{1,2}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{4}$`)

var websiteRe = regexp.MustCompile(`^(https?://|www\.)\S+$|^[a-z0-9][a-z0-9.\-]*\.[a-z]{2,}(/\S*)?$`)

// Postal-code-like run (Chilean codes are 7 digits) or a unit-number marker.
var postalRe = regexp.MustCompile(`\b\d{6,7}\b`)
var unitMarkerRe = regexp.MustCompile(`(?i)\b(depto|dpto|of|oficina|casa|local|block|bodega)\.?\s*(n°|nº|#)?\s*\d+`)

var addressKeywords = []string{
	"avenida", "av.", "av ", "calle", "pasaje", "psje", "camino", "ruta",
	"carretera", "callejón", "callejon", "alameda", "costanera",
}

// Scanning variants anchored to word boundaries, used to pull matches out of
// the middle of free-text lines.
var taxIDScanRe = regexp.MustCompile(`\b\d{1,2}\.\d{3}\.\d{3}-[\dkK]\b`)
var emailScanRe = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
var phoneScanRe = regexp.MustCompile(`\+?(56)?[\s.\-]?\(?\d{1,2}\)?[\s.\-]?\d{3,4}[\s.\-]?\d{4}`)
var websiteScanRe = regexp.MustCompile(`(https?://|www\.)\S+|\b[a-z0-9][a-z0-9.\-]*\.(cl|com|net|org)\b`)

// rule is one entry of the ordered classification policy.
type rule struct {
	class Class
	match func(string) bool
}

// rules is the ordered classification policy. New locales or formats
// extend this table; control flow never changes.
var rules = []rule{
	{TaxID, taxIDRe.MatchString},
	{NumericID, numericRe.MatchString},
	{Email, emailRe.MatchString},
	{Phone, phoneRe.MatchString},
	{Address, looksLikeAddress},
	{Website, websiteRe.MatchString},
	{PersonOrEntityName, looksLikeName},
}

// Classify assigns the most likely semantic category to one raw value.
// It is pure and total: it never errors and unknown shapes degrade to
// Unclassified (descriptive free text).
func Classify(value string) Class {
	v := strings.TrimSpace(value)
	if v == "" {
		return Empty
	}
	for _, r := range rules {
		if r.match(v) {
			return r.class
		}
	}
	return Unclassified
}

// IsTaxID reports whether s is a well-formed tax identifier. The deduplicator
// uses this to decide whether the tax ID can serve as an identity key.
func IsTaxID(s string) bool {
	return taxIDRe.MatchString(strings.TrimSpace(s))
}

// FindTaxID returns the first tax-ID-shaped substring of line, or "".
func FindTaxID(line string) string {
	return taxIDScanRe.FindString(line)
}

// FindEmail returns the first email-shaped substring of line, or "".
func FindEmail(line string) string {
	return emailScanRe.FindString(line)
}

// FindPhone returns the first phone-shaped substring of line, or "".
func FindPhone(line string) string {
	return strings.TrimSpace(phoneScanRe.FindString(line))
}

// FindWebsite returns the first URL- or domain-shaped substring of line, or "".
func FindWebsite(line string) string {
	return websiteScanRe.FindString(line)
}

// looksLikeAddress reports whether v contains an address-indicating keyword,
// a postal-code-like digit run, or a unit-number marker, and has a plausible
// street-line length.
func looksLikeAddress(v string) bool {
	if len(v) < 8 || len(v) > 120 {
		return false
	}
	lower := strings.ToLower(v)
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return postalRe.MatchString(v) || unitMarkerRe.MatchString(v)
}

// LooksLikeAddressLine is the scanning variant for whole free-text lines.
func LooksLikeAddressLine(line string) bool {
	return looksLikeAddress(strings.TrimSpace(line))
}

// looksLikeName: starts with an uppercase letter and contains only letters
// and spaces (accented letters included) after trimming, length > 1.
func looksLikeName(v string) bool {
	runes := []rune(v)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}
