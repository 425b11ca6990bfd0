package workflow

import "strings"

// OrderFieldToBackend maps editable order field names to the backend's
// column names for PUT /unified-orders/{id}. A field missing from this table
// is not editable; id and code fields are immutable after creation.
var OrderFieldToBackend = map[string]string{
	"serviceType":         "service_type",
	"translationType":     "translation_type",
	"numberOfPages":       "number_of_pages",
	"languageFrom":        "language_from",
	"languageTo":          "language_to",
	"urgency":             "urgency",
	"specialInstructions": "special_instructions",
}

// ClientFieldToBackend maps editable client-snapshot field names to the
// backend's field names for PUT /clients/{id}/update.
var ClientFieldToBackend = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"company":     "company",
	"phone":       "phone",
	"email":       "email",
	"address":     "address",
	"nationalId":  "national_id",
	"serviceType": "service_type",
}

// digitFields holds the fields whose values must be canonicalized to ASCII
// digits before transmission. Display re-localization is the frontend's job.
var digitFields = map[string]bool{
	"phone":         true,
	"nationalId":    true,
	"numberOfPages": true,
}

func IsDigitField(field string) bool {
	return digitFields[field]
}

// NormalizeDigits folds Arabic-Indic (U+0660..U+0669) and Extended
// Arabic-Indic (U+06F0..U+06F9) digit glyphs to ASCII. Other runes pass
// through unchanged.
func NormalizeDigits(s string) string {
	if s == "" {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x0660 && r <= 0x0669:
			r = '0' + (r - 0x0660)
		case r >= 0x06F0 && r <= 0x06F9:
			r = '0' + (r - 0x06F0)
		}
		b.WriteRune(r)
	}
	return b.String()
}
