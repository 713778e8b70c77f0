// Package phone normalizes the phone numbers typed into tenant records.
package phone

import (
	"strings"
	"unicode"
)

// DefaultCountryCode is prepended to bare 9-digit local numbers.
const DefaultCountryCode = "+51"

// Normalize strips whitespace; a 9-character number without a leading "+" is
// treated as a Peruvian mobile number. Anything else is returned unchanged.
func Normalize(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if len([]rune(clean)) == 9 && !strings.HasPrefix(clean, "+") {
		return DefaultCountryCode + clean
	}
	return clean
}

// WhatsAppLink builds the click-to-chat link shown in the tenant portal.
func WhatsAppLink(raw string) string {
	n := strings.TrimPrefix(Normalize(raw), "+")
	if n == "" {
		return ""
	}
	return "https://wa.me/" + n
}
