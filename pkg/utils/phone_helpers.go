package utils

import "strings"

// NormalizePhoneNumber brings a phone number to the canonical "+<digits>" form:
// everything except digits and '+' is dropped, a leading '+' is added when missing
// and zeros right after the plus are stripped.
func NormalizePhoneNumber(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || r == '+' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return ""
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	return "+" + strings.TrimLeft(cleaned[1:], "0")
}
