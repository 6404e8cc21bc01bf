// Package phone normalizes free-form Israeli phone numbers into the
// canonical display format used across the dashboard.
package phone

import "strings"

// Unset is the display sentinel for a missing phone number.
const Unset = "אין"

// countryCode is the international calling-code prefix replaced by a
// leading trunk zero.
const countryCode = "972"

// Format normalizes a raw phone string for display.
//
// Empty input, the Unset sentinel, and a lone dash all map to Unset.
// Otherwise every non-digit is stripped, a leading country code is
// replaced with a trunk zero, and a dropped trunk zero is re-inserted
// for bare 9-digit numbers. The first matching grouping rule wins:
//
//	10 digits, "05" prefix  -> 05X-XXXXXXX (mobile)
//	 9 digits, "0" prefix   -> 0X-XXXXXXX  (landline)
//	10 digits, "0" prefix   -> 0XX-XXXXXXX (generic)
//
// When no rule matches, the original input is returned unchanged so
// unrecognized formats are surfaced as-is rather than mangled.
func Format(raw string) string {
	if raw == "" || raw == Unset || raw == "-" {
		return Unset
	}

	digits := digitsOnly(raw)

	if strings.HasPrefix(digits, countryCode) && len(digits) > len(countryCode) {
		digits = "0" + digits[len(countryCode):]
	}

	// Some sources drop the trunk zero; restore it for bare 9-digit numbers.
	if !strings.HasPrefix(digits, "0") && len(digits) == 9 {
		digits = "0" + digits
	}

	switch {
	case len(digits) == 10 && strings.HasPrefix(digits, "05"):
		return digits[:3] + "-" + digits[3:]
	case len(digits) == 9 && strings.HasPrefix(digits, "0") && !strings.HasPrefix(digits, "05"):
		return digits[:2] + "-" + digits[2:]
	case len(digits) == 10 && strings.HasPrefix(digits, "0"):
		return digits[:3] + "-" + digits[3:]
	}

	return raw
}

// digitsOnly strips every non-digit rune from s.
func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
