// Package validation holds the pure field validators shared by the
// lead-capture forms. Each validator takes the raw input and a
// translator for the error text and returns a localized error message,
// or an empty string when the input is acceptable.
package validation

import (
	"regexp"
	"strings"

	"dermalead-api/i18n"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateName requires a trimmed length of at least 3.
func ValidateName(data string, t i18n.Translator) string {
	if len(data) == 0 {
		return t("form.errors.name_required")
	}
	if len(strings.TrimSpace(data)) < 3 {
		return t("form.errors.name_length")
	}
	return ""
}

// ValidateEmail requires a local@domain.tld shaped address.
func ValidateEmail(data string, t i18n.Translator) string {
	if len(data) == 0 {
		return t("form.errors.email_required")
	}
	if !emailRegex.MatchString(data) {
		return t("form.errors.email_invalid")
	}
	return ""
}

// ValidatePhone requires at least 9 characters after trimming.
// Callers should pass input through FilterPhone first.
func ValidatePhone(data string, t i18n.Translator) string {
	if len(data) == 0 {
		return t("form.errors.phone_required")
	}
	if len(strings.TrimSpace(data)) < 9 {
		return t("form.errors.phone_length")
	}
	return ""
}

// ValidateProfession requires a trimmed length of at least 3.
func ValidateProfession(data string, t i18n.Translator) string {
	if len(data) == 0 {
		return t("form.errors.profession_required")
	}
	if len(strings.TrimSpace(data)) < 3 {
		return t("form.errors.profession_length")
	}
	return ""
}

// ValidateID requires at least 9 characters after trimming.
// Callers should pass input through FilterDigits first.
func ValidateID(data string, t i18n.Translator) string {
	if len(data) == 0 {
		return t("form.errors.id_required")
	}
	if len(strings.TrimSpace(data)) < 9 {
		return t("form.errors.id_length")
	}
	return ""
}

// FilterPhone strips everything except digits and a leading plus sign.
func FilterPhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			continue
		}
		if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterDigits strips everything except digits.
func FilterDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
