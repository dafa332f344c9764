package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"dermalead-api/i18n"
)

// identity translator: the returned message is the key itself, which
// keeps assertions locale independent.
func key(k string) string { return k }

func TestValidateName(t *testing.T) {
	assert.Equal(t, "form.errors.name_required", ValidateName("", key))
	assert.Equal(t, "form.errors.name_length", ValidateName("ab", key))
	assert.Equal(t, "form.errors.name_length", ValidateName("  a  ", key))
	assert.Equal(t, "", ValidateName("Aaron Smith", key))
	assert.Equal(t, "", ValidateName("abc", key))
}

func TestValidateEmail(t *testing.T) {
	assert.Equal(t, "form.errors.email_required", ValidateEmail("", key))

	for _, bad := range []string{"plain", "a@b", "a b@c.com", "a@b c.com", "@example.com"} {
		assert.Equal(t, "form.errors.email_invalid", ValidateEmail(bad, key), bad)
	}
	for _, good := range []string{"user@example.com", "first.last@mail.co.il", "x@y.dev"} {
		assert.Equal(t, "", ValidateEmail(good, key), good)
	}
}

func TestValidatePhone(t *testing.T) {
	assert.Equal(t, "form.errors.phone_required", ValidatePhone("", key))
	assert.Equal(t, "form.errors.phone_length", ValidatePhone("12345678", key))
	assert.Equal(t, "", ValidatePhone("586412924", key))
	assert.Equal(t, "", ValidatePhone("+972586412924", key))
}

func TestValidateProfession(t *testing.T) {
	assert.Equal(t, "form.errors.profession_required", ValidateProfession("", key))
	assert.Equal(t, "form.errors.profession_length", ValidateProfession("dr", key))
	assert.Equal(t, "", ValidateProfession("cosmetologist", key))
}

func TestValidateID(t *testing.T) {
	assert.Equal(t, "form.errors.id_required", ValidateID("", key))
	assert.Equal(t, "form.errors.id_length", ValidateID("12345678", key))
	assert.Equal(t, "", ValidateID("123456789", key))
}

func TestFilterPhone(t *testing.T) {
	assert.Equal(t, "+972586412924", FilterPhone("+972 (58) 641-29-24"))
	assert.Equal(t, "586412924", FilterPhone("586 412 924"))
	assert.Equal(t, "0541234567", FilterPhone("054-123-4567"))
}

func TestFilterDigits(t *testing.T) {
	assert.Equal(t, "123456789", FilterDigits("12-345-6789"))
	assert.Equal(t, "", FilterDigits("abc"))
}

// Any input shorter than the minimum, once trimmed, must yield an error;
// anything at or above it must pass.
func TestNameLengthProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-zA-Z ]{0,10}`).Draw(t, "name")
		got := ValidateName(s, key)
		switch {
		case len(s) == 0:
			if got != "form.errors.name_required" {
				t.Fatalf("empty input: got %q", got)
			}
		case len(strings.TrimSpace(s)) < 3:
			if got != "form.errors.name_length" {
				t.Fatalf("short input %q: got %q", s, got)
			}
		default:
			if got != "" {
				t.Fatalf("valid input %q: got %q", s, got)
			}
		}
	})
}

// FilterDigits output always validates cleanly as an ID when it has at
// least 9 digits, regardless of the noise around them.
func TestFilterDigitsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		digits := rapid.StringMatching(`[0-9]{9,12}`).Draw(t, "digits")
		noise := rapid.StringMatching(`[ ()+-]{0,5}`).Draw(t, "noise")
		filtered := FilterDigits(noise + digits)
		if got := ValidateID(filtered, key); got != "" {
			t.Fatalf("expected valid ID from %q, got %q", noise+digits, got)
		}
	})
}

func TestTranslatedMessages(t *testing.T) {
	he := i18n.Lookup("he")
	assert.NotEqual(t, "form.errors.name_required", ValidateName("", he))

	// unknown locale falls back to English
	en := i18n.Lookup("fr")
	assert.Equal(t, "Name is required", ValidateName("", en))
}
