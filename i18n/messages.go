// Package i18n maps message keys to user-facing text per site locale.
package i18n

import "dermalead-api/models"

// Translator resolves a message key to localized text.
type Translator func(key string) string

var messages = map[string]map[string]string{
	models.LocaleEN: {
		"form.errors.name_required":       "Name is required",
		"form.errors.name_length":         "Name must be at least 3 characters",
		"form.errors.email_required":      "Email is required",
		"form.errors.email_invalid":       "Email address is invalid",
		"form.errors.phone_required":      "Phone number is required",
		"form.errors.phone_length":        "Phone number must be at least 9 digits",
		"form.errors.profession_required": "Profession is required",
		"form.errors.profession_length":   "Profession must be at least 3 characters",
		"form.errors.id_required":         "ID number is required",
		"form.errors.id_length":           "ID number must be at least 9 digits",
		"forms.validationError":           "Please fill in all fields correctly",
		"forms.error":                     "Something went wrong, please try again",
		"forms.duplicate":                 "Your request is already being processed",
		"forms.processingPayment":         "Redirecting to secure payment...",
	},
	models.LocaleHE: {
		"form.errors.name_required":       "נדרש שם",
		"form.errors.name_length":         "השם חייב להכיל לפחות 3 תווים",
		"form.errors.email_required":      "נדרש אימייל",
		"form.errors.email_invalid":       "כתובת האימייל אינה תקינה",
		"form.errors.phone_required":      "נדרש מספר טלפון",
		"form.errors.phone_length":        "מספר הטלפון חייב להכיל לפחות 9 ספרות",
		"form.errors.profession_required": "נדרש מקצוע",
		"form.errors.profession_length":   "המקצוע חייב להכיל לפחות 3 תווים",
		"form.errors.id_required":         "נדרש מספר תעודת זהות",
		"form.errors.id_length":           "מספר תעודת הזהות חייב להכיל לפחות 9 ספרות",
		"forms.validationError":           "נא למלא את כל השדות כראוי",
		"forms.error":                     "משהו השתבש, נסו שוב",
		"forms.duplicate":                 "הבקשה שלכם כבר בטיפול",
		"forms.processingPayment":         "מעבירים לתשלום מאובטח...",
	},
	models.LocaleRU: {
		"form.errors.name_required":       "Укажите имя",
		"form.errors.name_length":         "Имя должно содержать не менее 3 символов",
		"form.errors.email_required":      "Укажите email",
		"form.errors.email_invalid":       "Некорректный адрес email",
		"form.errors.phone_required":      "Укажите номер телефона",
		"form.errors.phone_length":        "Номер телефона должен содержать не менее 9 цифр",
		"form.errors.profession_required": "Укажите профессию",
		"form.errors.profession_length":   "Профессия должна содержать не менее 3 символов",
		"form.errors.id_required":         "Укажите номер удостоверения",
		"form.errors.id_length":           "Номер удостоверения должен содержать не менее 9 цифр",
		"forms.validationError":           "Пожалуйста, заполните все поля корректно",
		"forms.error":                     "Что-то пошло не так, попробуйте ещё раз",
		"forms.duplicate":                 "Ваша заявка уже обрабатывается",
		"forms.processingPayment":         "Переходим к безопасной оплате...",
	},
}

// Lookup returns a Translator for the given locale, falling back to
// English for unknown locales and to the key itself for unknown keys.
func Lookup(locale string) Translator {
	table, ok := messages[locale]
	if !ok {
		table = messages[models.LocaleEN]
	}
	return func(key string) string {
		if msg, ok := table[key]; ok {
			return msg
		}
		if msg, ok := messages[models.LocaleEN][key]; ok {
			return msg
		}
		return key
	}
}

// NormalizeLocale maps an arbitrary lang value to a supported locale.
func NormalizeLocale(lang string) string {
	switch lang {
	case models.LocaleHE, models.LocaleRU, models.LocaleEN:
		return lang
	default:
		return models.LocaleEN
	}
}
