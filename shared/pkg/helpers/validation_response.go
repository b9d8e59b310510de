package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// LocaleTranslations holds error message translations for different locales
type LocaleTranslations struct {
	Required   string
	Min        string
	Max        string
	OneOf      string
	JalaliDate string
	Clock      string
	HexColor   string
	Invalid    string
	Generic    string
}

// translations holds locale-specific translations
var translations = map[string]LocaleTranslations{
	"en": {
		Required:   "The %s field is required",
		Min:        "The %s field must be at least %s",
		Max:        "The %s field must not exceed %s characters",
		OneOf:      "The %s field must be one of: %s",
		JalaliDate: "The %s field must be a valid Jalali date (Y/m/d)",
		Clock:      "The %s field must be a valid time (HH:mm)",
		HexColor:   "The %s field must be a hex color such as #1e88e5",
		Invalid:    "The %s field is invalid",
		Generic:    "The given data was invalid",
	},
	"fa": {
		Required:   "فیلد %s الزامی است",
		Min:        "فیلد %s باید حداقل %s باشد",
		Max:        "فیلد %s نباید بیشتر از %s کاراکتر باشد",
		OneOf:      "فیلد %s باید یکی از موارد زیر باشد: %s",
		JalaliDate: "فیلد %s باید یک تاریخ شمسی معتبر باشد",
		Clock:      "فیلد %s باید یک ساعت معتبر باشد",
		HexColor:   "فیلد %s باید یک رنگ هگز معتبر باشد",
		Invalid:    "فیلد %s نامعتبر است",
		Generic:    "اطلاعات وارد شده نامعتبر است",
	},
}

// GetDefaultLocale returns the default locale
func GetDefaultLocale() string {
	return "en"
}

// GetLocaleTranslations returns translations for a given locale, or default locale if not found
func GetLocaleTranslations(locale string) LocaleTranslations {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations[GetDefaultLocale()]
}

// LocaleFromRequest picks "fa" when Accept-Language prefers Persian.
func LocaleFromRequest(r *http.Request) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(r.Header.Get("Accept-Language"))), "fa") {
		return "fa"
	}
	return GetDefaultLocale()
}

// FormatValidationError formats a validator.FieldError into a localized error message
func FormatValidationError(fe validator.FieldError, locale string) string {
	t := GetLocaleTranslations(locale)
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(t.Required, fieldName)
	case "min":
		return fmt.Sprintf(t.Min, fieldName, fe.Param())
	case "max":
		return fmt.Sprintf(t.Max, fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf(t.OneOf, fieldName, fe.Param())
	case "jalali_date":
		return fmt.Sprintf(t.JalaliDate, fieldName)
	case "clock":
		return fmt.Sprintf(t.Clock, fieldName)
	case "hex_color":
		return fmt.Sprintf(t.HexColor, fieldName)
	default:
		return fmt.Sprintf(t.Invalid, fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	return strings.ReplaceAll(strings.ToLower(fe.Field()), "_", " ")
}

// ValidationErrorsToMap renders every field error, keyed by field name
func ValidationErrorsToMap(validationErrors validator.ValidationErrors, locale string) map[string]string {
	errors := make(map[string]string, len(validationErrors))
	for _, err := range validationErrors {
		errors[err.Field()] = FormatValidationError(err, locale)
	}
	return errors
}

// WriteValidationErrorResponse writes a validation error response in the specified format
// It accepts validator.ValidationErrors and formats them according to the locale
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors, locale string) {
	var firstMessage string
	if len(validationErrors) > 0 {
		firstMessage = FormatValidationError(validationErrors[0], locale)
	}

	writeUnprocessable(w, ValidationErrorResponse{
		Message: firstMessage,
		Errors:  ValidationErrorsToMap(validationErrors, locale),
	})
}

// WriteValidationErrorResponseFromMap writes a validation error response from a map of field errors
// This is useful when you have custom validation errors not from go-playground validator
func WriteValidationErrorResponseFromMap(w http.ResponseWriter, fieldErrors map[string]string, locale string) {
	if len(fieldErrors) == 0 {
		writeUnprocessable(w, ValidationErrorResponse{
			Message: GetLocaleTranslations(locale).Generic,
			Errors:  map[string]string{},
		})
		return
	}

	// First field in name order becomes the main message
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	writeUnprocessable(w, ValidationErrorResponse{
		Message: fieldErrors[fields[0]],
		Errors:  fieldErrors,
	})
}

// WriteValidationErrorResponseFromString writes a validation error response from a single error message
func WriteValidationErrorResponseFromString(w http.ResponseWriter, message string, locale string) {
	if message == "" {
		message = GetLocaleTranslations(locale).Generic
	}

	writeUnprocessable(w, ValidationErrorResponse{
		Message: message,
		Errors:  make(map[string]string),
	})
}

func writeUnprocessable(w http.ResponseWriter, response ValidationErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
