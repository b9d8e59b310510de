package helpers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Date  string `json:"installation_date" validate:"required,jalali_date"`
	Time  string `json:"time" validate:"omitempty,clock"`
	Color string `json:"color" validate:"omitempty,hex_color"`
}

func TestCustomValidator_Rules(t *testing.T) {
	v := NewCustomValidator()

	valid := []bookingForm{
		{Date: "1403/09/15"},
		{Date: "۱۴۰۳/۱۲/۳۰", Time: "۰۹:۳۰"},
		{Date: "1300/01/01", Time: "23:59:59", Color: "#1E88E5"},
		{Date: "1500/12/29", Color: "#fff"},
	}
	for _, f := range valid {
		assert.NoError(t, v.Validate(f), "%+v", f)
	}

	invalid := map[string]bookingForm{
		"installation_date": {Date: "1402/12/30"},
		"time":              {Date: "1403/09/15", Time: "25:00"},
		"color":             {Date: "1403/09/15", Color: "blue"},
	}
	for field, f := range invalid {
		err := v.Validate(f)
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs), field)
		require.Len(t, verrs, 1, field)
		assert.Equal(t, field, verrs[0].Field())
	}

	assert.Error(t, v.Validate(bookingForm{Date: "1299/12/29"}), "outside supported range")
	assert.Error(t, v.Validate(bookingForm{}), "required")
}

func TestFormatValidationError_Locales(t *testing.T) {
	v := NewCustomValidator()
	err := v.Validate(bookingForm{Date: "bad", Color: "red"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	en := ValidationErrorsToMap(verrs, "en")
	assert.Equal(t, "The installation date field must be a valid Jalali date (Y/m/d)", en["installation_date"])
	assert.Equal(t, "The color field must be a hex color such as #1e88e5", en["color"])

	fa := ValidationErrorsToMap(verrs, "fa")
	assert.Equal(t, "فیلد installation date باید یک تاریخ شمسی معتبر باشد", fa["installation_date"])

	assert.Equal(t, en, ValidationErrorsToMap(verrs, "de"), "unknown locale falls back to en")
}

func TestWriteValidationErrorResponse(t *testing.T) {
	err := NewCustomValidator().Validate(bookingForm{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	rec := httptest.NewRecorder()
	WriteValidationErrorResponse(rec, verrs, "en")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "The installation date field is required", body.Message)
	assert.Equal(t, body.Message, body.Errors["installation_date"])
}

func TestWriteValidationErrorResponseFromMap(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationErrorResponseFromMap(rec, map[string]string{"to": "bad to", "from": "bad from"}, "en")

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "bad from", body.Message)
	assert.Len(t, body.Errors, 2)

	rec = httptest.NewRecorder()
	WriteValidationErrorResponseFromMap(rec, nil, "fa")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "اطلاعات وارد شده نامعتبر است", body.Message)
}

func TestWriteValidationErrorResponseFromString(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteValidationErrorResponseFromString(rec, "", "en")

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "The given data was invalid", body.Message)
	assert.Empty(t, body.Errors)
}

func TestLocaleFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "en", LocaleFromRequest(r))

	r.Header.Set("Accept-Language", "fa-IR,fa;q=0.9,en;q=0.8")
	assert.Equal(t, "fa", LocaleFromRequest(r))

	r.Header.Set("Accept-Language", "en-US")
	assert.Equal(t, "en", LocaleFromRequest(r))
}
