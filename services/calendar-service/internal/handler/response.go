package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/service"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/helpers"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
)

// errMissing marks a required query parameter that was not sent
var errMissing = errors.New("missing")

// jalaliFields are the request fields that carry Y/m/d Jalali dates
var jalaliFields = map[string]bool{
	"jalali":            true,
	"from":              true,
	"to":                true,
	"installation_date": true,
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, map[string]interface{}{"data": data})
}

// writeFieldError reports a single invalid field in the 422 format
func writeFieldError(w http.ResponseWriter, r *http.Request, fe *service.FieldError) {
	locale := helpers.LocaleFromRequest(r)
	t := helpers.GetLocaleTranslations(locale)

	message := fmt.Sprintf(t.Invalid, fe.Field)
	switch {
	case errors.Is(fe.Err, errMissing):
		message = fmt.Sprintf(t.Required, fe.Field)
	case jalaliFields[fe.Field] &&
		(errors.Is(fe.Err, jalali.ErrUnparsableString) || errors.Is(fe.Err, jalali.ErrInvalidDateComponents)):
		message = fmt.Sprintf(t.JalaliDate, fe.Field)
	}

	helpers.WriteValidationErrorResponseFromMap(w, map[string]string{fe.Field: message}, locale)
}

// writeServiceError maps service errors onto HTTP responses
func writeServiceError(w http.ResponseWriter, r *http.Request, log *logger.Logger, err error) {
	var verrs validator.ValidationErrors
	var fe *service.FieldError

	switch {
	case errors.As(err, &verrs):
		helpers.WriteValidationErrorResponse(w, verrs, helpers.LocaleFromRequest(r))
	case errors.As(err, &fe):
		writeFieldError(w, r, fe)
	case errors.Is(err, service.ErrInstallationNotFound), errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.FromContext(r.Context()).WithError(err).Error("Request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
