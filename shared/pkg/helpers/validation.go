package helpers

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/jalali"
)

var (
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// CustomValidator wraps go-playground validator with calendar rules
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator with the Jalali calendar rules
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names so errors match request bodies
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("jalali_date", validateJalaliDate)
	v.RegisterValidation("clock", validateClock)
	v.RegisterValidation("hex_color", validateHexColor)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateJalaliDate accepts Y/m/d strings naming a real Jalali day inside the supported range
func validateJalaliDate(fl validator.FieldLevel) bool {
	d, err := jalali.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	_, err = d.Gregorian()
	return err == nil
}

// validateClock accepts HH:mm or HH:mm:ss
func validateClock(fl validator.FieldLevel) bool {
	_, _, _, err := jalali.ParseClock(fl.Field().String())
	return err == nil
}

// validateHexColor accepts #rgb and #rrggbb
func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}
