package util

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var upperCase = regexp.MustCompile(`[A-Z]`)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return upperCase.MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

func ValidateStruct(s interface{}) []*ErrorResponse {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []*ErrorResponse{{Msg: err.Error()}}
	}

	var out []*ErrorResponse
	for _, fe := range validationErrors {
		element := ErrorResponse{Field: fe.Field(), Tag: fe.Tag()}

		switch fe.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Kolom '%s' wajib diisi.", element.Field)
		case "min":
			element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki minimal %s karakter/nilai.", element.Field, fe.Param())
		case "max":
			element.Msg = fmt.Sprintf("Kolom '%s' harus memiliki maksimal %s karakter/nilai.", element.Field, fe.Param())
		case "email":
			element.Msg = "Format email tidak valid."
		case "hasuppercase":
			element.Msg = "Password harus mengandung setidaknya satu huruf kapital."
		case "datetime":
			element.Msg = fmt.Sprintf("Kolom '%s' harus berformat %s.", element.Field, fe.Param())
		case "uuid":
			element.Msg = fmt.Sprintf("Kolom '%s' harus berupa UUID yang valid.", element.Field)
		case "oneof":
			element.Msg = fmt.Sprintf("Kolom '%s' harus salah satu dari: %s.", element.Field, fe.Param())
		default:
			element.Msg = fmt.Sprintf("Kolom '%s' gagal validasi untuk tag '%s'.", element.Field, element.Tag)
		}
		out = append(out, &element)
	}
	return out
}
