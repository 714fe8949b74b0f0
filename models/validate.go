package models

import (
	"reflect"
	"strings"

	"acs/utils"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the json field names clients actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs tag-based validation and converts the result into
// a ValidationError enumerating every violated field.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &utils.ValidationError{Violations: []utils.FieldViolation{
			{Field: "body", Reason: err.Error()},
		}}
	}

	ve := &utils.ValidationError{}
	for _, fe := range verrs {
		ve.Violations = append(ve.Violations, utils.FieldViolation{
			Field:  fe.Field(),
			Reason: reasonFor(fe),
		})
	}
	return ve
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	default:
		return "failed constraint: " + fe.Tag()
	}
}
