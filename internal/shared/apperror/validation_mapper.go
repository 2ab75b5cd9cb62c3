package apperror

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// created_by_user -> created by user
	s = strings.ReplaceAll(s, "_", " ")

	caser := cases.Title(language.English, cases.NoLower)
	return caser.String(s)
}

// InvalidJSONField reports a body field whose JSON type did not match, named like
// validator errors.
func InvalidJSONField(field string) *AppError {
	return InvalidField(formatFieldName(field))
}

func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		// first failing field only
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		case "max":
			if e.Kind() == reflect.String {
				return FieldTooLong(humanReadableField, e.Param())
			}
			return FieldOutOfRange(humanReadableField)
		case "min", "gte", "lte":
			return FieldOutOfRange(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return ErrInvalidInput
}
