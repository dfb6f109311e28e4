// Package validation wraps go-playground/validator to turn struct tag
// checks into the application's own error type.
//
// WHY A WRAPPER?
// The validator library reports errors against Go field names ("FirstName")
// and in its own error type. API clients know fields by their JSON names
// ("firstName") and our handlers know errors by apperror sentinels. This
// package does both translations in one place so services just call
// validation.Struct(input).
//
// Validation here is purely syntactic — presence, length, numeric range.
// Business rules (moderation state, id existence) belong to the service
// and repository layers.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/athletemind/backend/internal/apperror"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// instance returns the process-wide validator, configured to report field
// names from json tags. validator.Validate caches struct metadata, so one
// shared instance is both safe and faster than creating one per call.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. On failure it returns an
// *apperror.AppError carrying one FieldError per offending field; the
// message parameter becomes the top-level error message.
func Struct(v interface{}, message string) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError — v wasn't a struct. Programmer error.
		return fmt.Errorf("validation: %w", err)
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		})
	}
	return apperror.InvalidPayload(message, fields)
}

// fieldMessage renders a stable, human-friendly message for a failed tag.
// Only the tags this API actually uses get bespoke wording; anything else
// falls through to a generic message rather than leaking validator syntax.
func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	default:
		return "is invalid"
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
