package validators

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newStructValidator returns a validator.Validate that reports JSON field
// names and knows the "notblank" tag.
func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration cannot fail for a non-empty tag and a non-nil func.
	_ = v.RegisterValidation("notblank", notBlank)

	return v
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// structFields maps the scoped field names of Validate onto the Go field
// names StructPartialCtx expects. Unknown names yield ErrUnknownField.
func structFields(known map[string]string, fields []string) ([]string, error) {
	if len(fields) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(fields))
	for _, f := range fields {
		structField, ok := known[f]
		if !ok {
			return nil, ErrUnknownField
		}
		names = append(names, structField)
	}
	return names, nil
}

// run validates obj (or only the listed struct fields) and returns the first
// violation, if any.
func run(ctx context.Context, v *validator.Validate, obj any, partial []string) (validator.FieldError, error) {
	var err error
	if len(partial) == 0 {
		err = v.StructCtx(ctx, obj)
	} else {
		err = v.StructPartialCtx(ctx, obj, partial...)
	}
	if err == nil {
		return nil, nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldErrs[0], nil
	}
	return nil, err
}
