package validators

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by BlogValidator.Validate.
const (
	FieldTitle  = "title"
	FieldURL    = "url"
	FieldAuthor = "author"
	FieldLikes  = "likes"
)

var blogFields = map[string]string{
	FieldTitle:  "Title",
	FieldURL:    "URL",
	FieldAuthor: "Author",
	FieldLikes:  "Likes",
}

// BlogValidator checks blog creation and update payloads.
//
// A missing or blank title or url is reported as ErrMissingBlogData, any
// other violation as *ValidationError.
type BlogValidator struct {
	validate *validator.Validate
}

func NewBlogValidator() Validator {
	return &BlogValidator{validate: newStructValidator()}
}

func (v *BlogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateBlogRequest:
		return v.validateStruct(ctx, &value, fields...)
	case *models.CreateBlogRequest:
		return v.validateStruct(ctx, value, fields...)

	case models.BlogUpdate:
		return v.validateStruct(ctx, &value, fields...)
	case *models.BlogUpdate:
		return v.validateStruct(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BlogValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	partial, err := structFields(blogFields, fields)
	if err != nil {
		return err
	}

	fieldErr, err := run(ctx, v.validate, obj, partial)
	if err != nil || fieldErr == nil {
		return err
	}

	switch fieldErr.Field() {
	case FieldTitle, FieldURL:
		return ErrMissingBlogData
	default:
		return &ValidationError{Model: "Blog", Field: fieldErr.Field(), Message: fieldErr.Error()}
	}
}
