package validators

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by UserValidator.Validate.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

var userFields = map[string]string{
	FieldUsername: "Username",
	FieldPassword: "Password",
}

// UserValidator checks registration and login payloads.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	return &UserValidator{validate: newStructValidator()}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, &value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, &value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegister(ctx context.Context, req *models.RegisterRequest, fields ...string) error {
	partial, err := structFields(userFields, fields)
	if err != nil {
		return err
	}

	fieldErr, err := run(ctx, v.validate, req, partial)
	if err != nil || fieldErr == nil {
		return err
	}

	switch fieldErr.Field() {
	case FieldUsername:
		if fieldErr.Tag() == "required" {
			return &ValidationError{Model: "User", Field: FieldUsername, Message: "Path `username` is required."}
		}
		return &ValidationError{Model: "User", Field: FieldUsername, Message: "Username must be at least 3 characters long!"}
	case FieldPassword:
		return &ValidationError{Field: FieldPassword, Message: "Password must be at least 3 characters long!"}
	default:
		return &ValidationError{Model: "User", Field: fieldErr.Field(), Message: fieldErr.Error()}
	}
}

func (v *UserValidator) validateLogin(ctx context.Context, req *models.LoginRequest, fields ...string) error {
	partial, err := structFields(userFields, fields)
	if err != nil {
		return err
	}

	fieldErr, err := run(ctx, v.validate, req, partial)
	if err != nil || fieldErr == nil {
		return err
	}

	return &ValidationError{Field: fieldErr.Field(), Message: "username and password are required"}
}
