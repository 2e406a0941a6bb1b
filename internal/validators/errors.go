package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingBlogData is returned when a blog lacks its title or url.
	ErrMissingBlogData = errors.New("Blog data is missing!")
)

// ValidationError describes a single rejected field. Its message is safe to
// show to API clients.
type ValidationError struct {
	// Model is the entity name used as message prefix ("User"); empty for
	// messages that stand on their own.
	Model string
	// Field is the JSON name of the offending field.
	Field string
	// Message is the human readable rule violation.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Model == "" {
		return e.Message
	}
	return fmt.Sprintf("%s validation failed: %s: %s", e.Model, e.Field, e.Message)
}
