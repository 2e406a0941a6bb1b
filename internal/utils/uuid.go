package utils

import (
	"errors"

	"github.com/google/uuid"
)

// ErrMalformedID is returned by ParseID for strings that are not UUIDs.
var ErrMalformedID = errors.New("malformatted id")

// UUIDGenerator produces time-ordered (v7) identifiers for new records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ParseID normalizes a client-supplied identifier. Anything that is not a
// UUID yields ErrMalformedID.
func ParseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrMalformedID
	}

	return parsed.String(), nil
}
