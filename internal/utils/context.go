// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and
// identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-bloglist/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the raw bearer token extracted from the
// Authorization header is stored.
var TokenCtxKey = contextKey("token")

// UserCtxKey is the key under which the claims of the authenticated user are
// stored once the bearer token has been verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, claims)
var UserCtxKey = contextKey("user")

// GetTokenFromContext retrieves the raw bearer token from the context.
// ok is false when no non-empty token is stored.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenCtxKey).(string)
	return token, ok && token != ""
}

// GetUserFromContext retrieves the authenticated user's claims from the
// context.
//
// Returns the claims and an ok flag:
//   - ok == true  - value is found, has the correct type and a user id
//   - ok == false - value is missing or has an unexpected type
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserFromContext(ctx context.Context) (models.TokenClaims, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.TokenClaims)
	return user, ok && user.ID != ""
}
