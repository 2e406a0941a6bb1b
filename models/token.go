// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT issued to an authenticated user.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the Authorization
// header. Claims is the payload that was signed.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the payload embedded into the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenClaims is the payload bound to a bearer token: the identity of the
// user it was issued for plus the standard registered claims (iss, iat, exp).
type TokenClaims struct {
	// ID is the identifier of the user the token was issued for.
	ID string `json:"id"`

	// Username is the login of the user the token was issued for.
	Username string `json:"username"`

	jwt.RegisteredClaims
}
