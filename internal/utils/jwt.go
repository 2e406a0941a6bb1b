package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bloglist/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every verification failure except expiry:
	// malformed strings, bad signatures, foreign issuers, unexpected algorithms.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for well-formed tokens past their exp claim.
	ErrExpiredToken = errors.New("token expired")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token carrying claims.
//
// The registered claims of the payload are overwritten:
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if issuer or signKey is empty or tokenDuration is zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-bloglist", claims, time.Hour, "secret")
func GenerateJWTToken(issuer string, claims models.TokenClaims, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes the HS256 signature, the issuer and the expiration.
// Failures are reported as ErrExpiredToken or ErrInvalidToken, each wrapping
// the underlying jwt error. A token that verifies but carries no user id is
// returned as is; deciding what that means is up to the caller.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, fmt.Errorf("%w: %w", ErrExpiredToken, err)
	}
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}
