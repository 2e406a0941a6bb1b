package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/models"
)

// tokenService signs HS256 tokens carrying the user's id and username.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the token settings in cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Issue signs a token for user. The user must already have an id.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	if user.ID == "" {
		return models.Token{}, fmt.Errorf("%w: user has no id", ErrTokenCreationFailed)
	}

	claims := models.TokenClaims{ID: user.ID, Username: user.Username}
	token, err := utils.GenerateJWTToken(s.tokenIssuer, claims, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Str("user_id", user.ID).Msg("error signing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify validates raw and extracts its claims.
//
// Expired tokens yield ErrTokenExpired, every other verification failure
// ErrInvalidToken. A valid token without a user id yields
// ErrTokenWithoutUser.
func (s *tokenService) Verify(ctx context.Context, raw string) (models.TokenClaims, error) {
	token, err := utils.ValidateAndParseJWTToken(raw, s.tokenSignKey, s.tokenIssuer)
	if errors.Is(err, utils.ErrExpiredToken) {
		return models.TokenClaims{}, ErrTokenExpired
	}
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.TokenClaims{}, ErrInvalidToken
	}

	if token.Claims.ID == "" {
		return models.TokenClaims{}, ErrTokenWithoutUser
	}

	return token.Claims, nil
}
