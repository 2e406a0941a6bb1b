package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bloglist/internal/config"
	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/store"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/internal/validators"
	"github.com/MKhiriev/go-bloglist/models"
)

type idGenerator interface {
	Generate() string
}

// authService implements AuthService on top of the user repository. It
// hashes passwords with bcrypt and delegates token signing to TokenService.
type authService struct {
	userRepository store.UserRepository
	tokenService   TokenService
	idGenerator    idGenerator

	// passwordCost is the bcrypt cost for new password hashes.
	passwordCost int

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		idGenerator:    utils.NewUUIDGenerator(),
		passwordCost:   cfg.PasswordCost,
		logger:         logger,
	}
}

// Register stores a new user with a hashed password. A taken username is
// reported as a *validators.ValidationError that also matches
// store.ErrUsernameTaken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(req.Password, a.passwordCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	user := models.User{
		ID:           a.idGenerator.Generate(),
		Username:     req.Username,
		Name:         req.Name,
		PasswordHash: hash,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrUsernameTaken) {
		return models.User{}, fmt.Errorf("%w: %w", store.ErrUsernameTaken, &validators.ValidationError{
			Model:   "User",
			Field:   "username",
			Message: fmt.Sprintf("Error, expected `username` to be unique. Value: `%s`", req.Username),
		})
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("username", req.Username).Msg("error creating user")
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.Register").Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login checks the credentials and issues a token. Unknown usernames and
// wrong passwords both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error finding user")
		return models.LoginResponse{}, err
	}

	err = utils.ComparePassword(user.PasswordHash, req.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("error comparing password")
		return models.LoginResponse{}, err
	}

	token, err := a.tokenService.Issue(ctx, user)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		Token:    token.SignedString,
		Username: user.Username,
		Name:     user.Name,
	}, nil
}

func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := a.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ListUsers").Msg("error listing users")
		return nil, err
	}
	return users, nil
}
