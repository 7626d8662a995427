// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification and session resolution using a
// UserRepository for persistence, bcrypt for password hashing and HS256 JWTs
// as session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt cost used at signup.
	passwordHashCost int

	ids *utils.UUIDGenerator
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewRequestValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		ids:              utils.NewUUIDGenerator(),
		now:              time.Now,
		logger:           logger,
	}
}

// Signup creates a new user account.
//
// The request is validated first (username, email, password in that order).
// Username and email are then checked for uniqueness with one combined
// lookup that also compares each against the other column, since login
// accepts either. The UNIQUE constraints of the users table catch a concurrent
// signup that slipped past the check; both paths report the same
// BAD_USER_INPUT error naming the colliding field.
//
// The returned user never carries the password hash.
func (a *authService) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, app.InvalidInput(err.Error(), err)
	}

	username := strings.TrimSpace(request.Username)
	email := strings.ToLower(strings.TrimSpace(request.Email))

	existing, err := a.userRepository.FindUserByUsernameOrEmail(ctx, username, email)
	switch {
	case err == nil:
		if existing.Username == username || existing.Email == strings.ToLower(username) {
			return models.User{}, app.InvalidInput(app.MsgUsernameAlreadyExists, store.ErrUsernameAlreadyExists)
		}
		return models.User{}, app.InvalidInput(app.MsgEmailAlreadyExists, store.ErrEmailAlreadyExists)
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("func", "*authService.Signup").Msg("uniqueness check failed")
		return models.User{}, app.Internal(err)
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.User{}, app.InvalidInput(validators.ErrPasswordTooLong.Error(), err)
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, app.Internal(err)
	}

	now := a.now().UTC()
	created, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.ids.Generate(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.User{}, app.InvalidInput(app.MsgUsernameAlreadyExists, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.User{}, app.InvalidInput(app.MsgEmailAlreadyExists, err)
	case err != nil:
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, app.Internal(err)
	}

	created.PasswordHash = ""
	log.Info().Str("user_id", created.UserID).Msg("user signed up")
	return created, nil
}

// Login is the credential verifier. The identifier is matched against
// username or email in a single lookup.
//
// An unknown identifier and a wrong password are both UNAUTHENTICATED; only
// the message tells them apart. On success a session token is issued for
// the user.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthPayload, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.AuthPayload{}, app.InvalidInput(err.Error(), err)
	}

	user, err := a.userRepository.FindUserByLogin(ctx, strings.TrimSpace(credentials.Identifier))
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.AuthPayload{}, app.Unauthenticated(app.MsgUserNotFound)
	case err != nil:
		log.Err(err).Str("func", "*authService.Login").Msg("user search by login failed")
		return models.AuthPayload{}, app.Internal(err)
	}

	if err = utils.CheckPassword(user.PasswordHash, credentials.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "*authService.Login").Str("user_id", user.UserID).Msg("stored password hash is unusable")
		}
		return models.AuthPayload{}, app.Unauthenticated(app.MsgIncorrectPassword)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		return models.AuthPayload{}, app.Internal(err)
	}

	user.PasswordHash = ""
	return models.AuthPayload{Token: token.String(), User: user}, nil
}

// Resolve is the session resolver.
//
// A missing or malformed header, a token that fails verification (bad
// signature, wrong issuer, expired) and a subject that no longer exists all
// yield an anonymous context. Rejection is left to the authorization gate of
// operations that require a principal.
func (a *authService) Resolve(ctx context.Context, authorizationHeader string) models.AuthContext {
	log := logger.FromContext(ctx)

	if authorizationHeader == "" {
		return models.Anonymous()
	}

	rawToken, err := utils.ParseBearerToken(authorizationHeader)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring malformed authorization header")
		return models.Anonymous()
	}

	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("ignoring invalid session token")
		return models.Anonymous()
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Debug().Err(err).Str("user_id", token.UserID).Msg("session token subject could not be loaded")
		return models.Anonymous()
	}

	user.PasswordHash = ""
	return models.Authenticated(user)
}
