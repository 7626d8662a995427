// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/config"
	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/internal/mock"
	"github.com/MKhiriev/go-staff-keeper/internal/store"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/internal/validators"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "test-issuer"
)

// newTestAuthSvc creates an authService backed by a mocked UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	cfg := config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    7 * 24 * time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}

	svc := NewAuthService(repo, cfg, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().FindUserByUsernameOrEmail(ctx, "alice", "a@x.com").Return(models.User{}, store.ErrUserNotFound),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEmpty(t, u.UserID)
				assert.Equal(t, "alice", u.Username)
				assert.Equal(t, "a@x.com", u.Email)
				assert.NoError(t, utils.CheckPassword(u.PasswordHash, "secret1"), "password must be stored as a verifiable hash")
				assert.Equal(t, fixedNow, u.CreatedAt)
				assert.Equal(t, fixedNow, u.UpdatedAt)
				return u, nil
			},
		),
	)

	user, err := svc.Signup(ctx, models.SignupRequest{Username: " alice ", Email: "A@X.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestAuthService_Signup_ValidationFailsBeforeStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name    string
		req     models.SignupRequest
		message string
	}{
		{"short username", models.SignupRequest{Username: "al", Email: "a@x.com", Password: "secret1"}, "username must be at least 3 characters"},
		{"bad email", models.SignupRequest{Username: "alice", Email: "ax.com", Password: "secret1"}, "please provide a valid email address"},
		{"short password", models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "12345"}, "password must be at least 6 characters"},
		{"password over bcrypt limit", models.SignupRequest{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)}, "password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tt.req)

			appErr := requireAppError(t, err, app.CodeBadUserInput)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

type acceptAll struct{}

func (acceptAll) Validate(context.Context, any, ...string) error { return nil }

// A password that reaches the hasher over the bcrypt limit is a client error,
// not a 500.
func TestAuthService_Signup_HashRejectsLongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	svc.validator = acceptAll{}

	repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "alice", Email: "a@x.com", Password: strings.Repeat("p", 73)})

	appErr := requireAppError(t, err, app.CodeBadUserInput)
	assert.Equal(t, "password must be at most 72 bytes", appErr.Message)
	assert.ErrorIs(t, err, utils.ErrPasswordTooLong)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), "alice", "new@x.com").
		Return(models.User{UserID: "u1", Username: "alice", Email: "a@x.com"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "alice", Email: "new@x.com", Password: "secret1"})

	appErr := requireAppError(t, err, app.CodeBadUserInput)
	assert.Equal(t, app.MsgUsernameAlreadyExists, appErr.Message)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), "bob", "a@x.com").
		Return(models.User{UserID: "u1", Username: "alice", Email: "a@x.com"}, nil)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "bob", Email: "a@x.com", Password: "secret1"})

	appErr := requireAppError(t, err, app.CodeBadUserInput)
	assert.Equal(t, app.MsgEmailAlreadyExists, appErr.Message)
}

// Login matches one identifier against both columns, so a username equal to
// another account's email (or the reverse) would make login ambiguous.
func TestAuthService_Signup_CrossColumnCollision(t *testing.T) {
	tests := []struct {
		name     string
		req      models.SignupRequest
		existing models.User
		message  string
	}{
		{
			name:     "username is another account's email",
			req:      models.SignupRequest{Username: "Carol@X.com", Email: "new@x.com", Password: "secret1"},
			existing: models.User{UserID: "u1", Username: "carol", Email: "carol@x.com"},
			message:  app.MsgUsernameAlreadyExists,
		},
		{
			name:     "email is another account's username",
			req:      models.SignupRequest{Username: "dave", Email: "zed@x.com", Password: "secret1"},
			existing: models.User{UserID: "u2", Username: "Zed@x.com", Email: "zed@other.com"},
			message:  app.MsgEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)

			repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), tt.req.Username, tt.req.Email).Return(tt.existing, nil)

			_, err := svc.Signup(context.Background(), tt.req)

			appErr := requireAppError(t, err, app.CodeBadUserInput)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

// A concurrent signup can pass the pre-check; the unique constraint then
// reports the collision with the same error.
func TestAuthService_Signup_LostRaceOnUniqueConstraint(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		message  string
	}{
		{"username", store.ErrUsernameAlreadyExists, app.MsgUsernameAlreadyExists},
		{"email", store.ErrEmailAlreadyExists, app.MsgEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)

			repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, tt.storeErr)

			_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})

			appErr := requireAppError(t, err, app.CodeBadUserInput)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestAuthService_Signup_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})

	requireAppError(t, err, app.CodeInternal)
	assert.Equal(t, app.MsgInternalServerError, app.Normalize(err).Message)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	stored := models.User{UserID: "user-1", Username: "alice", Email: "a@x.com", PasswordHash: hashed(t, "secret1")}
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)

	payload, err := svc.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", payload.User.Username)
	assert.Empty(t, payload.User.PasswordHash)

	token, err := utils.ValidateAndParseJWTToken(payload.Token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt.Time, time.Minute)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: "ghost", Password: "secret1"})

	appErr := requireAppError(t, err, app.CodeUnauthenticated)
	assert.Equal(t, app.MsgUserNotFound, appErr.Message)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").
		Return(models.User{UserID: "user-1", Username: "alice", PasswordHash: hashed(t, "secret1")}, nil)

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "wrong"})

	appErr := requireAppError(t, err, app.CodeUnauthenticated)
	assert.Equal(t, app.MsgIncorrectPassword, appErr.Message)
}

func TestAuthService_Login_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: "alice"})

	appErr := requireAppError(t, err, app.CodeBadUserInput)
	assert.Equal(t, validators.ErrCredentialsRequired.Error(), appErr.Message)
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByLogin(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "secret1"})

	requireAppError(t, err, app.CodeInternal)
}

// signup("alice","a@x.com","secret1") then login("alice","secret1") returns a
// token and the principal; login with a wrong password is rejected.
func TestAuthService_SignupThenLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	var stored models.User
	repo.EXPECT().FindUserByUsernameOrEmail(gomock.Any(), "alice", "a@x.com").Return(models.User{}, store.ErrUserNotFound)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			stored = u
			return u, nil
		},
	)
	repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return stored, nil },
	).Times(2)
	repo.EXPECT().FindUserByID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, stored.UserID, id)
			return stored, nil
		},
	)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Username: "alice", Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	payload, err := svc.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, payload.Token)
	assert.Equal(t, "alice", payload.User.Username)

	authCtx := svc.Resolve(context.Background(), "Bearer "+payload.Token)
	principal, ok := authCtx.Principal()
	require.True(t, ok)
	assert.Equal(t, "alice", principal.Username)

	_, err = svc.Login(context.Background(), models.Credentials{Identifier: "alice", Password: "wrong"})
	requireAppError(t, err, app.CodeUnauthenticated)
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func signedToken(t *testing.T, key, issuer, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestAuthService_Resolve_Authenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), "user-1").
		Return(models.User{UserID: "user-1", Username: "alice", PasswordHash: "hash"}, nil)

	header := "Bearer " + signedToken(t, testSignKey, testIssuer, "user-1", time.Now().Add(time.Hour))
	authCtx := svc.Resolve(context.Background(), header)

	user, ok := authCtx.Principal()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash)
}

// Every failure degrades to an anonymous context without touching storage.
func TestAuthService_Resolve_Anonymous(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic scheme", "Basic YWxpY2U6c2VjcmV0"},
		{"bearer without token", "Bearer "},
		{"malformed token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + signedToken(t, "other-key", testIssuer, "user-1", time.Now().Add(time.Hour))},
		{"wrong issuer", "Bearer " + signedToken(t, testSignKey, "someone-else", "user-1", time.Now().Add(time.Hour))},
		{"expired", "Bearer " + signedToken(t, testSignKey, testIssuer, "user-1", time.Now().Add(-time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthSvc(t, ctrl)

			authCtx := svc.Resolve(context.Background(), tt.header)

			assert.False(t, authCtx.IsAuthenticated())
		})
	}
}

func TestAuthService_Resolve_DeletedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(models.User{}, store.ErrUserNotFound)

	header := "Bearer " + signedToken(t, testSignKey, testIssuer, "user-1", time.Now().Add(time.Hour))

	assert.False(t, svc.Resolve(context.Background(), header).IsAuthenticated())
}
