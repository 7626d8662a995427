package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/service"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, auth *fakeAuthService) http.Handler {
	return newTestRouter(t, &service.Services{AuthService: auth})
}

func TestSignup_Success(t *testing.T) {
	var received models.SignupRequest
	auth := &fakeAuthService{
		signup: func(_ context.Context, request models.SignupRequest) (models.User, error) {
			received = request
			return models.User{UserID: "u-1", Username: request.Username, Email: request.Email, PasswordHash: "hash"}, nil
		},
	}

	rr := doRequest(t, newAuthRouter(t, auth), http.MethodPost, "/api/user/signup",
		`{"username":"alice","email":"alice@example.com","password":"secret1"}`, nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, models.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}, received)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "u-1", body["_id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "PasswordHash")
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   app.Code
		wantMsg    string
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   app.CodeBadUserInput,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "empty body",
			wantStatus: http.StatusBadRequest,
			wantCode:   app.CodeBadUserInput,
			wantMsg:    app.MsgInvalidJSON,
		},
		{
			name:       "duplicate username",
			body:       `{"username":"alice","email":"a@b.co","password":"secret1"}`,
			serviceErr: app.InvalidInput(app.MsgUsernameAlreadyExists, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   app.CodeBadUserInput,
			wantMsg:    app.MsgUsernameAlreadyExists,
		},
		{
			name:       "unclassified error is hidden",
			body:       `{"username":"alice","email":"a@b.co","password":"secret1"}`,
			serviceErr: assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   app.CodeInternal,
			wantMsg:    app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &fakeAuthService{
				signup: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
					called = true
					return models.User{}, tt.serviceErr
				},
			}

			rr := doRequest(t, newAuthRouter(t, auth), http.MethodPost, "/api/user/signup", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rr.Code)
			body := decodeErrorBody(t, rr)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.serviceErr != nil, called)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &fakeAuthService{
		login: func(_ context.Context, credentials models.Credentials) (models.AuthPayload, error) {
			assert.Equal(t, "alice@example.com", credentials.Identifier)
			assert.Equal(t, "secret1", credentials.Password)
			return models.AuthPayload{Token: "signed.jwt.token", User: authedUser()}, nil
		},
	}

	rr := doRequest(t, newAuthRouter(t, auth), http.MethodPost, "/api/user/login",
		`{"usernameOrEmail":"alice@example.com","password":"secret1"}`, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rr.Header().Get("Authorization"))

	var payload models.AuthPayload
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, "signed.jwt.token", payload.Token)
	assert.Equal(t, authedUser().UserID, payload.User.UserID)
}

func TestLogin_Unauthenticated(t *testing.T) {
	auth := &fakeAuthService{
		login: func(_ context.Context, _ models.Credentials) (models.AuthPayload, error) {
			return models.AuthPayload{}, app.Unauthenticated(app.MsgIncorrectPassword)
		},
	}

	rr := doRequest(t, newAuthRouter(t, auth), http.MethodPost, "/api/user/login",
		`{"usernameOrEmail":"alice","password":"wrong"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
	body := decodeErrorBody(t, rr)
	assert.Equal(t, app.CodeUnauthenticated, body.Code)
	assert.Equal(t, app.MsgIncorrectPassword, body.Message)
}

func TestLogin_InvalidJSON(t *testing.T) {
	rr := doRequest(t, newAuthRouter(t, &fakeAuthService{}), http.MethodPost, "/api/user/login", `not json`, nil)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidJSON, decodeErrorBody(t, rr).Message)
}
