package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-staff-keeper/internal/app"
	"github.com/MKhiriev/go-staff-keeper/internal/utils"
	"github.com/MKhiriev/go-staff-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// requireAppError asserts that err is a classified application error with
// the given code and returns it for further checks.
func requireAppError(t *testing.T, err error, code app.Code) *app.Error {
	t.Helper()
	var appErr *app.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

// authedCtx returns a context carrying an authenticated principal, the way
// the HTTP middleware leaves it.
func authedCtx() context.Context {
	return utils.WithAuthContext(context.Background(), models.Authenticated(models.User{UserID: "user-1", Username: "alice"}))
}
