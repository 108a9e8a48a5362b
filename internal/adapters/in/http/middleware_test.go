package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	customerID kernel.UUID
	token      string
}

func (f *fakeSessionStore) Create(_ context.Context, customerID kernel.UUID) (string, error) {
	f.customerID = customerID
	return f.token, nil
}

func (f *fakeSessionStore) Resolve(_ context.Context, token string) (kernel.UUID, error) {
	if token != f.token {
		return kernel.UUID{}, errs.NewUnauthorizedError("token")
	}
	return f.customerID, nil
}

func (f *fakeSessionStore) Revoke(_ context.Context, _ string) error {
	return nil
}

func invokeMiddleware(t *testing.T, store *fakeSessionStore, authorization string) (*httptest.ResponseRecorder, kernel.UUID) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var seen kernel.UUID
	handler := SessionMiddleware(store)(func(ctx echo.Context) error {
		seen = callerID(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(ctx))
	return rec, seen
}

func TestSessionMiddleware_ValidToken(t *testing.T) {
	customerID := kernel.NewUUID()
	store := &fakeSessionStore{customerID: customerID, token: "good-token"}

	rec, seen := invokeMiddleware(t, store, "Bearer good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.IsEqual(customerID))
}

func TestSessionMiddleware_MissingToken(t *testing.T) {
	store := &fakeSessionStore{token: "good-token"}

	rec, _ := invokeMiddleware(t, store, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestSessionMiddleware_UnknownToken(t *testing.T) {
	store := &fakeSessionStore{token: "good-token"}

	rec, _ := invokeMiddleware(t, store, "Bearer stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired session")
}

func TestBearerToken_MalformedHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	ctx := e.NewContext(req, httptest.NewRecorder())

	assert.Empty(t, bearerToken(ctx))
}
