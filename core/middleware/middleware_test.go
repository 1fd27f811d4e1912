package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"interview-planner/core/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func signedToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "scheduler",
		"exp": expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequestID(t *testing.T) {
	m := &Middleware{}

	t.Run("Generates When Absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := invoke(t, m.RequestID(), req)
		assert.NotEmpty(t, rec.Header().Get(constants.RequestIDHeader))
	})

	t.Run("Echoes Incoming Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constants.RequestIDHeader, "abc1234")
		rec := invoke(t, m.RequestID(), req)
		assert.Equal(t, "abc1234", rec.Header().Get(constants.RequestIDHeader))
	})
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	t.Run("Disabled Without Secret", func(t *testing.T) {
		m := &Middleware{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing Header", func(t *testing.T) {
		m := &Middleware{tokenSecret: secret}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "MISSING_AUTHORIZATION_HEADER")
	})

	t.Run("Not A Bearer Token", func(t *testing.T) {
		m := &Middleware{tokenSecret: secret}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN_FORMAT")
	})

	t.Run("Valid Token", func(t *testing.T) {
		m := &Middleware{tokenSecret: secret}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, secret, time.Now().Add(time.Hour)))
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		m := &Middleware{tokenSecret: secret}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, secret, time.Now().Add(-time.Hour)))
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		m := &Middleware{tokenSecret: secret}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", time.Now().Add(time.Hour)))
		rec := invoke(t, m.AuthMiddleware(), req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
