package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	token, expires, err := GenerateJWT("user-1", "admin", secret)
	require.NoError(t, err)
	assert.Greater(t, expires, time.Now().Unix())

	claims, err := GetValidatedClaims(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["userID"])
	assert.Equal(t, "admin", claims["role"])
}

func TestValidateJWTWrongSecret(t *testing.T) {
	token, _, err := GenerateJWT("user-1", "admin", "secret-a")
	require.NoError(t, err)

	_, err = GetValidatedClaims(token, "secret-b")
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := ExtractToken(r)
	assert.Error(t, err, "missing header")

	r.Header.Set("Authorization", "token-without-scheme")
	_, err = ExtractToken(r)
	assert.Error(t, err, "missing Bearer prefix")

	r.Header.Set("Authorization", "Bearer some-token")
	token, err := ExtractToken(r)
	require.NoError(t, err)
	assert.Equal(t, "some-token", token)
}

func TestRequireAdmin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAdmin()(next)

	// no claims in the context at all
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// editor role is not enough
	token, _, err := GenerateJWT("user-1", "editor", "s")
	require.NoError(t, err)
	claims, err := GetValidatedClaims(token, "s")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserClaimsKey, claims))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// admin passes through
	token, _, err = GenerateJWT("user-1", "admin", "s")
	require.NoError(t, err)
	claims, err = GetValidatedClaims(token, "s")
	require.NoError(t, err)

	r = httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserClaimsKey, claims))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitJWTSecret(t *testing.T) {
	assert.Equal(t, "configured", InitJWTSecret("configured"))

	generated := InitJWTSecret("")
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, InitJWTSecret(""))
}

func TestRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	// one request allowed, essentially no refill within the test
	handler := RateLimit(rate.NewLimiter(rate.Every(time.Hour), 1))(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/contact", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("POST", "/api/contact", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
