package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokenAuth = jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)

func requestWithClaims(t *testing.T, claims map[string]interface{}) *http.Request {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims == nil {
		return r.WithContext(jwtauth.NewContext(context.Background(), nil, nil))
	}

	token, _, err := testTokenAuth.Encode(claims)
	require.NoError(t, err)
	return r.WithContext(jwtauth.NewContext(context.Background(), token, nil))
}

func passedThrough(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRequired_AccessTokenPasses(t *testing.T) {
	var called bool
	handler := AuthRequired(testTokenAuth)(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, map[string]interface{}{
		"user_id": "user-1",
		"type":    "access",
	}))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	var called bool
	handler := AuthRequired(testTokenAuth)(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, map[string]interface{}{
		"user_id": "user-1",
		"type":    "refresh",
	}))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	var called bool
	handler := AuthRequired(testTokenAuth)(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly_AllowsActiveAdmin(t *testing.T) {
	var called bool
	handler := AdminOnly(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, map[string]interface{}{
		"user_id":   "user-1",
		"type":      "access",
		"role":      "admin",
		"is_active": true,
	}))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_RejectsWorker(t *testing.T) {
	var called bool
	handler := AdminOnly(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, map[string]interface{}{
		"user_id":   "user-1",
		"type":      "access",
		"role":      "worker",
		"is_active": true,
	}))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminOnly_RejectsInactiveAdmin(t *testing.T) {
	var called bool
	handler := AdminOnly(passedThrough(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithClaims(t, map[string]interface{}{
		"user_id":   "user-1",
		"type":      "access",
		"role":      "admin",
		"is_active": false,
	}))

	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
