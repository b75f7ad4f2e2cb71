package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func baseClaims(exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  uuid.NewString(),
		"role": "MANAGER",
		"iss":  TokenIssuer,
		"exp":  exp.Unix(),
	}
}

func TestValidateTokenAcceptsWellFormedToken(t *testing.T) {
	key := newTestKey(t)
	tokenStr := signToken(t, key, baseClaims(time.Now().Add(time.Hour)))

	tok, err := ValidateToken(tokenStr, &key.PublicKey)
	require.NoError(t, err)
	require.True(t, tok.Valid)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	key := newTestKey(t)
	tokenStr := signToken(t, key, baseClaims(time.Now().Add(-time.Hour)))

	_, err := ValidateToken(tokenStr, &key.PublicKey)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	key := newTestKey(t)
	claims := baseClaims(time.Now().Add(time.Hour))
	claims["iss"] = "SomeOtherService"
	tokenStr := signToken(t, key, claims)

	_, err := ValidateToken(tokenStr, &key.PublicKey)
	require.Error(t, err)
}

func TestValidateTokenRejectsForeignKey(t *testing.T) {
	key := newTestKey(t)
	other := newTestKey(t)
	tokenStr := signToken(t, key, baseClaims(time.Now().Add(time.Hour)))

	_, err := ValidateToken(tokenStr, &other.PublicKey)
	require.Error(t, err)
}

func TestAuthMiddlewarePopulatesContext(t *testing.T) {
	key := newTestKey(t)
	subject := uuid.NewString()
	claims := baseClaims(time.Now().Add(time.Hour))
	claims["sub"] = subject
	tokenStr := signToken(t, key, claims)

	var gotUserID any
	var gotRole any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = r.Context().Value(ContextKeyUserID)
		gotRole = r.Context().Value(ContextKeyRole)
	})

	handler := AuthMiddleware(&key.PublicKey)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rents", nil)
	req.Header.Set("Authorization", "Bearer "+tokenStr)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, subject, gotUserID)
	require.NotNil(t, gotRole)
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	key := newTestKey(t)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	handler := AuthMiddleware(&key.PublicKey)(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rents", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}
