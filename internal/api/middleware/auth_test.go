package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedCookie(t *testing.T, isAdmin bool) *http.Cookie {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  "user-1",
		"isAdmin": isAdmin,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(jwtSecret))
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: signed}
}

func protectedEcho(t *testing.T, wantAdmin bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(string)
		assert.Equal(t, "user-1", userID)
		isAdmin, _ := r.Context().Value(IsAdminKey).(bool)
		assert.Equal(t, wantAdmin, isAdmin)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddlewareNoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(protectedEcho(t, false)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "user-1",
	})
	signed, err := token.SignedString([]byte("wrong-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signed})
	rec := httptest.NewRecorder()

	AuthMiddleware(protectedEcho(t, false)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareAttachesClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	req.AddCookie(signedCookie(t, true))
	rec := httptest.NewRecorder()

	AuthMiddleware(protectedEcho(t, true)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	chain := AuthMiddleware(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	// the signed claim decides, not anything the client sends in the body
	req := httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	req.AddCookie(signedCookie(t, false))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/files", nil)
	req.AddCookie(signedCookie(t, true))
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
