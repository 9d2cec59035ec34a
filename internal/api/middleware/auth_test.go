package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/pkg/logger"
)

const testSecret = "test-secret-123"

func sign(t *testing.T, secret string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims() Claims {
	return Claims{
		UserID: "user-42",
		Email:  "u@example.com",
		Role:   "client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func protected(t *testing.T) http.Handler {
	auth := NewAuthenticator(testSecret, logger.NewNop())
	return auth.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", p.ID)
		w.Header().Set("X-Role", string(p.Role))
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAuth(t *testing.T) {
	expired := validClaims()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	withinLeeway := validClaims()
	withinLeeway.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-2 * time.Second))

	subjectOnly := validClaims()
	subjectOnly.UserID = ""
	subjectOnly.Subject = "user-7"

	noRole := validClaims()
	noRole.Role = ""

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "valid", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, validClaims()), wantStatus: http.StatusOK, wantUser: "user-42"},
		{name: "sub claim", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, subjectOnly), wantStatus: http.StatusOK, wantUser: "user-7"},
		{name: "leeway", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, withinLeeway), wantStatus: http.StatusOK, wantUser: "user-42"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer invalid-jwt-here", wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + sign(t, "other", jwt.SigningMethodHS256, validClaims()), wantStatus: http.StatusUnauthorized},
		{name: "wrong alg", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS512, validClaims()), wantStatus: http.StatusUnauthorized},
		{name: "expired", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, expired), wantStatus: http.StatusUnauthorized},
		{name: "no role", header: "Bearer " + sign(t, testSecret, jwt.SigningMethodHS256, noRole), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			protected(t).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, w.Header().Get("X-User"))
				assert.Equal(t, string(domain.RoleClient), w.Header().Get("X-Role"))
			}
		})
	}
}

func TestOptional(t *testing.T) {
	auth := NewAuthenticator(testSecret, logger.NewNop())
	var seen bool
	h := auth.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, seen = GetPrincipal(r.Context())
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+sign(t, testSecret, jwt.SigningMethodHS256, validClaims()))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.True(t, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
