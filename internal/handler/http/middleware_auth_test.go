package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/service"
	"github.com/MKhiriev/vaultnote/internal/utils"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "vaultnote-test"
)

// ---- Helpers ----

func newAuthHandler(t *testing.T) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{},
		config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer},
		logger.Nop(),
	)
}

// executeWithOptionalAuth runs the middleware and reports the user ID seen
// by the next handler, if any.
func executeWithOptionalAuth(h *Handler, authHeader string) (*httptest.ResponseRecorder, bool, int64, bool) {
	var (
		nextCalled bool
		userID     int64
		hasUserID  bool
	)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		userID, hasUserID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	h.withOptionalAuth(next).ServeHTTP(rr, req)
	return rr, nextCalled, userID, hasUserID
}

func signedToken(t *testing.T, issuer, signKey string, userID int64, ttl time.Duration) string {
	t.Helper()

	token, err := utils.GenerateJWTToken(issuer, userID, ttl, signKey)
	require.NoError(t, err)
	return token.SignedString
}

// ---- Tests ----

func TestWithOptionalAuth_NoHeaderPassesThroughAnonymously(t *testing.T) {
	rr, nextCalled, _, hasUserID := executeWithOptionalAuth(newAuthHandler(t), "")

	assert.True(t, nextCalled)
	assert.False(t, hasUserID)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithOptionalAuth_ValidTokenSetsUserID(t *testing.T) {
	tokenString := signedToken(t, testIssuer, testSignKey, 42, time.Hour)

	rr, nextCalled, userID, hasUserID := executeWithOptionalAuth(newAuthHandler(t), "Bearer "+tokenString)

	require.True(t, nextCalled)
	require.True(t, hasUserID)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithOptionalAuth_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing token part", "Bearer"},
		{"empty token part", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rr, nextCalled, _, _ := executeWithOptionalAuth(newAuthHandler(t), tc.header)

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestWithOptionalAuth_ExpiredToken(t *testing.T) {
	tokenString := signedToken(t, testIssuer, testSignKey, 42, -time.Minute)

	rr, nextCalled, _, _ := executeWithOptionalAuth(newAuthHandler(t), "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithOptionalAuth_WrongIssuer(t *testing.T) {
	tokenString := signedToken(t, "some-other-service", testSignKey, 42, time.Hour)

	rr, nextCalled, _, _ := executeWithOptionalAuth(newAuthHandler(t), "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestWithOptionalAuth_WrongSignKey(t *testing.T) {
	tokenString := signedToken(t, testIssuer, "attacker-key", 42, time.Hour)

	rr, nextCalled, _, _ := executeWithOptionalAuth(newAuthHandler(t), "Bearer "+tokenString)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"single part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token", "Bearer ", "", ErrEmptyToken},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tc.header)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
