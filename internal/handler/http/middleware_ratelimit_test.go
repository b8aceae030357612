package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/vaultnote/internal/config"
	"github.com/MKhiriev/vaultnote/internal/logger"
	"github.com/MKhiriev/vaultnote/internal/mock"
	"github.com/MKhiriev/vaultnote/internal/service"
)

// ---- Helpers ----

func newRateLimitedHandler(t *testing.T, limiter service.RateLimiter) *Handler {
	t.Helper()
	return NewHandler(&service.Services{RateLimiter: limiter}, config.App{}, logger.Nop())
}

func executeWithRateLimit(h *Handler, mutate func(*http.Request)) (*httptest.ResponseRecorder, bool) {
	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/notes", nil)
	if mutate != nil {
		mutate(req)
	}

	rr := httptest.NewRecorder()
	h.withRateLimit(next).ServeHTTP(rr, req)
	return rr, nextCalled
}

// ---- Tests ----

func TestWithRateLimit_AllowedPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(true, nil)

	rr, nextCalled := executeWithRateLimit(newRateLimitedHandler(t, limiter), nil)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithRateLimit_DeniedReturns429(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, nil)

	rr, nextCalled := executeWithRateLimit(newRateLimitedHandler(t, limiter), nil)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
}

func TestWithRateLimit_LimiterErrorFailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mock.NewMockRateLimiter(ctrl)
	limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(false, errors.New("counter store down"))

	rr, nextCalled := executeWithRateLimit(newRateLimitedHandler(t, limiter), nil)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestWithRateLimit_HeaderAddressPreferred(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*http.Request)
		wantIP string
	}{
		{
			name:   "X-Real-IP wins",
			mutate: func(r *http.Request) { r.Header.Set("X-Real-IP", "203.0.113.7") },
			wantIP: "203.0.113.7",
		},
		{
			name: "first X-Forwarded-For hop",
			mutate: func(r *http.Request) {
				r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			},
			wantIP: "203.0.113.7",
		},
		{
			name: "X-Real-IP outranks X-Forwarded-For",
			mutate: func(r *http.Request) {
				r.Header.Set("X-Real-IP", "198.51.100.2")
				r.Header.Set("X-Forwarded-For", "203.0.113.7")
			},
			wantIP: "198.51.100.2",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			limiter := mock.NewMockRateLimiter(ctrl)
			limiter.EXPECT().Allow(gomock.Any(), tc.wantIP).Return(true, nil)

			_, nextCalled := executeWithRateLimit(newRateLimitedHandler(t, limiter), tc.mutate)

			assert.True(t, nextCalled)
		})
	}
}

func TestClientIP_FallsBackToRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:54321"

	require.Equal(t, "192.0.2.10", clientIP(req))
}
