package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/vaultnote/internal/app"
	"github.com/MKhiriev/vaultnote/internal/logger"
)

// withRateLimit gates note creation by client address. The address is used
// once, here, to consult the limiter; only its salted hash is ever stored.
//
// A limiter failure fails open: creating a note during a counter outage
// beats refusing service, and the event is logged for the operator.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		ip := clientIP(r)

		allowed, err := h.services.RateLimiter.Allow(r.Context(), ip)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withRateLimit").Msg("rate limiter unavailable, failing open")
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			w.Header().Set("Retry-After", "60")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP resolves the originating client address, trusting the usual
// reverse-proxy headers before falling back to the socket peer.
func clientIP(r *http.Request) string {
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// first hop is the original client
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
