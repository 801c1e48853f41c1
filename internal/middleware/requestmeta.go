// Package middleware carries the HTTP middleware shared by the API and the
// browser-facing routes.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type metaKey struct{}

// Meta holds per-request metadata used for logging.
type Meta struct {
	RequestID string
	ClientIP  string
	UserAgent string
	Referrer  string
}

// RequestMeta assigns each request an ID and captures client metadata into
// the context.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		meta := Meta{
			RequestID: uuid.NewString(),
			ClientIP:  clientIP(r),
			UserAgent: r.UserAgent(),
			Referrer:  r.Referer(),
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), metaKey{}, meta)))
	})
}

// MetaFromContext returns the request metadata, zero when absent.
func MetaFromContext(ctx context.Context) Meta {
	if m, ok := ctx.Value(metaKey{}).(Meta); ok {
		return m
	}

	return Meta{}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For may carry a chain; the first hop is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		return host[:idx]
	}

	return host
}
