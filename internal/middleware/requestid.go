// Package middleware contains HTTP middleware functions.
//
// Middleware wraps an http.Handler to add cross-cutting behaviour
// (request ids, logging) without modifying the handler itself.
package middleware

import (
	"context"
	"net/http"

	"github.com/rs/xid"
)

// ctxKey is unexported so no other package can collide with our context keys.
type ctxKey int

const requestIDKey ctxKey = iota

// RequestID assigns each request a unique id and exposes it via the
// X-Request-ID response header and the request context.
//
// xid ids are 20 URL-safe characters and sort by creation time, which
// makes grepping a day's logs for one request pleasant. An id supplied by
// a trusted upstream proxy is reused so traces line up across services.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = xid.New().String()
		}
		w.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID, or "" when the
// middleware didn't run.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
