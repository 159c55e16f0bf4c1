// internal/app/system/requestid/requestid.go

// Package requestid assigns each request a UUID, echoes it in the
// X-Request-ID response header, and makes it available to handlers for
// log correlation. An incoming X-Request-ID from a trusted proxy is kept.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the request/response header carrying the request ID.
const Header = "X-Request-ID"

type ctxKey struct{}

// FromContext returns the request ID, or "" when the middleware is absent.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// Middleware attaches a request ID to the context and response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
