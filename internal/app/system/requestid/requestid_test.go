package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/confhub/confhub/internal/app/system/requestid"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	var seen string
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected a request ID in context")
	}
	if got := rec.Header().Get(requestid.Header); got != seen {
		t.Errorf("response header: got %q, want %q", got, seen)
	}
}

func TestMiddleware_KeepsIncomingID(t *testing.T) {
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req.Header.Set(requestid.Header, "upstream-id-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(requestid.Header); got != "upstream-id-123" {
		t.Errorf("response header: got %q, want upstream-id-123", got)
	}
}
