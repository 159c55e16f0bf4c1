package logout_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/confhub/confhub/internal/app/features/logout"
	"github.com/confhub/confhub/internal/app/system/auth"
	"go.uber.org/zap"
)

func TestServeLogout_NoExistingSession(t *testing.T) {
	sm, err := auth.NewSessionManager(strings.Repeat("k", 32), "confhub_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	h := logout.NewHandler(sm, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/logout", nil)

	h.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "confhub_session" && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected an expiring session cookie")
	}
}
