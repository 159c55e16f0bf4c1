// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/confhub/confhub/internal/app/system/auth"
	"github.com/confhub/confhub/internal/app/system/respond"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// ServeLogout handles POST /logout. Clearing an already-clear session is
// fine; the endpoint is idempotent.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("clear session failed during logout", zap.Error(err))
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "signed_out"})
}
