// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/confhub/confhub/internal/app/system/auth"
	"github.com/confhub/confhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point the
// top-level router chooses (e.g., "/dashboard"). Only the two known
// roles may enter; anything else in a session is rejected outright.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin, authz.RoleOrganizer))
		pr.Get("/", h.ServeDashboard)
		pr.Get("/notifications", h.ServeNotifications)
		pr.Get("/quick-stats", h.ServeQuickStats)
	})

	return r
}
