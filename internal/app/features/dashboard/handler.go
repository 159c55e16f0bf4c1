// internal/app/features/dashboard/handler.go

package dashboard

import (
	"context"
	"net/http"

	uierrors "github.com/confhub/confhub/internal/app/features/errors"
	"github.com/confhub/confhub/internal/app/system/authz"
	"github.com/confhub/confhub/internal/app/system/respond"
	"github.com/confhub/confhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

type Handler struct {
	Agg    *Aggregator
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(agg *Aggregator, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Agg:    agg,
		Log:    logger,
		ErrLog: errLog,
	}
}

// ServeDashboard answers GET /dashboard. The composite walks the session
// ownership chain across four collections, so it gets the long budget.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	p, ok := authz.PrincipalCtx(r)
	if !ok {
		uierrors.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	data, err := h.Agg.Dashboard(ctx, p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "assemble dashboard failed", err, "A database error occurred.")
		return
	}

	h.Log.Debug("dashboard served",
		zap.String("user_id", p.ID.Hex()),
		zap.String("role", p.Role),
	)
	respond.JSON(w, http.StatusOK, data)
}

// ServeNotifications answers GET /dashboard/notifications.
func (h *Handler) ServeNotifications(w http.ResponseWriter, r *http.Request) {
	p, ok := authz.PrincipalCtx(r)
	if !ok {
		uierrors.Unauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	feed, err := h.Agg.Notifications(ctx, p)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "compute notifications failed", err, "A database error occurred.")
		return
	}

	respond.JSON(w, http.StatusOK, feed)
}

// ServeQuickStats answers GET /dashboard/quick-stats?days=N. A days value
// that is not a positive integer silently falls back to 30.
func (h *Handler) ServeQuickStats(w http.ResponseWriter, r *http.Request) {
	p, ok := authz.PrincipalCtx(r)
	if !ok {
		uierrors.Unauthorized(w)
		return
	}

	days := ParseTimeframeDays(query.Get(r, "days"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	stats, err := h.Agg.QuickStats(ctx, p, days)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "compute quick stats failed", err, "A database error occurred.")
		return
	}

	respond.JSON(w, http.StatusOK, stats)
}
