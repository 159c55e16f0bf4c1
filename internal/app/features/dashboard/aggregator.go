// internal/app/features/dashboard/aggregator.go

// Package dashboard assembles the admin-panel dashboard: role-scoped
// counters, bounded recent/upcoming event lists, a merged activity feed,
// computed notifications, and windowed quick stats. Every operation is a
// stateless read over a single captured "now" and one resolved scope.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/confhub/confhub/internal/app/system/authz"
	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/microcosm-cc/bluemonday"
)

// Clock supplies the request's reference instant. Injectable so boundary
// conditions (upcoming vs. ongoing) are deterministic in tests.
type Clock func() time.Time

// Aggregator runs the dashboard read pipelines over a Store.
type Aggregator struct {
	store    Store
	sanitize *bluemonday.Policy
	now      Clock
}

// NewAggregator constructs an Aggregator. A nil clock means wall time.
func NewAggregator(store Store, clock Clock) *Aggregator {
	if clock == nil {
		clock = time.Now
	}
	return &Aggregator{
		store:    store,
		sanitize: bluemonday.StrictPolicy(),
		now:      clock,
	}
}

// resolveScope maps the principal to its visibility scope: admins see
// everything, everyone else sees only the organizations of their active,
// non-deleted memberships.
func (a *Aggregator) resolveScope(ctx context.Context, p authz.Principal) (scope.Scope, error) {
	if p.IsAdmin() {
		return scope.Unrestricted(), nil
	}
	ids, err := a.store.ActiveOrgIDs(ctx, p.ID)
	if err != nil {
		return scope.Scope{}, fmt.Errorf("resolve org scope: %w", err)
	}
	return scope.Orgs(ids), nil
}

// clean strips any markup from a stored display name before it is
// embedded in a message string.
func (a *Aggregator) clean(name string) string {
	return a.sanitize.Sanitize(name)
}

// daysUntil is the whole-day difference from now to t, truncated toward
// zero. Both ends use the same captured now so rows never disagree.
func daysUntil(now, t time.Time) int {
	return int(t.Sub(now).Hours() / 24)
}

// formatDateRange renders a human-readable start/end range.
func formatDateRange(start, end time.Time) string {
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return start.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2, 2006") + " to " + end.Format("Jan 2, 2006")
}
