// internal/app/features/dashboard/dashboard.go

package dashboard

import (
	"context"

	"github.com/confhub/confhub/internal/app/system/authz"
)

// Dashboard assembles the full dashboard payload. The scope and the
// reference instant are resolved once and shared by every section, so an
// event classified as upcoming in the summary is upcoming in every list.
func (a *Aggregator) Dashboard(ctx context.Context, p authz.Principal) (*Dashboard, error) {
	sc, err := a.resolveScope(ctx, p)
	if err != nil {
		return nil, err
	}
	now := a.now().UTC()

	summary, err := a.buildSummary(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	recent, err := a.buildRecentEvents(ctx, sc)
	if err != nil {
		return nil, err
	}
	upcoming, err := a.buildUpcomingEvents(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	activities, err := a.buildRecentActivities(ctx, p)
	if err != nil {
		return nil, err
	}

	if recent == nil {
		recent = []RecentEvent{}
	}
	if upcoming == nil {
		upcoming = []UpcomingEvent{}
	}
	if activities == nil {
		activities = []Activity{}
	}
	return &Dashboard{
		Summary:          summary,
		RecentEvents:     recent,
		UpcomingEvents:   upcoming,
		RecentActivities: activities,
	}, nil
}
