// internal/app/features/dashboard/summary.go

package dashboard

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
)

// buildSummary runs the eight counter queries for the scope. Any store
// failure fails the whole summary; there are no partial results.
//
// Boundary convention, shared with the upcoming list: an event starting
// exactly at now is ongoing, never upcoming.
func (a *Aggregator) buildSummary(ctx context.Context, sc scope.Scope, now time.Time) (Summary, error) {
	s := Summary{Scoped: !sc.All}

	var err error
	if s.Events, err = a.store.CountEvents(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.Published, err = a.store.CountPublishedEvents(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.Organizations, err = a.store.CountActiveOrganizations(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.Participants, err = a.store.CountParticipants(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.Sessions, err = a.store.CountSessions(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.ActiveSponsors, err = a.store.CountActiveSponsors(ctx, sc); err != nil {
		return Summary{}, err
	}
	if s.Upcoming, err = a.store.CountUpcomingEvents(ctx, sc, now); err != nil {
		return Summary{}, err
	}
	if s.Ongoing, err = a.store.CountOngoingEvents(ctx, sc, now); err != nil {
		return Summary{}, err
	}
	return s, nil
}
