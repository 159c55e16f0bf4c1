// internal/app/features/dashboard/recent.go

package dashboard

import (
	"context"

	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const recentEventsLimit = 5

// buildRecentEvents lists the newest events in scope with their
// organization summaries and per-event program counts attached.
func (a *Aggregator) buildRecentEvents(ctx context.Context, sc scope.Scope) ([]RecentEvent, error) {
	events, err := a.store.RecentEvents(ctx, sc, recentEventsLimit)
	if err != nil {
		return nil, err
	}

	eventIDs := make([]primitive.ObjectID, 0, len(events))
	orgIDs := make([]primitive.ObjectID, 0, len(events))
	for _, ev := range events {
		eventIDs = append(eventIDs, ev.ID)
		orgIDs = append(orgIDs, ev.OrganizationID)
	}

	counts, err := a.store.SessionCountsForEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	orgNames, err := a.store.OrganizationNames(ctx, orgIDs)
	if err != nil {
		return nil, err
	}

	out := make([]RecentEvent, 0, len(events))
	for _, ev := range events {
		c := counts[ev.ID]
		out = append(out, RecentEvent{
			ID:            ev.ID.Hex(),
			Name:          ev.Name,
			Slug:          ev.Slug,
			Status:        ev.Status,
			StartsAt:      ev.StartsAt,
			EndsAt:        ev.EndsAt,
			DateRange:     formatDateRange(ev.StartsAt, ev.EndsAt),
			Organization:  OrgRef{ID: ev.OrganizationID.Hex(), Name: orgNames[ev.OrganizationID]},
			Published:     ev.Published,
			Sessions:      c.Sessions,
			Presentations: c.Presentations,
		})
	}
	return out, nil
}
