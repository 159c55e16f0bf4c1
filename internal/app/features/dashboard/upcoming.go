// internal/app/features/dashboard/upcoming.go

package dashboard

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const upcomingEventsLimit = 3

// buildUpcomingEvents lists published events starting strictly after now,
// soonest first. days_until_start is truncated whole days from the single
// captured now, so every row agrees with the summary's boundary.
func (a *Aggregator) buildUpcomingEvents(ctx context.Context, sc scope.Scope, now time.Time) ([]UpcomingEvent, error) {
	events, err := a.store.UpcomingPublishedEvents(ctx, sc, now, upcomingEventsLimit)
	if err != nil {
		return nil, err
	}

	orgIDs := make([]primitive.ObjectID, 0, len(events))
	for _, ev := range events {
		orgIDs = append(orgIDs, ev.OrganizationID)
	}
	orgNames, err := a.store.OrganizationNames(ctx, orgIDs)
	if err != nil {
		return nil, err
	}

	out := make([]UpcomingEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, UpcomingEvent{
			ID:             ev.ID.Hex(),
			Name:           ev.Name,
			Slug:           ev.Slug,
			StartsAt:       ev.StartsAt,
			EndsAt:         ev.EndsAt,
			DateRange:      formatDateRange(ev.StartsAt, ev.EndsAt),
			Location:       ev.Location,
			Organization:   orgNames[ev.OrganizationID],
			DaysUntilStart: daysUntil(now, ev.StartsAt),
		})
	}
	return out, nil
}
