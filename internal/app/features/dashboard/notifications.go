// internal/app/features/dashboard/notifications.go

package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/confhub/confhub/internal/app/system/authz"
	"github.com/confhub/confhub/internal/app/system/links"
	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	notificationsCap   = 10
	startingSoonWindow = 7 * 24 * time.Hour
)

// Notifications computes the notification feed for the principal: events
// starting within seven days (medium priority) and published future events
// with an empty program (high priority). The returned list is capped at
// ten, but UnreadCount always reflects the full match count.
func (a *Aggregator) Notifications(ctx context.Context, p authz.Principal) (*NotificationFeed, error) {
	sc, err := a.resolveScope(ctx, p)
	if err != nil {
		return nil, err
	}
	now := a.now().UTC()

	feed, err := a.buildNotifications(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	return feed, nil
}

func (a *Aggregator) buildNotifications(ctx context.Context, sc scope.Scope, now time.Time) (*NotificationFeed, error) {
	soon, err := a.store.EventsStartingSoon(ctx, sc, now, now.Add(startingSoonWindow))
	if err != nil {
		return nil, err
	}

	all := make([]Notification, 0, len(soon))
	for _, ev := range soon {
		days := daysUntil(now, ev.StartsAt)
		all = append(all, Notification{
			Kind:     KindStartingSoon,
			Priority: PriorityMedium,
			Message:  startingSoonMessage(a.clean(ev.Name), days),
			Date:     ev.StartsAt,
			Link:     links.Event(ev.ID),
		})
	}

	incomplete, err := a.futureEventsWithoutSessions(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	for _, ev := range incomplete {
		all = append(all, Notification{
			Kind:     KindIncompleteProgram,
			Priority: PriorityHigh,
			Message:  fmt.Sprintf("The event %q has no program sessions yet.", a.clean(ev.Name)),
			Date:     ev.CreatedAt,
			Link:     links.Event(ev.ID),
		})
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.After(all[j].Date)
	})

	total := len(all)
	if total > notificationsCap {
		all = all[:notificationsCap]
	}
	return &NotificationFeed{Notifications: all, UnreadCount: total}, nil
}

// futureEventsWithoutSessions finds published future events whose whole
// day/venue hierarchy holds zero program slots.
func (a *Aggregator) futureEventsWithoutSessions(ctx context.Context, sc scope.Scope, now time.Time) ([]models.Event, error) {
	future, err := a.store.FuturePublishedEvents(ctx, sc, now)
	if err != nil {
		return nil, err
	}
	if len(future) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(future))
	for _, ev := range future {
		ids = append(ids, ev.ID)
	}
	counts, err := a.store.SessionCountsForEvents(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]models.Event, 0, len(future))
	for _, ev := range future {
		if counts[ev.ID].Sessions == 0 {
			out = append(out, ev)
		}
	}
	return out, nil
}

func startingSoonMessage(name string, days int) string {
	switch {
	case days <= 0:
		return fmt.Sprintf("The event %q starts today.", name)
	case days == 1:
		return fmt.Sprintf("The event %q starts in 1 day.", name)
	default:
		return fmt.Sprintf("The event %q starts in %d days.", name, days)
	}
}
