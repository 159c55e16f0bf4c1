// internal/app/features/dashboard/activity.go

package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/confhub/confhub/internal/app/system/authz"
	"github.com/confhub/confhub/internal/app/system/links"
)

const (
	recentActivitiesLimit = 5
	createdEventsSubLimit = 3
	moderatedSubLimit     = 2
)

// buildRecentActivities merges two independently capped sources: events
// the principal created (up to 3) and, for non-admins with a matching
// participant record, sessions they moderate (up to 2). The outer limit
// is applied only after the merge so neither source starves the other.
func (a *Aggregator) buildRecentActivities(ctx context.Context, p authz.Principal) ([]Activity, error) {
	created, err := a.store.EventsCreatedBy(ctx, p.ID, createdEventsSubLimit)
	if err != nil {
		return nil, err
	}

	feed := make([]Activity, 0, createdEventsSubLimit+moderatedSubLimit)
	for _, ev := range created {
		feed = append(feed, Activity{
			Kind:    KindEventCreated,
			Message: fmt.Sprintf("You created the event %q.", a.clean(ev.Name)),
			Date:    ev.CreatedAt,
			Link:    links.Event(ev.ID),
		})
	}

	if !p.IsAdmin() {
		participant, err := a.store.ParticipantByEmail(ctx, p.Email)
		if err != nil {
			return nil, err
		}
		if participant != nil {
			moderated, err := a.store.SessionsModeratedBy(ctx, participant.ID, moderatedSubLimit)
			if err != nil {
				return nil, err
			}
			for _, sess := range moderated {
				// A session whose venue/day chain is broken has no owning
				// event; drop it rather than failing the feed.
				ev, err := a.store.EventForSession(ctx, sess.ID)
				if err != nil {
					return nil, err
				}
				if ev == nil {
					continue
				}
				feed = append(feed, Activity{
					Kind:    KindSessionModerated,
					Message: fmt.Sprintf("You are moderating the session %q.", a.clean(sess.Title)),
					Date:    sess.CreatedAt,
					Link:    links.Session(sess.ID),
				})
			}
		}
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date.After(feed[j].Date)
	})
	if len(feed) > recentActivitiesLimit {
		feed = feed[:recentActivitiesLimit]
	}
	return feed, nil
}
