package dashboard_test

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/confhub/confhub/internal/app/features/dashboard"
	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory implementation of dashboard.Store. It applies
// the same scoping and boundary rules the mongo stores encode in filters.
// Setting err makes every method fail, for propagation tests.
type fakeStore struct {
	orgs         []models.Organization
	memberships  []models.OrgMembership
	events       []models.Event
	days         []models.EventDay
	venues       []models.Venue
	sessions     []models.ProgramSession
	participants []models.Participant
	sponsors     []models.Sponsor
	err          error
}

func (f *fakeStore) ActiveOrgIDs(_ context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []primitive.ObjectID
	for _, m := range f.memberships {
		if m.UserID == userID && m.Status == "active" && m.DeletedAt == nil {
			out = append(out, m.OrgID)
		}
	}
	return out, nil
}

func (f *fakeStore) MembershipCount(_ context.Context, userID primitive.ObjectID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, m := range f.memberships {
		if m.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountActiveOrganizations(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, o := range f.orgs {
		if o.Status == "active" && sc.Contains(o.ID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountOrganizationsCreatedSince(_ context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, o := range f.orgs {
		if sc.Contains(o.ID) && !o.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) OrganizationNames(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[primitive.ObjectID]string, len(ids))
	for _, o := range f.orgs {
		for _, id := range ids {
			if o.ID == id {
				out[id] = o.Name
			}
		}
	}
	return out, nil
}

func (f *fakeStore) CountEvents(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountPublishedEvents(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, ev := range f.events {
		if ev.Published && sc.Contains(ev.OrganizationID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountUpcomingEvents(_ context.Context, sc scope.Scope, now time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && ev.StartsAt.After(now) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountOngoingEvents(_ context.Context, sc scope.Scope, now time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && !ev.StartsAt.After(now) && !ev.EndsAt.Before(now) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountEventsCreatedSince(_ context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && !ev.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) RecentEvents(_ context.Context, sc scope.Scope, limit int64) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return capEvents(out, limit), nil
}

func (f *fakeStore) UpcomingPublishedEvents(_ context.Context, sc scope.Scope, now time.Time, limit int64) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && ev.Published && ev.StartsAt.After(now) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return capEvents(out, limit), nil
}

func (f *fakeStore) EventsStartingSoon(_ context.Context, sc scope.Scope, now, until time.Time) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && ev.Published && ev.StartsAt.After(now) && !ev.StartsAt.After(until) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out, nil
}

func (f *fakeStore) FuturePublishedEvents(_ context.Context, sc scope.Scope, now time.Time) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if sc.Contains(ev.OrganizationID) && ev.Published && ev.StartsAt.After(now) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeStore) EventsCreatedBy(_ context.Context, userID primitive.ObjectID, limit int64) ([]models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Event
	for _, ev := range f.events {
		if ev.CreatedBy == userID {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.Hex() > out[j].ID.Hex()
	})
	return capEvents(out, limit), nil
}

func (f *fakeStore) CountSessions(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, s := range f.sessions {
		if s.IsBreak {
			continue
		}
		if orgID, ok := f.sessionOrg(s); ok && sc.Contains(orgID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountSessionsCreatedSince(_ context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, s := range f.sessions {
		if s.IsBreak || s.CreatedAt.Before(since) {
			continue
		}
		if orgID, ok := f.sessionOrg(s); ok && sc.Contains(orgID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) SessionCountsForEvents(_ context.Context, eventIDs []primitive.ObjectID) (map[primitive.ObjectID]dashboard.EventCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[primitive.ObjectID]bool, len(eventIDs))
	for _, id := range eventIDs {
		wanted[id] = true
	}
	out := make(map[primitive.ObjectID]dashboard.EventCounts)
	for _, s := range f.sessions {
		eventID, ok := f.sessionEvent(s)
		if !ok || !wanted[eventID] {
			continue
		}
		c := out[eventID]
		c.Sessions++
		if !s.IsBreak {
			c.Presentations++
		}
		out[eventID] = c
	}
	return out, nil
}

func (f *fakeStore) SessionsModeratedBy(_ context.Context, participantID primitive.ObjectID, limit int64) ([]models.ProgramSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.ProgramSession
	for _, s := range f.sessions {
		if s.IsBreak {
			continue
		}
		for _, m := range s.ModeratorIDs {
			if m == participantID {
				out = append(out, s)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) EventForSession(_ context.Context, sessionID primitive.ObjectID) (*models.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.ID != sessionID {
			continue
		}
		eventID, ok := f.sessionEvent(s)
		if !ok {
			return nil, nil
		}
		for i := range f.events {
			if f.events[i].ID == eventID {
				return &f.events[i], nil
			}
		}
		return nil, nil
	}
	return nil, nil
}

func (f *fakeStore) CountParticipants(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, p := range f.participants {
		if sc.Contains(p.OrganizationID) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) CountParticipantsCreatedSince(_ context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, p := range f.participants {
		if sc.Contains(p.OrganizationID) && !p.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) ParticipantByEmail(_ context.Context, email string) (*models.Participant, error) {
	if f.err != nil {
		return nil, f.err
	}
	folded := strings.ToLower(strings.TrimSpace(email))
	for i := range f.participants {
		if f.participants[i].EmailCI == folded {
			return &f.participants[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CountActiveSponsors(_ context.Context, sc scope.Scope) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, s := range f.sponsors {
		if s.Status == "active" && sc.Contains(s.OrganizationID) {
			n++
		}
	}
	return n, nil
}

// sessionOrg walks venue -> event day -> event -> organization. A broken
// chain means the session is invisible, same as the mongo resolver.
func (f *fakeStore) sessionOrg(s models.ProgramSession) (primitive.ObjectID, bool) {
	eventID, ok := f.sessionEvent(s)
	if !ok {
		return primitive.ObjectID{}, false
	}
	for _, ev := range f.events {
		if ev.ID == eventID {
			return ev.OrganizationID, true
		}
	}
	return primitive.ObjectID{}, false
}

func (f *fakeStore) sessionEvent(s models.ProgramSession) (primitive.ObjectID, bool) {
	for _, v := range f.venues {
		if v.ID == s.VenueID {
			for _, d := range f.days {
				if d.ID == v.EventDayID {
					return d.EventID, true
				}
			}
		}
	}
	return primitive.ObjectID{}, false
}

func capEvents(events []models.Event, limit int64) []models.Event {
	if limit > 0 && int64(len(events)) > limit {
		return events[:limit]
	}
	return events
}
