// internal/app/store/dashboard/dashboardstore.go

// Package dashboardstore composes the entity stores into the single query
// surface the dashboard aggregator consumes.
package dashboardstore

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/features/dashboard"
	eventstore "github.com/confhub/confhub/internal/app/store/events"
	membershipstore "github.com/confhub/confhub/internal/app/store/memberships"
	organizationstore "github.com/confhub/confhub/internal/app/store/organizations"
	participantstore "github.com/confhub/confhub/internal/app/store/participants"
	sessionstore "github.com/confhub/confhub/internal/app/store/sessions"
	sponsorstore "github.com/confhub/confhub/internal/app/store/sponsors"
	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store implements dashboard.Store over MongoDB.
type Store struct {
	memberships   *membershipstore.Store
	organizations *organizationstore.Store
	events        *eventstore.Store
	sessions      *sessionstore.Store
	participants  *participantstore.Store
	sponsors      *sponsorstore.Store
}

var _ dashboard.Store = (*Store)(nil)

func New(db *mongo.Database) *Store {
	return &Store{
		memberships:   membershipstore.New(db),
		organizations: organizationstore.New(db),
		events:        eventstore.New(db),
		sessions:      sessionstore.New(db),
		participants:  participantstore.New(db),
		sponsors:      sponsorstore.New(db),
	}
}

func (s *Store) ActiveOrgIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	return s.memberships.ActiveOrgIDs(ctx, userID)
}

func (s *Store) MembershipCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.memberships.CountForUser(ctx, userID)
}

func (s *Store) CountActiveOrganizations(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.organizations.CountActive(ctx, sc)
}

func (s *Store) CountOrganizationsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	return s.organizations.CountCreatedSince(ctx, sc, since)
}

func (s *Store) OrganizationNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	return s.organizations.NamesByIDs(ctx, ids)
}

func (s *Store) CountEvents(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.events.CountAll(ctx, sc)
}

func (s *Store) CountPublishedEvents(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.events.CountPublished(ctx, sc)
}

func (s *Store) CountUpcomingEvents(ctx context.Context, sc scope.Scope, now time.Time) (int64, error) {
	return s.events.CountUpcoming(ctx, sc, now)
}

func (s *Store) CountOngoingEvents(ctx context.Context, sc scope.Scope, now time.Time) (int64, error) {
	return s.events.CountOngoing(ctx, sc, now)
}

func (s *Store) CountEventsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	return s.events.CountCreatedSince(ctx, sc, since)
}

func (s *Store) RecentEvents(ctx context.Context, sc scope.Scope, limit int64) ([]models.Event, error) {
	return s.events.Recent(ctx, sc, limit)
}

func (s *Store) UpcomingPublishedEvents(ctx context.Context, sc scope.Scope, now time.Time, limit int64) ([]models.Event, error) {
	return s.events.UpcomingPublished(ctx, sc, now, limit)
}

func (s *Store) EventsStartingSoon(ctx context.Context, sc scope.Scope, now, until time.Time) ([]models.Event, error) {
	return s.events.StartingSoon(ctx, sc, now, until)
}

func (s *Store) FuturePublishedEvents(ctx context.Context, sc scope.Scope, now time.Time) ([]models.Event, error) {
	return s.events.FuturePublished(ctx, sc, now)
}

func (s *Store) EventsCreatedBy(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Event, error) {
	return s.events.CreatedBy(ctx, userID, limit)
}

func (s *Store) CountSessions(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.sessions.CountNonBreak(ctx, sc)
}

func (s *Store) CountSessionsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	return s.sessions.CountCreatedSince(ctx, sc, since)
}

func (s *Store) SessionCountsForEvents(ctx context.Context, eventIDs []primitive.ObjectID) (map[primitive.ObjectID]dashboard.EventCounts, error) {
	counts, err := s.sessions.CountsForEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	out := make(map[primitive.ObjectID]dashboard.EventCounts, len(counts))
	for id, c := range counts {
		out[id] = dashboard.EventCounts{Sessions: c.Sessions, Presentations: c.Presentations}
	}
	return out, nil
}

func (s *Store) SessionsModeratedBy(ctx context.Context, participantID primitive.ObjectID, limit int64) ([]models.ProgramSession, error) {
	return s.sessions.ModeratedBy(ctx, participantID, limit)
}

func (s *Store) EventForSession(ctx context.Context, sessionID primitive.ObjectID) (*models.Event, error) {
	return s.sessions.EventForSession(ctx, sessionID)
}

func (s *Store) CountParticipants(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.participants.Count(ctx, sc)
}

func (s *Store) CountParticipantsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	return s.participants.CountCreatedSince(ctx, sc, since)
}

func (s *Store) ParticipantByEmail(ctx context.Context, email string) (*models.Participant, error) {
	return s.participants.ByEmail(ctx, email)
}

func (s *Store) CountActiveSponsors(ctx context.Context, sc scope.Scope) (int64, error) {
	return s.sponsors.CountActive(ctx, sc)
}
