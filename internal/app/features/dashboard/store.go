// internal/app/features/dashboard/store.go

package dashboard

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventCounts carries the program figures for one event: Sessions counts
// every slot including breaks, Presentations only content slots.
type EventCounts struct {
	Sessions      int64
	Presentations int64
}

// Store is the read-only query surface the aggregator runs on. The mongo
// implementation lives in internal/app/store/dashboard; tests use an
// in-memory fake.
type Store interface {
	// Memberships.
	ActiveOrgIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error)
	MembershipCount(ctx context.Context, userID primitive.ObjectID) (int64, error)

	// Organizations.
	CountActiveOrganizations(ctx context.Context, sc scope.Scope) (int64, error)
	CountOrganizationsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error)
	OrganizationNames(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)

	// Events.
	CountEvents(ctx context.Context, sc scope.Scope) (int64, error)
	CountPublishedEvents(ctx context.Context, sc scope.Scope) (int64, error)
	CountUpcomingEvents(ctx context.Context, sc scope.Scope, now time.Time) (int64, error)
	CountOngoingEvents(ctx context.Context, sc scope.Scope, now time.Time) (int64, error)
	CountEventsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error)
	RecentEvents(ctx context.Context, sc scope.Scope, limit int64) ([]models.Event, error)
	UpcomingPublishedEvents(ctx context.Context, sc scope.Scope, now time.Time, limit int64) ([]models.Event, error)
	EventsStartingSoon(ctx context.Context, sc scope.Scope, now, until time.Time) ([]models.Event, error)
	FuturePublishedEvents(ctx context.Context, sc scope.Scope, now time.Time) ([]models.Event, error)
	EventsCreatedBy(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Event, error)

	// Program sessions (scoped through venue -> event day -> event).
	CountSessions(ctx context.Context, sc scope.Scope) (int64, error)
	CountSessionsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error)
	SessionCountsForEvents(ctx context.Context, eventIDs []primitive.ObjectID) (map[primitive.ObjectID]EventCounts, error)
	SessionsModeratedBy(ctx context.Context, participantID primitive.ObjectID, limit int64) ([]models.ProgramSession, error)
	EventForSession(ctx context.Context, sessionID primitive.ObjectID) (*models.Event, error)

	// Participants.
	CountParticipants(ctx context.Context, sc scope.Scope) (int64, error)
	CountParticipantsCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error)
	ParticipantByEmail(ctx context.Context, email string) (*models.Participant, error)

	// Sponsors.
	CountActiveSponsors(ctx context.Context, sc scope.Scope) (int64, error)
}
