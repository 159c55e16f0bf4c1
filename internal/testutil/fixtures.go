// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/confhub/confhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for seeding test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateOrganization creates an active organization with the given name.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "organizations", org)
	return org
}

// CreateUser creates an active user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  fullName,
		Email:     email,
		EmailCI:   text.Fold(email),
		Role:      role,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.insert(ctx, "users", user)
	return user
}

// CreateMembership creates an active membership linking user and org.
func (f *Fixtures) CreateMembership(ctx context.Context, userID, orgID primitive.ObjectID) models.OrgMembership {
	f.t.Helper()

	m := models.OrgMembership{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		OrgID:     orgID,
		Role:      "organizer",
		Status:    "active",
		CreatedAt: time.Now().UTC(),
	}
	f.insert(ctx, "org_memberships", m)
	return m
}

// CreateEvent creates an event owned by the organization.
func (f *Fixtures) CreateEvent(ctx context.Context, orgID, createdBy primitive.ObjectID, name string, startsAt, endsAt time.Time, published bool) models.Event {
	f.t.Helper()

	now := time.Now().UTC()
	ev := models.Event{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		Slug:           text.Fold(name),
		Status:         "scheduled",
		StartsAt:       startsAt,
		EndsAt:         endsAt,
		OrganizationID: orgID,
		CreatedBy:      createdBy,
		Published:      published,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.insert(ctx, "events", ev)
	return ev
}

// CreateProgramSlot wires a full day/venue chain and one session under
// the event. Use isBreak for lunch/coffee slots.
func (f *Fixtures) CreateProgramSlot(ctx context.Context, eventID primitive.ObjectID, title string, isBreak bool, moderators ...primitive.ObjectID) models.ProgramSession {
	f.t.Helper()

	day := models.EventDay{ID: primitive.NewObjectID(), EventID: eventID, Date: time.Now().UTC()}
	venue := models.Venue{ID: primitive.NewObjectID(), EventDayID: day.ID, Name: "Main Hall"}
	sess := models.ProgramSession{
		ID:           primitive.NewObjectID(),
		Title:        title,
		VenueID:      venue.ID,
		ModeratorIDs: moderators,
		IsBreak:      isBreak,
		CreatedAt:    time.Now().UTC(),
	}
	f.insert(ctx, "event_days", day)
	f.insert(ctx, "venues", venue)
	f.insert(ctx, "program_sessions", sess)
	return sess
}

// CreateParticipant creates a participant in the organization.
func (f *Fixtures) CreateParticipant(ctx context.Context, orgID primitive.ObjectID, fullName, email string) models.Participant {
	f.t.Helper()

	p := models.Participant{
		ID:             primitive.NewObjectID(),
		FullName:       fullName,
		Email:          email,
		EmailCI:        text.Fold(email),
		OrganizationID: orgID,
		CreatedAt:      time.Now().UTC(),
	}
	f.insert(ctx, "participants", p)
	return p
}

// CreateSponsor creates an active sponsor in the organization.
func (f *Fixtures) CreateSponsor(ctx context.Context, orgID primitive.ObjectID, name string) models.Sponsor {
	f.t.Helper()

	s := models.Sponsor{
		ID:             primitive.NewObjectID(),
		Name:           name,
		OrganizationID: orgID,
		Status:         "active",
		CreatedAt:      time.Now().UTC(),
	}
	f.insert(ctx, "sponsors", s)
	return s
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("insert %s fixture: %v", coll, err)
	}
}
