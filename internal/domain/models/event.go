// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a conference or meetup owned by exactly one organization.
// Program structure hangs off the event through event_days and venues.
type Event struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"name_ci"`
	Slug           string             `bson:"slug" json:"slug"`
	Status         string             `bson:"status" json:"status"` // "draft" | "scheduled" | "cancelled"
	StartsAt       time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt         time.Time          `bson:"ends_at" json:"ends_at"`
	Location       string             `bson:"location,omitempty" json:"location,omitempty"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	CreatedBy      primitive.ObjectID `bson:"created_by" json:"created_by"`
	Published      bool               `bson:"published" json:"published"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// EventDay is one calendar day of an event's program.
type EventDay struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID primitive.ObjectID `bson:"event_id" json:"event_id"`
	Date    time.Time          `bson:"date" json:"date"`
}

// Venue is a room or stage within an event day.
type Venue struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventDayID primitive.ObjectID `bson:"event_day_id" json:"event_day_id"`
	Name       string             `bson:"name" json:"name"`
}
