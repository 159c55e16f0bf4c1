// internal/domain/models/session.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramSession is a scheduled slot in an event's program. Its owning
// organization is derived transitively: venue -> event day -> event.
// Break slots (lunch, coffee) carry IsBreak and are excluded from
// session counts everywhere.
type ProgramSession struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title        string               `bson:"title" json:"title"`
	VenueID      primitive.ObjectID   `bson:"venue_id" json:"venue_id"`
	ModeratorIDs []primitive.ObjectID `bson:"moderator_ids,omitempty" json:"moderator_ids,omitempty"`
	IsBreak      bool                 `bson:"is_break" json:"is_break"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
}
