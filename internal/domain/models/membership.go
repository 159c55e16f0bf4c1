// internal/domain/models/membership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrgMembership is the authoritative join between users and organizations.
// A membership grants visibility only while Status is "active" and the
// record has not been soft-deleted.
type OrgMembership struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	OrgID     primitive.ObjectID `bson:"org_id" json:"org_id"`
	Role      string             `bson:"role" json:"role"` // "owner" | "organizer"
	Status    string             `bson:"status" json:"status"`
	DeletedAt *time.Time         `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
