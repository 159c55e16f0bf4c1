// internal/domain/models/sponsor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sponsor is a sponsoring company attached to an organization.
type Sponsor struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	OrganizationID primitive.ObjectID `bson:"organization_id" json:"organization_id"`
	Status         string             `bson:"status" json:"status"` // "active" | "inactive"
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
