// internal/app/store/participants/participantstore.go

// Package participantstore reads the participants collection (speakers,
// moderators, attendees registered to an organization's events).
package participantstore

import (
	"context"
	"errors"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("participants")}
}

func (s *Store) Count(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{}))
}

func (s *Store) CountCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{"created_at": bson.M{"$gte": since}}))
}

// ByEmail finds the participant record matching a user's email, folded
// case-insensitively. Returns (nil, nil) when the user has no participant
// record; that is a normal state, not an error.
func (s *Store) ByEmail(ctx context.Context, email string) (*models.Participant, error) {
	folded := text.Fold(email)
	var p models.Participant
	err := s.col.FindOne(ctx, bson.M{"email_ci": folded}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
