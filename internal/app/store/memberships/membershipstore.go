// internal/app/store/memberships/membershipstore.go

// Package membershipstore reads org_memberships, the join between users
// and organizations. Visibility scoping treats a membership as active
// only when its status is "active" and it has not been soft-deleted.
package membershipstore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("org_memberships")}
}

// ActiveFilter matches memberships that currently grant visibility.
func ActiveFilter(userID primitive.ObjectID) bson.M {
	return bson.M{
		"user_id":    userID,
		"status":     "active",
		"deleted_at": nil,
	}
}

// ActiveOrgIDs returns the organizations the user can see through active,
// non-deleted memberships. A user with none gets an empty slice, not an error.
func (s *Store) ActiveOrgIDs(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cur, err := s.col.Find(ctx, ActiveFilter(userID))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []primitive.ObjectID
	for cur.Next(ctx) {
		var row struct {
			OrgID primitive.ObjectID `bson:"org_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, row.OrgID)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountForUser counts every membership row for the user, including
// suspended and soft-deleted ones. Quick stats reports the lifetime figure.
func (s *Store) CountForUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"user_id": userID})
}
