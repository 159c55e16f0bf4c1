// internal/app/store/organizations/organizationstore.go

// Package organizationstore reads the organizations collection for
// dashboard counters and name lookups.
package organizationstore

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("organizations")}
}

// CountActive counts organizations with status "active" visible to the scope.
func (s *Store) CountActive(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("_id", bson.M{"status": "active"}))
}

// CountCreatedSince counts organizations created at or after the cutoff.
func (s *Store) CountCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("_id", bson.M{"created_at": bson.M{"$gte": since}}))
}

// NamesByIDs resolves organization display names for the given IDs.
// Missing IDs are simply absent from the result map.
func (s *Store) NamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	out := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.Name
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
