// internal/app/store/sponsors/sponsorstore.go

// Package sponsorstore reads the sponsors collection for the dashboard's
// active-sponsor counter.
package sponsorstore

import (
	"context"

	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("sponsors")}
}

func (s *Store) CountActive(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{"status": "active"}))
}
