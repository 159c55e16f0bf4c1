// internal/app/store/events/eventstore.go

// Package eventstore reads the events collection. Every query takes the
// request's visibility scope; the filter builders are exported so the
// scoping and boundary rules can be unit-tested without a database.
//
// Time boundary convention: an event is upcoming only when it starts
// strictly after the reference instant. An event starting exactly at the
// instant is already ongoing.
package eventstore

import (
	"context"
	"time"

	"github.com/confhub/confhub/internal/app/system/scope"
	"github.com/confhub/confhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	col *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{col: db.Collection("events")}
}

// UpcomingFilter matches events starting strictly after now.
func UpcomingFilter(sc scope.Scope, now time.Time) bson.M {
	return sc.Filter("organization_id", bson.M{"starts_at": bson.M{"$gt": now}})
}

// OngoingFilter matches events whose [starts_at, ends_at] window covers now,
// boundaries included.
func OngoingFilter(sc scope.Scope, now time.Time) bson.M {
	return sc.Filter("organization_id", bson.M{
		"starts_at": bson.M{"$lte": now},
		"ends_at":   bson.M{"$gte": now},
	})
}

// StartingSoonFilter matches published events with now < starts_at <= until.
func StartingSoonFilter(sc scope.Scope, now, until time.Time) bson.M {
	return sc.Filter("organization_id", bson.M{
		"published": true,
		"starts_at": bson.M{"$gt": now, "$lte": until},
	})
}

func (s *Store) CountAll(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{}))
}

func (s *Store) CountPublished(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{"published": true}))
}

func (s *Store) CountUpcoming(ctx context.Context, sc scope.Scope, now time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, UpcomingFilter(sc, now))
}

func (s *Store) CountOngoing(ctx context.Context, sc scope.Scope, now time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, OngoingFilter(sc, now))
}

func (s *Store) CountCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	return s.col.CountDocuments(ctx, sc.Filter("organization_id", bson.M{"created_at": bson.M{"$gte": since}}))
}

// Recent returns the newest events by creation time, newest first, with
// _id descending as the tie-break so the order is stable.
func (s *Store) Recent(ctx context.Context, sc scope.Scope, limit int64) ([]models.Event, error) {
	if sc.Empty() {
		return nil, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, sc.Filter("organization_id", bson.M{}), opts)
}

// UpcomingPublished returns published events starting strictly after now,
// soonest first.
func (s *Store) UpcomingPublished(ctx context.Context, sc scope.Scope, now time.Time, limit int64) ([]models.Event, error) {
	if sc.Empty() {
		return nil, nil
	}
	filter := sc.Filter("organization_id", bson.M{
		"published": true,
		"starts_at": bson.M{"$gt": now},
	})
	opts := options.Find().
		SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "_id", Value: 1}}).
		SetLimit(limit)
	return s.find(ctx, filter, opts)
}

// StartingSoon returns published events starting within (now, until],
// soonest first. Feeds the starting-soon notifications.
func (s *Store) StartingSoon(ctx context.Context, sc scope.Scope, now, until time.Time) ([]models.Event, error) {
	if sc.Empty() {
		return nil, nil
	}
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "_id", Value: 1}})
	return s.find(ctx, StartingSoonFilter(sc, now, until), opts)
}

// FuturePublished returns every published event starting after now, for
// the incomplete-program check.
func (s *Store) FuturePublished(ctx context.Context, sc scope.Scope, now time.Time) ([]models.Event, error) {
	if sc.Empty() {
		return nil, nil
	}
	filter := sc.Filter("organization_id", bson.M{
		"published": true,
		"starts_at": bson.M{"$gt": now},
	})
	opts := options.Find().SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "_id", Value: 1}})
	return s.find(ctx, filter, opts)
}

// CreatedBy returns the newest events created by the given user,
// regardless of organization.
func (s *Store) CreatedBy(ctx context.Context, userID primitive.ObjectID, limit int64) ([]models.Event, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	return s.find(ctx, bson.M{"created_by": userID}, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Event, error) {
	cur, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Event
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
