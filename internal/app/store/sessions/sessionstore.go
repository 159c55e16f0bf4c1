// internal/app/store/sessions/sessionstore.go

// Package sessionstore reads program_sessions together with the venues,
// event_days, and events collections it hangs off. Sessions carry no
// organization ID of their own, so every scoped query first walks the
// ownership chain venue -> event day -> event -> organization.
package sessionstore

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
	sessions *mongo.Collection
	venues   *mongo.Collection
	days     *mongo.Collection
	events   *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		sessions: db.Collection("program_sessions"),
		venues:   db.Collection("venues"),
		days:     db.Collection("event_days"),
		events:   db.Collection("events"),
	}
}

// NonBreakFilter matches real program slots; breaks never count as sessions.
func NonBreakFilter() bson.M {
	return bson.M{"is_break": false}
}

// CountNonBreak counts program sessions visible to the scope, excluding
// breaks. For restricted scopes the chain is resolved first; sessions
// whose chain is broken (orphaned venue or day) are naturally excluded.
func (s *Store) CountNonBreak(ctx context.Context, sc scope.Scope) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	if sc.All {
		return s.sessions.CountDocuments(ctx, NonBreakFilter())
	}

	venueIDs, _, err := s.venuesInScope(ctx, sc)
	if err != nil {
		return 0, err
	}
	if len(venueIDs) == 0 {
		return 0, nil
	}
	f := NonBreakFilter()
	f["venue_id"] = bson.M{"$in": venueIDs}
	return s.sessions.CountDocuments(ctx, f)
}

// CountCreatedSince counts non-break sessions created at or after the
// cutoff, within the scope.
func (s *Store) CountCreatedSince(ctx context.Context, sc scope.Scope, since time.Time) (int64, error) {
	if sc.Empty() {
		return 0, nil
	}
	f := NonBreakFilter()
	f["created_at"] = bson.M{"$gte": since}
	if !sc.All {
		venueIDs, _, err := s.venuesInScope(ctx, sc)
		if err != nil {
			return 0, err
		}
		if len(venueIDs) == 0 {
			return 0, nil
		}
		f["venue_id"] = bson.M{"$in": venueIDs}
	}
	return s.sessions.CountDocuments(ctx, f)
}

// EventCounts holds per-event program figures: Sessions counts every
// slot including breaks, Presentations counts only content slots.
type EventCounts struct {
	Sessions      int64
	Presentations int64
}

// CountsForEvents returns per-event session and presentation counts for
// the given event IDs. Events with no program slots are absent from the map.
func (s *Store) CountsForEvents(ctx context.Context, eventIDs []primitive.ObjectID) (map[primitive.ObjectID]EventCounts, error) {
	out := make(map[primitive.ObjectID]EventCounts, len(eventIDs))
	if len(eventIDs) == 0 {
		return out, nil
	}

	venueIDs, venueEvent, err := s.venuesForEvents(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	if len(venueIDs) == 0 {
		return out, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"venue_id": bson.M{"$in": venueIDs},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":      "$venue_id",
			"sessions": bson.M{"$sum": 1},
			"presentations": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$is_break", false}}, 1, 0},
			}},
		}}},
	}
	cur, err := s.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var row struct {
			VenueID       primitive.ObjectID `bson:"_id"`
			Sessions      int64              `bson:"sessions"`
			Presentations int64              `bson:"presentations"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		if eventID, ok := venueEvent[row.VenueID]; ok {
			c := out[eventID]
			c.Sessions += row.Sessions
			c.Presentations += row.Presentations
			out[eventID] = c
		}
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ModeratedBy returns the newest non-break sessions moderated by the
// given participant.
func (s *Store) ModeratedBy(ctx context.Context, participantID primitive.ObjectID, limit int64) ([]models.ProgramSession, error) {
	f := NonBreakFilter()
	f["moderator_ids"] = participantID
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cur, err := s.sessions.Find(ctx, f, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.ProgramSession
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EventForSession resolves the owning event of a session through the
// venue and event-day chain. Returns (nil, nil) when any link is missing.
func (s *Store) EventForSession(ctx context.Context, sessionID primitive.ObjectID) (*models.Event, error) {
	var sess struct {
		VenueID primitive.ObjectID `bson:"venue_id"`
	}
	if err := s.sessions.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&sess); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	var venue struct {
		EventDayID primitive.ObjectID `bson:"event_day_id"`
	}
	if err := s.venues.FindOne(ctx, bson.M{"_id": sess.VenueID}).Decode(&venue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	var day struct {
		EventID primitive.ObjectID `bson:"event_id"`
	}
	if err := s.days.FindOne(ctx, bson.M{"_id": venue.EventDayID}).Decode(&day); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	var ev models.Event
	if err := s.events.FindOne(ctx, bson.M{"_id": day.EventID}).Decode(&ev); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

// venuesInScope resolves every venue belonging to events the scope can
// see. Returns the venue IDs plus a venue -> event mapping.
func (s *Store) venuesInScope(ctx context.Context, sc scope.Scope) ([]primitive.ObjectID, map[primitive.ObjectID]primitive.ObjectID, error) {
	eventIDs, err := s.eventIDsInScope(ctx, sc)
	if err != nil {
		return nil, nil, err
	}
	if len(eventIDs) == 0 {
		return nil, nil, nil
	}
	return s.venuesForEvents(ctx, eventIDs)
}

func (s *Store) eventIDsInScope(ctx context.Context, sc scope.Scope) ([]primitive.ObjectID, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cur, err := s.events.Find(ctx, sc.Filter("organization_id", bson.M{}), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var ids []primitive.ObjectID
	for cur.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, cur.Err()
}

func (s *Store) venuesForEvents(ctx context.Context, eventIDs []primitive.ObjectID) ([]primitive.ObjectID, map[primitive.ObjectID]primitive.ObjectID, error) {
	dayCur, err := s.days.Find(ctx, bson.M{"event_id": bson.M{"$in": eventIDs}},
		options.Find().SetProjection(bson.M{"_id": 1, "event_id": 1}))
	if err != nil {
		return nil, nil, err
	}
	defer dayCur.Close(ctx)

	dayEvent := make(map[primitive.ObjectID]primitive.ObjectID)
	var dayIDs []primitive.ObjectID
	for dayCur.Next(ctx) {
		var row struct {
			ID      primitive.ObjectID `bson:"_id"`
			EventID primitive.ObjectID `bson:"event_id"`
		}
		if err := dayCur.Decode(&row); err != nil {
			return nil, nil, err
		}
		dayEvent[row.ID] = row.EventID
		dayIDs = append(dayIDs, row.ID)
	}
	if err := dayCur.Err(); err != nil {
		return nil, nil, err
	}
	if len(dayIDs) == 0 {
		return nil, nil, nil
	}

	venueCur, err := s.venues.Find(ctx, bson.M{"event_day_id": bson.M{"$in": dayIDs}},
		options.Find().SetProjection(bson.M{"_id": 1, "event_day_id": 1}))
	if err != nil {
		return nil, nil, err
	}
	defer venueCur.Close(ctx)

	venueEvent := make(map[primitive.ObjectID]primitive.ObjectID)
	var venueIDs []primitive.ObjectID
	for venueCur.Next(ctx) {
		var row struct {
			ID         primitive.ObjectID `bson:"_id"`
			EventDayID primitive.ObjectID `bson:"event_day_id"`
		}
		if err := venueCur.Decode(&row); err != nil {
			return nil, nil, err
		}
		if eventID, ok := dayEvent[row.EventDayID]; ok {
			venueEvent[row.ID] = eventID
			venueIDs = append(venueIDs, row.ID)
		}
	}
	if err := venueCur.Err(); err != nil {
		return nil, nil, err
	}
	return venueIDs, venueEvent, nil
}
