package eventstore_test

import (
	"reflect"
	"testing"
	"time"

	eventstore "github.com/confhub/confhub/internal/app/store/events"
	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func TestUpcomingFilter_StrictlyAfterNow(t *testing.T) {
	got := eventstore.UpcomingFilter(scope.Unrestricted(), now)

	want := bson.M{"starts_at": bson.M{"$gt": now}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestOngoingFilter_BoundariesInclusive(t *testing.T) {
	got := eventstore.OngoingFilter(scope.Unrestricted(), now)

	want := bson.M{
		"starts_at": bson.M{"$lte": now},
		"ends_at":   bson.M{"$gte": now},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestStartingSoonFilter(t *testing.T) {
	until := now.Add(7 * 24 * time.Hour)
	orgID := primitive.NewObjectID()

	got := eventstore.StartingSoonFilter(scope.Orgs([]primitive.ObjectID{orgID}), now, until)

	want := bson.M{
		"published":       true,
		"starts_at":       bson.M{"$gt": now, "$lte": until},
		"organization_id": bson.M{"$in": []primitive.ObjectID{orgID}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestScopedFilterRestrictsOrganization(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID()}

	got := eventstore.UpcomingFilter(scope.Orgs(ids), now)

	if _, ok := got["organization_id"]; !ok {
		t.Error("scoped filter must restrict organization_id")
	}
}
