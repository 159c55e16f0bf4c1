package scope_test

import (
	"reflect"
	"testing"

	"github.com/confhub/confhub/internal/app/system/scope"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUnrestrictedLeavesFilterUntouched(t *testing.T) {
	f := bson.M{"published": true}

	got := scope.Unrestricted().Filter("organization_id", f)

	want := bson.M{"published": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestOrgsAddsInClause(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}
	f := bson.M{}

	got := scope.Orgs(ids).Filter("organization_id", f)

	want := bson.M{"organization_id": bson.M{"$in": ids}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}

func TestEmpty(t *testing.T) {
	if scope.Unrestricted().Empty() {
		t.Error("unrestricted scope must not be empty")
	}
	if !scope.Orgs(nil).Empty() {
		t.Error("scope with no orgs must be empty")
	}
	if (scope.Scope{}).Empty() != true {
		t.Error("zero scope must be empty")
	}
}

func TestContains(t *testing.T) {
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()
	s := scope.Orgs([]primitive.ObjectID{a, b})

	if !s.Contains(a) || !s.Contains(b) {
		t.Error("expected member orgs to be contained")
	}
	if s.Contains(c) {
		t.Error("expected non-member org to be excluded")
	}
	if !scope.Unrestricted().Contains(c) {
		t.Error("unrestricted scope contains everything")
	}
}
