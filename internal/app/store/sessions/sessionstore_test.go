package sessionstore_test

import (
	"reflect"
	"testing"

	sessionstore "github.com/confhub/confhub/internal/app/store/sessions"
	"go.mongodb.org/mongo-driver/bson"
)

func TestNonBreakFilter(t *testing.T) {
	got := sessionstore.NonBreakFilter()

	want := bson.M{"is_break": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("filter: got %v, want %v", got, want)
	}
}
