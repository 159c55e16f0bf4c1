package links_test

import (
	"testing"

	"github.com/confhub/confhub/internal/app/system/links"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestLinks(t *testing.T) {
	id := primitive.NewObjectID()

	if got, want := links.Event(id), "/events/"+id.Hex(); got != want {
		t.Errorf("Event: got %q, want %q", got, want)
	}
	if got, want := links.Session(id), "/sessions/"+id.Hex(); got != want {
		t.Errorf("Session: got %q, want %q", got, want)
	}
}
