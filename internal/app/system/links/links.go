// internal/app/system/links/links.go

// Package links builds the admin-panel deep links embedded in activity and
// notification feeds. Paths are relative to the panel root so they work
// behind any base URL.
package links

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event returns the detail link for an event.
func Event(id primitive.ObjectID) string {
	return "/events/" + id.Hex()
}

// Session returns the detail link for a program session.
func Session(id primitive.ObjectID) string {
	return "/sessions/" + id.Hex()
}
