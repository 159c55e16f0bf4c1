// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/confhub/confhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is the authenticated actor making a request, as the dashboard
// aggregation layer sees it: identity, email, and role only. Organization
// visibility is resolved from memberships, never carried here.
type Principal struct {
	ID    primitive.ObjectID
	Name  string
	Email string
	Role  string
}

// IsAdmin reports whether the principal sees all organizations.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// PrincipalCtx returns the request's principal and a found flag. If no user
// is present in context or the user ID is malformed, it returns a zero
// Principal and false, so ok=true always means a valid, authenticated user
// with a valid ObjectID. The role is normalized to lowercase.
func PrincipalCtx(r *http.Request) (Principal, bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return Principal{}, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return Principal{}, false
	}
	return Principal{
		ID:    userID,
		Name:  user.Name,
		Email: user.Email,
		Role:  strings.ToLower(strings.TrimSpace(user.Role)),
	}, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	p, ok := PrincipalCtx(r)
	return ok && p.IsAdmin()
}

// IsOrganizer reports whether the current request's user is an organizer.
func IsOrganizer(r *http.Request) bool {
	p, ok := PrincipalCtx(r)
	return ok && p.Role == RoleOrganizer
}
