// internal/app/system/scope/scope.go

// Package scope carries the organization-visibility restriction resolved
// once per request and applied to every downstream query. Admins get the
// unrestricted sentinel; everyone else gets the set of organization IDs
// from their active memberships.
package scope

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scope restricts queries to the organizations a principal may see.
// The zero value is fully restricted (sees nothing).
type Scope struct {
	All    bool
	OrgIDs []primitive.ObjectID
}

// Unrestricted returns the admin scope: every organization visible.
func Unrestricted() Scope {
	return Scope{All: true}
}

// Orgs returns a scope limited to the given organization IDs.
func Orgs(ids []primitive.ObjectID) Scope {
	return Scope{OrgIDs: ids}
}

// Empty reports whether the scope can match no rows at all. Callers may
// short-circuit to zero counts and empty lists without touching the store.
func (s Scope) Empty() bool {
	return !s.All && len(s.OrgIDs) == 0
}

// Filter adds the organization restriction to a query filter under the
// given field name and returns the same map. Unrestricted scopes leave
// the filter untouched.
func (s Scope) Filter(field string, f bson.M) bson.M {
	if s.All {
		return f
	}
	f[field] = bson.M{"$in": s.OrgIDs}
	return f
}

// Contains reports whether the scope permits the given organization.
func (s Scope) Contains(orgID primitive.ObjectID) bool {
	if s.All {
		return true
	}
	for _, id := range s.OrgIDs {
		if id == orgID {
			return true
		}
	}
	return false
}
