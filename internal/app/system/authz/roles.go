// internal/app/system/authz/roles.go
package authz

// Roles understood by the dashboard service.
const (
	RoleAdmin     = "admin"     // platform staff; sees every organization
	RoleOrganizer = "organizer" // scoped to active organization memberships
)
