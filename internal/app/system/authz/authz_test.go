package authz_test

import (
	"net/http/httptest"
	"testing"

	"github.com/confhub/confhub/internal/app/system/auth"
	"github.com/confhub/confhub/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPrincipalCtx_NoUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)

	p, ok := authz.PrincipalCtx(req)
	if ok {
		t.Fatal("expected ok=false for unauthenticated request")
	}
	if !p.ID.IsZero() {
		t.Errorf("expected zero principal ID, got %s", p.ID.Hex())
	}
}

func TestPrincipalCtx_MalformedID(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   "not-an-object-id",
		Role: "admin",
	})

	if _, ok := authz.PrincipalCtx(req); ok {
		t.Fatal("expected ok=false for malformed user ID")
	}
}

func TestPrincipalCtx_NormalizesRole(t *testing.T) {
	id := primitive.NewObjectID()
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:    id.Hex(),
		Name:  "Ada Admin",
		Email: "ada@example.com",
		Role:  "  Admin ",
	})

	p, ok := authz.PrincipalCtx(req)
	if !ok {
		t.Fatal("expected ok=true")
	}
	if p.Role != authz.RoleAdmin {
		t.Errorf("Role: got %q, want %q", p.Role, authz.RoleAdmin)
	}
	if !p.IsAdmin() {
		t.Error("expected IsAdmin()=true")
	}
	if p.ID != id {
		t.Errorf("ID: got %s, want %s", p.ID.Hex(), id.Hex())
	}
	if p.Email != "ada@example.com" {
		t.Errorf("Email: got %q", p.Email)
	}
}

func TestIsOrganizer(t *testing.T) {
	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = auth.WithTestUser(req, &auth.SessionUser{
		ID:   primitive.NewObjectID().Hex(),
		Role: "organizer",
	})

	if !authz.IsOrganizer(req) {
		t.Error("expected IsOrganizer=true")
	}
	if authz.IsAdmin(req) {
		t.Error("expected IsAdmin=false for organizer")
	}
}
