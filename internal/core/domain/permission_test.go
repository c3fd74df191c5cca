package domain

import "testing"

func TestHasPermission_TotalAndDeterministic(t *testing.T) {
	for _, role := range AllRoles {
		for _, perm := range AllPermissions {
			first := HasPermission(role, perm)
			for i := 0; i < 3; i++ {
				if got := HasPermission(role, perm); got != first {
					t.Fatalf("HasPermission(%s, %s) changed between calls", role, perm)
				}
			}
		}
	}
}

func TestHasPermission_UnknownRoleGetsNothing(t *testing.T) {
	for _, role := range []Role{"", "ADMIN", "superuser", "Admin"} {
		for _, perm := range AllPermissions {
			if HasPermission(role, perm) {
				t.Fatalf("unknown role %q granted %s", role, perm)
			}
		}
		if len(PermissionsFor(role)) != 0 {
			t.Fatalf("unknown role %q has permissions", role)
		}
	}
}

func TestHasPermission_Table(t *testing.T) {
	tests := []struct {
		role Role
		perm Permission
		want bool
	}{
		{RoleRequester, PermTicketsCreate, true},
		{RoleRequester, PermTicketsViewOwn, true},
		{RoleRequester, PermTicketsViewAll, false},
		{RoleRequester, PermUsersDelete, false},
		{RoleAgent, PermTicketsViewAll, true},
		{RoleAgent, PermTicketsAssign, true},
		{RoleAgent, PermUsersDelete, false},
		{RoleAgent, PermAuditView, false},
		{RoleManager, PermUsersDelete, true},
		{RoleAdmin, PermUsersDelete, true},
		{RoleAdmin, PermAuditView, true},
	}
	for _, tt := range tests {
		if got := HasPermission(tt.role, tt.perm); got != tt.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", tt.role, tt.perm, got, tt.want)
		}
	}
}

func TestManagerAndAdminAreEquivalent(t *testing.T) {
	for _, perm := range AllPermissions {
		if HasPermission(RoleManager, perm) != HasPermission(RoleAdmin, perm) {
			t.Fatalf("manager and admin differ on %s", perm)
		}
	}
}

func TestHasRouteAccess(t *testing.T) {
	tests := []struct {
		role Role
		path string
		want bool
	}{
		{RoleAdmin, "/admin", true},
		{RoleAdmin, "/admin/users", true},
		{RoleAdmin, "/admin-other", false},
		{RoleManager, "/admin/users", true},
		{RoleAgent, "/admin/users", false},
		{RoleAgent, "/agent/queue", true},
		{RoleRequester, "/admin/users", false},
		{RoleRequester, "/tickets", true},
		{RoleRequester, "/tickets/42", true},
		{RoleRequester, "/ticketsx", false},
		{RoleRequester, "/agent", false},
		{Role("unknown"), "/dashboard", false},
	}
	for _, tt := range tests {
		if got := HasRouteAccess(tt.role, tt.path); got != tt.want {
			t.Errorf("HasRouteAccess(%s, %q) = %v, want %v", tt.role, tt.path, got, tt.want)
		}
	}
}

func TestNamedPredicates(t *testing.T) {
	if CanViewAllTickets(RoleRequester) {
		t.Fatalf("requester must not view all tickets")
	}
	if !CanViewAllTickets(RoleAgent) {
		t.Fatalf("agent must view all tickets")
	}
	if CanViewPerformanceMetrics(RoleAgent) {
		t.Fatalf("agent must not view performance metrics")
	}
	if !CanViewPerformanceMetrics(RoleManager) || !CanViewPerformanceMetrics(RoleAdmin) {
		t.Fatalf("manager and admin must view performance metrics")
	}
}

func TestPermissionsFor_Sorted(t *testing.T) {
	perms := PermissionsFor(RoleAgent)
	for i := 1; i < len(perms); i++ {
		if perms[i-1] > perms[i] {
			t.Fatalf("permissions not sorted: %v", perms)
		}
	}
	if len(PermissionsFor(RoleAdmin)) != len(AllPermissions) {
		t.Fatalf("admin should hold every permission")
	}
}

func TestUserPublic_DropsHash(t *testing.T) {
	u := &User{ID: "1", Email: "a@x.com", PasswordHash: "secret-hash", Role: RoleAgent}
	pub := u.Public()
	if pub.ID != "1" || pub.Role != RoleAgent {
		t.Fatalf("unexpected public user: %+v", pub)
	}
	var nilUser *User
	if nilUser.Public() != nil {
		t.Fatalf("nil user should project to nil")
	}
}
