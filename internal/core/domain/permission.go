package domain

import (
	"slices"
	"strings"
)

// Permission is an opaque capability tag. Permissions are never stored per
// user; they derive from the role through rolePermissions.
type Permission string

const (
	PermTicketsCreate  Permission = "tickets:create"
	PermTicketsViewOwn Permission = "tickets:view_own"
	PermTicketsViewAll Permission = "tickets:view_all"
	PermTicketsUpdate  Permission = "tickets:update"
	PermTicketsAssign  Permission = "tickets:assign"
	PermTicketsDelete  Permission = "tickets:delete"
	PermTicketsComment Permission = "tickets:comment"

	PermKnowledgeView   Permission = "knowledge:view"
	PermKnowledgeCreate Permission = "knowledge:create"
	PermKnowledgeUpdate Permission = "knowledge:update"
	PermKnowledgeDelete Permission = "knowledge:delete"

	PermUsersView   Permission = "users:view"
	PermUsersCreate Permission = "users:create"
	PermUsersUpdate Permission = "users:update"
	PermUsersDelete Permission = "users:delete"

	PermAnalyticsView        Permission = "analytics:view"
	PermAnalyticsPerformance Permission = "analytics:performance"
	PermAuditView            Permission = "audit:view"
	PermSettingsManage       Permission = "settings:manage"
)

// AllPermissions lists every defined permission tag.
var AllPermissions = []Permission{
	PermTicketsCreate, PermTicketsViewOwn, PermTicketsViewAll, PermTicketsUpdate,
	PermTicketsAssign, PermTicketsDelete, PermTicketsComment,
	PermKnowledgeView, PermKnowledgeCreate, PermKnowledgeUpdate, PermKnowledgeDelete,
	PermUsersView, PermUsersCreate, PermUsersUpdate, PermUsersDelete,
	PermAnalyticsView, PermAnalyticsPerformance, PermAuditView, PermSettingsManage,
}

type permissionSet map[Permission]struct{}

func newPermissionSet(perms ...Permission) permissionSet {
	s := make(permissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

var requesterPermissions = []Permission{
	PermTicketsCreate, PermTicketsViewOwn, PermTicketsComment,
	PermKnowledgeView,
}

var agentPermissions = append(slices.Clone(requesterPermissions),
	PermTicketsViewAll, PermTicketsUpdate, PermTicketsAssign,
	PermKnowledgeCreate, PermKnowledgeUpdate,
)

// rolePermissions is total over AllRoles. Lookups for any other role yield
// a nil set, which grants nothing.
var rolePermissions = map[Role]permissionSet{
	RoleRequester: newPermissionSet(requesterPermissions...),
	RoleAgent:     newPermissionSet(agentPermissions...),
	RoleManager:   newPermissionSet(AllPermissions...),
	RoleAdmin:     newPermissionSet(AllPermissions...),
}

var requesterRoutes = []string{"/dashboard", "/tickets", "/knowledge", "/profile", "/notifications"}

var agentRoutes = append(slices.Clone(requesterRoutes), "/agent")

var managerRoutes = append(slices.Clone(agentRoutes), "/manager", "/analytics", "/admin")

var roleRoutes = map[Role][]string{
	RoleRequester: requesterRoutes,
	RoleAgent:     agentRoutes,
	RoleManager:   managerRoutes,
	RoleAdmin:     managerRoutes,
}

// HasPermission reports whether role is granted perm.
func HasPermission(role Role, perm Permission) bool {
	_, ok := rolePermissions[role][perm]
	return ok
}

// PermissionsFor returns the permissions granted to role, sorted.
func PermissionsFor(role Role) []Permission {
	set := rolePermissions[role]
	out := make([]Permission, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// HasRouteAccess reports whether path equals, or is a sub-path of, one of
// the route prefixes assigned to role. "/admin-other" does not match "/admin".
func HasRouteAccess(role Role, path string) bool {
	for _, prefix := range roleRoutes[role] {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// CanViewAllTickets reports whether role sees every ticket rather than only
// the ones it created.
func CanViewAllTickets(role Role) bool {
	return HasPermission(role, PermTicketsViewAll)
}

// CanViewPerformanceMetrics reports whether role sees team performance
// figures on the dashboard.
func CanViewPerformanceMetrics(role Role) bool {
	return HasPermission(role, PermAnalyticsPerformance)
}
