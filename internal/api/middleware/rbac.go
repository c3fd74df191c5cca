package middleware

import "github.com/ticketflow/ticketflow/internal/core/domain"

// RequireOptions lists what a route demands beyond authentication. The
// caller needs any one of Roles and every one of Permissions. Empty
// fields demand nothing.
type RequireOptions struct {
	Roles       []domain.Role
	Permissions []domain.Permission
}

// Permissions is shorthand for RequireOptions{Permissions: perms}.
func Permissions(perms ...domain.Permission) RequireOptions {
	return RequireOptions{Permissions: perms}
}

// Roles is shorthand for RequireOptions{Roles: roles}.
func Roles(roles ...domain.Role) RequireOptions {
	return RequireOptions{Roles: roles}
}

func (o RequireOptions) allows(role domain.Role) bool {
	if len(o.Roles) > 0 && !domain.HasAnyRole(role, o.Roles...) {
		return false
	}
	for _, p := range o.Permissions {
		if !domain.HasPermission(role, p) {
			return false
		}
	}
	return true
}
