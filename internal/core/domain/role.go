package domain

// Role is the application-level role enumeration. Values are lowercase;
// the persistence layer stores the uppercase form and is the only place
// that converts between the two.
type Role string

// Roles in ascending order of privilege. Manager and admin are
// permission-equivalent.
const (
	RoleRequester Role = "demandeur"
	RoleAgent     Role = "agent"
	RoleManager   Role = "manager"
	RoleAdmin     Role = "admin"
)

// AllRoles lists every defined role, lowest privilege first.
var AllRoles = []Role{RoleRequester, RoleAgent, RoleManager, RoleAdmin}

// Valid reports whether r is one of the four defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleRequester, RoleAgent, RoleManager, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// HasAnyRole reports whether role matches one of roles. An empty list
// matches nothing.
func HasAnyRole(role Role, roles ...Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
