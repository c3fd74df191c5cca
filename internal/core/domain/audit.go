package domain

import "time"

// AuditAction names a sensitive operation recorded in the audit trail.
type AuditAction string

const (
	AuditLoginSuccess     AuditAction = "LOGIN_SUCCESS"
	AuditLoginFailed      AuditAction = "LOGIN_FAILED"
	AuditLoginRateLimited AuditAction = "LOGIN_RATE_LIMITED"
	AuditLogout           AuditAction = "LOGOUT"
	AuditUserRegistered   AuditAction = "USER_REGISTERED"
	AuditUserCreated      AuditAction = "USER_CREATED"
	AuditUserRoleChanged  AuditAction = "USER_ROLE_CHANGED"
	AuditUserDeleted      AuditAction = "USER_DELETED"
)

// AuditRecord is an append-only audit trail entry.
type AuditRecord struct {
	ID        string            `json:"id"`
	Action    AuditAction       `json:"action"`
	ActorID   string            `json:"actorId,omitempty"`
	Subject   string            `json:"subject"`
	IP        string            `json:"ip,omitempty"`
	UserAgent string            `json:"userAgent,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
