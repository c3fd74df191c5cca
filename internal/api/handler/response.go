package handler

import (
	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// Every success body carries success=true. Errors are rendered by the
// API error handler as {success:false, error}.

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type userResponse struct {
	Success bool               `json:"success"`
	User    *domain.PublicUser `json:"user"`
}

type meResponse struct {
	Success     bool                `json:"success"`
	User        *domain.PublicUser  `json:"user"`
	Permissions []domain.Permission `json:"permissions"`
}

type usersResponse struct {
	Success bool                 `json:"success"`
	Users   []*domain.PublicUser `json:"users"`
}

type pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

type ticketsResponse struct {
	Success    bool             `json:"success"`
	Tickets    []*domain.Ticket `json:"tickets"`
	Pagination pagination       `json:"pagination"`
}

type auditLogsResponse struct {
	Success bool                  `json:"success"`
	Logs    []*domain.AuditRecord `json:"logs"`
}

// ErrorResponse is the error envelope. Fields is set for validation
// failures, RetryAfter (RFC 3339) for rate-limited logins.
type ErrorResponse struct {
	Success    bool              `json:"success"`
	Error      string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
	RetryAfter string            `json:"retryAfter,omitempty"`
}
