package ports

import (
	"context"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// RequestMeta describes where a request came from, for audit records.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// LoginResult is a successful login: the signed token and its owner.
type LoginResult struct {
	Token string
	User  *domain.PublicUser
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string, meta RequestMeta) (*domain.PublicUser, error)
	// Login fails with domain.ErrInvalidCredentials for any credential mismatch.
	Login(ctx context.Context, email, password string, meta RequestMeta) (*LoginResult, error)
	Logout(ctx context.Context, user *domain.PublicUser, meta RequestMeta)
}

// UserAdminService backs the administrative user endpoints.
type UserAdminService interface {
	ListUsers(ctx context.Context) ([]*domain.PublicUser, error)
	CreateUser(ctx context.Context, actor *domain.PublicUser, name, email, password string, role domain.Role, meta RequestMeta) (*domain.PublicUser, error)
	ChangeRole(ctx context.Context, actor *domain.PublicUser, id string, role domain.Role, meta RequestMeta) (*domain.PublicUser, error)
	DeleteUser(ctx context.Context, actor *domain.PublicUser, id string, meta RequestMeta) error
}
