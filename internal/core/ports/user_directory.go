package ports

import (
	"context"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// UserDirectory is the only component that sees password hashes. Every
// user it returns is a PublicUser.
type UserDirectory interface {
	CreateUser(ctx context.Context, name, email, password string) (*domain.PublicUser, error)
	CreateUserWithRole(ctx context.Context, name, email, password string, role domain.Role) (*domain.PublicUser, error)
	// AuthenticateUser returns (nil, nil) for an unknown email and for a
	// wrong password alike.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.PublicUser, error)
	// GetUserByID returns (nil, nil) when the id no longer resolves.
	GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error)
	ListUsers(ctx context.Context) ([]*domain.PublicUser, error)
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
}
