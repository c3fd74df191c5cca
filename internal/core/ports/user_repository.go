package ports

import (
	"context"
	"time"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// UserRepository is the persistence boundary for users. Implementations
// translate the storage role representation and fail with
// domain.ErrUnknownRole on values they cannot map.
type UserRepository interface {
	// FindByEmail and FindByID return domain.ErrUserNotFound when no row matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create returns domain.ErrUserExists on a unique email violation.
	Create(ctx context.Context, user *domain.User) error
	// UpdateRole sets the role and the token revocation watermark.
	UpdateRole(ctx context.Context, id string, role domain.Role, tokensValidAfter time.Time) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
	// CountTickets counts tickets the user created or is assigned to.
	CountTickets(ctx context.Context, id string) (int64, error)
}
