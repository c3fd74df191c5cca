package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

// UserDirectory implements ports.UserDirectory on top of a UserRepository.
type UserDirectory struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

func NewUserDirectory(repo ports.UserRepository, hasher ports.PasswordHasher) *UserDirectory {
	return &UserDirectory{repo: repo, hasher: hasher, now: time.Now}
}

// CreateUser registers a self-service account. The role is always the
// lowest one.
func (d *UserDirectory) CreateUser(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	return d.create(ctx, name, email, password, domain.RoleRequester)
}

// CreateUserWithRole is the administrative creation path.
func (d *UserDirectory) CreateUserWithRole(ctx context.Context, name, email, password string, role domain.Role) (*domain.PublicUser, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	return d.create(ctx, name, email, password, role)
}

func (d *UserDirectory) create(ctx context.Context, name, email, password string, role domain.Role) (*domain.PublicUser, error) {
	// Check-then-insert; the repository maps a unique violation from a
	// concurrent insert to the same error.
	_, err := d.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("create user: %w", err)
	}

	hash, err := d.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	now := d.now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := d.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user.Public(), nil
}

func (d *UserDirectory) AuthenticateUser(ctx context.Context, email, password string) (*domain.PublicUser, error) {
	user, err := d.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Spend the same hashing time as a real comparison.
			d.hasher.Verify(password, d.dummyDigest())
			return nil, nil
		}
		return nil, fmt.Errorf("authenticate user: %w", err)
	}
	if !d.hasher.Verify(password, user.PasswordHash) {
		return nil, nil
	}
	return user.Public(), nil
}

func (d *UserDirectory) GetUserByID(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := d.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user.Public(), nil
}

func (d *UserDirectory) ListUsers(ctx context.Context) ([]*domain.PublicUser, error) {
	users, err := d.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*domain.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// ChangeRole assigns a new role and revokes every token issued before now.
func (d *UserDirectory) ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.PublicUser, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	user, err := d.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}

	watermark := d.now().UTC().Truncate(time.Second)
	if err := d.repo.UpdateRole(ctx, id, role, watermark); err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}
	user.Role = role
	user.TokensValidAfter = watermark
	user.UpdatedAt = d.now().UTC()
	return user.Public(), nil
}

// DeleteUser refuses while any ticket references the user.
func (d *UserDirectory) DeleteUser(ctx context.Context, id string) error {
	if _, err := d.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	n, err := d.repo.CountTickets(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: count tickets: %w", err)
	}
	if n > 0 {
		return domain.ErrUserHasTickets
	}
	if err := d.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (d *UserDirectory) dummyDigest() string {
	d.dummyOnce.Do(func() {
		d.dummyHash, _ = d.hasher.Hash(uuid.NewString())
	})
	return d.dummyHash
}
