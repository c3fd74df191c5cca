package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

const usersTable = "users"

var userColumns = []string{
	"id", "email", "name", "password_hash", "role", "avatar",
	"two_factor_enabled", "tutorial_completed", "tokens_valid_after",
	"created_at", "updated_at",
}

// Storage role values. Only this file knows them.
const (
	storageRequester = "DEMANDEUR"
	storageAgent     = "AGENT"
	storageManager   = "MANAGER"
	storageAdmin     = "ADMIN"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

type userRow struct {
	ID                string     `db:"id"`
	Email             string     `db:"email"`
	Name              string     `db:"name"`
	PasswordHash      string     `db:"password_hash"`
	Role              string     `db:"role"`
	Avatar            *string    `db:"avatar"`
	TwoFactorEnabled  bool       `db:"two_factor_enabled"`
	TutorialCompleted bool       `db:"tutorial_completed"`
	TokensValidAfter  *time.Time `db:"tokens_valid_after"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

func (r userRow) toDomain() (*domain.User, error) {
	role, err := roleFromStorage(r.Role)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		ID:                r.ID,
		Email:             r.Email,
		Name:              r.Name,
		PasswordHash:      r.PasswordHash,
		Role:              role,
		Avatar:            r.Avatar,
		TwoFactorEnabled:  r.TwoFactorEnabled,
		TutorialCompleted: r.TutorialCompleted,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
	if r.TokensValidAfter != nil {
		u.TokensValidAfter = r.TokensValidAfter.UTC()
	}
	return u, nil
}

func roleFromStorage(s string) (domain.Role, error) {
	switch s {
	case storageRequester:
		return domain.RoleRequester, nil
	case storageAgent:
		return domain.RoleAgent, nil
	case storageManager:
		return domain.RoleManager, nil
	case storageAdmin:
		return domain.RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRole, s)
	}
}

func roleToStorage(r domain.Role) (string, error) {
	switch r {
	case domain.RoleRequester:
		return storageRequester, nil
	case domain.RoleAgent:
		return storageAgent, nil
	case domain.RoleManager:
		return storageManager, nil
	case domain.RoleAdmin:
		return storageAdmin, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownRole, r)
	}
}

func selectUsers() squirrel.SelectBuilder {
	return squirrel.Select(userColumns...).From(usersTable).PlaceholderFormat(squirrel.Dollar)
}

func (r *UserRepository) findOne(ctx context.Context, sb squirrel.SelectBuilder) (*domain.User, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var row userRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return row.toDomain()
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, selectUsers().Where(squirrel.Eq{"email": email}))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, selectUsers().Where(squirrel.Eq{"id": id}))
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	role, err := roleToStorage(user.Role)
	if err != nil {
		return err
	}
	var validAfter *time.Time
	if !user.TokensValidAfter.IsZero() {
		validAfter = &user.TokensValidAfter
	}

	query, args, err := squirrel.Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.ID, user.Email, user.Name, user.PasswordHash, role, user.Avatar,
			user.TwoFactorEnabled, user.TutorialCompleted, validAfter,
			user.CreatedAt, user.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, id string, role domain.Role, tokensValidAfter time.Time) error {
	stored, err := roleToStorage(role)
	if err != nil {
		return err
	}
	query, args, err := squirrel.Update(usersTable).
		Set("role", stored).
		Set("tokens_valid_after", tokensValidAfter).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.Delete(usersTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrUserHasTickets
		}
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query, args, err := selectUsers().OrderBy("created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	var rows []userRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) CountTickets(ctx context.Context, id string) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*)").
		From(ticketsTable).
		Where(squirrel.Or{
			squirrel.Eq{"created_by_id": id},
			squirrel.Eq{"assigned_to_id": id},
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return n, nil
}
