package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

func userRows(mock pgxmock.PgxPoolIface, role string, validAfter *time.Time) *pgxmock.Rows {
	now := time.Now().UTC()
	var avatar *string
	return mock.NewRows(userColumns).
		AddRow("u-1", "ann@x.com", "Ann", "$2a$04$hash", role, avatar, false, true, validAfter, now, now)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("Should translate the storage role", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("ann@x.com").
			WillReturnRows(userRows(mock, "AGENT", nil))

		user, err := repo.FindByEmail(context.Background(), "ann@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAgent, user.Role)
		assert.Equal(t, "u-1", user.ID)
		assert.True(t, user.TokensValidAfter.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should fail on an unknown storage role", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("ann@x.com").
			WillReturnRows(userRows(mock, "SUPERUSER", nil))

		_, err = repo.FindByEmail(context.Background(), "ann@x.com")
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	})

	t.Run("Should return ErrUserNotFound on no rows", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)

		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@x.com").
			WillReturnRows(mock.NewRows(userColumns))

		_, err = repo.FindByEmail(context.Background(), "nobody@x.com")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_FindByID_Watermark(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewUserRepository(mock)

	after := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnRows(userRows(mock, "DEMANDEUR", &after))

	user, err := repo.FindByID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRequester, user.Role)
	assert.True(t, user.TokensValidAfter.Equal(after))
}

func TestUserRepository_Create(t *testing.T) {
	newUser := func() *domain.User {
		now := time.Now().UTC()
		return &domain.User{
			ID: "u-2", Email: "bob@x.com", Name: "Bob", PasswordHash: "h",
			Role: domain.RoleManager, CreatedAt: now, UpdatedAt: now,
		}
	}

	t.Run("Should store the uppercase role", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)
		u := newUser()
		var avatar *string
		var validAfter *time.Time

		mock.ExpectExec("INSERT INTO users").
			WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, "MANAGER", avatar,
				false, false, validAfter, u.CreatedAt, u.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		require.NoError(t, repo.Create(context.Background(), u))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should map a unique violation to ErrUserExists", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)

		u := newUser()
		var avatar *string
		var validAfter *time.Time

		mock.ExpectExec("INSERT INTO users").
			WithArgs(u.ID, u.Email, u.Name, u.PasswordHash, "MANAGER", avatar,
				false, false, validAfter, u.CreatedAt, u.UpdatedAt).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		err = repo.Create(context.Background(), u)
		assert.ErrorIs(t, err, domain.ErrUserExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Should refuse an unknown role without touching the database", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		repo := NewUserRepository(mock)
		u := newUser()
		u.Role = "root"

		err = repo.Create(context.Background(), u)
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_UpdateRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewUserRepository(mock)
	after := time.Now().UTC().Truncate(time.Second)

	mock.ExpectExec("UPDATE users SET role = \\$1, tokens_valid_after = \\$2").
		WithArgs("ADMIN", after, "u-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE users SET role").
		WithArgs("AGENT", after, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repo.UpdateRole(context.Background(), "u-1", domain.RoleAdmin, after))
	err = repo.UpdateRole(context.Background(), "missing", domain.RoleAgent, after)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteAndCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := NewUserRepository(mock)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM tickets WHERE \\(created_by_id = \\$1 OR assigned_to_id = \\$2\\)").
		WithArgs("u-1", "u-1").
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectExec("DELETE FROM users WHERE id = \\$1").
		WithArgs("u-1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

	n, err := repo.CountTickets(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	err = repo.Delete(context.Background(), "u-1")
	assert.ErrorIs(t, err, domain.ErrUserHasTickets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleMapping_IsExhaustive(t *testing.T) {
	for _, role := range domain.AllRoles {
		stored, err := roleToStorage(role)
		require.NoError(t, err)
		back, err := roleFromStorage(stored)
		require.NoError(t, err)
		assert.Equal(t, role, back)
	}
	_, err := roleFromStorage("agent")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}
