package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

// UserAdminService wraps the administrative directory operations with
// audit records.
type UserAdminService struct {
	users ports.UserDirectory
	audit ports.AuditRecorder
	log   zerolog.Logger
	now   func() time.Time
}

func NewUserAdminService(users ports.UserDirectory, audit ports.AuditRecorder, log zerolog.Logger) *UserAdminService {
	return &UserAdminService{users: users, audit: audit, log: log, now: time.Now}
}

func (s *UserAdminService) ListUsers(ctx context.Context) ([]*domain.PublicUser, error) {
	return s.users.ListUsers(ctx)
}

func (s *UserAdminService) CreateUser(ctx context.Context, actor *domain.PublicUser, name, email, password string, role domain.Role, meta ports.RequestMeta) (*domain.PublicUser, error) {
	user, err := s.users.CreateUserWithRole(ctx, name, email, password, role)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, s.now, domain.AuditUserCreated, actorID(actor), user.ID, meta,
		map[string]string{"role": string(role)})
	return user, nil
}

func (s *UserAdminService) ChangeRole(ctx context.Context, actor *domain.PublicUser, id string, role domain.Role, meta ports.RequestMeta) (*domain.PublicUser, error) {
	user, err := s.users.ChangeRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	recordAudit(s.audit, s.now, domain.AuditUserRoleChanged, actorID(actor), id, meta,
		map[string]string{"role": string(role)})
	s.log.Info().Str("user_id", id).Str("role", string(role)).Msg("role changed, earlier tokens revoked")
	return user, nil
}

func (s *UserAdminService) DeleteUser(ctx context.Context, actor *domain.PublicUser, id string, meta ports.RequestMeta) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return err
	}
	recordAudit(s.audit, s.now, domain.AuditUserDeleted, actorID(actor), id, meta, nil)
	return nil
}

func actorID(u *domain.PublicUser) string {
	if u == nil {
		return ""
	}
	return u.ID
}
