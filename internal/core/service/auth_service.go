package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
	"github.com/ticketflow/ticketflow/internal/pkg/metrics"
)

// AuthService implements registration, login and logout.
type AuthService struct {
	users  ports.UserDirectory
	tokens ports.TokenService
	audit  ports.AuditRecorder
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(users ports.UserDirectory, tokens ports.TokenService, audit ports.AuditRecorder, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, audit: audit, log: log, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string, meta ports.RequestMeta) (*domain.PublicUser, error) {
	user, err := s.users.CreateUser(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	s.record(domain.AuditUserRegistered, user.ID, user.Email, meta, nil)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string, meta ports.RequestMeta) (*ports.LoginResult, error) {
	user, err := s.users.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		s.record(domain.AuditLoginFailed, "", email, meta, nil)
		s.log.Info().Str("ip", meta.IP).Msg("login failed")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.TokenSubject{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	s.record(domain.AuditLoginSuccess, user.ID, user.Email, meta, map[string]string{"role": string(user.Role)})
	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) Logout(_ context.Context, user *domain.PublicUser, meta ports.RequestMeta) {
	if user == nil {
		return
	}
	s.record(domain.AuditLogout, user.ID, user.Email, meta, nil)
}

func (s *AuthService) record(action domain.AuditAction, actorID, subject string, meta ports.RequestMeta, details map[string]string) {
	recordAudit(s.audit, s.now, action, actorID, subject, meta, details)
}

// recordAudit hands a record to the recorder. The recorder never blocks and
// never reports failure to the caller.
func recordAudit(rec ports.AuditRecorder, now func() time.Time, action domain.AuditAction, actorID, subject string, meta ports.RequestMeta, details map[string]string) {
	if rec == nil {
		return
	}
	rec.Record(domain.AuditRecord{
		ID:        uuid.NewString(),
		Action:    action,
		ActorID:   actorID,
		Subject:   subject,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Details:   details,
		CreatedAt: now().UTC(),
	})
}
