package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

func TestUserAdminService_Flow(t *testing.T) {
	repo := newStubUserRepo()
	rec := &stubRecorder{}
	svc := NewUserAdminService(newTestDirectory(repo), rec, zerolog.Nop())
	admin := &domain.PublicUser{ID: "admin-1", Role: domain.RoleAdmin}
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, admin, "Ann", "ann@x.com", "Str0ng!pass", domain.RoleAgent, testMeta)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.Role != domain.RoleAgent {
		t.Fatalf("expected agent, got %s", created.Role)
	}

	changed, err := svc.ChangeRole(ctx, admin, created.ID, domain.RoleManager, testMeta)
	if err != nil {
		t.Fatalf("ChangeRole: %v", err)
	}
	if changed.Role != domain.RoleManager {
		t.Fatalf("expected manager, got %s", changed.Role)
	}

	users, err := svc.ListUsers(ctx)
	if err != nil || len(users) != 1 {
		t.Fatalf("ListUsers: %v, %d users", err, len(users))
	}

	if err := svc.DeleteUser(ctx, admin, created.ID, testMeta); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	want := []domain.AuditAction{domain.AuditUserCreated, domain.AuditUserRoleChanged, domain.AuditUserDeleted}
	got := rec.actions()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if rec.records[0].ActorID != "admin-1" {
		t.Fatalf("expected actor on audit record, got %+v", rec.records[0])
	}
}

func TestUserAdminService_NoAuditOnFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed("busy", "busy@x.com", "pw", domain.RoleAgent)
	repo.tickets["busy"] = 1
	rec := &stubRecorder{}
	svc := NewUserAdminService(newTestDirectory(repo), rec, zerolog.Nop())

	if err := svc.DeleteUser(context.Background(), nil, "busy", testMeta); !errors.Is(err, domain.ErrUserHasTickets) {
		t.Fatalf("expected ErrUserHasTickets, got %v", err)
	}
	if len(rec.actions()) != 0 {
		t.Fatalf("expected no audit records, got %v", rec.actions())
	}
}
