package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

type stubTicketRepo struct {
	tickets    []*domain.Ticket
	lastFilter ports.TicketFilter
	err        error
}

func (r *stubTicketRepo) List(_ context.Context, f ports.TicketFilter) ([]*domain.Ticket, int64, error) {
	r.lastFilter = f
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []*domain.Ticket
	for _, tk := range r.tickets {
		if f.CreatedByID != "" && tk.CreatedByID != f.CreatedByID {
			continue
		}
		out = append(out, tk)
	}
	return out, int64(len(out)), nil
}

func seededTickets() *stubTicketRepo {
	return &stubTicketRepo{tickets: []*domain.Ticket{
		{ID: "t1", CreatedByID: "req-1", Status: domain.TicketOpen},
		{ID: "t2", CreatedByID: "req-2", Status: domain.TicketOpen},
		{ID: "t3", CreatedByID: "req-1", Status: domain.TicketClosed},
	}}
}

func TestTicketService_RequesterSeesOwnOnly(t *testing.T) {
	repo := seededTickets()
	svc := NewTicketService(repo)

	res, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{
		Caller: &domain.PublicUser{ID: "req-1", Role: domain.RoleRequester},
	})
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if repo.lastFilter.CreatedByID != "req-1" {
		t.Fatalf("expected creator filter, got %+v", repo.lastFilter)
	}
	if res.Total != 2 {
		t.Fatalf("expected 2 tickets, got %d", res.Total)
	}
}

func TestTicketService_AgentSeesAll(t *testing.T) {
	repo := seededTickets()
	svc := NewTicketService(repo)

	res, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{
		Caller: &domain.PublicUser{ID: "ag-1", Role: domain.RoleAgent},
	})
	if err != nil {
		t.Fatalf("ListTickets: %v", err)
	}
	if repo.lastFilter.CreatedByID != "" {
		t.Fatalf("agent listing must not be scoped, got %+v", repo.lastFilter)
	}
	if res.Total != 3 {
		t.Fatalf("expected 3 tickets, got %d", res.Total)
	}
}

func TestTicketService_Pagination(t *testing.T) {
	repo := seededTickets()
	svc := NewTicketService(repo)
	caller := &domain.PublicUser{ID: "ad-1", Role: domain.RoleAdmin}

	res, _ := svc.ListTickets(context.Background(), ports.ListTicketsInput{Caller: caller, Page: 0, Limit: 500})
	if res.Page != 1 || res.Limit != maxPageLimit {
		t.Fatalf("expected clamped page/limit, got %d/%d", res.Page, res.Limit)
	}

	res, _ = svc.ListTickets(context.Background(), ports.ListTicketsInput{Caller: caller, Limit: 2})
	if res.TotalPages != 2 {
		t.Fatalf("expected 2 pages, got %d", res.TotalPages)
	}
}

func TestTicketService_Errors(t *testing.T) {
	svc := NewTicketService(&stubTicketRepo{err: errors.New("db down")})

	if _, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated without caller, got %v", err)
	}
	_, err := svc.ListTickets(context.Background(), ports.ListTicketsInput{
		Caller: &domain.PublicUser{ID: "x", Role: domain.RoleAdmin},
	})
	if err == nil {
		t.Fatalf("expected repository error")
	}
}
