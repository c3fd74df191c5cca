package service

import (
	"context"
	"fmt"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type ticketService struct {
	repo ports.TicketRepository
}

func NewTicketService(repo ports.TicketRepository) ports.TicketService {
	return &ticketService{repo: repo}
}

// ListTickets returns a page of tickets. Callers without tickets:view_all
// are scoped to the tickets they created, on top of the route permission.
func (s *ticketService) ListTickets(ctx context.Context, in ports.ListTicketsInput) (*ports.ListTicketsResult, error) {
	if in.Caller == nil {
		return nil, domain.ErrUnauthenticated
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := ports.TicketFilter{Status: in.Status, Page: page, Limit: limit}
	if !domain.CanViewAllTickets(in.Caller.Role) {
		filter.CreatedByID = in.Caller.ID
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListTicketsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
