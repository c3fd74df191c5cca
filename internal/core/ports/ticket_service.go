package ports

import (
	"context"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// ListTicketsInput carries the caller and its query parameters.
type ListTicketsInput struct {
	Caller *domain.PublicUser
	Status string
	Page   int
	Limit  int
}

type ListTicketsResult struct {
	Items      []*domain.Ticket
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type TicketService interface {
	ListTickets(ctx context.Context, input ListTicketsInput) (*ListTicketsResult, error)
}
