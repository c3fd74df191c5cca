package ports

import (
	"context"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// TicketFilter narrows a ticket listing. CreatedByID is set by the service
// for callers that may only see their own tickets.
type TicketFilter struct {
	CreatedByID string
	Status      string
	Page        int // 1-based
	Limit       int
}

type TicketRepository interface {
	List(ctx context.Context, filter TicketFilter) ([]*domain.Ticket, int64, error)
}
