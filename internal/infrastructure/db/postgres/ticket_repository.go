package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

const ticketsTable = "tickets"

var ticketColumns = []string{
	"id", "title", "status", "priority", "created_by_id", "assigned_to_id",
	"created_at", "updated_at",
}

type TicketRepository struct {
	db DB
}

func NewTicketRepository(db DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func applyTicketFilter(sb squirrel.SelectBuilder, f ports.TicketFilter) squirrel.SelectBuilder {
	if f.CreatedByID != "" {
		sb = sb.Where(squirrel.Eq{"created_by_id": f.CreatedByID})
	}
	if f.Status != "" {
		sb = sb.Where(squirrel.Eq{"status": f.Status})
	}
	return sb
}

// List returns one page of tickets, newest first, and the total match count.
func (r *TicketRepository) List(ctx context.Context, f ports.TicketFilter) ([]*domain.Ticket, int64, error) {
	countSQL, countArgs, err := applyTicketFilter(
		squirrel.Select("COUNT(*)").From(ticketsTable).PlaceholderFormat(squirrel.Dollar), f,
	).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tickets: %w", err)
	}

	page := max(f.Page, 1)
	sb := applyTicketFilter(
		squirrel.Select(ticketColumns...).From(ticketsTable).PlaceholderFormat(squirrel.Dollar), f,
	).OrderBy("created_at DESC")
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit)).Offset(uint64((page - 1) * f.Limit))
	}
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var tickets []*domain.Ticket
	if err := pgxscan.Select(ctx, r.db, &tickets, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, total, nil
}
