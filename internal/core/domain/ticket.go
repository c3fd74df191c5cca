package domain

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen       TicketStatus = "OPEN"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
	TicketClosed     TicketStatus = "CLOSED"
)

// Ticket is the read model used for access-scoped listing.
type Ticket struct {
	ID           string       `json:"id" db:"id"`
	Title        string       `json:"title" db:"title"`
	Status       TicketStatus `json:"status" db:"status"`
	Priority     string       `json:"priority" db:"priority"`
	CreatedByID  string       `json:"createdById" db:"created_by_id"`
	AssignedToID *string      `json:"assignedToId,omitempty" db:"assigned_to_id"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at"`
}
