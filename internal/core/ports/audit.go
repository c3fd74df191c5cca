package ports

import (
	"context"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// AuditRepository persists audit records. Records are never updated.
type AuditRepository interface {
	Insert(ctx context.Context, record *domain.AuditRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error)
}

// AuditRecorder accepts audit records without blocking the caller. Delivery
// is best effort.
type AuditRecorder interface {
	Record(record domain.AuditRecord)
}
