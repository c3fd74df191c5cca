package service

import (
	"context"
	"fmt"

	"github.com/ticketflow/ticketflow/internal/core/domain"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

const maxAuditPage = 200

// AuditService is the read side of the audit trail.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error) {
	if limit <= 0 || limit > maxAuditPage {
		limit = maxAuditPage
	}
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	return records, nil
}
