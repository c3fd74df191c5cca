package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ticketflow/ticketflow/internal/core/domain"
)

// AuditLister is the read side of the audit trail.
type AuditLister interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditRecord, error)
}

type AuditHandler struct {
	audit AuditLister
}

func NewAuditHandler(audit AuditLister) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List returns the newest audit records.
//
// @Summary      Recent audit records
// @Tags         audit
// @Produce      json
// @Security     CookieAuth
// @Param        limit  query     int  false  "Number of records, at most 200"
// @Success      200    {object}  auditLogsResponse
// @Failure      401    {object}  ErrorResponse
// @Failure      403    {object}  ErrorResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = n
	}

	logs, err := h.audit.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditLogsResponse{Success: true, Logs: logs})
}
