package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ticketflow/ticketflow/internal/api/middleware"
	"github.com/ticketflow/ticketflow/internal/core/ports"
)

type TicketHandler struct {
	service ports.TicketService
}

func NewTicketHandler(service ports.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

type listTicketsQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS RESOLVED CLOSED"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1"`
}

// List returns the tickets visible to the caller. Requesters see only
// the tickets they created.
//
// @Summary      List tickets
// @Tags         tickets
// @Produce      json
// @Security     CookieAuth
// @Param        status  query     string  false  "OPEN, IN_PROGRESS, RESOLVED or CLOSED"
// @Param        page    query     int     false  "Page, from 1"
// @Param        limit   query     int     false  "Page size, at most 100"
// @Success      200     {object}  ticketsResponse
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Router       /api/tickets [get]
func (h *TicketHandler) List(c echo.Context) error {
	var q listTicketsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}

	res, err := h.service.ListTickets(c.Request().Context(), ports.ListTicketsInput{
		Caller: middleware.CurrentUser(c),
		Status: q.Status,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticketsResponse{
		Success: true,
		Tickets: res.Items,
		Pagination: pagination{
			Page:       res.Page,
			Limit:      res.Limit,
			Total:      res.Total,
			TotalPages: res.TotalPages,
		},
	})
}
