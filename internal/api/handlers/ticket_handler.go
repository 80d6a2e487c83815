package handlers

import (
	"net/http"

	"github.com/Piero-Micciulla/project-management-dashboard/internal/application"
	"github.com/Piero-Micciulla/project-management-dashboard/internal/domain/ticket"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/response"
	"github.com/Piero-Micciulla/project-management-dashboard/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// GetMyTickets godoc
// @Summary List tickets assigned to the caller
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} ticket.TicketDTO
// @Router /tickets/user [get]
func (h *TicketHandler) GetMyTickets(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	tickets, err := h.svc.ListMyTickets(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket.ToDTOs(tickets))
}

// CreateTicket godoc
// @Summary Create a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body ticket.CreateTicketInput true "Ticket"
// @Success 201 {object} response.TicketResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse "Project or assignee not found"
// @Router /tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.CreateTicket(c.Request.Context(), caller, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.TicketResponse{Message: "Ticket created successfully", Ticket: ticket.ToDTO(*t)})
}

// UpdateTicket godoc
// @Summary Update a ticket
// @Description Status and priority changes are recorded in the ticket history.
// @Description Send assigned_user_id 0 to clear the assignee; null or an omitted
// @Description field leaves it unchanged.
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param input body ticket.UpdateTicketInput true "Fields to change"
// @Success 200 {object} response.TicketResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	caller, ok := currentUser(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "ticket")
		return
	}
	var input ticket.UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.UpdateTicket(c.Request.Context(), caller, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.TicketResponse{Message: "Ticket updated successfully", Ticket: ticket.ToDTO(*t)})
}

// DeleteTicket godoc
// @Summary Delete a ticket and its history
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "ticket")
		return
	}
	if err := h.svc.DeleteTicket(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted successfully"})
}

// GetTicketHistory godoc
// @Summary Ticket change history, newest first
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {array} ticket.HistoryDTO
// @Failure 404 {object} response.ErrorResponse "Ticket not found"
// @Router /tickets/{id}/history [get]
func (h *TicketHandler) GetTicketHistory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		invalidID(c, "ticket")
		return
	}
	history, err := h.svc.GetTicketHistory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket.ToHistoryDTOs(history))
}
