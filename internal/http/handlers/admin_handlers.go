package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/WUNDU/backoffice/domain"
)

// AdminHandlers serves the access management, security and support surfaces
type AdminHandlers struct {
	directory domain.UserDirectory
	tickets   domain.TicketService
	audit     domain.AuditRecorder
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(directory domain.UserDirectory, tickets domain.TicketService, audit domain.AuditRecorder) *AdminHandlers {
	return &AdminHandlers{directory: directory, tickets: tickets, audit: audit}
}

// Users lists the back-office operators
func (h *AdminHandlers) Users(c *gin.Context) {
	users, err := h.directory.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// SecurityEvents lists recent audit events, newest first. The limit query
// parameter caps the listing, defaulting to 50.
func (h *AdminHandlers) SecurityEvents(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, gin.H{"data": h.audit.Recent(limit)})
}

// Tickets lists support tickets, optionally filtered by the status and q
// query parameters.
func (h *AdminHandlers) Tickets(c *gin.Context) {
	filter := domain.TicketFilter{
		Status: domain.TicketStatus(c.Query("status")),
		Search: c.Query("q"),
	}
	if filter.Status != "" && !domain.ValidTicketStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ticket status"})
		return
	}

	tickets, err := h.tickets.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tickets})
}

// TicketStatusRequest represents a ticket status transition
type TicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTicketStatus moves a ticket through its lifecycle
func (h *AdminHandlers) UpdateTicketStatus(c *gin.Context) {
	var req TicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.UpdateStatus(c.Request.Context(), c.Param("id"), domain.TicketStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		case errors.Is(err, domain.ErrInvalidTicketStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown ticket status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ticket"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": ticket})
}
