package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"pousada-backend/models"
	"pousada-backend/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	Service *services.MaintenanceService
}

func NewMaintenanceController(service *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Service: service}
}

// GET /api/maintenance?status=&accommodationId=
func (mc *MaintenanceController) GetTickets(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	var accommodationID uint
	if raw := c.Query("accommodationId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			accommodationID = uint(v)
		}
	}

	tickets, err := mc.Service.GetAll(status, accommodationID)
	if err != nil {
		log.Printf("failed to list maintenance tickets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// GET /api/maintenance/:id
func (mc *MaintenanceController) GetTicketByID(c *gin.Context) {
	ticket, err := mc.Service.GetByID(parseID(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Maintenance ticket not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// POST /api/maintenance
func (mc *MaintenanceController) CreateTicket(c *gin.Context) {
	var ticket models.MaintenanceTicket
	if err := c.ShouldBindJSON(&ticket); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := mc.Service.Create(&ticket); err != nil {
		switch {
		case errors.Is(err, services.ErrAccommodationNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Accommodation not found."})
		case strings.HasPrefix(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			log.Printf("failed to create maintenance ticket: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		}
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// PATCH /api/maintenance/:id
func (mc *MaintenanceController) UpdateTicket(c *gin.Context) {
	id := parseID(c, "id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := mc.Service.Update(id, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Maintenance ticket not found."})
		case strings.HasPrefix(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			log.Printf("failed to update maintenance ticket %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Ticket updated successfully"})
}

// POST /api/maintenance/:id/status
func (mc *MaintenanceController) SetTicketStatus(c *gin.Context) {
	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	ticket, err := mc.Service.SetStatus(parseID(c, "id"), payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Maintenance ticket not found."})
		case strings.HasPrefix(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			log.Printf("failed to set ticket status: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// DELETE /api/maintenance/:id
func (mc *MaintenanceController) DeleteTicket(c *gin.Context) {
	id := parseID(c, "id")
	if err := mc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Maintenance ticket not found."})
			return
		}
		log.Printf("failed to delete maintenance ticket %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Ticket deleted successfully"})
}
