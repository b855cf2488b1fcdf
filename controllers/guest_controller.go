package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"pousada-backend/models"
	"pousada-backend/services"

	"github.com/gin-gonic/gin"
)

type GuestController struct {
	Service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{Service: service}
}

// GET /api/guests — active guests; ?all=true includes deactivated ones so
// historical reservations still resolve in the admin view.
func (gc *GuestController) GetGuests(c *gin.Context) {
	includeInactive := strings.EqualFold(c.Query("all"), "true")

	if term := strings.TrimSpace(c.Query("search")); term != "" {
		guests, err := gc.Service.Search(term)
		if err != nil {
			log.Printf("guest search failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, guests)
		return
	}

	guests, err := gc.Service.GetAll(includeInactive)
	if err != nil {
		log.Printf("failed to list guests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GET /api/guests/:id
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	id := parseID(c, "id")
	guest, err := gc.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Guest %d not found.", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, guest)
}

// POST /api/guests
func (gc *GuestController) CreateGuest(c *gin.Context) {
	var guest models.Guest
	if err := c.ShouldBindJSON(&guest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := gc.Service.Create(&guest); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		log.Printf("failed to create guest: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// PUT /api/guests/:id
func (gc *GuestController) UpdateGuest(c *gin.Context) {
	id := parseID(c, "id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := gc.Service.Update(id, updates); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Guest %d not found.", id)})
			return
		}
		log.Printf("failed to update guest %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Guest updated successfully"})
}

// DELETE /api/guests/:id — soft delete: the row is kept and deactivated.
func (gc *GuestController) DeleteGuest(c *gin.Context) {
	id := parseID(c, "id")
	if err := gc.Service.Deactivate(id); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Guest %d not found.", id)})
			return
		}
		log.Printf("failed to deactivate guest %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Guest deactivated"})
}

// POST /api/guests/:id/reactivate
func (gc *GuestController) ReactivateGuest(c *gin.Context) {
	id := parseID(c, "id")
	if err := gc.Service.Reactivate(id); err != nil {
		if errors.Is(err, services.ErrGuestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Guest %d not found.", id)})
			return
		}
		log.Printf("failed to reactivate guest %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Guest reactivated"})
}
