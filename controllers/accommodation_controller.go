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

type AccommodationController struct {
	Service *services.AccommodationService
}

func NewAccommodationController(service *services.AccommodationService) *AccommodationController {
	return &AccommodationController{Service: service}
}

// GET /api/accommodations
func (ac *AccommodationController) GetAccommodations(c *gin.Context) {
	accommodations, err := ac.Service.GetAll()
	if err != nil {
		log.Printf("failed to list accommodations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, accommodations)
}

// GET /api/accommodations/:id
func (ac *AccommodationController) GetAccommodationByID(c *gin.Context) {
	id := parseID(c, "id")
	acc, err := ac.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, acc)
}

// POST /api/accommodations
func (ac *AccommodationController) CreateAccommodation(c *gin.Context) {
	var acc models.Accommodation
	if err := c.ShouldBindJSON(&acc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ac.Service.Create(&acc); err != nil {
		if errors.Is(err, services.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Category must be one of: %s", strings.Join(models.AccommodationCategories, ", ")),
			})
			return
		}
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		if isDuplicateErr(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": fmt.Sprintf("Room number '%s' already exists.", acc.RoomNumber),
			})
			return
		}
		log.Printf("failed to create accommodation: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, acc)
}

// PATCH /api/accommodations/:id
func (ac *AccommodationController) UpdateAccommodation(c *gin.Context) {
	id := parseID(c, "id")

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := ac.Service.Update(id, updates); err != nil {
		switch {
		case errors.Is(err, services.ErrAccommodationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
		case errors.Is(err, services.ErrInvalidCategory), strings.HasPrefix(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		case isDuplicateErr(err):
			c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Room number already exists."})
		default:
			log.Printf("failed to update accommodation %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Accommodation updated successfully"})
}

// DELETE /api/accommodations/:id
func (ac *AccommodationController) DeleteAccommodation(c *gin.Context) {
	id := parseID(c, "id")

	if err := ac.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		log.Printf("failed to delete accommodation %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete accommodation."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Accommodation deleted successfully"})
}

// POST /api/accommodations/:id/block
func (ac *AccommodationController) BlockAccommodation(c *gin.Context) {
	id := parseID(c, "id")

	var in services.BlockInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	acc, err := ac.Service.Block(id, in)
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		log.Printf("failed to block accommodation %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Block failed"})
		return
	}

	c.JSON(http.StatusOK, acc)
}

// POST /api/accommodations/:id/unblock
func (ac *AccommodationController) UnblockAccommodation(c *gin.Context) {
	id := parseID(c, "id")

	acc, err := ac.Service.Unblock(id)
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		log.Printf("failed to unblock accommodation %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Unblock failed"})
		return
	}

	c.JSON(http.StatusOK, acc)
}

// POST /api/accommodations/:id/images
func (ac *AccommodationController) UploadImage(c *gin.Context) {
	id := parseID(c, "id")

	var payload struct {
		Image string `json:"image" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	url, err := ac.Service.AddImage(id, payload.Image)
	if err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		log.Printf("failed to upload image for accommodation %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Upload failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "url": url})
}

// DELETE /api/accommodations/:id/images
func (ac *AccommodationController) DeleteImage(c *gin.Context) {
	id := parseID(c, "id")

	var payload struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if err := ac.Service.RemoveImage(id, payload.URL); err != nil {
		if errors.Is(err, services.ErrAccommodationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": fmt.Sprintf("Accommodation %d not found.", id)})
			return
		}
		log.Printf("failed to delete image for accommodation %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Image removed"})
}
