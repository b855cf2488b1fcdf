package controllers

import (
	"log"
	"net/http"

	"pousada-backend/models"
	"pousada-backend/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Service *services.SettingsService
}

func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{Service: service}
}

// GET /api/settings/hotel
func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	setting, err := sc.Service.Get()
	if err != nil {
		log.Printf("failed to load hotel settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": setting})
}

// PUT /api/settings/hotel
func (sc *SettingsController) UpdateHotelSettings(c *gin.Context) {
	var payload models.HotelSetting
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	setting, err := sc.Service.Update(payload)
	if err != nil {
		log.Printf("failed to update hotel settings: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": setting})
}
