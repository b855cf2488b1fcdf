package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"pousada-backend/models"
	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PricingController struct {
	Service *services.PricingService
}

func NewPricingController(service *services.PricingService) *PricingController {
	return &PricingController{Service: service}
}

// GET /api/price-entries?periodId= | ?accommodationId=
func (pc *PricingController) GetEntries(c *gin.Context) {
	if raw := c.Query("periodId"); raw != "" {
		periodID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid periodId"})
			return
		}
		entries, err := pc.Service.EntriesByPeriod(uint(periodID))
		if err != nil {
			log.Printf("failed to list price entries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	if raw := c.Query("accommodationId"); raw != "" {
		accID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid accommodationId"})
			return
		}
		entries, err := pc.Service.EntriesByAccommodation(uint(accID))
		if err != nil {
			log.Printf("failed to list price entries: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
			return
		}
		c.JSON(http.StatusOK, entries)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "periodId or accommodationId is required"})
}

// PUT /api/price-entries — atomic upsert on the natural key.
func (pc *PricingController) UpsertEntry(c *gin.Context) {
	var entry models.PriceEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if entry.AccommodationID == 0 || entry.PricePeriodID == 0 || entry.People <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "accommodationId, pricePeriodId and a positive people count are required"})
		return
	}
	if entry.NightlyPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "nightlyPrice must not be negative"})
		return
	}

	if err := pc.Service.UpsertEntry(&entry); err != nil {
		log.Printf("failed to upsert price entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /api/price-entries/:id
func (pc *PricingController) DeleteEntry(c *gin.Context) {
	id := parseID(c, "id")
	if err := pc.Service.DeleteEntry(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Price entry not found."})
			return
		}
		log.Printf("failed to delete price entry %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Price entry deleted"})
}

// POST /api/pricing/apply-category — bulk convenience over the same entries.
// Best-effort: per-entry failures are counted, not rolled back.
func (pc *PricingController) ApplyCategoryPricing(c *gin.Context) {
	var payload struct {
		Category    string                 `json:"category" binding:"required"`
		PeriodID    uint                   `json:"periodId" binding:"required"`
		Options     []services.PriceOption `json:"options" binding:"required"`
		ExcludedIDs []uint                 `json:"excludedIds"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	if !models.IsValidCategory(payload.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid category."})
		return
	}
	if len(payload.Options) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "At least one price option is required."})
		return
	}

	result, err := pc.Service.ApplyCategoryPricing(payload.Category, payload.PeriodID, payload.Options, payload.ExcludedIDs)
	if err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Price period not found."})
			return
		}
		log.Printf("bulk category pricing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result)
}
