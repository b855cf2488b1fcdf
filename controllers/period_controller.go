package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"pousada-backend/services"

	"github.com/gin-gonic/gin"
)

type PeriodController struct {
	Service *services.PeriodService
}

func NewPeriodController(service *services.PeriodService) *PeriodController {
	return &PeriodController{Service: service}
}

// GET /api/price-periods
func (pc *PeriodController) GetPeriods(c *gin.Context) {
	periods, err := pc.Service.GetAll()
	if err != nil {
		log.Printf("failed to list price periods: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, periods)
}

// GET /api/price-periods/:id
func (pc *PeriodController) GetPeriodByID(c *gin.Context) {
	period, err := pc.Service.GetByID(parseID(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Price period not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, period)
}

// POST /api/price-periods
func (pc *PeriodController) CreatePeriod(c *gin.Context) {
	var in services.PeriodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	period, err := pc.Service.Create(in)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
			return
		}
		log.Printf("failed to create price period: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusCreated, period)
}

// PUT /api/price-periods/:id
func (pc *PeriodController) UpdatePeriod(c *gin.Context) {
	var in services.PeriodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	period, err := pc.Service.Update(parseID(c, "id"), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPeriodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Price period not found."})
		case strings.HasPrefix(err.Error(), "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		default:
			log.Printf("failed to update price period: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		}
		return
	}
	c.JSON(http.StatusOK, period)
}

// DELETE /api/price-periods/:id — also removes the period's price entries.
func (pc *PeriodController) DeletePeriod(c *gin.Context) {
	id := parseID(c, "id")
	if err := pc.Service.Delete(id); err != nil {
		if errors.Is(err, services.ErrPeriodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Price period not found."})
			return
		}
		log.Printf("failed to delete price period %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Price period deleted"})
}
