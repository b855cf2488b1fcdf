package controllers

import (
	"fmt"
	"log"
	"net/http"

	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
)

type OccupancyController struct {
	Service *services.OccupancyService
}

func NewOccupancyController(service *services.OccupancyService) *OccupancyController {
	return &OccupancyController{Service: service}
}

// GET /api/occupancy?from=YYYY-MM-DD&to=YYYY-MM-DD
func (oc *OccupancyController) GetGrid(c *gin.Context) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("from: %v", err)})
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("to: %v", err)})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "to must not be before from"})
		return
	}

	cells, err := oc.Service.Grid(from, to)
	if err != nil {
		log.Printf("failed to build occupancy grid: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, cells)
}
