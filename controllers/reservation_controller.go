package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"pousada-backend/services"
	"pousada-backend/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	Service      *services.ReservationService
	Availability *services.AvailabilityService
	Rates        *services.RateService
	Settings     *services.SettingsService
}

func NewReservationController(
	service *services.ReservationService,
	availability *services.AvailabilityService,
	rates *services.RateService,
	settings *services.SettingsService,
) *ReservationController {
	return &ReservationController{
		Service:      service,
		Availability: availability,
		Rates:        rates,
		Settings:     settings,
	}
}

// respondReservationError maps booking failures onto the error taxonomy:
// validation 400, conflict 409 (plus the min-stay report), everything else
// 500 with the detail logged.
func respondReservationError(c *gin.Context, err error) {
	var minStay *services.MinStayError
	switch {
	case errors.As(err, &minStay):
		c.JSON(http.StatusConflict, gin.H{
			"status":  "error",
			"message": "Minimum stay not met",
			"minStay": minStay.Violation,
		})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Accommodation is not available for the selected dates."})
	case errors.Is(err, services.ErrAccommodationBlocked):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": "Accommodation is blocked for the selected dates."})
	case errors.Is(err, services.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Reservation not found."})
	case errors.Is(err, services.ErrAccommodationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Accommodation not found."})
	case errors.Is(err, services.ErrGuestNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Guest not found."})
	case errors.Is(err, services.ErrGuestRequired):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "A guest or guest name is required."})
	case errors.Is(err, services.ErrInvalidStayRange):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Check-in must be before check-out."})
	case errors.Is(err, services.ErrNoPeriod), errors.Is(err, services.ErrNoRate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"status": "error", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "message": err.Error()})
	case strings.HasPrefix(err.Error(), "validation:"):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
	default:
		log.Printf("reservation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
	}
}

// GET /api/reservations
func (rc *ReservationController) GetReservations(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	var accommodationID uint
	if raw := c.Query("accommodationId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			accommodationID = uint(v)
		}
	}

	reservations, err := rc.Service.GetAll(status, accommodationID)
	if err != nil {
		log.Printf("failed to list reservations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GET /api/reservations/:id
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservation, err := rc.Service.GetByID(parseID(c, "id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var in services.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	reservation, err := rc.Service.Create(in)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// PUT /api/reservations/:id
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	var in services.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	reservation, err := rc.Service.Update(parseID(c, "id"), in)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// DELETE /api/reservations/:id
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if err := rc.Service.Delete(parseID(c, "id")); err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Reservation deleted successfully"})
}

// POST /api/reservations/:id/check-in
func (rc *ReservationController) CheckIn(c *gin.Context) {
	reservation, err := rc.Service.CheckIn(parseID(c, "id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations/:id/check-out
func (rc *ReservationController) CheckOut(c *gin.Context) {
	reservation, err := rc.Service.CheckOut(parseID(c, "id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// POST /api/reservations/:id/cancel
func (rc *ReservationController) CancelReservation(c *gin.Context) {
	reservation, err := rc.Service.Cancel(parseID(c, "id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// GET /api/reservations/availability?accommodationId=&checkIn=&checkOut=&excludeId=
// Data-access failures answer available=false — callers treat false as
// "cannot book", never as a hard error.
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	accommodationID, err := strconv.ParseUint(c.Query("accommodationId"), 10, 32)
	if err != nil || accommodationID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "accommodationId is required"})
		return
	}

	checkIn, err := utils.ParseDate(c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("checkIn: %v", err)})
		return
	}
	checkOut, err := utils.ParseDate(c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("checkOut: %v", err)})
		return
	}

	var excludeID uint
	if raw := c.Query("excludeId"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 32); err == nil {
			excludeID = uint(v)
		}
	}

	available, err := rc.Availability.IsAvailable(uint(accommodationID), checkIn, checkOut, excludeID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStayRange) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Check-in must be before check-out."})
			return
		}
		log.Printf("availability check failed: %v", err)
		c.JSON(http.StatusOK, gin.H{"available": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"available": available})
}

// POST /api/reservations/quote
func (rc *ReservationController) QuoteReservation(c *gin.Context) {
	var payload struct {
		AccommodationID uint   `json:"accommodationId" binding:"required"`
		CheckIn         string `json:"checkIn" binding:"required"`
		CheckOut        string `json:"checkOut" binding:"required"`
		People          int    `json:"people" binding:"required"`
		Breakfast       bool   `json:"breakfast"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("checkIn: %v", err)})
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": fmt.Sprintf("checkOut: %v", err)})
		return
	}

	quote, err := rc.Rates.Quote(payload.AccommodationID, checkIn, checkOut, payload.People, payload.Breakfast)
	if err != nil {
		respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GET /api/reservations/:id/summary — copy-paste text, formatted with the
// stored copy-format settings.
func (rc *ReservationController) ReservationSummary(c *gin.Context) {
	reservation, err := rc.Service.GetByID(parseID(c, "id"))
	if err != nil {
		respondReservationError(c, err)
		return
	}

	setting, err := rc.Settings.Get()
	if err != nil {
		log.Printf("failed to load settings for summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": services.FormatReservationSummary(reservation, setting)})
}
