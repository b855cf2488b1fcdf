package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pousada-backend/controllers"
	"pousada-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controller instances onto the route tree.
func SetupRouter(
	ac *controllers.AccommodationController,
	pc *controllers.PeriodController,
	prc *controllers.PricingController,
	rc *controllers.ReservationController,
	gc *controllers.GuestController,
	oc *controllers.OccupancyController,
	mc *controllers.MaintenanceController,
	sc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		accommodations := api.Group("/accommodations")
		{
			accommodations.GET("", ac.GetAccommodations)
			accommodations.GET("/:id", ac.GetAccommodationByID)
			accommodations.POST("", ac.CreateAccommodation)
			accommodations.PATCH("/:id", ac.UpdateAccommodation)
			accommodations.PUT("/:id", ac.UpdateAccommodation)
			accommodations.DELETE("/:id", ac.DeleteAccommodation)
			accommodations.POST("/:id/block", ac.BlockAccommodation)
			accommodations.POST("/:id/unblock", ac.UnblockAccommodation)
			accommodations.POST("/:id/images", ac.UploadImage)
			accommodations.DELETE("/:id/images", ac.DeleteImage)
		}

		periods := api.Group("/price-periods")
		{
			periods.GET("", pc.GetPeriods)
			periods.GET("/:id", pc.GetPeriodByID)
			periods.POST("", pc.CreatePeriod)
			periods.PUT("/:id", pc.UpdatePeriod)
			periods.DELETE("/:id", pc.DeletePeriod)
		}

		entries := api.Group("/price-entries")
		{
			entries.GET("", prc.GetEntries)
			entries.PUT("", prc.UpsertEntry)
			entries.DELETE("/:id", prc.DeleteEntry)
		}

		api.POST("/pricing/apply-category", prc.ApplyCategoryPricing)

		reservations := api.Group("/reservations")
		{
			// Fixed paths must come before /:id.
			reservations.GET("/availability", rc.CheckAvailability)
			reservations.POST("/quote", rc.QuoteReservation)

			reservations.GET("", rc.GetReservations)
			reservations.GET("/:id", rc.GetReservationByID)
			reservations.POST("", rc.CreateReservation)
			reservations.PUT("/:id", rc.UpdateReservation)
			reservations.DELETE("/:id", rc.DeleteReservation)
			reservations.POST("/:id/check-in", rc.CheckIn)
			reservations.POST("/:id/check-out", rc.CheckOut)
			reservations.POST("/:id/cancel", rc.CancelReservation)
			reservations.GET("/:id/summary", rc.ReservationSummary)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.GET("/:id", gc.GetGuestByID)
			guests.POST("", gc.CreateGuest)
			guests.PUT("/:id", gc.UpdateGuest)
			guests.DELETE("/:id", gc.DeleteGuest)
			guests.POST("/:id/reactivate", gc.ReactivateGuest)
		}

		api.GET("/occupancy", oc.GetGrid)

		maintenance := api.Group("/maintenance")
		{
			maintenance.GET("", mc.GetTickets)
			maintenance.GET("/:id", mc.GetTicketByID)
			maintenance.POST("", mc.CreateTicket)
			maintenance.PATCH("/:id", mc.UpdateTicket)
			maintenance.POST("/:id/status", mc.SetTicketStatus)
			maintenance.DELETE("/:id", mc.DeleteTicket)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
			settings.PUT("/hotel", sc.UpdateHotelSettings)
		}
	}

	return r
}
