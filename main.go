package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pousada-backend/config"
	"pousada-backend/controllers"
	"pousada-backend/routes"
	"pousada-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	storage := services.NewLocalStorage(config.EnvOrDefault("UPLOADS_DIR", "uploads"))

	calendarClient := services.NewCalendarClientFromEnv()
	if calendarClient == nil {
		log.Println("ℹ️  CALENDAR_SYNC_URL not set; external calendar sync disabled")
	}

	// Initialize services
	rateService := services.NewRateService(db)
	calendarService := services.NewCalendarService(db, calendarClient)
	availabilityService := services.NewAvailabilityService(db)
	reservationService := services.NewReservationService(db, rateService, calendarService)
	accommodationService := services.NewAccommodationService(db, storage)
	periodService := services.NewPeriodService(db)
	pricingService := services.NewPricingService(db)
	guestService := services.NewGuestService(db)
	occupancyService := services.NewOccupancyService(db)
	maintenanceService := services.NewMaintenanceService(db)
	settingsService := services.NewSettingsService(db)

	// Initialize controllers
	accommodationController := controllers.NewAccommodationController(accommodationService)
	periodController := controllers.NewPeriodController(periodService)
	pricingController := controllers.NewPricingController(pricingService)
	reservationController := controllers.NewReservationController(reservationService, availabilityService, rateService, settingsService)
	guestController := controllers.NewGuestController(guestService)
	occupancyController := controllers.NewOccupancyController(occupancyService)
	maintenanceController := controllers.NewMaintenanceController(maintenanceService)
	settingsController := controllers.NewSettingsController(settingsService)

	// Build router
	router := routes.SetupRouter(
		accommodationController,
		periodController,
		pricingController,
		reservationController,
		guestController,
		occupancyController,
		maintenanceController,
		settingsController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
