// File: medisys/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"medisys/config"
	"medisys/database"
	bookingRepoPkg "medisys/database/repository/booking"
	exceptionRepoPkg "medisys/database/repository/exception"
	scheduleRepoPkg "medisys/database/repository/schedule"
	"medisys/handlers"
	"medisys/middleware"
	"medisys/models"
	"medisys/routes"
	"medisys/services/availability"
	"medisys/services/booking"
	"medisys/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	scheduleRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	exceptionRepo := exceptionRepoPkg.NewMongoExceptionRepo()

	// services.
	occupying := models.ParseStatusSet(config.AppConfig.BookingOccupyingStatuses)
	availabilityService := &availability.DefaultAvailabilityService{
		ScheduleRepo:  scheduleRepo,
		BookingRepo:   bookingRepo,
		ExceptionRepo: exceptionRepo,
		Occupying:     occupying,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:            bookingRepo,
		AvailabilitySvc: availabilityService,
		InitialStatus:   "pending",
	}

	// handlers.
	cacheClient := utils.GetCacheClient()
	cacheTTL := time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityService, cacheClient, cacheTTL),
		Booking:      handlers.NewBookingHandler(bookingService, cacheClient),
		Schedule:     handlers.NewScheduleHandler(scheduleRepo, exceptionRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
