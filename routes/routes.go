package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"medisys/handlers"
	"medisys/utils"
)

// HandlerBundle groups the handlers the router needs.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Booking      *handlers.BookingHandler
	Schedule     *handlers.ScheduleHandler
}

// RegisterAvailabilityRoutes registers the week-grid read endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:doctorId", hb.Availability.GetWeekAvailabilityHandler)
	}
}

// RegisterBookingRoutes registers the booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.DELETE("/:id", hb.Booking.CancelBookingHandler)
	}
}

// RegisterScheduleRoutes registers work-block and exception management.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.POST("/workblocks", hb.Schedule.CreateWorkBlockHandler)
		api.GET("/workblocks/:doctorId", hb.Schedule.ListWorkBlocksHandler)
		api.DELETE("/workblocks/:id", hb.Schedule.DeleteWorkBlockHandler)

		api.POST("/exceptions", hb.Schedule.CreateExceptionHandler)
		api.GET("/exceptions/:doctorId", hb.Schedule.ListExceptionsHandler)
		api.DELETE("/exceptions/:id", hb.Schedule.DeleteExceptionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
