package routes

import (
	"time"

	"acs/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterServiceRoutes registers the service endpoints.
func RegisterServiceRoutes(r *gin.Engine, h *handlers.ServiceHandler) {
	api := r.Group("/api/services")
	{
		api.POST("", h.CreateServiceHandler)
		api.GET("", h.ListServicesHandler)
		api.GET("/:service_id", h.GetServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("", h.CreateBookingHandler)
		api.GET("", h.ListBookingsHandler)
	}
}

// RegisterSystemRoutes registers the liveness, diagnostic and schema
// endpoints.
func RegisterSystemRoutes(r *gin.Engine, h *handlers.SystemHandler) {
	r.GET("/", h.RootHandler)
	r.GET("/test", h.TestHandler)
	r.GET("/schema", h.GetSchemaHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, sh *handlers.ServiceHandler, bh *handlers.BookingHandler, sys *handlers.SystemHandler) {
	// Fixed boundary policy: everything is allowed through CORS.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSystemRoutes(r, sys)
	RegisterServiceRoutes(r, sh)
	RegisterBookingRoutes(r, bh)
}
