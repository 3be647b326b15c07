package routes

import (
	"net/http"
	"time"

	"travelhub/handlers"
	"travelhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the unified booking view and workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/provider", hb.ListProviderBookingsHandler)
		api.GET("/customer", hb.ListCustomerBookingsHandler)
		api.PATCH("/:id/status", hb.TransitionBookingHandler)
	}
}

// RegisterReservationRoutes sets up reservation creation endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateReservationHandler)
		api.POST("/tours", hb.CreateTourBookingHandler)
		api.GET("/:id", hb.GetReservationHandler)
	}
}

// RegisterProviderRequestRoutes sets up the qualification pipeline endpoints.
func RegisterProviderRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider-requests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.SubmitProviderRequestHandler)
		api.GET("/mine", hb.ListMyProviderRequestsHandler)

		admin := api.Group("")
		admin.Use(middleware.AdminOnlyMiddleware())
		admin.GET("", hb.ListProviderRequestsHandler)
		admin.GET("/:id", hb.GetProviderRequestHandler)
		admin.PUT("/:id/approve", hb.ApproveProviderRequestHandler)
		admin.PUT("/:id/reject", hb.RejectProviderRequestHandler)
	}
}

// RegisterNotificationRoutes sets up the notification feed endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.MarkNotificationReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm TravelHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterProviderRequestRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
