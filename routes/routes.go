package routes

import (
	"net/http"
	"time"

	"staywise/handlers"
	"staywise/middleware"
	"staywise/services/session"
	"staywise/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, auth *handlers.AuthHandler, sessions session.SessionManager) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", auth.LoginHandler)
		api.POST("/signup", auth.SignupHandler)
		api.GET("/session", auth.SessionHandler)

		// Profile changes require the session gate.
		protected := api.Group("")
		protected.Use(middleware.RouteGuardMiddleware(sessions))
		protected.POST("/logout", auth.LogoutHandler)
		protected.PATCH("/user", auth.UpdateUserHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle and dashboard endpoints.
func RegisterBookingRoutes(r *gin.Engine, booking *handlers.BookingHandler, sessions session.SessionManager) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.RouteGuardMiddleware(sessions))
		api.GET("/pending", booking.PendingHandler)
		api.GET("/recent", booking.RecentBookingsHandler)
		api.GET("/stays/recent", booking.RecentStaysHandler)
		api.GET("/:id", booking.GetBookingHandler)
		api.POST("/:id/check-in", booking.CheckInHandler)
		api.POST("/:id/check-out", booking.CheckOutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, auth *handlers.AuthHandler, booking *handlers.BookingHandler, sessions session.SessionManager) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, auth, sessions)
	RegisterBookingRoutes(r, booking, sessions)
	RegisterHealthRoute(r)
}
