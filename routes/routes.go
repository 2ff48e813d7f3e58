package routes

import (
	"net/http"
	"time"

	"hillescape/config"
	"hillescape/handlers"
	"hillescape/middleware"
	"hillescape/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the route registrar wires up.
type HandlerBundle struct {
	Booking *handlers.BookingHandler
	Resort  *handlers.ResortHandler
	Contact *handlers.ContactHandler
	Email   *handlers.EmailHandler
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBooking)
		api.GET("/reference/:reference", hb.Booking.GetBookingByReference)
		api.GET("/check/availability", hb.Booking.CheckAvailability)

		// Protected routes (operator only)
		api.GET("", middleware.AdminAuthMiddleware(), hb.Booking.ListBookings)
	}
}

// RegisterResortRoutes sets up the resort catalogue endpoints.
func RegisterResortRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/resorts")
	{
		api.GET("", hb.Resort.ListResorts)
		api.GET("/:id", hb.Resort.GetResortByID)

		api.POST("", middleware.AdminAuthMiddleware(), hb.Resort.CreateResort)
	}
}

// RegisterContactRoutes sets up the contact form endpoints.
func RegisterContactRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/contact")
	{
		api.POST("", hb.Contact.SubmitContact)
		api.GET("", middleware.AdminAuthMiddleware(), hb.Contact.ListContacts)
	}
}

// RegisterEmailRoutes sets up the notification self-test endpoints.
func RegisterEmailRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/email")
	{
		api.GET("/status", hb.Email.Status)
		api.GET("/sender/status", hb.Email.SenderStatus)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("/test", hb.Email.SendTest)
		protected.PUT("/sender", hb.Email.ConnectSender)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "HillEscape Booking API is running",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterWelcomeRoute serves the endpoint index at the root.
func RegisterWelcomeRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to HillEscape Resort Booking API",
			"version": "1.0.0",
			"endpoints": gin.H{
				"bookings": "/api/bookings",
				"resorts":  "/api/resorts",
				"contact":  "/api/contact",
				"email":    "/api/email/status",
				"health":   "/health",
			},
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterResortRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterEmailRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterWelcomeRoute(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Route not found",
			"message": "Cannot " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})
}
