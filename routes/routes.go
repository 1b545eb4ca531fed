package routes

import (
	"time"

	"haviaa/handlers"
	"haviaa/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers sign-up, sign-in and sign-out.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.POST("/logout", middleware.JWTAuthUserMiddleware(hb.UserSvc), hb.LogoutHandler)
	}
}

// RegisterProfileRoutes registers the signed-in user's profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserSvc))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
		api.GET("/preferences", hb.GetPreferenceOptionsHandler)
	}
}

// RegisterCatalogRoutes registers maid search, availability and pricing.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserSvc))
		api.GET("/maids", hb.ListMaidsHandler)
		api.GET("/maids/options", hb.GetOptionsHandler)
		api.GET("/maids/:id", hb.GetMaidHandler)
		api.GET("/slots", hb.GetSlotsHandler)
		api.GET("/pricing/quote", hb.GetQuoteHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking lifecycle.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserSvc))
		bookingGroup.POST("", middleware.RequireCompleteProfile(), hb.ConfirmBooking)
		bookingGroup.GET("", hb.ListBookingsHandler)
		bookingGroup.GET("/:id", hb.GetBookingHandler)
		bookingGroup.POST("/:id/cancel", hb.CancelBookingHandler)
		bookingGroup.POST("/:id/replace", hb.ReplaceBookingHandler)
		bookingGroup.POST("/:id/complete", hb.CompleteBookingHandler)
	}
}

// RegisterNotificationRoutes sets up the in-app inbox.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserSvc))
		api.GET("", hb.ListNotificationsHandler)
		api.POST("/:id/read", hb.MarkReadHandler)
	}
}

// RegisterHealthRoute registers the health-check and metrics endpoints.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
}
