package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotelops/handlers"
	"hotelops/middleware"
	"hotelops/models"
)

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
	}
}

// RegisterDashboardRoutes registers the aggregated dashboard views.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("/summary", hb.DashboardSummaryHandler)
	}
}

// RegisterPropertyRoutes registers the property list and filter endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("", hb.ListPropertiesHandler)
		api.PUT("/selected", hb.SelectPropertyHandler)
	}
}

// RegisterHousekeepingRoutes registers the room board endpoints.
func RegisterHousekeepingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/housekeeping")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("/rooms", hb.ListRoomsHandler)
		api.PATCH("/rooms/status", hb.UpdateRoomStatusHandler)
		api.POST("/rooms/assign", hb.AssignRoomHandler)
	}
}

// RegisterMaintenanceRoutes registers the ticket queue endpoints.
func RegisterMaintenanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/maintenance")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("/tickets", hb.ListTicketsHandler)
		api.PATCH("/tickets/:id/status", hb.UpdateTicketStatusHandler)
		api.POST("/tickets/:id/assign", hb.AssignTicketHandler)
		api.POST("/tickets/:id/notes", hb.AddTicketNoteHandler)
	}
}

// RegisterStaffRoutes registers the roster endpoint.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/staff")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("", hb.ListStaffHandler)
	}
}

// RegisterRevenueRoutes registers the revenue timeseries endpoint.
func RegisterRevenueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/revenue")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("/timeseries", hb.RevenueTimeseriesHandler)
	}
}

// RegisterSettingsRoutes registers the preferences endpoints.
func RegisterSettingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/settings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("", hb.GetSettingsHandler)
		api.PUT("", hb.UpdateSettingsHandler)
	}
}

// RegisterToastRoutes registers the notification sink endpoints.
func RegisterToastRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/toasts")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.GET("", hb.ListToastsHandler)
		api.DELETE("/:id", hb.DismissToastHandler)
	}
}

// RegisterChatRoutes registers the assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.POST("/message", hb.ChatMessageHandler)
		api.GET("/quick-actions", hb.ChatQuickActionsHandler)
		api.GET("/insights", hb.ChatInsightsHandler)
		api.GET("/:sessionID/history", hb.ChatHistoryHandler)
	}
}

// RegisterAdminRoutes registers privileged operations, admin role only.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Auth))
		api.Use(middleware.RequireRole(models.RoleAdmin))
		api.POST("/reset", hb.ResetDataHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm HotelOps"})
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

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterHousekeepingRoutes(r, hb)
	RegisterMaintenanceRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterRevenueRoutes(r, hb)
	RegisterSettingsRoutes(r, hb)
	RegisterToastRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
