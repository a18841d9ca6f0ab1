package handlers

import (
	"github.com/gin-gonic/gin"

	"hotelops/services/auth"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	Auth auth.Service

	// Auth endpoints
	LoginHandler gin.HandlerFunc

	// Dashboard endpoints
	DashboardSummaryHandler gin.HandlerFunc

	// Property endpoints
	ListPropertiesHandler gin.HandlerFunc
	SelectPropertyHandler gin.HandlerFunc

	// Housekeeping endpoints
	ListRoomsHandler        gin.HandlerFunc
	UpdateRoomStatusHandler gin.HandlerFunc
	AssignRoomHandler       gin.HandlerFunc

	// Maintenance endpoints
	ListTicketsHandler        gin.HandlerFunc
	UpdateTicketStatusHandler gin.HandlerFunc
	AssignTicketHandler       gin.HandlerFunc
	AddTicketNoteHandler      gin.HandlerFunc

	// Staff and revenue endpoints
	ListStaffHandler         gin.HandlerFunc
	RevenueTimeseriesHandler gin.HandlerFunc

	// Settings and toast endpoints
	GetSettingsHandler    gin.HandlerFunc
	UpdateSettingsHandler gin.HandlerFunc
	ListToastsHandler     gin.HandlerFunc
	DismissToastHandler   gin.HandlerFunc

	// Chat endpoints
	ChatMessageHandler      gin.HandlerFunc
	ChatHistoryHandler      gin.HandlerFunc
	ChatQuickActionsHandler gin.HandlerFunc
	ChatInsightsHandler     gin.HandlerFunc

	// Admin endpoints
	ResetDataHandler gin.HandlerFunc
}
