package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops/config"
	"hotelops/data"
	"hotelops/handlers"
	"hotelops/middleware"
	"hotelops/routes"
	"hotelops/services/assistant"
	"hotelops/services/auth"
	"hotelops/storage"
	"hotelops/store"
	"hotelops/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Persistence.
	bolt, err := storage.NewBoltStore(config.AppConfig.StoragePath, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open state storage: %v", err)
	}
	defer bolt.Close()

	// State store seeded from fixtures, then overlaid with persisted state.
	st := store.New(store.InitialState(data.MustLoad()), store.Options{
		Persistence: bolt,
		Logger:      logger,
		ToastTTL:    config.ToastTTL(),
	})
	st.LoadPersisted()

	// Assistant transcripts live in Redis when available, memory otherwise.
	var transcripts assistant.ContextStore
	if err := utils.InitChatCache(); err != nil {
		logger.Sugar().Warnf("main: redis unavailable, using in-memory chat transcripts: %v", err)
		transcripts = assistant.NewMemoryContextStore()
	} else {
		transcripts = assistant.NewRedisContextStore(utils.GetChatCacheClient(), config.ChatContextTTL())
	}

	executor := assistant.NewExecutor(config.NavigateDelay())
	session := assistant.NewSession(st, transcripts, executor, config.ReplyDelay(), logger)

	authService, err := auth.NewDefaultAuthService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(st)
	propertyHandler := handlers.NewPropertyHandler(st)
	housekeepingHandler := handlers.NewHousekeepingHandler(st)
	maintenanceHandler := handlers.NewMaintenanceHandler(st)
	staffHandler := handlers.NewStaffHandler(st)
	revenueHandler := handlers.NewRevenueHandler(st)
	settingsHandler := handlers.NewSettingsHandler(st)
	toastHandler := handlers.NewToastHandler(st)
	chatHandler := handlers.NewChatHandler(session)
	adminHandler := handlers.NewAdminHandler(st, bolt)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth: authService,

		LoginHandler: authHandler.LoginHandler,

		DashboardSummaryHandler: dashboardHandler.SummaryHandler,

		ListPropertiesHandler: propertyHandler.ListPropertiesHandler,
		SelectPropertyHandler: propertyHandler.SelectPropertyHandler,

		ListRoomsHandler:        housekeepingHandler.ListRoomsHandler,
		UpdateRoomStatusHandler: housekeepingHandler.UpdateRoomStatusHandler,
		AssignRoomHandler:       housekeepingHandler.AssignRoomHandler,

		ListTicketsHandler:        maintenanceHandler.ListTicketsHandler,
		UpdateTicketStatusHandler: maintenanceHandler.UpdateTicketStatusHandler,
		AssignTicketHandler:       maintenanceHandler.AssignTicketHandler,
		AddTicketNoteHandler:      maintenanceHandler.AddTicketNoteHandler,

		ListStaffHandler:         staffHandler.ListStaffHandler,
		RevenueTimeseriesHandler: revenueHandler.TimeseriesHandler,

		GetSettingsHandler:    settingsHandler.GetSettingsHandler,
		UpdateSettingsHandler: settingsHandler.UpdateSettingsHandler,
		ListToastsHandler:     toastHandler.ListToastsHandler,
		DismissToastHandler:   toastHandler.DismissToastHandler,

		ChatMessageHandler:      chatHandler.MessageHandler,
		ChatHistoryHandler:      chatHandler.HistoryHandler,
		ChatQuickActionsHandler: chatHandler.QuickActionsHandler,
		ChatInsightsHandler:     chatHandler.InsightsHandler,

		ResetDataHandler: adminHandler.ResetDataHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

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
