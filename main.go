package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acs/config"
	"acs/database"
	"acs/handlers"
	"acs/middleware"
	"acs/routes"
	"acs/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, err := database.NewMongoStore(config.AppConfig.DatabaseURL, config.AppConfig.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to document store: %v", err)
	}
	logger.Sugar().Infof("Connected to MongoDB database %q", store.DatabaseName())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())

	// handlers.
	serviceHandler := handlers.NewServiceHandler(store, logger)
	bookingHandler := handlers.NewBookingHandler(store, logger)
	systemHandler := handlers.NewSystemHandler(store, logger)

	routes.RegisterRoutes(router, serviceHandler, bookingHandler, systemHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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
	if err := store.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
