// File: hillescape/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hillescape/config"
	"hillescape/cron"
	"hillescape/database"
	bookingRepoPkg "hillescape/database/repository/booking"
	contactRepoPkg "hillescape/database/repository/contact"
	resortRepoPkg "hillescape/database/repository/resort"
	"hillescape/handlers"
	"hillescape/middleware"
	"hillescape/routes"
	"hillescape/services/booking"
	"hillescape/services/notification"
	"hillescape/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	resortRepo := resortRepoPkg.NewMongoResortRepo(utils.GetCacheClient())
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()

	if err := resortRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure resort indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
	}

	// services.
	tokenStore := notification.NewRedisTokenStore(utils.GetTokenCacheClient())
	primary := notification.NewResendNotifier(config.AppConfig.ResendAPIKey, config.AppConfig.ResendFrom)
	secondary := notification.NewSMTPNotifier(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUsername,
		config.AppConfig.SMTPPassword,
		config.AppConfig.MailFromName,
		config.AppConfig.MailFrom,
		tokenStore,
		logger,
	)
	notificationService := notification.NewDefaultNotificationService(
		primary, secondary, config.AppConfig.AdminEmail, logger,
	)

	bookingService := &booking.DefaultBookingService{
		Repo:         bookingRepo,
		Notification: notificationService,
		EnqueueAdmin: cron.NewAdminAlertEnqueuer(),
		Logger:       logger,
	}

	// Detached admin-alert worker.
	cron.InitNotifyWorker(notificationService, bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Resort:  handlers.NewResortHandler(resortRepo, logger),
		Contact: handlers.NewContactHandler(contactRepo, logger),
		Email:   handlers.NewEmailHandler(notificationService, tokenStore, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetTokenCacheClient()},
		database.MongoClient,
	)

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
