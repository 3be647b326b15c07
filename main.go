// File: travelhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelhub/config"
	"travelhub/cron"
	"travelhub/database"
	"travelhub/database/repository"
	"travelhub/handlers"
	"travelhub/routes"
	"travelhub/services/bookingview"
	"travelhub/services/notification"
	"travelhub/services/qualification"
	"travelhub/services/reservation"
	"travelhub/services/workflow"
	"travelhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := repository.NewMongoUserRepo()
	serviceRepo := repository.NewMongoServiceRepo()
	reservationRepo := repository.NewMongoReservationRepo()
	tourRepo := repository.NewMongoTourRepo()
	vehicleRepo := repository.NewMongoVehicleRepo()
	requestRepo := repository.NewMongoProviderRequestRepo()
	notificationRepo := repository.NewMongoNotificationRepo()

	// Async queue client for push deliveries.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	defer queueClient.Close()

	// services.
	notificationService := &notification.DefaultService{
		Repo:  notificationRepo,
		Queue: queueClient,
	}

	genericAdapter := &bookingview.GenericAdapter{
		Reservations: reservationRepo,
		Services:     serviceRepo,
		Users:        userRepo,
	}
	tourAdapter := &bookingview.TourAdapter{
		Tours: tourRepo,
		Users: userRepo,
		Cache: utils.GetCacheClient(),
	}
	vehicleAdapter := &bookingview.VehicleAdapter{
		Vehicles: vehicleRepo,
		Users:    userRepo,
		Cache:    utils.GetCacheClient(),
	}

	viewService := bookingview.NewDefaultViewService(genericAdapter, tourAdapter, vehicleAdapter)
	workflowEngine := workflow.NewDefaultEngine(notificationService, genericAdapter, tourAdapter, vehicleAdapter)

	reservationService := &reservation.DefaultService{
		Reservations: reservationRepo,
		Services:     serviceRepo,
		Tours:        tourRepo,
		Users:        userRepo,
		Notifier:     notificationService,
	}

	qualificationGate := qualification.NewDefaultGate(requestRepo, userRepo, notificationService)

	// Background push delivery worker.
	cron.InitPushWorker(userRepo)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userRepo,
		viewService,
		workflowEngine,
		reservationService,
		qualificationGate,
		notificationService,
	)
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
