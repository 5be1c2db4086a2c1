package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"openhours-service/internal/app/config"
	"openhours-service/internal/app/delivery/http/middlewares"
	"openhours-service/internal/app/delivery/http/routers"
	"openhours-service/internal/app/drivers/database"
	"openhours-service/internal/app/drivers/logger"
	"openhours-service/internal/app/drivers/messaging"
	"openhours-service/internal/app/services/schedules"
	"openhours-service/internal/app/services/shared/events"
	"openhours-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Events
	schedulePublisher, err := events.NewSchedulePublisher(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.App.EventExchangeName,
	)
	if err != nil {
		log.Fatalf("Failed to initialize schedule publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.New(bootstrap.Logger, bootstrap.InternalConfig)

	// Schedules
	scheduleMongoRepository := schedules.NewScheduleMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	scheduleUsecase := schedules.NewScheduleUsecase(
		scheduleMongoRepository,
		redisRepository,
		schedulePublisher,
		bootstrap.InternalConfig,
	)
	scheduleController := schedules.NewScheduleController(
		bootstrap.Logger,
		scheduleUsecase,
		bootstrap.InternalConfig,
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, appMiddlewares, scheduleController)
}
