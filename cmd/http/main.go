package main

import (
	"context"
	"log"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	smtpdriver "medibook-service/internal/app/drivers/mailer"
	"medibook-service/internal/app/drivers/messaging"
	miniodriver "medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/doctors"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/mailer"
	sharedredis "medibook-service/internal/app/services/shared/redis"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Fatal("Error loading timezone", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := miniodriver.NewMinio(driverConfig)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)
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

	bootstrapTheApp(&bootstrap, smtpClient, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Error while closing connections", zap.Error(err))
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap, smtpClient *smtpdriver.SMTPClient, minioClient *minio.Client) {
	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appointments.EnsureAppointmentIndexes(indexCtx, bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName); err != nil {
		bootstrap.Logger.Fatal("Failed to ensure appointment indexes", zap.Error(err))
	}

	// Shared services
	redisRepository := sharedredis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := sharedstorage.NewMinioStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName)

	notificationPublisher, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.NotificationQueue)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize notification publisher", zap.Error(err))
	}

	worker, err := mailer.NewWorker(
		bootstrap.Logger,
		smtpClient,
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.NotificationQueue,
		bootstrap.InternalConfig.App.NotificationSendsPerSecond,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize mailer worker", zap.Error(err))
	}
	workerStop, err := worker.Start(context.Background())
	if err != nil {
		bootstrap.Logger.Fatal("Failed to start mailer worker", zap.Error(err))
	}
	bootstrap.WorkerStop = workerStop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		lockerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Doctors
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		redisRepository,
		notificationPublisher,
		storageService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)
	hookController := controllers.NewHookController(bootstrap.Logger, doctorUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		doctorController,
		hookController,
	)
}
