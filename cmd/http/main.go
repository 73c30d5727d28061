package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/drivers/storage"
	"medibook-service/internal/app/services/appointments"
	"medibook-service/internal/app/services/auth"
	"medibook-service/internal/app/services/doctors"
	"medibook-service/internal/app/services/payments"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/notifier"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/redis"
	sharedstorage "medibook-service/internal/app/services/shared/storage"
	"medibook-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	rabbitMQChannel := messaging.NewRabbitMQChannel(rabbitMQConn)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQChannel,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

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

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)

	// Shared services
	storageService := sharedstorage.NewMinioStorage(bootstrap.Minio, bootstrap.InternalConfig, bootstrap.ZapLogger)
	paymentGatewayService := payment_gateway.NewRazorpayService(bootstrap.InternalConfig, bootstrap.ZapLogger)
	notificationService := notifier.NewRabbitMQNotifier(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.ZapLogger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.InternalConfig, bootstrap.ZapLogger)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Auth
	authUseCase := auth.NewAuthUsecase(userMongoRepository, bootstrap.InternalConfig, bootstrap.ZapLogger)
	authController := auth.NewAuthController(authUseCase, bootstrap.ZapLogger)

	// User
	userUseCase := users.NewUserUsecase(userMongoRepository, storageService, bootstrap.ZapLogger)
	userController := users.NewUserController(userUseCase, bootstrap.InternalConfig, bootstrap.ZapLogger)

	// Appointment
	appointmentUseCase := appointments.NewAppointmentUsecase(
		userMongoRepository,
		doctorMongoRepository,
		appointmentMongoRepository,
		lockerService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	appointmentController := appointments.NewAppointmentController(appointmentUseCase, bootstrap.ZapLogger)

	// Payment
	paymentUseCase := payments.NewPaymentUsecase(
		appointmentMongoRepository,
		paymentGatewayService,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	paymentController := payments.NewPaymentController(paymentUseCase, bootstrap.ZapLogger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		appointmentController,
		paymentController,
	)
}
