package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haviaa/config"
	"haviaa/cron"
	"haviaa/database"
	bookingRepoPkg "haviaa/database/repository/booking"
	kvRepo "haviaa/database/repository/kv"
	lockRepo "haviaa/database/repository/lock"
	userRepoPkg "haviaa/database/repository/user"
	"haviaa/handlers"
	"haviaa/middleware"
	"haviaa/routes"
	"haviaa/services/booking"
	"haviaa/services/catalog"
	"haviaa/services/notification"
	"haviaa/services/tasks"
	"haviaa/services/user"
	"haviaa/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetTokenSecret(config.AppConfig.JWTSecret)

	// storage backends.
	store := newStore(logger)
	locker := newLocker(logger)

	// repositories.
	userRepo := userRepoPkg.NewKVUserRepo(store)
	bookingRepo := bookingRepoPkg.NewKVBookingRepo(store)

	// services.
	userService := user.NewUserService(
		userRepo,
		logger.Named("user"),
		config.AppConfig.SimulatedLatency,
		config.AppConfig.CallTimeout,
		config.AppConfig.SessionTTL,
	)
	catalogService := catalog.NewStaticCatalog()
	notificationService := notification.NewDefaultNotificationService(userRepo, locker, logger.Named("notification"))
	bookingStore := booking.NewBookingStore(bookingRepo, locker, logger.Named("booking"), config.AppConfig.EnforceSingleActiveBooking)

	var reminders booking.ReminderScheduler = tasks.NoopScheduler{Logger: logger}
	var reminderClient *asynq.Client
	var reminderWorker *asynq.Server
	if config.AppConfig.RemindersEnabled {
		reminderClient = asynq.NewClient(cron.RedisOpt())
		reminders = tasks.NewAsynqScheduler(reminderClient, logger.Named("reminders"))
		reminderWorker = cron.InitReminderWorker(bookingStore, notificationService, logger.Named("worker"))
	}
	hireService := booking.NewHireService(bookingStore, catalogService, reminders, logger.Named("hire"))

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewUserHandler(userService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewBookingHandler(bookingStore, hireService, logger.Named("bookingHandler")),
		handlers.NewNotificationHandler(notificationService),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, config.AppConfig.StoreBackend, utils.OpenRedisClients(), database.MongoClient)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if reminderWorker != nil {
		reminderWorker.Shutdown()
	}
	if reminderClient != nil {
		if err := reminderClient.Close(); err != nil {
			logger.Warn("main: failed to close reminder client", zap.Error(err))
		}
	}
	if err := database.CloseDB(ctx); err != nil {
		logger.Warn("main: failed to close MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

func newStore(logger *zap.Logger) kvRepo.KeyValueStore {
	switch config.AppConfig.StoreBackend {
	case "redis":
		logger.Info("Using Redis record store", zap.Int("db", config.AppConfig.RedisStoreDB))
		return kvRepo.NewRedisStore(utils.GetStoreClient())
	case "mongo":
		database.InitDB()
		logger.Info("Using MongoDB record store", zap.String("database", config.AppConfig.DatabaseName))
		mongoStore := kvRepo.NewMongoStore(database.Database())
		if err := mongoStore.EnsureIndexes(context.Background()); err != nil {
			logger.Warn("Failed to create kv indexes", zap.Error(err))
		}
		return mongoStore
	case "memory", "":
		logger.Warn("Using in-memory record store; data is lost on restart")
		return kvRepo.NewMemoryStore()
	default:
		logger.Fatal("Unknown STORE_BACKEND", zap.String("backend", config.AppConfig.StoreBackend))
		return nil
	}
}

func newLocker(logger *zap.Logger) lockRepo.Locker {
	switch config.AppConfig.LockBackend {
	case "redis":
		logger.Info("Using Redis booking lock", zap.Duration("ttl", config.AppConfig.LockTTL))
		return lockRepo.NewRedisLocker(utils.GetLockClient(), config.AppConfig.LockTTL, logger.Named("lock"))
	case "local", "":
		return lockRepo.NewLocalLocker()
	default:
		logger.Fatal("Unknown LOCK_BACKEND", zap.String("backend", config.AppConfig.LockBackend))
		return nil
	}
}
