package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staywise/cache"
	"staywise/config"
	"staywise/database"
	bookingRepo "staywise/database/repository/booking"
	userRepo "staywise/database/repository/user"
	"staywise/handlers"
	"staywise/middleware"
	"staywise/nav"
	"staywise/notify"
	"staywise/routes"
	"staywise/services/checkinout"
	"staywise/services/session"
	"staywise/services/stays"
	"staywise/storage"
	"staywise/store"
	"staywise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitQueryCache()
	utils.InitAuthCache()
	utils.StartHealthMonitor([]*redis.Client{utils.QueryCacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	users := userRepo.NewMongoUserRepo()

	// Remote access client against the durable store.
	storeClient := &store.DefaultClient{
		Users:    users,
		Bookings: bookings,
		Sessions: store.NewSessionCache(utils.GetAuthCacheClient(), 12*time.Hour),
	}
	if avatarStorage, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Warn("main: avatar storage disabled", zap.Error(err))
	} else {
		storeClient.Storage = avatarStorage
	}

	// Notification sink: log always, push to desk devices when configured.
	var notifier notify.Notifier = notify.ZapNotifier{}
	if path := config.AppConfig.FirebaseCredentialsFile; path != "" {
		fcm, err := notify.NewFCMNotifier(path)
		if err != nil {
			logger.Warn("main: push notifications disabled", zap.Error(err))
		} else {
			notifier = notify.MultiNotifier{notify.ZapNotifier{}, fcm}
		}
	}

	// Navigation sink shared with the HTTP facade.
	navigator := &nav.Recorder{}

	// Reactive query cache.
	queryCache := cache.NewRedisQueryCache(utils.GetQueryCacheClient())

	// Core managers.
	sessions := session.NewDefaultSessionManager(storeClient, queryCache, notifier, navigator)
	lifecycle := &checkinout.DefaultBookingLifecycleManager{
		Store:    storeClient,
		Cache:    queryCache,
		Notifier: notifier,
		Nav:      navigator,
	}
	staysSvc := &stays.DefaultStaysService{
		Store: storeClient,
		Cache: queryCache,
	}

	authHandler := handlers.NewAuthHandler(sessions, navigator)
	bookingHandler := handlers.NewBookingHandler(lifecycle, staysSvc, navigator)

	routes.RegisterRoutes(router, authHandler, bookingHandler, sessions)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
