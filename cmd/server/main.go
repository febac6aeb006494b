package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"savoria/internal/config"
	flowusecase "savoria/internal/modules/orderflow/application/usecase"
	flowinfra "savoria/internal/modules/orderflow/infrastructure"
	flowtransport "savoria/internal/modules/orderflow/interface"
	ordersport "savoria/internal/modules/orders/application/port"
	ordersusecase "savoria/internal/modules/orders/application/usecase"
	ordersinfra "savoria/internal/modules/orders/infrastructure"
	orderstransport "savoria/internal/modules/orders/interface"
	rthandler "savoria/internal/modules/realtime/application/handler"
	rtusecase "savoria/internal/modules/realtime/application/usecase"
	realtime "savoria/internal/modules/realtime/domain"
	rtinfra "savoria/internal/modules/realtime/infrastructure"
	rttransport "savoria/internal/modules/realtime/interface"
	"savoria/internal/platform/broker"
	"savoria/internal/shared/auth"
	"savoria/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Durable order store
	db, err := sql.Open("postgres", cfg.Postgres.DSN)
	if err != nil {
		slog.Error("postgres open failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()
	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := db.PingContext(pingCtx); err != nil {
		slog.Error("postgres ping failed", slog.Any("error", err))
		os.Exit(1)
	}
	orderRepo := ordersinfra.NewPostgresRepository(db)
	if err := orderRepo.EnsureSchema(ctx); err != nil {
		slog.Error("orders schema setup failed", slog.Any("error", err))
		os.Exit(1)
	}

	// Session store
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("redis ping failed", slog.Any("error", err))
		os.Exit(1)
	}
	sessionStore := flowinfra.NewRedisSessionStore(redisClient, cfg.Redis.SessionTTL)
	bookingStore := flowinfra.NewRedisBookingStore(redisClient)

	// Realtime plumbing
	hub := rtinfra.NewHub()
	registry := rtinfra.NewHandlerRegistry()
	broadcastUC := rtusecase.NewBroadcastUseCase(hub)
	listUC := ordersusecase.NewListOrdersUseCase(orderRepo)
	feedUC := rtusecase.NewOrderFeedUseCase(listUC, broadcastUC)
	registry.Register(rthandler.NewOrderEventsHandler(
		cfg.Kafka.OrdersTopic,
		[]string{realtime.ActionCreated, realtime.ActionUpdated, realtime.ActionList},
		broadcastUC,
		feedUC,
	))

	// Order change events ride Kafka when brokers are configured and the
	// in-process registry otherwise.
	var publisher ordersport.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := ordersinfra.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.OrdersTopic})
		slog.Info("kafka wiring enabled", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("topic", cfg.Kafka.OrdersTopic))
	} else {
		publisher = ordersinfra.NewLocalPublisher(cfg.Kafka.OrdersTopic, registry)
		slog.Info("no kafka brokers configured, using in-process event dispatch")
	}

	// Customer flow
	gateway := flowinfra.NewSimulatedGateway(cfg.Payment.SettlementDelay)
	qrRenderer := flowinfra.NewQRRenderer(cfg.Server.PublicBaseURL)
	flowHandler := flowtransport.NewFlowHandler(
		flowusecase.NewSessionUseCase(sessionStore),
		flowusecase.NewReserveUseCase(sessionStore),
		flowusecase.NewCartUseCase(sessionStore),
		flowusecase.NewCheckoutUseCase(sessionStore, bookingStore, gateway, orderRepo, publisher),
		flowusecase.NewBookingsUseCase(bookingStore),
		orderRepo,
		qrRenderer,
	)

	// Admin surface
	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	reviewUC := ordersusecase.NewReviewUseCase(orderRepo, publisher)
	adminHandler := orderstransport.NewAdminHandler(reviewUC, listUC, validator, cfg.Security.AdminRole)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	flowHandler.Register(e)
	adminHandler.Register(e)
	orderFeed := rttransport.NewOrderFeedHandler(hub, validator, feedUC, cfg.Security.AdminRole)
	e.GET("/ws/orders/:token", orderFeed)
	e.GET("/ws/orders", orderFeed)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
