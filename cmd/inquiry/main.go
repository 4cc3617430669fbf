package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/iprody08/inquiry-service/internal/config"
	"github.com/iprody08/inquiry-service/internal/inquiry"
	httpDelivery "github.com/iprody08/inquiry-service/internal/inquiry/delivery/http"
	"github.com/iprody08/inquiry-service/internal/inquiry/repository"
	"github.com/iprody08/inquiry-service/kafka"
	"github.com/iprody08/inquiry-service/pkg/database"
	"github.com/iprody08/inquiry-service/pkg/logger"
	"github.com/iprody08/inquiry-service/pkg/tracing"
)

func main() {
	cfg, err := config.Build()
	if err != nil {
		logger.Init("inquiry-service", "development")
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.Server.ServiceName, cfg.Server.Environment)
	logger.SetLevel(cfg.Server.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.Server.ServiceName).
		Str("environment", cfg.Server.Environment).
		Str("log_level", cfg.Server.LogLevel).
		Msg("Starting inquiry service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.Server.ServiceName, cfg.Server.JaegerEndpoint)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Connect to database
	db, err := database.NewGormConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := repository.NewGormInquiryRepository(db).AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Kafka publisher is optional, lifecycle events are skipped without brokers
	var publisher *kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err = kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to initialize Kafka publisher")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// Initialize handler with Wire DI (includes downstream info clients)
	inquiryHandler, err := inquiry.InitializeHandler(db, inquiry.ServiceURLs{
		CustomerServiceURL: cfg.Downstream.CustomerServiceURL,
		ProductServiceURL:  cfg.Downstream.ProductServiceURL,
	}, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handler")
	}

	logger.Logger.Info().
		Str("customer_service_url", cfg.Downstream.CustomerServiceURL).
		Str("product_service_url", cfg.Downstream.ProductServiceURL).
		Msg("Inquiry handler initialized with downstream clients")

	go startHTTPServer(inquiryHandler, sqlDB, cfg.Server.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(inquiryHandler *httpDelivery.InquiryHandler, db *sql.DB, port string) {
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	httpDelivery.RegisterMiddlewares(router, httpDelivery.DefaultMiddlewareConfig())

	inquiryHandler.RegisterRoutes(router)
	inquiryHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}
