package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Rova04/gw-exchange-rates/internal/facades"
	"github.com/Rova04/gw-exchange-rates/internal/handlers"
	"github.com/Rova04/gw-exchange-rates/internal/jwt"
	"github.com/Rova04/gw-exchange-rates/internal/logger"
	"github.com/Rova04/gw-exchange-rates/internal/middlewares"
	"github.com/Rova04/gw-exchange-rates/internal/repositories"
	"github.com/Rova04/gw-exchange-rates/internal/scheduler"
	"github.com/Rova04/gw-exchange-rates/internal/services"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-exchange-rates API
// @version 1.0.0
// @description Microservice for buy/sell exchange rate reconciliation and override audit
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword, quoteTTLSecond,
		kafkaBrokers, kafkaTopic,
		sourceBaseURL, sourceAPIKey, sourceTimeoutSecond,
		refreshIntervalHour, refreshWorkers,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns, migrationsDir,
		redisHost, redisPort, redisDB, redisPassword, quoteTTLSecond,
		kafkaBrokers, kafkaTopic,
		sourceBaseURL, sourceAPIKey, sourceTimeoutSecond,
		refreshIntervalHour, refreshWorkers,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, rate source, scheduler, and JWT
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string, quoteTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	sourceBaseURL, sourceAPIKey string, sourceTimeoutSecond int,
	refreshIntervalHour, refreshWorkers int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "rates")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}
	migrationsDir = getEnv("POSTGRES_MIGRATIONS_DIR", "migrations")

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if quoteTTLSecond, err = strconv.Atoi(getEnv("REDIS_QUOTE_TTL_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; empty brokers disables event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "rate-events")

	// Rate source config
	sourceBaseURL = getEnv("RATE_SOURCE_BASE_URL", "https://v6.exchangerate-api.com/v6")
	sourceAPIKey = getEnv("RATE_SOURCE_API_KEY", "")
	if sourceTimeoutSecond, err = strconv.Atoi(getEnv("RATE_SOURCE_TIMEOUT_SECOND", "10")); err != nil {
		return
	}

	// Scheduler config
	if refreshIntervalHour, err = strconv.Atoi(getEnv("REFRESH_INTERVAL_HOUR", "12")); err != nil {
		return
	}
	if refreshWorkers, err = strconv.Atoi(getEnv("REFRESH_WORKERS", "4")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, the rate source client,
// the background reconciler, and the HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int, migrationsDir string,
	redisHost string, redisPort, redisDB int, redisPassword string, quoteTTLSecond int,
	kafkaBrokers, kafkaTopic string,
	sourceBaseURL, sourceAPIKey string, sourceTimeoutSecond int,
	refreshIntervalHour, refreshWorkers int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	if err := runMigrations(db, migrationsDir); err != nil {
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for rate change events; nil disables publishing
	var eventWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		eventWriter = w
		logger.Log.Infof("Kafka event publishing enabled, topic %s", kafkaTopic)
	}

	// External rate source
	source := facades.NewRateSourceClient(sourceBaseURL, sourceAPIKey,
		time.Duration(sourceTimeoutSecond)*time.Second)

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize repositories
	rateReadRepo := repositories.NewRateReadRepository(db)
	rateWriteRepo := repositories.NewRateWriteRepository(db, repositories.TxFromContext)
	historyReadRepo := repositories.NewHistoryReadRepository(db)
	historyWriteRepo := repositories.NewHistoryWriteRepository(db, repositories.TxFromContext)
	quoteCache := repositories.NewQuoteCacheRepository(rdb, time.Duration(quoteTTLSecond)*time.Second)
	txRunner := repositories.NewTxRunner(db)

	// Initialize services
	rateService := services.NewRateService(
		rateReadRepo, rateWriteRepo, historyWriteRepo, historyReadRepo,
		source, quoteCache, txRunner, eventWriter)
	reconciler := services.NewReconciler(
		rateReadRepo, rateWriteRepo, historyWriteRepo,
		source, txRunner, eventWriter, refreshWorkers)

	// Background refresh loop
	schedCtx, stopSched := context.WithCancel(ctx)
	defer stopSched()
	sched := scheduler.New(reconciler, time.Duration(refreshIntervalHour)*time.Hour)
	go sched.Start(schedCtx)

	// Initialize handlers
	listRatesHandler := handlers.NewListRatesHandler(rateReadRepo)
	lookupHandler := handlers.NewLookupRateHandler(rateService)
	manualRateHandler := handlers.NewManualRateHandler(rateService)
	releaseHandler := handlers.NewReleasePinHandler(rateService)
	deletePairHandler := handlers.NewDeletePairHandler(rateService)
	historyHandler := handlers.NewHistoryHandler(historyReadRepo)
	deleteHistoryHandler := handlers.NewDeleteHistoryEntryHandler(rateService)
	refreshHandler := handlers.NewRefreshHandler(reconciler)
	lastUpdateHandler := handlers.NewLastUpdateHandler(reconciler)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/rates", listRatesHandler)
		r.Get("/rates/lookup/{target}", lookupHandler)
		r.Get("/rates/history", historyHandler)
		r.Get("/rates/last-auto-update", lastUpdateHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))
			r.Post("/rates/manual", manualRateHandler)
			r.Post("/rates/{target}/release", releaseHandler)
			r.Delete("/rates/{target}", deletePairHandler)
			r.Delete("/rates/history/{entryID}", deleteHistoryHandler)
			r.Post("/rates/refresh", refreshHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	stopSched()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// runMigrations applies any pending SQL migrations from migrationsDir.
func runMigrations(db *sqlx.DB, migrationsDir string) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("creating postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsDir),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}

	logger.Log.Info("Migrations applied")
	return nil
}
