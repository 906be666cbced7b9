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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-tools-directory/docs"
	"github.com/sbilibin2017/gw-tools-directory/internal/handlers"
	"github.com/sbilibin2017/gw-tools-directory/internal/identity"
	"github.com/sbilibin2017/gw-tools-directory/internal/jwt"
	"github.com/sbilibin2017/gw-tools-directory/internal/logger"
	"github.com/sbilibin2017/gw-tools-directory/internal/metrics"
	"github.com/sbilibin2017/gw-tools-directory/internal/middlewares"
	"github.com/sbilibin2017/gw-tools-directory/internal/migrations"
	"github.com/sbilibin2017/gw-tools-directory/internal/repositories"
	"github.com/sbilibin2017/gw-tools-directory/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	AutoMigrate bool
	CORSOrigins []string

	DatabaseURL    string
	PGMaxOpenConns int
	PGMaxIdleConns int

	SupabaseURL       string
	SupabaseAPIKey    string
	SupabaseJWTSecret string

	KafkaBrokers        []string
	KafkaDownloadsTopic string
}

// @title gw-tools-directory API
// @version 1.0.0
// @description Community directory of gaming tools: catalog, downloads, reviews and admin curation
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file; variables already set win.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	if cfg.AutoMigrate, err = strconv.ParseBool(getEnv("APP_AUTO_MIGRATE", "false")); err != nil {
		return cfg, fmt.Errorf("APP_AUTO_MIGRATE: %w", err)
	}
	cfg.CORSOrigins = splitList(getEnv("APP_CORS_ORIGINS", "*"))

	// PostgreSQL config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	if cfg.DatabaseURL == "" {
		pgPort, err := strconv.Atoi(getEnv("POSTGRES_PORT", "5432"))
		if err != nil {
			return cfg, fmt.Errorf("POSTGRES_PORT: %w", err)
		}
		cfg.DatabaseURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			getEnv("POSTGRES_USER", "user"),
			getEnv("POSTGRES_PASSWORD", "password"),
			getEnv("POSTGRES_HOST", "localhost"),
			pgPort,
			getEnv("POSTGRES_DB", "database"),
		)
	}
	if cfg.PGMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_OPEN_CONNS: %w", err)
	}
	if cfg.PGMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return cfg, fmt.Errorf("POSTGRES_MAX_IDLE_CONNS: %w", err)
	}

	// Identity provider config
	cfg.SupabaseURL = getEnv("SUPABASE_URL", "")
	cfg.SupabaseAPIKey = getEnv("SUPABASE_ANON_KEY", getEnv("SUPABASE_SERVICE_ROLE_KEY", ""))
	cfg.SupabaseJWTSecret = getEnv("SUPABASE_JWT_SECRET", "")

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaDownloadsTopic = getEnv("KAFKA_DOWNLOADS_TOPIC", "tool-downloads")

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// routes holds the handlers and guards mounted by newRouter.
type routes struct {
	listTools      http.HandlerFunc
	featuredTools  http.HandlerFunc
	getTool        http.HandlerFunc
	listReviews    http.HandlerFunc
	recordDownload http.HandlerFunc
	submitReview   http.HandlerFunc

	testLogin      http.HandlerFunc
	adminListTools http.HandlerFunc
	adminStats     http.HandlerFunc
	createTool     http.HandlerFunc
	updateTool     http.HandlerFunc
	deleteTool     http.HandlerFunc

	health http.HandlerFunc

	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// newRouter mounts the API, ops endpoints and middleware chain.
func newRouter(rt routes, log *zap.SugaredLogger, corsOrigins []string, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(middlewares.CORSMiddleware(corsOrigins))
	r.Use(metrics.InstrumentHandler)

	r.Get("/health", rt.health)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/tools", rt.listTools)
		r.Get("/tools/featured", rt.featuredTools)
		r.Get("/tools/{slug}", rt.getTool)
		r.Get("/reviews/{toolId}", rt.listReviews)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(rt.auth)
			r.Post("/downloads", rt.recordDownload)
			r.Post("/reviews", rt.submitReview)
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(rt.admin)
			r.Get("/test-login", rt.testLogin)
			r.Get("/tools", rt.adminListTools)
			r.Get("/stats", rt.adminStats)
			r.Post("/tools", rt.createTool)
			r.Put("/tools/{id}", rt.updateTool)
			r.Delete("/tools/{id}", rt.deleteTool)
		})
	})

	return r
}

// run initializes the logger, database, Kafka writer and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, "json"); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.AutoMigrate {
		if err := migrations.Up(db.DB); err != nil {
			return err
		}
	}

	// Kafka writer for download events; nil disables publishing
	var events services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaDownloadsTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		events = kw
		log.Infow("Publishing download events", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaDownloadsTopic)
	}

	// Identity provider
	if cfg.SupabaseJWTSecret == "" && cfg.SupabaseURL == "" {
		log.Warn("Neither SUPABASE_JWT_SECRET nor SUPABASE_URL is set; every authenticated request will be rejected")
	}
	tokens := jwt.New(jwt.WithSecretKey(cfg.SupabaseJWTSecret))
	idp := identity.NewProvider(identity.Config{
		URL:       cfg.SupabaseURL,
		APIKey:    cfg.SupabaseAPIKey,
		JWTSecret: cfg.SupabaseJWTSecret,
	}, tokens)

	// Initialize repositories
	toolReadRepo := repositories.NewToolReadRepository(db)
	toolWriteRepo := repositories.NewToolWriteRepository(db)
	buttonReadRepo := repositories.NewDownloadButtonReadRepository(db)
	buttonWriteRepo := repositories.NewDownloadButtonWriteRepository(db)
	downloadReadRepo := repositories.NewDownloadReadRepository(db)
	downloadWriteRepo := repositories.NewDownloadWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	userRepo := repositories.NewUserRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services
	catalogService := services.NewCatalogService(toolReadRepo, toolWriteRepo, buttonReadRepo, buttonWriteRepo, downloadReadRepo, reviewReadRepo)
	userService := services.NewUserService(userRepo, userRepo)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo, toolReadRepo, userService)
	downloadService := services.NewDownloadService(downloadWriteRepo, toolReadRepo, userService, events)
	adminService := services.NewAdminService(statsRepo, userRepo)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	// Setup router
	r := newRouter(routes{
		listTools:      handlers.NewListToolsHandler(catalogService),
		featuredTools:  handlers.NewFeaturedToolsHandler(catalogService),
		getTool:        handlers.NewGetToolHandler(catalogService),
		listReviews:    handlers.NewListReviewsHandler(reviewService),
		recordDownload: handlers.NewRecordDownloadHandler(downloadService),
		submitReview:   handlers.NewSubmitReviewHandler(reviewService),
		testLogin:      handlers.NewTestLoginHandler(),
		adminListTools: handlers.NewAdminListToolsHandler(catalogService),
		adminStats:     handlers.NewAdminStatsHandler(adminService),
		createTool:     handlers.NewCreateToolHandler(catalogService),
		updateTool:     handlers.NewUpdateToolHandler(catalogService),
		deleteTool:     handlers.NewDeleteToolHandler(catalogService),
		health:         handlers.NewHealthHandler(db, buildVersion),
		auth:           middlewares.AuthMiddleware(idp),
		admin:          middlewares.AdminMiddleware(idp, userService),
	}, log, cfg.CORSOrigins, fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
