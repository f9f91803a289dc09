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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sshuster/viral-video-whisperer-pro/internal/facades"
	"github.com/sshuster/viral-video-whisperer-pro/internal/handlers"
	"github.com/sshuster/viral-video-whisperer-pro/internal/jwt"
	"github.com/sshuster/viral-video-whisperer-pro/internal/logger"
	"github.com/sshuster/viral-video-whisperer-pro/internal/middlewares"
	"github.com/sshuster/viral-video-whisperer-pro/internal/repositories"
	"github.com/sshuster/viral-video-whisperer-pro/internal/services"

	_ "github.com/sshuster/viral-video-whisperer-pro/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "modernc.org/sqlite"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title viral-video-whisperer API
// @version 1.0.0
// @description Backend for video submission, canned AI suggestions, and admin management
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, dbPath, logLevel, jwtSecret, jwtExp, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), appHost, appPort, dbPath, logLevel, jwtSecret, jwtExp); err != nil {
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

// parseConfig loads environment variables from a file and returns the
// application, database, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, dbPath, logLevel, jwtSecretKey string,
	jwtExpSecond int,
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

	// SQLite config
	dbPath = getEnv("DATABASE_PATH", "viral_videos.db")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger and database, wires repositories, services, and
// handlers, and serves HTTP with graceful shutdown.
func run(ctx context.Context, appHost, appPort, dbPath, logLevel, jwtSecretKey string, jwtExpSecond int) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to SQLite. The DSN pragmas enable referential integrity and WAL
	// on every pooled connection.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", dbPath)
	logger.Log.Infof("Connecting to SQLite: %s", dbPath)

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		logger.Log.Fatal("SQLite connection error:", err)
	}
	defer db.Close()

	if err := repositories.Migrate(ctx, db); err != nil {
		logger.Log.Fatal("migration failed:", err)
	}
	if err := repositories.Seed(ctx, db); err != nil {
		logger.Log.Fatal("seeding failed:", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	videoReadRepo := repositories.NewVideoReadRepository(db)
	videoWriteRepo := repositories.NewVideoWriteRepository(db)

	// Initialize services
	analyzer := facades.NewVideoAnalyzerFacade()
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	videoService := services.NewVideoService(videoReadRepo, videoWriteRepo, userReadRepo, analyzer)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo, videoReadRepo)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService)
	registerHandler := handlers.NewRegisterHandler(authService)
	listVideosHandler := handlers.NewListVideosHandler(videoService)
	createVideoHandler := handlers.NewCreateVideoHandler(videoService)
	deleteVideoHandler := handlers.NewDeleteVideoHandler(videoService)
	adminListUsersHandler := handlers.NewAdminListUsersHandler(adminService)
	adminDeleteUserHandler := handlers.NewAdminDeleteUserHandler(adminService)
	adminListVideosHandler := handlers.NewAdminListVideosHandler(adminService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api", func(api chi.Router) {
		// Public routes
		api.Post("/auth/login", loginHandler)
		api.Post("/auth/register", registerHandler)

		api.Get("/videos", listVideosHandler)
		api.Post("/videos", createVideoHandler)
		api.Delete("/videos/{id}", deleteVideoHandler)

		// Admin routes behind the JWT role gate
		api.Route("/admin", func(admin chi.Router) {
			admin.Use(middlewares.AdminOnly(tokens))
			admin.Get("/users", adminListUsersHandler)
			admin.Delete("/users/{id}", adminDeleteUserHandler)
			admin.Get("/videos", adminListVideosHandler)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
