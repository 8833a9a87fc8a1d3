package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/learnpath/backend/docs"
	"github.com/learnpath/backend/internal/auth"
	"github.com/learnpath/backend/internal/catalog"
	"github.com/learnpath/backend/internal/config"
	"github.com/learnpath/backend/internal/handlers"
	"github.com/learnpath/backend/internal/logger"
	"github.com/learnpath/backend/internal/metrics"
	"github.com/learnpath/backend/internal/middleware"
	"github.com/learnpath/backend/internal/progress"
	"github.com/learnpath/backend/internal/repositories"
	"github.com/learnpath/backend/internal/scheduler"
	"github.com/learnpath/backend/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title LearnPath API
// @version 1.0
// @description API for course progress, streaks and rewards of a single learner

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting LearnPath API", zap.String("user_id", cfg.Progress.UserID))

	// Load the course catalog and the initial user progress
	seed, err := loadSeed(cfg.Progress.SeedFile)
	if err != nil {
		logger.Logger.Fatal("Failed to load seed", zap.Error(err))
	}
	seed.Stamp(time.Now())
	seed.UserProgress.UserID = cfg.Progress.UserID

	store := progress.NewStore(
		seed.Courses,
		seed.UserProgress,
		seed.AchievementRules,
		progress.WithLocation(cfg.Progress.Location),
	)

	// Initialize flag storage. MySQL is used when configured.
	var flagRepo services.FlagRepository
	if cfg.HasDatabase() {
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}
		flagRepo = repositories.NewFlagRepository(db, logger.Logger)
	} else {
		logger.Logger.Info("No database configured, flags are kept in memory")
		flagRepo = repositories.NewMemoryFlagRepository()
	}

	m := metrics.New()

	// Initialize services
	tokenGenerator := auth.NewTokenGenerator(cfg.JWT.Secret, cfg.JWT.Expiry)
	courseService := services.NewCourseService(store, logger.Logger, m.ObserveViews)
	authService := services.NewAuthService(flagRepo, tokenGenerator, cfg.Progress.UserID, logger.Logger)

	// Every app start counts as a visit
	courseService.CheckIn(context.Background())

	// Recompute day dependent views at the day boundary
	rollover, err := scheduler.NewScheduler("day-rollover", cfg.Progress.RolloverSchedule, cfg.Progress.Location, courseService.RefreshViews, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create day rollover scheduler", zap.Error(err))
	}
	rollover.Start()
	defer rollover.Stop()

	// Initialize handlers
	courseHandler := handlers.NewCourseHandler(courseService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(courseService, logger.Logger)
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)

	authMiddleware := middleware.AuthMiddleware(authService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(m.Middleware)
	r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", m.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api/v1
	r.Route("/api/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authMiddleware)
		courseHandler.RegisterRoutes(r, authMiddleware)
		progressHandler.RegisterRoutes(r, authMiddleware)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// loadSeed reads the seed file when one is configured and falls back to the embedded catalog
func loadSeed(path string) (*catalog.Seed, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "learnpath_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
