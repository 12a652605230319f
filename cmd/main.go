package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/site-content-api/docs"
	"github.com/sbilibin2017/site-content-api/internal/config"
	"github.com/sbilibin2017/site-content-api/internal/jwt"
	"github.com/sbilibin2017/site-content-api/internal/logger"
	"github.com/sbilibin2017/site-content-api/internal/middlewares"
	"github.com/sbilibin2017/site-content-api/internal/repositories"
	"github.com/sbilibin2017/site-content-api/internal/routes"
	"github.com/sbilibin2017/site-content-api/internal/services"
	"github.com/sbilibin2017/site-content-api/internal/store"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title site-content-api
// @version 1.0.0
// @description Content management API for the company marketing website
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
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

// run opens the store, wires repositories, services and routes, and serves
// HTTP until ctx is cancelled or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.UsesDefaultSecret() {
		logger.Log.Warn("JWT_SECRET_KEY is not set, using the development secret")
	}

	// Open the store
	logger.Log.Infow("Opening store", "driver", cfg.DBDriver)
	db, err := store.Open(ctx, store.Config{
		Driver:          cfg.DBDriver,
		DSN:             cfg.DBDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		return err
	}
	if cfg.DBSeed {
		if err := store.Seed(ctx, db); err != nil {
			return err
		}
	}

	// Optional token denylist
	var (
		revoker     services.TokenRevoker
		revocations middlewares.RevocationChecker
	)
	if cfg.UseRedis() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		denylist := repositories.NewTokenDenylistRepository(rdb)
		revoker, revocations = denylist, denylist
		logger.Log.Infow("Token revocation enabled", "redis", cfg.RedisAddr)
	}

	// Optional contact notifications
	var publisher services.KafkaWriter
	if cfg.UseKafka() {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaContactTopic,
			Balancer:               &kafka.Hash{},
			Async:                  true,
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()

		publisher = kw
		logger.Log.Infow("Contact notifications enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaContactTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	handler := newHandler(cfg, db, tokens, revoker, revocations, publisher)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newHandler builds repositories and services over db and returns the router.
// revoker, revocations and publisher may be nil.
func newHandler(
	cfg *config.Config,
	db *sqlx.DB,
	tokens *jwt.JWT,
	revoker services.TokenRevoker,
	revocations middlewares.RevocationChecker,
	publisher services.KafkaWriter,
) http.Handler {
	txGetter := middlewares.GetTxFromContext

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, txGetter)
	contentRepo := repositories.NewContentRepository(db, txGetter)
	contactRepo := repositories.NewContactRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokens, revoker)
	contactService := services.NewContactService(contactRepo, publisher)
	uploadService := services.NewUploadService(cfg.UploadsDir)

	return routes.NewRouter(
		routes.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			MaxBodyBytes:   cfg.MaxContentLength,
			ImagesDir:      uploadService.Dir(),
		},
		routes.Dependencies{
			DB:           db,
			Tokener:      tokens,
			Revocations:  revocations,
			Auth:         authService,
			Content:      contentRepo,
			Services:     repositories.NewServiceRepository(db, txGetter),
			Projects:     repositories.NewProjectRepository(db, txGetter),
			Testimonials: repositories.NewTestimonialRepository(db, txGetter),
			News:         repositories.NewNewsRepository(db, txGetter),
			Contact:      contactService,
			Inbox:        contactRepo,
			Uploader:     uploadService,
			Stats:        repositories.NewStatsRepository(db, txGetter),
		},
	)
}
