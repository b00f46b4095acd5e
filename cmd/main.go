package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-mood-journal/docs"
	"github.com/sbilibin2017/gw-mood-journal/internal/config"
	"github.com/sbilibin2017/gw-mood-journal/internal/facades"
	"github.com/sbilibin2017/gw-mood-journal/internal/handlers"
	"github.com/sbilibin2017/gw-mood-journal/internal/jwt"
	"github.com/sbilibin2017/gw-mood-journal/internal/logger"
	"github.com/sbilibin2017/gw-mood-journal/internal/middlewares"
	"github.com/sbilibin2017/gw-mood-journal/internal/migrations"
	"github.com/sbilibin2017/gw-mood-journal/internal/repositories"
	"github.com/sbilibin2017/gw-mood-journal/internal/sentiment"
	"github.com/sbilibin2017/gw-mood-journal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-mood-journal API
// @version 1.0.0
// @description Mood journal with sentiment scoring, meditation recommendations and a premium tier
// @host localhost:8080
// @BasePath /api/v1
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

// dependencies are the optional outbound clients of the router. Nil fields
// turn the matching feature off.
type dependencies struct {
	redis *redis.Client
	kafka services.KafkaWriter
	audio handlers.AudioURLer
}

// run initializes the logger, database, optional Redis, Kafka and S3 clients,
// and the HTTP server. It blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.App.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.App.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.Postgres.Host, "port", cfg.Postgres.Port, "db", cfg.Postgres.DB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	if cfg.App.RunMigrations {
		if err := migrations.Up(ctx, db.DB); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		logger.Log.Info("Database migrations applied")
	}

	var deps dependencies

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Addr,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, sentiment cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			deps.redis = rdb
		}
	}

	if brokers := cfg.Kafka.BrokerList(); len(brokers) > 0 {
		writer := newEventWriter(cfg.Kafka, brokers)
		defer writer.Close()
		deps.kafka = writer
	}

	if cfg.S3.Bucket != "" {
		client, err := facades.NewS3Client(ctx, cfg.S3)
		if err != nil {
			logger.Log.Warnw("S3 unavailable, audio links disabled", "error", err)
		} else {
			deps.audio = facades.NewS3AudioFacade(client, cfg.S3.Bucket, cfg.S3.KeyPrefix, config.Seconds(cfg.S3.URLExpSec))
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.App.Host, cfg.App.Port),
		Handler:      newRouter(cfg, db, deps),
		ReadTimeout:  config.Seconds(cfg.App.ReadTimeoutSecond),
		WriteTimeout: config.Seconds(cfg.App.WriteTimeoutSecond),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers into the HTTP API.
// newEventWriter builds the event producer. Events are published while the
// activation row lock is held, so a write is flushed at once and bounded in time.
func newEventWriter(cfg config.KafkaConfig, brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           2 * time.Second,
	}
}

func newRouter(cfg *config.Config, db *sqlx.DB, deps dependencies) http.Handler {
	publicURL := strings.TrimRight(cfg.App.PublicURL, "/")
	docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(publicURL, "https://"), "http://")

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWT.SecretKey),
		jwt.WithExpiration(config.Seconds(cfg.JWT.ExpSecond)),
	)

	// Initialize repositories
	txGetter := repositories.TxGetter(middlewares.GetTxFromContext)
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	journalWriteRepo := repositories.NewJournalWriteRepository(db, txGetter)
	journalReadRepo := repositories.NewJournalReadRepository(db)

	var scoreCache services.ScoreCache
	if deps.redis != nil {
		scoreCache = repositories.NewSentimentCacheRepository(deps.redis, config.Seconds(cfg.Redis.ExpSecond))
	}

	// Initialize outbound clients
	classifier := sentiment.NewClassifier(cfg.HuggingFace.APIKey,
		sentiment.WithBaseURL(cfg.HuggingFace.BaseURL),
		sentiment.WithMemoSize(cfg.Sentiment.MemoSize),
	)
	if !classifier.Configured() {
		logger.Log.Warn("Inference API key not configured, using keyword sentiment only")
	}
	checkout := facades.NewIntaSendCheckoutFacade(
		cfg.IntaSend.PublicKey, cfg.IntaSend.SecretKey, cfg.IntaSend.CheckoutURL(), nil,
	)

	// Initialize services
	publisher := services.NewEventPublisher(deps.kafka)
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	journalService := services.NewJournalService(
		journalWriteRepo, journalReadRepo, classifier, scoreCache, publisher,
		config.Seconds(cfg.Sentiment.TimeoutSecond),
	)
	premiumService := services.NewPremiumService(userReadRepo, userWriteRepo, checkout, publisher, services.PremiumOptions{
		Amount:        cfg.Premium.Amount,
		Currency:      cfg.Premium.Currency,
		RedirectURL:   publicURL + "/api/v1/premium/success",
		CallbackURL:   publicURL + "/api/v1/premium/webhook",
		WebhookSecret: cfg.IntaSend.SigningSecret(),
	})

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", handlers.SignatureHeader},
	}).Handler)

	r.Get("/healthz", handlers.NewHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(publicURL+"/swagger/doc.json"),
	))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService, tokens.Expiration()))
		r.With(middlewares.TxMiddleware(db)).Post("/premium/webhook", handlers.NewWebhookHandler(premiumService))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens))
			r.Post("/journal", handlers.NewCreateEntryHandler(journalService))
			r.Get("/journal", handlers.NewListEntriesHandler(journalService))
			r.Get("/dashboard", handlers.NewDashboardHandler(journalService))
			r.Get("/meditations", handlers.NewMeditationsHandler(authService))
			r.Get("/audio/{file}", handlers.NewAudioHandler(authService, deps.audio))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(db))
				r.Post("/premium/checkout", handlers.NewCheckoutHandler(premiumService))
				r.Get("/premium/success", handlers.NewPremiumSuccessHandler(premiumService))
				r.Delete("/account", handlers.NewDeleteAccountHandler(authService))
			})
		})
	})

	return r
}
