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
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/sbilibin2017/gw-topup-wallet/docs"
	"github.com/sbilibin2017/gw-topup-wallet/internal/facades"
	"github.com/sbilibin2017/gw-topup-wallet/internal/handlers"
	"github.com/sbilibin2017/gw-topup-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-topup-wallet/internal/logger"
	"github.com/sbilibin2017/gw-topup-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-topup-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-topup-wallet/internal/repositories"
	"github.com/sbilibin2017/gw-topup-wallet/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const serviceName = "gw-topup-wallet"

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	TransactionsURL   string
	PaymentDetailsURL string
	RelayURL          string
	APITimeout        time.Duration
	UpdateMode        facades.UpdateMode

	Strategy     services.ConfirmationStrategy
	PollInterval time.Duration
	PollTimeout  time.Duration

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	SessionTTL        time.Duration

	PostgresDSN    string // empty disables the relay failure journal
	PGMaxOpenConns int
	PGMaxIdleConns int

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration
	AdminKeyHash string // empty leaves admin routes open

	Breaker facades.BreakerConfig

	SupportEmail string
}

// @title gw-topup-wallet API
// @version 1.0.0
// @description Gateway driving the wallet top-up flow and its admin panel
// @host localhost:8080
// @BasePath /api/v1
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

// parseConfig loads environment variables from a file and returns the application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getSeconds := func(key, defaultValue string) (time.Duration, error) {
		v, err := getInt(key, defaultValue)
		return time.Duration(v) * time.Second, err
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// Remote API config
	cfg.TransactionsURL = getEnv("API_TRANSACTIONS_URL", "http://localhost:9000/transactions")
	cfg.PaymentDetailsURL = getEnv("API_PAYMENT_DETAILS_URL", "http://localhost:9000/payment-details")
	cfg.RelayURL = getEnv("API_RELAY_URL", "http://localhost:9000/telegram-notify")
	if cfg.APITimeout, err = getSeconds("API_TIMEOUT_SECOND", "10"); err != nil {
		return
	}
	if cfg.UpdateMode, err = facades.ParseUpdateMode(getEnv("TRANSACTIONS_UPDATE_MODE", string(facades.UpdateInBody))); err != nil {
		return
	}

	// Flow config
	if cfg.Strategy, err = services.ParseConfirmationStrategy(getEnv("CONFIRMATION_STRATEGY", string(services.ConfirmPolling))); err != nil {
		return
	}
	if cfg.PollInterval, err = getSeconds("POLL_INTERVAL_SECOND", "3"); err != nil {
		return
	}
	if cfg.PollTimeout, err = getSeconds("POLL_TIMEOUT_SECOND", "300"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	if cfg.SessionTTL, err = getSeconds("SESSION_TTL_SECOND", "86400"); err != nil {
		return
	}

	// PostgreSQL config
	cfg.PostgresDSN = getEnv("POSTGRES_DSN", "")
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "topup-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.JWTExp, err = getSeconds("JWT_EXP_SECOND", "3600"); err != nil {
		return
	}
	cfg.AdminKeyHash = getEnv("ADMIN_KEY_HASH", "")

	// Relay circuit breaker config
	var n int
	if n, err = getInt("RELAY_BREAKER_MAX_REQUESTS", "1"); err != nil {
		return
	}
	cfg.Breaker.MaxRequests = uint32(n)
	if n, err = getInt("RELAY_BREAKER_FAILURES", "5"); err != nil {
		return
	}
	cfg.Breaker.ConsecutiveFailures = uint32(n)
	if cfg.Breaker.Interval, err = getSeconds("RELAY_BREAKER_INTERVAL_SECOND", "60"); err != nil {
		return
	}
	if cfg.Breaker.Timeout, err = getSeconds("RELAY_BREAKER_TIMEOUT_SECOND", "30"); err != nil {
		return
	}

	cfg.SupportEmail = getEnv("SUPPORT_EMAIL", "support@example.com")

	return
}

// run initializes the logger, Redis, the optional PostgreSQL journal and Kafka writer, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, serviceName); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec, err := metrics.NewPrometheus("topup", reg)
	if err != nil {
		return fmt.Errorf("metrics registration failed: %w", err)
	}

	// Connect to PostgreSQL
	var journal services.RelayJournal
	if cfg.PostgresDSN != "" {
		db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("postgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		failures := repositories.NewRelayFailureRepository(db)
		if err := failures.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("relay journal schema: %w", err)
		}
		journal = failures
	} else {
		logger.Log.Warnw("POSTGRES_DSN is empty, relay failures will not be journaled")
	}

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Remote collaborators
	httpClient := facades.NewHTTPClient(cfg.APITimeout)
	transactions := facades.NewTransactionsHTTPFacade(cfg.TransactionsURL, httpClient, cfg.UpdateMode)
	paymentDetails := facades.NewPaymentDetailsHTTPFacade(cfg.PaymentDetailsURL, httpClient)
	relay := facades.NewBreakerRelay("relay", facades.NewRelayHTTPFacade(cfg.RelayURL, httpClient), cfg.Breaker, rec)

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize services
	deps := &services.FlowDeps{
		Transactions: transactions,
		Admin:        services.NewAdminPanel(paymentDetails, transactions),
		Relay:        services.NewRelayDispatcher(relay, journal, rec),
		Events:       services.NewTopupEventPublisher(kafkaWriter),
		Metrics:      rec,
		Config: services.FlowConfig{
			Strategy:     cfg.Strategy,
			PollInterval: cfg.PollInterval,
			PollTimeout:  cfg.PollTimeout,
		},
	}
	sessions := services.NewSessionManager(repositories.NewSessionRedisRepository(rdb, cfg.SessionTTL), deps)
	defer sessions.Close()
	authService := services.NewAdminAuthService(cfg.AdminKeyHash, tokens)
	helpService := services.NewHelpService(cfg.SupportEmail)

	if !authService.Enabled() {
		logger.Log.Warnw("ADMIN_KEY_HASH is empty, admin routes are not protected")
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Admin identity gates entering the admin screen on public session routes
		r.Use(middlewares.AdminIdentityMiddleware(tokens, services.AdminSubject, authService.Enabled()))

		// Public routes
		r.Get("/help", handlers.NewHelpHandler(helpService))
		r.Post("/admin/login", handlers.NewAdminLoginHandler(authService))

		r.Post("/sessions", handlers.NewCreateSessionHandler(sessions))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetSessionHandler(sessions))
			r.Delete("/", handlers.NewEndSessionHandler(sessions))
			r.Post("/navigate", handlers.NewNavigateHandler(sessions))
			r.Post("/amount", handlers.NewAmountHandler(sessions))
			r.Post("/qr", handlers.NewQRUploadHandler(sessions))
			r.Post("/paid", handlers.NewPaidHandler(sessions))
			r.Post("/proof", handlers.NewProofUploadHandler(sessions))
			r.Get("/history", handlers.NewHistoryHandler(sessions))

			// Admin routes
			r.Route("/admin", func(r chi.Router) {
				r.Use(middlewares.AdminAuthMiddleware(tokens, services.AdminSubject, authService.Enabled()))
				r.Post("/view", handlers.NewAdminViewHandler(sessions))
				r.Post("/edit", handlers.NewAdminEditHandler(sessions))
				r.Post("/cancel", handlers.NewAdminCancelHandler(sessions))
				r.Post("/form", handlers.NewAdminFormHandler(sessions))
				r.Post("/save", handlers.NewAdminSaveHandler(sessions))
				r.Post("/delete", handlers.NewAdminDeleteHandler(sessions))
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.AdminAuthMiddleware(tokens, services.AdminSubject, authService.Enabled()))
			r.Get("/admin/relay-failures", handlers.NewRelayFailuresHandler(deps.Relay))
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go sessions.RunEvictor(ctxShutdown, time.Minute, cfg.SessionTTL)

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
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
