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
	"github.com/joho/godotenv"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bharatpay/upi-wallet/internal/contacts"
	"github.com/bharatpay/upi-wallet/internal/handlers"
	"github.com/bharatpay/upi-wallet/internal/identity"
	"github.com/bharatpay/upi-wallet/internal/jwt"
	"github.com/bharatpay/upi-wallet/internal/ledger"
	"github.com/bharatpay/upi-wallet/internal/logger"
	"github.com/bharatpay/upi-wallet/internal/middlewares"
	"github.com/bharatpay/upi-wallet/internal/seed"
	"github.com/bharatpay/upi-wallet/internal/services"
	"github.com/bharatpay/upi-wallet/internal/txlog"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title upi-wallet API
// @version 1.0.0
// @description Mock UPI payment service: pay contacts, transfer between own accounts, inspect balances and history
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		jwtSecret, jwtExpSecond,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		jwtSecret, jwtExpSecond,
		kafkaAddr, kafkaTopic,
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
// application, JWT, and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	kafkaAddr, kafkaTopic string,
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

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config; an empty address disables transaction publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "transactions")

	return
}

// run initializes the logger, seeds the session state, and serves the HTTP
// API with graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Seed the session state
	data := seed.Demo()

	identityStore, err := identity.New(data.User, data.Accounts, data.PIN)
	if err != nil {
		return fmt.Errorf("failed to seed identity: %w", err)
	}

	balanceLedger := ledger.New(data.Balances())

	transactionLog := txlog.New()
	// Seed data is newest first; append in reverse so the log keeps that order.
	for i := len(data.Transactions) - 1; i >= 0; i-- {
		transactionLog.Append(data.Transactions[i])
	}

	contactStore := contacts.New(data.Contacts)

	// Optional Kafka publisher for committed transactions
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		kafkaWriter = writer
		logger.Log.Infof("Publishing transactions to Kafka at %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(identityStore, jwtSvc)
	paymentService := services.NewPaymentService(identityStore, balanceLedger, transactionLog, kafkaWriter)

	// Initialize handlers
	loginHandler := handlers.NewLoginHandler(authService)
	profileHandler := handlers.NewProfileHandler(paymentService)
	balanceHandler := handlers.NewBalanceHandler(paymentService)
	contactsHandler := handlers.NewContactsHandler(contactStore)
	payHandler := handlers.NewPayHandler(paymentService, jwtSvc)
	transferHandler := handlers.NewTransferHandler(paymentService, jwtSvc)
	historyHandler := handlers.NewHistoryHandler(paymentService)
	groupedHistoryHandler := handlers.NewGroupedHistoryHandler(paymentService)
	recentHandler := handlers.NewRecentHandler(paymentService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/login", loginHandler)

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwtSvc))
			r.Get("/profile", profileHandler)
			r.Get("/balance", balanceHandler)
			r.Get("/contacts", contactsHandler)
			r.Post("/payments", payHandler)
			r.Post("/transfers", transferHandler)
			r.Get("/transactions", historyHandler)
			r.Get("/transactions/grouped", groupedHistoryHandler)
			r.Get("/transactions/recent", recentHandler)
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
