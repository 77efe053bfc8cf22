package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docconnect/config"
	deliveryHttp "docconnect/internal/delivery/http"
	"docconnect/internal/delivery/http/handler"
	"docconnect/internal/delivery/http/middleware"
	"docconnect/internal/domain/entity"
	"docconnect/internal/infrastructure/directory"
	"docconnect/internal/repository"
	"docconnect/internal/usecase"
	"docconnect/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config *config.Config
	Server *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Load the doctor directory. A failed load is logged, not fatal: the
	// service comes up with an empty directory and every search returns
	// zero results.
	source := directory.NewSource(cfg.Directory.FetchDelay)
	doctors, err := source.Fetch(context.Background())
	if err != nil {
		logrus.Errorf("Failed to load doctor directory: %v", err)
		doctors = nil
	}
	logrus.Infof("Doctor directory loaded: %d doctors", len(doctors))

	// Initialize all layers
	server, err := initializeServer(cfg, doctors)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize server: %w", err)
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, doctors []entity.Doctor) (*http.Server, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	directoryRepo := repository.NewDoctorDirectoryRepository(doctors)
	ledgerRepo := repository.NewAppointmentLedgerRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Booked-appointment hook: counts committed bookings. Fired exactly once
	// per successful booking.
	appointmentsBooked := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "appointments_booked_total",
		Help: "Total number of appointments committed to the ledger.",
	})
	if err := prometheus.Register(appointmentsBooked); err != nil {
		return nil, err
	}
	onBooked := func(appointment *entity.Appointment) {
		appointmentsBooked.Inc()
	}

	// Initialize usecases
	directoryUsecase := usecase.NewDoctorDirectoryUsecase(log, directoryRepo)
	bookingUsecase := usecase.NewBookingUsecase(log, directoryRepo, ledgerRepo, cfg.Booking.CommitLatency, onBooked)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(directoryUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	metricsMiddleware, err := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, err
	}

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, appointmentHandler, corsMiddleware, loggingMiddleware, metricsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server shutdown complete")
}
