package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"tripmate/internal/app"
	"tripmate/internal/config"
	"tripmate/internal/handler"
	internalRedis "tripmate/internal/redis"
	"tripmate/internal/repository/postgres"
	"tripmate/internal/service"
)

func main() {
	// Load .env if present, then configuration from the environment.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	reportCache := internalRedis.NewReportCache(redisClient)
	lockStore := internalRedis.NewLockStore(redisClient)
	placeStore := internalRedis.NewPlaceStore(redisClient)

	// Initialize repositories.
	tripRepo := postgres.NewTripRepository(db)
	memberRepo := postgres.NewMemberRepository(db)
	flightRepo := postgres.NewFlightRepository(db)
	lodgingRepo := postgres.NewLodgingRepository(db)
	tourRepo := postgres.NewTourRepository(db)
	rentalRepo := postgres.NewRentalRepository(db)
	itineraryRepo := postgres.NewItineraryRepository(db)
	inviteRepo := postgres.NewInviteRepository(db)

	// Initialize services.
	notificationService := service.NewNotificationService()
	tripService := service.NewTripService(db, tripRepo, memberRepo, reportCache, notificationService)
	bookingService := service.NewBookingService(tripRepo, flightRepo, lodgingRepo, tourRepo, rentalRepo, reportCache, notificationService)
	costReportService := service.NewCostReportService(tripRepo, memberRepo, flightRepo, lodgingRepo, tourRepo, rentalRepo, reportCache)
	inviteService := service.NewInviteService(tripRepo, memberRepo, inviteRepo, lockStore, reportCache, notificationService)
	itineraryService := service.NewItineraryService(tripRepo, itineraryRepo, placeStore)

	// Initialize handlers.
	tripHandler := handler.NewTripHandler(tripService)
	flightHandler := handler.NewFlightHandler(bookingService)
	lodgingHandler := handler.NewLodgingHandler(bookingService)
	tourHandler := handler.NewTourHandler(bookingService)
	rentalHandler := handler.NewRentalHandler(bookingService)
	itineraryHandler := handler.NewItineraryHandler(itineraryService)
	inviteHandler := handler.NewInviteHandler(inviteService)
	reportHandler := handler.NewReportHandler(costReportService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		TripHandler:      tripHandler,
		FlightHandler:    flightHandler,
		LodgingHandler:   lodgingHandler,
		TourHandler:      tourHandler,
		RentalHandler:    rentalHandler,
		ItineraryHandler: itineraryHandler,
		InviteHandler:    inviteHandler,
		ReportHandler:    reportHandler,
		RedisClient:      redisClient,
		NewRelicApp:      nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
