package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/phuttu/meeting-room-api/internal/app"
	"github.com/phuttu/meeting-room-api/internal/clock"
	"github.com/phuttu/meeting-room-api/internal/config"
	"github.com/phuttu/meeting-room-api/internal/domain"
	"github.com/phuttu/meeting-room-api/internal/storage/memory"
	transporthttp "github.com/phuttu/meeting-room-api/internal/transport/http"
)

const defaultConfigPath = "config.yaml"
const shutdownTimeout = 10 * time.Second

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("invalid log level %q, using info", cfg.Log.Level)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("load timezone: %v", err)
	}
	open, close, err := cfg.BusinessHours()
	if err != nil {
		logger.Fatalf("business hours: %v", err)
	}
	minDuration, maxDuration, err := cfg.DurationBounds()
	if err != nil {
		logger.Fatalf("duration bounds: %v", err)
	}

	rooms := domain.NewRooms(cfg.Booking.Rooms)
	store := memory.NewStore(rooms.IDs())
	svc := app.NewReservationService(
		store,
		clock.NewSystem(),
		loc,
		app.WithBusinessHours(open, close),
		app.WithBlockSize(cfg.BlockSize()),
		app.WithDurationBounds(minDuration, maxDuration),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", transporthttp.HealthHandler)
	mux.Handle("/rooms/", transporthttp.HandleReservations(svc, rooms, loc))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestLogger(transporthttp.CORS(cfg.Server.CORSOrigins, mux), logger)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	logger.WithFields(logrus.Fields{
		"port":     port,
		"timezone": cfg.Booking.Timezone,
		"rooms":    rooms.IDs(),
	}).Info("api listening")

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("server error: %v", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("server shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
