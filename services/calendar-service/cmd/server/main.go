package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/config"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/handler"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/notify"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/pubsub"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/repository"
	"github.com/Ag1rin/TazeinDecor-sub002/services/calendar-service/internal/service"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/db"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/logger"
	"github.com/Ag1rin/TazeinDecor-sub002/shared/pkg/metrics"
)

func main() {
	log := logger.NewLogger("calendar-service")

	if err := godotenv.Load(); err != nil {
		log.Entry().WithError(err).Warn(".env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Entry().WithError(err).Fatal("Failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.Entry().WithError(err).Fatal("Failed to connect to database")
	}
	defer conn.Close()
	log.Entry().Info("Successfully connected to database")

	if err := db.NewSchemaGuard(conn.DB).ValidateTables(ctx, repository.Schemas); err != nil {
		log.Entry().WithError(err).Fatal("Database schema does not match")
	}

	m := metrics.NewMetrics("calendar")
	go recordPoolStats(ctx, conn, m)

	checks := map[string]handler.HealthCheck{"mysql": conn.Ping}

	publisher := pubsub.NewNoopPublisher()
	if cfg.Redis.URL != "" {
		if publisher, err = pubsub.NewRedisPublisher(ctx, cfg.Redis.URL); err != nil {
			log.Entry().WithError(err).Fatal("Failed to connect to Redis")
		}
		if p, ok := publisher.(interface{ Ping(context.Context) error }); ok {
			checks["redis"] = p.Ping
		}
		log.Entry().Info("Publishing installation events to Redis")
	}
	defer publisher.Close()

	calendar := service.NewCalendar(cfg.Calendar.Location)
	installations := service.NewInstallationService(repository.NewInstallationRepository(conn.DB), calendar, service.Options{
		Publisher: publisher,
		SMS:       notify.NewSMSChannel(cfg.SMS.Config, log.Entry()),
		Receptors: cfg.SMS.Receptors,
		Metrics:   m,
		Logger:    log,
	})

	if cfg.Calendar.ReminderHour >= 0 {
		go installations.RunDailyReminder(ctx, cfg.Calendar.ReminderHour)
		log.Entry().WithField("hour", cfg.Calendar.ReminderHour).Info("Daily installation reminder scheduled")
	}

	server := &http.Server{
		Addr: ":" + cfg.Server.HTTPPort,
		Handler: handler.NewRouter(handler.Dependencies{
			Calendar:      calendar,
			Installations: installations,
			Metrics:       m,
			Logger:        log,
			HealthChecks:  checks,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Entry().WithField("port", cfg.Server.HTTPPort).Info("Calendar service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Entry().WithError(err).Error("HTTP server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Entry().Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Entry().WithError(err).Error("Graceful shutdown failed")
		return
	}
	log.Entry().Info("Server stopped")
}

// recordPoolStats exports connection pool statistics every 15 seconds
func recordPoolStats(ctx context.Context, conn *db.Connection, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.RecordDBPoolStats(conn.Stats())
		}
	}
}
