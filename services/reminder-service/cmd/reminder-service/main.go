package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/petcare-labs/pawsched/libs/config"
	"github.com/petcare-labs/pawsched/libs/db"
	"github.com/petcare-labs/pawsched/libs/httpx"
	"github.com/petcare-labs/pawsched/libs/inbox"
	"github.com/petcare-labs/pawsched/libs/kafkax"
	otelx "github.com/petcare-labs/pawsched/libs/otel"
	"github.com/petcare-labs/pawsched/libs/outbox"
	"github.com/petcare-labs/pawsched/libs/runtime"
	"github.com/petcare-labs/pawsched/services/reminder-service/internal/consumer"
	"github.com/petcare-labs/pawsched/services/reminder-service/internal/handlers"
	"github.com/petcare-labs/pawsched/services/reminder-service/internal/scan"
)

func main() {
	service := config.String("SERVICE_NAME", "reminder-service")
	port, err := config.Port("PORT", "8087")
	if err != nil {
		panic(err)
	}
	logger := runtime.NewLogger(service)

	ctx, stop := runtime.SignalContext()
	defer stop()

	otelShutdown, err := otelx.Setup(ctx, otelx.ConfigFromEnv(service))
	if err != nil {
		logger.Error("otel setup failed", "err", err)
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = otelShutdown(shutdownCtx)
		}()
	}

	dbURL, err := config.RequiredString("DATABASE_URL")
	if err != nil {
		panic(err)
	}

	pool, err := db.Open(ctx, dbURL)
	if err != nil {
		logger.Error("db connection failed", "err", err)
		panic(err)
	}
	defer pool.Close()

	scanRepo := scan.NewRepository(pool)
	outboxRepo := outbox.NewRepository()
	inboxRepo := inbox.NewRepository(pool)

	outboxPublisher := outbox.NewPublisher(pool, outboxRepo, logger, outbox.PublisherConfig{
		Brokers:   config.String("KAFKA_BROKERS", ""),
		PollEvery: 2 * time.Second,
		BatchSize: 50,
	})
	go outboxPublisher.Run(ctx)

	scanMinutes, err := strconv.Atoi(config.String("SCAN_INTERVAL_MINUTES", "15"))
	if err != nil || scanMinutes <= 0 {
		scanMinutes = 15
	}
	worker := scan.NewWorker(pool, scanRepo, outboxRepo, logger, scan.WorkerConfig{
		Interval:  time.Duration(scanMinutes) * time.Minute,
		BatchSize: 100,
	})
	go worker.Run(ctx)

	consumerCfg := consumer.Config{
		Brokers: config.String("KAFKA_BROKERS", ""),
		GroupID: config.String("KAFKA_GROUP_ID", "reminder-service"),
		Topic:   config.String("KAFKA_CONSUME_TOPIC", "notify.reminder.dispatched.v1"),
	}
	eventConsumer := consumer.New(logger, inboxRepo, consumerCfg, func(ctx context.Context, msg kafka.Message) error {
		var payload struct {
			AppointmentID string `json:"appointment_id"`
			Window        string `json:"window"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			logger.Error("invalid dispatch confirmation", "err", err)
			return nil
		}
		window, err := scan.ParseWindow(payload.Window)
		if err != nil || payload.AppointmentID == "" {
			logger.Error("missing dispatch confirmation fields", "window", payload.Window)
			return nil
		}

		if _, err := scanRepo.MarkSent(ctx, window, payload.AppointmentID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Warn("dispatch confirmation for unknown appointment", "appointment_id", payload.AppointmentID)
				return nil
			}
			return err
		}
		return nil
	})
	go eventConsumer.Run(ctx)

	reminderHandler := handlers.NewReminderHandler(scanRepo, logger)

	mux := runtime.NewBaseMuxWithReady(
		runtime.ReadyCheck{Name: "db", Check: db.ReadyCheck(pool)},
		runtime.ReadyCheck{Name: "kafka", Check: kafkax.ReadyCheck(config.String("KAFKA_BROKERS", ""))},
	)
	mux.HandleFunc("/api/v1/reminders/due", reminderHandler.Due)
	mux.HandleFunc("/api/v1/reminders/mark-sent", reminderHandler.MarkSent)

	handler := httpx.Chain(mux,
		httpx.WithRequestID,
		httpx.WithAccessLog(logger),
	)
	handler = otelhttp.NewHandler(handler, "reminder")
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", "err", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "err", err)
	}
	logger.Info("http server stopped")
}
