package scan

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/petcare-labs/pawsched/libs/db"
	"github.com/petcare-labs/pawsched/libs/outbox"
)

// Worker periodically scans for appointments due a reminder and enqueues a
// reminders.reminder.due.v1 outbox event per hit. The sent flag flips in the
// same transaction as the outbox insert, so each window fires at most once
// per appointment.
type Worker struct {
	pool      *db.Pool
	repo      *Repository
	outbox    *outbox.Repository
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
	now       func() time.Time
}

type WorkerConfig struct {
	Interval  time.Duration
	BatchSize int
}

func NewWorker(pool *db.Pool, repo *Repository, outboxRepo *outbox.Repository, logger *slog.Logger, cfg WorkerConfig) *Worker {
	if cfg.Interval <= 0 {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Worker{
		pool:      pool,
		repo:      repo,
		outbox:    outboxRepo,
		logger:    logger,
		interval:  cfg.Interval,
		batchSize: cfg.BatchSize,
		now:       time.Now,
	}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, window := range []Window{Window24h, Window2h} {
				if err := w.scanWindow(ctx, window); err != nil {
					w.logger.Error("reminder scan failed", "window", string(window), "err", err)
				}
			}
		}
	}
}

func (w *Worker) scanWindow(ctx context.Context, window Window) error {
	tx, err := w.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	due, err := w.repo.FindDue(ctx, tx, window, w.now().UTC(), w.batchSize)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return tx.Commit(ctx)
	}

	for _, d := range due {
		payload, err := json.Marshal(map[string]any{
			"appointment_id": d.AppointmentID,
			"clinic_id":      d.ClinicID,
			"pet_id":         d.PetID,
			"start_time":     d.StartsAt.UTC().Format(time.RFC3339),
			"type":           d.Type,
			"purpose":        d.Purpose,
			"window":         string(window),
		})
		if err != nil {
			return err
		}
		if err := w.outbox.Insert(ctx, tx, outbox.Event{
			AggregateType: "appointment",
			AggregateID:   d.AppointmentID,
			EventType:     "reminders.reminder.due.v1",
			Payload:       payload,
		}); err != nil {
			return err
		}
		if err := w.repo.MarkSentInTx(ctx, tx, window, d.AppointmentID); err != nil {
			return err
		}
	}

	w.logger.Info("reminders enqueued", "window", string(window), "count", len(due))
	return tx.Commit(ctx)
}
