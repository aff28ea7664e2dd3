package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/petcare-labs/pawsched/libs/db"
)

// DueReminder is the slice of an appointment the reminder pipeline needs.
type DueReminder struct {
	AppointmentID string
	ClinicID      string
	PetID         string
	StartsAt      time.Time
	Type          string
	Purpose       string
}

type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

// FlagColumn values come from the closed Window enum, so interpolating the
// column name is safe.
const dueQuery = `
	SELECT id::text, clinic_id::text, pet_id::text, starts_at, appt_type, purpose
	FROM appointments
	WHERE status IN ('scheduled', 'rescheduled')
	  AND NOT %s
	  AND starts_at >= $1 AND starts_at <= $2
	ORDER BY starts_at
	LIMIT $3
`

// FindDue locks and returns appointments due a reminder for the window as of
// now. Rows already claimed by a concurrent scanner are skipped.
func (r *Repository) FindDue(ctx context.Context, tx pgx.Tx, w Window, now time.Time, limit int) ([]DueReminder, error) {
	lo, hi := w.DueRange(now)
	rows, err := tx.Query(ctx, sprintfDue(w)+" FOR UPDATE SKIP LOCKED", lo, hi, limit)
	if err != nil {
		return nil, err
	}
	return collectDue(rows)
}

// FindDueSnapshot is the read-only variant backing the inspection endpoint.
func (r *Repository) FindDueSnapshot(ctx context.Context, w Window, now time.Time, limit int) ([]DueReminder, error) {
	lo, hi := w.DueRange(now)
	rows, err := r.pool.Query(ctx, sprintfDue(w), lo, hi, limit)
	if err != nil {
		return nil, err
	}
	return collectDue(rows)
}

// MarkSent flips the window's sent flag. It reports false without error when
// the flag was already set or the appointment is no longer active, so repeat
// confirmations are harmless. A missing appointment returns pgx.ErrNoRows.
func (r *Repository) MarkSent(ctx context.Context, w Window, appointmentID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET `+w.FlagColumn()+` = true, updated_at = now()
		WHERE id = $1
		  AND NOT `+w.FlagColumn()+`
		  AND status IN ('scheduled', 'rescheduled')
	`, appointmentID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT true FROM appointments WHERE id = $1`, appointmentID).Scan(&exists); err != nil {
		return false, err
	}
	return false, nil
}

// MarkSentInTx is MarkSent for the scan worker, inside the locking
// transaction.
func (r *Repository) MarkSentInTx(ctx context.Context, tx pgx.Tx, w Window, appointmentID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE appointments
		SET `+w.FlagColumn()+` = true, updated_at = now()
		WHERE id = $1 AND NOT `+w.FlagColumn(), appointmentID)
	return err
}

func sprintfDue(w Window) string {
	return fmt.Sprintf(dueQuery, w.FlagColumn())
}

func collectDue(rows pgx.Rows) ([]DueReminder, error) {
	defer rows.Close()
	var due []DueReminder
	for rows.Next() {
		var d DueReminder
		if err := rows.Scan(&d.AppointmentID, &d.ClinicID, &d.PetID, &d.StartsAt, &d.Type, &d.Purpose); err != nil {
			return nil, err
		}
		due = append(due, d)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return due, nil
}
