package storage

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/petcare-labs/pawsched/libs/db"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
)

type BookingRepository struct {
	pool *db.Pool
}

func NewBookingRepository(pool *db.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

func (r *BookingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// LockClinic serializes booking attempts per clinic for the remainder of the
// transaction. Attempts against other clinics proceed independently; the lock
// is released on commit or rollback.
func (r *BookingRepository) LockClinic(ctx context.Context, tx pgx.Tx, clinicID string) error {
	_, err := tx.Exec(ctx, `
		SELECT pg_advisory_xact_lock(hashtextextended('pawsched:clinic:' || $1, 0))
	`, clinicID)
	return err
}

// CountOverlapping re-runs the half-open overlap test against active
// appointments inside the booking transaction, closing the gap between "slot
// was listed as free" and "slot is actually reserved". excludeID skips the
// appointment being rescheduled; pass "" on create.
func (r *BookingRepository) CountOverlapping(ctx context.Context, tx pgx.Tx, clinicID string, start, end time.Time, excludeID string) (int, error) {
	var count int
	err := tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM appointments
		WHERE clinic_id = $1
			AND status IN ('scheduled', 'rescheduled')
			AND starts_at < $3
			AND ends_at > $2
			AND ($4 = '' OR id::text <> $4)
	`, clinicID, start, end, excludeID).Scan(&count)
	return count, err
}

func (r *BookingRepository) Create(ctx context.Context, tx pgx.Tx, appt *model.Appointment) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments
			(clinic_id, pet_id, starts_at, ends_at, appt_type, purpose, status, notes, triage_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		RETURNING id
	`, appt.ClinicID, appt.PetID, appt.StartsAt, appt.EndsAt, appt.Type, appt.Purpose,
		appt.Status, appt.Notes, appt.TriageID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

const appointmentColumns = `id::text, clinic_id::text, pet_id::text, starts_at, ends_at, appt_type, purpose,
	status, sent_24h, sent_2h, COALESCE(notes, ''), COALESCE(triage_id, ''),
	cancelled_at, COALESCE(cancellation_reason, ''), created_at`

func (r *BookingRepository) Get(ctx context.Context, appointmentID string) (model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
	`, appointmentID)
	return scanAppointment(row)
}

func (r *BookingRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, appointmentID string) (model.Appointment, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE id = $1
		FOR UPDATE
	`, appointmentID)
	return scanAppointment(row)
}

// Reschedule moves the appointment to a new interval and clears both reminder
// flags so the new time earns its own reminders.
func (r *BookingRepository) Reschedule(ctx context.Context, tx pgx.Tx, appointmentID string, start, end time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET starts_at = $2,
			ends_at = $3,
			status = 'rescheduled',
			sent_24h = false,
			sent_2h = false,
			updated_at = now()
		WHERE id = $1
	`, appointmentID, start, end)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *BookingRepository) UpdateDetails(ctx context.Context, tx pgx.Tx, appointmentID, purpose, notes string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET purpose = $2,
			notes = $3,
			updated_at = now()
		WHERE id = $1
	`, appointmentID, purpose, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *BookingRepository) SetStatus(ctx context.Context, tx pgx.Tx, appointmentID string, status model.Status) error {
	tag, err := tx.Exec(ctx, `
		UPDATE appointments
		SET status = $2,
			updated_at = now()
		WHERE id = $1
	`, appointmentID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, tx pgx.Tx, appointmentID, reason string) (time.Time, error) {
	var cancelledAt time.Time
	err := tx.QueryRow(ctx, `
		UPDATE appointments
		SET status = 'cancelled',
			cancelled_at = now(),
			cancellation_reason = $2,
			updated_at = now()
		WHERE id = $1
		RETURNING cancelled_at
	`, appointmentID, reason).Scan(&cancelledAt)
	return cancelledAt, err
}

// ListActiveBetween returns active appointments at a clinic intersecting
// [start, end), for slot computation. No locks; bookings re-validate inside
// their own transaction.
func (r *BookingRepository) ListActiveBetween(ctx context.Context, clinicID string, start, end time.Time) ([]model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE clinic_id = $1
			AND status IN ('scheduled', 'rescheduled')
			AND starts_at < $3
			AND ends_at > $2
		ORDER BY starts_at
	`, clinicID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *BookingRepository) ListByClinic(ctx context.Context, clinicID string, limit int) ([]model.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE clinic_id = $1
		ORDER BY starts_at DESC
		LIMIT $2
	`, clinicID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *BookingRepository) ListByPet(ctx context.Context, petID string, limit int) ([]model.Appointment, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE pet_id = $1
		ORDER BY starts_at DESC
		LIMIT $2
	`, petID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	var appts []model.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, appt)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return appts, nil
}

type appointmentScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row appointmentScanner) (model.Appointment, error) {
	var appt model.Appointment
	var cancelledAt *time.Time
	if err := row.Scan(
		&appt.ID,
		&appt.ClinicID,
		&appt.PetID,
		&appt.StartsAt,
		&appt.EndsAt,
		&appt.Type,
		&appt.Purpose,
		&appt.Status,
		&appt.Sent24h,
		&appt.Sent2h,
		&appt.Notes,
		&appt.TriageID,
		&cancelledAt,
		&appt.CancelReason,
		&appt.CreatedAt,
	); err != nil {
		return model.Appointment{}, err
	}
	appt.CancelledAt = cancelledAt
	return appt, nil
}
