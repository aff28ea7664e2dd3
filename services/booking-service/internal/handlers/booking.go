package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/petcare-labs/pawsched/libs/outbox"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/availability"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/hours"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/storage"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/triage"
)

type BookingHandler struct {
	bookings   *storage.BookingRepository
	clinics    *storage.ClinicRepository
	outboxRepo *outbox.Repository
	triage     triage.Provider
	logger     *slog.Logger
	now        func() time.Time
}

func NewBookingHandler(bookings *storage.BookingRepository, clinics *storage.ClinicRepository, outboxRepo *outbox.Repository, triageProvider triage.Provider, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:   bookings,
		clinics:    clinics,
		outboxRepo: outboxRepo,
		triage:     triageProvider,
		logger:     logger,
		now:        time.Now,
	}
}

type slotItem struct {
	Start     string `json:"start"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

type appointmentItem struct {
	AppointmentID string `json:"appointment_id"`
	ClinicID      string `json:"clinic_id"`
	PetID         string `json:"pet_id"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Type          string `json:"type"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
	TriageID      string `json:"triage_assessment_id,omitempty"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
	CancelReason  string `json:"cancellation_reason,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func toAppointmentItem(a model.Appointment) appointmentItem {
	item := appointmentItem{
		AppointmentID: a.ID,
		ClinicID:      a.ClinicID,
		PetID:         a.PetID,
		StartTime:     a.StartsAt.UTC().Format(time.RFC3339),
		EndTime:       a.EndsAt.UTC().Format(time.RFC3339),
		Type:          a.Type,
		Purpose:       a.Purpose,
		Status:        string(a.Status),
		Notes:         a.Notes,
		TriageID:      a.TriageID,
		CancelReason:  a.CancelReason,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339),
	}
	if a.CancelledAt != nil {
		item.CancelledAt = a.CancelledAt.UTC().Format(time.RFC3339)
	}
	return item
}

// Slots lists bookable slots for a clinic on a date.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	clinicID := strings.TrimSpace(q.Get("clinic_id"))
	dateStr := strings.TrimSpace(q.Get("date"))
	if clinicID == "" || dateStr == "" {
		http.Error(w, "clinic_id and date are required", http.StatusBadRequest)
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	duration := model.DefaultDurationMinutes
	if raw := strings.TrimSpace(q.Get("duration_minutes")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 8*60 {
			http.Error(w, "invalid duration_minutes", http.StatusBadRequest)
			return
		}
		duration = n
	}

	clinic, err := h.clinics.Get(r.Context(), clinicID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load clinic", http.StatusInternalServerError)
		return
	}

	slots, err := h.daySlots(r.Context(), clinic, date, time.Duration(duration)*time.Minute)
	if err != nil {
		http.Error(w, "failed to load booked slots", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toSlotItems(slots))
}

// WeekSlots lists bookable slots per day for the next 7 days.
func (h *BookingHandler) WeekSlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clinicID := strings.TrimSpace(r.URL.Query().Get("clinic_id"))
	if clinicID == "" {
		http.Error(w, "clinic_id is required", http.StatusBadRequest)
		return
	}

	clinic, err := h.clinics.Get(r.Context(), clinicID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load clinic", http.StatusInternalServerError)
		return
	}

	week := map[string][]slotItem{}
	for _, day := range availability.WeekDates(h.now().UTC()) {
		slots, err := h.daySlots(r.Context(), clinic, day, model.DefaultDurationMinutes*time.Minute)
		if err != nil {
			http.Error(w, "failed to load booked slots", http.StatusInternalServerError)
			return
		}
		week[day.Format("2006-01-02")] = toSlotItems(slots)
	}
	writeJSON(w, http.StatusOK, week)
}

// daySlots resolves the clinic's operating window for the date and subtracts
// existing reservations and the past.
func (h *BookingHandler) daySlots(ctx context.Context, clinic model.Clinic, date time.Time, duration time.Duration) ([]availability.Slot, error) {
	entry := clinic.HoursFor(date)
	open, close, state := hours.Resolve(entry)
	if state == hours.Closed {
		return nil, nil
	}
	if state == hours.FallbackUsed {
		h.logger.Warn("malformed operating hours; using default window",
			"clinic_id", clinic.ID,
			"weekday", model.WeekdayKey(date.Weekday()),
			"entry", entry,
		)
	}

	windowStart, windowEnd := hours.WindowOn(date, open, close)
	booked, err := h.bookings.ListActiveBetween(ctx, clinic.ID, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}
	busy := make([]availability.Interval, 0, len(booked))
	for _, a := range booked {
		busy = append(busy, availability.Interval{Start: a.StartsAt, End: a.EndsAt})
	}
	return availability.Slots(windowStart, windowEnd, duration, busy, h.now().UTC()), nil
}

func toSlotItems(slots []availability.Slot) []slotItem {
	items := make([]slotItem, 0, len(slots))
	for _, s := range slots {
		items = append(items, slotItem{
			Start:     s.Start.UTC().Format(time.RFC3339),
			Label:     s.Label,
			Available: s.Available,
		})
	}
	return items
}

type createBookingRequest struct {
	PetID           string `json:"pet_id"`
	ClinicID        string `json:"clinic_id"`
	StartTime       string `json:"start_time"`
	Type            string `json:"type"`
	Purpose         string `json:"purpose"`
	Notes           string `json:"notes"`
	DurationMinutes int    `json:"duration_minutes"`
}

// Create books an appointment. The overlap test re-runs inside the same
// transaction that inserts the row, under a per-clinic lock, so of two
// concurrent attempts on overlapping intervals exactly one succeeds.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.PetID = strings.TrimSpace(req.PetID)
	req.ClinicID = strings.TrimSpace(req.ClinicID)
	req.Type = strings.TrimSpace(req.Type)
	if req.PetID == "" || req.ClinicID == "" {
		http.Error(w, "pet_id and clinic_id required", http.StatusBadRequest)
		return
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		http.Error(w, "invalid start_time", http.StatusBadRequest)
		return
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = model.DefaultDurationMinutes
	}
	if req.Type == "" {
		req.Type = "checkup"
	}

	appt := &model.Appointment{
		ClinicID: req.ClinicID,
		PetID:    req.PetID,
		StartsAt: startTime.UTC(),
		EndsAt:   startTime.UTC().Add(time.Duration(req.DurationMinutes) * time.Minute),
		Type:     req.Type,
		Purpose:  strings.TrimSpace(req.Purpose),
		Status:   model.StatusScheduled,
		Notes:    strings.TrimSpace(req.Notes),
	}
	h.book(w, r, appt)
}

type emergencyBookingRequest struct {
	PetID              string `json:"pet_id"`
	ClinicID           string `json:"clinic_id"`
	TriageAssessmentID string `json:"triage_assessment_id"`
	Purpose            string `json:"purpose"`
}

// Emergency books an emergency appointment from an external triage
// assessment, targeted at now plus a short lead time.
func (h *BookingHandler) Emergency(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req emergencyBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.PetID = strings.TrimSpace(req.PetID)
	req.ClinicID = strings.TrimSpace(req.ClinicID)
	req.TriageAssessmentID = strings.TrimSpace(req.TriageAssessmentID)
	if req.PetID == "" || req.ClinicID == "" || req.TriageAssessmentID == "" {
		http.Error(w, "pet_id, clinic_id and triage_assessment_id required", http.StatusBadRequest)
		return
	}

	notes := fmt.Sprintf("triage assessment %s", req.TriageAssessmentID)
	if h.triage != nil {
		reqCtx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		assessment, err := h.triage.GetAssessment(reqCtx, req.TriageAssessmentID)
		cancel()
		if err != nil {
			h.logger.Warn("triage assessment fetch failed; booking without level", "err", err)
		} else if assessment.Level != "" {
			notes = fmt.Sprintf("triage assessment %s (level %s)", req.TriageAssessmentID, assessment.Level)
		}
	}

	start := h.now().UTC().Add(model.EmergencyLeadTime).Truncate(time.Minute)
	appt := &model.Appointment{
		ClinicID: req.ClinicID,
		PetID:    req.PetID,
		StartsAt: start,
		EndsAt:   start.Add(model.DefaultDurationMinutes * time.Minute),
		Type:     model.TypeEmergency,
		Purpose:  strings.TrimSpace(req.Purpose),
		Status:   model.StatusScheduled,
		Notes:    notes,
		TriageID: req.TriageAssessmentID,
	}
	h.book(w, r, appt)
}

func (h *BookingHandler) book(w http.ResponseWriter, r *http.Request, appt *model.Appointment) {
	ctx := r.Context()

	if _, err := h.clinics.Get(ctx, appt.ClinicID); err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load clinic", http.StatusInternalServerError)
		return
	}

	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := h.bookings.LockClinic(ctx, tx, appt.ClinicID); err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	overlapping, err := h.bookings.CountOverlapping(ctx, tx, appt.ClinicID, appt.StartsAt, appt.EndsAt, "")
	if err != nil {
		http.Error(w, "failed to check availability", http.StatusInternalServerError)
		return
	}
	if overlapping > 0 {
		http.Error(w, "time slot already booked", http.StatusConflict)
		return
	}

	id, err := h.bookings.Create(ctx, tx, appt)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		if storage.IsForeignKeyViolation(err) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}
	appt.ID = id

	if err := h.insertAppointmentEvent(ctx, tx, "booking.appointment.booked.v1", appt); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"appointment_id": id})
}

type updateBookingRequest struct {
	AppointmentID string  `json:"appointment_id"`
	StartTime     string  `json:"start_time"`
	Purpose       *string `json:"purpose"`
	Notes         *string `json:"notes"`
}

// Update edits an appointment. A time-changing update marks it rescheduled,
// re-runs the conflict guard at the new time and resets both reminder flags.
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	var newStart time.Time
	if strings.TrimSpace(req.StartTime) != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			http.Error(w, "invalid start_time", http.StatusBadRequest)
			return
		}
		newStart = t.UTC()
	}

	ctx := r.Context()
	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.bookings.GetForUpdate(ctx, tx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	if !appt.Status.Active() {
		http.Error(w, "appointment is not active", http.StatusConflict)
		return
	}

	if req.Purpose != nil {
		appt.Purpose = strings.TrimSpace(*req.Purpose)
	}
	if req.Notes != nil {
		appt.Notes = strings.TrimSpace(*req.Notes)
	}
	if err := h.bookings.UpdateDetails(ctx, tx, appt.ID, appt.Purpose, appt.Notes); err != nil {
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}

	if !newStart.IsZero() && !newStart.Equal(appt.StartsAt) {
		if !appt.Status.CanTransitionTo(model.StatusRescheduled) {
			http.Error(w, "appointment cannot be rescheduled", http.StatusConflict)
			return
		}
		duration := appt.EndsAt.Sub(appt.StartsAt)
		newEnd := newStart.Add(duration)

		if err := h.bookings.LockClinic(ctx, tx, appt.ClinicID); err != nil {
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}
		overlapping, err := h.bookings.CountOverlapping(ctx, tx, appt.ClinicID, newStart, newEnd, appt.ID)
		if err != nil {
			http.Error(w, "failed to check availability", http.StatusInternalServerError)
			return
		}
		if overlapping > 0 {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		if err := h.bookings.Reschedule(ctx, tx, appt.ID, newStart, newEnd); err != nil {
			if storage.IsConflict(err) {
				http.Error(w, "time slot already booked", http.StatusConflict)
				return
			}
			http.Error(w, "failed to reschedule appointment", http.StatusInternalServerError)
			return
		}
		appt.StartsAt = newStart
		appt.EndsAt = newEnd
		appt.Status = model.StatusRescheduled

		if err := h.insertAppointmentEvent(ctx, tx, "booking.appointment.rescheduled.v1", &appt); err != nil {
			http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
			return
		}
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toAppointmentItem(appt))
}

type cancelBookingRequest struct {
	AppointmentID string `json:"appointment_id"`
	Reason        string `json:"reason"`
}

// Cancel flips the appointment to cancelled. The record is retained.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.bookings.GetForUpdate(ctx, tx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	if appt.Status == model.StatusCancelled && appt.CancelledAt != nil {
		h.writeCancelResponse(w, appt.ID, *appt.CancelledAt)
		return
	}
	if !appt.Status.CanTransitionTo(model.StatusCancelled) {
		http.Error(w, "appointment cannot be cancelled", http.StatusConflict)
		return
	}

	cancelledAt, err := h.bookings.Cancel(ctx, tx, appt.ID, req.Reason)
	if err != nil {
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}
	appt.Status = model.StatusCancelled

	if err := h.insertAppointmentEvent(ctx, tx, "booking.appointment.cancelled.v1", &appt); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}
	h.writeCancelResponse(w, appt.ID, cancelledAt)
}

type statusChangeRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
}

// SetStatus applies the administrative transitions (completed, no_show).
func (h *BookingHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req statusChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	next := model.Status(strings.TrimSpace(req.Status))
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	if next != model.StatusCompleted && next != model.StatusNoShow {
		http.Error(w, "status must be completed or no_show", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.bookings.GetForUpdate(ctx, tx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	if !appt.Status.CanTransitionTo(next) {
		http.Error(w, "transition not permitted", http.StatusConflict)
		return
	}

	if err := h.bookings.SetStatus(ctx, tx, appt.ID, next); err != nil {
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	appt.Status = next
	writeJSON(w, http.StatusOK, toAppointmentItem(appt))
}

// List returns a single appointment by id, or the appointments for a clinic
// or a pet, most recent first.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if apptID := strings.TrimSpace(q.Get("appointment_id")); apptID != "" {
		appt, err := h.bookings.Get(r.Context(), apptID)
		if err != nil {
			if storage.IsNotFound(err) {
				http.Error(w, "appointment not found", http.StatusNotFound)
				return
			}
			http.Error(w, "failed to load appointment", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toAppointmentItem(appt))
		return
	}

	clinicID := strings.TrimSpace(q.Get("clinic_id"))
	petID := strings.TrimSpace(q.Get("pet_id"))
	if (clinicID == "") == (petID == "") {
		http.Error(w, "appointment_id, clinic_id or pet_id required", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	var appts []model.Appointment
	var err error
	if clinicID != "" {
		appts, err = h.bookings.ListByClinic(r.Context(), clinicID, limit)
	} else {
		appts, err = h.bookings.ListByPet(r.Context(), petID, limit)
	}
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]appointmentItem, 0, len(appts))
	for _, a := range appts {
		items = append(items, toAppointmentItem(a))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BookingHandler) insertAppointmentEvent(ctx context.Context, tx pgx.Tx, eventType string, appt *model.Appointment) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id": appt.ID,
		"clinic_id":      appt.ClinicID,
		"pet_id":         appt.PetID,
		"type":           appt.Type,
		"status":         string(appt.Status),
		"start_time":     appt.StartsAt.UTC().Format(time.RFC3339),
		"end_time":       appt.EndsAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return h.outboxRepo.Insert(ctx, tx, outbox.Event{
		AggregateType: "appointment",
		AggregateID:   appt.ID,
		EventType:     eventType,
		Payload:       payload,
	})
}

func (h *BookingHandler) writeCancelResponse(w http.ResponseWriter, appointmentID string, cancelledAt time.Time) {
	writeJSON(w, http.StatusOK, map[string]string{
		"appointment_id": appointmentID,
		"status":         string(model.StatusCancelled),
		"cancelled_at":   cancelledAt.UTC().Format(time.RFC3339),
	})
}
