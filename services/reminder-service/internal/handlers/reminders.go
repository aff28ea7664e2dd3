package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/petcare-labs/pawsched/services/reminder-service/internal/scan"
)

type ReminderHandler struct {
	repo   *scan.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewReminderHandler(repo *scan.Repository, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{repo: repo, logger: logger, now: time.Now}
}

type dueItem struct {
	AppointmentID string `json:"appointment_id"`
	ClinicID      string `json:"clinic_id"`
	PetID         string `json:"pet_id"`
	StartTime     string `json:"start_time"`
	Type          string `json:"type"`
	Purpose       string `json:"purpose"`
	Window        string `json:"window"`
}

// Due lists appointments currently inside a reminder window whose reminder
// has not gone out. Read-only; the scan worker owns claiming.
func (h *ReminderHandler) Due(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	window, err := scan.ParseWindow(strings.TrimSpace(r.URL.Query().Get("window")))
	if err != nil {
		http.Error(w, "window must be 24h or 2h", http.StatusBadRequest)
		return
	}

	limit := 100
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	due, err := h.repo.FindDueSnapshot(r.Context(), window, h.now().UTC(), limit)
	if err != nil {
		h.logger.Error("due reminder lookup failed", "window", string(window), "err", err)
		http.Error(w, "failed to list due reminders", http.StatusInternalServerError)
		return
	}

	items := make([]dueItem, 0, len(due))
	for _, d := range due {
		items = append(items, dueItem{
			AppointmentID: d.AppointmentID,
			ClinicID:      d.ClinicID,
			PetID:         d.PetID,
			StartTime:     d.StartsAt.UTC().Format(time.RFC3339),
			Type:          d.Type,
			Purpose:       d.Purpose,
			Window:        string(window),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

type markSentRequest struct {
	AppointmentID string `json:"appointment_id"`
	Window        string `json:"window"`
}

// MarkSent records that a reminder went out. Safe to call repeatedly; only
// the first call for a given appointment and window changes anything.
func (h *ReminderHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req markSentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	window, err := scan.ParseWindow(strings.TrimSpace(req.Window))
	if err != nil {
		http.Error(w, "window must be 24h or 2h", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.MarkSent(r.Context(), window, req.AppointmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("mark sent failed", "appointment_id", req.AppointmentID, "window", string(window), "err", err)
		http.Error(w, "failed to mark reminder sent", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"appointment_id": req.AppointmentID,
		"window":         string(window),
		"updated":        updated,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
