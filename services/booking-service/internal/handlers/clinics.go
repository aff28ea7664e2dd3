package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/petcare-labs/pawsched/services/booking-service/internal/geo"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
	"github.com/petcare-labs/pawsched/services/booking-service/internal/storage"
)

type ClinicHandler struct {
	repo   *storage.ClinicRepository
	logger *slog.Logger
}

func NewClinicHandler(repo *storage.ClinicRepository, logger *slog.Logger) *ClinicHandler {
	return &ClinicHandler{repo: repo, logger: logger}
}

type clinicItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	IsEmergency bool              `json:"is_emergency"`
	Is24Hour    bool              `json:"is_24_hour"`
	Hours       map[string]string `json:"hours"`
	CreatedAt   string            `json:"created_at"`
}

type nearbyItem struct {
	Clinic        clinicItem `json:"clinic"`
	DistanceMiles float64    `json:"distance_miles"`
}

func toClinicItem(c model.Clinic) clinicItem {
	return clinicItem{
		ID:          c.ID,
		Name:        c.Name,
		Address:     c.Address,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		IsEmergency: c.IsEmergency,
		Is24Hour:    c.Is24Hour,
		Hours:       c.Hours,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Clinics serves GET (directory listing), POST (administrative create) and
// PUT (administrative update).
func (h *ClinicHandler) Clinics(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ClinicHandler) list(w http.ResponseWriter, r *http.Request) {
	clinics, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("clinic listing failed", "err", err)
		http.Error(w, "failed to list clinics", http.StatusInternalServerError)
		return
	}
	items := make([]clinicItem, 0, len(clinics))
	for _, c := range clinics {
		items = append(items, toClinicItem(c))
	}
	writeJSON(w, http.StatusOK, items)
}

type createClinicRequest struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    *float64          `json:"latitude"`
	Longitude   *float64          `json:"longitude"`
	IsEmergency bool              `json:"is_emergency"`
	Is24Hour    bool              `json:"is_24_hour"`
	Hours       map[string]string `json:"hours"`
}

func (h *ClinicHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" {
		http.Error(w, "name and address required", http.StatusBadRequest)
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		http.Error(w, "latitude and longitude must be set together", http.StatusBadRequest)
		return
	}

	hours, ok := normalizeHours(req.Hours)
	if !ok {
		http.Error(w, "hours keys must be weekday names", http.StatusBadRequest)
		return
	}

	id, err := h.repo.Create(r.Context(), model.Clinic{
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsEmergency: req.IsEmergency,
		Is24Hour:    req.Is24Hour,
		Hours:       hours,
	})
	if err != nil {
		http.Error(w, "failed to create clinic", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

type updateClinicRequest struct {
	ID string `json:"id"`
	createClinicRequest
}

func (h *ClinicHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateClinicRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.ID == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Address == "" {
		http.Error(w, "name and address required", http.StatusBadRequest)
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		http.Error(w, "latitude and longitude must be set together", http.StatusBadRequest)
		return
	}

	hours, ok := normalizeHours(req.Hours)
	if !ok {
		http.Error(w, "hours keys must be weekday names", http.StatusBadRequest)
		return
	}

	err := h.repo.Update(r.Context(), model.Clinic{
		ID:          req.ID,
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		IsEmergency: req.IsEmergency,
		Is24Hour:    req.Is24Hour,
		Hours:       hours,
	})
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to update clinic", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": req.ID})
}

// Nearby ranks clinics by distance from the query point.
func (h *ClinicHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(q.Get("lat")), 64)
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(q.Get("lon")), 64)
	if latErr != nil || lonErr != nil {
		http.Error(w, "lat and lon are required", http.StatusBadRequest)
		return
	}

	radius := 25.0
	if raw := strings.TrimSpace(q.Get("radius_miles")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			http.Error(w, "invalid radius_miles", http.StatusBadRequest)
			return
		}
		radius = v
	}

	clinics, err := h.repo.List(r.Context())
	if err != nil {
		http.Error(w, "failed to load clinics", http.StatusInternalServerError)
		return
	}

	ranked := geo.Nearest(clinics, lat, lon, radius, geo.Filter{
		EmergencyOnly: boolParam(q.Get("emergency_only")),
		Open24hOnly:   boolParam(q.Get("open_24h_only")),
	})

	items := make([]nearbyItem, 0, len(ranked))
	for _, rk := range ranked {
		items = append(items, nearbyItem{
			Clinic:        toClinicItem(rk.Clinic),
			DistanceMiles: rk.DistanceMiles,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Search matches clinic addresses against a locality substring.
func (h *ClinicHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	clinics, err := h.repo.SearchByAddress(r.Context(), query,
		boolParam(q.Get("emergency_only")),
		boolParam(q.Get("open_24h_only")),
	)
	if err != nil {
		http.Error(w, "failed to search clinics", http.StatusInternalServerError)
		return
	}

	items := make([]clinicItem, 0, len(clinics))
	for _, c := range clinics {
		items = append(items, toClinicItem(c))
	}
	writeJSON(w, http.StatusOK, items)
}

func normalizeHours(in map[string]string) (map[string]string, bool) {
	valid := map[string]bool{}
	for d := time.Sunday; d <= time.Saturday; d++ {
		valid[model.WeekdayKey(d)] = true
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := strings.ToLower(strings.TrimSpace(k))
		if !valid[key] {
			return nil, false
		}
		out[key] = strings.TrimSpace(v)
	}
	return out, true
}

func boolParam(raw string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	return err == nil && v
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
