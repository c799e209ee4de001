package ecg

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lankamar/cardiac-ecg-simulator/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

const (
	// defaultSampleCount is one second of signal per pull.
	defaultSampleCount = SampleRate
	// maxSampleCount caps a single pull at 20 seconds of signal.
	maxSampleCount = 20 * SampleRate
)

// Handler exposes the simulator over HTTP using go-chi.
type Handler struct {
	svc     *Service
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler returns a Handler that uses the given Service, Logger, and
// optional Metrics. Metrics may be nil to disable recording (e.g. in tests).
func NewHandler(svc *Service, log *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{svc: svc, log: log, metrics: m}
}

// Routes mounts all simulator endpoints on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/profiles", h.ListProfiles)
	r.Get("/profile", h.GetProfile)
	r.Post("/profile/{key}", h.SelectProfile)
	r.Put("/settings", h.UpdateSettings)
	r.Post("/start", h.Start)
	r.Post("/stop", h.Stop)
	r.Get("/samples", h.GetSamples)
}

// profileSummary is one catalog listing row.
type profileSummary struct {
	Key      ProfileKey `json:"key"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Urgency  string     `json:"urgency"`
}

// ListProfiles handles GET /profiles.
func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	out := make([]profileSummary, 0, len(Profiles()))
	for _, p := range Profiles() {
		out = append(out, profileSummary{Key: p.Key, Name: p.Name, Category: p.Category, Urgency: p.Urgency})
	}
	writeJSON(w, http.StatusOK, out)
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Metadata())
}

// SelectProfile handles POST /profile/{key}. Unknown keys fall back to the
// default profile rather than erroring, so the response is always the
// metadata actually selected.
func (h *Handler) SelectProfile(w http.ResponseWriter, r *http.Request) {
	key := ProfileKey(chi.URLParam(r, "key"))
	if key == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	meta := h.svc.SelectProfile(key)
	if meta.Key != key {
		h.log.Info("unknown profile key, fell back to default",
			slog.String("requested", string(key)),
			slog.String("selected", string(meta.Key)))
	} else {
		h.log.Info("profile selected",
			slog.String("key", string(meta.Key)),
			slog.String("urgency", meta.Urgency))
	}
	if h.metrics != nil {
		h.metrics.IncProfileSelections()
	}
	writeJSON(w, http.StatusOK, meta)
}

// settingsRequest is the PUT /settings payload. Absent fields leave the
// corresponding setting untouched.
type settingsRequest struct {
	HeartRate  *float64 `json:"heart_rate"`
	NoiseLevel *float64 `json:"noise_level"`
	Layer      *string  `json:"layer"`
}

// UpdateSettings handles PUT /settings.
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Debug("invalid settings body", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Layer != nil {
		layer, err := ParseLayer(*req.Layer)
		if errors.Is(err, ErrUnknownLayer) {
			h.log.Debug("unknown layer", slog.String("layer", *req.Layer))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.svc.SetLayer(layer)
		h.log.Info("fidelity layer switched", slog.String("layer", string(layer)))
	}
	if req.HeartRate != nil {
		h.svc.SetHeartRate(*req.HeartRate)
		if h.metrics != nil {
			h.metrics.SetHeartRate(*req.HeartRate)
		}
	}
	if req.NoiseLevel != nil {
		h.svc.SetNoiseLevel(*req.NoiseLevel)
		if h.metrics != nil {
			h.metrics.SetNoiseLevel(*req.NoiseLevel)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

// Start handles POST /start.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	h.svc.SetRunning(true)
	h.log.Info("stream started")
	w.WriteHeader(http.StatusOK)
}

// Stop handles POST /stop.
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	h.svc.SetRunning(false)
	h.log.Info("stream stopped")
	w.WriteHeader(http.StatusOK)
}

// samplesResponse is the GET /samples payload.
type samplesResponse struct {
	Samples []float64 `json:"samples"`
}

// GetSamples handles GET /samples?count=N, the pull interface for rendering
// and export collaborators.
func (h *Handler) GetSamples(w http.ResponseWriter, r *http.Request) {
	count := defaultSampleCount
	if q := r.URL.Query().Get("count"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		count = n
	}
	if count > maxSampleCount {
		count = maxSampleCount
	}

	samples := h.svc.NextSamples(count)
	if h.metrics != nil {
		h.metrics.AddSamplesServed(len(samples))
	}
	writeJSON(w, http.StatusOK, samplesResponse{Samples: samples})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
