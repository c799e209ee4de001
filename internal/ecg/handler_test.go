package ecg

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	svc := NewService(NewStreamController(rand.New(rand.NewSource(1))))
	svc.SetRunning(true)
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewHandler(svc, log, nil)
}

func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

func TestHandler_ListProfiles(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out []profileSummary
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 55 {
		t.Errorf("expected 55 profiles, got %d", len(out))
	}
}

func TestHandler_GetProfile_default(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var meta ProfileMetadata
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if meta.Key != DefaultProfileKey {
		t.Errorf("expected default profile, got %q", meta.Key)
	}
}

func TestHandler_SelectProfile(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/profile/atrial_fibrillation", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var meta ProfileMetadata
	if err := json.NewDecoder(rec.Body).Decode(&meta); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if meta.Key != "atrial_fibrillation" {
		t.Errorf("selected %q", meta.Key)
	}
}

func TestHandler_SelectProfile_unknown_falls_back(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodPost, "/profile/not_a_rhythm", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var meta ProfileMetadata
	_ = json.NewDecoder(rec.Body).Decode(&meta)
	if meta.Key != DefaultProfileKey {
		t.Errorf("expected fallback metadata, got %q", meta.Key)
	}
}

func TestHandler_UpdateSettings(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h)

	body, _ := json.Marshal(map[string]interface{}{
		"heart_rate":  110.0,
		"noise_level": 0.03,
		"layer":       "realistic",
	})
	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestHandler_UpdateSettings_bad_json(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_UpdateSettings_unknown_layer(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	body, _ := json.Marshal(map[string]interface{}{"layer": "cinematic"})
	req := httptest.NewRequest(http.MethodPut, "/settings", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandler_StartStop(t *testing.T) {
	h := newTestHandler(t)
	r := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/stop", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("stop: expected 200, got %d", rec.Code)
	}
	if h.svc.Running() {
		t.Error("stream should be stopped")
	}

	req = httptest.NewRequest(http.MethodPost, "/start", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d", rec.Code)
	}
	if !h.svc.Running() {
		t.Error("stream should be running")
	}
}

func TestHandler_GetSamples(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/samples?count=250", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var out samplesResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Samples) != 250 {
		t.Errorf("expected 250 samples, got %d", len(out.Samples))
	}
}

func TestHandler_GetSamples_default_count(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/samples", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out samplesResponse
	_ = json.NewDecoder(rec.Body).Decode(&out)
	if len(out.Samples) != defaultSampleCount {
		t.Errorf("expected %d samples, got %d", defaultSampleCount, len(out.Samples))
	}
}

func TestHandler_GetSamples_invalid_count(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	for _, q := range []string{"count=abc", "count=-1"} {
		req := httptest.NewRequest(http.MethodGet, "/samples?"+q, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", q, rec.Code)
		}
	}
}

func TestHandler_GetSamples_capped(t *testing.T) {
	r := newTestRouter(newTestHandler(t))

	req := httptest.NewRequest(http.MethodGet, "/samples?count=10000000", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var out samplesResponse
	_ = json.NewDecoder(rec.Body).Decode(&out)
	if len(out.Samples) != maxSampleCount {
		t.Errorf("expected cap %d, got %d", maxSampleCount, len(out.Samples))
	}
}
