package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the ECG simulator.
type Metrics struct {
	registry               *prometheus.Registry
	requestsTotal          prometheus.Counter
	errorsTotal            prometheus.Counter
	samplesServedTotal     prometheus.Counter
	profileSelectionsTotal prometheus.Counter
	beatsSynthesized       prometheus.Gauge
	droppedBeats           prometheus.Gauge
	ectopicBeats           prometheus.Gauge
	buffersGenerated       prometheus.Gauge
	heartRate              prometheus.Gauge
	noiseLevel             prometheus.Gauge
}

// New creates and registers Prometheus metrics for the simulator.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecg_requests_total",
		Help: "Total number of HTTP requests received",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecg_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})
	samplesServedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecg_samples_served_total",
		Help: "Total number of waveform samples served to consumers",
	})
	profileSelectionsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecg_profile_selections_total",
		Help: "Total number of rhythm profile selections",
	})
	beatsSynthesized := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_beats_synthesized",
		Help: "Beats synthesized since the last profile selection",
	})
	droppedBeats := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_dropped_beats",
		Help: "Non-conducted beats since the last profile selection",
	})
	ectopicBeats := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_ectopic_beats",
		Help: "Ectopic complexes since the last profile selection",
	})
	buffersGenerated := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_buffers_generated",
		Help: "Sample buffers generated since the last profile selection",
	})
	heartRate := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_heart_rate_bpm",
		Help: "Configured heart rate override in bpm (0 when unset)",
	})
	noiseLevel := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ecg_noise_level",
		Help: "Configured per-sample noise amplitude",
	})

	registry.MustRegister(
		requestsTotal,
		errorsTotal,
		samplesServedTotal,
		profileSelectionsTotal,
		beatsSynthesized,
		droppedBeats,
		ectopicBeats,
		buffersGenerated,
		heartRate,
		noiseLevel,
	)

	return &Metrics{
		registry:               registry,
		requestsTotal:          requestsTotal,
		errorsTotal:            errorsTotal,
		samplesServedTotal:     samplesServedTotal,
		profileSelectionsTotal: profileSelectionsTotal,
		beatsSynthesized:       beatsSynthesized,
		droppedBeats:           droppedBeats,
		ectopicBeats:           ectopicBeats,
		buffersGenerated:       buffersGenerated,
		heartRate:              heartRate,
		noiseLevel:             noiseLevel,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// AddSamplesServed adds n to the served-samples counter.
func (m *Metrics) AddSamplesServed(n int) {
	m.samplesServedTotal.Add(float64(n))
}

// IncProfileSelections increments the profile selection counter.
func (m *Metrics) IncProfileSelections() {
	m.profileSelectionsTotal.Inc()
}

// SetBeatCounts refreshes the per-profile production gauges, typically just
// before a scrape.
func (m *Metrics) SetBeatCounts(beats, dropped, ectopic, buffers int) {
	m.beatsSynthesized.Set(float64(beats))
	m.droppedBeats.Set(float64(dropped))
	m.ectopicBeats.Set(float64(ectopic))
	m.buffersGenerated.Set(float64(buffers))
}

// SetHeartRate records the configured heart rate override.
func (m *Metrics) SetHeartRate(bpm float64) {
	m.heartRate.Set(bpm)
}

// SetNoiseLevel records the configured noise amplitude.
func (m *Metrics) SetNoiseLevel(level float64) {
	m.noiseLevel.Set(level)
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
