package ecg

import (
	"sync"
)

// Service is the concurrency-safe facade over one StreamController. The
// controller itself is single-consumer with a non-atomic buffer/cursor pair,
// so a multi-threaded host must serialize access; Service is that
// serialization, one mutex around every call.
type Service struct {
	mu   sync.Mutex
	ctrl *StreamController
}

// NewService wraps the given controller. A nil controller gets a fresh
// time-seeded one.
func NewService(ctrl *StreamController) *Service {
	if ctrl == nil {
		ctrl = NewStreamController(nil)
	}
	return &Service{ctrl: ctrl}
}

// SelectProfile switches the active rhythm. Unknown keys silently resolve to
// the default profile; the selected metadata is returned so callers can see
// what they got.
func (s *Service) SelectProfile(key ProfileKey) ProfileMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SelectProfile(key)
	return s.ctrl.Metadata()
}

// SetHeartRate overrides the generation rate in bpm.
func (s *Service) SetHeartRate(bpm float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetHeartRate(bpm)
}

// SetNoiseLevel sets the per-sample noise amplitude.
func (s *Service) SetNoiseLevel(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetNoiseLevel(level)
}

// SetLayer switches the fidelity layer.
func (s *Service) SetLayer(layer Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetLayer(layer)
}

// SetRunning gates emission.
func (s *Service) SetRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctrl.SetRunning(running)
}

// NextSamples pulls count samples from the stream.
func (s *Service) NextSamples(count int) []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.NextSamples(count)
}

// Metadata returns the active profile summary.
func (s *Service) Metadata() ProfileMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Metadata()
}

// Stats returns production counters since the last profile selection.
func (s *Service) Stats() StreamStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Stats()
}

// Running reports the emission gate.
func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Running()
}
