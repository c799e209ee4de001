package ecg

import (
	"math"
	"math/rand"
	"testing"
)

func newTestController() *StreamController {
	c := NewStreamController(rand.New(rand.NewSource(1)))
	c.SetRunning(true)
	return c
}

func TestParseLayer(t *testing.T) {
	for _, s := range []string{"parametric", "realistic"} {
		layer, err := ParseLayer(s)
		if err != nil {
			t.Errorf("ParseLayer(%q): %v", s, err)
		}
		if string(layer) != s {
			t.Errorf("ParseLayer(%q) = %q", s, layer)
		}
	}
	if _, err := ParseLayer("cinematic"); err == nil {
		t.Error("expected error for unknown layer")
	}
}

func TestStreamController_not_running_emits_zero(t *testing.T) {
	c := NewStreamController(rand.New(rand.NewSource(1)))

	for i := 0; i < 10; i++ {
		if v := c.NextSample(); v != 0 {
			t.Fatalf("sample %d: expected 0 while stopped, got %v", i, v)
		}
	}
	if c.BeatIndex() != 0 {
		t.Errorf("beat index advanced while stopped: %d", c.BeatIndex())
	}
	if c.Stats().Samples != 0 {
		t.Errorf("sample counter advanced while stopped: %d", c.Stats().Samples)
	}
}

func TestStreamController_next_samples_count(t *testing.T) {
	c := newTestController()

	if got := len(c.NextSamples(1234)); got != 1234 {
		t.Errorf("expected 1234 samples, got %d", got)
	}
	if got := len(c.NextSamples(0)); got != 0 {
		t.Errorf("expected empty slice, got %d", got)
	}
	if got := len(c.NextSamples(-5)); got != 0 {
		t.Errorf("negative count should yield empty slice, got %d", got)
	}
}

func TestStreamController_beat_index_advances_per_cycle(t *testing.T) {
	c := newTestController()
	c.SetHeartRate(75)

	n := CycleSamples(75)
	c.NextSamples(n)
	if got := c.BeatIndex(); got != 1 {
		t.Errorf("after one cycle: beat index %d, want 1", got)
	}
	c.NextSamples(2 * n)
	if got := c.BeatIndex(); got != 3 {
		t.Errorf("after three cycles: beat index %d, want 3", got)
	}
}

func TestStreamController_continuous_profile_keeps_beat_index(t *testing.T) {
	c := newTestController()
	c.SelectProfile("ventricular_fibrillation_coarse")

	c.NextSamples(3 * int(ContinuousSeconds*SampleRate))
	if got := c.BeatIndex(); got != 0 {
		t.Errorf("continuous generation advanced the beat index: %d", got)
	}
	if got := c.Stats().Buffers; got != 3 {
		t.Errorf("expected 3 buffers, got %d", got)
	}
	if got := c.Stats().Beats; got != 0 {
		t.Errorf("continuous generation counted beats: %d", got)
	}
}

func TestStreamController_select_profile_resets(t *testing.T) {
	c := newTestController()
	c.SetHeartRate(75)
	c.NextSamples(5 * CycleSamples(75))

	c.SelectProfile("sinus_bradycardia")
	if c.BeatIndex() != 0 {
		t.Errorf("selection should reset beat index, got %d", c.BeatIndex())
	}
	if c.Stats() != (StreamStats{}) {
		t.Errorf("selection should reset stats, got %+v", c.Stats())
	}
	if !c.Running() {
		t.Error("selection should not stop the stream")
	}
	if c.Profile().Key != "sinus_bradycardia" {
		t.Errorf("active profile %q", c.Profile().Key)
	}
}

func TestStreamController_select_unknown_key(t *testing.T) {
	c := newTestController()
	c.SelectProfile("not_a_rhythm")
	if c.Profile().Key != DefaultProfileKey {
		t.Errorf("expected default profile, got %q", c.Profile().Key)
	}
}

func TestStreamController_reselect_is_idempotent(t *testing.T) {
	a := NewStreamController(rand.New(rand.NewSource(7)))
	b := NewStreamController(rand.New(rand.NewSource(7)))
	a.SetRunning(true)
	b.SetRunning(true)

	a.SelectProfile("sinus_tachycardia")
	b.SelectProfile("sinus_tachycardia")
	b.SelectProfile("sinus_tachycardia")

	for i := 0; i < 500; i++ {
		if av, bv := a.NextSample(), b.NextSample(); av != bv {
			t.Fatalf("sample %d: reselection changed the stream: %v vs %v", i, av, bv)
		}
	}
}

func TestStreamController_noise_bounds(t *testing.T) {
	clean := NewStreamController(rand.New(rand.NewSource(3)))
	clean.SetRunning(true)
	noisy := NewStreamController(rand.New(rand.NewSource(3)))
	noisy.SetRunning(true)

	const level = 0.05
	noisy.SetNoiseLevel(level)

	for i := 0; i < 2000; i++ {
		cv, nv := clean.NextSample(), noisy.NextSample()
		if d := math.Abs(nv - cv); d > level {
			t.Fatalf("sample %d: noise excursion %v exceeds level %v", i, d, level)
		}
	}
}

func TestStreamController_negative_noise_clamped(t *testing.T) {
	c := newTestController()
	c.SetNoiseLevel(-1)

	a := NewStreamController(rand.New(rand.NewSource(1)))
	a.SetRunning(true)
	for i := 0; i < 100; i++ {
		if cv, av := c.NextSample(), a.NextSample(); cv != av {
			t.Fatalf("sample %d: negative noise level should behave as zero", i)
		}
	}
}

func TestStreamController_effective_rate_fallbacks(t *testing.T) {
	c := newTestController()

	// Override wins.
	c.SetHeartRate(120)
	if got := c.effectiveRate(); got != 120 {
		t.Errorf("override: got %v", got)
	}

	// Unset falls to the profile nominal rate.
	c.SetHeartRate(0)
	if got := c.effectiveRate(); got != float64(c.Profile().NominalRate()) {
		t.Errorf("nominal: got %v", got)
	}

	// Asystole has no nominal rate; the global default applies.
	c.SelectProfile("asystole")
	c.SetHeartRate(0)
	if got := c.effectiveRate(); got != DefaultHeartRate {
		t.Errorf("default: got %v", got)
	}
}

func TestStreamController_extreme_heart_rate(t *testing.T) {
	// A rate fast enough to shrink a cycle below one sample must not leave
	// the controller with an empty buffer; every pull still yields samples.
	c := newTestController()
	c.SetHeartRate(40000)

	if got := len(c.NextSamples(10)); got != 10 {
		t.Fatalf("expected 10 samples, got %d", got)
	}
	if c.BeatIndex() == 0 {
		t.Error("beat index should have advanced")
	}

	c.SetLayer(LayerRealistic)
	c.SetHeartRate(25000)
	for i, v := range c.NextSamples(10) {
		if math.IsNaN(v) {
			t.Fatalf("sample %d: realistic layer emitted NaN at extreme rate", i)
		}
	}
}

func TestStreamController_stats_track_dropped_and_ectopic(t *testing.T) {
	c := newTestController()
	c.SelectProfile("pvc_bigeminy")
	c.SetHeartRate(75)

	// Four full cycles: beats 0..3, of which 1 and 3 are ectopic.
	c.NextSamples(4 * CycleSamples(75))
	st := c.Stats()
	if st.Beats != 4 {
		t.Errorf("beats = %d, want 4", st.Beats)
	}
	if st.EctopicBeats != 2 {
		t.Errorf("ectopic beats = %d, want 2", st.EctopicBeats)
	}

	c.SelectProfile("av_block_2_mobitz")
	c.SetHeartRate(75)
	c.NextSamples(4 * CycleSamples(75))
	if st := c.Stats(); st.DroppedBeats != 1 {
		t.Errorf("dropped beats = %d, want 1", st.DroppedBeats)
	}
}

func TestStreamController_realistic_layer_switch(t *testing.T) {
	c := newTestController()
	c.SetLayer(LayerRealistic)
	c.SetHeartRate(75)

	if c.FidelityLayer() != LayerRealistic {
		t.Fatalf("layer = %q", c.FidelityLayer())
	}
	samples := c.NextSamples(CycleSamples(75))
	if len(samples) != CycleSamples(75) {
		t.Fatalf("expected a full cycle, got %d samples", len(samples))
	}
	if c.BeatIndex() != 1 {
		t.Errorf("beat index = %d, want 1", c.BeatIndex())
	}
}

func TestStreamController_metadata(t *testing.T) {
	c := newTestController()
	c.SelectProfile("atrial_flutter")

	meta := c.Metadata()
	if meta.Key != "atrial_flutter" {
		t.Errorf("key = %q", meta.Key)
	}
	if meta.NominalRate != c.Profile().NominalRate() {
		t.Errorf("nominal rate = %d", meta.NominalRate)
	}
	if meta.QTApproxMs != c.Profile().QTApprox() {
		t.Errorf("qt approx = %v", meta.QTApproxMs)
	}
}
