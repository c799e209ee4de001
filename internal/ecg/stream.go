package ecg

import (
	"errors"
	"math/rand"
	"time"
)

// Layer selects the synthesis fidelity.
type Layer string

const (
	// LayerParametric composes cycles from closed-form wave segments.
	LayerParametric Layer = "parametric"
	// LayerRealistic derives cycles from the ion-channel model.
	LayerRealistic Layer = "realistic"
)

// ErrUnknownLayer is returned when a layer name is neither "parametric" nor
// "realistic".
var ErrUnknownLayer = errors.New("unknown fidelity layer")

// ParseLayer validates a layer name from external input.
func ParseLayer(s string) (Layer, error) {
	switch Layer(s) {
	case LayerParametric, LayerRealistic:
		return Layer(s), nil
	}
	return "", ErrUnknownLayer
}

// StreamStats counts what the controller has produced since the last profile
// selection. Exposed for metrics scraping.
type StreamStats struct {
	Beats        int
	DroppedBeats int
	EctopicBeats int
	Buffers      int
	Samples      int
}

// ProfileMetadata is the read-only summary exposed to display collaborators.
type ProfileMetadata struct {
	Key         ProfileKey `json:"key"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Mechanism   string     `json:"mechanism"`
	Urgency     string     `json:"urgency"`
	NominalRate int        `json:"nominal_rate_bpm"`
	QRSMs       float64    `json:"qrs_ms"`
	PRMs        float64    `json:"pr_ms"`
	QTApproxMs  float64    `json:"qt_approx_ms"`
}

// StreamController produces the continuous sample stream: it pulls new beat
// buffers from the active synthesizer when the current one is exhausted and
// adds per-sample measurement noise. It is single-consumer by design and
// holds no locks; a concurrent host must serialize calls (see Service).
type StreamController struct {
	profile   RhythmProfile
	layer     Layer
	heartRate float64
	noise     float64
	running   bool

	beatIndex int
	buffer    []float64
	cursor    int
	stats     StreamStats

	rng *rand.Rand
	hh  *IonChannelIntegrator
}

// NewStreamController returns a controller on the default profile with the
// parametric layer active and no buffer in flight. rng may be nil, in which
// case a time-seeded source is used.
func NewStreamController(rng *rand.Rand) *StreamController {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &StreamController{
		profile: Lookup(DefaultProfileKey),
		layer:   LayerParametric,
		rng:     rng,
		hh:      NewIonChannelIntegrator(DefaultTimeStepMs),
	}
}

// SelectProfile switches the active rhythm, resetting the beat index and
// discarding any in-flight buffer. There is no cross-fade: switching is a
// clean restart. Unknown keys resolve to the default profile. Selecting the
// same key twice is equivalent to selecting it once.
func (c *StreamController) SelectProfile(key ProfileKey) {
	c.profile = Lookup(key)
	c.reset()
}

// SetLayer switches the fidelity layer, discarding any in-flight buffer.
func (c *StreamController) SetLayer(layer Layer) {
	c.layer = layer
	c.reset()
}

// SetHeartRate overrides the generation rate in bpm. Non-positive values
// fall through to the profile's nominal rate. Takes effect on the next
// generated buffer.
func (c *StreamController) SetHeartRate(bpm float64) { c.heartRate = bpm }

// SetNoiseLevel sets the peak amplitude of the uniform per-sample noise term.
func (c *StreamController) SetNoiseLevel(level float64) {
	if level < 0 {
		level = 0
	}
	c.noise = level
}

// SetRunning gates emission: while false, NextSample emits zeros without
// advancing any state.
func (c *StreamController) SetRunning(running bool) { c.running = running }

// Running reports the emission gate.
func (c *StreamController) Running() bool { return c.running }

// Profile returns the active profile.
func (c *StreamController) Profile() RhythmProfile { return c.profile }

// FidelityLayer returns the active layer.
func (c *StreamController) FidelityLayer() Layer { return c.layer }

// BeatIndex returns the next beat index to be synthesized. It is 0 after a
// profile selection and only advances for beat-structured generation.
func (c *StreamController) BeatIndex() int { return c.beatIndex }

// Stats returns production counters since the last profile selection.
func (c *StreamController) Stats() StreamStats { return c.stats }

// Metadata summarizes the active profile for display collaborators. The QT
// figure is the fixed-allowance approximation PR + QRS + 200 ms.
func (c *StreamController) Metadata() ProfileMetadata {
	p := c.profile
	return ProfileMetadata{
		Key:         p.Key,
		Name:        p.Name,
		Category:    p.Category,
		Mechanism:   p.Mechanism,
		Urgency:     p.Urgency,
		NominalRate: p.NominalRate(),
		QRSMs:       p.QRSDuration,
		PRMs:        p.PRInterval,
		QTApproxMs:  p.QTApprox(),
	}
}

// NextSample returns the next stream sample with noise applied, generating a
// new buffer when the current one is exhausted.
func (c *StreamController) NextSample() float64 {
	if !c.running {
		return 0
	}
	if c.cursor >= len(c.buffer) {
		c.refill()
		if len(c.buffer) == 0 {
			return 0
		}
	}
	v := c.buffer[c.cursor]
	c.cursor++
	c.stats.Samples++
	if c.noise > 0 {
		v += (c.rng.Float64()*2 - 1) * c.noise
	}
	return v
}

// NextSamples returns the next count samples.
func (c *StreamController) NextSamples(count int) []float64 {
	if count < 0 {
		count = 0
	}
	out := make([]float64, count)
	for i := range out {
		out[i] = c.NextSample()
	}
	return out
}

// effectiveRate resolves the generation heart rate: the explicit override if
// set, else the profile's nominal rate, else the global default.
func (c *StreamController) effectiveRate() float64 {
	if c.heartRate > 0 {
		return c.heartRate
	}
	if r := c.profile.NominalRate(); r > 0 {
		return float64(r)
	}
	return DefaultHeartRate
}

// refill replaces the exhausted buffer. Beat-structured profiles resolve the
// next beat context and advance the beat index; continuous profiles produce a
// fixed-duration buffer without touching it.
func (c *StreamController) refill() {
	if c.profile.Continuous() {
		c.buffer = SynthesizeContinuous(c.profile, c.rng)
	} else {
		ctx := Resolve(c.profile, c.beatIndex)
		if c.layer == LayerRealistic {
			c.buffer = SynthesizeRealisticCycle(c.profile, ctx, c.effectiveRate(), c.hh)
		} else {
			c.buffer = SynthesizeCycle(c.profile, ctx, c.effectiveRate())
		}
		c.beatIndex++
		c.stats.Beats++
		if ctx.Dropped {
			c.stats.DroppedBeats++
		}
		if ctx.Ectopic {
			c.stats.EctopicBeats++
		}
	}
	c.stats.Buffers++
	c.cursor = 0
}

// reset discards the in-flight buffer and beat position. Settings
// (heart rate, noise, running) survive; production counters do not.
func (c *StreamController) reset() {
	c.beatIndex = 0
	c.buffer = nil
	c.cursor = 0
	c.stats = StreamStats{}
}
