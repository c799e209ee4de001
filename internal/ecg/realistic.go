package ecg

import (
	"gonum.org/v1/gonum/interp"
)

// Stimulus currents used to trigger an action potential, in µA/cm².
// Ventricular-origin profiles need the stronger pulse.
const (
	stimAmplitudeDefault     = 20.0
	stimAmplitudeVentricular = 25.0

	stimStartMs    = 10.0
	stimDurationMs = 2.0
	apMaxMs        = 400.0
)

// SynthesizeRealisticCycle produces one cardiac cycle from the ion-channel
// model: it simulates a single action potential, resamples the trace to the
// parametric cycle length, and rescales it into the same normalized
// amplitude space (resting potential maps to 0, the AP peak to the profile's
// QRS amplitude). Dropped beats yield a flat cycle; ectopic beats the wide
// amplitude multiplier. Continuous profiles are handled by the chaotic
// buffer generator, not here.
func SynthesizeRealisticCycle(profile RhythmProfile, ctx BeatContext, heartRate float64, hh *IonChannelIntegrator) []float64 {
	if heartRate <= 0 {
		heartRate = DefaultHeartRate
	}
	n := CycleSamples(heartRate)

	if ctx.Dropped {
		return make([]float64, n)
	}

	rrMs := 60000.0 / heartRate
	apMs := apMaxMs
	if limit := rrMs * 0.95; limit < apMs {
		apMs = limit
	}

	stim := stimAmplitudeDefault
	if profile.Category == "ventricular" || profile.WideQRS {
		stim = stimAmplitudeVentricular
	}

	trace := hh.SimulateActionPotential(apMs, stimStartMs, stimDurationMs, stim)

	amp := profile.QRSAmplitude
	if ctx.Ectopic {
		amp *= ectopicGain
	}
	return rescaleTrace(resampleTrace(trace, n), amp)
}

// resampleTrace maps a trace of any length onto n samples using Akima cubic
// interpolation over normalized time.
func resampleTrace(trace []float64, n int) []float64 {
	if len(trace) == 0 || n <= 0 {
		return make([]float64, n)
	}
	if len(trace) < 3 {
		out := make([]float64, n)
		for i := range out {
			out[i] = trace[0]
		}
		return out
	}
	if n == 1 {
		return []float64{trace[0]}
	}

	xs := make([]float64, len(trace))
	for i := range xs {
		xs[i] = float64(i) / float64(len(trace)-1)
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(xs, trace); err != nil {
		// Fit only fails on malformed abscissae, which cannot happen for
		// the monotone grid above; fall back to a flat cycle regardless.
		return make([]float64, n)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = spline.Predict(float64(i) / float64(n-1))
	}
	return out
}

// rescaleTrace maps membrane potentials into the normalized amplitude space:
// the resting potential becomes 0 and the trace peak becomes amp.
func rescaleTrace(trace []float64, amp float64) []float64 {
	peak := RestingPotential
	for _, v := range trace {
		if v > peak {
			peak = v
		}
	}
	span := peak - RestingPotential
	if span <= 0 {
		return make([]float64, len(trace))
	}

	out := make([]float64, len(trace))
	for i, v := range trace {
		out[i] = (v - RestingPotential) / span * amp
	}
	return out
}
