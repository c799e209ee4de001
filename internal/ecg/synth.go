package ecg

import (
	"math"
	"math/rand"
)

const (
	// SampleRate is the fixed output rate in samples per second.
	SampleRate = 500

	// DefaultHeartRate is substituted when the requested rate is unset or
	// non-positive, so RR computation never divides by zero.
	DefaultHeartRate = 75

	// EctopicQRSMs is the fixed wide-complex duration forced on ectopic
	// beats, independent of the profile's own QRS duration.
	EctopicQRSMs = 140

	// ectopicGain is the amplitude multiplier applied to ectopic complexes.
	ectopicGain = 1.8

	// ContinuousSeconds is the fixed duration of one non-cyclic buffer
	// (fibrillation, torsades, asystole).
	ContinuousSeconds = 2.0
)

// Normalized cycle-time geometry of one beat.
const (
	pWindow      = 0.08 // P wave occupies the first 8% of the cycle
	stGap        = 0.08 // gap between QRS end and T onset
	tWindowWidth = 0.15 // fixed T window width
)

// CycleSamples returns the buffer length for one cardiac cycle at the given
// heart rate: floor(RR_ms * 0.5) at 500 samples/second. Non-positive rates
// substitute DefaultHeartRate. The result is never below 1, so an absurdly
// fast rate still yields a buffer the stream can draw from.
func CycleSamples(heartRate float64) int {
	if heartRate <= 0 {
		heartRate = DefaultHeartRate
	}
	rr := 60000.0 / heartRate
	n := int(rr * float64(SampleRate) / 1000.0)
	if n < 1 {
		n = 1
	}
	return n
}

// SynthesizeCycle composes one cardiac cycle for the profile under the
// resolved beat context. It is pure: the only run-to-run variation in the
// output stream comes from measurement noise and chaotic-baseline phase,
// neither of which is added here.
func SynthesizeCycle(profile RhythmProfile, ctx BeatContext, heartRate float64) []float64 {
	if heartRate <= 0 {
		heartRate = DefaultHeartRate
	}
	rrMs := 60000.0 / heartRate
	n := CycleSamples(heartRate)
	buf := make([]float64, n)

	// QRS window in normalized cycle time.
	qrsStart := ctx.PR / rrMs
	if qrsStart < 0 {
		qrsStart = 0
	}
	qrsMs := profile.QRSDuration
	wide := profile.WideQRS
	amp := profile.QRSAmplitude
	if ctx.Ectopic {
		qrsMs = EctopicQRSMs
		wide = true
		amp = profile.QRSAmplitude * ectopicGain
	}
	qrsEnd := qrsStart + qrsMs/rrMs
	if qrsEnd > 1 {
		qrsEnd = 1
	}

	tStart := qrsEnd + stGap
	tEnd := tStart + tWindowWidth
	if tEnd > 1 {
		tEnd = 1
	}
	tAmp := math.Abs(profile.TAmplitude) * float64(profile.TPolarity)
	if ctx.Ectopic {
		// Discordant repolarization: ectopic T is negative regardless of
		// the profile's polarity.
		tAmp = -math.Abs(profile.TAmplitude)
	}

	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		tMs := t * rrMs
		v := baselineAt(profile, tMs)

		if profile.HasP && !ctx.Ectopic {
			v += profile.PAmplitude * gaussianBump(t, pWindow/2, pWindow/5)
		}

		// Non-conducted beat: nothing past the P window.
		if !ctx.Dropped {
			if t >= qrsStart && t < qrsEnd {
				if wide {
					v += amp * wideQRS(t, qrsStart, qrsEnd)
				} else {
					v += amp * narrowQRS(t, qrsStart, qrsEnd)
				}
			}
			if profile.TAmplitude != 0 && t >= tStart && t < tEnd {
				v += tAmp * gaussianBump(t, (tStart+tEnd)/2, tWindowWidth/5)
			}
		}

		buf[i] = v
	}
	return buf
}

// baselineAt evaluates the additive background component at tMs milliseconds
// into the cycle. Flat rhythms contribute nothing; fibrillatory baselines a
// two-tone low-amplitude undulation; flutter a sawtooth at the profile's
// flutter rate.
func baselineAt(profile RhythmProfile, tMs float64) float64 {
	switch profile.Baseline {
	case BaselineFibrillatory:
		ts := tMs / 1000.0
		return 0.03*math.Sin(2*math.Pi*5.5*ts) + 0.02*math.Sin(2*math.Pi*8.3*ts)
	case BaselineFlutter:
		if profile.FlutterRate <= 0 {
			return 0
		}
		period := 60000.0 / profile.FlutterRate
		return 0.2 * sawtooth(tMs, period)
	default:
		return 0
	}
}

// Continuous-generation frequency constants. Fibrillation is rendered as two
// fixed low-frequency tones; torsades as a single carrier under slow
// amplitude modulation.
const (
	vfCoarseF1, vfCoarseF2 = 4.7, 6.1
	vfEnvelopeHz           = 0.5
	vfFineF1, vfFineF2     = 7.3, 9.1
	torsadesCarrierHz      = 4.2
	torsadesTwistHz        = 0.55
)

// SynthesizeContinuous produces one fixed-duration buffer for a non-cyclic
// profile (fibrillation, torsades, asystole). rng supplies the chaotic
// starting phase and may be nil for a zero-phase buffer.
func SynthesizeContinuous(profile RhythmProfile, rng *rand.Rand) []float64 {
	n := int(ContinuousSeconds * SampleRate)
	buf := make([]float64, n)

	if profile.RateMax == 0 {
		// Electrical silence: the buffer stays zero.
		return buf
	}

	var p1, p2, p3 float64
	if rng != nil {
		p1 = rng.Float64() * 2 * math.Pi
		p2 = rng.Float64() * 2 * math.Pi
		p3 = rng.Float64() * 2 * math.Pi
	}

	amp := profile.QRSAmplitude
	for i := 0; i < n; i++ {
		ts := float64(i) / SampleRate
		var v float64
		switch profile.Baseline {
		case BaselineVFCoarse:
			v = 0.6*math.Sin(2*math.Pi*vfCoarseF1*ts+p1) + 0.4*math.Sin(2*math.Pi*vfCoarseF2*ts+p2)
			v *= 0.55 + 0.45*math.Sin(2*math.Pi*vfEnvelopeHz*ts+p3)
		case BaselineVFFine:
			v = 0.6*math.Sin(2*math.Pi*vfFineF1*ts+p1) + 0.4*math.Sin(2*math.Pi*vfFineF2*ts+p2)
		case BaselineTorsades:
			v = math.Sin(2*math.Pi*torsadesCarrierHz*ts + p1)
			v *= 0.5 + 0.5*math.Sin(2*math.Pi*torsadesTwistHz*ts+p2)
		}
		buf[i] = amp * v
	}
	return buf
}
