package ecg

import "math"

// Pure waveform primitives shared by both synthesis layers. All take a
// position x and window bounds in normalized cycle time and return a
// unit-amplitude deflection.

// gaussianBump evaluates a Gaussian centered at mu with the given sigma.
func gaussianBump(x, mu, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	z := (x - mu) / sigma
	return math.Exp(-0.5 * z * z)
}

// halfSine evaluates a positive half-sine over [start, end), zero outside.
func halfSine(x, start, end float64) float64 {
	if x < start || x >= end || end <= start {
		return 0
	}
	u := (x - start) / (end - start)
	return math.Sin(math.Pi * u)
}

// sawtooth evaluates a descending sawtooth of the given period, swinging
// between +1 and -1. Used for flutter baselines.
func sawtooth(x, period float64) float64 {
	if period <= 0 {
		return 0
	}
	u := x / period
	return 1 - 2*(u-math.Floor(u))
}

// narrowQRS evaluates the three-segment narrow complex at position x within
// the window [start, end): a small negative initial deflection (Q), a
// dominant half-sine (R), and a smaller negative half-sine (S). Segment
// proportions: Q 1/5, R 1/3, S the remainder of the window.
func narrowQRS(x, start, end float64) float64 {
	if x < start || x >= end || end <= start {
		return 0
	}
	w := end - start
	qEnd := start + w/5
	rEnd := qEnd + w/3

	switch {
	case x < qEnd:
		u := (x - start) / (qEnd - start)
		return -0.15 * gaussianBump(u, 0.5, 0.18)
	case x < rEnd:
		return halfSine(x, qEnd, rEnd)
	default:
		return -0.3 * halfSine(x, rEnd, end)
	}
}

// wideQRS evaluates the broad ventricular-origin complex at position x within
// [start, end): a linear ramp up, a sine-rounded plateau, and a cosine decay.
func wideQRS(x, start, end float64) float64 {
	if x < start || x >= end || end <= start {
		return 0
	}
	w := end - start
	rampEnd := start + w/4
	plateauEnd := start + 3*w/4

	switch {
	case x < rampEnd:
		return (x - start) / (rampEnd - start)
	case x < plateauEnd:
		u := (x - rampEnd) / (plateauEnd - rampEnd)
		return 0.85 + 0.15*math.Sin(math.Pi*u)
	default:
		u := (x - plateauEnd) / (end - plateauEnd)
		return math.Cos(u * math.Pi / 2)
	}
}
