package ecg

import "math"

// Cardiac-adapted Hodgkin-Huxley membrane constants: fast sodium, delayed
// rectifier potassium, and a leak current.
const (
	membraneCapacitance = 1.0 // µF/cm²

	sodiumConductance    = 120.0 // mS/cm²
	potassiumConductance = 36.0
	leakConductance      = 0.3

	sodiumReversal    = 50.0 // mV
	potassiumReversal = -77.0
	leakReversal      = -54.4

	// RestingPotential is the membrane equilibrium every simulation starts
	// from; no drift is carried between pulses.
	RestingPotential = -65.0

	// DefaultTimeStepMs keeps forward-Euler integration stable.
	DefaultTimeStepMs = 0.1
)

// IonChannelIntegrator integrates the Hodgkin-Huxley equations with a fixed
// time step. State is the membrane potential V plus three gating variables
// (m, h, n), each held in [0,1]. The integrator is deterministic: two
// instances stepped with identical inputs produce identical traces.
type IonChannelIntegrator struct {
	dt float64

	v       float64
	m, h, n float64
}

// NewIonChannelIntegrator returns an integrator at resting equilibrium.
// Non-positive dtMs falls back to DefaultTimeStepMs.
func NewIonChannelIntegrator(dtMs float64) *IonChannelIntegrator {
	if dtMs <= 0 {
		dtMs = DefaultTimeStepMs
	}
	hh := &IonChannelIntegrator{dt: dtMs}
	hh.Reset()
	return hh
}

// Reset returns the state to resting equilibrium: V at the resting potential
// and every gate at its voltage-dependent steady state.
func (hh *IonChannelIntegrator) Reset() {
	hh.v = RestingPotential
	hh.m = gateSteadyState(alphaM, betaM, RestingPotential)
	hh.h = gateSteadyState(alphaH, betaH, RestingPotential)
	hh.n = gateSteadyState(alphaN, betaN, RestingPotential)
}

// Potential returns the current membrane potential in mV.
func (hh *IonChannelIntegrator) Potential() float64 { return hh.v }

// Gates returns the current gating variables (m, h, n).
func (hh *IonChannelIntegrator) Gates() (m, h, n float64) { return hh.m, hh.h, hh.n }

// Step advances the state by one time step under the given stimulus current
// (µA/cm²) and returns the new membrane potential. Gating variables are
// clamped to [0,1] after each step so explicit integration cannot overshoot
// into divergence.
func (hh *IonChannelIntegrator) Step(stimulus float64) float64 {
	iNa := sodiumConductance * hh.m * hh.m * hh.m * hh.h * (hh.v - sodiumReversal)
	iK := potassiumConductance * math.Pow(hh.n, 4) * (hh.v - potassiumReversal)
	iL := leakConductance * (hh.v - leakReversal)

	hh.v += (stimulus - (iNa + iK + iL)) / membraneCapacitance * hh.dt

	hh.m = clampGate(advanceGate(hh.m, alphaM, betaM, hh.v, hh.dt))
	hh.h = clampGate(advanceGate(hh.h, alphaH, betaH, hh.v, hh.dt))
	hh.n = clampGate(advanceGate(hh.n, alphaN, betaN, hh.v, hh.dt))

	return hh.v
}

// SimulateActionPotential resets the state, applies a rectangular current
// stimulus in [stimStartMs, stimStartMs+stimDurationMs), and returns the full
// membrane-potential trace over durationMs.
func (hh *IonChannelIntegrator) SimulateActionPotential(durationMs, stimStartMs, stimDurationMs, stimAmplitude float64) []float64 {
	hh.Reset()

	steps := int(durationMs / hh.dt)
	trace := make([]float64, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) * hh.dt
		var stim float64
		if t >= stimStartMs && t < stimStartMs+stimDurationMs {
			stim = stimAmplitude
		}
		trace[i] = hh.Step(stim)
	}
	return trace
}

// Voltage-dependent rate constants. The alpha functions for the m and n
// gates have removable singularities (at V=-40 and V=-55); the epsilon
// guards return the limit value there.

func alphaM(v float64) float64 {
	if math.Abs(v+40) < 1e-6 {
		return 1.0
	}
	return 0.1 * (v + 40) / (1 - math.Exp(-(v+40)/10))
}

func betaM(v float64) float64 { return 4.0 * math.Exp(-(v+65)/18) }

func alphaH(v float64) float64 { return 0.07 * math.Exp(-(v+65)/20) }

func betaH(v float64) float64 { return 1.0 / (1 + math.Exp(-(v+35)/10)) }

func alphaN(v float64) float64 {
	if math.Abs(v+55) < 1e-6 {
		return 0.1
	}
	return 0.01 * (v + 55) / (1 - math.Exp(-(v+55)/10))
}

func betaN(v float64) float64 { return 0.125 * math.Exp(-(v+65)/80) }

// gateSteadyState returns alpha/(alpha+beta) at the given potential.
func gateSteadyState(alpha, beta func(float64) float64, v float64) float64 {
	a, b := alpha(v), beta(v)
	return a / (a + b)
}

// advanceGate relaxes a gate toward its steady state at the voltage-dependent
// rate 1/tau, tau = 1/(alpha+beta).
func advanceGate(g float64, alpha, beta func(float64) float64, v, dt float64) float64 {
	a, b := alpha(v), beta(v)
	inf := a / (a + b)
	tau := 1.0 / (a + b)
	return g + (inf-g)/tau*dt
}

func clampGate(g float64) float64 {
	if g < 0 {
		return 0
	}
	if g > 1 {
		return 1
	}
	return g
}
