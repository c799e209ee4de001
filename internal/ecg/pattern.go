package ecg

// BeatContext carries the per-beat modifiers resolved for one cardiac cycle.
// It is created immediately before synthesis, consumed once, and discarded;
// the beat index counter itself is owned by the stream controller.
type BeatContext struct {
	BeatIndex int

	// PR is the conduction interval resolved for this cycle, in ms.
	PR float64

	// Dropped marks a non-conducted beat: the P wave still renders but no
	// QRS or T follows.
	Dropped bool

	// Ectopic marks a ventricular-origin complex: wide QRS at fixed
	// duration, suppressed P, discordant (negative) T.
	Ectopic bool
}

// Resolve decides the per-beat modifiers for the given profile and beat
// index. It is a pure function: identical inputs always yield identical
// contexts, which test fixtures rely on. The switch is exhaustive over
// PatternKind; at most one rule applies per beat.
func Resolve(profile RhythmProfile, beatIndex int) BeatContext {
	ctx := BeatContext{BeatIndex: beatIndex, PR: profile.PRInterval}

	switch profile.Pattern.Kind {
	case PatternNone:
		// Base rhythm only.

	case PatternWenckebach:
		prog := profile.Pattern.PRProgression
		if len(prog) > 0 {
			pr := prog[beatIndex%len(prog)]
			ctx.PR = pr
			if pr == 0 {
				ctx.Dropped = true
			}
		}

	case PatternMobitz:
		cycle := profile.Pattern.DropCycle
		if cycle > 1 && beatIndex%cycle == cycle-1 {
			ctx.Dropped = true
		}

	case PatternBigeminy:
		if beatIndex%2 == 1 {
			ctx.Ectopic = true
		}

	case PatternTrigeminy:
		if beatIndex%3 == 2 {
			ctx.Ectopic = true
		}

	case PatternPVC:
		period := profile.Pattern.EctopicPeriod
		if period <= 0 {
			period = DefaultEctopicPeriod
		}
		if beatIndex%period == period-1 {
			ctx.Ectopic = true
		}

	case PatternCouplet:
		if r := beatIndex % 5; r == 3 || r == 4 {
			ctx.Ectopic = true
		}

	case PatternTriplet:
		if r := beatIndex % 6; r >= 3 {
			ctx.Ectopic = true
		}
	}

	return ctx
}

// DefaultEctopicPeriod is the isolated-ectopy injection period used when a
// profile does not configure its own.
const DefaultEctopicPeriod = 6
