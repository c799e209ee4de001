package ecg

// ProfileKey identifies a rhythm profile in the catalog (e.g. "atrial_fibrillation").
type ProfileKey string

// Regularity classifies the beat-to-beat timing of a rhythm.
type Regularity int

const (
	Regular Regularity = iota
	Irregular
	Chaotic
)

// BaselineKind selects the inter-beat (or continuous) background component.
type BaselineKind int

const (
	// BaselineFlat is an isoelectric baseline between waves.
	BaselineFlat BaselineKind = iota
	// BaselineFibrillatory is the low-amplitude undulation of atrial fibrillation.
	BaselineFibrillatory
	// BaselineFlutter is the sawtooth of atrial flutter; FlutterRate gives the
	// flutter-wave rate in waves per minute.
	BaselineFlutter
	// BaselineTorsades replaces beat synthesis with a twisting continuous signal.
	BaselineTorsades
	// BaselineVFCoarse and BaselineVFFine replace beat synthesis with
	// fibrillatory chaos of high or low amplitude.
	BaselineVFCoarse
	BaselineVFFine
)

// PatternKind selects a per-beat modification rule applied by Resolve.
// The set is closed: Resolve switches exhaustively over it.
type PatternKind int

const (
	PatternNone PatternKind = iota
	// PatternWenckebach reads the PR interval from a cyclic progression;
	// a zero entry marks a non-conducted beat.
	PatternWenckebach
	// PatternMobitz drops every cycle-length-th beat at a fixed PR.
	PatternMobitz
	// PatternBigeminy makes every odd-indexed beat ectopic.
	PatternBigeminy
	// PatternTrigeminy makes every third beat ectopic.
	PatternTrigeminy
	// PatternPVC makes one beat in every EctopicPeriod beats ectopic.
	PatternPVC
	// PatternCouplet makes two consecutive beats per 5-beat window ectopic.
	PatternCouplet
	// PatternTriplet makes three consecutive beats per 6-beat window ectopic.
	PatternTriplet
)

// Pattern is a pattern tag together with its rule-specific parameters.
// Parameters that do not apply to the kind are left at their zero value and
// never read.
type Pattern struct {
	Kind PatternKind

	// Wenckebach: PR progression in ms, indexed by beatIndex mod len.
	// A zero entry marks a dropped beat.
	PRProgression []float64

	// Mobitz: beats per drop cycle (the last beat of each cycle is dropped).
	DropCycle int

	// PVC: one ectopic beat per this many beats.
	EctopicPeriod int
}

// RhythmProfile is one immutable catalog entry. Optional morphology is tagged
// explicitly (HasP, TPolarity, BaselineKind) rather than inferred from zero
// values, so "absent" never reads as "amplitude 0 by accident".
type RhythmProfile struct {
	Key      ProfileKey
	Name     string
	Category string

	// Clinical metadata for display collaborators.
	Mechanism string
	Urgency   string

	// Rate range in bpm. RateMax == 0 denotes electrical silence (asystole).
	RateMin, RateMax int

	// P wave. PAmplitude is only meaningful when HasP is true.
	HasP       bool
	PAmplitude float64

	// QRS complex: duration in ms, amplitude in normalized mV.
	QRSDuration  float64
	QRSAmplitude float64
	// WideQRS selects the broad ventricular-origin shape for every beat.
	WideQRS bool

	// T wave: amplitude 0 means no T wave. TPolarity is +1 or -1.
	TAmplitude float64
	TPolarity  int

	// PR interval in ms; 0 means no fixed AV relationship.
	PRInterval float64

	Regularity Regularity

	Baseline BaselineKind
	// FlutterRate is the flutter-wave rate (per minute) when Baseline is
	// BaselineFlutter.
	FlutterRate float64

	Pattern Pattern
}

// NominalRate returns the midpoint of the profile's rate range, or 0 for
// electrical silence.
func (p RhythmProfile) NominalRate() int {
	if p.RateMax == 0 {
		return 0
	}
	return (p.RateMin + p.RateMax) / 2
}

// Continuous reports whether the profile bypasses per-beat synthesis in favor
// of a fixed-duration buffer (fibrillation, torsades, asystole).
func (p RhythmProfile) Continuous() bool {
	switch p.Baseline {
	case BaselineTorsades, BaselineVFCoarse, BaselineVFFine:
		return true
	}
	return p.RateMax == 0
}

// QTApprox estimates the QT interval as PR + QRS + a fixed 200 ms
// repolarization allowance. It is a display figure, not a modeled quantity.
func (p RhythmProfile) QTApprox() float64 {
	return p.PRInterval + p.QRSDuration + 200
}
