// Package readiness turns daily check-in inputs into a 0-100 readiness
// score. Two scoring strategies coexist and are surfaced on different
// screens: the auditable MVP formula shown on the athlete's daily card,
// and a baseline-aware formula used on the coach's recovery view. They
// are deliberately kept as distinct named strategies and must not be
// conflated.
package readiness

import "math"

// Input is one day's readiness inputs. Sleep hours, pain and soreness
// are captured for storage and triage but the MVP formula does not
// score them. Baseline fields are only consulted by BaselineScorer.
type Input struct {
	SleepHours   float64
	SleepQuality int // 1 poor, 2 ok, 3 good
	StressLevel  int // 0-10
	HasPain      bool
	Soreness     map[string]int

	HRV          *float64 // today's HRV, ms
	RestingHR    *float64 // today's resting HR, bpm
	BaselineHRV  *float64 // rolling personal baseline
	BaselineRHR  *float64
	BaselineDays int // days of history behind the baselines
}

// Scorer is a named readiness scoring strategy.
type Scorer interface {
	Name() string
	Score(in Input) int
}

// sleepQualityScores maps the 3-point quality scale onto 0-100.
var sleepQualityScores = map[int]float64{1: 33, 2: 66, 3: 100}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// MVPScorer is the minimum-viable formula: sleep quality and inverted
// stress each contribute 50%.
type MVPScorer struct{}

func (MVPScorer) Name() string { return "mvp" }

func (MVPScorer) Score(in Input) int {
	quality := sleepQualityScores[in.SleepQuality]
	score := quality*0.5 + float64(10-in.StressLevel)*10*0.5
	return int(math.Round(clamp(score, 0, 100)))
}

// Baseline-aware penalties. Tunable, kept as named constants.
const (
	maxHRVPenalty   = 15.0 // suppressed HRV vs baseline
	maxRHRPenalty   = 10.0 // elevated resting HR vs baseline, 1 pt per bpm
	newUserPenalty  = 8.0  // baseline too young to trust
	minBaselineDays = 7
)

// BaselineScorer extends the MVP formula with objective recovery
// markers: it penalizes HRV suppressed below the athlete's baseline,
// resting HR elevated above it, and discounts athletes whose baseline
// has too little history to be trustworthy.
type BaselineScorer struct{}

func (BaselineScorer) Name() string { return "baseline" }

func (BaselineScorer) Score(in Input) int {
	score := float64(MVPScorer{}.Score(in))

	if in.HRV != nil && in.BaselineHRV != nil && *in.BaselineHRV > 0 && *in.HRV < *in.BaselineHRV {
		deficit := (*in.BaselineHRV - *in.HRV) / *in.BaselineHRV // fraction below baseline
		score -= clamp(deficit*100*0.5, 0, maxHRVPenalty)
	}
	if in.RestingHR != nil && in.BaselineRHR != nil && *in.RestingHR > *in.BaselineRHR {
		score -= clamp(*in.RestingHR-*in.BaselineRHR, 0, maxRHRPenalty)
	}
	if in.BaselineDays < minBaselineDays {
		score -= newUserPenalty
	}

	return int(math.Round(clamp(score, 0, 100)))
}

// Band is the qualitative readiness band shown alongside the score.
type Band string

const (
	BandReady    Band = "ready"    // >= 80
	BandModerate Band = "moderate" // 60-79
	BandCaution  Band = "caution"  // 40-59
	BandLow      Band = "low"      // < 40
)

// BandFor maps a score onto its display band.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandReady
	case score >= 60:
		return BandModerate
	case score >= 40:
		return BandCaution
	default:
		return BandLow
	}
}
