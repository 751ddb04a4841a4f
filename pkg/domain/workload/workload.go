// Package workload turns discrete training sessions into dense per-day
// load arrays and derives the acute:chronic workload ratio (ACWR) used
// for injury-risk banding.
package workload

import (
	"math"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/calendar"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

const (
	// AcuteWindowDays is the short rolling window.
	AcuteWindowDays = 7
	// ChronicWindowDays is the long rolling window; ACWR is undefined
	// with less history than this.
	ChronicWindowDays = 28
)

// SessionLoad returns the training stress for one session. An explicit
// session load from the source wins; otherwise sRPE x duration in
// minutes. Missing exertion or duration contributes zero.
func SessionLoad(w types.WorkoutRecord) float64 {
	if w.SessionLoad != nil {
		return *w.SessionLoad
	}
	if w.PerceivedExertion == nil || w.DurationSeconds == nil {
		return 0
	}
	return *w.PerceivedExertion * (*w.DurationSeconds / 60)
}

// DailyLoads buckets sessions by the local calendar day of completion
// and returns a dense load array over the window ending today:
// most-recent-day-last, length windowDays, zero for days with no
// session. Same-day sessions sum their loads.
func DailyLoads(sessions []types.WorkoutRecord, windowDays int, today time.Time, loc *time.Location) []float64 {
	axis := calendar.Axis(today, windowDays, loc)
	byDay := make(map[string]float64, len(sessions))
	for _, s := range sessions {
		byDay[calendar.DayOf(s.CompletedAt, loc)] += SessionLoad(s)
	}

	loads := make([]float64, len(axis))
	for i, day := range axis {
		loads[i] = byDay[day]
	}
	return loads
}

// Summary holds the ACWR computation result. Ratio is nil when the
// load history is shorter than the chronic window or chronic load is
// zero; the caller decides how to display the insufficient-data state.
type Summary struct {
	Ratio       *float64 `json:"ratio,omitempty"`
	AcuteLoad   float64  `json:"acute_load"`
	ChronicLoad float64  `json:"chronic_load"`
}

// ACWR computes acute (7-day) and chronic (28-day) average loads and
// their ratio, rounded to 2 decimals. loads must be most-recent-last.
func ACWR(loads []float64) Summary {
	if len(loads) != ChronicWindowDays {
		return Summary{}
	}

	var chronicSum float64
	for _, v := range loads {
		chronicSum += v
	}
	var acuteSum float64
	for _, v := range loads[len(loads)-AcuteWindowDays:] {
		acuteSum += v
	}

	s := Summary{
		AcuteLoad:   acuteSum / AcuteWindowDays,
		ChronicLoad: chronicSum / ChronicWindowDays,
	}
	if s.ChronicLoad == 0 {
		return s
	}
	ratio := math.Round(s.AcuteLoad/s.ChronicLoad*100) / 100
	s.Ratio = &ratio
	return s
}

// Band classifies an ACWR ratio.
type Band string

const (
	BandHighRisk   Band = "high_injury_risk" // ratio > 1.5
	BandOverload   Band = "overload_warning" // 1.3 < ratio <= 1.5
	BandDetraining Band = "detraining_risk"  // ratio < 0.8
	BandOptimal    Band = "optimal"          // 0.8 <= ratio <= 1.3
	BandUnknown    Band = "unknown"          // insufficient history
)

// Classify maps a ratio onto its risk band. A nil ratio (insufficient
// data) is BandUnknown.
func Classify(ratio *float64) Band {
	if ratio == nil {
		return BandUnknown
	}
	switch {
	case *ratio > 1.5:
		return BandHighRisk
	case *ratio > 1.3:
		return BandOverload
	case *ratio < 0.8:
		return BandDetraining
	default:
		return BandOptimal
	}
}
