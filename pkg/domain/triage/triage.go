// Package triage combines workload, readiness, wellness and injury
// signals into ranked risk flags for one athlete or a whole roster.
// All applicable flags are emitted, not just the most severe; the
// overall risk level is the maximum severity among them.
package triage

import (
	"fmt"
	"sort"
	"sync"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Severity orders flags. Info never raises the overall level.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityModerate
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityModerate:
		return "moderate"
	case SeverityLow:
		return "low"
	default:
		return "info"
	}
}

// MarshalJSON emits the string form so result payloads serialize the
// severity name, not the internal rank.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON restores a severity from its string form.
func (s *Severity) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"high"`:
		*s = SeverityHigh
	case `"moderate"`:
		*s = SeverityModerate
	case `"low"`:
		*s = SeverityLow
	case `"info"`:
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %s", data)
	}
	return nil
}

// RiskLevel is the athlete's overall classification. Low doubles as
// the insufficient-data state, which is distinct from a verified
// optimal.
type RiskLevel string

const (
	RiskHigh     RiskLevel = "high"
	RiskModerate RiskLevel = "moderate"
	RiskLow      RiskLevel = "low"
	RiskOptimal  RiskLevel = "optimal"
)

// rank orders risk levels for roster sorting, most urgent first.
func rank(l RiskLevel) int {
	switch l {
	case RiskHigh:
		return 0
	case RiskModerate:
		return 1
	case RiskLow:
		return 2
	default:
		return 3
	}
}

// FlagType identifies a risk flag.
type FlagType string

const (
	FlagHighInjuryRisk  FlagType = "high_injury_risk"
	FlagOverloadWarning FlagType = "overload_warning"
	FlagDetrainingRisk  FlagType = "detraining_risk"
	FlagLowRecovery     FlagType = "low_recovery"
	FlagNoCheckin       FlagType = "no_checkin"
	FlagPainReported    FlagType = "pain_reported"
	FlagHighStress      FlagType = "high_stress"
	FlagLowMood         FlagType = "low_mood"
	FlagDigestionIssues FlagType = "digestion_issues"
	FlagActiveInjury    FlagType = "active_injury"
)

// RiskFlag is one emitted signal.
type RiskFlag struct {
	Type     FlagType `json:"type"`
	Severity Severity `json:"severity"`
	Label    string   `json:"label"`
	Value    string   `json:"value,omitempty"`
	Details  string   `json:"details,omitempty"`
}

// AthleteState is the fully-materialized input slice for one athlete.
// The caller fetches all slices before invoking triage; partial
// invocation is not a supported mode.
type AthleteState struct {
	AthleteID        string
	Name             string
	ACWR             *float64
	AcuteLoad        float64
	ChronicLoad      float64
	LatestReadiness  *int
	HasTodayCheckin  bool
	LatestCheckin    *types.CheckinRecord
	OpenInjuries     []types.InjuryRecord
	DailyLoadHistory []float64
}

// AthleteRiskSummary is the per-athlete triage output.
type AthleteRiskSummary struct {
	AthleteID        string     `json:"athlete_id"`
	Name             string     `json:"name,omitempty"`
	ACWR             *float64   `json:"acwr,omitempty"`
	AcuteLoad        float64    `json:"acute_load"`
	ChronicLoad      float64    `json:"chronic_load"`
	RiskLevel        RiskLevel  `json:"risk_level"`
	RiskFlags        []RiskFlag `json:"risk_flags"`
	LatestReadiness  *int       `json:"latest_readiness,omitempty"`
	ReadinessBand    string     `json:"readiness_band,omitempty"`
	DailyLoadHistory []float64  `json:"daily_load_history,omitempty"`
}

// Assess evaluates every flag rule independently and derives the
// overall risk level. An athlete with no workload history and no
// readiness data at all classifies low rather than optimal.
func Assess(state AthleteState) AthleteRiskSummary {
	flags := make([]RiskFlag, 0, 4)

	if state.ACWR != nil {
		ratio := *state.ACWR
		switch {
		case ratio > 1.5:
			flags = append(flags, RiskFlag{
				Type: FlagHighInjuryRisk, Severity: SeverityHigh,
				Label: "High injury risk", Value: fmt.Sprintf("%.2f", ratio),
				Details: "acute load far above chronic baseline",
			})
		case ratio > 1.3:
			flags = append(flags, RiskFlag{
				Type: FlagOverloadWarning, Severity: SeverityModerate,
				Label: "Overload warning", Value: fmt.Sprintf("%.2f", ratio),
				Details: "training load ramping faster than the chronic baseline",
			})
		case ratio < 0.8:
			flags = append(flags, RiskFlag{
				Type: FlagDetrainingRisk, Severity: SeverityModerate,
				Label: "Detraining risk", Value: fmt.Sprintf("%.2f", ratio),
				Details: "acute load well below chronic baseline",
			})
		}
	}

	if state.LatestReadiness != nil && *state.LatestReadiness < 40 {
		flags = append(flags, RiskFlag{
			Type: FlagLowRecovery, Severity: SeverityHigh,
			Label: "Low recovery", Value: fmt.Sprintf("%d", *state.LatestReadiness),
		})
	}

	if !state.HasTodayCheckin {
		flags = append(flags, RiskFlag{
			Type: FlagNoCheckin, Severity: SeverityInfo,
			Label: "No check-in today",
		})
	}

	if c := state.LatestCheckin; c != nil {
		if c.HasPain || len(c.Soreness) > 0 {
			flags = append(flags, RiskFlag{
				Type: FlagPainReported, Severity: SeverityHigh,
				Label: "Pain reported", Details: sorenessDetails(c.Soreness),
			})
		}
		if c.StressLevel > 7 {
			flags = append(flags, RiskFlag{
				Type: FlagHighStress, Severity: SeverityModerate,
				Label: "High stress", Value: fmt.Sprintf("%d/10", c.StressLevel),
			})
		}
		if c.Mood != nil && *c.Mood <= 4 {
			flags = append(flags, RiskFlag{
				Type: FlagLowMood, Severity: SeverityLow,
				Label: "Low mood", Value: fmt.Sprintf("%d/10", *c.Mood),
			})
		}
		if c.Digestion != nil && *c.Digestion <= 4 {
			flags = append(flags, RiskFlag{
				Type: FlagDigestionIssues, Severity: SeverityLow,
				Label: "Digestion issues", Value: fmt.Sprintf("%d/10", *c.Digestion),
			})
		}
	}

	// Always added regardless of other flags.
	for _, injury := range state.OpenInjuries {
		if injury.Open() {
			flags = append(flags, RiskFlag{
				Type: FlagActiveInjury, Severity: SeverityHigh,
				Label: "Active injury", Value: injury.BodyPart,
				Details: injury.Notes,
			})
		}
	}

	summary := AthleteRiskSummary{
		AthleteID:        state.AthleteID,
		Name:             state.Name,
		ACWR:             state.ACWR,
		AcuteLoad:        state.AcuteLoad,
		ChronicLoad:      state.ChronicLoad,
		RiskFlags:        flags,
		LatestReadiness:  state.LatestReadiness,
		DailyLoadHistory: state.DailyLoadHistory,
	}
	if state.LatestReadiness != nil {
		summary.ReadinessBand = string(readiness.BandFor(*state.LatestReadiness))
	}
	summary.RiskLevel = overallLevel(flags, state)
	return summary
}

func sorenessDetails(zones map[string]int) string {
	if len(zones) == 0 {
		return ""
	}
	names := make([]string, 0, len(zones))
	for zone := range zones {
		names = append(names, zone)
	}
	sort.Strings(names)
	details := "sore: " + names[0]
	for _, n := range names[1:] {
		details += ", " + n
	}
	return details
}

// overallLevel takes the maximum severity among non-info flags. No
// flags at all means optimal, unless the athlete has neither workload
// nor readiness data, which is the insufficient-data low state.
func overallLevel(flags []RiskFlag, state AthleteState) RiskLevel {
	max := SeverityInfo
	scored := false
	for _, f := range flags {
		if f.Severity == SeverityInfo {
			continue
		}
		scored = true
		if f.Severity > max {
			max = f.Severity
		}
	}
	if scored {
		switch max {
		case SeverityHigh:
			return RiskHigh
		case SeverityModerate:
			return RiskModerate
		default:
			return RiskLow
		}
	}
	if state.ACWR == nil && state.LatestReadiness == nil {
		return RiskLow
	}
	return RiskOptimal
}

// Result partitions a roster by urgency.
type Result struct {
	NeedsAttention []AthleteRiskSummary `json:"needs_attention"`
	Healthy        []AthleteRiskSummary `json:"healthy"`
}

// Triage assesses a roster. Per-athlete assessment is independent and
// runs concurrently; output order is the severity rank with ties kept
// in original roster order.
func Triage(states []AthleteState) Result {
	summaries := make([]AthleteRiskSummary, len(states))

	var wg sync.WaitGroup
	for i, state := range states {
		wg.Add(1)
		go func(i int, state AthleteState) {
			defer wg.Done()
			summaries[i] = Assess(state)
		}(i, state)
	}
	wg.Wait()

	sort.SliceStable(summaries, func(a, b int) bool {
		return rank(summaries[a].RiskLevel) < rank(summaries[b].RiskLevel)
	})

	var res Result
	for _, s := range summaries {
		switch s.RiskLevel {
		case RiskHigh, RiskModerate:
			res.NeedsAttention = append(res.NeedsAttention, s)
		default:
			res.Healthy = append(res.Healthy, s)
		}
	}
	return res
}
