// Package analysis composes the domain engines over the storage layer.
// It fetches every slice an engine needs up front, runs the pure
// computation, and assembles the result payloads the API and functions
// serve. The engines themselves never touch I/O.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/calendar"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/energy"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/triage"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/workload"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Analyzer wires the domain engines to a Database. Clock and Scorer are
// injectable so tests and the debug CLI can fix "today" and pick a
// scoring strategy.
type Analyzer struct {
	DB     shared.Database
	Clock  calendar.Clock
	Loc    *time.Location
	Scorer readiness.Scorer
}

// New returns an Analyzer with production defaults: system clock,
// local timezone, MVP readiness scoring.
func New(db shared.Database) *Analyzer {
	return &Analyzer{
		DB:     db,
		Clock:  calendar.SystemClock,
		Loc:    time.Local,
		Scorer: readiness.MVPScorer{},
	}
}

// Dashboard is the per-athlete analytics payload.
type Dashboard struct {
	AthleteID     string               `json:"athlete_id"`
	Name          string               `json:"name"`
	GeneratedAt   time.Time            `json:"generated_at"`
	Energy        energy.Result        `json:"energy"`
	Workload      workload.Summary     `json:"workload"`
	WorkloadBand  workload.Band        `json:"workload_band"`
	DailyLoads    []float64            `json:"daily_loads"`
	Readiness     *int                 `json:"readiness,omitempty"`
	ReadinessBand *readiness.Band      `json:"readiness_band,omitempty"`
	LatestCheckin *types.CheckinRecord `json:"latest_checkin,omitempty"`
	OpenInjuries  []types.InjuryRecord `json:"open_injuries,omitempty"`
}

// athleteSlices is everything one athlete's analysis reads, fetched in
// a single pass over the widest window any engine needs.
type athleteSlices struct {
	workouts []types.WorkoutRecord
	weights  []types.WeightEntry
	logs     []types.NutritionLog
	checkins []types.CheckinRecord
	injuries []types.InjuryRecord
	plan     *types.NutritionPlan
}

func (a *Analyzer) fetchSlices(ctx context.Context, athleteID string) (*athleteSlices, error) {
	today := a.Clock()
	axis := calendar.Axis(today, workload.ChronicWindowDays, a.Loc)
	fromDay, toDay := axis[0], axis[len(axis)-1]

	s := &athleteSlices{}
	var err error

	if s.workouts, err = a.DB.ListWorkouts(ctx, athleteID, fromDay, toDay); err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	if s.weights, err = a.DB.ListWeightEntries(ctx, athleteID, fromDay, toDay); err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	if s.logs, err = a.DB.ListNutritionLogs(ctx, athleteID, fromDay, toDay); err != nil {
		return nil, fmt.Errorf("list nutrition logs: %w", err)
	}
	if s.checkins, err = a.DB.ListCheckins(ctx, athleteID, fromDay, toDay); err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	if s.injuries, err = a.DB.ListOpenInjuries(ctx, athleteID); err != nil {
		return nil, fmt.Errorf("list open injuries: %w", err)
	}
	if s.plan, err = a.DB.GetActivePlan(ctx, athleteID); err != nil {
		return nil, fmt.Errorf("get active plan: %w", err)
	}
	return s, nil
}

// Dashboard runs the full per-athlete analysis: TDEE estimate over the
// energy lookback, ACWR over the chronic window, readiness from the
// latest check-in.
func (a *Analyzer) Dashboard(ctx context.Context, athleteID string) (*Dashboard, error) {
	athlete, err := a.DB.GetAthlete(ctx, athleteID)
	if err != nil {
		return nil, fmt.Errorf("get athlete: %w", err)
	}
	if athlete == nil {
		return nil, fmt.Errorf("athlete %s not found", athleteID)
	}

	slices, err := a.fetchSlices(ctx, athleteID)
	if err != nil {
		return nil, err
	}

	today := a.Clock()
	loads := workload.DailyLoads(slices.workouts, workload.ChronicWindowDays, today, a.Loc)
	summary := workload.ACWR(loads)

	energyAxis := calendar.Axis(today, energy.LookbackDays, a.Loc)
	obs := energy.Observations(energyAxis, slices.weights, slices.checkins, slices.logs)
	estimate := energy.Estimate(obs, planGoal(slices.plan))

	d := &Dashboard{
		AthleteID:    athlete.AthleteID,
		Name:         athlete.Name,
		GeneratedAt:  today,
		Energy:       estimate,
		Workload:     summary,
		WorkloadBand: workload.Classify(summary.Ratio),
		DailyLoads:   loads,
		OpenInjuries: slices.injuries,
	}

	if latest := latestCheckin(slices.checkins); latest != nil {
		score := a.scoreCheckin(latest, slices.checkins)
		band := readiness.BandFor(score)
		d.Readiness = &score
		d.ReadinessBand = &band
		d.LatestCheckin = latest
	}
	return d, nil
}

// State assembles the triage input slice for one athlete.
func (a *Analyzer) State(ctx context.Context, athlete *types.AthleteRecord) (triage.AthleteState, error) {
	slices, err := a.fetchSlices(ctx, athlete.AthleteID)
	if err != nil {
		return triage.AthleteState{}, err
	}

	today := a.Clock()
	loads := workload.DailyLoads(slices.workouts, workload.ChronicWindowDays, today, a.Loc)
	summary := workload.ACWR(loads)

	state := triage.AthleteState{
		AthleteID:        athlete.AthleteID,
		Name:             athlete.Name,
		ACWR:             summary.Ratio,
		AcuteLoad:        summary.AcuteLoad,
		ChronicLoad:      summary.ChronicLoad,
		OpenInjuries:     slices.injuries,
		DailyLoadHistory: loads,
	}

	if latest := latestCheckin(slices.checkins); latest != nil {
		score := a.scoreCheckin(latest, slices.checkins)
		state.LatestReadiness = &score
		state.LatestCheckin = latest
		state.HasTodayCheckin = latest.Date == calendar.DayOf(today, a.Loc)
	}
	return state, nil
}

// Roster triages every athlete assigned to a coach. Athlete fetches run
// concurrently; an athlete whose slices cannot be fetched is logged and
// left out rather than failing the whole roster.
func (a *Analyzer) Roster(ctx context.Context, coachID string) (triage.Result, error) {
	athletes, err := a.DB.ListRoster(ctx, coachID)
	if err != nil {
		return triage.Result{}, fmt.Errorf("list roster: %w", err)
	}

	states := make([]*triage.AthleteState, len(athletes))
	var wg sync.WaitGroup
	for i, athlete := range athletes {
		wg.Add(1)
		go func(i int, athlete *types.AthleteRecord) {
			defer wg.Done()
			state, err := a.State(ctx, athlete)
			if err != nil {
				slog.Warn("Skipping athlete in triage", "athlete_id", athlete.AthleteID, "error", err)
				return
			}
			states[i] = &state
		}(i, athlete)
	}
	wg.Wait()

	assembled := make([]triage.AthleteState, 0, len(states))
	for _, s := range states {
		if s != nil {
			assembled = append(assembled, *s)
		}
	}
	return triage.Triage(assembled), nil
}

// scoreCheckin returns the readiness score for a check-in, preferring
// the score computed at submission time when one was stored.
func (a *Analyzer) scoreCheckin(c *types.CheckinRecord, history []types.CheckinRecord) int {
	if c.Readiness != nil {
		return *c.Readiness
	}
	return a.Scorer.Score(ScorerInput(c, history))
}

// ScorerInput maps a check-in plus its history onto scoring inputs.
// Baselines are the mean of prior-day HRV and resting HR readings.
func ScorerInput(c *types.CheckinRecord, history []types.CheckinRecord) readiness.Input {
	in := readiness.Input{
		SleepHours:   c.SleepHours,
		SleepQuality: c.SleepQuality,
		StressLevel:  c.StressLevel,
		HasPain:      c.HasPain,
		Soreness:     c.Soreness,
		HRV:          c.HRV,
		RestingHR:    c.RestingHR,
	}

	var hrvSum, rhrSum float64
	var hrvN, rhrN, days int
	for i := range history {
		h := &history[i]
		if h.Date >= c.Date {
			continue
		}
		days++
		if h.HRV != nil {
			hrvSum += *h.HRV
			hrvN++
		}
		if h.RestingHR != nil {
			rhrSum += *h.RestingHR
			rhrN++
		}
	}
	if hrvN > 0 {
		mean := hrvSum / float64(hrvN)
		in.BaselineHRV = &mean
	}
	if rhrN > 0 {
		mean := rhrSum / float64(rhrN)
		in.BaselineRHR = &mean
	}
	in.BaselineDays = days
	return in
}

// latestCheckin returns the check-in with the greatest day key. ISO day
// keys sort lexicographically.
func latestCheckin(checkins []types.CheckinRecord) *types.CheckinRecord {
	var latest *types.CheckinRecord
	for i := range checkins {
		if latest == nil || checkins[i].Date > latest.Date {
			latest = &checkins[i]
		}
	}
	return latest
}

func planGoal(plan *types.NutritionPlan) energy.Goal {
	if plan == nil {
		return energy.GoalMaintain
	}
	switch plan.Goal {
	case string(energy.GoalCut):
		return energy.GoalCut
	case string(energy.GoalBulk):
		return energy.GoalBulk
	default:
		return energy.GoalMaintain
	}
}
