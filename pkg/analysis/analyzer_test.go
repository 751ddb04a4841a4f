package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/calendar"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/workload"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/testing/mocks"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

var testToday = time.Date(2025, 3, 28, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testToday }

func fptr(v float64) *float64 { return &v }

// steadyAthleteDB serves 28 days of identical training, weight and
// intake so every derived number is easy to verify by hand.
func steadyAthleteDB() *mocks.MockDatabase {
	axis := calendar.Axis(testToday, workload.ChronicWindowDays, time.UTC)

	var workouts []types.WorkoutRecord
	var weights []types.WeightEntry
	var logs []types.NutritionLog
	var checkins []types.CheckinRecord
	for _, day := range axis {
		at, _ := calendar.Parse(day, time.UTC)
		workouts = append(workouts, types.WorkoutRecord{
			AthleteID:   "ath_1",
			Date:        day,
			CompletedAt: at.Add(18 * time.Hour),
			SessionLoad: fptr(100),
		})
		weights = append(weights, types.WeightEntry{
			AthleteID: "ath_1",
			Date:      day,
			WeightKg:  fptr(80),
			Source:    types.SourceScale,
		})
		logs = append(logs, types.NutritionLog{
			AthleteID: "ath_1",
			Date:      day,
			Calories:  fptr(2500),
		})
		checkins = append(checkins, types.CheckinRecord{
			AthleteID:    "ath_1",
			Date:         day,
			SleepHours:   8,
			SleepQuality: 3,
			StressLevel:  0,
		})
	}

	return &mocks.MockDatabase{
		GetAthleteFunc: func(ctx context.Context, athleteID string) (*types.AthleteRecord, error) {
			return &types.AthleteRecord{AthleteID: athleteID, CoachID: "coach_1", Name: "Steady Eddie"}, nil
		},
		ListWorkoutsFunc: func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error) {
			return workouts, nil
		},
		ListWeightEntriesFunc: func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error) {
			return weights, nil
		},
		ListNutritionLogsFunc: func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error) {
			return logs, nil
		},
		ListCheckinsFunc: func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error) {
			return checkins, nil
		},
	}
}

func testAnalyzer(db *mocks.MockDatabase) *Analyzer {
	return &Analyzer{
		DB:     db,
		Clock:  testClock,
		Loc:    time.UTC,
		Scorer: readiness.MVPScorer{},
	}
}

func TestDashboard_SteadyState(t *testing.T) {
	a := testAnalyzer(steadyAthleteDB())

	d, err := a.Dashboard(context.Background(), "ath_1")
	if err != nil {
		t.Fatalf("Dashboard failed: %v", err)
	}

	if d.Workload.Ratio == nil {
		t.Fatal("Expected ACWR ratio with a full chronic window")
	}
	if *d.Workload.Ratio != 1.0 {
		t.Errorf("Expected ratio 1.0 for steady loading, got %v", *d.Workload.Ratio)
	}
	if d.WorkloadBand != workload.BandOptimal {
		t.Errorf("Expected optimal band, got %v", d.WorkloadBand)
	}
	if len(d.DailyLoads) != workload.ChronicWindowDays {
		t.Errorf("Expected %d daily loads, got %d", workload.ChronicWindowDays, len(d.DailyLoads))
	}

	if d.Energy.EstimatedTDEE == nil {
		t.Fatal("Expected a TDEE estimate with 14 full days of data")
	}
	if *d.Energy.EstimatedTDEE != 2500 {
		t.Errorf("Expected TDEE 2500 at stable weight, got %d", *d.Energy.EstimatedTDEE)
	}

	if d.Readiness == nil {
		t.Fatal("Expected a readiness score from the latest check-in")
	}
	if *d.Readiness != 100 {
		t.Errorf("Expected readiness 100 for perfect sleep and zero stress, got %d", *d.Readiness)
	}
	if d.ReadinessBand == nil || *d.ReadinessBand != readiness.BandReady {
		t.Errorf("Expected ready band, got %v", d.ReadinessBand)
	}
	if d.LatestCheckin == nil || d.LatestCheckin.Date != calendar.DayOf(testToday, time.UTC) {
		t.Error("Expected latest check-in to be today's")
	}
}

func TestState_TodayCheckinDetection(t *testing.T) {
	db := steadyAthleteDB()
	a := testAnalyzer(db)

	state, err := a.State(context.Background(), &types.AthleteRecord{AthleteID: "ath_1", Name: "Steady Eddie"})
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if !state.HasTodayCheckin {
		t.Error("Expected today's check-in to be detected")
	}

	// Drop today's check-in and the flag should clear.
	today := calendar.DayOf(testToday, time.UTC)
	db.ListCheckinsFunc = func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error) {
		return []types.CheckinRecord{{AthleteID: "ath_1", Date: "2025-03-27", SleepQuality: 2, StressLevel: 5}}, nil
	}
	state, err = a.State(context.Background(), &types.AthleteRecord{AthleteID: "ath_1"})
	if err != nil {
		t.Fatalf("State failed: %v", err)
	}
	if state.HasTodayCheckin {
		t.Errorf("Expected no check-in for %s", today)
	}
	if state.LatestReadiness == nil {
		t.Error("Expected readiness from yesterday's check-in")
	}
}

func TestRoster_SkipsFailedAthlete(t *testing.T) {
	db := steadyAthleteDB()
	db.ListRosterFunc = func(ctx context.Context, coachID string) ([]*types.AthleteRecord, error) {
		return []*types.AthleteRecord{
			{AthleteID: "ath_1", CoachID: coachID, Name: "Steady Eddie"},
			{AthleteID: "ath_broken", CoachID: coachID, Name: "Flaky Fred"},
		}, nil
	}
	base := db.ListWorkoutsFunc
	db.ListWorkoutsFunc = func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error) {
		if athleteID == "ath_broken" {
			return nil, errors.New("backend unavailable")
		}
		return base(ctx, athleteID, fromDay, toDay)
	}

	a := testAnalyzer(db)
	result, err := a.Roster(context.Background(), "coach_1")
	if err != nil {
		t.Fatalf("Roster failed: %v", err)
	}

	total := len(result.NeedsAttention) + len(result.Healthy)
	if total != 1 {
		t.Fatalf("Expected 1 assessed athlete, got %d", total)
	}
}

func TestScorerInput_Baselines(t *testing.T) {
	today := &types.CheckinRecord{
		Date: "2025-03-28", SleepQuality: 2, StressLevel: 4,
		HRV: fptr(40), RestingHR: fptr(60),
	}
	history := []types.CheckinRecord{
		{Date: "2025-03-25", HRV: fptr(50), RestingHR: fptr(55)},
		{Date: "2025-03-26", HRV: fptr(60), RestingHR: fptr(57)},
		{Date: "2025-03-27"},
		*today, // the day being scored never feeds its own baseline
	}

	in := ScorerInput(today, history)
	if in.BaselineHRV == nil || *in.BaselineHRV != 55 {
		t.Errorf("Expected baseline HRV 55, got %v", in.BaselineHRV)
	}
	if in.BaselineRHR == nil || *in.BaselineRHR != 56 {
		t.Errorf("Expected baseline RHR 56, got %v", in.BaselineRHR)
	}
	if in.BaselineDays != 3 {
		t.Errorf("Expected 3 baseline days, got %d", in.BaselineDays)
	}
}
