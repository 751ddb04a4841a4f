package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

func TestCheckinRoundTrip(t *testing.T) {
	mood := 6
	hrv := 58.5
	submitted := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)

	orig := &types.CheckinRecord{
		AthleteID:    "ath-1",
		Date:         "2026-03-10",
		SleepHours:   7.5,
		SleepQuality: 2,
		StressLevel:  6,
		Mood:         &mood,
		HasPain:      true,
		Soreness:     map[string]int{"hamstring": 2},
		HRV:          &hrv,
		SubmittedAt:  submitted,
	}

	restored := FirestoreToCheckin(CheckinToFirestore(orig))

	assert.Equal(t, orig.AthleteID, restored.AthleteID)
	assert.Equal(t, orig.Date, restored.Date)
	assert.Equal(t, orig.SleepHours, restored.SleepHours)
	assert.Equal(t, orig.SleepQuality, restored.SleepQuality)
	require.NotNil(t, restored.Mood)
	assert.Equal(t, mood, *restored.Mood)
	assert.Nil(t, restored.Digestion)
	assert.True(t, restored.HasPain)
	assert.Equal(t, map[string]int{"hamstring": 2}, restored.Soreness)
	require.NotNil(t, restored.HRV)
	assert.Equal(t, hrv, *restored.HRV)
	assert.True(t, restored.SubmittedAt.Equal(submitted))
}

func TestMalformedNumericsDecodeToNil(t *testing.T) {
	// Legacy rows can hold junk strings where numbers belong; these
	// must read as absent, never as a failure.
	entry := FirestoreToWeightEntry(map[string]interface{}{
		"athlete_id": "ath-1",
		"date":       "2026-03-10",
		"weight_kg":  "not-a-number",
	})
	assert.Nil(t, entry.WeightKg)

	parsed := FirestoreToWeightEntry(map[string]interface{}{
		"weight_kg": "80.25",
	})
	require.NotNil(t, parsed.WeightKg)
	assert.Equal(t, 80.25, *parsed.WeightKg)

	// Firestore integers come back as int64.
	fromInt := FirestoreToNutritionLog(map[string]interface{}{
		"calories": int64(2200),
	})
	require.NotNil(t, fromInt.Calories)
	assert.Equal(t, 2200.0, *fromInt.Calories)
}

func TestNutritionPlanCycledTargets(t *testing.T) {
	orig := &types.NutritionPlan{
		PlanID:    "plan-1",
		AthleteID: "ath-1",
		Goal:      "cut",
		Targets:   types.MacroTargets{Calories: 2250, ProteinG: 180, CarbsG: 200, FatG: 70},
		Cycled: &types.CycledTargets{
			On:  types.MacroTargets{Calories: 2500, ProteinG: 180, CarbsG: 280, FatG: 70},
			Off: types.MacroTargets{Calories: 2000, ProteinG: 180, CarbsG: 150, FatG: 70},
		},
		Active:    true,
		StartedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	restored := FirestoreToNutritionPlan(NutritionPlanToFirestore(orig))

	assert.Equal(t, orig.Targets, restored.Targets)
	require.NotNil(t, restored.Cycled)
	assert.Equal(t, orig.Cycled.On, restored.Cycled.On)
	assert.Equal(t, orig.Cycled.Off, restored.Cycled.Off)
	assert.True(t, restored.Active)
}

func TestWorkoutRoundTrip(t *testing.T) {
	rpe := 8.0
	dur := 3600.0

	orig := &types.WorkoutRecord{
		WorkoutID:         "w-1",
		AthleteID:         "ath-1",
		Date:              "2026-03-10",
		CompletedAt:       time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
		PerceivedExertion: &rpe,
		DurationSeconds:   &dur,
	}

	restored := FirestoreToWorkout(WorkoutToFirestore(orig))
	require.NotNil(t, restored.PerceivedExertion)
	assert.Equal(t, rpe, *restored.PerceivedExertion)
	assert.Nil(t, restored.SessionLoad)
}
