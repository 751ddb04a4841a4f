// Package types defines the raw record shapes exchanged with the
// surrounding application: rows read from Firestore and plain result
// payloads handed back to the UI layer. All records are immutable value
// objects; optional numeric fields are pointers so "not logged" is
// distinguishable from zero.
package types

import "time"

// WeightSource identifies which table reported a weight for a given day.
// When both report the same date, SourceScale wins.
type WeightSource string

const (
	// SourceScale is a dedicated weight entry (highest priority).
	SourceScale WeightSource = "scale"
	// SourceCheckin is a weight reported on the daily check-in form.
	SourceCheckin WeightSource = "checkin"
)

// AthleteRecord is the athlete profile row.
type AthleteRecord struct {
	AthleteID string    `json:"athlete_id"`
	CoachID   string    `json:"coach_id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkoutRecord is a completed training session. SessionLoad, when the
// source provides one, is preferred over PerceivedExertion x duration.
type WorkoutRecord struct {
	WorkoutID         string    `json:"workout_id"`
	AthleteID         string    `json:"athlete_id"`
	Date              string    `json:"date"` // local calendar day of completion
	CompletedAt       time.Time `json:"completed_at"`
	PerceivedExertion *float64  `json:"perceived_exertion,omitempty"` // sRPE, 1-10
	DurationSeconds   *float64  `json:"duration_seconds,omitempty"`
	SessionLoad       *float64  `json:"session_load,omitempty"`
}

// WeightEntry is one logged body weight for one day.
type WeightEntry struct {
	EntryID   string       `json:"entry_id"`
	AthleteID string       `json:"athlete_id"`
	Date      string       `json:"date"`
	WeightKg  *float64     `json:"weight_kg,omitempty"`
	Source    WeightSource `json:"source"`
	LoggedAt  time.Time    `json:"logged_at"`
}

// NutritionLog is one logged intake entry. Multiple entries per day are
// summed by the engine.
type NutritionLog struct {
	LogID     string   `json:"log_id"`
	AthleteID string   `json:"athlete_id"`
	Date      string   `json:"date"`
	Calories  *float64 `json:"calories,omitempty"`
}

// CheckinRecord is the daily subjective wellness check-in. Identity is
// (athlete, date): re-submission overwrites, it does not append.
type CheckinRecord struct {
	AthleteID    string         `json:"athlete_id"`
	Date         string         `json:"date"`
	SleepHours   float64        `json:"sleep_hours"`
	SleepQuality int            `json:"sleep_quality"` // 1 poor, 2 ok, 3 good
	StressLevel  int            `json:"stress_level"`  // 0-10
	Mood         *int           `json:"mood,omitempty"`      // 1-10
	Digestion    *int           `json:"digestion,omitempty"` // 1-10
	HasPain      bool           `json:"has_pain"`
	Soreness     map[string]int `json:"soreness,omitempty"` // body zone -> severity 1-3
	WeightKg     *float64       `json:"weight_kg,omitempty"`
	HRV          *float64       `json:"hrv,omitempty"`        // ms
	RestingHR    *float64       `json:"resting_hr,omitempty"` // bpm
	Readiness    *int           `json:"readiness,omitempty"`  // computed at record time
	SubmittedAt  time.Time      `json:"submitted_at"`
}

// InjuryStatus tracks an injury record through its lifecycle.
type InjuryStatus string

const (
	InjuryActive     InjuryStatus = "active"
	InjuryRecovering InjuryStatus = "recovering"
	InjuryHealed     InjuryStatus = "healed"
)

// InjuryRecord is a coach- or athlete-reported injury.
type InjuryRecord struct {
	InjuryID   string       `json:"injury_id"`
	AthleteID  string       `json:"athlete_id"`
	BodyPart   string       `json:"body_part"`
	Status     InjuryStatus `json:"status"`
	Notes      string       `json:"notes,omitempty"`
	ReportedAt time.Time    `json:"reported_at"`
	HealedAt   *time.Time   `json:"healed_at,omitempty"`
}

// Open reports whether the injury still needs attention.
func (r *InjuryRecord) Open() bool {
	return r.Status != InjuryHealed
}

// MacroTargets is a daily calorie/macro prescription.
type MacroTargets struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// CycledTargets holds distinct prescriptions for training vs rest days.
// Modeled explicitly rather than as an opaque blob so validation happens
// at the boundary, not inside scoring logic.
type CycledTargets struct {
	On  MacroTargets `json:"on"`
	Off MacroTargets `json:"off"`
}

// NutritionPlan is a coach-assigned nutrition policy. At most one plan
// per athlete is active at a time; activating a new plan deactivates the
// previous one.
type NutritionPlan struct {
	PlanID    string         `json:"plan_id"`
	AthleteID string         `json:"athlete_id"`
	Goal      string         `json:"goal"` // cut | maintain | bulk
	Targets   MacroTargets   `json:"targets"`
	Cycled    *CycledTargets `json:"cycled,omitempty"`
	Active    bool           `json:"active"`
	StartedAt time.Time      `json:"started_at"`
}

// ExecutionRecord tracks one function/service invocation for audit.
type ExecutionRecord struct {
	ExecutionID string                 `json:"execution_id"`
	ServiceName string                 `json:"service_name"`
	AthleteID   string                 `json:"athlete_id,omitempty"`
	TriggerType string                 `json:"trigger_type"`
	Status      string                 `json:"status"`
	Error       string                 `json:"error,omitempty"`
	Outputs     map[string]interface{} `json:"outputs,omitempty"`
	StartedAt   time.Time              `json:"started_at"`
	FinishedAt  *time.Time             `json:"finished_at,omitempty"`
}
