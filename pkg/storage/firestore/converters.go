package firestore

import (
	"strconv"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Helper to safely get string from map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Helper to safely get bool from map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// getFloat reads a numeric field. Firestore hands back int64 or
// float64 depending on how the row was written; legacy rows may hold
// numeric strings. Anything malformed is treated as absent (nil),
// never surfaced as a failure.
func getFloat(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case int64:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

func getInt(m map[string]interface{}, key string) *int {
	if f := getFloat(m, key); f != nil {
		i := int(*f)
		return &i
	}
	return nil
}

func intOrZero(m map[string]interface{}, key string) int {
	if i := getInt(m, key); i != nil {
		return *i
	}
	return 0
}

func floatOrZero(m map[string]interface{}, key string) float64 {
	if f := getFloat(m, key); f != nil {
		return *f
	}
	return 0
}

// Helper to safely get time from map (Firestore returns time.Time)
func getTime(m map[string]interface{}, key string) time.Time {
	if v, ok := m[key]; ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}

func getTimePtr(m map[string]interface{}, key string) *time.Time {
	if v, ok := m[key]; ok {
		if t, ok := v.(time.Time); ok {
			return &t
		}
	}
	return nil
}

func getIntMap(m map[string]interface{}, key string) map[string]int {
	v, ok := m[key]
	if !ok {
		return nil
	}
	raw, ok := v.(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}
	out := make(map[string]int, len(raw))
	for k := range raw {
		if i := getInt(raw, k); i != nil {
			out[k] = *i
		}
	}
	return out
}

func putFloat(m map[string]interface{}, key string, v *float64) {
	if v != nil {
		m[key] = *v
	}
}

func putInt(m map[string]interface{}, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

// --- AthleteRecord Converters ---

func AthleteToFirestore(a *types.AthleteRecord) map[string]interface{} {
	return map[string]interface{}{
		"athlete_id": a.AthleteID,
		"coach_id":   a.CoachID,
		"name":       a.Name,
		"timezone":   a.Timezone,
		"created_at": a.CreatedAt,
	}
}

func FirestoreToAthlete(m map[string]interface{}) *types.AthleteRecord {
	return &types.AthleteRecord{
		AthleteID: getString(m, "athlete_id"),
		CoachID:   getString(m, "coach_id"),
		Name:      getString(m, "name"),
		Timezone:  getString(m, "timezone"),
		CreatedAt: getTime(m, "created_at"),
	}
}

// --- CheckinRecord Converters ---

func CheckinToFirestore(c *types.CheckinRecord) map[string]interface{} {
	m := map[string]interface{}{
		"athlete_id":    c.AthleteID,
		"date":          c.Date,
		"sleep_hours":   c.SleepHours,
		"sleep_quality": c.SleepQuality,
		"stress_level":  c.StressLevel,
		"has_pain":      c.HasPain,
		"submitted_at":  c.SubmittedAt,
	}
	putInt(m, "mood", c.Mood)
	putInt(m, "digestion", c.Digestion)
	putFloat(m, "weight_kg", c.WeightKg)
	putFloat(m, "hrv", c.HRV)
	putFloat(m, "resting_hr", c.RestingHR)
	putInt(m, "readiness", c.Readiness)
	if len(c.Soreness) > 0 {
		soreness := make(map[string]interface{}, len(c.Soreness))
		for zone, severity := range c.Soreness {
			soreness[zone] = severity
		}
		m["soreness"] = soreness
	}
	return m
}

func FirestoreToCheckin(m map[string]interface{}) *types.CheckinRecord {
	return &types.CheckinRecord{
		AthleteID:    getString(m, "athlete_id"),
		Date:         getString(m, "date"),
		SleepHours:   floatOrZero(m, "sleep_hours"),
		SleepQuality: intOrZero(m, "sleep_quality"),
		StressLevel:  intOrZero(m, "stress_level"),
		Mood:         getInt(m, "mood"),
		Digestion:    getInt(m, "digestion"),
		HasPain:      getBool(m, "has_pain"),
		Soreness:     getIntMap(m, "soreness"),
		WeightKg:     getFloat(m, "weight_kg"),
		HRV:          getFloat(m, "hrv"),
		RestingHR:    getFloat(m, "resting_hr"),
		Readiness:    getInt(m, "readiness"),
		SubmittedAt:  getTime(m, "submitted_at"),
	}
}

// --- WeightEntry Converters ---

func WeightEntryToFirestore(e *types.WeightEntry) map[string]interface{} {
	m := map[string]interface{}{
		"entry_id":   e.EntryID,
		"athlete_id": e.AthleteID,
		"date":       e.Date,
		"source":     string(e.Source),
		"logged_at":  e.LoggedAt,
	}
	putFloat(m, "weight_kg", e.WeightKg)
	return m
}

func FirestoreToWeightEntry(m map[string]interface{}) *types.WeightEntry {
	return &types.WeightEntry{
		EntryID:   getString(m, "entry_id"),
		AthleteID: getString(m, "athlete_id"),
		Date:      getString(m, "date"),
		WeightKg:  getFloat(m, "weight_kg"),
		Source:    types.WeightSource(getString(m, "source")),
		LoggedAt:  getTime(m, "logged_at"),
	}
}

// --- NutritionLog Converters ---

func NutritionLogToFirestore(l *types.NutritionLog) map[string]interface{} {
	m := map[string]interface{}{
		"log_id":     l.LogID,
		"athlete_id": l.AthleteID,
		"date":       l.Date,
	}
	putFloat(m, "calories", l.Calories)
	return m
}

func FirestoreToNutritionLog(m map[string]interface{}) *types.NutritionLog {
	return &types.NutritionLog{
		LogID:     getString(m, "log_id"),
		AthleteID: getString(m, "athlete_id"),
		Date:      getString(m, "date"),
		Calories:  getFloat(m, "calories"),
	}
}

// --- WorkoutRecord Converters ---

func WorkoutToFirestore(w *types.WorkoutRecord) map[string]interface{} {
	m := map[string]interface{}{
		"workout_id":   w.WorkoutID,
		"athlete_id":   w.AthleteID,
		"date":         w.Date,
		"completed_at": w.CompletedAt,
	}
	putFloat(m, "perceived_exertion", w.PerceivedExertion)
	putFloat(m, "duration_seconds", w.DurationSeconds)
	putFloat(m, "session_load", w.SessionLoad)
	return m
}

func FirestoreToWorkout(m map[string]interface{}) *types.WorkoutRecord {
	return &types.WorkoutRecord{
		WorkoutID:         getString(m, "workout_id"),
		AthleteID:         getString(m, "athlete_id"),
		Date:              getString(m, "date"),
		CompletedAt:       getTime(m, "completed_at"),
		PerceivedExertion: getFloat(m, "perceived_exertion"),
		DurationSeconds:   getFloat(m, "duration_seconds"),
		SessionLoad:       getFloat(m, "session_load"),
	}
}

// --- InjuryRecord Converters ---

func InjuryToFirestore(r *types.InjuryRecord) map[string]interface{} {
	m := map[string]interface{}{
		"injury_id":   r.InjuryID,
		"athlete_id":  r.AthleteID,
		"body_part":   r.BodyPart,
		"status":      string(r.Status),
		"notes":       r.Notes,
		"reported_at": r.ReportedAt,
	}
	if r.HealedAt != nil {
		m["healed_at"] = *r.HealedAt
	}
	return m
}

func FirestoreToInjury(m map[string]interface{}) *types.InjuryRecord {
	return &types.InjuryRecord{
		InjuryID:   getString(m, "injury_id"),
		AthleteID:  getString(m, "athlete_id"),
		BodyPart:   getString(m, "body_part"),
		Status:     types.InjuryStatus(getString(m, "status")),
		Notes:      getString(m, "notes"),
		ReportedAt: getTime(m, "reported_at"),
		HealedAt:   getTimePtr(m, "healed_at"),
	}
}

// --- NutritionPlan Converters ---

func macroTargetsToMap(t types.MacroTargets) map[string]interface{} {
	return map[string]interface{}{
		"calories":  t.Calories,
		"protein_g": t.ProteinG,
		"carbs_g":   t.CarbsG,
		"fat_g":     t.FatG,
	}
}

func mapToMacroTargets(v interface{}) types.MacroTargets {
	m, ok := v.(map[string]interface{})
	if !ok {
		return types.MacroTargets{}
	}
	return types.MacroTargets{
		Calories: floatOrZero(m, "calories"),
		ProteinG: floatOrZero(m, "protein_g"),
		CarbsG:   floatOrZero(m, "carbs_g"),
		FatG:     floatOrZero(m, "fat_g"),
	}
}

func NutritionPlanToFirestore(p *types.NutritionPlan) map[string]interface{} {
	m := map[string]interface{}{
		"plan_id":    p.PlanID,
		"athlete_id": p.AthleteID,
		"goal":       p.Goal,
		"targets":    macroTargetsToMap(p.Targets),
		"active":     p.Active,
		"started_at": p.StartedAt,
	}
	if p.Cycled != nil {
		m["cycled"] = map[string]interface{}{
			"on":  macroTargetsToMap(p.Cycled.On),
			"off": macroTargetsToMap(p.Cycled.Off),
		}
	}
	return m
}

func FirestoreToNutritionPlan(m map[string]interface{}) *types.NutritionPlan {
	p := &types.NutritionPlan{
		PlanID:    getString(m, "plan_id"),
		AthleteID: getString(m, "athlete_id"),
		Goal:      getString(m, "goal"),
		Targets:   mapToMacroTargets(m["targets"]),
		Active:    getBool(m, "active"),
		StartedAt: getTime(m, "started_at"),
	}
	if cycled, ok := m["cycled"].(map[string]interface{}); ok {
		p.Cycled = &types.CycledTargets{
			On:  mapToMacroTargets(cycled["on"]),
			Off: mapToMacroTargets(cycled["off"]),
		}
	}
	return p
}

// --- ExecutionRecord Converters ---

func ExecutionToFirestore(r *types.ExecutionRecord) map[string]interface{} {
	m := map[string]interface{}{
		"execution_id": r.ExecutionID,
		"service_name": r.ServiceName,
		"athlete_id":   r.AthleteID,
		"trigger_type": r.TriggerType,
		"status":       r.Status,
		"error":        r.Error,
		"started_at":   r.StartedAt,
	}
	if r.FinishedAt != nil {
		m["finished_at"] = *r.FinishedAt
	}
	if r.Outputs != nil {
		m["outputs"] = r.Outputs
	}
	return m
}

func FirestoreToExecution(m map[string]interface{}) *types.ExecutionRecord {
	r := &types.ExecutionRecord{
		ExecutionID: getString(m, "execution_id"),
		ServiceName: getString(m, "service_name"),
		AthleteID:   getString(m, "athlete_id"),
		TriggerType: getString(m, "trigger_type"),
		Status:      getString(m, "status"),
		Error:       getString(m, "error"),
		StartedAt:   getTime(m, "started_at"),
		FinishedAt:  getTimePtr(m, "finished_at"),
	}
	if outputs, ok := m["outputs"].(map[string]interface{}); ok {
		r.Outputs = outputs
	}
	return r
}
