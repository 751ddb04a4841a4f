package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/analysis"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/calendar"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Fixture is a self-contained scenario file: every slice the engines
// read, plus a fixed "today" so runs are reproducible.
type Fixture struct {
	Today    string                `json:"today"`
	CoachID  string                `json:"coach_id"`
	Athletes []types.AthleteRecord `json:"athletes"`
	Workouts []types.WorkoutRecord `json:"workouts"`
	Weights  []types.WeightEntry   `json:"weights"`
	Logs     []types.NutritionLog  `json:"nutrition_logs"`
	Checkins []types.CheckinRecord `json:"checkins"`
	Injuries []types.InjuryRecord  `json:"injuries"`
	Plans    []types.NutritionPlan `json:"plans"`
}

// fixtureDB serves fixture slices through the same interface the
// production analyzer uses.
type fixtureDB struct {
	fx *Fixture
}

func (db *fixtureDB) GetAthlete(ctx context.Context, athleteID string) (*types.AthleteRecord, error) {
	for i := range db.fx.Athletes {
		if db.fx.Athletes[i].AthleteID == athleteID {
			return &db.fx.Athletes[i], nil
		}
	}
	return nil, nil
}

func (db *fixtureDB) ListRoster(ctx context.Context, coachID string) ([]*types.AthleteRecord, error) {
	var roster []*types.AthleteRecord
	for i := range db.fx.Athletes {
		if db.fx.Athletes[i].CoachID == coachID {
			roster = append(roster, &db.fx.Athletes[i])
		}
	}
	return roster, nil
}

func inRange(day, fromDay, toDay string) bool {
	return day >= fromDay && day <= toDay
}

func (db *fixtureDB) ListWorkouts(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error) {
	var out []types.WorkoutRecord
	for _, r := range db.fx.Workouts {
		if r.AthleteID == athleteID && inRange(r.Date, fromDay, toDay) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (db *fixtureDB) ListWeightEntries(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error) {
	var out []types.WeightEntry
	for _, r := range db.fx.Weights {
		if r.AthleteID == athleteID && inRange(r.Date, fromDay, toDay) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (db *fixtureDB) ListNutritionLogs(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error) {
	var out []types.NutritionLog
	for _, r := range db.fx.Logs {
		if r.AthleteID == athleteID && inRange(r.Date, fromDay, toDay) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (db *fixtureDB) ListCheckins(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error) {
	var out []types.CheckinRecord
	for _, r := range db.fx.Checkins {
		if r.AthleteID == athleteID && inRange(r.Date, fromDay, toDay) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (db *fixtureDB) GetCheckin(ctx context.Context, athleteID, day string) (*types.CheckinRecord, error) {
	for i := range db.fx.Checkins {
		if db.fx.Checkins[i].AthleteID == athleteID && db.fx.Checkins[i].Date == day {
			return &db.fx.Checkins[i], nil
		}
	}
	return nil, nil
}

func (db *fixtureDB) UpsertCheckin(ctx context.Context, record *types.CheckinRecord) error {
	for i := range db.fx.Checkins {
		if db.fx.Checkins[i].AthleteID == record.AthleteID && db.fx.Checkins[i].Date == record.Date {
			db.fx.Checkins[i] = *record
			return nil
		}
	}
	db.fx.Checkins = append(db.fx.Checkins, *record)
	return nil
}

func (db *fixtureDB) ListOpenInjuries(ctx context.Context, athleteID string) ([]types.InjuryRecord, error) {
	var out []types.InjuryRecord
	for i := range db.fx.Injuries {
		if db.fx.Injuries[i].AthleteID == athleteID && db.fx.Injuries[i].Open() {
			out = append(out, db.fx.Injuries[i])
		}
	}
	return out, nil
}

func (db *fixtureDB) GetActivePlan(ctx context.Context, athleteID string) (*types.NutritionPlan, error) {
	for i := range db.fx.Plans {
		if db.fx.Plans[i].AthleteID == athleteID && db.fx.Plans[i].Active {
			return &db.fx.Plans[i], nil
		}
	}
	return nil, nil
}

func (db *fixtureDB) SetExecution(ctx context.Context, record *types.ExecutionRecord) error {
	return nil
}

func (db *fixtureDB) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	return nil
}

// output bundles everything the engines produce for one scenario.
type output struct {
	Today      string                         `json:"today"`
	Triage     interface{}                    `json:"triage"`
	Dashboards map[string]*analysis.Dashboard `json:"dashboards"`
}

func main() {
	inputPath := flag.String("input", "", "Path to fixture JSON")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Please provide -input")
		os.Exit(1)
	}

	data, err := os.ReadFile(*inputPath)
	if err != nil {
		fmt.Printf("Failed to read fixture: %v\n", err)
		os.Exit(1)
	}

	var fx Fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		fmt.Printf("Failed to parse fixture: %v\n", err)
		os.Exit(1)
	}

	today, ok := calendar.Parse(fx.Today, time.UTC)
	if !ok {
		fmt.Printf("Fixture today %q is not a valid YYYY-MM-DD day\n", fx.Today)
		os.Exit(1)
	}

	analyzer := &analysis.Analyzer{
		DB:     &fixtureDB{fx: &fx},
		Clock:  func() time.Time { return today.Add(12 * time.Hour) },
		Loc:    time.UTC,
		Scorer: readiness.MVPScorer{},
	}

	ctx := context.Background()
	result, err := analyzer.Roster(ctx, fx.CoachID)
	if err != nil {
		fmt.Printf("Triage failed: %v\n", err)
		os.Exit(1)
	}

	dashboards := make(map[string]*analysis.Dashboard, len(fx.Athletes))
	for _, athlete := range fx.Athletes {
		if athlete.CoachID != fx.CoachID {
			continue
		}
		d, err := analyzer.Dashboard(ctx, athlete.AthleteID)
		if err != nil {
			fmt.Printf("Dashboard for %s failed: %v\n", athlete.AthleteID, err)
			os.Exit(1)
		}
		dashboards[athlete.AthleteID] = d
	}

	out, err := json.MarshalIndent(output{
		Today:      fx.Today,
		Triage:     result,
		Dashboards: dashboards,
	}, "", "  ")
	if err != nil {
		fmt.Printf("Failed to marshal output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
