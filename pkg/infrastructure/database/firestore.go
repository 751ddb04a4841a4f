package database

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storage "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/storage/firestore"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// FirestoreAdapter provides database operations using Firestore.
// It wraps our typed storage client.
type FirestoreAdapter struct {
	Client  *firestore.Client
	storage *storage.Client // internal typed wrapper
}

func NewFirestoreAdapter(client *firestore.Client) *FirestoreAdapter {
	return &FirestoreAdapter{
		Client:  client,
		storage: storage.NewClient(client),
	}
}

func (a *FirestoreAdapter) GetAthlete(ctx context.Context, athleteID string) (*types.AthleteRecord, error) {
	return a.storage.Athletes().Doc(athleteID).Get(ctx)
}

func (a *FirestoreAdapter) ListRoster(ctx context.Context, coachID string) ([]*types.AthleteRecord, error) {
	return a.storage.Athletes().WhereEq(ctx, "coach_id", coachID)
}

func (a *FirestoreAdapter) ListWorkouts(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error) {
	rows, err := a.storage.Workouts(athleteID).DateRange(ctx, "date", fromDay, toDay)
	return deref(rows), err
}

func (a *FirestoreAdapter) ListWeightEntries(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error) {
	rows, err := a.storage.WeightEntries(athleteID).DateRange(ctx, "date", fromDay, toDay)
	return deref(rows), err
}

func (a *FirestoreAdapter) ListNutritionLogs(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error) {
	rows, err := a.storage.NutritionLogs(athleteID).DateRange(ctx, "date", fromDay, toDay)
	return deref(rows), err
}

func (a *FirestoreAdapter) ListCheckins(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error) {
	rows, err := a.storage.Checkins(athleteID).DateRange(ctx, "date", fromDay, toDay)
	return deref(rows), err
}

// GetCheckin returns nil (no error) when the athlete has no check-in
// for the day; a missing check-in is expected, not exceptional.
func (a *FirestoreAdapter) GetCheckin(ctx context.Context, athleteID, day string) (*types.CheckinRecord, error) {
	rec, err := a.storage.Checkins(athleteID).Doc(day).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// UpsertCheckin writes the check-in under the day-keyed document ID,
// so one record per (athlete, date) holds and re-submission overwrites.
func (a *FirestoreAdapter) UpsertCheckin(ctx context.Context, record *types.CheckinRecord) error {
	return a.storage.Checkins(record.AthleteID).Doc(record.Date).Set(ctx, record)
}

func (a *FirestoreAdapter) ListOpenInjuries(ctx context.Context, athleteID string) ([]types.InjuryRecord, error) {
	all, err := a.storage.Injuries(athleteID).WhereEq(ctx, "athlete_id", athleteID)
	if err != nil {
		return nil, err
	}
	var open []types.InjuryRecord
	for _, r := range all {
		if r.Open() {
			open = append(open, *r)
		}
	}
	return open, nil
}

func (a *FirestoreAdapter) GetActivePlan(ctx context.Context, athleteID string) (*types.NutritionPlan, error) {
	plans, err := a.storage.NutritionPlans(athleteID).WhereEq(ctx, "active", true)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, nil
	}
	// Write path keeps at most one plan active.
	return plans[0], nil
}

func (a *FirestoreAdapter) SetExecution(ctx context.Context, record *types.ExecutionRecord) error {
	return a.storage.Executions().Doc(record.ExecutionID).Set(ctx, record)
}

func (a *FirestoreAdapter) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	return a.storage.Executions().Doc(id).Update(ctx, data)
}

func deref[T any](rows []*T) []T {
	if rows == nil {
		return nil
	}
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = *r
	}
	return out
}
