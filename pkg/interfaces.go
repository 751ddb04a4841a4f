package shared

import (
	"context"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// --- Persistence Interfaces ---

// Database is the time-ranged, athlete-keyed read/write boundary the
// analytics layer depends on. Date ranges are inclusive ISO day keys.
// The engine itself performs no I/O; the calling layer fetches every
// slice up front.
type Database interface {
	GetAthlete(ctx context.Context, athleteID string) (*types.AthleteRecord, error)
	ListRoster(ctx context.Context, coachID string) ([]*types.AthleteRecord, error)

	ListWorkouts(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error)
	ListWeightEntries(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error)
	ListNutritionLogs(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error)
	ListCheckins(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error)
	GetCheckin(ctx context.Context, athleteID, day string) (*types.CheckinRecord, error)

	// UpsertCheckin must honor the (athlete, date) idempotency key:
	// one record per day, re-submission overwrites.
	UpsertCheckin(ctx context.Context, record *types.CheckinRecord) error

	ListOpenInjuries(ctx context.Context, athleteID string) ([]types.InjuryRecord, error)

	// GetActivePlan returns the single active nutrition plan, or nil
	// when the athlete has none.
	GetActivePlan(ctx context.Context, athleteID string) (*types.NutritionPlan, error)

	SetExecution(ctx context.Context, record *types.ExecutionRecord) error
	UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error
}

// --- Messaging Interfaces ---

type Publisher interface {
	PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error)
}

// --- Storage Interfaces ---

type BlobStore interface {
	Write(ctx context.Context, bucket, object string, data []byte) error
	Read(ctx context.Context, bucket, object string) ([]byte, error)
}
