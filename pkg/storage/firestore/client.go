package firestore

import (
	"cloud.google.com/go/firestore"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// Client is a typed wrapper over the raw Firestore client. Per-athlete
// data lives in sub-collections of athletes/{id}; check-in documents
// are keyed by day so (athlete, date) upserts are natural overwrites.
type Client struct {
	fs *firestore.Client
}

func NewClient(client *firestore.Client) *Client {
	return &Client{fs: client}
}

func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) Athletes() *Collection[types.AthleteRecord] {
	return &Collection[types.AthleteRecord]{
		Ref:           c.fs.Collection(shared.CollectionAthletes),
		ToFirestore:   AthleteToFirestore,
		FromFirestore: FirestoreToAthlete,
	}
}

// Checkins are sub-collections of athletes: athletes/{id}/checkins/{date}.
// The document ID is the day key, which is what makes re-submission an
// overwrite rather than an append.
func (c *Client) Checkins(athleteID string) *Collection[types.CheckinRecord] {
	return &Collection[types.CheckinRecord]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionCheckins),
		ToFirestore:   CheckinToFirestore,
		FromFirestore: FirestoreToCheckin,
	}
}

// WeightEntries: athletes/{id}/weight_entries/{entryId}.
func (c *Client) WeightEntries(athleteID string) *Collection[types.WeightEntry] {
	return &Collection[types.WeightEntry]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionWeightEntries),
		ToFirestore:   WeightEntryToFirestore,
		FromFirestore: FirestoreToWeightEntry,
	}
}

// NutritionLogs: athletes/{id}/nutrition_logs/{logId}.
func (c *Client) NutritionLogs(athleteID string) *Collection[types.NutritionLog] {
	return &Collection[types.NutritionLog]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionNutritionLogs),
		ToFirestore:   NutritionLogToFirestore,
		FromFirestore: FirestoreToNutritionLog,
	}
}

// Workouts: athletes/{id}/workouts/{workoutId}.
func (c *Client) Workouts(athleteID string) *Collection[types.WorkoutRecord] {
	return &Collection[types.WorkoutRecord]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionWorkouts),
		ToFirestore:   WorkoutToFirestore,
		FromFirestore: FirestoreToWorkout,
	}
}

// Injuries: athletes/{id}/injuries/{injuryId}.
func (c *Client) Injuries(athleteID string) *Collection[types.InjuryRecord] {
	return &Collection[types.InjuryRecord]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionInjuries),
		ToFirestore:   InjuryToFirestore,
		FromFirestore: FirestoreToInjury,
	}
}

// NutritionPlans: athletes/{id}/nutrition_plans/{planId}. At most one
// document has active == true; the writer flips the previous one off.
func (c *Client) NutritionPlans(athleteID string) *Collection[types.NutritionPlan] {
	return &Collection[types.NutritionPlan]{
		Ref:           c.athlete(athleteID).Collection(shared.CollectionNutritionPlans),
		ToFirestore:   NutritionPlanToFirestore,
		FromFirestore: FirestoreToNutritionPlan,
	}
}

func (c *Client) Executions() *Collection[types.ExecutionRecord] {
	return &Collection[types.ExecutionRecord]{
		Ref:           c.fs.Collection(shared.CollectionExecutions),
		ToFirestore:   ExecutionToFirestore,
		FromFirestore: FirestoreToExecution,
	}
}

func (c *Client) athlete(athleteID string) *firestore.DocumentRef {
	return c.fs.Collection(shared.CollectionAthletes).Doc(athleteID)
}
