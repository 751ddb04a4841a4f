package mocks

import (
	"context"
	"fmt"

	"github.com/cloudevents/sdk-go/v2/event"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

// --- Mock Database ---
type MockDatabase struct {
	GetAthleteFunc        func(ctx context.Context, athleteID string) (*types.AthleteRecord, error)
	ListRosterFunc        func(ctx context.Context, coachID string) ([]*types.AthleteRecord, error)
	ListWorkoutsFunc      func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error)
	ListWeightEntriesFunc func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error)
	ListNutritionLogsFunc func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error)
	ListCheckinsFunc      func(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error)
	GetCheckinFunc        func(ctx context.Context, athleteID, day string) (*types.CheckinRecord, error)
	UpsertCheckinFunc     func(ctx context.Context, record *types.CheckinRecord) error
	ListOpenInjuriesFunc  func(ctx context.Context, athleteID string) ([]types.InjuryRecord, error)
	GetActivePlanFunc     func(ctx context.Context, athleteID string) (*types.NutritionPlan, error)
	SetExecutionFunc      func(ctx context.Context, record *types.ExecutionRecord) error
	UpdateExecutionFunc   func(ctx context.Context, id string, data map[string]interface{}) error
}

func (m *MockDatabase) GetAthlete(ctx context.Context, athleteID string) (*types.AthleteRecord, error) {
	if m.GetAthleteFunc != nil {
		return m.GetAthleteFunc(ctx, athleteID)
	}
	return nil, fmt.Errorf("athlete not found")
}
func (m *MockDatabase) ListRoster(ctx context.Context, coachID string) ([]*types.AthleteRecord, error) {
	if m.ListRosterFunc != nil {
		return m.ListRosterFunc(ctx, coachID)
	}
	return nil, nil
}
func (m *MockDatabase) ListWorkouts(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WorkoutRecord, error) {
	if m.ListWorkoutsFunc != nil {
		return m.ListWorkoutsFunc(ctx, athleteID, fromDay, toDay)
	}
	return nil, nil
}
func (m *MockDatabase) ListWeightEntries(ctx context.Context, athleteID, fromDay, toDay string) ([]types.WeightEntry, error) {
	if m.ListWeightEntriesFunc != nil {
		return m.ListWeightEntriesFunc(ctx, athleteID, fromDay, toDay)
	}
	return nil, nil
}
func (m *MockDatabase) ListNutritionLogs(ctx context.Context, athleteID, fromDay, toDay string) ([]types.NutritionLog, error) {
	if m.ListNutritionLogsFunc != nil {
		return m.ListNutritionLogsFunc(ctx, athleteID, fromDay, toDay)
	}
	return nil, nil
}
func (m *MockDatabase) ListCheckins(ctx context.Context, athleteID, fromDay, toDay string) ([]types.CheckinRecord, error) {
	if m.ListCheckinsFunc != nil {
		return m.ListCheckinsFunc(ctx, athleteID, fromDay, toDay)
	}
	return nil, nil
}
func (m *MockDatabase) GetCheckin(ctx context.Context, athleteID, day string) (*types.CheckinRecord, error) {
	if m.GetCheckinFunc != nil {
		return m.GetCheckinFunc(ctx, athleteID, day)
	}
	return nil, nil
}
func (m *MockDatabase) UpsertCheckin(ctx context.Context, record *types.CheckinRecord) error {
	if m.UpsertCheckinFunc != nil {
		return m.UpsertCheckinFunc(ctx, record)
	}
	return nil
}
func (m *MockDatabase) ListOpenInjuries(ctx context.Context, athleteID string) ([]types.InjuryRecord, error) {
	if m.ListOpenInjuriesFunc != nil {
		return m.ListOpenInjuriesFunc(ctx, athleteID)
	}
	return nil, nil
}
func (m *MockDatabase) GetActivePlan(ctx context.Context, athleteID string) (*types.NutritionPlan, error) {
	if m.GetActivePlanFunc != nil {
		return m.GetActivePlanFunc(ctx, athleteID)
	}
	return nil, nil
}
func (m *MockDatabase) SetExecution(ctx context.Context, record *types.ExecutionRecord) error {
	if m.SetExecutionFunc != nil {
		return m.SetExecutionFunc(ctx, record)
	}
	return nil
}
func (m *MockDatabase) UpdateExecution(ctx context.Context, id string, data map[string]interface{}) error {
	if m.UpdateExecutionFunc != nil {
		return m.UpdateExecutionFunc(ctx, id, data)
	}
	return nil
}

// --- Mock Publisher ---
type MockPublisher struct {
	PublishCloudEventFunc func(ctx context.Context, topic string, e event.Event) (string, error)
}

func (m *MockPublisher) PublishCloudEvent(ctx context.Context, topic string, e event.Event) (string, error) {
	if m.PublishCloudEventFunc != nil {
		return m.PublishCloudEventFunc(ctx, topic, e)
	}
	return "msg-id", nil
}

// --- Mock Storage ---
type MockBlobStore struct {
	WriteFunc func(ctx context.Context, bucket, object string, data []byte) error
	ReadFunc  func(ctx context.Context, bucket, object string) ([]byte, error)
}

func (m *MockBlobStore) Write(ctx context.Context, bucket, object string, data []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, bucket, object, data)
	}
	return nil
}
func (m *MockBlobStore) Read(ctx context.Context, bucket, object string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, bucket, object)
	}
	return []byte("mock-data"), nil
}
