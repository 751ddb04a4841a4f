package execution

import (
	"context"
	"time"

	"github.com/google/uuid"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

const (
	StatusStarted = "started"
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Options carries optional metadata attached to an execution record.
type Options struct {
	AthleteID   string
	TriggerType string
}

// LogStart writes a new execution record and returns its ID.
func LogStart(ctx context.Context, db shared.Database, serviceName string, opts Options) (string, error) {
	execID := uuid.New().String()
	record := &types.ExecutionRecord{
		ExecutionID: execID,
		ServiceName: serviceName,
		AthleteID:   opts.AthleteID,
		TriggerType: opts.TriggerType,
		Status:      StatusStarted,
		StartedAt:   time.Now().UTC(),
	}
	if err := db.SetExecution(ctx, record); err != nil {
		return execID, err
	}
	return execID, nil
}

// LogSuccess marks the execution finished with its handler outputs.
func LogSuccess(ctx context.Context, db shared.Database, execID string, outputs interface{}) error {
	now := time.Now().UTC()
	data := map[string]interface{}{
		"status":      StatusSuccess,
		"finished_at": now,
	}
	if m, ok := outputs.(map[string]interface{}); ok && len(m) > 0 {
		data["outputs"] = m
	}
	return db.UpdateExecution(ctx, execID, data)
}

// LogFailure marks the execution failed, keeping any partial outputs.
func LogFailure(ctx context.Context, db shared.Database, execID string, handlerErr error, outputs interface{}) error {
	now := time.Now().UTC()
	data := map[string]interface{}{
		"status":      StatusFailure,
		"error":       handlerErr.Error(),
		"finished_at": now,
	}
	if m, ok := outputs.(map[string]interface{}); ok && len(m) > 0 {
		data["outputs"] = m
	}
	return db.UpdateExecution(ctx, execID, data)
}
