package rostertriage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/analysis"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/bootstrap"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/framework"
	infrapubsub "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/infrastructure/pubsub"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

var (
	svc     *bootstrap.Service
	svcOnce sync.Once
	svcErr  error
)

func init() {
	functions.CloudEvent("TriageRoster", TriageRoster)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	svcOnce.Do(func() {
		svc, svcErr = bootstrap.NewService(ctx)
	})
	return svc, svcErr
}

// TriageRoster is the entry point
func TriageRoster(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("roster-triage", svc, triageHandler)(ctx, e)
}

// refreshRequest is the Pub/Sub payload asking for a roster refresh.
type refreshRequest struct {
	CoachID string `json:"coach_id"`
}

// snapshot is the persisted triage output, one object per refresh.
type snapshot struct {
	CoachID     string      `json:"coach_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Assessed    int         `json:"assessed"`
	Triage      interface{} `json:"triage"`
}

// triageHandler contains the business logic
func triageHandler(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
	var msg types.PubSubMessage
	if err := e.DataAs(&msg); err != nil {
		return nil, fmt.Errorf("event.DataAs: %v", err)
	}

	var req refreshRequest
	if err := json.Unmarshal(msg.Message.Data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal refresh request: %v", err)
	}
	if req.CoachID == "" {
		return nil, fmt.Errorf("missing coach_id in payload")
	}

	fwCtx.Logger.Info("Starting roster triage", "coach_id", req.CoachID)

	analyzer := analysis.New(fwCtx.Service.DB)
	result, err := analyzer.Roster(ctx, req.CoachID)
	if err != nil {
		return nil, fmt.Errorf("triage roster: %w", err)
	}

	assessed := len(result.NeedsAttention) + len(result.Healthy)
	fwCtx.Logger.Info("Roster assessed",
		"assessed", assessed,
		"needs_attention", len(result.NeedsAttention))

	snap := snapshot{
		CoachID:     req.CoachID,
		GeneratedAt: time.Now().UTC(),
		Assessed:    assessed,
		Triage:      result,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %v", err)
	}

	bucket := fwCtx.Service.Config.SnapshotBucket
	objectName := ""
	if bucket != "" {
		objectName = fmt.Sprintf("triage/%s/%s.json", req.CoachID, snap.GeneratedAt.Format("2006-01-02T15-04-05Z"))
		if err := fwCtx.Service.Store.Write(ctx, bucket, objectName, data); err != nil {
			return nil, fmt.Errorf("write snapshot: %w", err)
		}
		fwCtx.Logger.Info("Snapshot written", "bucket", bucket, "object", objectName)
	} else {
		fwCtx.Logger.Warn("No snapshot bucket configured, skipping persistence")
	}

	completed, err := infrapubsub.NewCloudEvent(
		infrapubsub.SourceRosterTriage,
		infrapubsub.EventTypeTriageCompleted,
		map[string]interface{}{
			"coach_id":        req.CoachID,
			"assessed":        assessed,
			"needs_attention": len(result.NeedsAttention),
			"snapshot_object": objectName,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("build completed event: %v", err)
	}
	if _, err := fwCtx.Service.Pub.PublishCloudEvent(ctx, shared.TopicTriageCompleted, completed); err != nil {
		return nil, fmt.Errorf("publish completed event: %w", err)
	}

	return map[string]interface{}{
		"coach_id":        req.CoachID,
		"assessed":        assessed,
		"needs_attention": len(result.NeedsAttention),
	}, nil
}
