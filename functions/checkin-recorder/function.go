package checkinrecorder

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/cloudevents/sdk-go/v2/event"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/bootstrap"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/readiness"
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
	functions.CloudEvent("RecordCheckin", RecordCheckin)
}

func initService(ctx context.Context) (*bootstrap.Service, error) {
	svcOnce.Do(func() {
		svc, svcErr = bootstrap.NewService(ctx)
	})
	return svc, svcErr
}

// RecordCheckin is the entry point
func RecordCheckin(ctx context.Context, e event.Event) error {
	svc, err := initService(ctx)
	if err != nil {
		return fmt.Errorf("service init failed: %v", err)
	}
	return framework.WrapCloudEvent("checkin-recorder", svc, recordHandler)(ctx, e)
}

// recordHandler contains the business logic
func recordHandler(ctx context.Context, e event.Event, fwCtx *framework.FrameworkContext) (interface{}, error) {
	var msg types.PubSubMessage
	if err := e.DataAs(&msg); err != nil {
		return nil, fmt.Errorf("event.DataAs: %v", err)
	}

	var checkin types.CheckinRecord
	if err := json.Unmarshal(msg.Message.Data, &checkin); err != nil {
		return nil, fmt.Errorf("unmarshal checkin: %v", err)
	}
	if err := checkin.Validate(); err != nil {
		return nil, fmt.Errorf("invalid checkin: %w", err)
	}

	// Readiness is computed once at record time so dashboards and
	// triage read a stored score instead of re-deriving it.
	score := (readiness.MVPScorer{}).Score(readiness.Input{
		SleepHours:   checkin.SleepHours,
		SleepQuality: checkin.SleepQuality,
		StressLevel:  checkin.StressLevel,
		HasPain:      checkin.HasPain,
		Soreness:     checkin.Soreness,
	})
	checkin.Readiness = &score
	if checkin.SubmittedAt.IsZero() {
		checkin.SubmittedAt = time.Now().UTC()
	}

	fwCtx.Logger.Info("Recording checkin", "date", checkin.Date, "readiness", score)

	if err := fwCtx.Service.DB.UpsertCheckin(ctx, &checkin); err != nil {
		return nil, fmt.Errorf("upsert checkin: %w", err)
	}

	recorded, err := infrapubsub.NewCloudEvent(
		infrapubsub.SourceCheckinRecorder,
		infrapubsub.EventTypeCheckinRecorded,
		map[string]interface{}{
			"athlete_id": checkin.AthleteID,
			"date":       checkin.Date,
			"readiness":  score,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("build recorded event: %v", err)
	}
	if _, err := fwCtx.Service.Pub.PublishCloudEvent(ctx, shared.TopicCheckinRecorded, recorded); err != nil {
		return nil, fmt.Errorf("publish recorded event: %w", err)
	}

	return map[string]interface{}{
		"athlete_id": checkin.AthleteID,
		"date":       checkin.Date,
		"readiness":  score,
	}, nil
}
