package checkinrecorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/cloudevents/sdk-go/v2/event"

	shared "github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/bootstrap"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/framework"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/testing/mocks"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

func checkinEvent(t *testing.T, payload interface{}) event.Event {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	var msg types.PubSubMessage
	msg.Message.Data = data

	e := event.New()
	e.SetType("google.cloud.pubsub.topic.v1.messagePublished")
	e.SetSource("//pubsub")
	e.SetData(event.ApplicationJSON, msg)
	return e
}

func testService(db *mocks.MockDatabase, pub *mocks.MockPublisher) *bootstrap.Service {
	return &bootstrap.Service{
		DB:     db,
		Pub:    pub,
		Store:  &mocks.MockBlobStore{},
		Config: &bootstrap.Config{},
	}
}

func testContext(svc *bootstrap.Service) *framework.FrameworkContext {
	return &framework.FrameworkContext{
		Service:     svc,
		Logger:      slog.Default(),
		ExecutionID: "exec-test",
	}
}

func TestRecordHandler_UpsertsAndPublishes(t *testing.T) {
	var stored *types.CheckinRecord
	var publishedTopic string

	db := &mocks.MockDatabase{
		UpsertCheckinFunc: func(ctx context.Context, record *types.CheckinRecord) error {
			stored = record
			return nil
		},
	}
	pub := &mocks.MockPublisher{
		PublishCloudEventFunc: func(ctx context.Context, topic string, e event.Event) (string, error) {
			publishedTopic = topic
			return "msg-1", nil
		},
	}

	e := checkinEvent(t, types.CheckinRecord{
		AthleteID:    "ath_1",
		Date:         "2025-03-28",
		SleepHours:   7.5,
		SleepQuality: 3,
		StressLevel:  0,
	})

	outputs, err := recordHandler(context.Background(), e, testContext(testService(db, pub)))
	if err != nil {
		t.Fatalf("Handler failed: %v", err)
	}

	if stored == nil {
		t.Fatal("Expected checkin to be upserted")
	}
	if stored.Readiness == nil || *stored.Readiness != 100 {
		t.Errorf("Expected stored readiness 100, got %v", stored.Readiness)
	}
	if stored.SubmittedAt.IsZero() {
		t.Error("Expected submitted_at to be stamped")
	}
	if publishedTopic != shared.TopicCheckinRecorded {
		t.Errorf("Expected publish to %s, got %s", shared.TopicCheckinRecorded, publishedTopic)
	}

	out := outputs.(map[string]interface{})
	if out["readiness"] != 100 {
		t.Errorf("Expected readiness=100 in outputs, got %v", out["readiness"])
	}
}

func TestRecordHandler_RejectsInvalid(t *testing.T) {
	db := &mocks.MockDatabase{
		UpsertCheckinFunc: func(ctx context.Context, record *types.CheckinRecord) error {
			t.Error("Invalid checkin must not reach storage")
			return nil
		},
	}
	svc := testService(db, &mocks.MockPublisher{})

	cases := []types.CheckinRecord{
		{Date: "2025-03-28", SleepQuality: 2},
		{AthleteID: "ath_1", Date: "not-a-date", SleepQuality: 2},
		{AthleteID: "ath_1", Date: "2025-03-28", SleepQuality: 0},
		{AthleteID: "ath_1", Date: "2025-03-28", SleepQuality: 4},
		{AthleteID: "ath_1", Date: "2025-03-28", SleepQuality: 2, StressLevel: 11},
		{AthleteID: "ath_1", Date: "2025-03-28", SleepQuality: 2, Soreness: map[string]int{"quads": 5}},
	}

	for _, c := range cases {
		e := checkinEvent(t, c)
		if _, err := recordHandler(context.Background(), e, testContext(svc)); err == nil {
			t.Errorf("Expected rejection for %+v", c)
		}
	}
}

func TestRecordHandler_AcceptsFullRecord(t *testing.T) {
	mood := 7
	var stored *types.CheckinRecord
	db := &mocks.MockDatabase{
		UpsertCheckinFunc: func(ctx context.Context, record *types.CheckinRecord) error {
			stored = record
			return nil
		},
	}

	e := checkinEvent(t, types.CheckinRecord{
		AthleteID:    "ath_1",
		Date:         "2025-03-28",
		SleepHours:   8,
		SleepQuality: 2,
		StressLevel:  10,
		Mood:         &mood,
		Soreness:     map[string]int{"quads": 3, "calves": 1},
	})
	if _, err := recordHandler(context.Background(), e, testContext(testService(db, &mocks.MockPublisher{}))); err != nil {
		t.Fatalf("Expected full record to be accepted, got %v", err)
	}
	if stored == nil || stored.Soreness["quads"] != 3 {
		t.Error("Expected soreness map to survive the round trip")
	}
}
