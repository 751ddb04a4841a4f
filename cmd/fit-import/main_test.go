package main

import (
	"testing"
	"time"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/workload"
)

func TestSessionRecord_TrainingStressScore(t *testing.T) {
	start := time.Date(2025, 3, 28, 6, 30, 0, 0, time.UTC)

	record := sessionRecord("ath_1", start, 3600, 553, 7)

	if record.Date != "2025-03-28" {
		t.Errorf("Expected date 2025-03-28, got %q", record.Date)
	}
	if record.SessionLoad == nil || *record.SessionLoad != 55.3 {
		t.Errorf("Expected session load 55.3 from TSS, got %v", record.SessionLoad)
	}
	if record.PerceivedExertion != nil {
		t.Error("RPE must not be stamped when the file carries its own load")
	}
	if got := workload.SessionLoad(record); got != 55.3 {
		t.Errorf("Expected explicit load to win downstream, got %v", got)
	}
}

func TestSessionRecord_RPEFallback(t *testing.T) {
	start := time.Date(2025, 3, 28, 6, 30, 0, 0, time.UTC)

	record := sessionRecord("ath_1", start, 3600, 0xFFFF, 7)

	if record.SessionLoad != nil {
		t.Error("Expected no explicit load for an unset TSS")
	}
	if record.PerceivedExertion == nil || *record.PerceivedExertion != 7 {
		t.Errorf("Expected RPE 7 stamped, got %v", record.PerceivedExertion)
	}
	if record.DurationSeconds == nil || *record.DurationSeconds != 3600 {
		t.Errorf("Expected duration 3600s, got %v", record.DurationSeconds)
	}
	// sRPE x minutes: 7 x 60 = 420.
	if got := workload.SessionLoad(record); got != 420 {
		t.Errorf("Expected derived load 420, got %v", got)
	}
}

func TestSessionRecord_NoLoadSignal(t *testing.T) {
	start := time.Date(2025, 3, 28, 6, 30, 0, 0, time.UTC)

	record := sessionRecord("ath_1", start, 1800, 0xFFFF, 0)

	if record.SessionLoad != nil || record.PerceivedExertion != nil {
		t.Error("Expected neither load nor RPE without a signal")
	}
	if got := workload.SessionLoad(record); got != 0 {
		t.Errorf("Expected zero load contribution, got %v", got)
	}
}
