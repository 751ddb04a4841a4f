package httputil

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, 200, map[string]int{"score": 87})

	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	var body map[string]int
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["score"] != 87 {
		t.Errorf("body = %v", body)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, 404, "athlete not found")

	var body ErrorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error != "athlete not found" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkins", strings.NewReader(`{"sleep_hours": 7, "bogus": 1}`))
	var v struct {
		SleepHours float64 `json:"sleep_hours"`
	}
	if err := DecodeJSON(req, &v); err == nil {
		t.Error("unknown fields should be rejected")
	}
}

func TestDecodeJSON_RejectsTrailingDocument(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkins", strings.NewReader(`{"sleep_hours": 7}{"again": true}`))
	var v struct {
		SleepHours float64 `json:"sleep_hours"`
	}
	if err := DecodeJSON(req, &v); err == nil {
		t.Error("trailing JSON documents should be rejected")
	}
}

func TestDecodeJSON_Valid(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkins", strings.NewReader(`{"sleep_hours": 7.5}`))
	var v struct {
		SleepHours float64 `json:"sleep_hours"`
	}
	if err := DecodeJSON(req, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.SleepHours != 7.5 {
		t.Errorf("sleep hours = %v", v.SleepHours)
	}
}
