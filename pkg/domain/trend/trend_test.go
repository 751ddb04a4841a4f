package trend

import (
	"math"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestSmooth_AllUnknownEmitsNothing(t *testing.T) {
	out := Smooth([]*float64{nil, nil, nil}, 0.1)
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}

func TestSmooth_FirstKnownValueSeeds(t *testing.T) {
	out := Smooth([]*float64{nil, nil, ptr(80.0)}, 0.1)
	if len(out) != 1 {
		t.Fatalf("expected 1 value, got %d", len(out))
	}
	if out[0] != 80.0 {
		t.Errorf("seed = %v, want 80.0", out[0])
	}
}

func TestSmooth_ConstantInputIsIdempotent(t *testing.T) {
	series := []*float64{ptr(75.5), ptr(75.5), ptr(75.5), ptr(75.5), ptr(75.5)}
	out := Smooth(series, 0.25)
	if len(out) != len(series) {
		t.Fatalf("expected %d values, got %d", len(series), len(out))
	}
	for i, v := range out {
		if math.Abs(v-75.5) > 1e-12 {
			t.Errorf("out[%d] = %v, want 75.5", i, v)
		}
	}
}

func TestSmooth_GapsCarryForward(t *testing.T) {
	out := Smooth([]*float64{ptr(80.0), nil, nil, ptr(79.0)}, 0.5)
	if len(out) != 4 {
		t.Fatalf("expected 4 values, got %d", len(out))
	}
	if out[1] != 80.0 || out[2] != 80.0 {
		t.Errorf("gaps should repeat previous EMA, got %v", out)
	}
	if math.Abs(out[3]-79.5) > 1e-12 {
		t.Errorf("out[3] = %v, want 79.5", out[3])
	}
}

func TestSmooth_Recurrence(t *testing.T) {
	out := Smooth([]*float64{ptr(100.0), ptr(110.0)}, 0.2)
	// 0.2*110 + 0.8*100 = 102
	if math.Abs(out[1]-102.0) > 1e-12 {
		t.Errorf("out[1] = %v, want 102", out[1])
	}
}

func TestPoints_AlignsWithAxisTail(t *testing.T) {
	dates := []string{"2026-03-01", "2026-03-02", "2026-03-03", "2026-03-04"}
	raw := []*float64{nil, ptr(80.0), nil, ptr(79.0)}

	points := Points(dates, raw, 0.5)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[0].Date != "2026-03-02" || points[0].DayIndex != 2 {
		t.Errorf("first point = %+v, want date 2026-03-02 index 2", points[0])
	}
	if points[1].RawWeight != nil {
		t.Error("gap day should keep nil raw weight")
	}
	if points[2].TrendWeight != 79.5 {
		t.Errorf("trend = %v, want 79.5", points[2].TrendWeight)
	}
}

func TestPoints_EmptyWhenNoData(t *testing.T) {
	points := Points([]string{"2026-03-01"}, []*float64{nil}, 0.1)
	if points != nil {
		t.Fatalf("expected nil, got %v", points)
	}
}
