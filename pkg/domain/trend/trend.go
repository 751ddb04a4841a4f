// Package trend smooths sparse daily series with an exponential moving
// average. It underpins the weight trend chart and the TDEE estimator,
// which both need a stable signal out of noisy, gap-ridden scale data.
package trend

// Smooth applies an EMA over a sparse series. Leading unknown values
// emit nothing; the first known value seeds the EMA; later unknowns
// carry the previous EMA forward. alpha is the smoothing factor in
// (0,1] - 0.1-0.3 for multi-week trends.
//
// Output length is at most len(series), shorter only when leading
// values are all unknown. Deterministic, no side effects.
func Smooth(series []*float64, alpha float64) []float64 {
	out := make([]float64, 0, len(series))
	seeded := false
	var ema float64

	for _, v := range series {
		if !seeded {
			if v == nil {
				continue
			}
			ema = *v
			seeded = true
			out = append(out, ema)
			continue
		}
		if v != nil {
			ema = alpha**v + (1-alpha)*ema
		}
		out = append(out, ema)
	}
	return out
}

// WeightTrendPoint is one chart row: the raw observation (if any) for a
// day alongside its smoothed trend value. DayIndex is the 1-based
// position on the dense axis.
type WeightTrendPoint struct {
	Date        string   `json:"date"`
	DayIndex    int      `json:"day_index"`
	RawWeight   *float64 `json:"raw_weight,omitempty"`
	TrendWeight float64  `json:"trend_weight"`
}

// Points pairs a dense day axis and its raw weights with the smoothed
// series. Days before the first known weight produce no point, matching
// Smooth's seeding rule. dates and raw must be the same length.
func Points(dates []string, raw []*float64, alpha float64) []WeightTrendPoint {
	smoothed := Smooth(raw, alpha)
	if len(smoothed) == 0 {
		return nil
	}

	// Smooth drops leading unknowns, so the smoothed series aligns with
	// the tail of the axis starting at the first known value.
	offset := len(dates) - len(smoothed)
	points := make([]WeightTrendPoint, 0, len(smoothed))
	for i, tw := range smoothed {
		idx := offset + i
		points = append(points, WeightTrendPoint{
			Date:        dates[idx],
			DayIndex:    idx + 1,
			RawWeight:   raw[idx],
			TrendWeight: tw,
		})
	}
	return points
}
