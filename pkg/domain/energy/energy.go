// Package energy estimates an athlete's maintenance calories (TDEE)
// from the last two weeks of weight and intake logs, derives a
// goal-specific calorie target, detects weight stalls, and checks
// adherence to the target.
//
// The numeric policy is deliberate and preserved exactly: 7700 kcal per
// kg of body-mass change, a 3-distinct-day data floor, and the
// confidence tier cutoffs below are behavioral constants, not free
// parameters. Intermediate math stays unrounded; only display fields
// round.
package energy

import (
	"fmt"
	"math"

	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/domain/trend"
	"github.com/wolfwood370-cell/coach-athlete-hub-sub000/pkg/types"
)

const (
	// LookbackDays is the analysis window, a dense axis ending today.
	LookbackDays = 14
	// TrendAlpha is the EMA factor for the weight trend.
	TrendAlpha = 0.1
	// KcalPerKg converts body-mass change to energy.
	KcalPerKg = 7700
	// MinDistinctDays of both weight and calories before any estimate.
	MinDistinctDays = 3

	highConfidenceDays   = 10
	mediumConfidenceDays = 7

	cutDeficit    = 550 // ~0.5 kg/week loss
	bulkSurplus   = 275 // ~0.25 kg/week gain
	minCutTarget  = 1200
	targetRoundTo = 50

	stallMinWeightDays  = 10
	stallMinWeeks       = 2
	cutStallThreshold   = 0.1 // kg/week
	bulkStallThreshold  = 0.05
	cutStallAdjustment  = -150
	bulkStallAdjustment = 100

	complianceTolerancePct = 5
)

// Goal is the athlete's nutrition goal.
type Goal string

const (
	GoalCut      Goal = "cut"
	GoalMaintain Goal = "maintain"
	GoalBulk     Goal = "bulk"
)

// Confidence grades how much history backs the estimate. Insufficient
// is a successful result state, not an error: the UI always renders.
type Confidence string

const (
	ConfidenceInsufficient Confidence = "insufficient"
	ConfidenceLow          Confidence = "low"
	ConfidenceMedium       Confidence = "medium"
	ConfidenceHigh         Confidence = "high"
)

// DailyObservation is one day on the dense axis after source
// reconciliation: at most one weight and one calorie total per day.
type DailyObservation struct {
	Date     string   `json:"date"`
	Weight   *float64 `json:"weight,omitempty"`
	Calories *float64 `json:"calories,omitempty"`
}

// Observations builds the dense observation series for an axis,
// reconciling the two weight sources with a fixed priority: a check-in
// weight is overwritten by a scale entry reporting the same date.
// Calories sum all logged entries per day. Days outside the axis are
// dropped. This is the single merge step; consumers never re-resolve
// conflicts.
func Observations(axis []string, entries []types.WeightEntry, checkins []types.CheckinRecord, logs []types.NutritionLog) []DailyObservation {
	onAxis := make(map[string]int, len(axis))
	for i, day := range axis {
		onAxis[day] = i
	}

	obs := make([]DailyObservation, len(axis))
	for i, day := range axis {
		obs[i].Date = day
	}

	// Secondary source first, then primary overwrites.
	for _, c := range checkins {
		if i, ok := onAxis[c.Date]; ok && c.WeightKg != nil {
			w := *c.WeightKg
			obs[i].Weight = &w
		}
	}
	for _, e := range entries {
		if i, ok := onAxis[e.Date]; ok && e.WeightKg != nil {
			w := *e.WeightKg
			obs[i].Weight = &w
		}
	}

	for _, l := range logs {
		if i, ok := onAxis[l.Date]; ok && l.Calories != nil {
			total := *l.Calories
			if obs[i].Calories != nil {
				total += *obs[i].Calories
			}
			obs[i].Calories = &total
		}
	}
	return obs
}

// Recommendation is the goal-specific calorie target.
type Recommendation struct {
	Goal           Goal `json:"goal"`
	TargetCalories int  `json:"target_calories"`
}

// Stall reports whether trend weight has stopped moving despite the
// goal, with a suggested kcal adjustment.
type Stall struct {
	IsStalling          bool `json:"is_stalling"`
	SuggestedAdjustment int  `json:"suggested_adjustment,omitempty"`
}

// Compliance compares average intake against the recommended target.
type Compliance struct {
	Compliant   bool    `json:"compliant"`
	VariancePct float64 `json:"variance_pct"`
	Message     string  `json:"message"`
}

// Result is the full TDEE analysis. Derived fields are nil in the
// insufficient-data state; chart data is returned regardless.
type Result struct {
	Confidence          Confidence               `json:"confidence"`
	DaysWithWeight      int                      `json:"days_with_weight"`
	DaysWithCalories    int                      `json:"days_with_calories"`
	AverageIntake       *int                     `json:"average_intake,omitempty"`
	EstimatedTDEE       *int                     `json:"estimated_tdee,omitempty"`
	WeightChangePerWeek *float64                 `json:"weight_change_per_week,omitempty"`
	TrendPoints         []trend.WeightTrendPoint `json:"trend_points,omitempty"`
	Recommendation      *Recommendation          `json:"recommendation,omitempty"`
	Stall               *Stall                   `json:"stall,omitempty"`
	Compliance          *Compliance              `json:"compliance,omitempty"`
}

// Estimate solves the energy-balance equation over a dense
// LookbackDays observation series ending today. obs must be exactly
// one entry per axis day, oldest first (see Observations).
func Estimate(obs []DailyObservation, goal Goal) Result {
	axis := make([]string, len(obs))
	rawWeights := make([]*float64, len(obs))
	daysWithWeight := 0
	daysWithCalories := 0
	totalCalories := 0.0
	firstWeightIdx, lastWeightIdx := -1, -1

	for i, o := range obs {
		axis[i] = o.Date
		rawWeights[i] = o.Weight
		if o.Weight != nil {
			daysWithWeight++
			if firstWeightIdx < 0 {
				firstWeightIdx = i
			}
			lastWeightIdx = i
		}
		if o.Calories != nil {
			daysWithCalories++
			totalCalories += *o.Calories
		}
	}

	res := Result{
		DaysWithWeight:   daysWithWeight,
		DaysWithCalories: daysWithCalories,
		TrendPoints:      trend.Points(axis, rawWeights, TrendAlpha),
	}

	if daysWithWeight < MinDistinctDays || daysWithCalories < MinDistinctDays {
		res.Confidence = ConfidenceInsufficient
		return res
	}

	averageIntake := totalCalories / float64(daysWithCalories)

	smoothed := trend.Smooth(rawWeights, TrendAlpha)
	startTrend, endTrend, trendOK := positiveSpan(smoothed)
	if !trendOK {
		// Weights present but none positive: nothing to solve against.
		res.Confidence = ConfidenceInsufficient
		return res
	}

	// Measured span, not calendar span: days between the first and last
	// raw weight observations, clamped so the division below is safe.
	actualDays := lastWeightIdx - firstWeightIdx
	if actualDays < 1 {
		actualDays = 1
	}

	weightChangePerWeek := (endTrend - startTrend) / float64(actualDays) * 7

	// 1 kg of mass change ~= 7700 kcal. Weight lost means the realized
	// deficit is added back onto intake to recover true maintenance;
	// weight gained means surplus was stored, so maintenance sits below
	// raw intake.
	estimatedTDEE := averageIntake + (startTrend-endTrend)*KcalPerKg/float64(actualDays)

	avgIntakeRounded := int(math.Round(averageIntake))
	tdeeRounded := int(math.Round(estimatedTDEE))
	res.AverageIntake = &avgIntakeRounded
	res.EstimatedTDEE = &tdeeRounded
	res.WeightChangePerWeek = &weightChangePerWeek

	switch {
	case daysWithWeight >= highConfidenceDays && daysWithCalories >= highConfidenceDays:
		res.Confidence = ConfidenceHigh
	case daysWithWeight >= mediumConfidenceDays && daysWithCalories >= mediumConfidenceDays:
		res.Confidence = ConfidenceMedium
	default:
		res.Confidence = ConfidenceLow
	}

	res.Recommendation = recommend(estimatedTDEE, goal)
	res.Stall = detectStall(goal, weightChangePerWeek, daysWithWeight, actualDays)
	res.Compliance = checkCompliance(averageIntake, res.Recommendation)
	return res
}

// positiveSpan returns the first and last positive values of the
// smoothed series.
func positiveSpan(smoothed []float64) (start, end float64, ok bool) {
	for _, v := range smoothed {
		if v > 0 {
			if !ok {
				start = v
				ok = true
			}
			end = v
		}
	}
	return start, end, ok
}

func roundToNearest(v float64, step int) int {
	return int(math.Round(v/float64(step))) * step
}

func recommend(tdee float64, goal Goal) *Recommendation {
	var target int
	switch goal {
	case GoalCut:
		target = roundToNearest(tdee-cutDeficit, targetRoundTo)
		if target < minCutTarget {
			target = minCutTarget
		}
	case GoalBulk:
		target = roundToNearest(tdee+bulkSurplus, targetRoundTo)
	case GoalMaintain:
		target = roundToNearest(tdee, targetRoundTo)
	default:
		return nil
	}
	return &Recommendation{Goal: goal, TargetCalories: target}
}

// detectStall is only meaningful for directional goals with enough
// weight history and at least two full measured weeks.
func detectStall(goal Goal, weightChangePerWeek float64, daysWithWeight, actualDays int) *Stall {
	if goal != GoalCut && goal != GoalBulk {
		return nil
	}
	if daysWithWeight < stallMinWeightDays {
		return nil
	}
	if actualDays/7 < stallMinWeeks {
		return &Stall{}
	}

	switch goal {
	case GoalCut:
		if math.Abs(weightChangePerWeek) < cutStallThreshold {
			return &Stall{IsStalling: true, SuggestedAdjustment: cutStallAdjustment}
		}
	case GoalBulk:
		if math.Abs(weightChangePerWeek) < bulkStallThreshold {
			return &Stall{IsStalling: true, SuggestedAdjustment: bulkStallAdjustment}
		}
	}
	return &Stall{}
}

func checkCompliance(averageIntake float64, rec *Recommendation) *Compliance {
	if rec == nil || rec.TargetCalories == 0 {
		return nil
	}
	variance := (averageIntake - float64(rec.TargetCalories)) / float64(rec.TargetCalories) * 100
	c := &Compliance{VariancePct: variance}
	if math.Abs(variance) <= complianceTolerancePct {
		c.Compliant = true
		c.Message = "on target"
		return c
	}
	pct := int(math.Round(math.Abs(variance)))
	direction := "under"
	if variance > 0 {
		direction = "over"
	}
	c.Message = fmt.Sprintf("%d%% %s target", pct, direction)
	return c
}
