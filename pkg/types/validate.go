package types

import (
	"fmt"
	"time"
)

// Validate enforces the check-in value ranges before anything is
// stored: day key parseable, sleep quality on the 3-point scale,
// stress 0-10, soreness severities 1-3.
func (c *CheckinRecord) Validate() error {
	if c.AthleteID == "" {
		return fmt.Errorf("missing athlete_id")
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", c.Date)
	}
	if c.SleepQuality < 1 || c.SleepQuality > 3 {
		return fmt.Errorf("sleep_quality %d out of range 1-3", c.SleepQuality)
	}
	if c.StressLevel < 0 || c.StressLevel > 10 {
		return fmt.Errorf("stress_level %d out of range 0-10", c.StressLevel)
	}
	if c.SleepHours < 0 || c.SleepHours > 24 {
		return fmt.Errorf("sleep_hours %v out of range 0-24", c.SleepHours)
	}
	for zone, severity := range c.Soreness {
		if severity < 1 || severity > 3 {
			return fmt.Errorf("soreness[%s] severity %d out of range 1-3", zone, severity)
		}
	}
	return nil
}
