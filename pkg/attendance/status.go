// Package attendance holds the pure rules of the tracker: how a check-in or
// check-out is classified, how worked hours are computed and how sets of
// records roll up into summaries.
package attendance

import (
	"fmt"
	"time"

	"attendance-tracker/models"
)

// Cutoff is a local time-of-day boundary.
type Cutoff struct {
	Hour   int
	Minute int
}

var DefaultLateCutoff = Cutoff{Hour: 9, Minute: 30}

const DefaultHalfDayHours = 4.0

// ParseCutoff parses "HH:MM".
func ParseCutoff(s string) (Cutoff, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Cutoff{}, fmt.Errorf("batas waktu %q tidak valid, gunakan format HH:MM: %w", s, err)
	}
	return Cutoff{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (c Cutoff) sinceMidnight() time.Duration {
	return time.Duration(c.Hour)*time.Hour + time.Duration(c.Minute)*time.Minute
}

func (c Cutoff) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Thresholds are the configurable inputs of the status rules.
type Thresholds struct {
	LateCutoff   Cutoff
	HalfDayHours float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{LateCutoff: DefaultLateCutoff, HalfDayHours: DefaultHalfDayHours}
}

// DeriveCheckInStatus reports late when the time-of-day of checkIn, read in
// checkIn's own location, is strictly after the cutoff. 09:30:00 is on time,
// 09:30:00.001 is not.
func DeriveCheckInStatus(checkIn time.Time, cutoff Cutoff) models.Status {
	h, m, s := checkIn.Clock()
	elapsed := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(checkIn.Nanosecond())

	if elapsed > cutoff.sinceMidnight() {
		return models.StatusLate
	}
	return models.StatusPresent
}

// DeriveCheckOutStatus downgrades a short day to half-day. A full day keeps
// the check-in status, so a late arrival stays late.
func DeriveCheckOutStatus(checkInStatus models.Status, durationHours, halfDayThreshold float64) models.Status {
	if durationHours < halfDayThreshold {
		return models.StatusHalfDay
	}
	return checkInStatus
}
