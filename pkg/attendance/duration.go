package attendance

import (
	"math"
	"time"
)

const millisPerHour = float64(time.Hour / time.Millisecond)

// ComputeDuration returns the worked hours between checkIn and checkOut,
// computed from whole milliseconds and rounded with RoundHours.
func ComputeDuration(checkIn, checkOut time.Time) (float64, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidInterval
	}
	ms := checkOut.Sub(checkIn).Milliseconds()
	return RoundHours(float64(ms) / millisPerHour), nil
}

// RoundHours rounds to 2 decimal places, halves away from zero.
func RoundHours(h float64) float64 {
	return math.Round(h*100) / 100
}
