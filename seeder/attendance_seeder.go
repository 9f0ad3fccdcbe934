package seeder

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
)

// AttendanceRecorder is the check-in/check-out surface the seeder replays
// history through.
type AttendanceRecorder interface {
	Location() *time.Location
	CheckIn(ctx context.Context, session models.Session, now time.Time) (*models.AttendanceRecord, error)
	CheckOut(ctx context.Context, session models.Session, now time.Time) (*models.AttendanceRecord, error)
}

const (
	seedDays       = 7
	attendanceRate = 0.85
)

// SeedAttendance replays the last seven days before now for every employee:
// most days get a check-in between 09:00 and 10:59 and a check-out eight to
// nine hours later. Days that already have a record are left alone. It
// returns the number of completed days written.
func SeedAttendance(ctx context.Context, svc AttendanceRecorder, users []models.User, now time.Time, rng *rand.Rand) (int, error) {
	slog.Info("Memulai seeding absensi...", "days", seedDays)

	loc := svc.Location()
	today := models.DateOf(now.In(loc))
	written := 0

	for _, u := range users {
		if u.Role != models.RoleEmployee {
			continue
		}
		session := models.Session{UserID: u.ID, Role: u.Role}

		for back := seedDays; back >= 1; back-- {
			if rng.Float64() > attendanceRate {
				continue
			}
			day := today.AddDays(-back).In(loc)
			checkIn := day.Add(time.Duration(9+rng.Intn(2))*time.Hour + time.Duration(rng.Intn(60))*time.Minute)
			checkOut := checkIn.Add(time.Duration(8+rng.Intn(2)) * time.Hour)

			if _, err := svc.CheckIn(ctx, session, checkIn); err != nil {
				if errors.Is(err, attendance.ErrDuplicateCheckIn) || errors.Is(err, attendance.ErrMarkedAbsent) {
					continue
				}
				return written, err
			}
			if _, err := svc.CheckOut(ctx, session, checkOut); err != nil {
				return written, err
			}
			written++
		}
	}

	slog.Info("Seeding absensi selesai", "records", written)
	return written, nil
}
