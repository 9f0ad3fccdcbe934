package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/repository"
)

// MarkAbsentees writes an absent record for every employee without a record
// on day. Only days that ended before now in the service location can be
// swept; anything else fails with attendance.ErrDayNotOver. Non-working days
// are skipped. Running it twice for the same day creates nothing the second
// time. It returns the number of records created.
func (s *AttendanceService) MarkAbsentees(ctx context.Context, day models.Date, now time.Time) (int, error) {
	if !day.Before(s.Today(now)) {
		return 0, fmt.Errorf("sweep %s: %w", day, attendance.ErrDayNotOver)
	}
	if s.workdays != nil && !s.workdays.IsWorkday(day) {
		s.log.Info("absence sweep skipped, not a workday", "date", day)
		return 0, nil
	}

	employees, err := s.users.FindUsersByRole(ctx, models.RoleEmployee)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, u := range employees {
		rec := &models.AttendanceRecord{
			UserID:    u.ID,
			Date:      day,
			Status:    models.StatusAbsent,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.records.CreateAttendance(ctx, rec); err != nil {
			if errors.Is(err, repository.ErrDuplicateAttendance) {
				continue
			}
			return created, err
		}
		created++
	}

	s.log.Info("absence sweep done", "date", day, "employees", len(employees), "marked_absent", created)
	return created, nil
}
