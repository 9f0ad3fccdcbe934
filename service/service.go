// Package service hosts the attendance state machine and the report queries
// built on top of the record store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/pkg/calendar"
	"attendance-tracker/pkg/logger"
	"attendance-tracker/repository"
)

type AttendanceService struct {
	records    repository.AttendanceRepository
	users      repository.UserRepository
	qrCodes    repository.QRCodeRepository
	thresholds attendance.Thresholds
	loc        *time.Location
	workdays   *calendar.Workdays
	log        *slog.Logger
}

type Option func(*AttendanceService)

func WithThresholds(t attendance.Thresholds) Option {
	return func(s *AttendanceService) { s.thresholds = t }
}

// WithLocation sets the zone that decides the calendar day and the
// time-of-day of check-ins.
func WithLocation(loc *time.Location) Option {
	return func(s *AttendanceService) { s.loc = loc }
}

// WithWorkdays limits the absence sweep to working days.
func WithWorkdays(w *calendar.Workdays) Option {
	return func(s *AttendanceService) { s.workdays = w }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *AttendanceService) { s.log = l }
}

func NewAttendanceService(records repository.AttendanceRepository, users repository.UserRepository, qrCodes repository.QRCodeRepository, opts ...Option) *AttendanceService {
	s := &AttendanceService{
		records:    records,
		users:      users,
		qrCodes:    qrCodes,
		thresholds: attendance.DefaultThresholds(),
		loc:        time.Local,
		log:        logger.New("attendance"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AttendanceService) Location() *time.Location {
	return s.loc
}

// Today is the calendar day of now in the service location.
func (s *AttendanceService) Today(now time.Time) models.Date {
	return models.DateOf(now.In(s.loc))
}

// CheckIn opens today's record. A second check-in on the same day, including
// one racing this call, fails with attendance.ErrDuplicateCheckIn. A day
// already closed by the absence sweep fails with attendance.ErrMarkedAbsent.
func (s *AttendanceService) CheckIn(ctx context.Context, session models.Session, now time.Time) (*models.AttendanceRecord, error) {
	local := now.In(s.loc)
	today := models.DateOf(local)

	existing, err := s.records.FindAttendanceByUserAndDate(ctx, session.UserID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.CheckInTime == nil {
			return nil, attendance.ErrMarkedAbsent
		}
		return nil, attendance.ErrDuplicateCheckIn
	}

	rec := &models.AttendanceRecord{
		UserID:      session.UserID,
		Date:        today,
		CheckInTime: &local,
		Status:      attendance.DeriveCheckInStatus(local, s.thresholds.LateCutoff),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.records.CreateAttendance(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateAttendance) {
			return nil, attendance.ErrDuplicateCheckIn
		}
		return nil, err
	}

	s.log.Info("check-in", "user", session.UserID.Hex(), "date", today, "status", rec.Status)
	return rec, nil
}

// CheckOut closes today's open record and settles its status and hours.
func (s *AttendanceService) CheckOut(ctx context.Context, session models.Session, now time.Time) (*models.AttendanceRecord, error) {
	local := now.In(s.loc)
	today := models.DateOf(local)

	rec, err := s.records.FindAttendanceByUserAndDate(ctx, session.UserID, today)
	if err != nil {
		return nil, err
	}
	// a swept absent record has no check-in to close
	if rec == nil || rec.CheckInTime == nil {
		return nil, attendance.ErrNoCheckInFound
	}
	if rec.CheckedOut() {
		return nil, attendance.ErrAlreadyCheckedOut
	}

	hours, err := attendance.ComputeDuration(*rec.CheckInTime, local)
	if err != nil {
		return nil, err
	}
	status := attendance.DeriveCheckOutStatus(rec.Status, hours, s.thresholds.HalfDayHours)

	if err := s.records.CompleteCheckout(ctx, rec.ID, local, status, hours); err != nil {
		if errors.Is(err, repository.ErrCheckoutConflict) {
			return nil, attendance.ErrAlreadyCheckedOut
		}
		return nil, err
	}

	rec.CheckOutTime = &local
	rec.Status = status
	rec.TotalHours = hours
	rec.UpdatedAt = now

	s.log.Info("check-out", "user", session.UserID.Hex(), "date", today, "status", status, "hours", hours)
	return rec, nil
}

func requireManager(session models.Session) error {
	if !session.IsManager() {
		return attendance.ErrForbidden
	}
	return nil
}

// ResolveRange turns the report query parameters into a DateRange. month
// wins over from/to, period=week selects the current Monday-to-Sunday week,
// and the default is the current month.
func (s *AttendanceService) ResolveRange(q models.AttendanceQuery, now time.Time) (models.DateRange, error) {
	today := s.Today(now)

	switch {
	case q.Month != "":
		r, err := models.ParseMonth(q.Month)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: %v", attendance.ErrInvalidRange, err)
		}
		return r, nil
	case q.From != "" || q.To != "":
		if q.From == "" || q.To == "" {
			return models.DateRange{}, fmt.Errorf("%w: from dan to harus diisi bersamaan", attendance.ErrInvalidRange)
		}
		from, err := models.ParseDate(q.From)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: %v", attendance.ErrInvalidRange, err)
		}
		to, err := models.ParseDate(q.To)
		if err != nil {
			return models.DateRange{}, fmt.Errorf("%w: %v", attendance.ErrInvalidRange, err)
		}
		if from.After(to) {
			return models.DateRange{}, fmt.Errorf("%w: from %s setelah to %s", attendance.ErrInvalidRange, from, to)
		}
		return models.DateRange{From: from, To: to}, nil
	case q.Period == "week":
		return models.WeekOf(today), nil
	}
	return models.MonthOf(today), nil
}
