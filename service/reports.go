package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/repository"
)

func (s *AttendanceService) MyHistory(ctx context.Context, session models.Session) ([]models.AttendanceRecord, error) {
	return s.records.FindAttendances(ctx, repository.RecordFilter{}.ForUser(session.UserID))
}

func (s *AttendanceService) MySummary(ctx context.Context, session models.Session, r models.DateRange) (models.Summary, error) {
	records, err := s.records.FindAttendances(ctx, repository.RecordFilter{}.ForUser(session.UserID).InRange(r))
	if err != nil {
		return models.Summary{}, err
	}
	return attendance.Summarize(records), nil
}

// TodayRecord returns the caller's record for today, or nil when there is
// none yet.
func (s *AttendanceService) TodayRecord(ctx context.Context, session models.Session, now time.Time) (*models.AttendanceRecord, error) {
	return s.records.FindAttendanceByUserAndDate(ctx, session.UserID, s.Today(now))
}

// AllRecords lists every record matching filter joined with its user,
// newest first.
func (s *AttendanceService) AllRecords(ctx context.Context, session models.Session, filter repository.RecordFilter) ([]models.AttendanceWithUser, error) {
	if err := requireManager(session); err != nil {
		return nil, err
	}
	return s.records.FindAttendancesWithUser(ctx, filter)
}

func (s *AttendanceService) EmployeeRecords(ctx context.Context, session models.Session, userID primitive.ObjectID) ([]models.AttendanceRecord, error) {
	if err := s.requireEmployee(ctx, session, userID); err != nil {
		return nil, err
	}
	return s.records.FindAttendances(ctx, repository.RecordFilter{}.ForUser(userID))
}

func (s *AttendanceService) EmployeeSummary(ctx context.Context, session models.Session, userID primitive.ObjectID, r models.DateRange) (models.Summary, error) {
	if err := s.requireEmployee(ctx, session, userID); err != nil {
		return models.Summary{}, err
	}
	records, err := s.records.FindAttendances(ctx, repository.RecordFilter{}.ForUser(userID).InRange(r))
	if err != nil {
		return models.Summary{}, err
	}
	return attendance.Summarize(records), nil
}

func (s *AttendanceService) requireEmployee(ctx context.Context, session models.Session, userID primitive.ObjectID) error {
	if err := requireManager(session); err != nil {
		return err
	}
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return attendance.ErrNotFound
	}
	return nil
}

// TeamSummary rolls up today for the employee headcount. Only records of
// users with the employee role count, so present and absent always add up
// to TotalEmployees.
func (s *AttendanceService) TeamSummary(ctx context.Context, session models.Session, now time.Time) (models.TeamSummary, error) {
	if err := requireManager(session); err != nil {
		return models.TeamSummary{}, err
	}
	today := s.Today(now)

	employees, err := s.users.FindUsersByRole(ctx, models.RoleEmployee)
	if err != nil {
		return models.TeamSummary{}, err
	}
	ids := make(map[primitive.ObjectID]struct{}, len(employees))
	for _, u := range employees {
		ids[u.ID] = struct{}{}
	}

	todays, err := s.records.FindAttendances(ctx, repository.RecordFilter{}.OnDate(today))
	if err != nil {
		return models.TeamSummary{}, err
	}
	staff := todays[:0]
	for _, rec := range todays {
		if _, ok := ids[rec.UserID]; ok {
			staff = append(staff, rec)
		}
	}

	team := attendance.TeamSummarize(staff, len(employees))
	team.MonthlyRecords, err = s.records.CountAttendances(ctx, repository.RecordFilter{}.InRange(models.MonthOf(today)))
	if err != nil {
		return models.TeamSummary{}, err
	}
	return team, nil
}

// TodayStatusAll lists today's records with user identity.
func (s *AttendanceService) TodayStatusAll(ctx context.Context, session models.Session, now time.Time) ([]models.AttendanceWithUser, error) {
	if err := requireManager(session); err != nil {
		return nil, err
	}
	return s.records.FindAttendancesWithUser(ctx, repository.RecordFilter{}.OnDate(s.Today(now)))
}

func (s *AttendanceService) EmployeeDashboard(ctx context.Context, session models.Session, now time.Time) (models.EmployeeDashboard, error) {
	today := s.Today(now)

	rec, err := s.records.FindAttendanceByUserAndDate(ctx, session.UserID, today)
	if err != nil {
		return models.EmployeeDashboard{}, err
	}
	month, err := s.MySummary(ctx, session, models.MonthOf(today))
	if err != nil {
		return models.EmployeeDashboard{}, err
	}

	dash := models.EmployeeDashboard{TodayStatus: models.StatusNotCheckedIn, Summary: month}
	if rec != nil {
		dash.TodayStatus = rec.Status
		dash.CheckInTime = rec.CheckInTime
		dash.CheckOutTime = rec.CheckOutTime
	}
	return dash, nil
}

func (s *AttendanceService) ManagerDashboard(ctx context.Context, session models.Session, now time.Time) (models.ManagerDashboard, error) {
	team, err := s.TeamSummary(ctx, session, now)
	if err != nil {
		return models.ManagerDashboard{}, err
	}
	return models.ManagerDashboard{
		TotalEmployees: team.TotalEmployees,
		PresentCount:   team.PresentToday,
		AbsentCount:    team.AbsentToday,
		LateCount:      team.LateToday,
	}, nil
}
