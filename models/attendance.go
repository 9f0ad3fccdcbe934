package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"

	// StatusNotCheckedIn is only reported for days without a record; it is never stored.
	StatusNotCheckedIn Status = "not-checked-in"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// AttendanceRecord is the single record of one user on one calendar day.
type AttendanceRecord struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date         Date               `json:"date" bson:"date"`
	CheckInTime  *time.Time         `json:"check_in_time" bson:"check_in_time"`
	CheckOutTime *time.Time         `json:"check_out_time" bson:"check_out_time"`
	Status       Status             `json:"status" bson:"status"`
	TotalHours   float64            `json:"total_hours" bson:"total_hours"`
	Note         string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

func (a *AttendanceRecord) CheckedOut() bool {
	return a.CheckOutTime != nil
}

// UserIdentity is the slice of the user directory joined onto manager views.
type UserIdentity struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	Department string             `json:"department" bson:"department"`
	Role       Role               `json:"role" bson:"role"`
}

type AttendanceWithUser struct {
	AttendanceRecord `bson:",inline"`
	User             UserIdentity `json:"user" bson:"user"`
}

// Summary is the roll-up of a set of records for one user or one range.
type Summary struct {
	PresentDays int     `json:"present_days"`
	LateDays    int     `json:"late_days"`
	AbsentDays  int     `json:"absent_days"`
	HalfDays    int     `json:"half_days"`
	TotalHours  float64 `json:"total_hours"`
	TotalDays   int     `json:"total_days"`
}

type TeamSummary struct {
	TotalEmployees int   `json:"total_employees"`
	PresentToday   int   `json:"present_today"`
	AbsentToday    int   `json:"absent_today"`
	LateToday      int   `json:"late_today"`
	MonthlyRecords int64 `json:"monthly_records"`
}

type EmployeeDashboard struct {
	TodayStatus  Status     `json:"today_status"`
	CheckInTime  *time.Time `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	Summary
}

type ManagerDashboard struct {
	TotalEmployees int `json:"total_employees"`
	PresentCount   int `json:"present_count"`
	AbsentCount    int `json:"absent_count"`
	LateCount      int `json:"late_count"`
}

type AttendanceScanPayload struct {
	QRCodeValue string `json:"qr_code_value" validate:"required,uuid"`
}

// AttendanceQuery carries the optional filters of the report endpoints.
type AttendanceQuery struct {
	Month  string `query:"month" validate:"omitempty,datetime=2006-01"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Period string `query:"period" validate:"omitempty,oneof=week month"`
	Status string `query:"status" validate:"omitempty,oneof=present absent late half-day"`
}
