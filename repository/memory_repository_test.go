package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
)

// ensure the memory stores satisfy the repository contracts
var (
	_ AttendanceRepository = (*MemoryAttendanceRepository)(nil)
	_ UserRepository       = (*MemoryUserRepository)(nil)
	_ QRCodeRepository     = (*MemoryQRCodeRepository)(nil)
)

func day(d int) models.Date {
	return models.Date{Year: 2026, Month: time.October, Day: d}
}

func openRecord(userID primitive.ObjectID, d models.Date, hour int) *models.AttendanceRecord {
	in := time.Date(d.Year, d.Month, d.Day, hour, 0, 0, 0, time.UTC)
	return &models.AttendanceRecord{UserID: userID, Date: d, CheckInTime: &in, Status: models.StatusPresent}
}

func TestCreateAttendanceIsInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAttendanceRepository(NewMemoryUserRepository())
	user := primitive.NewObjectID()

	require.NoError(t, repo.CreateAttendance(ctx, openRecord(user, day(14), 9)))
	assert.ErrorIs(t, repo.CreateAttendance(ctx, openRecord(user, day(14), 10)), ErrDuplicateAttendance)

	// other days and other users are independent keys
	assert.NoError(t, repo.CreateAttendance(ctx, openRecord(user, day(15), 9)))
	assert.NoError(t, repo.CreateAttendance(ctx, openRecord(primitive.NewObjectID(), day(14), 9)))
}

func TestCreateAttendanceConcurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAttendanceRepository(NewMemoryUserRepository())
	user := primitive.NewObjectID()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := repo.CreateAttendance(ctx, openRecord(user, day(14), 9)); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	n, err := repo.CountAttendances(ctx, RecordFilter{}.ForUser(user))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestCompleteCheckoutOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAttendanceRepository(NewMemoryUserRepository())
	rec := openRecord(primitive.NewObjectID(), day(14), 9)
	require.NoError(t, repo.CreateAttendance(ctx, rec))

	out := rec.CheckInTime.Add(8 * time.Hour)
	require.NoError(t, repo.CompleteCheckout(ctx, rec.ID, out, models.StatusPresent, 8))
	assert.ErrorIs(t, repo.CompleteCheckout(ctx, rec.ID, out, models.StatusPresent, 8), ErrCheckoutConflict)
	assert.ErrorIs(t, repo.CompleteCheckout(ctx, primitive.NewObjectID(), out, models.StatusPresent, 8), ErrCheckoutConflict)

	got, err := repo.FindAttendanceByUserAndDate(ctx, rec.UserID, rec.Date)
	require.NoError(t, err)
	require.NotNil(t, got.CheckOutTime)
	assert.Equal(t, 8.0, got.TotalHours)
}

func TestCompleteCheckoutRejectsAbsentRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryAttendanceRepository(NewMemoryUserRepository())
	rec := &models.AttendanceRecord{UserID: primitive.NewObjectID(), Date: day(14), Status: models.StatusAbsent}
	require.NoError(t, repo.CreateAttendance(ctx, rec))

	assert.ErrorIs(t, repo.CompleteCheckout(ctx, rec.ID, time.Now(), models.StatusPresent, 1), ErrCheckoutConflict)
}

func TestFindAttendancesFilterAndOrder(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUserRepository()
	repo := NewMemoryAttendanceRepository(users)

	john := &models.User{Name: "John Doe", Email: "john@example.com", Role: models.RoleEmployee, EmployeeID: "EMP001", Department: "Engineering"}
	require.NoError(t, users.CreateUser(ctx, john))
	jane := primitive.NewObjectID()

	require.NoError(t, repo.CreateAttendance(ctx, openRecord(john.ID, day(13), 9)))
	require.NoError(t, repo.CreateAttendance(ctx, openRecord(john.ID, day(15), 9)))
	require.NoError(t, repo.CreateAttendance(ctx, openRecord(jane, day(15), 10)))
	require.NoError(t, repo.CreateAttendance(ctx, openRecord(john.ID, day(30), 9)))

	all, err := repo.FindAttendances(ctx, RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, day(30), all[0].Date)
	assert.Equal(t, jane, all[1].UserID) // same day, later check-in first
	assert.Equal(t, day(13), all[3].Date)

	mine, err := repo.FindAttendances(ctx, RecordFilter{}.ForUser(john.ID).InRange(models.DateRange{From: day(13), To: day(15)}))
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	joined, err := repo.FindAttendancesWithUser(ctx, RecordFilter{}.OnDate(day(15)))
	require.NoError(t, err)
	require.Len(t, joined, 2)
	assert.Equal(t, models.UserIdentity{ID: jane}, joined[0].User)
	assert.Equal(t, "EMP001", joined[1].User.EmployeeID)
	assert.Equal(t, "Engineering", joined[1].User.Department)
}

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	users := NewMemoryUserRepository()

	require.NoError(t, users.CreateUser(ctx, &models.User{Email: "a@example.com", Role: models.RoleEmployee, EmployeeID: "EMP002"}))
	require.NoError(t, users.CreateUser(ctx, &models.User{Email: "b@example.com", Role: models.RoleEmployee, EmployeeID: "EMP001"}))
	require.NoError(t, users.CreateUser(ctx, &models.User{Email: "m@example.com", Role: models.RoleManager, EmployeeID: "MGR001"}))
	assert.ErrorIs(t, users.CreateUser(ctx, &models.User{Email: "A@example.com"}), ErrEmailTaken)

	n, err := users.CountUsersByRole(ctx, models.RoleEmployee)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	employees, err := users.FindUsersByRole(ctx, models.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", employees[0].EmployeeID)

	u, err := users.FindUserByEmail(ctx, "m@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, models.RoleManager, u.Role)

	missing, err := users.FindUserByID(ctx, primitive.NewObjectID())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestRecordFilterBSON(t *testing.T) {
	user := primitive.NewObjectID()
	r := models.MonthRange(2026, time.October)
	f := RecordFilter{Status: models.StatusLate}.ForUser(user).InRange(r)

	got := f.toBSON()
	assert.Equal(t, user, got["user_id"])
	assert.Equal(t, models.StatusLate, got["status"])
	dates := got["date"].(bson.M)
	assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), dates["$gte"])
	assert.Equal(t, time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC), dates["$lte"])
}
