package seeder

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/models"
	"attendance-tracker/pkg/password"
	"attendance-tracker/repository"
	"attendance-tracker/service"
)

func TestSeedUsersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()

	first, err := SeedUsers(ctx, users)
	require.NoError(t, err)
	require.Len(t, first, 4)

	second, err := SeedUsers(ctx, users)
	require.NoError(t, err)
	require.Len(t, second, 4)
	assert.Equal(t, first[1].ID, second[1].ID)

	n, err := users.CountUsersByRole(ctx, models.RoleEmployee)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	mgr, err := users.FindUserByEmail(ctx, "manager@company.com")
	require.NoError(t, err)
	require.NotNil(t, mgr)
	assert.Equal(t, "MGR001", mgr.EmployeeID)
	assert.True(t, password.CheckPasswordHash(DefaultPassword, mgr.Password))
}

func TestSeedAttendance(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	records := repository.NewMemoryAttendanceRepository(users)
	svc := service.NewAttendanceService(records, users, repository.NewMemoryQRCodeRepository(), service.WithLocation(time.UTC))

	seeded, err := SeedUsers(ctx, users)
	require.NoError(t, err)

	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	n, err := SeedAttendance(ctx, svc, seeded, now, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Greater(t, n, 0)
	assert.LessOrEqual(t, n, 3*seedDays)

	all, err := records.FindAttendances(ctx, repository.RecordFilter{})
	require.NoError(t, err)
	assert.Len(t, all, n)
	week := models.DateRange{From: models.Date{Year: 2026, Month: time.October, Day: 11}, To: models.Date{Year: 2026, Month: time.October, Day: 17}}
	for _, rec := range all {
		assert.True(t, week.Contains(rec.Date), rec.Date.String())
		require.NotNil(t, rec.CheckOutTime)
		assert.GreaterOrEqual(t, rec.TotalHours, 8.0)
		assert.Contains(t, []models.Status{models.StatusPresent, models.StatusLate}, rec.Status)
	}

	// seeding again adds nothing for days already recorded
	again, err := SeedAttendance(ctx, svc, seeded, now, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, again)
}
