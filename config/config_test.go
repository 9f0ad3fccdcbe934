package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/pkg/calendar"
)

func memoryEnv(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("APP_TIMEZONE", "UTC")
}

func TestLoadConfigDefaults(t *testing.T) {
	memoryEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, attendance.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, calendar.DefaultWorkdayRule, cfg.WorkdayRule)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Empty(t, cfg.AbsentSweepCron)
	assert.False(t, cfg.SeedData)
}

func TestLoadConfigOverrides(t *testing.T) {
	memoryEnv(t)
	t.Setenv("APP_TIMEZONE", "Asia/Jakarta")
	t.Setenv("LATE_CUTOFF", "08:00")
	t.Setenv("HALF_DAY_HOURS", "4.5")
	t.Setenv("HOLIDAYS", "2026-12-25, 2027-01-01")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("SEED_DATA", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, attendance.Cutoff{Hour: 8}, cfg.Thresholds.LateCutoff)
	assert.Equal(t, 4.5, cfg.Thresholds.HalfDayHours)
	assert.Equal(t, []models.Date{{Year: 2026, Month: 12, Day: 25}, {Year: 2027, Month: 1, Day: 1}}, cfg.Holidays)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedData)
	assert.Equal(t, "Asia/Jakarta", cfg.Location.String())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "STORAGE_DRIVER", "postgres"},
		{"bad timezone", "APP_TIMEZONE", "Mars/Olympus"},
		{"bad cutoff", "LATE_CUTOFF", "nine"},
		{"negative half day", "HALF_DAY_HOURS", "-1"},
		{"bad holiday", "HOLIDAYS", "25-12-2026"},
		{"bad seed flag", "SEED_DATA", "maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			memoryEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMongoRequiresConnection(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	t.Setenv("MONGOSTRING", "")
	_, err := LoadConfig()
	assert.Error(t, err)
}
