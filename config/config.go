package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"attendance-tracker/models"
	"attendance-tracker/pkg/attendance"
	"attendance-tracker/pkg/calendar"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type AppConfig struct {
	Port          string
	MongoString   string
	PasetoSecret  string
	StorageDriver string
	Location      *time.Location
	Thresholds    attendance.Thresholds
	// AbsentSweepCron is empty when the end-of-day sweep is disabled.
	AbsentSweepCron string
	WorkdayRule     string
	Holidays        []models.Date
	AllowedOrigins  []string
	SeedData        bool
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("file .env tidak dimuat (mungkin memang tidak ada di production)", "error", err)
	}

	cfg := &AppConfig{
		Port:            getEnv("PORT", "3000"),
		MongoString:     getEnv("MONGOSTRING", ""),
		PasetoSecret:    getEnv("PASETO_SECRET", ""),
		StorageDriver:   strings.ToLower(getEnv("STORAGE_DRIVER", StorageMongo)),
		AbsentSweepCron: getEnv("ABSENT_SWEEP_CRON", ""),
		WorkdayRule:     getEnv("WORKDAY_RRULE", calendar.DefaultWorkdayRule),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		Thresholds:      attendance.DefaultThresholds(),
	}

	switch cfg.StorageDriver {
	case StorageMongo:
		if cfg.MongoString == "" {
			return nil, fmt.Errorf("MONGOSTRING belum di setting di env")
		}
		if cfg.PasetoSecret == "" {
			return nil, fmt.Errorf("PASETO_SECRET belum di setting di env")
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER %q tidak dikenal, gunakan %q atau %q", cfg.StorageDriver, StorageMongo, StorageMemory)
	}

	loc, err := time.LoadLocation(getEnv("APP_TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE tidak valid: %w", err)
	}
	cfg.Location = loc

	if v := getEnv("LATE_CUTOFF", ""); v != "" {
		cutoff, err := attendance.ParseCutoff(v)
		if err != nil {
			return nil, err
		}
		cfg.Thresholds.LateCutoff = cutoff
	}
	if v := getEnv("HALF_DAY_HOURS", ""); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil || hours <= 0 {
			return nil, fmt.Errorf("HALF_DAY_HOURS %q harus berupa angka positif", v)
		}
		cfg.Thresholds.HalfDayHours = hours
	}

	holidays, err := calendar.ParseHolidays(getEnv("HOLIDAYS", ""))
	if err != nil {
		return nil, fmt.Errorf("HOLIDAYS tidak valid: %w", err)
	}
	cfg.Holidays = holidays

	cfg.SeedData, err = strconv.ParseBool(getEnv("SEED_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("SEED_DATA harus true atau false: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
