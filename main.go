package main

import (
	"context"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"

	"attendance-tracker/config"
	"attendance-tracker/config/middleware"
	"attendance-tracker/jobs"
	"attendance-tracker/pkg/calendar"
	"attendance-tracker/pkg/logger"
	"attendance-tracker/pkg/paseto"
	util "attendance-tracker/pkg/utils"
	"attendance-tracker/repository"
	"attendance-tracker/router"
	"attendance-tracker/seeder"
	"attendance-tracker/service"
)

// @title Attendance Tracker API
// @version 1.0
// @description API absensi karyawan: check-in, check-out, QR Code harian, ringkasan dan dashboard manager
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Attendance
// @tag.description Check-in, check-out and attendance reports
//
// @tag.name Dashboard
// @tag.description Employee and manager dashboards
func main() {
	slog.SetDefault(logger.New("attendance-tracker"))

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("konfigurasi tidak valid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		userRepo       repository.UserRepository
		attendanceRepo repository.AttendanceRepository
		qrCodeRepo     repository.QRCodeRepository
		client         *mongo.Client
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		users := repository.NewMemoryUserRepository()
		userRepo = users
		attendanceRepo = repository.NewMemoryAttendanceRepository(users)
		qrCodeRepo = repository.NewMemoryQRCodeRepository()
		slog.Warn("STORAGE_DRIVER=memory, data hilang saat server berhenti")

		if cfg.PasetoSecret == "" {
			cfg.PasetoSecret, err = util.GenerateBase64Key(32)
			if err != nil {
				slog.Error("gagal membuat PASETO key sementara", "error", err)
				os.Exit(1)
			}
			slog.Warn("PASETO_SECRET kosong, memakai key sementara; token tidak berlaku setelah restart")
		}
	default:
		client, err = config.MongoConnect(ctx, cfg.MongoString)
		if err != nil {
			slog.Error("gagal konek MongoDB", "error", err)
			os.Exit(1)
		}
		defer config.DisconnectDB(client)

		db := client.Database(config.DBName)
		if err := config.InitDatabase(ctx, db); err != nil {
			slog.Error("gagal inisialisasi database", "error", err)
			os.Exit(1)
		}
		userRepo = repository.NewUserRepository(db)
		attendanceRepo = repository.NewAttendanceRepository(db)
		qrCodeRepo = repository.NewQRCodeRepository(db)
	}

	maker, err := paseto.NewPasetoMaker(cfg.PasetoSecret)
	if err != nil {
		slog.Error("PASETO_SECRET tidak valid", "error", err)
		os.Exit(1)
	}

	workdays, err := calendar.NewWorkdays(cfg.WorkdayRule, cfg.Holidays)
	if err != nil {
		slog.Error("WORKDAY_RRULE tidak valid", "error", err)
		os.Exit(1)
	}

	svc := service.NewAttendanceService(attendanceRepo, userRepo, qrCodeRepo,
		service.WithThresholds(cfg.Thresholds),
		service.WithLocation(cfg.Location),
		service.WithWorkdays(workdays),
		service.WithLogger(logger.New("attendance")),
	)

	if cfg.SeedData {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		users, err := seeder.SeedUsers(seedCtx, userRepo)
		if err == nil {
			_, err = seeder.SeedAttendance(seedCtx, svc, users, time.Now(), rand.New(rand.NewSource(time.Now().UnixNano())))
		}
		cancel()
		if err != nil {
			slog.Error("seeding gagal", "error", err)
		}
	}

	if cfg.AbsentSweepCron != "" {
		sweeper, err := jobs.StartAbsentSweepCron(svc, cfg.AbsentSweepCron, logger.New("absent-sweep"))
		if err != nil {
			slog.Error("gagal menjadwalkan absent sweep", "error", err)
			os.Exit(1)
		}
		defer sweeper.Stop()
	}

	app := fiber.New(fiber.Config{AppName: "Attendance Tracker"})
	app.Use(middleware.RecoveryMiddleware())
	config.SetupCORS(app, cfg.AllowedOrigins)
	app.Use(fiberlogger.New())
	app.Use(middleware.GlobalRateLimiter())

	router.SetupRoutes(app, router.Dependencies{
		Attendance: svc,
		Users:      userRepo,
		Maker:      maker,
	})

	go func() {
		<-ctx.Done()
		slog.Info("shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("shutdown gagal", "error", err)
		}
	}()

	slog.Info("Server running",
		"port", cfg.Port,
		"storage", cfg.StorageDriver,
		"timezone", cfg.Location.String(),
		"late_cutoff", cfg.Thresholds.LateCutoff.String(),
		"workdays", workdays.String(),
	)
	slog.Info("API Documentation: http://localhost:" + cfg.Port + "/docs/index.html")
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server berhenti", "error", err)
	}
}
