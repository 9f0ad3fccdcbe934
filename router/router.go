package router

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"attendance-tracker/config/middleware"
	_ "attendance-tracker/docs"
	"attendance-tracker/handlers"
	"attendance-tracker/pkg/paseto"
	"attendance-tracker/repository"
	"attendance-tracker/service"
)

type Dependencies struct {
	Attendance *service.AttendanceService
	Users      repository.UserRepository
	Maker      *paseto.Maker
	// Clock is the request time source, time.Now when nil.
	Clock func() time.Time
}

func SetupRoutes(app *fiber.App, deps Dependencies) {
	slog.Info("Memulai pendaftaran rute aplikasi...")

	authHandler := handlers.NewAuthHandler(deps.Users, deps.Maker)
	attendanceHandler := handlers.NewAttendanceHandler(deps.Attendance, deps.Clock)
	dashboardHandler := handlers.NewDashboardHandler(deps.Attendance, deps.Clock)
	userHandler := handlers.NewUserHandler(deps.Users)

	auth := middleware.AuthMiddleware(deps.Maker)
	managerOnly := middleware.ManagerMiddleware()

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Attendance Tracker API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", auth, managerOnly, authHandler.Register)
	authGroup.Post("/login", middleware.LoginRateLimiter(), authHandler.Login)

	userGroup := api.Group("/users", auth)
	userGroup.Get("/", managerOnly, userHandler.GetAllUsers)
	userGroup.Get("/:id", userHandler.GetUserByID)

	attendanceGroup := api.Group("/attendance", auth)
	attendanceGroup.Post("/checkin", attendanceHandler.CheckIn)
	attendanceGroup.Post("/checkout", attendanceHandler.CheckOut)
	attendanceGroup.Post("/scan", attendanceHandler.ScanQRCode)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)
	attendanceGroup.Get("/my-summary", attendanceHandler.GetMySummary)
	attendanceGroup.Get("/today", attendanceHandler.GetTodayAttendance)

	attendanceGroup.Get("/all", managerOnly, attendanceHandler.GetAllAttendance)
	attendanceGroup.Get("/employee/:id", managerOnly, attendanceHandler.GetEmployeeAttendance)
	attendanceGroup.Get("/employee/:id/summary", managerOnly, attendanceHandler.GetEmployeeSummary)
	attendanceGroup.Get("/summary", managerOnly, attendanceHandler.GetTeamSummary)
	attendanceGroup.Get("/today-status", managerOnly, attendanceHandler.GetTodayStatus)
	attendanceGroup.Get("/generate-qr", managerOnly, attendanceHandler.GenerateQRCode)

	dashboardGroup := api.Group("/dashboard", auth)
	dashboardGroup.Get("/employee", dashboardHandler.GetEmployeeDashboard)
	dashboardGroup.Get("/manager", managerOnly, dashboardHandler.GetManagerDashboard)

	slog.Info("Semua rute aplikasi berhasil didaftarkan.", "routes", len(app.GetRoutes()))
	slog.Info("Swagger documentation tersedia di: /docs/index.html")
}
