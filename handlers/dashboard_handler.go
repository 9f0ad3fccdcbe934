package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"attendance-tracker/service"
)

type DashboardHandler struct {
	svc *service.AttendanceService
	now func() time.Time
}

func NewDashboardHandler(svc *service.AttendanceService, clock func() time.Time) *DashboardHandler {
	if clock == nil {
		clock = time.Now
	}
	return &DashboardHandler{svc: svc, now: clock}
}

// GetEmployeeDashboard godoc
// @Summary Dashboard karyawan
// @Description Status hari ini, jam check-in/check-out dan ringkasan bulan berjalan
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.EmployeeDashboard
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /dashboard/employee [get]
func (h *DashboardHandler) GetEmployeeDashboard(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	dash, err := h.svc.EmployeeDashboard(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal memuat dashboard")
	}
	return c.Status(fiber.StatusOK).JSON(dash)
}

// GetManagerDashboard godoc
// @Summary Dashboard manager
// @Description Jumlah karyawan, hadir, tidak hadir dan terlambat hari ini (manager only)
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ManagerDashboard
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /dashboard/manager [get]
func (h *DashboardHandler) GetManagerDashboard(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	dash, err := h.svc.ManagerDashboard(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal memuat dashboard")
	}
	return c.Status(fiber.StatusOK).JSON(dash)
}
