package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
	util "attendance-tracker/pkg/utils"
	"attendance-tracker/repository"
	"attendance-tracker/service"
)

type AttendanceHandler struct {
	svc *service.AttendanceService
	now func() time.Time
}

// NewAttendanceHandler uses clock as the request time, time.Now when nil.
func NewAttendanceHandler(svc *service.AttendanceService, clock func() time.Time) *AttendanceHandler {
	if clock == nil {
		clock = time.Now
	}
	return &AttendanceHandler{svc: svc, now: clock}
}

// CheckIn godoc
// @Summary Check-in
// @Description Membuka absensi hari ini. Status late jika check-in setelah batas waktu
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.AttendanceRecord
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 409 {object} models.ErrorResponse "Sudah check-in hari ini"
// @Router /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.svc.CheckIn(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal melakukan check-in")
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// CheckOut godoc
// @Summary Check-out
// @Description Menutup absensi hari ini dan menghitung total jam kerja
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceRecord
// @Failure 400 {object} models.ErrorResponse "Belum check-in"
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 409 {object} models.ErrorResponse "Sudah check-out hari ini"
// @Router /attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.svc.CheckOut(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal melakukan check-out")
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// ScanQRCode godoc
// @Summary Scan QR Code
// @Description Check-in atau check-out dengan QR Code harian
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.AttendanceScanPayload true "Nilai QR Code"
// @Success 200 {object} object{message=string,action=string,attendance=models.AttendanceRecord} "Check-out berhasil"
// @Success 201 {object} object{message=string,action=string,attendance=models.AttendanceRecord} "Check-in berhasil"
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /attendance/scan [post]
func (h *AttendanceHandler) ScanQRCode(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}

	var payload models.AttendanceScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload tidak valid: " + err.Error()})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.svc.Scan(ctx, session, payload.QRCodeValue, h.now())
	if err != nil {
		return respondError(c, err, "Gagal memproses QR Code")
	}

	if res.Action == service.ScanCheckIn {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Berhasil check-in pukul " + res.Record.CheckInTime.Format("15:04"),
			"action":     res.Action,
			"attendance": res.Record,
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Berhasil check-out pukul " + res.Record.CheckOutTime.Format("15:04"),
		"action":     res.Action,
		"attendance": res.Record,
	})
}

// GenerateQRCode godoc
// @Summary Generate QR Code
// @Description Membuat QR Code absensi yang berlaku sampai pukul 23:00 hari ini (manager only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.QRCodeResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/generate-qr [get]
func (h *AttendanceHandler) GenerateQRCode(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	gen, err := h.svc.GenerateQRCode(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal membuat QR Code")
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code berhasil dibuat",
		"qr_code_image": gen.ImageDataURL,
		"code":          gen.QRCode.Code,
		"expires_at":    gen.QRCode.ExpiresAt,
	})
}

// GetMyAttendanceHistory godoc
// @Summary Riwayat absensi saya
// @Description Semua absensi user yang login, tanggal terbaru lebih dulu
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceRecord
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	history, err := h.svc.MyHistory(ctx, session)
	if err != nil {
		return respondError(c, err, "Gagal mengambil riwayat kehadiran")
	}
	return c.Status(fiber.StatusOK).JSON(history)
}

// GetMySummary godoc
// @Summary Ringkasan absensi saya
// @Description Ringkasan per status untuk bulan berjalan, bulan tertentu, rentang tanggal, atau minggu ini
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param month query string false "Bulan (YYYY-MM)"
// @Param from query string false "Tanggal awal (YYYY-MM-DD)"
// @Param to query string false "Tanggal akhir (YYYY-MM-DD)"
// @Param period query string false "week atau month"
// @Success 200 {object} object{range=models.DateRange,summary=models.Summary}
// @Failure 400 {object} models.ErrorResponse
// @Router /attendance/my-summary [get]
func (h *AttendanceHandler) GetMySummary(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	r, body := h.parseRange(c)
	if body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	sum, err := h.svc.MySummary(ctx, session, r)
	if err != nil {
		return respondError(c, err, "Gagal menghitung ringkasan kehadiran")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"range": r, "summary": sum})
}

// GetTodayAttendance godoc
// @Summary Absensi saya hari ini
// @Description Record hari ini, atau status not-checked-in jika belum ada
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AttendanceRecord
// @Success 200 {object} models.TodayStatusResponse
// @Router /attendance/today [get]
func (h *AttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	rec, err := h.svc.TodayRecord(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal mengambil absensi hari ini")
	}
	if rec == nil {
		return c.Status(fiber.StatusOK).JSON(models.TodayStatusResponse{Status: models.StatusNotCheckedIn})
	}
	return c.Status(fiber.StatusOK).JSON(rec)
}

// GetAllAttendance godoc
// @Summary Semua absensi
// @Description Semua absensi dengan detail user, terbaru lebih dulu (manager only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param from query string false "Tanggal awal (YYYY-MM-DD)"
// @Param to query string false "Tanggal akhir (YYYY-MM-DD)"
// @Param month query string false "Bulan (YYYY-MM)"
// @Param status query string false "present, absent, late, half-day"
// @Success 200 {array} models.AttendanceWithUser
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/all [get]
func (h *AttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	q, body := parseQuery(c)
	if body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	filter := repository.RecordFilter{Status: models.Status(q.Status)}
	// without an explicit range every record is listed
	if q.Month != "" || q.From != "" || q.To != "" || q.Period != "" {
		r, err := h.svc.ResolveRange(*q, h.now())
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		filter = filter.InRange(r)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.svc.AllRecords(ctx, session, filter)
	if err != nil {
		return respondError(c, err, "Gagal mengambil data absensi")
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// GetEmployeeAttendance godoc
// @Summary Absensi karyawan
// @Description Semua absensi satu karyawan (manager only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} models.AttendanceRecord
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /attendance/employee/{id} [get]
func (h *AttendanceHandler) GetEmployeeAttendance(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID karyawan tidak valid"})
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	records, err := h.svc.EmployeeRecords(ctx, session, userID)
	if err != nil {
		return respondError(c, err, "Gagal mengambil absensi karyawan")
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// GetEmployeeSummary godoc
// @Summary Ringkasan absensi karyawan
// @Description Ringkasan per status satu karyawan untuk rentang yang diminta (manager only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param month query string false "Bulan (YYYY-MM)"
// @Param from query string false "Tanggal awal (YYYY-MM-DD)"
// @Param to query string false "Tanggal akhir (YYYY-MM-DD)"
// @Param period query string false "week atau month"
// @Success 200 {object} object{range=models.DateRange,summary=models.Summary}
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /attendance/employee/{id}/summary [get]
func (h *AttendanceHandler) GetEmployeeSummary(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	userID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID karyawan tidak valid"})
	}
	r, body := h.parseRange(c)
	if body != nil {
		return c.Status(fiber.StatusBadRequest).JSON(body)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	sum, err := h.svc.EmployeeSummary(ctx, session, userID, r)
	if err != nil {
		return respondError(c, err, "Gagal menghitung ringkasan karyawan")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"range": r, "summary": sum})
}

// GetTeamSummary godoc
// @Summary Ringkasan tim hari ini
// @Description Jumlah karyawan hadir, terlambat dan tidak hadir hari ini (manager only)
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.TeamSummary
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/summary [get]
func (h *AttendanceHandler) GetTeamSummary(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	team, err := h.svc.TeamSummary(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal menghitung ringkasan tim")
	}
	return c.Status(fiber.StatusOK).JSON(team)
}

// GetTodayStatus godoc
// @Summary Status absensi semua karyawan hari ini
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /attendance/today-status [get]
func (h *AttendanceHandler) GetTodayStatus(c *fiber.Ctx) error {
	session, ok := sessionFrom(c)
	if !ok {
		return unauthorized(c)
	}
	ctx, cancel := requestContext(c)
	defer cancel()

	list, err := h.svc.TodayStatusAll(ctx, session, h.now())
	if err != nil {
		return respondError(c, err, "Gagal mengambil daftar kehadiran")
	}
	return c.Status(fiber.StatusOK).JSON(list)
}

// parseQuery binds and validates the report query string. A non-nil body is
// the 400 response to send.
func parseQuery(c *fiber.Ctx) (*models.AttendanceQuery, fiber.Map) {
	var q models.AttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return nil, fiber.Map{"error": "Query tidak valid: " + err.Error()}
	}
	if errors := util.ValidateStruct(q); errors != nil {
		return nil, fiber.Map{"errors": errors}
	}
	return &q, nil
}

func (h *AttendanceHandler) parseRange(c *fiber.Ctx) (models.DateRange, fiber.Map) {
	q, body := parseQuery(c)
	if body != nil {
		return models.DateRange{}, body
	}
	r, err := h.svc.ResolveRange(*q, h.now())
	if err != nil {
		return models.DateRange{}, fiber.Map{"error": err.Error()}
	}
	return r, nil
}
