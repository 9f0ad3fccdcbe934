package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendance-tracker/models"
	"attendance-tracker/pkg/paseto"
	util "attendance-tracker/pkg/utils"
	"attendance-tracker/repository"
	"attendance-tracker/seeder"
	"attendance-tracker/service"
)

type testServer struct {
	app     *fiber.App
	clock   time.Time
	users   map[string]*models.User
	tokens  map[string]string
	records *repository.MemoryAttendanceRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()

	userRepo := repository.NewMemoryUserRepository()
	records := repository.NewMemoryAttendanceRepository(userRepo)
	svc := service.NewAttendanceService(records, userRepo, repository.NewMemoryQRCodeRepository(), service.WithLocation(time.UTC))

	key, err := util.GenerateBase64Key(32)
	require.NoError(t, err)
	maker, err := paseto.NewPasetoMaker(key)
	require.NoError(t, err)

	seeded, err := seeder.SeedUsers(ctx, userRepo)
	require.NoError(t, err)

	ts := &testServer{
		app:     fiber.New(),
		clock:   time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC),
		users:   map[string]*models.User{},
		tokens:  map[string]string{},
		records: records,
	}
	for i := range seeded {
		u := &seeded[i]
		tok, err := maker.GenerateToken(u)
		require.NoError(t, err)
		ts.users[u.EmployeeID] = u
		ts.tokens[u.EmployeeID] = tok
	}

	SetupRoutes(ts.app, Dependencies{
		Attendance: svc,
		Users:      userRepo,
		Maker:      maker,
		Clock:      func() time.Time { return ts.clock },
	})
	return ts
}

func (ts *testServer) at(hour, min int) {
	ts.clock = time.Date(2026, time.October, 14, hour, min, 0, 0, time.UTC)
}

func (ts *testServer) do(t *testing.T, method, path, who string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if who != "" {
		req.Header.Set("Authorization", "Bearer "+ts.tokens[who])
	}
	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	if len(raw) > 0 && raw[0] == '[' {
		var list []interface{}
		require.NoError(t, json.Unmarshal(raw, &list))
		out["items"] = list
	}
	return resp.StatusCode, out
}

func TestCheckInCheckOutFlow(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodGet, "/api/v1/attendance/today", "EMP001", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "not-checked-in", body["status"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/attendance/checkout", "EMP001", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["error"])

	status, body = ts.do(t, http.MethodPost, "/api/v1/attendance/checkin", "EMP001", nil)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "present", body["status"])
	assert.Equal(t, "2026-10-14", body["date"])
	assert.Nil(t, body["check_out_time"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/attendance/checkin", "EMP001", nil)
	assert.Equal(t, http.StatusConflict, status)

	ts.at(14, 0)
	status, body = ts.do(t, http.MethodPost, "/api/v1/attendance/checkout", "EMP001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5.0, body["total_hours"])
	assert.Equal(t, "present", body["status"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/attendance/checkout", "EMP001", nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/my-history", "EMP001", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 1)

	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/my-summary?month=2026-10", "EMP001", nil)
	assert.Equal(t, http.StatusOK, status)
	summary := body["summary"].(map[string]interface{})
	assert.Equal(t, 1.0, summary["present_days"])
	assert.Equal(t, 5.0, summary["total_hours"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/my-summary?from=2026-10-10&to=2026-10-01", "EMP001", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/my-summary?month=October", "EMP001", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestManagerRoutes(t *testing.T) {
	ts := newTestServer(t)

	ts.at(9, 0)
	status, _ := ts.do(t, http.MethodPost, "/api/v1/attendance/checkin", "EMP001", nil)
	require.Equal(t, http.StatusCreated, status)
	ts.at(10, 0)
	status, _ = ts.do(t, http.MethodPost, "/api/v1/attendance/checkin", "EMP002", nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.do(t, http.MethodGet, "/api/v1/attendance/summary", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3.0, body["total_employees"])
	assert.Equal(t, 2.0, body["present_today"])
	assert.Equal(t, 1.0, body["absent_today"])
	assert.Equal(t, 1.0, body["late_today"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/dashboard/manager", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1.0, body["late_count"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/all?status=late", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["items"].([]interface{})
	require.Len(t, items, 1)
	user := items[0].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Jane Smith", user["name"])
	assert.Equal(t, "EMP002", user["employee_id"])

	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/today-status", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 2)

	john := ts.users["EMP001"].ID.Hex()
	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/employee/"+john, "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["items"], 1)

	status, body = ts.do(t, http.MethodGet, "/api/v1/attendance/employee/"+john+"/summary?period=week", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2026-10-12", body["range"].(map[string]interface{})["from"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/employee/64b7f0000000000000000000", "MGR001", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/employee/not-an-id", "MGR001", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	for _, path := range []string{
		"/api/v1/attendance/summary",
		"/api/v1/attendance/all",
		"/api/v1/attendance/today-status",
		"/api/v1/attendance/generate-qr",
		"/api/v1/dashboard/manager",
	} {
		status, _ = ts.do(t, http.MethodGet, path, "EMP001", nil)
		assert.Equal(t, http.StatusForbidden, status, path)
	}

	status, _ = ts.do(t, http.MethodGet, "/api/v1/attendance/summary", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestQRCodeScanFlow(t *testing.T) {
	ts := newTestServer(t)

	ts.at(7, 0)
	status, body := ts.do(t, http.MethodGet, "/api/v1/attendance/generate-qr", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	code := body["code"].(string)
	assert.Contains(t, body["qr_code_image"], "data:image/png;base64,")

	ts.at(9, 45)
	status, body = ts.do(t, http.MethodPost, "/api/v1/attendance/scan", "EMP003", fiber.Map{"qr_code_value": code})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "check-in", body["action"])
	assert.Equal(t, "late", body["attendance"].(map[string]interface{})["status"])

	ts.at(11, 45)
	status, body = ts.do(t, http.MethodPost, "/api/v1/attendance/scan", "EMP003", fiber.Map{"qr_code_value": code})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "check-out", body["action"])
	assert.Equal(t, "half-day", body["attendance"].(map[string]interface{})["status"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/attendance/scan", "EMP003", fiber.Map{"qr_code_value": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.do(t, http.MethodGet, "/api/v1/dashboard/employee", "EMP003", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "half-day", body["today_status"])
	assert.Equal(t, 1.0, body["half_days"])
}

func TestAuthRoutes(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.do(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"email": "john@company.com", "password": seeder.DefaultPassword})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["token"])
	assert.Nil(t, body["user"].(map[string]interface{})["password"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{"email": "john@company.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, status)

	newUser := fiber.Map{
		"name":        "Sari Dewi",
		"email":       "sari@company.com",
		"password":    "Rahasia123",
		"role":        "employee",
		"employee_id": "EMP004",
		"department":  "Finance",
	}
	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/register", "EMP001", newUser)
	assert.Equal(t, http.StatusForbidden, status)

	status, body = ts.do(t, http.MethodPost, "/api/v1/auth/register", "MGR001", newUser)
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["user_id"])

	status, _ = ts.do(t, http.MethodPost, "/api/v1/auth/register", "MGR001", newUser)
	assert.Equal(t, http.StatusConflict, status)

	newUser["password"] = "lowercase1"
	newUser["email"] = "other@company.com"
	status, body = ts.do(t, http.MethodPost, "/api/v1/auth/register", "MGR001", newUser)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.NotEmpty(t, body["errors"])
}

func TestUserRoutes(t *testing.T) {
	ts := newTestServer(t)
	john := ts.users["EMP001"].ID.Hex()
	jane := ts.users["EMP002"].ID.Hex()

	status, body := ts.do(t, http.MethodGet, "/api/v1/users/"+john, "EMP001", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "John Doe", body["name"])
	assert.Nil(t, body["password"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/users/"+jane, "EMP001", nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = ts.do(t, http.MethodGet, "/api/v1/users/"+jane, "MGR001", nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = ts.do(t, http.MethodGet, "/api/v1/users", "MGR001", nil)
	require.Equal(t, http.StatusOK, status)
	items := body["items"].([]interface{})
	require.Len(t, items, 3)
	assert.Equal(t, "EMP001", items[0].(map[string]interface{})["employee_id"])

	status, _ = ts.do(t, http.MethodGet, "/api/v1/users?role=admin", "MGR001", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = ts.do(t, http.MethodGet, "/api/v1/users", "EMP001", nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	status, body := ts.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "running", body["status"])
}
