package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
)

// The memory repositories back STORAGE_DRIVER=memory and the tests. They keep
// the same per-key guarantees as the Mongo indexes: one record per
// (user, date), one user per email.

type attendanceKey struct {
	userID primitive.ObjectID
	date   models.Date
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *MemoryUserRepository) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindUsersByRole(_ context.Context, role models.Role) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []models.User{}
	for _, u := range r.users {
		if u.Role == role {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].EmployeeID < users[j].EmployeeID })
	return users, nil
}

func (r *MemoryUserRepository) CountUsersByRole(ctx context.Context, role models.Role) (int64, error) {
	users, _ := r.FindUsersByRole(ctx, role)
	return int64(len(users)), nil
}

func (r *MemoryUserRepository) identity(id primitive.ObjectID) models.UserIdentity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		return u.Identity()
	}
	return models.UserIdentity{ID: id}
}

type MemoryAttendanceRepository struct {
	mu      sync.RWMutex
	records map[attendanceKey]*models.AttendanceRecord
	byID    map[primitive.ObjectID]attendanceKey
	users   *MemoryUserRepository
}

func NewMemoryAttendanceRepository(users *MemoryUserRepository) *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{
		records: make(map[attendanceKey]*models.AttendanceRecord),
		byID:    make(map[primitive.ObjectID]attendanceKey),
		users:   users,
	}
}

func (r *MemoryAttendanceRepository) CreateAttendance(_ context.Context, rec *models.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := attendanceKey{userID: rec.UserID, date: rec.Date}
	if _, exists := r.records[key]; exists {
		return ErrDuplicateAttendance
	}
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	stored := *rec
	r.records[key] = &stored
	r.byID[rec.ID] = key
	return nil
}

func (r *MemoryAttendanceRepository) FindAttendanceByUserAndDate(_ context.Context, userID primitive.ObjectID, date models.Date) (*models.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[attendanceKey{userID: userID, date: date}]
	if !ok {
		return nil, nil
	}
	out := *rec
	return &out, nil
}

func (r *MemoryAttendanceRepository) CompleteCheckout(_ context.Context, id primitive.ObjectID, checkOut time.Time, status models.Status, totalHours float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, ok := r.byID[id]
	if !ok {
		return ErrCheckoutConflict
	}
	rec := r.records[key]
	if rec.CheckInTime == nil || rec.CheckOutTime != nil {
		return ErrCheckoutConflict
	}
	rec.CheckOutTime = &checkOut
	rec.Status = status
	rec.TotalHours = totalHours
	rec.UpdatedAt = time.Now()
	return nil
}

func (r *MemoryAttendanceRepository) FindAttendances(_ context.Context, filter RecordFilter) ([]models.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.AttendanceRecord{}
	for _, rec := range r.records {
		if filter.matches(rec) {
			out = append(out, *rec)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *MemoryAttendanceRepository) FindAttendancesWithUser(ctx context.Context, filter RecordFilter) ([]models.AttendanceWithUser, error) {
	records, err := r.FindAttendances(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]models.AttendanceWithUser, 0, len(records))
	for _, rec := range records {
		out = append(out, models.AttendanceWithUser{
			AttendanceRecord: rec,
			User:             r.users.identity(rec.UserID),
		})
	}
	return out, nil
}

func (r *MemoryAttendanceRepository) CountAttendances(_ context.Context, filter RecordFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, rec := range r.records {
		if filter.matches(rec) {
			n++
		}
	}
	return n, nil
}

func sortNewestFirst(records []models.AttendanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if c := a.Date.Compare(b.Date); c != 0 {
			return c > 0
		}
		return checkInUnix(a) > checkInUnix(b)
	})
}

func checkInUnix(rec models.AttendanceRecord) int64 {
	if rec.CheckInTime == nil {
		return 0
	}
	return rec.CheckInTime.UnixNano()
}

type MemoryQRCodeRepository struct {
	mu    sync.RWMutex
	codes map[string]models.QRCode
}

func NewMemoryQRCodeRepository() *MemoryQRCodeRepository {
	return &MemoryQRCodeRepository{codes: make(map[string]models.QRCode)}
}

func (r *MemoryQRCodeRepository) CreateQRCode(_ context.Context, qrCode *models.QRCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if qrCode.ID.IsZero() {
		qrCode.ID = primitive.NewObjectID()
	}
	r.codes[qrCode.Code] = *qrCode
	return nil
}

func (r *MemoryQRCodeRepository) FindQRCodeByValue(_ context.Context, code string) (*models.QRCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	q, ok := r.codes[code]
	if !ok {
		return nil, nil
	}
	return &q, nil
}
