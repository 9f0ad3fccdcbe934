package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"attendance-tracker/config"
	"attendance-tracker/models"
)

var (
	// ErrDuplicateAttendance is returned when a record already exists for the
	// (user, date) key.
	ErrDuplicateAttendance = errors.New("absensi untuk user dan tanggal ini sudah ada")
	// ErrCheckoutConflict is returned when the record is no longer open for
	// check-out.
	ErrCheckoutConflict = errors.New("absensi tidak dalam status menunggu check-out")
)

type AttendanceRepository interface {
	// CreateAttendance inserts rec only if no record exists for its
	// (user, date) key, otherwise it returns ErrDuplicateAttendance.
	CreateAttendance(ctx context.Context, rec *models.AttendanceRecord) error
	// FindAttendanceByUserAndDate returns nil, nil when there is no record.
	FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date models.Date) (*models.AttendanceRecord, error)
	// CompleteCheckout sets the check-out fields of an open record in one
	// conditional write. It returns ErrCheckoutConflict when the record is
	// missing, has no check-in, or was already checked out.
	CompleteCheckout(ctx context.Context, id primitive.ObjectID, checkOut time.Time, status models.Status, totalHours float64) error
	FindAttendances(ctx context.Context, filter RecordFilter) ([]models.AttendanceRecord, error)
	FindAttendancesWithUser(ctx context.Context, filter RecordFilter) ([]models.AttendanceWithUser, error)
	CountAttendances(ctx context.Context, filter RecordFilter) (int64, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: db.Collection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) CreateAttendance(ctx context.Context, rec *models.AttendanceRecord) error {
	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	_, err := r.attendanceCollection.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAttendance
		}
		return fmt.Errorf("gagal membuat absensi: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date models.Date) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	filter := bson.M{"user_id": userID, "date": date.UTC()}
	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan user dan tanggal: %w", err)
	}
	return &rec, nil
}

func (r *attendanceRepository) CompleteCheckout(ctx context.Context, id primitive.ObjectID, checkOut time.Time, status models.Status, totalHours float64) error {
	filter := bson.M{
		"_id":            id,
		"check_in_time":  bson.M{"$ne": nil},
		"check_out_time": nil,
	}
	update := bson.M{
		"$set": bson.M{
			"check_out_time": checkOut,
			"status":         status,
			"total_hours":    totalHours,
			"updated_at":     time.Now(),
		},
	}
	res, err := r.attendanceCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("gagal update check-out absensi: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrCheckoutConflict
	}
	return nil
}

func (r *attendanceRepository) FindAttendances(ctx context.Context, filter RecordFilter) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(newestFirst)

	cursor, err := r.attendanceCollection.Find(ctx, filter.toBSON(), opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.AttendanceRecord{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}
	return results, nil
}

func (r *attendanceRepository) FindAttendancesWithUser(ctx context.Context, filter RecordFilter) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter.toBSON()}},
		{{Key: "$sort", Value: newestFirst}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$userDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "user", Value: bson.D{
				{Key: "_id", Value: "$user_id"},
				{Key: "name", Value: "$userDetails.name"},
				{Key: "email", Value: "$userDetails.email"},
				{Key: "employee_id", Value: "$userDetails.employee_id"},
				{Key: "department", Value: "$userDetails.department"},
				{Key: "role", Value: "$userDetails.role"},
			}},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "userDetails", Value: 0}}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation absensi dengan detail user: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.AttendanceWithUser{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation absensi: %w", err)
	}
	return results, nil
}

func (r *attendanceRepository) CountAttendances(ctx context.Context, filter RecordFilter) (int64, error) {
	count, err := r.attendanceCollection.CountDocuments(ctx, filter.toBSON())
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung dokumen absensi: %w", err)
	}
	return count, nil
}
