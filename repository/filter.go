package repository

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"attendance-tracker/models"
)

// RecordFilter narrows attendance queries. Zero fields match everything.
type RecordFilter struct {
	UserID *primitive.ObjectID
	Range  *models.DateRange
	Status models.Status
}

func (f RecordFilter) ForUser(id primitive.ObjectID) RecordFilter {
	f.UserID = &id
	return f
}

func (f RecordFilter) InRange(r models.DateRange) RecordFilter {
	f.Range = &r
	return f
}

func (f RecordFilter) OnDate(d models.Date) RecordFilter {
	return f.InRange(models.DateRange{From: d, To: d})
}

func (f RecordFilter) toBSON() bson.M {
	filter := bson.M{}
	if f.UserID != nil {
		filter["user_id"] = *f.UserID
	}
	if f.Range != nil {
		filter["date"] = bson.M{
			"$gte": f.Range.From.UTC(),
			"$lte": f.Range.To.UTC(),
		}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (f RecordFilter) matches(rec *models.AttendanceRecord) bool {
	if f.UserID != nil && rec.UserID != *f.UserID {
		return false
	}
	if f.Range != nil && !f.Range.Contains(rec.Date) {
		return false
	}
	if f.Status != "" && rec.Status != f.Status {
		return false
	}
	return true
}

// newestFirst is the sort order of every attendance listing: latest day
// first, then latest check-in.
var newestFirst = bson.D{{Key: "date", Value: -1}, {Key: "check_in_time", Value: -1}}
