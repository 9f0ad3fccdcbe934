package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCode is the daily kiosk code employees scan to check in or out.
type QRCode struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	Date      Date               `json:"date" bson:"date"`
	ExpiresAt time.Time          `json:"expires_at" bson:"expires_at"`
	CreatedBy primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

func (q *QRCode) ValidAt(now time.Time, today Date) bool {
	return q.Date == today && now.Before(q.ExpiresAt)
}
